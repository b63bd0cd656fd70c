package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/multidriver/multidriver/color"
	"github.com/multidriver/multidriver/driver"
	"github.com/multidriver/multidriver/icon"
	"github.com/multidriver/multidriver/key"
	"github.com/multidriver/multidriver/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var deleteCmd = &cobra.Command{
	Use:   "delete <file> <key | field:value...>",
	Short: "Delete records",
	Long: `Delete records from a file.
CSV files delete every record whose first column equals key: delete people.csv 2
JSON files delete the first record equal to the given tokens: delete cities.json city:A name:B age:C`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		d, done, err := connect(cmd, args[0])
		handleErr(err)
		defer done()

		remove, err := deleter(d, args[1:])
		handleErr(err)

		target := strings.Join(args[1:], " ")
		if viper.GetBool(key.DeleteConfirm) && !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirm bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Delete %s from %s?", target, d.Source()),
			}, &confirm))

			if !confirm {
				cmd.Printf("%s nothing deleted\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)))
				return
			}
		}

		handleErr(remove())
		success(cmd, "deleted %s from %s", style.Fg(colorValue)(target), d.Source())
	},
}

// deleter checks args against the delete signature of d and returns the deletion to run.
func deleter(d driver.Driver, args []string) (func() error, error) {
	switch d := d.(type) {
	case *driver.CSV:
		if len(args) != 1 {
			return nil, fmt.Errorf("csv records are deleted by a single key, got %d", len(args))
		}
		return func() error { return d.Delete(args[0]) }, nil
	case *driver.JSON:
		return func() error { return d.Delete(args...) }, nil
	default:
		return nil, fmt.Errorf("%w: %s", driver.ErrUnsupportedFormat, d.Format())
	}
}
