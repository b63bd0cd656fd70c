package cmd

import (
	"strconv"

	"github.com/multidriver/multidriver/color"
	"github.com/multidriver/multidriver/icon"
	"github.com/multidriver/multidriver/style"
	"github.com/spf13/cobra"
)

var colorValue = color.Yellow

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolP("value", "v", false, "Print only the value of the field")
}

var readCmd = &cobra.Command{
	Use:   "read <file> <field> <value>",
	Short: "Find the first record whose field holds value",
	Long: `Find the first record whose field holds value.
CSV files always match value against the first column.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		d, done, err := connect(cmd, args[0])
		handleErr(err)
		defer done()

		found, err := d.Read(args[1], args[2])
		handleErr(err)

		match, ok := found.Get()
		if !ok {
			cmd.Printf("%s no record where %s is %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), args[1], style.Fg(colorValue)(args[2]))
			return
		}

		if v, _ := cmd.Flags().GetBool("value"); v {
			cmd.Println(match.Value)
			return
		}

		cmd.Printf("%s %s\n", style.Faint("#"+strconv.Itoa(match.Index)), match)
	},
}
