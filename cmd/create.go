package cmd

import (
	"strings"

	"github.com/multidriver/multidriver/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <file> <values...>",
	Short: "Append a record",
	Long: `Append a record to a file.
CSV records are given as one value per column: create people.csv 2 Juan Ramirez Colombia
JSON records are given as field:value tokens: create cities.json city:A name:B age:C`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		d, done, err := connect(cmd, args[0])
		handleErr(err)
		defer done()

		handleErr(d.Create(args[1:]...))
		success(cmd, "created %s in %s", style.Fg(colorValue)(strings.Join(args[1:], " ")), d.Source())
	},
}
