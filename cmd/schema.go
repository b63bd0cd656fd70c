package cmd

import (
	"encoding/json"

	"github.com/multidriver/multidriver/driver"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema <file>",
	Short: "Print the JSON schema of the records in a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, done, err := connect(cmd, args[0])
		handleErr(err)
		defer done()

		schema, err := driver.Schema(d)
		handleErr(err)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
