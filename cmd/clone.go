package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cloneCmd)
}

var cloneCmd = &cobra.Command{
	Use:   "clone <file>",
	Short: "Copy a file next to itself with a _copy suffix",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, done, err := connect(cmd, args[0])
		handleErr(err)
		defer done()

		clone, err := d.Clone()
		handleErr(err)
		defer func() { _ = clone.Close() }()

		success(cmd, "cloned %s to %s", d.Source(), clone.Source())
	},
}
