package cmd

import (
	"github.com/multidriver/multidriver/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <file> <field> <match> <value>",
	Short: "Overwrite field in the first record where field holds match",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		d, done, err := connect(cmd, args[0])
		handleErr(err)
		defer done()

		handleErr(d.Update(args[1], args[2], args[3]))
		success(cmd, "set %s from %s to %s in %s", args[1], style.Fg(colorValue)(args[2]), style.Fg(colorValue)(args[3]), d.Source())
	},
}
