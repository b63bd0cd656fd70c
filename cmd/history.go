package cmd

import (
	"github.com/multidriver/multidriver/color"
	"github.com/multidriver/multidriver/history"
	"github.com/multidriver/multidriver/style"
	"github.com/multidriver/multidriver/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringP("filter", "F", "", "Fuzzy filter the remembered paths")
	historyCmd.Flags().String("forget", "", "Remove a path from the history")
	historyCmd.MarkFlagsMutuallyExclusive("filter", "forget")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently opened files",
	Run: func(cmd *cobra.Command, args []string) {
		if forget := lo.Must(cmd.Flags().GetString("forget")); forget != "" {
			path := util.Abs(forget)
			handleErr(history.Forget(path))
			success(cmd, "forgot %s", path)
			return
		}

		var (
			entries []*history.Entry
			err     error
		)
		if filter := lo.Must(cmd.Flags().GetString("filter")); filter != "" {
			entries, err = history.Search(filter)
		} else {
			entries, err = history.Get()
		}
		handleErr(err)

		if len(entries) == 0 {
			cmd.Println(style.Faint("no history"))
			return
		}

		for _, e := range entries {
			cmd.Printf("%s %s %s\n",
				style.Fg(color.Purple)(e.Format),
				e.Source,
				style.Faint(e.Opened.Format("2006-01-02 15:04")+" · "+util.Quantify(e.Count, "open", "opens")),
			)
		}
	},
}
