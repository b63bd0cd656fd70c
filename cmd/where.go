package cmd

import (
	"github.com/multidriver/multidriver/color"
	"github.com/multidriver/multidriver/style"
	"github.com/multidriver/multidriver/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type wherePath struct {
	name string
	flag string
	path func() string
}

var wherePaths = []wherePath{
	{"Config", "config", where.Config},
	{"Logs", "logs", where.Logs},
	{"History", "history", where.History},
	{"Cache", "cache", where.Cache},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, p := range wherePaths {
		whereCmd.Flags().Bool(p.flag, false, p.name+" path")
	}
	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(p wherePath, _ int) string { return p.flag })...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the paths where settings, logs and history live",
	Run: func(cmd *cobra.Command, args []string) {
		if p, ok := lo.Find(wherePaths, func(p wherePath) bool {
			return lo.Must(cmd.Flags().GetBool(p.flag))
		}); ok {
			cmd.Println(p.path())
			return
		}

		for i, p := range wherePaths {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", style.Header(p.name), style.Fg(color.Yellow)("--"+p.flag))
			cmd.Println(p.path())
		}
	},
}
