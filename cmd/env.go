package cmd

import (
	"os"

	"github.com/multidriver/multidriver/color"
	"github.com/multidriver/multidriver/config"
	"github.com/multidriver/multidriver/style"
	"github.com/multidriver/multidriver/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only variables that are unset")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables multidriver reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		names := lo.Map(config.EnvExposed, func(k string, _ int) string {
			field := config.Default[k]
			return field.Env()
		})
		names = append(names, where.EnvConfigPath)
		slices.Sort(names)

		for _, name := range names {
			value, present := os.LookupEnv(name)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			rendered := style.Fg(color.Red)("unset")
			if present {
				rendered = style.Fg(color.Green)(value)
			}
			cmd.Printf("%s=%s\n", style.New().Bold(true).Foreground(color.Purple).Render(name), rendered)
		}
	},
}
