package cmd

import (
	"runtime"
	"text/template"

	"github.com/multidriver/multidriver/color"
	"github.com/multidriver/multidriver/constant"
	"github.com/multidriver/multidriver/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"accent": style.Fg(color.HiCyan),
}).Parse(`{{ accent .App }} {{ bold .Version }}

  {{ faint "Revision" }}  {{ .Revision }}
  {{ faint "Built at" }}  {{ .BuiltAt }}
  {{ faint "Built by" }}  {{ .BuiltBy }}
  {{ faint "Platform" }}  {{ .OS }}/{{ .Arch }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), map[string]string{
			"App":      constant.App,
			"Version":  constant.Version,
			"Revision": constant.Revision,
			"BuiltAt":  constant.BuiltAt,
			"BuiltBy":  constant.BuiltBy,
			"OS":       runtime.GOOS,
			"Arch":     runtime.GOARCH,
		}))
	},
}
