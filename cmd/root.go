// Package cmd implements the command-line interface for multidriver.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/multidriver/multidriver/color"
	"github.com/multidriver/multidriver/constant"
	"github.com/multidriver/multidriver/icon"
	"github.com/multidriver/multidriver/key"
	"github.com/multidriver/multidriver/log"
	"github.com/multidriver/multidriver/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.PersistentFlags().StringP("format", "f", "", "Force the file format (csv or json) instead of guessing it from the extension")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"csv", "json"}, cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (emoji, plain, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("no-history", false, "Do not remember the opened source")
}

// rootCmd defines the entry point for the multidriver application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Create, read, update and delete records in CSV and JSON files",
	Long: style.New().Bold(true).Foreground(color.HiCyan).Render(constant.App) + "\n" +
		style.Italic("  Uniform record access to flat CSV and JSON files."),
	SilenceUsage: true,
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

func success(cmd *cobra.Command, format string, args ...any) {
	cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}
