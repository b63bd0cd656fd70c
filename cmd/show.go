package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/multidriver/multidriver/driver"
	"github.com/multidriver/multidriver/key"
	"github.com/multidriver/multidriver/style"
	"github.com/multidriver/multidriver/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntP("truncate", "t", -1, "Maximum cell width, 0 fits the terminal")
	showCmd.Flags().BoolP("raw", "r", false, "Print the table as the driver renders it")
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print every record of a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, done, err := connect(cmd, args[0])
		handleErr(err)
		defer done()

		if lo.Must(cmd.Flags().GetBool("raw")) {
			cmd.Println(d.String())
			return
		}

		header, err := d.Header()
		handleErr(err)

		rows, err := driver.Rows(d)
		handleErr(err)

		limit := lo.Must(cmd.Flags().GetInt("truncate"))
		if limit < 0 {
			limit = viper.GetInt(key.ShowTruncate)
		}
		if limit == 0 && len(header) > 0 {
			if width, _, err := util.TerminalSize(); err == nil {
				limit = width/len(header) - 1
			}
		}

		cmd.Println(renderTable(header, rows, limit))
		cmd.Println(style.Faint(util.Quantify(len(rows), "record", "records")))
	},
}

// renderTable lays out header and rows in aligned columns no wider than limit.
func renderTable(header []string, rows [][]string, limit int) string {
	widths := lo.Map(header, func(h string, _ int) int { return lipgloss.Width(util.Ellipsis(h, limit)) })
	for _, row := range rows {
		for i, v := range row {
			if i < len(widths) {
				widths[i] = lo.Max([]int{widths[i], lipgloss.Width(util.Ellipsis(v, limit))})
			}
		}
	}

	var b strings.Builder
	for i, h := range header {
		b.WriteString(style.Cell(widths[i] + 1)(style.Header(util.Ellipsis(h, limit))))
	}

	for _, row := range rows {
		b.WriteString("\n")
		for i, v := range row {
			width := 0
			if i < len(widths) {
				width = widths[i]
			}
			b.WriteString(style.Cell(width + 1)(util.Ellipsis(v, limit)))
		}
	}

	return b.String()
}
