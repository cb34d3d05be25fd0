// ABOUTME: CLI command for rendering the markdown period report.
// ABOUTME: Weekly or monthly summary statistics plus the entry log.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/bodylog/internal/query"
	"github.com/harperreed/bodylog/internal/report"
)

var (
	reportDays int
	reportOut  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a period report",
	Long: `Render the markdown period report: mean, minimum, and maximum for
heart rate, temperature, and blood sugar over the window, plus the
entry log. Metrics without data in the window report "데이터 없음".

EXAMPLES:

  bodylog report                   # Last 7 days, to stdout
  bodylog report --days 30         # Monthly report
  bodylog report -o report.md      # Write to a file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportDays <= 0 {
			return fmt.Errorf("--days must be positive")
		}

		start, end := query.DayWindow(reportDays)
		md := report.Render(st.Entries(), start, end, cfg.Thresholds)

		if reportOut == "" {
			fmt.Print(md)
			return nil
		}
		if err := os.WriteFile(reportOut, []byte(md), 0600); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		color.Green("✓ Wrote %s", reportOut)
		return nil
	},
}

func init() {
	reportCmd.Flags().IntVarP(&reportDays, "days", "n", 7, "report span in days (7 or 30 for the classic views)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}
