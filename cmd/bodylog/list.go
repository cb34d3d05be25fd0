// ABOUTME: CLI command for listing observations in a time window.
// ABOUTME: Supports date range, recent-days shortcut, and memo keyword filter.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/bodylog/internal/query"
)

var (
	listFrom    string
	listTo      string
	listDays    int
	listKeyword string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List observations",
	Long: `List observations in a time window, most recent first.

Each line shows the entry id prefix, the timestamp, the recorded
values, the abnormality flags (in red), and the memo.

FILTERING:

  --days N        last N days (default 14); overrides --from/--to
  --from / --to   explicit date window (YYYY-MM-DD, inclusive)
  --keyword       case-sensitive substring match against the memo

EXAMPLES:

  bodylog list                          # Last 14 days
  bodylog list --days 30                # Last 30 days
  bodylog list --from 2025-01-01 --to 2025-01-31
  bodylog list --keyword "약 복용"      # Memo keyword filter`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := windowFromFlags(listFrom, listTo, listDays, 14)
		if err != nil {
			return err
		}

		rows := query.Rows(query.Window(st.Entries(), start, end, listKeyword), cfg.Thresholds)
		if len(rows) == 0 {
			fmt.Println("조회 기간에 해당하는 기록이 없습니다")
			return nil
		}

		faint := color.New(color.Faint)
		warn := color.New(color.FgRed)
		for _, row := range rows {
			var cells []string
			for _, c := range row.Cells {
				cells = append(cells, fmt.Sprintf("%s %s", c.Label, c.Value))
			}
			line := fmt.Sprintf("%s %s  %s",
				faint.Sprint(shortID(row.ID)),
				faint.Sprint(row.When),
				strings.Join(cells, "  "))
			if row.Flags != "" {
				line += "  " + warn.Sprint(row.Flags)
			}
			if row.Memo != "" {
				line += "  " + faint.Sprintf("(%s)", truncate(row.Memo, 40))
			}
			fmt.Println(line)
		}
		return nil
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func init() {
	listCmd.Flags().StringVar(&listFrom, "from", "", "window start date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "window end date (YYYY-MM-DD)")
	listCmd.Flags().IntVarP(&listDays, "days", "n", 0, "show the last N days")
	listCmd.Flags().StringVarP(&listKeyword, "keyword", "k", "", "memo keyword filter")
	rootCmd.AddCommand(listCmd)
}
