// ABOUTME: Period report rendering as markdown.
// ABOUTME: Summary statistics plus the windowed entry log, for printing or export.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/bodylog/internal/config"
	"github.com/harperreed/bodylog/internal/models"
	"github.com/harperreed/bodylog/internal/query"
)

// Render produces the markdown period report for a window: a title, the
// period line, one statistics line per report metric, and the entry log
// for the window. Metrics with no qualifying data report "데이터 없음"
// instead of statistics.
func Render(entries []*models.Entry, start, end time.Time, thr config.Thresholds) string {
	qualified := query.Window(entries, start, end, "")
	stats := query.Summarize(qualified, query.ReportMetrics)

	var b strings.Builder
	b.WriteString("# 바디로그 리포트\n\n")
	fmt.Fprintf(&b, "기간: %s ~ %s\n\n", start.Format("2006-01-02"), end.Format("2006-01-02"))

	b.WriteString("## 요약\n\n")
	for _, m := range query.ReportMetrics {
		b.WriteString(statLine(m, stats[m]))
		b.WriteByte('\n')
	}

	rows := query.Rows(qualified, thr)
	b.WriteString("\n## 기록\n\n")
	if len(rows) == 0 {
		b.WriteString("조회 기간에 해당하는 기록이 없습니다.\n")
		return b.String()
	}
	for _, row := range rows {
		b.WriteString(entryLine(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func statLine(m models.Metric, s query.Summary) string {
	title := models.PlotMeta[models.PlotMetric(m)].Title
	if !s.HasData() {
		return fmt.Sprintf("- %s: 데이터 없음", title)
	}
	return fmt.Sprintf("- %s: 평균 %.1f, 최솟값 %.1f, 최댓값 %.1f",
		title, s.Mean, s.Min, s.Max)
}

func entryLine(row query.Row) string {
	var parts []string
	for _, c := range row.Cells {
		parts = append(parts, fmt.Sprintf("%s: %s", c.Label, c.Value))
	}

	line := fmt.Sprintf("- %s — %s", row.When, strings.Join(parts, ", "))
	if row.Flags != "" {
		line += fmt.Sprintf(" [경고: %s]", row.Flags)
	}
	if row.Memo != "" {
		line += fmt.Sprintf(" (%s)", row.Memo)
	}
	return line
}
