// ABOUTME: Time-windowed queries over the entry log.
// ABOUTME: Produces table rows, plot series, and summary statistics.
package query

import (
	"strings"
	"time"

	"github.com/harperreed/bodylog/internal/config"
	"github.com/harperreed/bodylog/internal/models"
	"github.com/harperreed/bodylog/internal/vitals"
)

// DisplayTimeLayout formats timestamps for table and series display.
const DisplayTimeLayout = "2006-01-02 15:04"

// ReportMetrics is the fixed subset summarized in period reports.
var ReportMetrics = []models.Metric{
	models.MetricHR, models.MetricTemp, models.MetricSugar,
}

// DayWindow returns the window covering the last n calendar days ending
// today: midnight n-1 days ago through the last instant of today.
func DayWindow(n int) (start, end time.Time) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = today.AddDate(0, 0, -(n - 1))
	end = today.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// Options scope a query to a timestamp window, an optional memo keyword,
// and an optional series metric.
type Options struct {
	Start   time.Time
	End     time.Time
	Keyword string
	Metric  models.PlotMetric
}

// Result bundles the three query outputs for one window.
type Result struct {
	Rows   []Row
	Series []Point
	Stats  map[models.Metric]Summary
}

// Run filters the entries once and derives all three outputs. Queries
// are read-only; running the same window twice yields identical results.
func Run(entries []*models.Entry, opts Options, thr config.Thresholds) Result {
	qualified := Window(entries, opts.Start, opts.End, opts.Keyword)
	res := Result{
		Rows:  Rows(qualified, thr),
		Stats: Summarize(qualified, ReportMetrics),
	}
	if opts.Metric != "" {
		res.Series = Series(qualified, opts.Metric)
	}
	return res
}

// Window filters entries to those whose parsed timestamp lies in
// [start, end] inclusive and whose memo contains the keyword. Entries
// with unparseable timestamps are skipped, not errored. The keyword
// match is a case-sensitive substring test; an absent memo never matches
// a non-empty keyword.
func Window(entries []*models.Entry, start, end time.Time, keyword string) []*models.Entry {
	var out []*models.Entry
	for _, e := range entries {
		t, ok := e.Time()
		if !ok {
			continue
		}
		if t.Before(start) || t.After(end) {
			continue
		}
		if keyword != "" && !strings.Contains(e.Memo, keyword) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Cell is one labeled value in a table row.
type Cell struct {
	Label string
	Value string
}

// Row is the table projection of one qualifying entry: timestamp, the
// present metric fields in catalog order, the abnormality flag string,
// and the memo when present.
type Row struct {
	ID    string
	When  string
	Cells []Cell
	Flags string
	Memo  string
}

// Rows projects entries into display rows.
func Rows(entries []*models.Entry, thr config.Thresholds) []Row {
	var rows []Row
	for _, e := range entries {
		t, ok := e.Time()
		if !ok {
			continue
		}
		row := Row{
			ID:    e.ID,
			When:  t.Format(DisplayTimeLayout),
			Flags: vitals.FlagString(e, thr),
			Memo:  e.Memo,
		}
		for _, m := range models.AllMetrics {
			if v := e.Value(m); !v.IsAbsent() {
				row.Cells = append(row.Cells, Cell{
					Label: models.Catalog[m].Label,
					Value: v.String(),
				})
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Point is one sample in a plot series.
type Point struct {
	At    time.Time
	Value float64
}

// Series extracts (timestamp, value) pairs for one plottable metric.
// The blood-pressure pseudo-metrics go through the composite parser and
// contribute only when both components parse. Absent, non-numeric, and
// malformed values are dropped silently.
func Series(entries []*models.Entry, metric models.PlotMetric) []Point {
	var points []Point
	for _, e := range entries {
		t, ok := e.Time()
		if !ok {
			continue
		}

		switch metric {
		case models.PlotBPSys, models.PlotBPDia:
			bp := e.Value(models.MetricBP)
			if bp.IsAbsent() {
				continue
			}
			sys, dia, ok := vitals.ParseComposite(bp.String())
			if !ok {
				continue
			}
			v := sys
			if metric == models.PlotBPDia {
				v = dia
			}
			points = append(points, Point{At: t, Value: float64(v)})
		default:
			if v, p := vitals.ReadNumber(e, models.Metric(metric)); p == vitals.PresenceValid {
				points = append(points, Point{At: t, Value: v})
			}
		}
	}
	return points
}

// Summary holds mean/min/max over the qualifying numeric values of one
// metric. Count zero means "no data"; the statistics are only
// meaningful when HasData reports true.
type Summary struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64
}

// HasData reports whether any qualifying value contributed.
func (s Summary) HasData() bool { return s.Count > 0 }

// Summarize computes per-metric summary statistics across entries with
// a present numeric value for that metric. An empty qualifying set
// yields a zero-count summary, never a NaN.
func Summarize(entries []*models.Entry, metrics []models.Metric) map[models.Metric]Summary {
	stats := make(map[models.Metric]Summary, len(metrics))
	for _, m := range metrics {
		var s Summary
		var sum float64
		for _, e := range entries {
			v, p := vitals.ReadNumber(e, m)
			if p != vitals.PresenceValid {
				continue
			}
			if s.Count == 0 || v < s.Min {
				s.Min = v
			}
			if s.Count == 0 || v > s.Max {
				s.Max = v
			}
			sum += v
			s.Count++
		}
		if s.Count > 0 {
			s.Mean = sum / float64(s.Count)
		}
		stats[m] = s
	}
	return stats
}
