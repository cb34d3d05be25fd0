// ABOUTME: MCP tool implementations for the bodylog entry store.
// ABOUTME: Logging, windowed queries, series, reports, deletion, thresholds.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/bodylog/internal/models"
	"github.com/harperreed/bodylog/internal/query"
	"github.com/harperreed/bodylog/internal/report"
	"github.com/harperreed/bodylog/internal/vitals"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_entry",
		Description: "Record a vital-sign observation (blood pressure, heart rate, temperature, sugar, SpO2, respiration, weight, waist, BMI)",
	}, s.handleLogEntry)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "query_entries",
		Description: "List observations in a date window, optionally filtered by a memo keyword",
	}, s.handleQueryEntries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_series",
		Description: "Extract a (timestamp, value) series for one metric, for plotting",
	}, s.handleGetSeries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_report",
		Description: "Render the markdown period report (7 or 30 days)",
	}, s.handleGetReport)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entries",
		Description: "Delete observations by id, by date range, or all",
	}, s.handleDeleteEntries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_threshold",
		Description: "Update one named abnormality threshold",
	}, s.handleSetThreshold)
}

// Tool input/output types

type logEntryInput struct {
	BP         string   `json:"bp,omitempty" jsonschema:"Blood pressure as systolic/diastolic text (e.g. 120/80)"`
	HR         *int64   `json:"hr,omitempty" jsonschema:"Heart rate in bpm"`
	Temp       *float64 `json:"temp,omitempty" jsonschema:"Body temperature in °C"`
	Sugar      *float64 `json:"sugar,omitempty" jsonschema:"Blood sugar in mg/dL"`
	SpO2       *int64   `json:"spo2,omitempty" jsonschema:"Oxygen saturation in percent"`
	RR         *int64   `json:"rr,omitempty" jsonschema:"Respiration rate per minute"`
	Weight     *float64 `json:"weight,omitempty" jsonschema:"Weight in kg"`
	Waist      *float64 `json:"waist,omitempty" jsonschema:"Waist circumference in cm"`
	BMI        *float64 `json:"bmi,omitempty" jsonschema:"Body-mass index; derived from weight and profile height when omitted"`
	Memo       string   `json:"memo,omitempty" jsonschema:"Free-text memo"`
	RecordedAt string   `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601); defaults to now"`
}

type logEntryOutput struct {
	ID      string   `json:"id"`
	Flags   []string `json:"flags"`
	Message string   `json:"message"`
}

type windowInput struct {
	Start   string `json:"start,omitempty" jsonschema:"Window start date (YYYY-MM-DD)"`
	End     string `json:"end,omitempty" jsonschema:"Window end date (YYYY-MM-DD)"`
	Days    int    `json:"days,omitempty" jsonschema:"Last N days shortcut; overrides start/end (default 14)"`
	Keyword string `json:"keyword,omitempty" jsonschema:"Case-sensitive memo substring filter"`
}

type seriesInput struct {
	Metric string `json:"metric" jsonschema:"Series metric (bp_sys, bp_dia, hr, temp, sugar, spo2, rr, weight, bmi)"`
	Start  string `json:"start,omitempty" jsonschema:"Window start date (YYYY-MM-DD)"`
	End    string `json:"end,omitempty" jsonschema:"Window end date (YYYY-MM-DD)"`
	Days   int    `json:"days,omitempty" jsonschema:"Last N days shortcut; overrides start/end (default 14)"`
}

type seriesPoint struct {
	At    string  `json:"at"`
	Value float64 `json:"value"`
}

type seriesOutput struct {
	Metric string        `json:"metric"`
	Title  string        `json:"title"`
	Unit   string        `json:"unit"`
	Points []seriesPoint `json:"points"`
}

type reportInput struct {
	Days int `json:"days,omitempty" jsonschema:"Report span in days: 7 or 30 (default 7)"`
}

type reportOutput struct {
	Markdown string `json:"markdown"`
}

type deleteEntriesInput struct {
	IDs   []string `json:"ids,omitempty" jsonschema:"Entry ids to delete"`
	Start string   `json:"start,omitempty" jsonschema:"Range deletion start date (YYYY-MM-DD)"`
	End   string   `json:"end,omitempty" jsonschema:"Range deletion end date (YYYY-MM-DD)"`
	All   bool     `json:"all,omitempty" jsonschema:"Delete every entry"`
}

type deleteEntriesOutput struct {
	Removed int    `json:"removed"`
	Message string `json:"message"`
}

type setThresholdInput struct {
	Name  string  `json:"name" jsonschema:"Threshold name (bp_sys_hi, bp_dia_hi, bp_sys_very, bp_dia_very, hr_lo, hr_hi, temp_hi, sugar_hi, sugar_very, sugar_lo, spo2_lo, rr_lo, rr_hi)"`
	Value float64 `json:"value" jsonschema:"The new limit"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogEntry(ctx context.Context, req *mcp.CallToolRequest, input logEntryInput) (*mcp.CallToolResult, logEntryOutput, error) {
	at := time.Now()
	if input.RecordedAt != "" {
		t, err := parseTimestamp(input.RecordedAt)
		if err != nil {
			return nil, logEntryOutput{}, fmt.Errorf("invalid recorded_at: %s", input.RecordedAt)
		}
		at = t
	}

	e := models.NewEntry(at)
	if input.BP != "" {
		e.Set(models.MetricBP, models.TextValue(input.BP))
	}
	setInt := func(m models.Metric, v *int64) {
		if v != nil {
			e.Set(m, models.IntValue(*v))
		}
	}
	setDec := func(m models.Metric, v *float64) {
		if v != nil {
			e.Set(m, models.DecimalValue(*v))
		}
	}
	setInt(models.MetricHR, input.HR)
	setDec(models.MetricTemp, input.Temp)
	setDec(models.MetricSugar, input.Sugar)
	setInt(models.MetricSpO2, input.SpO2)
	setInt(models.MetricRR, input.RR)
	setDec(models.MetricWeight, input.Weight)
	setDec(models.MetricWaist, input.Waist)
	setDec(models.MetricBMI, input.BMI)
	e.WithMemo(input.Memo)

	if len(e.Fields) == 0 {
		return nil, logEntryOutput{}, fmt.Errorf("no metric values supplied")
	}

	vitals.DeriveBMI(e, s.profile, s.cfg.Metrics)

	if err := s.st.Append(e); err != nil {
		return nil, logEntryOutput{}, fmt.Errorf("failed to save entry: %w", err)
	}

	flags := vitals.Flags(e, s.cfg.Thresholds)
	msg := fmt.Sprintf("Recorded entry %s", e.ID[:8])
	if len(flags) > 0 {
		msg = fmt.Sprintf("Recorded entry %s — 경고: %s", e.ID[:8], vitals.FlagString(e, s.cfg.Thresholds))
	}
	return nil, logEntryOutput{ID: e.ID, Flags: flags, Message: msg}, nil
}

func (s *Server) handleQueryEntries(ctx context.Context, req *mcp.CallToolRequest, input windowInput) (*mcp.CallToolResult, any, error) {
	start, end, err := resolveWindow(input.Start, input.End, input.Days)
	if err != nil {
		return nil, nil, err
	}

	rows := query.Rows(query.Window(s.st.Entries(), start, end, input.Keyword), s.cfg.Thresholds)
	if len(rows) == 0 {
		return nil, map[string]interface{}{"message": "No entries found."}, nil
	}
	return nil, rows, nil
}

func (s *Server) handleGetSeries(ctx context.Context, req *mcp.CallToolRequest, input seriesInput) (*mcp.CallToolResult, seriesOutput, error) {
	if !models.IsValidPlotMetric(input.Metric) {
		return nil, seriesOutput{}, fmt.Errorf("unknown series metric: %s", input.Metric)
	}
	start, end, err := resolveWindow(input.Start, input.End, input.Days)
	if err != nil {
		return nil, seriesOutput{}, err
	}

	metric := models.PlotMetric(input.Metric)
	points := query.Series(query.Window(s.st.Entries(), start, end, ""), metric)

	out := seriesOutput{
		Metric: input.Metric,
		Title:  models.PlotMeta[metric].Title,
		Unit:   models.PlotMeta[metric].Unit,
		Points: make([]seriesPoint, 0, len(points)),
	}
	for _, p := range points {
		out.Points = append(out.Points, seriesPoint{
			At:    p.At.Format(query.DisplayTimeLayout),
			Value: p.Value,
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetReport(ctx context.Context, req *mcp.CallToolRequest, input reportInput) (*mcp.CallToolResult, reportOutput, error) {
	days := input.Days
	if days <= 0 {
		days = 7
	}
	start, end := query.DayWindow(days)
	md := report.Render(s.st.Entries(), start, end, s.cfg.Thresholds)
	return nil, reportOutput{Markdown: md}, nil
}

func (s *Server) handleDeleteEntries(ctx context.Context, req *mcp.CallToolRequest, input deleteEntriesInput) (*mcp.CallToolResult, deleteEntriesOutput, error) {
	switch {
	case input.All:
		n := len(s.st.Entries())
		if err := s.st.DeleteAll(); err != nil {
			return nil, deleteEntriesOutput{}, fmt.Errorf("failed to delete entries: %w", err)
		}
		return nil, deleteEntriesOutput{Removed: n, Message: fmt.Sprintf("Deleted all %d entries", n)}, nil

	case input.Start != "" || input.End != "":
		start, end, err := resolveWindow(input.Start, input.End, 0)
		if err != nil {
			return nil, deleteEntriesOutput{}, err
		}
		n, err := s.st.DeleteByRange(start, end)
		if err != nil {
			return nil, deleteEntriesOutput{}, fmt.Errorf("failed to delete entries: %w", err)
		}
		return nil, deleteEntriesOutput{Removed: n, Message: fmt.Sprintf("Deleted %d entries", n)}, nil

	case len(input.IDs) > 0:
		n, err := s.st.DeleteByIDs(input.IDs)
		if err != nil {
			return nil, deleteEntriesOutput{}, fmt.Errorf("failed to delete entries: %w", err)
		}
		return nil, deleteEntriesOutput{Removed: n, Message: fmt.Sprintf("Deleted %d entries", n)}, nil
	}

	return nil, deleteEntriesOutput{}, fmt.Errorf("specify ids, a date range, or all")
}

func (s *Server) handleSetThreshold(ctx context.Context, req *mcp.CallToolRequest, input setThresholdInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.cfg.Thresholds.Set(input.Name, input.Value); err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.cfg.Save(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save config: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Set %s = %g", input.Name, input.Value),
	}, nil
}

// resolveWindow turns the start/end/days inputs into a concrete window.
// Days wins when given; otherwise missing bounds default to the last 14
// days. End dates extend to the last instant of the day.
func resolveWindow(startStr, endStr string, days int) (time.Time, time.Time, error) {
	if days > 0 || (startStr == "" && endStr == "") {
		if days <= 0 {
			days = 14
		}
		start, end := query.DayWindow(days)
		return start, end, nil
	}

	var start, end time.Time
	if startStr != "" {
		t, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			return start, end, fmt.Errorf("invalid start date: %s", startStr)
		}
		start = t
	}
	if endStr == "" {
		_, end = query.DayWindow(1)
	} else {
		t, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err != nil {
			return start, end, fmt.Errorf("invalid end date: %s", endStr)
		}
		end = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return start, end, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(models.TimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", s, time.Local)
}
