// ABOUTME: Root Cobra command for bodylog CLI.
// ABOUTME: Opens config, profile, and the entry store via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/bodylog/internal/config"
	"github.com/harperreed/bodylog/internal/query"
	"github.com/harperreed/bodylog/internal/store"
)

var (
	cfg     *config.Config
	profile *config.Profile
	st      *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "bodylog",
	Short: "Personal vital-sign logger with abnormality flagging",
	Long: `Bodylog is a CLI tool for logging vital-sign observations and
flagging the ones that cross configurable clinical thresholds.

WHAT IT TRACKS:

  bp      blood pressure, entered as systolic/diastolic (e.g. 120/80)
  hr      heart rate (bpm)
  temp    body temperature (°C)
  sugar   blood sugar (mg/dL)
  spo2    oxygen saturation (%)
  rr      respiration rate (/min)
  weight  body weight (kg)
  waist   waist circumference (cm)
  bmi     body-mass index, derived from weight and your profile height

QUICK START:

  $ bodylog add --bp 120/80 --hr 72            # Log an observation
  $ bodylog add --temp 38.7 --memo "headache"  # Fever gets flagged in red
  $ bodylog list --days 14                     # Recent observations
  $ bodylog series --metric bp_sys             # Systolic series for plotting
  $ bodylog report --days 7                    # Weekly markdown report

THRESHOLDS:

  Observations are classified against named limits (bp_sys_hi, hr_lo,
  temp_hi, sugar_very, ...). Edit them any time:

  $ bodylog config threshold temp_hi 38.0
  $ bodylog config metrics bp hr temp sugar spo2

MCP INTEGRATION:

  Run 'bodylog mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "bodylog": { "command": "bodylog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Entries are stored most-recent-first in a JSON file under
  ~/.local/share/bodylog (or a Badger database with backend "badger").
  Config and profile live under ~/.config/bodylog.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that don't touch the store
		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}

		cfg = config.Load()
		profile = config.LoadProfile()

		var err error
		st, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open entry store: %w", err)
		}

		if n := st.Backfilled(); n > 0 {
			color.New(color.Faint).Fprintf(cmd.ErrOrStderr(), "assigned ids to %d legacy entries\n", n)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			return st.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// parseTime accepts the timestamp formats users actually type.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}

// windowFromFlags resolves --from/--to/--days into a concrete window.
// --days wins when set; otherwise missing bounds default to the last
// `defaultDays` days. The end bound extends to the last instant of its day.
func windowFromFlags(from, to string, days, defaultDays int) (time.Time, time.Time, error) {
	if days > 0 || (from == "" && to == "") {
		if days <= 0 {
			days = defaultDays
		}
		start, end := query.DayWindow(days)
		return start, end, nil
	}

	var start, end time.Time
	if from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return start, end, fmt.Errorf("invalid --from date: %s (use YYYY-MM-DD)", from)
		}
		start = t
	}
	if to == "" {
		_, end = query.DayWindow(1)
	} else {
		t, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return start, end, fmt.Errorf("invalid --to date: %s (use YYYY-MM-DD)", to)
		}
		end = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return start, end, nil
}
