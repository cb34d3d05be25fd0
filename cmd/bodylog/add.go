// ABOUTME: CLI command for recording an observation.
// ABOUTME: Only active metrics are accepted; BMI is derived when possible.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/bodylog/internal/models"
	"github.com/harperreed/bodylog/internal/vitals"
)

var (
	addBP     string
	addHR     int64
	addTemp   float64
	addSugar  float64
	addSpO2   int64
	addRR     int64
	addWeight float64
	addWaist  float64
	addBMI    float64
	addMemo   string
	addAt     string
	addBeep   bool
)

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a"},
	Short:   "Record an observation",
	Long: `Record one observation: any combination of metric values plus an
optional memo. Only metrics in your active selection are accepted
(see 'bodylog config metrics').

The observation is classified against the current thresholds right
away; crossing one prints a red warning (and --beep rings the
terminal bell). BMI is filled in automatically when you log a weight,
the bmi metric is active, and your profile height is set.

EXAMPLES:

  bodylog add --bp 120/80 --hr 72
  bodylog add --temp 38.7 --memo "headache since noon"
  bodylog add --weight 68.0 --at "2025-03-01 07:30"
  bodylog add --sugar 250 --beep`,
	RunE: func(cmd *cobra.Command, args []string) error {
		at := time.Now()
		if addAt != "" {
			t, err := parseTime(addAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", addAt)
			}
			at = t
		}

		e := models.NewEntry(at)

		type field struct {
			metric models.Metric
			flag   string
			value  models.Value
		}
		fields := []field{
			{models.MetricBP, "bp", models.TextValue(addBP)},
			{models.MetricHR, "hr", models.IntValue(addHR)},
			{models.MetricTemp, "temp", models.DecimalValue(addTemp)},
			{models.MetricSugar, "sugar", models.DecimalValue(addSugar)},
			{models.MetricSpO2, "spo2", models.IntValue(addSpO2)},
			{models.MetricRR, "rr", models.IntValue(addRR)},
			{models.MetricWeight, "weight", models.DecimalValue(addWeight)},
			{models.MetricWaist, "waist", models.DecimalValue(addWaist)},
			{models.MetricBMI, "bmi", models.DecimalValue(addBMI)},
		}

		active := make(map[models.Metric]bool, len(cfg.Metrics))
		for _, m := range cfg.Metrics {
			active[m] = true
		}

		for _, f := range fields {
			if !cmd.Flags().Changed(f.flag) {
				continue
			}
			if !active[f.metric] {
				return fmt.Errorf("metric %s is not active; enable it with 'bodylog config metrics'", f.metric)
			}
			if f.metric == models.MetricBP && addBP == "" {
				continue
			}
			e.Set(f.metric, f.value)
		}
		e.WithMemo(addMemo)

		if len(e.Fields) == 0 {
			return fmt.Errorf("no metric values supplied")
		}

		vitals.DeriveBMI(e, profile, cfg.Metrics)

		if err := st.Append(e); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		if flags := vitals.FlagString(e, cfg.Thresholds); flags != "" {
			color.Red("경고: %s", flags)
			if addBeep {
				fmt.Print("\a")
			}
		} else {
			color.Green("✓ 기록 저장 완료")
		}

		faint := color.New(color.Faint)
		fmt.Printf("  %s %s\n", faint.Sprint(e.ID[:8]), faint.Sprint(e.TS))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addBP, "bp", "", "blood pressure as systolic/diastolic (e.g. 120/80)")
	addCmd.Flags().Int64Var(&addHR, "hr", 0, "heart rate (bpm)")
	addCmd.Flags().Float64Var(&addTemp, "temp", 0, "body temperature (°C)")
	addCmd.Flags().Float64Var(&addSugar, "sugar", 0, "blood sugar (mg/dL)")
	addCmd.Flags().Int64Var(&addSpO2, "spo2", 0, "oxygen saturation (%)")
	addCmd.Flags().Int64Var(&addRR, "rr", 0, "respiration rate (/min)")
	addCmd.Flags().Float64Var(&addWeight, "weight", 0, "body weight (kg)")
	addCmd.Flags().Float64Var(&addWaist, "waist", 0, "waist circumference (cm)")
	addCmd.Flags().Float64Var(&addBMI, "bmi", 0, "body-mass index (overrides derivation)")
	addCmd.Flags().StringVarP(&addMemo, "memo", "m", "", "free-text memo")
	addCmd.Flags().StringVar(&addAt, "at", "", "observation time (default now)")
	addCmd.Flags().BoolVar(&addBeep, "beep", false, "ring the terminal bell on a threshold warning")
	rootCmd.AddCommand(addCmd)
}
