// ABOUTME: CLI commands for the active metric selection and thresholds.
// ABOUTME: Both are mutable at any time; evaluations always use the saved set.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/bodylog/internal/config"
	"github.com/harperreed/bodylog/internal/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit tracking configuration",
	Long: `Show or edit the active metric selection and the abnormality
thresholds. Entries recorded while a metric was active stay stored and
keep displaying after you deselect it.

EXAMPLES:

  bodylog config                           # Show current configuration
  bodylog config metrics bp hr temp sugar  # Set the active metrics
  bodylog config threshold temp_hi 38.0    # Set one threshold
  bodylog config threshold temp_hi         # Show one threshold`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var names []string
		for _, m := range cfg.Metrics {
			names = append(names, string(m))
		}
		fmt.Printf("metrics: %s\n", strings.Join(names, " "))
		fmt.Println("thresholds:")
		for _, name := range config.ThresholdNames {
			v, _ := cfg.Thresholds.Get(name)
			fmt.Printf("  %-12s %g\n", name, v)
		}
		fmt.Printf("backend: %s\n", cfg.GetBackend())
		fmt.Printf("data dir: %s\n", cfg.GetDataDir())
		return nil
	},
}

var configMetricsCmd = &cobra.Command{
	Use:   "metrics [metric...]",
	Short: "Set the active metric selection",
	Long: `Set which metrics the add command accepts. With no arguments, shows
the current selection.

Valid metrics: bp, hr, temp, sugar, spo2, rr, weight, waist, bmi`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, m := range cfg.Metrics {
				fmt.Println(m)
			}
			return nil
		}

		var metrics []models.Metric
		for _, arg := range args {
			if !models.IsValidMetric(arg) {
				return fmt.Errorf("unknown metric: %s\nValid metrics: bp, hr, temp, sugar, spo2, rr, weight, waist, bmi", arg)
			}
			metrics = append(metrics, models.Metric(arg))
		}
		cfg.Metrics = metrics

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ 지표 설정 저장 완료")
		return nil
	},
}

var configThresholdCmd = &cobra.Command{
	Use:   "threshold <name> [value]",
	Short: "Show or set one abnormality threshold",
	Long: `Show or set a named threshold. With a value, updates and saves it;
without, prints the current limit.

Names: bp_sys_hi, bp_dia_hi, bp_sys_very, bp_dia_very, hr_lo, hr_hi,
temp_hi, sugar_hi, sugar_very, sugar_lo, spo2_lo, rr_lo, rr_hi`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if len(args) == 1 {
			v, ok := cfg.Thresholds.Get(name)
			if !ok {
				return fmt.Errorf("unknown threshold: %s", name)
			}
			fmt.Printf("%s = %g\n", name, v)
			return nil
		}

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}
		if err := cfg.Thresholds.Set(name, value); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ 임계치 저장 완료")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configMetricsCmd)
	configCmd.AddCommand(configThresholdCmd)
	rootCmd.AddCommand(configCmd)
}
