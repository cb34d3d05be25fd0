// ABOUTME: CLI command for extracting a plot series.
// ABOUTME: Emits timestamp,value pairs for one metric over a window.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/bodylog/internal/models"
	"github.com/harperreed/bodylog/internal/query"
)

var (
	seriesMetric string
	seriesFrom   string
	seriesTo     string
	seriesDays   int
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Extract a plot series for one metric",
	Long: `Extract (timestamp, value) pairs for one metric, for plotting with
an external tool. Blood pressure plots as its two components, bp_sys
and bp_dia, computed from the composite value per entry.

Entries without a numeric value for the metric are dropped from the
series, as are blood-pressure entries that do not parse as S/D.

METRICS:

  bp_sys, bp_dia, hr, temp, sugar, spo2, rr, weight, bmi

EXAMPLES:

  bodylog series --metric bp_sys --days 30
  bodylog series --metric weight --from 2025-01-01 > weight.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidPlotMetric(seriesMetric) {
			return fmt.Errorf("unknown series metric: %s\nValid metrics: bp_sys, bp_dia, hr, temp, sugar, spo2, rr, weight, bmi", seriesMetric)
		}
		start, end, err := windowFromFlags(seriesFrom, seriesTo, seriesDays, 14)
		if err != nil {
			return err
		}

		metric := models.PlotMetric(seriesMetric)
		points := query.Series(query.Window(st.Entries(), start, end, ""), metric)
		if len(points) == 0 {
			fmt.Println("조회 기간에 해당하는 기록이 없습니다")
			return nil
		}

		info := models.PlotMeta[metric]
		color.New(color.Faint).Printf("# %s (%s)\n", info.Title, info.Unit)
		for _, p := range points {
			fmt.Printf("%s,%s\n",
				p.At.Format(query.DisplayTimeLayout),
				strconv.FormatFloat(p.Value, 'f', -1, 64))
		}
		return nil
	},
}

func init() {
	seriesCmd.Flags().StringVarP(&seriesMetric, "metric", "M", "", "series metric (required)")
	seriesCmd.Flags().StringVar(&seriesFrom, "from", "", "window start date (YYYY-MM-DD)")
	seriesCmd.Flags().StringVar(&seriesTo, "to", "", "window end date (YYYY-MM-DD)")
	seriesCmd.Flags().IntVarP(&seriesDays, "days", "n", 0, "use the last N days")
	_ = seriesCmd.MarkFlagRequired("metric")
	rootCmd.AddCommand(seriesCmd)
}
