// ABOUTME: Tests for the metric catalog and plot options.
// ABOUTME: Validates catalog completeness and bp pseudo-metric expansion.
package models

import (
	"reflect"
	"testing"
)

func TestCatalogComplete(t *testing.T) {
	for _, m := range AllMetrics {
		info, ok := Catalog[m]
		if !ok {
			t.Errorf("metric %s has no catalog entry", m)
			continue
		}
		if info.Label == "" {
			t.Errorf("metric %s has no label", m)
		}
		if info.Unit == "" {
			t.Errorf("metric %s has no unit", m)
		}
	}
}

func TestIsValidMetric(t *testing.T) {
	if !IsValidMetric("bp") {
		t.Error("bp should be valid")
	}
	if IsValidMetric("bp_sys") {
		t.Error("bp_sys is a plot metric, not a catalog metric")
	}
	if IsValidMetric("") {
		t.Error("empty string should not be valid")
	}
}

func TestPlotOptions(t *testing.T) {
	tests := []struct {
		name   string
		active []Metric
		want   []PlotMetric
	}{
		{
			name:   "bp expands to components",
			active: []Metric{MetricBP, MetricHR},
			want:   []PlotMetric{PlotBPSys, PlotBPDia, PlotHR},
		},
		{
			name:   "waist has no plot",
			active: []Metric{MetricWaist, MetricWeight},
			want:   []PlotMetric{PlotWeight},
		},
		{
			name:   "duplicates dropped",
			active: []Metric{MetricBP, MetricBP, MetricHR, MetricHR},
			want:   []PlotMetric{PlotBPSys, PlotBPDia, PlotHR},
		},
		{
			name:   "empty",
			active: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlotOptions(tt.active)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PlotOptions(%v) = %v, want %v", tt.active, got, tt.want)
			}
		})
	}
}

func TestPlotMetaTitles(t *testing.T) {
	for p, info := range PlotMeta {
		if info.Title == "" || info.Unit == "" {
			t.Errorf("plot metric %s missing title or unit", p)
		}
	}
}
