// ABOUTME: Metric catalog for vital-sign observations.
// ABOUTME: Defines trackable metrics, display metadata, and plot pseudo-metrics.
package models

// Metric identifies a trackable vital-sign metric.
type Metric string

const (
	MetricBP     Metric = "bp"
	MetricHR     Metric = "hr"
	MetricTemp   Metric = "temp"
	MetricSugar  Metric = "sugar"
	MetricSpO2   Metric = "spo2"
	MetricRR     Metric = "rr"
	MetricWeight Metric = "weight"
	MetricWaist  Metric = "waist"
	MetricBMI    Metric = "bmi"
)

// AllMetrics lists every metric in catalog order. Entry fields serialize
// and table rows render in this order.
var AllMetrics = []Metric{
	MetricBP, MetricHR, MetricTemp, MetricSugar,
	MetricSpO2, MetricRR, MetricWeight, MetricWaist, MetricBMI,
}

// MetricInfo describes how a metric is entered and displayed.
type MetricInfo struct {
	Label       string
	Kind        Kind
	Unit        string
	Step        float64
	Placeholder string
}

// Catalog maps each metric to its display metadata.
var Catalog = map[Metric]MetricInfo{
	MetricBP:     {Label: "혈압(수축/이완)", Kind: KindText, Unit: "mmHg", Placeholder: "120/80"},
	MetricHR:     {Label: "심박수(bpm)", Kind: KindInt, Unit: "bpm"},
	MetricTemp:   {Label: "체온(°C)", Kind: KindDecimal, Unit: "°C", Step: 0.1},
	MetricSugar:  {Label: "혈당(mg/dL)", Kind: KindDecimal, Unit: "mg/dL", Step: 0.1},
	MetricSpO2:   {Label: "SpO₂(%)", Kind: KindInt, Unit: "%"},
	MetricRR:     {Label: "호흡수(RR)", Kind: KindInt, Unit: "/min"},
	MetricWeight: {Label: "체중(kg)", Kind: KindDecimal, Unit: "kg", Step: 0.1},
	MetricWaist:  {Label: "허리둘레(cm)", Kind: KindDecimal, Unit: "cm", Step: 0.1},
	MetricBMI:    {Label: "BMI(kg/m²)", Kind: KindDecimal, Unit: "kg/m²", Step: 0.1},
}

// IsValidMetric checks if a string names a catalog metric.
func IsValidMetric(s string) bool {
	_, ok := Catalog[Metric(s)]
	return ok
}

// PlotMetric identifies a plottable series. Blood pressure is split into
// its systolic and diastolic components for plotting.
type PlotMetric string

const (
	PlotBPSys  PlotMetric = "bp_sys"
	PlotBPDia  PlotMetric = "bp_dia"
	PlotHR     PlotMetric = "hr"
	PlotTemp   PlotMetric = "temp"
	PlotSugar  PlotMetric = "sugar"
	PlotSpO2   PlotMetric = "spo2"
	PlotRR     PlotMetric = "rr"
	PlotWeight PlotMetric = "weight"
	PlotBMI    PlotMetric = "bmi"
)

// PlotInfo holds the title and unit a renderer labels a series with.
type PlotInfo struct {
	Title string
	Unit  string
}

// PlotMeta maps plottable series to their display titles and units.
var PlotMeta = map[PlotMetric]PlotInfo{
	PlotBPSys:  {Title: "수축기(mmHg)", Unit: "mmHg"},
	PlotBPDia:  {Title: "이완기(mmHg)", Unit: "mmHg"},
	PlotHR:     {Title: "심박수(bpm)", Unit: "bpm"},
	PlotTemp:   {Title: "체온(°C)", Unit: "°C"},
	PlotSugar:  {Title: "혈당(mg/dL)", Unit: "mg/dL"},
	PlotSpO2:   {Title: "SpO₂(%)", Unit: "%"},
	PlotRR:     {Title: "호흡수(/min)", Unit: "/min"},
	PlotWeight: {Title: "체중(kg)", Unit: "kg"},
	PlotBMI:    {Title: "BMI(kg/m²)", Unit: "kg/m²"},
}

// IsValidPlotMetric checks if a string names a plottable series.
func IsValidPlotMetric(s string) bool {
	_, ok := PlotMeta[PlotMetric(s)]
	return ok
}

// PlotOptions expands an active metric list into plottable series options.
// Blood pressure contributes its two components; metrics without plot
// metadata (waist) are skipped. Order is preserved and duplicates dropped.
func PlotOptions(active []Metric) []PlotMetric {
	var opts []PlotMetric
	seen := make(map[PlotMetric]bool)
	add := func(p PlotMetric) {
		if !seen[p] {
			seen[p] = true
			opts = append(opts, p)
		}
	}
	for _, m := range active {
		if m == MetricBP {
			add(PlotBPSys)
			add(PlotBPDia)
			continue
		}
		if _, ok := PlotMeta[PlotMetric(m)]; ok {
			add(PlotMetric(m))
		}
	}
	return opts
}
