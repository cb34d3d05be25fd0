// ABOUTME: BMI derivation from recorded weight and the profile height.
// ABOUTME: Idempotent; an explicitly supplied BMI is never overwritten.
package vitals

import (
	"math"

	"github.com/harperreed/bodylog/internal/config"
	"github.com/harperreed/bodylog/internal/models"
)

// DeriveBMI fills in the BMI field from weight and the profile height,
// rounded to two decimals. It writes only when a strictly positive
// height is configured, the entry carries a numeric weight, BMI is among
// the active metrics, and BMI is not already present. Reports whether
// the entry was modified.
func DeriveBMI(e *models.Entry, profile *config.Profile, active []models.Metric) bool {
	heightCM, ok := profile.Height()
	if !ok {
		return false
	}
	weight, p := ReadNumber(e, models.MetricWeight)
	if p != PresenceValid {
		return false
	}
	if !containsMetric(active, models.MetricBMI) {
		return false
	}
	if !e.Value(models.MetricBMI).IsAbsent() {
		return false
	}

	h := heightCM / 100
	bmi := math.Round(weight/(h*h)*100) / 100
	e.Set(models.MetricBMI, models.DecimalValue(bmi))
	return true
}

func containsMetric(metrics []models.Metric, m models.Metric) bool {
	for _, x := range metrics {
		if x == m {
			return true
		}
	}
	return false
}
