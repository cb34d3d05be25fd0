// ABOUTME: Tests for BMI derivation.
// ABOUTME: Guards: height, weight presence, metric active, no overwrite.
package vitals

import (
	"testing"

	"github.com/harperreed/bodylog/internal/config"
	"github.com/harperreed/bodylog/internal/models"
)

func profileWithHeight(cm float64) *config.Profile {
	p := &config.Profile{}
	p.SetHeight(cm)
	return p
}

func TestDeriveBMI(t *testing.T) {
	active := []models.Metric{models.MetricWeight, models.MetricBMI}

	e := entryWith(map[models.Metric]models.Value{
		models.MetricWeight: models.DecimalValue(68.0),
	})
	if !DeriveBMI(e, profileWithHeight(170), active) {
		t.Fatal("expected derivation")
	}
	got, ok := e.Value(models.MetricBMI).Num()
	if !ok || got != 23.53 {
		t.Errorf("bmi = %v, want 23.53", got)
	}
}

func TestDeriveBMISkips(t *testing.T) {
	active := []models.Metric{models.MetricWeight, models.MetricBMI}
	weight := map[models.Metric]models.Value{
		models.MetricWeight: models.DecimalValue(68.0),
	}

	tests := []struct {
		name    string
		entry   *models.Entry
		profile *config.Profile
		active  []models.Metric
	}{
		{"no height", entryWith(weight), &config.Profile{}, active},
		{"zero height", entryWith(weight), profileWithHeight(0), active},
		{"negative height", entryWith(weight), profileWithHeight(-170), active},
		{"no weight", entryWith(nil), profileWithHeight(170), active},
		{
			"bmi not active",
			entryWith(weight),
			profileWithHeight(170),
			[]models.Metric{models.MetricWeight},
		},
		{
			"non-numeric weight",
			entryWith(map[models.Metric]models.Value{
				models.MetricWeight: models.TextValue("heavy"),
			}),
			profileWithHeight(170),
			active,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if DeriveBMI(tt.entry, tt.profile, tt.active) {
				t.Error("expected no derivation")
			}
			if !tt.entry.Value(models.MetricBMI).IsAbsent() {
				t.Error("bmi field should stay absent")
			}
		})
	}
}

func TestDeriveBMINeverOverwrites(t *testing.T) {
	active := []models.Metric{models.MetricWeight, models.MetricBMI}
	e := entryWith(map[models.Metric]models.Value{
		models.MetricWeight: models.DecimalValue(68.0),
		models.MetricBMI:    models.DecimalValue(25.0),
	})

	if DeriveBMI(e, profileWithHeight(170), active) {
		t.Error("expected no derivation over an explicit value")
	}
	if got, _ := e.Value(models.MetricBMI).Num(); got != 25.0 {
		t.Errorf("bmi = %v, want the explicit 25.0", got)
	}
}

func TestDeriveBMIIdempotent(t *testing.T) {
	active := []models.Metric{models.MetricWeight, models.MetricBMI}
	e := entryWith(map[models.Metric]models.Value{
		models.MetricWeight: models.DecimalValue(68.0),
	})

	if !DeriveBMI(e, profileWithHeight(170), active) {
		t.Fatal("expected derivation")
	}
	if DeriveBMI(e, profileWithHeight(170), active) {
		t.Error("second derivation should be a no-op")
	}
}
