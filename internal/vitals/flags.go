// ABOUTME: Abnormality evaluation of observations against thresholds.
// ABOUTME: Pure and total; malformed or absent fields never raise, they skip.
package vitals

import (
	"strings"

	"github.com/harperreed/bodylog/internal/config"
	"github.com/harperreed/bodylog/internal/models"
)

// Abnormality flag strings, one per rule.
const (
	FlagBPVeryHigh = "혈압 매우 높음"
	FlagBPHigh     = "혈압 높음"
	FlagHRAbnormal = "심박 비정상"
	FlagFever      = "고열"
	FlagSugarVery  = "혈당 위험"
	FlagSugarHigh  = "혈당 높음"
	FlagLowOxygen  = "저산소"
	FlagRRAbnormal = "호흡수 이상"
)

// Presence classifies how a numeric field read resolved. Distinguishing
// malformed from absent lets callers assert on the excluded case.
type Presence int

const (
	PresenceAbsent Presence = iota
	PresenceValid
	PresenceMalformed
)

// ReadNumber resolves a metric field to a number. Text and other
// non-numeric representations read as malformed, not absent.
func ReadNumber(e *models.Entry, m models.Metric) (float64, Presence) {
	v := e.Value(m)
	if v.IsAbsent() {
		return 0, PresenceAbsent
	}
	n, ok := v.Num()
	if !ok {
		return 0, PresenceMalformed
	}
	return n, PresenceValid
}

// Flags classifies one observation against the current thresholds and
// returns its abnormality flags in fixed rule order: blood pressure,
// heart rate, temperature, sugar, SpO₂, respiration. Each rule
// contributes at most one flag; the critical and high variants of the
// blood-pressure and sugar rules are mutually exclusive, critical wins.
func Flags(e *models.Entry, thr config.Thresholds) []string {
	var flags []string

	if bp := e.Value(models.MetricBP); !bp.IsAbsent() {
		if sys, dia, ok := ParseComposite(bp.String()); ok {
			s, d := float64(sys), float64(dia)
			switch {
			case s >= thr.BPSysVery || d >= thr.BPDiaVery:
				flags = append(flags, FlagBPVeryHigh)
			case s >= thr.BPSysHi || d >= thr.BPDiaHi:
				flags = append(flags, FlagBPHigh)
			}
		}
	}

	if v, p := ReadNumber(e, models.MetricHR); p == PresenceValid && (v < thr.HRLo || v > thr.HRHi) {
		flags = append(flags, FlagHRAbnormal)
	}

	if v, p := ReadNumber(e, models.MetricTemp); p == PresenceValid && v >= thr.TempHi {
		flags = append(flags, FlagFever)
	}

	if v, p := ReadNumber(e, models.MetricSugar); p == PresenceValid {
		switch {
		case v >= thr.SugarVery || v <= thr.SugarLo:
			flags = append(flags, FlagSugarVery)
		case v >= thr.SugarHi:
			flags = append(flags, FlagSugarHigh)
		}
	}

	if v, p := ReadNumber(e, models.MetricSpO2); p == PresenceValid && v < thr.SpO2Lo {
		flags = append(flags, FlagLowOxygen)
	}

	if v, p := ReadNumber(e, models.MetricRR); p == PresenceValid && (v < thr.RRLo || v > thr.RRHi) {
		flags = append(flags, FlagRRAbnormal)
	}

	return flags
}

// FlagString joins an observation's flags for display. Empty when the
// observation is unremarkable.
func FlagString(e *models.Entry, thr config.Thresholds) string {
	return strings.Join(Flags(e, thr), ", ")
}
