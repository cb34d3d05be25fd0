// ABOUTME: Threshold and active-metric configuration with storage backend selection.
// ABOUTME: Loads fail-open to defaults; malformed config never blocks startup.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/bodylog/internal/models"
	"github.com/harperreed/bodylog/internal/store"
)

// Thresholds holds the named numeric limits the evaluator classifies
// observations against. The set is flat and mutable; every evaluation
// uses whatever the caller passes, there is no snapshotting.
type Thresholds struct {
	BPSysHi   float64 `json:"bp_sys_hi"`
	BPDiaHi   float64 `json:"bp_dia_hi"`
	BPSysVery float64 `json:"bp_sys_very"`
	BPDiaVery float64 `json:"bp_dia_very"`
	HRLo      float64 `json:"hr_lo"`
	HRHi      float64 `json:"hr_hi"`
	TempHi    float64 `json:"temp_hi"`
	SugarHi   float64 `json:"sugar_hi"`
	SugarVery float64 `json:"sugar_very"`
	SugarLo   float64 `json:"sugar_lo"`
	SpO2Lo    float64 `json:"spo2_lo"`
	RRLo      float64 `json:"rr_lo"`
	RRHi      float64 `json:"rr_hi"`
}

// ThresholdNames lists the settable limit names in display order.
var ThresholdNames = []string{
	"bp_sys_hi", "bp_dia_hi", "bp_sys_very", "bp_dia_very",
	"hr_lo", "hr_hi", "temp_hi",
	"sugar_hi", "sugar_very", "sugar_lo",
	"spo2_lo", "rr_lo", "rr_hi",
}

// Get returns the limit for a threshold name.
func (t *Thresholds) Get(name string) (float64, bool) {
	if p := t.field(name); p != nil {
		return *p, true
	}
	return 0, false
}

// Set assigns a limit by threshold name.
func (t *Thresholds) Set(name string, value float64) error {
	p := t.field(name)
	if p == nil {
		return fmt.Errorf("unknown threshold: %s", name)
	}
	*p = value
	return nil
}

func (t *Thresholds) field(name string) *float64 {
	switch name {
	case "bp_sys_hi":
		return &t.BPSysHi
	case "bp_dia_hi":
		return &t.BPDiaHi
	case "bp_sys_very":
		return &t.BPSysVery
	case "bp_dia_very":
		return &t.BPDiaVery
	case "hr_lo":
		return &t.HRLo
	case "hr_hi":
		return &t.HRHi
	case "temp_hi":
		return &t.TempHi
	case "sugar_hi":
		return &t.SugarHi
	case "sugar_very":
		return &t.SugarVery
	case "sugar_lo":
		return &t.SugarLo
	case "spo2_lo":
		return &t.SpO2Lo
	case "rr_lo":
		return &t.RRLo
	case "rr_hi":
		return &t.RRHi
	}
	return nil
}

// DefaultThresholds returns the built-in clinical limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BPSysHi: 140, BPDiaHi: 90,
		BPSysVery: 180, BPDiaVery: 120,
		HRLo: 50, HRHi: 120,
		TempHi:  38.5,
		SugarHi: 180, SugarVery: 240, SugarLo: 60,
		SpO2Lo: 92,
		RRLo:   10, RRHi: 24,
	}
}

// DefaultMetrics is the active metric list used when none is configured.
var DefaultMetrics = []models.Metric{
	models.MetricBP, models.MetricHR, models.MetricTemp, models.MetricSugar,
}

// Config stores the active metric selection, the threshold set, and the
// tool's storage backend settings.
type Config struct {
	Metrics    []models.Metric `json:"metrics"`
	Thresholds Thresholds      `json:"thresholds"`

	// Backend selects the storage backend: "file" (default) or "badger".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for entry storage. Supports ~
	// expansion. Defaults to the standard XDG data directory.
	DataDir string `json:"data_dir,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Metrics:    append([]models.Metric(nil), DefaultMetrics...),
		Thresholds: DefaultThresholds(),
	}
}

// GetBackend returns the configured backend, defaulting to "file".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "file"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return store.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// OpenStore opens the entry store on the configured backend.
func (c *Config) OpenStore() (*store.Store, error) {
	dataDir := c.GetDataDir()

	switch c.GetBackend() {
	case "file":
		return store.Open(store.NewFileStore(filepath.Join(dataDir, "bodylog.json")))
	case "badger":
		p, err := store.OpenBadgerStore(filepath.Join(dataDir, "badger"))
		if err != nil {
			return nil, err
		}
		return store.Open(p)
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.GetBackend())
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigDir returns the config directory following XDG spec.
func GetConfigDir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "bodylog")
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.json")
}

// Load reads config from the default path.
func Load() *Config {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads config from disk. A missing or malformed file yields
// the built-in defaults; partial files keep defaults for absent keys.
func LoadFrom(path string) *Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return Default()
	}

	cfg.Metrics = validMetrics(cfg.Metrics)
	if len(cfg.Metrics) == 0 {
		cfg.Metrics = append([]models.Metric(nil), DefaultMetrics...)
	}
	return cfg
}

// validMetrics drops metric names the catalog does not know.
func validMetrics(metrics []models.Metric) []models.Metric {
	var out []models.Metric
	for _, m := range metrics {
		if models.IsValidMetric(string(m)) {
			out = append(out, m)
		}
	}
	return out
}

// Save writes config to the default path.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes config to disk.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
