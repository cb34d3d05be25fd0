// ABOUTME: User profile holding the height used for BMI derivation.
// ABOUTME: An absent or non-positive height silently disables derivation.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Profile holds the single optional profile value: height in cm.
type Profile struct {
	HeightCM *float64 `json:"height_cm"`
}

// Height returns the configured height when it is strictly positive.
func (p *Profile) Height() (float64, bool) {
	if p.HeightCM == nil || *p.HeightCM <= 0 {
		return 0, false
	}
	return *p.HeightCM, true
}

// SetHeight stores a height; non-positive values clear it.
func (p *Profile) SetHeight(cm float64) {
	if cm <= 0 {
		p.HeightCM = nil
		return
	}
	p.HeightCM = &cm
}

// GetProfilePath returns the profile file path.
func GetProfilePath() string {
	return filepath.Join(GetConfigDir(), "profile.json")
}

// LoadProfile reads the profile from the default path.
func LoadProfile() *Profile {
	return LoadProfileFrom(GetProfilePath())
}

// LoadProfileFrom reads the profile from disk. Missing or malformed
// files yield an empty profile.
func LoadProfileFrom(path string) *Profile {
	var p Profile

	data, err := os.ReadFile(path)
	if err != nil {
		return &p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return &Profile{}
	}
	return &p
}

// Save writes the profile to the default path.
func (p *Profile) Save() error {
	return p.SaveTo(GetProfilePath())
}

// SaveTo writes the profile to disk.
func (p *Profile) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
