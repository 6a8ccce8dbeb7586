package profile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/muurk/openrazer-configure/internal/razer"
)

const (
	appName     = "openrazer-configure"
	profileFile = "profile.yaml"

	// FileVersion is the only profile file version understood.
	FileVersion = 1
)

// fileModel is the on-disk shape of a profile. Pointer fields distinguish
// a missing value, which keeps the built-in default, from a zero value.
type fileModel struct {
	Version int          `yaml:"version"`
	Mouse   *mouseConfig `yaml:"mouse,omitempty"`
}

type mouseConfig struct {
	DPI                 *int          `yaml:"dpi,omitempty"`
	PollRate            *int          `yaml:"poll_rate,omitempty"`
	IdleTime            *int          `yaml:"idle_time,omitempty"`
	LowBatteryThreshold *int          `yaml:"low_battery_threshold,omitempty"`
	LogoBrightness      *float64      `yaml:"logo_brightness,omitempty"`
	LogoEffect          *effectConfig `yaml:"logo_effect,omitempty"`
}

type effectConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"` // "#rrggbb", for static and breath_single
}

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/openrazer-configure or $HOME/.config/openrazer-configure
//   - macOS: $HOME/.config/openrazer-configure
func GetConfigDir() (string, error) {
	if runtime.GOOS != "darwin" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appName), nil
}

// GetProfilePath returns the full path to the default profile file.
func GetProfilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, profileFile), nil
}

// Load reads and validates the profile at path. Fields missing from the
// file keep their built-in defaults.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML profile document. Unknown keys are rejected so a
// misspelt setting does not silently fall back to its default.
func Parse(data []byte) (Profile, error) {
	var model fileModel
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&model); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}

	if model.Version != FileVersion {
		return Profile{}, fmt.Errorf("unsupported profile version: %d (expected %d)", model.Version, FileVersion)
	}

	p := Default()
	if m := model.Mouse; m != nil {
		if m.DPI != nil {
			p.DPI = *m.DPI
		}
		if m.PollRate != nil {
			p.PollRate = *m.PollRate
		}
		if m.IdleTime != nil {
			p.IdleTime = *m.IdleTime
		}
		if m.LowBatteryThreshold != nil {
			p.LowBatteryThreshold = *m.LowBatteryThreshold
		}
		if m.LogoBrightness != nil {
			p.LogoBrightness = *m.LogoBrightness
		}
		if m.LogoEffect != nil {
			effect, err := razer.ParseEffect(m.LogoEffect.Name, m.LogoEffect.Color)
			if err != nil {
				return Profile{}, NewValidationError("logo_effect", err.Error())
			}
			p.LogoEffect = effect
		}
	}

	if errs := p.Validate(); len(errs) > 0 {
		return Profile{}, errors.Join(errs...)
	}
	return p, nil
}

// Resolve picks the profile for a run. An explicit path must exist. With
// no path, the default profile file is used when present and the built-in
// profile otherwise. The returned source is the file read, or "" for the
// built-in profile.
func Resolve(path string) (p Profile, source string, err error) {
	if path != "" {
		p, err = Load(path)
		return p, path, err
	}

	path, err = GetProfilePath()
	if err != nil {
		return Default(), "", nil
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		return Default(), "", nil
	}

	p, err = Load(path)
	return p, path, err
}

// Marshal encodes p as a YAML profile document.
func Marshal(p Profile) ([]byte, error) {
	effect := &effectConfig{Name: razer.EffectNameNone}
	if p.LogoEffect != nil {
		effect.Name = p.LogoEffect.Name()
		if c, ok := razer.EffectColor(p.LogoEffect); ok {
			effect.Color = c.String()
		}
	}

	model := fileModel{
		Version: FileVersion,
		Mouse: &mouseConfig{
			DPI:                 &p.DPI,
			PollRate:            &p.PollRate,
			IdleTime:            &p.IdleTime,
			LowBatteryThreshold: &p.LowBatteryThreshold,
			LogoBrightness:      &p.LogoBrightness,
			LogoEffect:          effect,
		},
	}
	return yaml.Marshal(&model)
}

// Save writes p to path, creating the parent directory if needed.
// Performs an atomic write to prevent corruption on crash.
func Save(path string, p Profile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	header := []byte(`# openrazer-configure profile
# Applied to every mouse the OpenRazer daemon exposes.
#
# logo_brightness ranges from 0.0 to 1.0.
# logo_effect.name is one of: none, static, spectrum, breath_single, breath_random
# logo_effect.color ("#rrggbb") is used by static and breath_single.

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary profile file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save profile file: %w", err)
	}

	return nil
}
