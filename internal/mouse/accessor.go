package mouse

import (
	"fmt"
	"strings"

	"github.com/muurk/openrazer-configure/internal/profile"
	"github.com/muurk/openrazer-configure/internal/razer"
)

// Names of the configurable settings, in report order.
const (
	SettingDPI                 = "dpi"
	SettingDPIStages           = "dpi_stages"
	SettingPollRate            = "poll_rate"
	SettingIdleTime            = "idle_time"
	SettingLowBatteryThreshold = "low_battery_threshold"
	SettingLogoBrightness      = "logo_brightness"
	SettingLogoEffect          = "logo_effect"
)

// Single reads a setting guarded by one capability. Without the
// capability the reading is Absent and get is not called.
func Single[T any](dev Device, c razer.Capability, get func() (T, error)) (Reading, error) {
	if !dev.Has(c) {
		return AbsentReading(), nil
	}
	v, err := get()
	if err != nil {
		return Reading{}, err
	}
	return LiveReading(v), nil
}

// Pair reads a setting with separate read and write capabilities. A
// write-only setting is reported according to strategy.
func Pair[T any](dev Device, readCap, writeCap razer.Capability, get func() (T, error), fallback T, strategy UnreadableValueStrategy) (Reading, error) {
	if dev.Has(readCap) {
		v, err := get()
		if err != nil {
			return Reading{}, err
		}
		return LiveReading(v), nil
	}
	if dev.Has(writeCap) {
		if strategy == FallbackToConfig {
			return FallbackReading(fallback), nil
		}
		return UnknownReading(), nil
	}
	return AbsentReading(), nil
}

// Configurable is one named reading.
type Configurable struct {
	Name    string
	Reading Reading
}

// Configurables is an ordered list of readings.
type Configurables []Configurable

// String renders the list as "name=value, name=value".
func (cs Configurables) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Name + "=" + c.Reading.String()
	}
	return strings.Join(parts, ", ")
}

// Get returns the reading with the given name.
func (cs Configurables) Get(name string) (Reading, bool) {
	for _, c := range cs {
		if c.Name == name {
			return c.Reading, true
		}
	}
	return Reading{}, false
}

// Accessor reads a mouse's settings through the capability gate.
type Accessor struct {
	dev     Device
	profile profile.Profile
}

// NewAccessor creates an Accessor. The profile supplies the fallback
// values for write-only settings.
func NewAccessor(dev Device, p profile.Profile) *Accessor {
	return &Accessor{dev: dev, profile: p}
}

// Configurables reads every setting, in report order. The first read
// error aborts the listing.
func (a *Accessor) Configurables(strategy UnreadableValueStrategy) (Configurables, error) {
	d, p := a.dev, a.profile

	readers := []struct {
		name string
		read func() (Reading, error)
	}{
		{SettingDPI, func() (Reading, error) {
			return Single(d, razer.CapDPI, d.DPI)
		}},
		{SettingDPIStages, func() (Reading, error) {
			return Single(d, razer.CapDPIStages, d.DPIStages)
		}},
		{SettingPollRate, func() (Reading, error) {
			return Single(d, razer.CapPollRate, d.PollRate)
		}},
		{SettingIdleTime, func() (Reading, error) {
			return Pair(d, razer.CapGetIdleTime, razer.CapSetIdleTime, d.IdleTime, p.IdleTime, strategy)
		}},
		{SettingLowBatteryThreshold, func() (Reading, error) {
			return Pair(d, razer.CapGetLowBatteryThreshold, razer.CapSetLowBatteryThreshold,
				d.LowBatteryThreshold, p.LowBatteryThreshold, strategy)
		}},
		{SettingLogoBrightness, func() (Reading, error) {
			return Single(d, razer.CapLightingLogo|razer.CapLightingLogoBrightness, d.LogoBrightness)
		}},
		{SettingLogoEffect, func() (Reading, error) {
			return Pair(d, razer.CapLightingLogo|razer.CapLightingLogoEffect,
				razer.CapLightingLogo|p.LogoEffect.Capability(),
				d.LogoEffect, p.LogoEffect.Name(), strategy)
		}},
	}

	out := make(Configurables, 0, len(readers))
	for _, r := range readers {
		reading, err := r.read()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", r.name, err)
		}
		out = append(out, Configurable{Name: r.name, Reading: reading})
	}
	return out, nil
}
