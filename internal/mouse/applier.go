package mouse

import (
	"fmt"
	"math"
	"slices"

	"github.com/muurk/openrazer-configure/internal/profile"
	"github.com/muurk/openrazer-configure/internal/razer"
)

// SettingEffectSync names the cross-zone effect sync toggle in a Change.
const SettingEffectSync = "sync_effects"

// brightnessTolerance absorbs the daemon's whole-percent rounding.
const brightnessTolerance = 0.005

// Change is one write made by the Applier.
type Change struct {
	Setting  string
	Previous interface{} // nil when the setting could not be read first
	Value    interface{}
}

// Blind reports whether the write was made without reading the setting.
func (c Change) Blind() bool {
	return c.Previous == nil
}

func (c Change) String() string {
	prev := UnknownMarker
	if !c.Blind() {
		prev = fmt.Sprint(c.Previous)
	}
	return fmt.Sprintf("%s: %s -> %v", c.Setting, prev, c.Value)
}

// Applier makes a mouse match a profile with as few writes as possible.
type Applier struct {
	dev     Device
	profile profile.Profile

	changes     []Change
	dpi         int
	dpiResolved bool
}

// NewApplier creates an Applier for dev.
func NewApplier(dev Device, p profile.Profile) *Applier {
	return &Applier{dev: dev, profile: p}
}

// Apply writes every profile setting the device supports and that differs
// from the device's current value, in a fixed order. It returns the writes
// made; on error the list holds the writes made before the failure.
func (a *Applier) Apply() ([]Change, error) {
	a.changes = nil
	a.dpiResolved = false

	steps := []struct {
		name  string
		apply func() error
	}{
		{SettingDPI, a.applyDPI},
		{SettingDPIStages, a.applyDPIStages},
		{SettingPollRate, a.applyPollRate},
		{SettingIdleTime, a.applyIdleTime},
		{SettingLowBatteryThreshold, a.applyLowBatteryThreshold},
		{"logo", a.applyLogo},
	}

	for _, step := range steps {
		if err := step.apply(); err != nil {
			return a.changes, fmt.Errorf("failed to apply %s: %w", step.name, err)
		}
	}
	return a.changes, nil
}

func (a *Applier) record(setting string, previous, value interface{}) {
	a.changes = append(a.changes, Change{Setting: setting, Previous: previous, Value: value})
}

// ResolveDPI returns the DPI the device will be set to: the profile value
// clamped to the device maximum, then snapped to the nearest available
// value when the device only supports a discrete set.
func (a *Applier) ResolveDPI() (int, error) {
	if a.dpiResolved {
		return a.dpi, nil
	}

	target := a.profile.DPI

	if a.dev.Has(razer.CapMaxDPI) {
		maxDPI, err := a.dev.MaxDPI()
		if err != nil {
			return 0, err
		}
		target = min(target, maxDPI)
	}

	if a.dev.Has(razer.CapAvailableDPI) {
		available, err := a.dev.AvailableDPI()
		if err != nil {
			return 0, err
		}
		if len(available) > 0 && !slices.Contains(available, target) {
			target = Nearest(available, target)
		}
	}

	a.dpi, a.dpiResolved = target, true
	return target, nil
}

// ResolvePollRate returns the polling rate the device will be set to.
func (a *Applier) ResolvePollRate() (int, error) {
	target := a.profile.PollRate

	if a.dev.Has(razer.CapSupportedPollRates) {
		rates, err := a.dev.SupportedPollRates()
		if err != nil {
			return 0, err
		}
		if len(rates) > 0 && !slices.Contains(rates, target) {
			target = Nearest(rates, target)
		}
	}
	return target, nil
}

func (a *Applier) applyDPI() error {
	if !a.dev.Has(razer.CapDPI) {
		return nil
	}

	t, err := a.ResolveDPI()
	if err != nil {
		return err
	}
	want := razer.Square(t)

	current, err := a.dev.DPI()
	if err != nil {
		return err
	}
	if current == want {
		return nil
	}

	if err := a.dev.SetDPI(want); err != nil {
		return err
	}
	a.record(SettingDPI, current, want)
	return nil
}

func (a *Applier) applyDPIStages() error {
	if !a.dev.Has(razer.CapDPIStages) {
		return nil
	}

	t, err := a.ResolveDPI()
	if err != nil {
		return err
	}
	want := razer.SingleStage(razer.Square(t))

	current, err := a.dev.DPIStages()
	if err != nil {
		return err
	}
	if current.Equal(want) {
		return nil
	}

	if err := a.dev.SetDPIStages(want); err != nil {
		return err
	}
	a.record(SettingDPIStages, current, want)
	return nil
}

func (a *Applier) applyPollRate() error {
	if !a.dev.Has(razer.CapPollRate) {
		return nil
	}

	want, err := a.ResolvePollRate()
	if err != nil {
		return err
	}

	current, err := a.dev.PollRate()
	if err != nil {
		return err
	}
	if current == want {
		return nil
	}

	if err := a.dev.SetPollRate(want); err != nil {
		return err
	}
	a.record(SettingPollRate, current, want)
	return nil
}

// applyReadWrite sets a setting with separate read and write capabilities.
// Without the read capability the write happens unconditionally.
func (a *Applier) applyReadWrite(setting string, readCap, writeCap razer.Capability,
	get func() (int, error), set func(int) error, want int) error {
	if !a.dev.Has(writeCap) {
		return nil
	}

	var previous interface{}
	if a.dev.Has(readCap) {
		current, err := get()
		if err != nil {
			return err
		}
		if current == want {
			return nil
		}
		previous = current
	}

	if err := set(want); err != nil {
		return err
	}
	a.record(setting, previous, want)
	return nil
}

func (a *Applier) applyIdleTime() error {
	return a.applyReadWrite(SettingIdleTime, razer.CapGetIdleTime, razer.CapSetIdleTime,
		a.dev.IdleTime, a.dev.SetIdleTime, a.profile.IdleTime)
}

func (a *Applier) applyLowBatteryThreshold() error {
	return a.applyReadWrite(SettingLowBatteryThreshold, razer.CapGetLowBatteryThreshold, razer.CapSetLowBatteryThreshold,
		a.dev.LowBatteryThreshold, a.dev.SetLowBatteryThreshold, a.profile.LowBatteryThreshold)
}

func (a *Applier) applyLogo() error {
	if !a.dev.Has(razer.CapLightingLogo) {
		return nil
	}

	// Effect sync must be off before any per-zone write.
	if a.dev.Has(razer.CapSyncEffects) {
		if err := a.dev.SetEffectSync(false); err != nil {
			return err
		}
		a.record(SettingEffectSync, nil, false)
	}

	if a.dev.Has(razer.CapLightingLogoBrightness) {
		want := a.profile.LogoBrightness
		current, err := a.dev.LogoBrightness()
		if err != nil {
			return err
		}
		if math.Abs(current-want) > brightnessTolerance {
			if err := a.dev.SetLogoBrightness(want); err != nil {
				return err
			}
			a.record(SettingLogoBrightness, current, want)
		}
	}

	effect := a.profile.LogoEffect
	if effect == nil || !a.dev.Has(effect.Capability()) {
		return nil
	}

	var previous interface{}
	if a.dev.Has(razer.CapLightingLogoEffect) {
		current, err := a.dev.LogoEffect()
		if err != nil {
			return err
		}
		if current == effect.Name() {
			return nil
		}
		previous = current
	}

	if err := a.dev.SetLogoEffect(effect); err != nil {
		return err
	}
	a.record(SettingLogoEffect, previous, effect.Name())
	return nil
}
