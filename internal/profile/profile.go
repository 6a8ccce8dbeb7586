// Package profile holds the target configuration applied to mice.
//
// A Profile is an immutable value: the built-in Default, or one loaded
// from a YAML file in the user's config directory. The applier receives
// it by value and never changes it.
package profile

import (
	"fmt"

	"github.com/muurk/openrazer-configure/internal/razer"
)

// Profile is the configuration applied to every mouse.
type Profile struct {
	DPI                 int          // Pointer resolution, set on both axes
	PollRate            int          // Polling rate in Hz
	IdleTime            int          // Seconds before a wireless mouse sleeps
	LowBatteryThreshold int          // Battery percentage that triggers the low-battery alert
	LogoBrightness      float64      // Logo brightness, 0.0 to 1.0
	LogoEffect          razer.Effect // Logo lighting effect
}

// Built-in defaults.
const (
	DefaultDPI                 = 1200
	DefaultPollRate            = 1000
	DefaultIdleTime            = 5 * 60
	DefaultLowBatteryThreshold = 10
	DefaultLogoBrightness      = 0.0
)

// Default returns the built-in profile: 1200 DPI, 1000 Hz, five minute
// idle timeout, alert at 10% battery and the logo switched off.
func Default() Profile {
	return Profile{
		DPI:                 DefaultDPI,
		PollRate:            DefaultPollRate,
		IdleTime:            DefaultIdleTime,
		LowBatteryThreshold: DefaultLowBatteryThreshold,
		LogoBrightness:      DefaultLogoBrightness,
		LogoEffect:          razer.EffectNone{},
	}
}

// String returns a one-line summary of the profile.
func (p Profile) String() string {
	effect := razer.EffectNameNone
	if p.LogoEffect != nil {
		effect = p.LogoEffect.Name()
		if c, ok := razer.EffectColor(p.LogoEffect); ok {
			effect += " " + c.String()
		}
	}
	return fmt.Sprintf("dpi=%d, poll_rate=%d, idle_time=%d, low_battery_threshold=%d, logo_brightness=%v, logo_effect=%s",
		p.DPI, p.PollRate, p.IdleTime, p.LowBatteryThreshold, p.LogoBrightness, effect)
}
