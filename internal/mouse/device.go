// Package mouse reads and applies mouse settings through a capability
// gate. Nothing is read or written unless the device declares the
// capability for it.
package mouse

import "github.com/muurk/openrazer-configure/internal/razer"

// Device is the view of a mouse the Accessor and Applier work against.
// Every method may be a blocking round trip to the daemon.
type Device interface {
	Has(c razer.Capability) bool

	DPI() (razer.DPI, error)
	SetDPI(v razer.DPI) error
	MaxDPI() (int, error)
	AvailableDPI() ([]int, error)
	DPIStages() (razer.DPIStages, error)
	SetDPIStages(v razer.DPIStages) error

	PollRate() (int, error)
	SetPollRate(hz int) error
	SupportedPollRates() ([]int, error)

	IdleTime() (int, error)
	SetIdleTime(seconds int) error
	LowBatteryThreshold() (int, error)
	SetLowBatteryThreshold(percent int) error

	SetEffectSync(enabled bool) error
	LogoBrightness() (float64, error)
	SetLogoBrightness(v float64) error
	LogoEffect() (string, error)
	SetLogoEffect(e razer.Effect) error
}

var _ Device = (*razer.Device)(nil)
