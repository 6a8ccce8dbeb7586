// Package mousetest provides an in-memory mouse for tests.
package mousetest

import (
	"fmt"
	"strings"

	"github.com/muurk/openrazer-configure/internal/razer"
)

// Call is one method invocation seen by a FakeDevice.
type Call struct {
	Method string
	Args   []interface{}
}

// IsWrite reports whether the call changed device state.
func (c Call) IsWrite() bool {
	return strings.HasPrefix(c.Method, "Set")
}

// methodCaps maps each method to the capability a real daemon requires
// before it answers.
var methodCaps = map[string]razer.Capability{
	"DPI":                    razer.CapDPI,
	"SetDPI":                 razer.CapDPI,
	"MaxDPI":                 razer.CapMaxDPI,
	"AvailableDPI":           razer.CapAvailableDPI,
	"DPIStages":              razer.CapDPIStages,
	"SetDPIStages":           razer.CapDPIStages,
	"PollRate":               razer.CapPollRate,
	"SetPollRate":            razer.CapPollRate,
	"SupportedPollRates":     razer.CapSupportedPollRates,
	"IdleTime":               razer.CapGetIdleTime,
	"SetIdleTime":            razer.CapSetIdleTime,
	"LowBatteryThreshold":    razer.CapGetLowBatteryThreshold,
	"SetLowBatteryThreshold": razer.CapSetLowBatteryThreshold,
	"SetEffectSync":          razer.CapSyncEffects,
	"LogoBrightness":         razer.CapLightingLogoBrightness,
	"SetLogoBrightness":      razer.CapLightingLogoBrightness,
	"LogoEffect":             razer.CapLightingLogoEffect,
}

// FakeDevice is a mouse whose state lives in its fields. Setters update
// the state, so applying a profile twice behaves like a real device.
// Calls to a method whose capability is missing fail the way the daemon
// does, with an Unsupported DeviceError.
type FakeDevice struct {
	Caps  razer.Capability
	Attrs razer.Attributes

	CurrentDPI          razer.DPI
	MaxDPIValue         int
	AvailableDPIValues  []int
	Stages              razer.DPIStages
	CurrentPollRate     int
	SupportedPollRateHz []int
	CurrentIdleTime     int
	CurrentThreshold    int
	EffectSync          bool
	CurrentBrightness   float64
	CurrentEffect       razer.Effect
	CurrentEffectName   string

	// Errors makes the named method fail with the given error.
	Errors map[string]error

	Calls []Call
}

// New creates a FakeDevice with the given capabilities and an empty state.
func New(caps razer.Capability) *FakeDevice {
	return &FakeDevice{
		Caps:   caps,
		Attrs:  razer.Attributes{Name: "Fake Mouse", Type: razer.TypeMouse, Serial: "FAKE0001"},
		Errors: make(map[string]error),
	}
}

// DeathAdderV2Pro returns a fake with the capabilities of a DeathAdder V2
// Pro, whose idle time and battery threshold are write-only.
func DeathAdderV2Pro() *FakeDevice {
	f := New(razer.CapDPI | razer.CapAvailableDPI | razer.CapMaxDPI | razer.CapDPIStages |
		razer.CapPollRate | razer.CapSupportedPollRates |
		razer.CapSetIdleTime | razer.CapSetLowBatteryThreshold | razer.CapBattery |
		razer.CapSyncEffects | razer.CapLightingLogo | razer.CapLightingLogoBrightness |
		razer.CapLightingLogoEffect | razer.CapLightingLogoNone | razer.CapLightingLogoStatic |
		razer.CapLightingLogoSpectrum | razer.CapLightingLogoBreathSingle | razer.CapLightingLogoBreathRandom)
	f.Attrs = razer.Attributes{
		Name:            "Razer DeathAdder V2 Pro (Wireless)",
		Type:            razer.TypeMouse,
		Serial:          "PM2143H12345678",
		FirmwareVersion: "v1.01",
		DriverVersion:   "3.9.0",
		HasBattery:      true,
		BatteryLevel:    87,
	}
	f.CurrentDPI = razer.Square(800)
	f.MaxDPIValue = 20000
	f.Stages = razer.DPIStages{Active: 2, Stages: []razer.DPI{razer.Square(400), razer.Square(800), razer.Square(1600)}}
	f.CurrentPollRate = 500
	f.SupportedPollRateHz = []int{125, 500, 1000}
	f.EffectSync = true
	f.CurrentBrightness = 1.0
	f.CurrentEffectName = razer.EffectNameSpectrum
	return f
}

// Reset forgets the recorded calls.
func (f *FakeDevice) Reset() {
	f.Calls = nil
}

// Writes returns the recorded calls that changed state.
func (f *FakeDevice) Writes() []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.IsWrite() {
			out = append(out, c)
		}
	}
	return out
}

// Methods returns the names of the recorded calls, in order.
func (f *FakeDevice) Methods() []string {
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = c.Method
	}
	return out
}

func (f *FakeDevice) enter(method string, c razer.Capability, args ...interface{}) error {
	f.Calls = append(f.Calls, Call{Method: method, Args: args})
	if err := f.Errors[method]; err != nil {
		return err
	}
	if c != 0 && !f.Caps.Has(c) {
		return &razer.DeviceError{
			Type:    razer.ErrTypeUnsupported,
			Message: fmt.Sprintf("device does not implement %s", method),
			Serial:  f.Attrs.Serial,
			Method:  method,
		}
	}
	return nil
}

func (f *FakeDevice) Has(c razer.Capability) bool { return f.Caps.Has(c) }

func (f *FakeDevice) Serial() string { return f.Attrs.Serial }

func (f *FakeDevice) Attributes() (razer.Attributes, error) {
	if err := f.enter("Attributes", 0); err != nil {
		return razer.Attributes{}, err
	}
	return f.Attrs, nil
}

func (f *FakeDevice) DPI() (razer.DPI, error) {
	return f.CurrentDPI, f.enter("DPI", methodCaps["DPI"])
}

func (f *FakeDevice) SetDPI(v razer.DPI) error {
	if err := f.enter("SetDPI", methodCaps["SetDPI"], v); err != nil {
		return err
	}
	f.CurrentDPI = v
	return nil
}

func (f *FakeDevice) MaxDPI() (int, error) {
	return f.MaxDPIValue, f.enter("MaxDPI", methodCaps["MaxDPI"])
}

func (f *FakeDevice) AvailableDPI() ([]int, error) {
	return f.AvailableDPIValues, f.enter("AvailableDPI", methodCaps["AvailableDPI"])
}

func (f *FakeDevice) DPIStages() (razer.DPIStages, error) {
	return f.Stages, f.enter("DPIStages", methodCaps["DPIStages"])
}

func (f *FakeDevice) SetDPIStages(v razer.DPIStages) error {
	if err := f.enter("SetDPIStages", methodCaps["SetDPIStages"], v); err != nil {
		return err
	}
	f.Stages = v
	return nil
}

func (f *FakeDevice) PollRate() (int, error) {
	return f.CurrentPollRate, f.enter("PollRate", methodCaps["PollRate"])
}

func (f *FakeDevice) SetPollRate(hz int) error {
	if err := f.enter("SetPollRate", methodCaps["SetPollRate"], hz); err != nil {
		return err
	}
	f.CurrentPollRate = hz
	return nil
}

func (f *FakeDevice) SupportedPollRates() ([]int, error) {
	return f.SupportedPollRateHz, f.enter("SupportedPollRates", methodCaps["SupportedPollRates"])
}

func (f *FakeDevice) IdleTime() (int, error) {
	return f.CurrentIdleTime, f.enter("IdleTime", methodCaps["IdleTime"])
}

func (f *FakeDevice) SetIdleTime(seconds int) error {
	if err := f.enter("SetIdleTime", methodCaps["SetIdleTime"], seconds); err != nil {
		return err
	}
	f.CurrentIdleTime = seconds
	return nil
}

func (f *FakeDevice) LowBatteryThreshold() (int, error) {
	return f.CurrentThreshold, f.enter("LowBatteryThreshold", methodCaps["LowBatteryThreshold"])
}

func (f *FakeDevice) SetLowBatteryThreshold(percent int) error {
	if err := f.enter("SetLowBatteryThreshold", methodCaps["SetLowBatteryThreshold"], percent); err != nil {
		return err
	}
	f.CurrentThreshold = percent
	return nil
}

func (f *FakeDevice) SetEffectSync(enabled bool) error {
	if err := f.enter("SetEffectSync", methodCaps["SetEffectSync"], enabled); err != nil {
		return err
	}
	f.EffectSync = enabled
	return nil
}

func (f *FakeDevice) LogoBrightness() (float64, error) {
	return f.CurrentBrightness, f.enter("LogoBrightness", methodCaps["LogoBrightness"])
}

func (f *FakeDevice) SetLogoBrightness(v float64) error {
	if err := f.enter("SetLogoBrightness", methodCaps["SetLogoBrightness"], v); err != nil {
		return err
	}
	f.CurrentBrightness = v
	return nil
}

func (f *FakeDevice) LogoEffect() (string, error) {
	return f.CurrentEffectName, f.enter("LogoEffect", methodCaps["LogoEffect"])
}

func (f *FakeDevice) SetLogoEffect(e razer.Effect) error {
	if err := f.enter("SetLogoEffect", e.Capability(), e); err != nil {
		return err
	}
	f.CurrentEffect = e
	f.CurrentEffectName = e.Name()
	return nil
}
