package razer

import (
	"fmt"
	"strconv"
	"strings"
)

// Effect names used in profiles and reported by Device.LogoEffect.
const (
	EffectNameNone         = "none"
	EffectNameStatic       = "static"
	EffectNameSpectrum     = "spectrum"
	EffectNameBreathSingle = "breath_single"
	EffectNameBreathRandom = "breath_random"
)

// daemonEffectNames maps the names the daemon persists for the logo zone
// to effect names. The daemon stores breath effects in camelCase.
var daemonEffectNames = map[string]string{
	"none":          EffectNameNone,
	"static":        EffectNameStatic,
	"spectrum":      EffectNameSpectrum,
	"breathSingle":  EffectNameBreathSingle,
	"breathRandom":  EffectNameBreathRandom,
	"breath_single": EffectNameBreathSingle,
	"breath_random": EffectNameBreathRandom,
}

// EffectNameFromDaemon translates an effect name reported by the daemon.
// Unknown names, such as effects this program never sets, pass through.
func EffectNameFromDaemon(name string) string {
	if n, ok := daemonEffectNames[name]; ok {
		return n
	}
	return name
}

// Effect is a lighting effect that can be applied to the logo zone.
// The set of kinds is closed; each kind fixes the shape of its arguments.
type Effect interface {
	// Name is the effect name Device.LogoEffect reports once the effect is active.
	Name() string
	// Capability is the capability a device needs to accept the effect.
	Capability() Capability

	method() string
	args() []interface{}
}

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// ParseRGB parses a "#rrggbb" colour.
func ParseRGB(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("colour must be #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("colour must be #rrggbb, got %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// String formats the colour as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// EffectNone turns the zone off.
type EffectNone struct{}

func (EffectNone) Name() string { return EffectNameNone }
func (EffectNone) Capability() Capability { return CapLightingLogoNone }
func (EffectNone) method() string { return "setLogoNone" }
func (EffectNone) args() []interface{} { return nil }

// EffectStatic lights the zone with a single colour.
type EffectStatic struct {
	Color RGB
}

func (EffectStatic) Name() string { return EffectNameStatic }
func (EffectStatic) Capability() Capability { return CapLightingLogoStatic }
func (EffectStatic) method() string { return "setLogoStatic" }
func (e EffectStatic) args() []interface{} {
	return []interface{}{e.Color.R, e.Color.G, e.Color.B}
}

// EffectSpectrum cycles through the colour spectrum.
type EffectSpectrum struct{}

func (EffectSpectrum) Name() string { return EffectNameSpectrum }
func (EffectSpectrum) Capability() Capability { return CapLightingLogoSpectrum }
func (EffectSpectrum) method() string { return "setLogoSpectrum" }
func (EffectSpectrum) args() []interface{} { return nil }

// EffectBreathSingle breathes a single colour.
type EffectBreathSingle struct {
	Color RGB
}

func (EffectBreathSingle) Name() string { return EffectNameBreathSingle }
func (EffectBreathSingle) Capability() Capability { return CapLightingLogoBreathSingle }
func (EffectBreathSingle) method() string { return "setLogoBreathSingle" }
func (e EffectBreathSingle) args() []interface{} {
	return []interface{}{e.Color.R, e.Color.G, e.Color.B}
}

// EffectBreathRandom breathes random colours.
type EffectBreathRandom struct{}

func (EffectBreathRandom) Name() string { return EffectNameBreathRandom }
func (EffectBreathRandom) Capability() Capability { return CapLightingLogoBreathRandom }
func (EffectBreathRandom) method() string { return "setLogoBreathRandom" }
func (EffectBreathRandom) args() []interface{} { return nil }

// ParseEffect builds an Effect from its name and, for coloured effects, a
// "#rrggbb" colour. The colour is ignored by effects that take none.
func ParseEffect(name, color string) (Effect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case EffectNameNone, "":
		return EffectNone{}, nil
	case EffectNameSpectrum:
		return EffectSpectrum{}, nil
	case EffectNameBreathRandom:
		return EffectBreathRandom{}, nil
	case EffectNameStatic:
		c, err := ParseRGB(color)
		if err != nil {
			return nil, fmt.Errorf("static effect: %w", err)
		}
		return EffectStatic{Color: c}, nil
	case EffectNameBreathSingle:
		c, err := ParseRGB(color)
		if err != nil {
			return nil, fmt.Errorf("breath_single effect: %w", err)
		}
		return EffectBreathSingle{Color: c}, nil
	default:
		return nil, fmt.Errorf("unknown logo effect %q", name)
	}
}

// EffectColor returns the colour argument of e, if it has one.
func EffectColor(e Effect) (RGB, bool) {
	switch v := e.(type) {
	case EffectStatic:
		return v.Color, true
	case EffectBreathSingle:
		return v.Color, true
	default:
		return RGB{}, false
	}
}
