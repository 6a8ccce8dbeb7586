package razer

import (
	"testing"

	"github.com/godbus/dbus/v5/introspect"
	"github.com/stretchr/testify/assert"
)

func node(ifaces map[string][]string) *introspect.Node {
	n := &introspect.Node{}
	for name, methods := range ifaces {
		iface := introspect.Interface{Name: name}
		for _, m := range methods {
			iface.Methods = append(iface.Methods, introspect.Method{Name: m})
		}
		n.Interfaces = append(n.Interfaces, iface)
	}
	return n
}

func TestProbeCapabilitiesFullMouse(t *testing.T) {
	caps := ProbeCapabilities(node(deathAdderV2ProInterfaces))

	for _, rule := range capabilityRules {
		assert.Truef(t, caps.Has(rule.cap), "expected capability %s", rule.name)
	}
}

func TestProbeCapabilitiesRequiresAllMethods(t *testing.T) {
	caps := ProbeCapabilities(node(map[string][]string{
		ifaceDPI: {"getDPI"}, // setDPI missing
	}))

	assert.False(t, caps.Has(CapDPI))
}

func TestProbeCapabilitiesWriteOnlyIdleTime(t *testing.T) {
	caps := ProbeCapabilities(node(map[string][]string{
		ifacePower: {"setIdleTime", "setLowBatteryThreshold"},
	}))

	assert.True(t, caps.Has(CapSetIdleTime))
	assert.False(t, caps.Has(CapGetIdleTime))
	assert.True(t, caps.Has(CapSetLowBatteryThreshold))
	assert.False(t, caps.Has(CapGetLowBatteryThreshold))
	assert.False(t, caps.Has(CapBattery))
}

func TestProbeCapabilitiesLogoInterfaceAlone(t *testing.T) {
	caps := ProbeCapabilities(node(map[string][]string{
		ifaceLogo: {"setLogoStatic"},
	}))

	assert.True(t, caps.Has(CapLightingLogo))
	assert.True(t, caps.Has(CapLightingLogoStatic))
	assert.False(t, caps.Has(CapLightingLogoNone))
	assert.False(t, caps.Has(CapLightingLogoBrightness))
}

func TestProbeCapabilitiesNil(t *testing.T) {
	assert.Equal(t, Capability(0), ProbeCapabilities(nil))
}

func TestCapabilityHas(t *testing.T) {
	c := CapDPI | CapPollRate

	assert.True(t, c.Has(CapDPI))
	assert.True(t, c.Has(CapDPI|CapPollRate))
	assert.False(t, c.Has(CapDPI|CapMaxDPI))
	assert.False(t, c.Has(0), "the empty set is never reported as supported")
}

func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "none", Capability(0).String())
	assert.Equal(t, "dpi|poll_rate|lighting_logo_none", (CapLightingLogoNone | CapDPI | CapPollRate).String())
}
