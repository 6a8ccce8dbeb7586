package razer

import (
	"strings"

	"github.com/godbus/dbus/v5/introspect"
)

// Capability is a single optional device feature. Capabilities combine as
// a bit set; a Device reports the set it supports.
type Capability uint64

const (
	CapDPI Capability = 1 << iota
	CapAvailableDPI
	CapMaxDPI
	CapDPIStages
	CapPollRate
	CapSupportedPollRates
	CapGetIdleTime
	CapSetIdleTime
	CapGetLowBatteryThreshold
	CapSetLowBatteryThreshold
	CapBattery
	CapSyncEffects
	CapLightingLogo
	CapLightingLogoBrightness
	CapLightingLogoEffect
	CapLightingLogoNone
	CapLightingLogoStatic
	CapLightingLogoSpectrum
	CapLightingLogoBreathSingle
	CapLightingLogoBreathRandom
)

// capabilityRule describes which D-Bus methods must exist for a capability.
// An empty method list means the interface alone is enough.
type capabilityRule struct {
	cap     Capability
	name    string
	iface   string
	methods []string
}

// capabilityRules is ordered by bit value so String output is stable.
var capabilityRules = []capabilityRule{
	{CapDPI, "dpi", ifaceDPI, []string{"getDPI", "setDPI"}},
	{CapAvailableDPI, "available_dpi", ifaceDPI, []string{"availableDPI"}},
	{CapMaxDPI, "max_dpi", ifaceDPI, []string{"maxDPI"}},
	{CapDPIStages, "dpi_stages", ifaceDPI, []string{"getDPIStages", "setDPIStages"}},
	{CapPollRate, "poll_rate", ifaceMisc, []string{"getPollRate", "setPollRate"}},
	{CapSupportedPollRates, "supported_poll_rates", ifaceMisc, []string{"getSupportedPollRates"}},
	{CapGetIdleTime, "get_idle_time", ifacePower, []string{"getIdleTime"}},
	{CapSetIdleTime, "set_idle_time", ifacePower, []string{"setIdleTime"}},
	{CapGetLowBatteryThreshold, "get_low_battery_threshold", ifacePower, []string{"getLowBatteryThreshold"}},
	{CapSetLowBatteryThreshold, "set_low_battery_threshold", ifacePower, []string{"setLowBatteryThreshold"}},
	{CapBattery, "battery", ifacePower, []string{"getBattery", "isCharging"}},
	{CapSyncEffects, "sync_effects", ifaceMisc, []string{"setEffectSync"}},
	{CapLightingLogo, "lighting_logo", ifaceLogo, nil},
	{CapLightingLogoBrightness, "lighting_logo_brightness", ifaceLogo, []string{"getLogoBrightness", "setLogoBrightness"}},
	{CapLightingLogoEffect, "lighting_logo_effect", ifaceLogo, []string{"getLogoEffect"}},
	{CapLightingLogoNone, "lighting_logo_none", ifaceLogo, []string{"setLogoNone"}},
	{CapLightingLogoStatic, "lighting_logo_static", ifaceLogo, []string{"setLogoStatic"}},
	{CapLightingLogoSpectrum, "lighting_logo_spectrum", ifaceLogo, []string{"setLogoSpectrum"}},
	{CapLightingLogoBreathSingle, "lighting_logo_breath_single", ifaceLogo, []string{"setLogoBreathSingle"}},
	{CapLightingLogoBreathRandom, "lighting_logo_breath_random", ifaceLogo, []string{"setLogoBreathRandom"}},
}

// Has reports whether every capability in other is also in c.
func (c Capability) Has(other Capability) bool {
	return other != 0 && c&other == other
}

// Names returns the daemon-client names of the capabilities in c.
func (c Capability) Names() []string {
	var names []string
	for _, rule := range capabilityRules {
		if c.Has(rule.cap) {
			names = append(names, rule.name)
		}
	}
	return names
}

// String returns the capability names joined by '|', or "none".
func (c Capability) String() string {
	names := c.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ProbeCapabilities derives the capability set from a device object's
// introspection data.
func ProbeCapabilities(node *introspect.Node) Capability {
	if node == nil {
		return 0
	}

	methods := make(map[string]map[string]bool, len(node.Interfaces))
	for _, iface := range node.Interfaces {
		set := make(map[string]bool, len(iface.Methods))
		for _, m := range iface.Methods {
			set[m.Name] = true
		}
		methods[iface.Name] = set
	}

	var caps Capability
	for _, rule := range capabilityRules {
		set, ok := methods[rule.iface]
		if !ok {
			continue
		}
		supported := true
		for _, m := range rule.methods {
			if !set[m] {
				supported = false
				break
			}
		}
		if supported {
			caps |= rule.cap
		}
	}
	return caps
}
