// Package razer provides a D-Bus client for the OpenRazer device daemon.
//
// The daemon owns the hardware; this package only talks to it over the
// session bus. It enumerates the devices the daemon exposes, probes what
// each device can do, and offers typed getters and setters for the
// properties the configure command touches.
//
// # Capabilities
//
// A device's capabilities are computed once, when the device is opened,
// from the D-Bus introspection data of its object. Each Capability is a
// bit flag; a capability is present when every method it needs exists on
// the device object:
//
//	dev, err := client.Device("PM2143H12345678")
//	if err != nil {
//	    return err
//	}
//	if dev.Has(razer.CapPollRate) {
//	    rate, err := dev.PollRate()
//	    ...
//	}
//
// Calling a getter or setter for a capability the device lacks is a
// programming error; the daemon answers with UnknownMethod and the call
// returns a DeviceError.
//
// # Lighting effects
//
// Logo effects are a closed set of Effect values (EffectNone,
// EffectStatic, EffectSpectrum, EffectBreathSingle, EffectBreathRandom).
// Each kind carries its own arguments and knows the capability that gates
// it, so callers never assemble method names at runtime.
//
// # Error Handling
//
// Every D-Bus failure is returned as a *DeviceError that classifies the
// failure (daemon not running, device gone, method unsupported, access
// denied, timeout, decode). Nothing is retried.
package razer
