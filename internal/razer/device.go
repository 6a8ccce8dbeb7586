package razer

import (
	"math"

	"github.com/godbus/dbus/v5"
)

// logoBrightnessScale converts between the 0.0–1.0 brightness used by
// callers and the 0–100 percentage the daemon speaks.
const logoBrightnessScale = 100.0

// Device is a single device managed by the daemon. Its capability set is
// fixed when the device is opened.
type Device struct {
	obj    dbus.BusObject
	serial string
	caps   Capability
}

// Serial returns the serial the device was opened with
func (d *Device) Serial() string {
	return d.serial
}

// Capabilities returns the capability set probed at open time
func (d *Device) Capabilities() Capability {
	return d.caps
}

// Has reports whether the device supports c
func (d *Device) Has(c Capability) bool {
	return d.caps.Has(c)
}

// call invokes iface.method and stores the reply into out, which may be
// empty for methods without a return value.
func (d *Device) call(iface, method string, out []interface{}, args ...interface{}) error {
	name := iface + "." + method
	call := d.obj.Call(name, 0, args...)
	if call.Err != nil {
		return ClassifyBusError(call.Err, d.serial, name)
	}
	if len(out) == 0 {
		return nil
	}
	if err := call.Store(out...); err != nil {
		return NewDecodeError(d.serial, name, err)
	}
	return nil
}

// checkRange refuses arguments the method's unsigned wire type would
// truncate.
func (d *Device) checkRange(iface, method string, limit int, values ...int) error {
	for _, v := range values {
		if v < 0 || v > limit {
			return NewRangeError(d.serial, iface+"."+method, v, limit)
		}
	}
	return nil
}

func (d *Device) getString(iface, method string) (string, error) {
	var v string
	err := d.call(iface, method, []interface{}{&v})
	return v, err
}

// Attributes reads the identifying attributes of the device. Battery
// fields are only read when the device has a battery.
func (d *Device) Attributes() (Attributes, error) {
	var a Attributes
	var err error

	if a.Name, err = d.getString(ifaceMisc, "getDeviceName"); err != nil {
		return a, err
	}
	if a.Type, err = d.getString(ifaceMisc, "getDeviceType"); err != nil {
		return a, err
	}
	if a.Serial, err = d.getString(ifaceMisc, "getSerial"); err != nil {
		return a, err
	}
	if a.FirmwareVersion, err = d.getString(ifaceMisc, "getFirmware"); err != nil {
		return a, err
	}
	if a.DriverVersion, err = d.getString(ifaceMisc, "getDriverVersion"); err != nil {
		return a, err
	}

	if d.Has(CapBattery) {
		a.HasBattery = true
		if err := d.call(ifacePower, "getBattery", []interface{}{&a.BatteryLevel}); err != nil {
			return a, err
		}
		if err := d.call(ifacePower, "isCharging", []interface{}{&a.Charging}); err != nil {
			return a, err
		}
	}

	return a, nil
}

// DPI returns the current resolution
func (d *Device) DPI() (DPI, error) {
	var v []int32
	if err := d.call(ifaceDPI, "getDPI", []interface{}{&v}); err != nil {
		return DPI{}, err
	}
	switch len(v) {
	case 0:
		return DPI{}, NewDecodeError(d.serial, ifaceDPI+".getDPI", nil)
	case 1:
		return Square(int(v[0])), nil
	default:
		return DPI{X: int(v[0]), Y: int(v[1])}, nil
	}
}

// SetDPI sets the current resolution
func (d *Device) SetDPI(v DPI) error {
	if err := d.checkRange(ifaceDPI, "setDPI", math.MaxUint16, v.X, v.Y); err != nil {
		return err
	}
	return d.call(ifaceDPI, "setDPI", nil, uint16(v.X), uint16(v.Y))
}

// MaxDPI returns the highest resolution the sensor supports
func (d *Device) MaxDPI() (int, error) {
	var v int32
	err := d.call(ifaceDPI, "maxDPI", []interface{}{&v})
	return int(v), err
}

// AvailableDPI returns the discrete resolutions the device accepts. An
// empty list means any value up to MaxDPI is accepted.
func (d *Device) AvailableDPI() ([]int, error) {
	var v []int32
	if err := d.call(ifaceDPI, "availableDPI", []interface{}{&v}); err != nil {
		return nil, err
	}
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = int(x)
	}
	return out, nil
}

// DPIStages returns the resolution stages
func (d *Device) DPIStages() (DPIStages, error) {
	var active uint8
	var stages []dbusDPI
	if err := d.call(ifaceDPI, "getDPIStages", []interface{}{&active, &stages}); err != nil {
		return DPIStages{}, err
	}
	out := DPIStages{Active: int(active), Stages: make([]DPI, len(stages))}
	for i, s := range stages {
		out.Stages[i] = DPI{X: int(s.X), Y: int(s.Y)}
	}
	return out, nil
}

// SetDPIStages replaces the resolution stages
func (d *Device) SetDPIStages(v DPIStages) error {
	if err := d.checkRange(ifaceDPI, "setDPIStages", math.MaxUint8, v.Active); err != nil {
		return err
	}
	stages := make([]dbusDPI, len(v.Stages))
	for i, s := range v.Stages {
		if err := d.checkRange(ifaceDPI, "setDPIStages", math.MaxUint16, s.X, s.Y); err != nil {
			return err
		}
		stages[i] = dbusDPI{X: uint16(s.X), Y: uint16(s.Y)}
	}
	return d.call(ifaceDPI, "setDPIStages", nil, uint8(v.Active), stages)
}

// PollRate returns the polling rate in Hz
func (d *Device) PollRate() (int, error) {
	var v int32
	err := d.call(ifaceMisc, "getPollRate", []interface{}{&v})
	return int(v), err
}

// SetPollRate sets the polling rate in Hz
func (d *Device) SetPollRate(hz int) error {
	if err := d.checkRange(ifaceMisc, "setPollRate", math.MaxUint16, hz); err != nil {
		return err
	}
	return d.call(ifaceMisc, "setPollRate", nil, uint16(hz))
}

// SupportedPollRates returns the polling rates the device accepts
func (d *Device) SupportedPollRates() ([]int, error) {
	var v []uint16
	if err := d.call(ifaceMisc, "getSupportedPollRates", []interface{}{&v}); err != nil {
		return nil, err
	}
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = int(x)
	}
	return out, nil
}

// IdleTime returns the idle timeout in seconds
func (d *Device) IdleTime() (int, error) {
	var v uint16
	err := d.call(ifacePower, "getIdleTime", []interface{}{&v})
	return int(v), err
}

// SetIdleTime sets the idle timeout in seconds
func (d *Device) SetIdleTime(seconds int) error {
	if err := d.checkRange(ifacePower, "setIdleTime", math.MaxUint16, seconds); err != nil {
		return err
	}
	return d.call(ifacePower, "setIdleTime", nil, uint16(seconds))
}

// LowBatteryThreshold returns the low-battery alert threshold in percent
func (d *Device) LowBatteryThreshold() (int, error) {
	var v uint8
	err := d.call(ifacePower, "getLowBatteryThreshold", []interface{}{&v})
	return int(v), err
}

// SetLowBatteryThreshold sets the low-battery alert threshold in percent
func (d *Device) SetLowBatteryThreshold(percent int) error {
	if err := d.checkRange(ifacePower, "setLowBatteryThreshold", math.MaxUint8, percent); err != nil {
		return err
	}
	return d.call(ifacePower, "setLowBatteryThreshold", nil, uint8(percent))
}

// SetEffectSync enables or disables syncing effects across zones and devices
func (d *Device) SetEffectSync(enabled bool) error {
	return d.call(ifaceMisc, "setEffectSync", nil, enabled)
}

// LogoBrightness returns the logo brightness in the range 0.0–1.0
func (d *Device) LogoBrightness() (float64, error) {
	var v float64
	if err := d.call(ifaceLogo, "getLogoBrightness", []interface{}{&v}); err != nil {
		return 0, err
	}
	return v / logoBrightnessScale, nil
}

// SetLogoBrightness sets the logo brightness in the range 0.0–1.0
func (d *Device) SetLogoBrightness(v float64) error {
	return d.call(ifaceLogo, "setLogoBrightness", nil, v*logoBrightnessScale)
}

// LogoEffect returns the name of the active logo effect, translated to
// the names Effect uses. Names without a counterpart are returned as is.
func (d *Device) LogoEffect() (string, error) {
	name, err := d.getString(ifaceLogo, "getLogoEffect")
	if err != nil {
		return "", err
	}
	return EffectNameFromDaemon(name), nil
}

// SetLogoEffect activates e on the logo zone
func (d *Device) SetLogoEffect(e Effect) error {
	return d.call(ifaceLogo, e.method(), nil, e.args()...)
}
