package razer

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSerial = "PM2143H12345678"

func newTestDevice(t *testing.T, ifaces map[string][]string) (*Device, *fakeObject) {
	t.Helper()

	conn := newFakeConn()
	obj := newFakeObject().reply(introspectMethod, introspectXML(ifaces))
	conn.objects[dbus.ObjectPath(devicePathPrefix+testSerial)] = obj

	dev, err := NewClient(conn).Device(testSerial)
	require.NoError(t, err)
	obj.calls = nil
	return dev, obj
}

func TestClientSerials(t *testing.T) {
	conn := newFakeConn()
	root := newFakeObject().reply(ifaceDevices+".getDevices", []string{"A1", "B2"})
	conn.objects[rootPath] = root

	serials, err := NewClient(conn).Serials()
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, serials)
}

func TestClientDaemonVersion(t *testing.T) {
	conn := newFakeConn()
	conn.objects[rootPath] = newFakeObject().reply(ifaceDaemon+".version", "3.9.0")

	v, err := NewClient(conn).DaemonVersion()
	require.NoError(t, err)
	assert.Equal(t, "3.9.0", v)
}

func TestClientDevicesDaemonNotRunning(t *testing.T) {
	conn := newFakeConn()
	conn.objects[rootPath] = newFakeObject().
		fail(ifaceDevices+".getDevices", dbus.Error{Name: dbusErrServiceUnknown})

	_, err := NewClient(conn).Devices()
	require.Error(t, err)
	assert.True(t, IsDaemonUnavailable(err))
}

func TestClientDevicesProbesEachDevice(t *testing.T) {
	conn := newFakeConn()
	conn.objects[rootPath] = newFakeObject().reply(ifaceDevices+".getDevices", []string{"KBD", "MOUSE"})
	conn.objects[devicePathPrefix+"KBD"] = newFakeObject().
		reply(introspectMethod, introspectXML(map[string][]string{ifaceMisc: {"getDeviceName"}}))
	conn.objects[devicePathPrefix+"MOUSE"] = newFakeObject().
		reply(introspectMethod, introspectXML(deathAdderV2ProInterfaces))

	devices, err := NewClient(conn).Devices()
	require.NoError(t, err)
	require.Len(t, devices, 2)

	assert.Equal(t, "KBD", devices[0].Serial())
	assert.False(t, devices[0].Has(CapDPI))
	assert.Equal(t, "MOUSE", devices[1].Serial())
	assert.True(t, devices[1].Has(CapDPI|CapPollRate|CapLightingLogo))
}

func TestIntrospectUnnamedNodeTakesObjectPath(t *testing.T) {
	conn := newFakeConn()
	path := dbus.ObjectPath(devicePathPrefix + testSerial)
	conn.objects[path] = newFakeObject().reply(introspectMethod, introspectXML(deathAdderV2ProInterfaces))

	node, err := introspect.Call(conn.Object(ServiceName, path))
	require.NoError(t, err)
	assert.Equal(t, string(path), node.Name)
}

func TestClientDeviceVanished(t *testing.T) {
	conn := newFakeConn()
	conn.objects[rootPath] = newFakeObject().reply(ifaceDevices+".getDevices", []string{"GONE"})

	_, err := NewClient(conn).Devices()
	require.Error(t, err)
	assert.True(t, IsDeviceGone(err))
	assert.Contains(t, err.Error(), "GONE")
}

func TestClientClose(t *testing.T) {
	conn := newFakeConn()
	require.NoError(t, NewClient(conn).Close())
	assert.True(t, conn.closed)
}

func TestDeviceAttributes(t *testing.T) {
	dev, obj := newTestDevice(t, deathAdderV2ProInterfaces)
	obj.reply(ifaceMisc+".getDeviceName", "Razer DeathAdder V2 Pro (Wireless)").
		reply(ifaceMisc+".getDeviceType", "mouse").
		reply(ifaceMisc+".getSerial", testSerial).
		reply(ifaceMisc+".getFirmware", "v1.01").
		reply(ifaceMisc+".getDriverVersion", "3.9.0").
		reply(ifacePower+".getBattery", 87.0).
		reply(ifacePower+".isCharging", false)

	attrs, err := dev.Attributes()
	require.NoError(t, err)

	assert.Equal(t, Attributes{
		Name:            "Razer DeathAdder V2 Pro (Wireless)",
		Type:            "mouse",
		Serial:          testSerial,
		FirmwareVersion: "v1.01",
		DriverVersion:   "3.9.0",
		HasBattery:      true,
		BatteryLevel:    87.0,
		Charging:        false,
	}, attrs)
	assert.True(t, attrs.IsMouse())
}

func TestDeviceAttributesWiredSkipsBattery(t *testing.T) {
	dev, obj := newTestDevice(t, map[string][]string{
		ifaceMisc: {"getDeviceName", "getDeviceType", "getSerial", "getFirmware", "getDriverVersion"},
	})
	obj.reply(ifaceMisc+".getDeviceName", "Razer Huntsman").
		reply(ifaceMisc+".getDeviceType", "keyboard").
		reply(ifaceMisc+".getSerial", testSerial).
		reply(ifaceMisc+".getFirmware", "v2.00").
		reply(ifaceMisc+".getDriverVersion", "3.9.0")

	attrs, err := dev.Attributes()
	require.NoError(t, err)
	assert.False(t, attrs.HasBattery)
	assert.False(t, attrs.IsMouse())
	assert.NotContains(t, obj.methods(), ifacePower+".getBattery")
}

func TestDeviceDPI(t *testing.T) {
	dev, obj := newTestDevice(t, deathAdderV2ProInterfaces)
	obj.reply(ifaceDPI+".getDPI", []int32{800, 1600})

	got, err := dev.DPI()
	require.NoError(t, err)
	assert.Equal(t, DPI{X: 800, Y: 1600}, got)

	require.NoError(t, dev.SetDPI(Square(1200)))
	last := obj.calls[len(obj.calls)-1]
	assert.Equal(t, ifaceDPI+".setDPI", last.Method)
	assert.Equal(t, []interface{}{uint16(1200), uint16(1200)}, last.Args)
}

func TestDeviceDPIEmptyReply(t *testing.T) {
	dev, obj := newTestDevice(t, deathAdderV2ProInterfaces)
	obj.reply(ifaceDPI+".getDPI", []int32{})

	_, err := dev.DPI()
	var devErr *DeviceError
	require.ErrorAs(t, err, &devErr)
	assert.Equal(t, ErrTypeDecode, devErr.Type)
}

func TestDeviceDPIRanges(t *testing.T) {
	dev, obj := newTestDevice(t, deathAdderV2ProInterfaces)
	obj.reply(ifaceDPI+".maxDPI", int32(20000)).
		reply(ifaceDPI+".availableDPI", []int32{400, 800, 1600})

	maxDPI, err := dev.MaxDPI()
	require.NoError(t, err)
	assert.Equal(t, 20000, maxDPI)

	avail, err := dev.AvailableDPI()
	require.NoError(t, err)
	assert.Equal(t, []int{400, 800, 1600}, avail)
}

func TestDeviceDPIStages(t *testing.T) {
	dev, obj := newTestDevice(t, deathAdderV2ProInterfaces)
	obj.reply(ifaceDPI+".getDPIStages", uint8(2), [][]interface{}{
		{uint16(400), uint16(400)},
		{uint16(1600), uint16(1600)},
	})

	got, err := dev.DPIStages()
	require.NoError(t, err)
	assert.Equal(t, DPIStages{Active: 2, Stages: []DPI{Square(400), Square(1600)}}, got)

	require.NoError(t, dev.SetDPIStages(SingleStage(Square(1200))))
	last := obj.calls[len(obj.calls)-1]
	assert.Equal(t, ifaceDPI+".setDPIStages", last.Method)
	assert.Equal(t, []interface{}{uint8(1), []dbusDPI{{X: 1200, Y: 1200}}}, last.Args)
}

func TestDevicePollRate(t *testing.T) {
	dev, obj := newTestDevice(t, deathAdderV2ProInterfaces)
	obj.reply(ifaceMisc+".getPollRate", int32(500)).
		reply(ifaceMisc+".getSupportedPollRates", []uint16{125, 500, 1000})

	rate, err := dev.PollRate()
	require.NoError(t, err)
	assert.Equal(t, 500, rate)

	rates, err := dev.SupportedPollRates()
	require.NoError(t, err)
	assert.Equal(t, []int{125, 500, 1000}, rates)

	require.NoError(t, dev.SetPollRate(1000))
	last := obj.calls[len(obj.calls)-1]
	assert.Equal(t, []interface{}{uint16(1000)}, last.Args)
}

func TestDevicePowerSettings(t *testing.T) {
	dev, obj := newTestDevice(t, deathAdderV2ProInterfaces)
	obj.reply(ifacePower+".getIdleTime", uint16(600)).
		reply(ifacePower+".getLowBatteryThreshold", uint8(15))

	idle, err := dev.IdleTime()
	require.NoError(t, err)
	assert.Equal(t, 600, idle)

	threshold, err := dev.LowBatteryThreshold()
	require.NoError(t, err)
	assert.Equal(t, 15, threshold)

	require.NoError(t, dev.SetIdleTime(300))
	require.NoError(t, dev.SetLowBatteryThreshold(10))

	n := len(obj.calls)
	assert.Equal(t, recordedCall{Method: ifacePower + ".setIdleTime", Args: []interface{}{uint16(300)}}, obj.calls[n-2])
	assert.Equal(t, recordedCall{Method: ifacePower + ".setLowBatteryThreshold", Args: []interface{}{uint8(10)}}, obj.calls[n-1])
}

func TestDeviceLogo(t *testing.T) {
	dev, obj := newTestDevice(t, deathAdderV2ProInterfaces)
	obj.reply(ifaceLogo+".getLogoBrightness", 50.0).
		reply(ifaceLogo+".getLogoEffect", "spectrum")

	brightness, err := dev.LogoBrightness()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, brightness, 1e-9)

	effect, err := dev.LogoEffect()
	require.NoError(t, err)
	assert.Equal(t, EffectNameSpectrum, effect)

	require.NoError(t, dev.SetEffectSync(false))
	require.NoError(t, dev.SetLogoBrightness(0.25))
	require.NoError(t, dev.SetLogoEffect(EffectStatic{Color: RGB{R: 0xff, G: 0x80, B: 0x00}}))
	require.NoError(t, dev.SetLogoEffect(EffectNone{}))

	n := len(obj.calls)
	assert.Equal(t, []recordedCall{
		{Method: ifaceMisc + ".setEffectSync", Args: []interface{}{false}},
		{Method: ifaceLogo + ".setLogoBrightness", Args: []interface{}{25.0}},
		{Method: ifaceLogo + ".setLogoStatic", Args: []interface{}{uint8(0xff), uint8(0x80), uint8(0x00)}},
		{Method: ifaceLogo + ".setLogoNone", Args: nil},
	}, obj.calls[n-4:])
}

func TestDeviceCallErrorsAreClassified(t *testing.T) {
	dev, obj := newTestDevice(t, deathAdderV2ProInterfaces)
	obj.fail(ifaceMisc+".getPollRate", dbus.Error{Name: dbusErrUnknownObject})

	_, err := dev.PollRate()
	var devErr *DeviceError
	require.ErrorAs(t, err, &devErr)
	assert.Equal(t, ErrTypeDeviceGone, devErr.Type)
	assert.Equal(t, testSerial, devErr.Serial)
	assert.Equal(t, ifaceMisc+".getPollRate", devErr.Method)
}

func TestDeviceLogoEffectTranslatesDaemonNames(t *testing.T) {
	dev, obj := newTestDevice(t, deathAdderV2ProInterfaces)
	obj.reply(ifaceLogo+".getLogoEffect", "breathSingle")

	effect, err := dev.LogoEffect()
	require.NoError(t, err)
	assert.Equal(t, EffectBreathSingle{}.Name(), effect)
}

func TestDeviceSettersRejectValuesTheWireCannotCarry(t *testing.T) {
	dev, obj := newTestDevice(t, deathAdderV2ProInterfaces)

	tests := []struct {
		name string
		set  func() error
	}{
		{"dpi", func() error { return dev.SetDPI(Square(70000)) }},
		{"negative dpi", func() error { return dev.SetDPI(DPI{X: 800, Y: -1}) }},
		{"dpi stage", func() error { return dev.SetDPIStages(SingleStage(Square(70000))) }},
		{"active stage", func() error {
			return dev.SetDPIStages(DPIStages{Active: 300, Stages: []DPI{Square(800)}})
		}},
		{"poll rate", func() error { return dev.SetPollRate(66536) }},
		{"idle time", func() error { return dev.SetIdleTime(70000) }},
		{"battery threshold", func() error { return dev.SetLowBatteryThreshold(256) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set()
			var devErr *DeviceError
			require.ErrorAs(t, err, &devErr)
			assert.Equal(t, ErrTypeOutOfRange, devErr.Type)
		})
	}
	assert.Empty(t, obj.calls, "nothing reaches the bus")
}
