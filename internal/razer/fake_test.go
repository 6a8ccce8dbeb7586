package razer

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

const introspectMethod = "org.freedesktop.DBus.Introspectable.Introspect"

// recordedCall is one method invocation seen by a fakeObject.
type recordedCall struct {
	Method string
	Args   []interface{}
}

// fakeObject answers D-Bus calls from canned replies. Embedding the
// interface satisfies the methods the client never uses.
type fakeObject struct {
	dbus.BusObject

	path    dbus.ObjectPath
	replies map[string][]interface{}
	errs    map[string]error
	calls   []recordedCall
}

func newFakeObject() *fakeObject {
	return &fakeObject{
		replies: make(map[string][]interface{}),
		errs:    make(map[string]error),
	}
}

func (f *fakeObject) reply(method string, body ...interface{}) *fakeObject {
	f.replies[method] = body
	return f
}

func (f *fakeObject) fail(method string, err error) *fakeObject {
	f.errs[method] = err
	return f
}

func (f *fakeObject) Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	f.calls = append(f.calls, recordedCall{Method: method, Args: args})
	if err, ok := f.errs[method]; ok {
		return &dbus.Call{Method: method, Err: err}
	}
	return &dbus.Call{Method: method, Body: f.replies[method]}
}

// Path names the object; introspect.Call uses it for unnamed nodes.
func (f *fakeObject) Path() dbus.ObjectPath {
	return f.path
}

func (f *fakeObject) methods() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Method
	}
	return out
}

// fakeConn routes Object lookups to fake objects by path.
type fakeConn struct {
	objects map[dbus.ObjectPath]*fakeObject
	closed  bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{objects: make(map[dbus.ObjectPath]*fakeObject)}
}

func (c *fakeConn) Object(dest string, path dbus.ObjectPath) dbus.BusObject {
	obj, ok := c.objects[path]
	if !ok {
		obj = newFakeObject()
		obj.fail(introspectMethod, dbus.Error{Name: dbusErrUnknownObject})
		c.objects[path] = obj
	}
	obj.path = path
	return obj
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

// introspectXML renders a node document exposing the given methods,
// keyed by interface name.
func introspectXML(ifaces map[string][]string) string {
	var b strings.Builder
	b.WriteString("<node>")
	for name, methods := range ifaces {
		fmt.Fprintf(&b, `<interface name="%s">`, name)
		for _, m := range methods {
			fmt.Fprintf(&b, `<method name="%s"/>`, m)
		}
		b.WriteString("</interface>")
	}
	b.WriteString("</node>")
	return b.String()
}

// deathAdderV2ProInterfaces is roughly what the daemon exposes for a
// DeathAdder V2 Pro over the wireless dongle.
var deathAdderV2ProInterfaces = map[string][]string{
	ifaceMisc: {
		"getDeviceName", "getDeviceType", "getSerial", "getFirmware", "getDriverVersion",
		"getPollRate", "setPollRate", "getSupportedPollRates", "getEffectSync", "setEffectSync",
	},
	ifaceDPI: {
		"getDPI", "setDPI", "maxDPI", "availableDPI", "getDPIStages", "setDPIStages",
	},
	ifacePower: {
		"getBattery", "isCharging", "setIdleTime", "getIdleTime",
		"setLowBatteryThreshold", "getLowBatteryThreshold",
	},
	ifaceLogo: {
		"getLogoBrightness", "setLogoBrightness", "getLogoEffect",
		"setLogoNone", "setLogoStatic", "setLogoSpectrum", "setLogoBreathSingle", "setLogoBreathRandom",
	},
}
