package razer

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

const (
	// ServiceName is the well-known bus name owned by the OpenRazer daemon
	ServiceName = "org.razer"

	rootPath         dbus.ObjectPath = "/org/razer"
	devicePathPrefix                 = "/org/razer/device/"

	ifaceDevices = "razer.devices"
	ifaceDaemon  = "razer.daemon"
	ifaceMisc    = "razer.device.misc"
	ifaceDPI     = "razer.device.dpi"
	ifacePower   = "razer.device.power"
	ifaceLogo    = "razer.device.lighting.logo"
)

// BusConn is the part of *dbus.Conn the client uses.
type BusConn interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	Close() error
}

// Client talks to the OpenRazer daemon over a bus connection
type Client struct {
	conn BusConn
}

// Connect opens the session bus and returns a client for the daemon.
// The caller must Close the client.
func Connect() (*Client, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, ClassifyBusError(err, "", "")
	}
	return NewClient(conn), nil
}

// NewClient wraps an existing bus connection
func NewClient(conn BusConn) *Client {
	return &Client{conn: conn}
}

// Close closes the underlying bus connection
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) root() dbus.BusObject {
	return c.conn.Object(ServiceName, rootPath)
}

// DaemonVersion returns the version string of the running daemon
func (c *Client) DaemonVersion() (string, error) {
	method := ifaceDaemon + ".version"
	call := c.root().Call(method, 0)
	if call.Err != nil {
		return "", ClassifyBusError(call.Err, "", method)
	}
	var v string
	if err := call.Store(&v); err != nil {
		return "", NewDecodeError("", method, err)
	}
	return v, nil
}

// Serials returns the serial numbers of all devices the daemon manages
func (c *Client) Serials() ([]string, error) {
	method := ifaceDevices + ".getDevices"
	call := c.root().Call(method, 0)
	if call.Err != nil {
		return nil, ClassifyBusError(call.Err, "", method)
	}
	var serials []string
	if err := call.Store(&serials); err != nil {
		return nil, NewDecodeError("", method, err)
	}
	return serials, nil
}

// Device opens the device with the given serial and probes its
// capabilities.
func (c *Client) Device(serial string) (*Device, error) {
	obj := c.conn.Object(ServiceName, dbus.ObjectPath(devicePathPrefix+serial))

	node, err := introspect.Call(obj)
	if err != nil {
		return nil, ClassifyBusError(err, serial, "org.freedesktop.DBus.Introspectable.Introspect")
	}

	return &Device{
		obj:    obj,
		serial: serial,
		caps:   ProbeCapabilities(node),
	}, nil
}

// Devices opens every device the daemon manages, in daemon order
func (c *Client) Devices() ([]*Device, error) {
	serials, err := c.Serials()
	if err != nil {
		return nil, err
	}

	devices := make([]*Device, 0, len(serials))
	for _, serial := range serials {
		dev, err := c.Device(serial)
		if err != nil {
			return nil, fmt.Errorf("failed to open device %s: %w", serial, err)
		}
		devices = append(devices, dev)
	}
	return devices, nil
}
