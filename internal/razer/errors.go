package razer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

// Error types for daemon communication

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeBus indicates the session bus itself could not be reached
	ErrTypeBus ErrorType = iota
	// ErrTypeDaemonUnavailable indicates nothing owns the org.razer name
	ErrTypeDaemonUnavailable
	// ErrTypeDeviceGone indicates the device object no longer exists
	ErrTypeDeviceGone
	// ErrTypeUnsupported indicates the device object lacks the called method
	ErrTypeUnsupported
	// ErrTypeAccessDenied indicates the bus policy rejected the call
	ErrTypeAccessDenied
	// ErrTypeTimeout indicates the daemon did not answer
	ErrTypeTimeout
	// ErrTypeDecode indicates the reply did not have the expected signature
	ErrTypeDecode
	// ErrTypeDaemon indicates the daemon raised an error of its own
	ErrTypeDaemon
	// ErrTypeOutOfRange indicates a value does not fit the method's wire type
	ErrTypeOutOfRange
)

// D-Bus error names the classifier recognises.
const (
	dbusErrServiceUnknown = "org.freedesktop.DBus.Error.ServiceUnknown"
	dbusErrNameHasNoOwner = "org.freedesktop.DBus.Error.NameHasNoOwner"
	dbusErrUnknownObject  = "org.freedesktop.DBus.Error.UnknownObject"
	dbusErrUnknownMethod  = "org.freedesktop.DBus.Error.UnknownMethod"
	dbusErrUnknownIface   = "org.freedesktop.DBus.Error.UnknownInterface"
	dbusErrAccessDenied   = "org.freedesktop.DBus.Error.AccessDenied"
	dbusErrNoReply        = "org.freedesktop.DBus.Error.NoReply"
	dbusErrTimeout        = "org.freedesktop.DBus.Error.Timeout"
	dbusErrTimedOut       = "org.freedesktop.DBus.Error.TimedOut"
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeBus:
		return "Bus Error"
	case ErrTypeDaemonUnavailable:
		return "Daemon Unavailable"
	case ErrTypeDeviceGone:
		return "Device Gone"
	case ErrTypeUnsupported:
		return "Unsupported"
	case ErrTypeAccessDenied:
		return "Access Denied"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeDecode:
		return "Decode Error"
	case ErrTypeDaemon:
		return "Daemon Error"
	case ErrTypeOutOfRange:
		return "Out of Range"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// DeviceError represents an error that occurred while talking to the daemon
type DeviceError struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Serial  string    // Device serial (empty for daemon-level calls)
	Method  string    // Fully qualified D-Bus method, if any
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *DeviceError) Error() string {
	var b strings.Builder
	b.WriteString(e.Type.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Serial != "" {
		fmt.Fprintf(&b, " [device %s]", e.Serial)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain inspection
func (e *DeviceError) Unwrap() error {
	return e.Err
}

// dbusErrorName extracts the D-Bus error name from err, if it carries one.
func dbusErrorName(err error) (string, bool) {
	var v dbus.Error
	if errors.As(err, &v) {
		return v.Name, true
	}
	var p *dbus.Error
	if errors.As(err, &p) && p != nil {
		return p.Name, true
	}
	return "", false
}

// ClassifyBusError wraps a D-Bus failure in a DeviceError. method is the
// fully qualified method that failed and may be empty.
func ClassifyBusError(err error, serial, method string) *DeviceError {
	if err == nil {
		return nil
	}

	var devErr *DeviceError
	if errors.As(err, &devErr) {
		return devErr
	}

	e := &DeviceError{
		Type:   ErrTypeDaemon,
		Serial: serial,
		Method: method,
		Err:    err,
	}

	name, ok := dbusErrorName(err)
	if !ok {
		e.Type = ErrTypeBus
		e.Message = "session bus communication failed"
		return e
	}

	switch name {
	case dbusErrServiceUnknown, dbusErrNameHasNoOwner:
		e.Type = ErrTypeDaemonUnavailable
		e.Message = "OpenRazer daemon is not running"
	case dbusErrUnknownObject:
		e.Type = ErrTypeDeviceGone
		e.Message = "device is no longer available"
	case dbusErrUnknownMethod, dbusErrUnknownIface:
		e.Type = ErrTypeUnsupported
		e.Message = fmt.Sprintf("device does not implement %s", method)
	case dbusErrAccessDenied:
		e.Type = ErrTypeAccessDenied
		e.Message = "bus policy denied the call"
	case dbusErrNoReply, dbusErrTimeout, dbusErrTimedOut:
		e.Type = ErrTypeTimeout
		e.Message = "daemon did not reply"
	default:
		e.Message = fmt.Sprintf("%s failed: %s", method, name)
	}
	return e
}

// NewDecodeError creates an error for a reply with an unexpected shape
func NewDecodeError(serial, method string, err error) *DeviceError {
	return &DeviceError{
		Type:    ErrTypeDecode,
		Message: fmt.Sprintf("unexpected reply from %s", method),
		Serial:  serial,
		Method:  method,
		Err:     err,
	}
}

// NewRangeError creates an error for an argument the wire type cannot carry
func NewRangeError(serial, method string, value, limit int) *DeviceError {
	return &DeviceError{
		Type:    ErrTypeOutOfRange,
		Message: fmt.Sprintf("%s: %d is outside 0-%d", method, value, limit),
		Serial:  serial,
		Method:  method,
	}
}

// IsDaemonUnavailable checks if err means the daemon or bus is unreachable
func IsDaemonUnavailable(err error) bool {
	var devErr *DeviceError
	if errors.As(err, &devErr) {
		return devErr.Type == ErrTypeDaemonUnavailable || devErr.Type == ErrTypeBus
	}
	return false
}

// IsDeviceGone checks if err means the device disappeared mid-run
func IsDeviceGone(err error) bool {
	var devErr *DeviceError
	if errors.As(err, &devErr) {
		return devErr.Type == ErrTypeDeviceGone
	}
	return false
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) string {
	var devErr *DeviceError
	if !errors.As(err, &devErr) {
		return ""
	}

	switch devErr.Type {
	case ErrTypeBus:
		return strings.Join([]string{
			"Could not talk to the D-Bus session bus.",
			"Troubleshooting:",
			"  • Run the command from your desktop session, not over plain ssh or sudo",
			"  • Check that DBUS_SESSION_BUS_ADDRESS is set",
		}, "\n")

	case ErrTypeDaemonUnavailable:
		return strings.Join([]string{
			"The OpenRazer daemon is not running.",
			"Troubleshooting:",
			"  • Start it with: systemctl --user start openrazer-daemon",
			"  • Check that your user is in the plugdev group",
			"  • Inspect ~/.local/share/openrazer/logs/razer.log",
		}, "\n")

	case ErrTypeDeviceGone:
		return strings.Join([]string{
			"The device disappeared while it was being configured.",
			"Troubleshooting:",
			"  • Check the cable or the wireless dongle",
			"  • Wake the mouse up and run the command again",
		}, "\n")

	case ErrTypeUnsupported:
		return "The daemon does not support this feature for the device. Update openrazer or report the device model."

	case ErrTypeAccessDenied:
		return "The bus policy rejected the call. Check the openrazer D-Bus policy files."

	case ErrTypeTimeout:
		return "The daemon did not answer in time. It may be busy talking to a sleeping wireless device; try again."

	case ErrTypeDecode:
		return "The daemon replied with unexpected data. The installed openrazer version may be incompatible."

	case ErrTypeOutOfRange:
		return "The value is larger than the daemon can accept. Lower it in the profile."

	default:
		return "The daemon reported an error. Check the openrazer daemon log for details."
	}
}
