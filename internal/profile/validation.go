package profile

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Limits enforced by the daemon. DPI and polling rate travel as 16-bit
// unsigned integers.
const (
	MaxDPI                 = math.MaxUint16
	MaxPollRate            = math.MaxUint16
	MaxIdleTime            = 900
	MaxLowBatteryThreshold = 100
)

// ValidationError reports a profile value that cannot be applied.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a profile field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if err is a ValidationError
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ValidationErrors collects every ValidationError in err's tree, in order.
func ValidationErrors(err error) []error {
	var out []error
	var walk func(error)
	walk = func(e error) {
		switch v := e.(type) {
		case nil:
		case *ValidationError:
			out = append(out, v)
		case interface{ Unwrap() []error }:
			for _, inner := range v.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(v.Unwrap())
		}
	}
	walk(err)
	return out
}

// ValidateDPI validates the pointer resolution. Any positive value up to
// MaxDPI is accepted; the applier clamps and snaps it per device.
func ValidateDPI(dpi int) error {
	if dpi <= 0 {
		return NewValidationError("dpi", fmt.Sprintf("must be positive, got %d", dpi))
	}
	if dpi > MaxDPI {
		return NewValidationError("dpi", fmt.Sprintf("must be at most %d, got %d", MaxDPI, dpi))
	}
	return nil
}

// ValidatePollRate validates the polling rate in Hz.
func ValidatePollRate(hz int) error {
	if hz <= 0 {
		return NewValidationError("poll_rate", fmt.Sprintf("must be positive, got %d", hz))
	}
	if hz > MaxPollRate {
		return NewValidationError("poll_rate", fmt.Sprintf("must be at most %d, got %d", MaxPollRate, hz))
	}
	return nil
}

// ValidateIdleTime validates the idle timeout.
// Valid range: 0-900 seconds
func ValidateIdleTime(seconds int) error {
	if seconds < 0 || seconds > MaxIdleTime {
		return NewValidationError("idle_time", fmt.Sprintf("must be 0-%d seconds, got %d", MaxIdleTime, seconds))
	}
	return nil
}

// ValidateLowBatteryThreshold validates the low battery alert threshold.
// Valid range: 0-100 percent
func ValidateLowBatteryThreshold(percent int) error {
	if percent < 0 || percent > MaxLowBatteryThreshold {
		return NewValidationError("low_battery_threshold", fmt.Sprintf("must be 0-%d percent, got %d", MaxLowBatteryThreshold, percent))
	}
	return nil
}

// ValidateLogoBrightness validates the logo brightness fraction.
func ValidateLogoBrightness(v float64) error {
	if v < 0 || v > 1 {
		return NewValidationError("logo_brightness", fmt.Sprintf("must be between 0.0 and 1.0, got %v", v))
	}
	return nil
}

// Validate checks every field of the profile.
// Returns a slice of validation errors (empty if valid).
func (p Profile) Validate() []error {
	var errs []error

	if err := ValidateDPI(p.DPI); err != nil {
		errs = append(errs, err)
	}
	if err := ValidatePollRate(p.PollRate); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateIdleTime(p.IdleTime); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateLowBatteryThreshold(p.LowBatteryThreshold); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateLogoBrightness(p.LogoBrightness); err != nil {
		errs = append(errs, err)
	}
	if p.LogoEffect == nil {
		errs = append(errs, NewValidationError("logo_effect", "no effect set"))
	}

	return errs
}

// FormatValidationErrors formats a slice of validation errors into a user-friendly message.
func FormatValidationErrors(errs []error) string {
	if len(errs) == 0 {
		return "No validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Profile validation failed with %d error(s):\n", len(errs)))

	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}

	return sb.String()
}
