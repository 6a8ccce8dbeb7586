package mouse

import "fmt"

// UnreadableValueStrategy decides what to report for a setting the device
// can write but not read.
type UnreadableValueStrategy int

const (
	// FallbackToConfig reports the profile value, i.e. what was (or is
	// about to be) written.
	FallbackToConfig UnreadableValueStrategy = iota
	// QuestionMark reports the unknown marker.
	QuestionMark
)

// String returns a human-readable name for the strategy
func (s UnreadableValueStrategy) String() string {
	switch s {
	case FallbackToConfig:
		return "fallback-to-config"
	case QuestionMark:
		return "question-mark"
	default:
		return fmt.Sprintf("UnreadableValueStrategy(%d)", s)
	}
}

// ValueState is how a Reading was obtained.
type ValueState int

const (
	// Absent means the device does not have the setting at all.
	Absent ValueState = iota
	// Live means the value was read from the device.
	Live
	// Fallback means the setting is write-only and the profile value
	// stands in for it.
	Fallback
	// Unknown means the setting is write-only and its value is not known.
	Unknown
)

// Markers used when rendering readings.
const (
	UnknownMarker = "?"
	AbsentMarker  = "n/a"
)

// String returns a human-readable name for the state
func (s ValueState) String() string {
	switch s {
	case Absent:
		return "absent"
	case Live:
		return "live"
	case Fallback:
		return "fallback"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("ValueState(%d)", s)
	}
}

// Reading is the outcome of reading one setting through the capability
// gate. Value is set only for Live and Fallback readings.
type Reading struct {
	State ValueState
	Value interface{}
}

// LiveReading wraps a value read from the device.
func LiveReading(v interface{}) Reading { return Reading{State: Live, Value: v} }

// FallbackReading wraps a profile value standing in for an unreadable setting.
func FallbackReading(v interface{}) Reading { return Reading{State: Fallback, Value: v} }

// UnknownReading is the reading of an unreadable setting under QuestionMark.
func UnknownReading() Reading { return Reading{State: Unknown} }

// AbsentReading is the reading of a setting the device does not have.
func AbsentReading() Reading { return Reading{State: Absent} }

// HasValue reports whether the reading carries a value.
func (r Reading) HasValue() bool {
	return r.State == Live || r.State == Fallback
}

func (r Reading) String() string {
	switch r.State {
	case Live, Fallback:
		return fmt.Sprint(r.Value)
	case Unknown:
		return UnknownMarker
	default:
		return AbsentMarker
	}
}
