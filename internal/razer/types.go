package razer

import (
	"fmt"
	"strings"
)

// TypeMouse is the device type the daemon reports for mice.
const TypeMouse = "mouse"

// DPI is a pointer resolution, horizontal and vertical.
type DPI struct {
	X, Y int
}

// Square returns a DPI with the same resolution on both axes.
func Square(v int) DPI {
	return DPI{X: v, Y: v}
}

func (d DPI) String() string {
	return fmt.Sprintf("%dx%d", d.X, d.Y)
}

// DPIStages is the list of resolution presets a mouse cycles through,
// with Active being the 1-based index of the selected stage.
type DPIStages struct {
	Active int
	Stages []DPI
}

// SingleStage returns a stage list holding only d, selected.
func SingleStage(d DPI) DPIStages {
	return DPIStages{Active: 1, Stages: []DPI{d}}
}

// Equal reports whether s and o describe the same stages.
func (s DPIStages) Equal(o DPIStages) bool {
	if s.Active != o.Active || len(s.Stages) != len(o.Stages) {
		return false
	}
	for i := range s.Stages {
		if s.Stages[i] != o.Stages[i] {
			return false
		}
	}
	return true
}

func (s DPIStages) String() string {
	parts := make([]string, len(s.Stages))
	for i, st := range s.Stages {
		parts[i] = st.String()
	}
	return fmt.Sprintf("%d:[%s]", s.Active, strings.Join(parts, " "))
}

// Attributes are the static facts logged for every device.
type Attributes struct {
	Name            string
	Type            string
	Serial          string
	FirmwareVersion string
	DriverVersion   string

	// HasBattery is false for wired devices; BatteryLevel and Charging
	// are then meaningless.
	HasBattery   bool
	BatteryLevel float64
	Charging     bool
}

// IsMouse reports whether the attributes describe a mouse.
func (a Attributes) IsMouse() bool {
	return a.Type == TypeMouse
}

// dbusDPI mirrors the (qq) struct used in DPI stage lists.
type dbusDPI struct {
	X uint16
	Y uint16
}
