// Package configure runs one pass of openrazer-configure: list the
// daemon's devices, report each one, and apply the profile to every mouse.
package configure

import (
	"fmt"

	"github.com/muurk/openrazer-configure/internal/logging"
	"github.com/muurk/openrazer-configure/internal/mouse"
	"github.com/muurk/openrazer-configure/internal/profile"
	"github.com/muurk/openrazer-configure/internal/razer"
	"github.com/muurk/openrazer-configure/internal/ui"
)

// Skip reasons reported in the summary.
const (
	SkipNotMouse = "not a mouse"
	SkipDryRun   = "dry run"
)

// Device is a daemon device as the runner sees it.
type Device interface {
	mouse.Device
	Serial() string
	Attributes() (razer.Attributes, error)
}

// Source lists the devices of a daemon.
type Source interface {
	DaemonVersion() (string, error)
	Devices() ([]Device, error)
}

// Options control a run.
type Options struct {
	DryRun  bool
	Profile profile.Profile
}

// Runner configures every mouse a Source exposes, one after another.
type Runner struct {
	src  Source
	opts Options
}

// NewRunner creates a Runner.
func NewRunner(src Source, opts Options) *Runner {
	return &Runner{src: src, opts: opts}
}

// Run processes every device in daemon order. The first error aborts the
// run; the results then end with the device that failed.
func (r *Runner) Run() ([]ui.DeviceResult, error) {
	version, err := r.src.DaemonVersion()
	if err != nil {
		return nil, fmt.Errorf("failed to query daemon version: %w", err)
	}

	devices, err := r.src.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	logging.LogDaemon(version, len(devices))
	if len(devices) == 0 {
		logging.LogNoDevices()
	}

	results := make([]ui.DeviceResult, 0, len(devices))
	for _, dev := range devices {
		result, err := r.runDevice(dev)
		results = append(results, result)
		if err != nil {
			logging.LogFailure(dev.Serial(), err)
			return results, err
		}
	}
	return results, nil
}

func (r *Runner) runDevice(dev Device) (ui.DeviceResult, error) {
	result := ui.DeviceResult{Name: dev.Serial(), Serial: dev.Serial()}

	attrs, err := dev.Attributes()
	if err != nil {
		result.Err = err
		return result, fmt.Errorf("failed to read attributes of %s: %w", dev.Serial(), err)
	}
	result.Name = attrs.Name

	logging.LogDevice(attrs)
	logging.LogAttributes(attrs)

	if !attrs.IsMouse() {
		result.Skipped = SkipNotMouse
		logging.LogSkipped(dev.Serial(), SkipNotMouse)
		return result, nil
	}

	acc := mouse.NewAccessor(dev, r.opts.Profile)

	found, err := acc.Configurables(mouse.QuestionMark)
	if err != nil {
		result.Err = err
		return result, fmt.Errorf("failed to list settings of %s: %w", attrs.Name, err)
	}
	logging.LogConfigurables(dev.Serial(), "found", found)

	if r.opts.DryRun {
		result.Skipped = SkipDryRun
		return result, nil
	}

	changes, err := mouse.NewApplier(dev, r.opts.Profile).Apply()
	for _, c := range changes {
		logging.LogChange(dev.Serial(), c)
		result.Changes = append(result.Changes, c.String())
	}
	if err != nil {
		result.Err = err
		return result, fmt.Errorf("failed to configure %s: %w", attrs.Name, err)
	}

	now, err := acc.Configurables(mouse.FallbackToConfig)
	if err != nil {
		result.Err = err
		return result, fmt.Errorf("failed to list settings of %s: %w", attrs.Name, err)
	}
	logging.LogConfigurables(dev.Serial(), "now", now)

	return result, nil
}
