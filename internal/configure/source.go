package configure

import "github.com/muurk/openrazer-configure/internal/razer"

// ClientSource adapts a daemon client to a Source.
type ClientSource struct {
	Client *razer.Client
}

// DaemonVersion returns the daemon's version string.
func (s ClientSource) DaemonVersion() (string, error) {
	return s.Client.DaemonVersion()
}

// Devices opens every device the daemon lists.
func (s ClientSource) Devices() ([]Device, error) {
	devices, err := s.Client.Devices()
	if err != nil {
		return nil, err
	}

	out := make([]Device, len(devices))
	for i, d := range devices {
		out[i] = d
	}
	return out, nil
}
