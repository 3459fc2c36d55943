package probe

import "strings"

// Filter selects a subset of classified probes. The zero value keeps every
// known probe and drops unclassified devices.
type Filter struct {
	// All also keeps devices whose vendor/product pair is not in the
	// classification table.
	All bool

	// Device, when non-empty, keeps only probes whose fingerprint starts
	// with it. Case-sensitive literal prefix, not a pattern.
	Device string
}

// Apply returns the probes matching the filter, preserving input order. It
// never mutates the input.
func (f Filter) Apply(devices []*Device) []*Device {
	var out []*Device
	for _, d := range devices {
		if !f.All && d.IsUnknown() {
			continue
		}
		if f.Device != "" && !strings.HasPrefix(d.Hash(), f.Device) {
			continue
		}
		out = append(out, d)
	}
	return out
}
