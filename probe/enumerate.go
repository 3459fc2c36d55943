package probe

import (
	"fmt"
	"strconv"
)

// Enumerate returns a classified handle for every USB device currently
// attached. Failure to query the platform registry surfaces as a single
// aggregate error; individual devices never fail classification.
func Enumerate() ([]*Device, error) {
	records, err := enumerateRecords()
	if err != nil {
		return nil, fmt.Errorf("enumerating USB devices: %w", err)
	}
	devices := make([]*Device, 0, len(records))
	for _, r := range records {
		devices = append(devices, Classify(r))
	}
	return devices, nil
}

// Search enumerates and filters in one pass, preserving enumeration order.
func Search(f Filter) ([]*Device, error) {
	devices, err := Enumerate()
	if err != nil {
		return nil, err
	}
	return f.Apply(devices), nil
}

// locationID packs a bus number and port chain into the usual USB location
// id layout: bus in the top byte, then one port per nibble from bit 20
// down. Chains deeper than six hubs lose their tail.
func locationID(bus int, ports []int) int64 {
	loc := int64(bus&0xff) << 24
	shift := 20
	for _, port := range ports {
		if shift < 0 {
			break
		}
		loc |= int64(port&0xf) << shift
		shift -= 4
	}
	return loc
}

// parseHexID decodes a four-digit hex VID/PID string as reported by the
// serial enumerator. A malformed value decodes to zero, which classifies
// as unknown.
func parseHexID(s string) uint16 {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}
