package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDevices() []*Device {
	return []*Device{
		Classify(UsbRecord{VendorID: 0x1366, ProductID: 0x0101, SerialNumber: "jlink-1"}),
		Classify(UsbRecord{VendorID: 0x9999, ProductID: 0x9999, SerialNumber: "mystery"}),
		Classify(UsbRecord{VendorID: 0x0d28, ProductID: 0x0204, SerialNumber: "daplink-1"}),
		Classify(UsbRecord{VendorID: 0x0483, ProductID: 0x374b, SerialNumber: "stlink-1"}),
	}
}

func TestSearchDropsUnknownByDefault(t *testing.T) {
	devices := testDevices()

	got := Filter{}.Apply(devices)
	require.Len(t, got, 3)
	for _, d := range got {
		assert.False(t, d.IsUnknown())
	}
}

func TestSearchAllKeepsUnknown(t *testing.T) {
	devices := testDevices()

	got := Filter{All: true}.Apply(devices)
	assert.Equal(t, devices, got)
}

func TestSearchFingerprintPrefix(t *testing.T) {
	devices := testDevices()
	want := devices[2]

	got := Filter{Device: want.Hash()[:12]}.Apply(devices)
	require.Len(t, got, 1)
	assert.Same(t, want, got[0])
}

func TestSearchPrefixIsCaseSensitive(t *testing.T) {
	devices := testDevices()
	prefix := devices[0].Hash()[:12]

	// Fingerprints are lowercase hex; an uppercased prefix matches nothing.
	got := Filter{Device: "ABCDEF"}.Apply(devices)
	assert.Empty(t, got)
	got = Filter{Device: prefix}.Apply(devices)
	assert.Len(t, got, 1)
}

func TestSearchEmptyPrefixMeansNoConstraint(t *testing.T) {
	devices := testDevices()

	assert.Equal(t, Filter{}.Apply(devices), Filter{Device: ""}.Apply(devices))
}

func TestSearchFiltersCombineAsAnd(t *testing.T) {
	devices := testDevices()
	unknown := devices[1]

	// The unknown device's prefix only matches when All is set.
	got := Filter{Device: unknown.Hash()[:8]}.Apply(devices)
	assert.Empty(t, got)

	got = Filter{All: true, Device: unknown.Hash()[:8]}.Apply(devices)
	require.Len(t, got, 1)
	assert.Same(t, unknown, got[0])
}

func TestSearchPreservesOrder(t *testing.T) {
	devices := testDevices()

	got := Filter{}.Apply(devices)
	require.Len(t, got, 3)
	assert.Same(t, devices[0], got[0])
	assert.Same(t, devices[2], got[1])
	assert.Same(t, devices[3], got[2])
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	devices := testDevices()
	snapshot := make([]*Device, len(devices))
	copy(snapshot, devices)

	Filter{Device: "nomatch"}.Apply(devices)
	assert.Equal(t, snapshot, devices)
}
