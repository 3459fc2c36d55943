package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationID(t *testing.T) {
	tests := []struct {
		bus   int
		ports []int
		want  int64
	}{
		{0x1a, nil, 0x1a000000},
		{0x1a, []int{1}, 0x1a100000},
		{0x1a, []int{1, 3}, 0x1a130000},
		{0x02, []int{4, 1, 2}, 0x02412000},
		// deeper than six hubs: the tail is dropped
		{0x01, []int{1, 2, 3, 4, 5, 6, 7}, 0x01123456},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, locationID(tt.bus, tt.ports), "bus %#x ports %v", tt.bus, tt.ports)
	}
}

func TestParseHexID(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
	}{
		{"0d28", 0x0d28},
		{"0D28", 0x0d28},
		{"1366", 0x1366},
		{"", 0},
		{"xyz", 0},
		{"12345", 0}, // overflows 16 bits
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseHexID(tt.in), "%q", tt.in)
	}
}
