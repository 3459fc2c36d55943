//go:build !linux

package probe

import (
	"go.bug.st/serial/enumerator"
)

// enumerateRecords builds records from the detailed serial port list. Only
// USB-backed ports carry descriptor data. The enumerator does not report a
// topology address, so LocationID stays zero.
func enumerateRecords() ([]UsbRecord, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}
	var records []UsbRecord
	for _, p := range ports {
		if p == nil || !p.IsUSB {
			continue
		}
		records = append(records, UsbRecord{
			VendorID:      parseHexID(p.VID),
			ProductID:     parseHexID(p.PID),
			ProductString: p.Product,
			SerialNumber:  p.SerialNumber,
		})
	}
	return records, nil
}
