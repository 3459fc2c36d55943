//go:build linux

package probe

import (
	"github.com/google/gousb"
)

// enumerateRecords reads every attached device through libusb. String
// descriptors a device refuses to supply are left empty rather than failing
// the whole enumeration.
func enumerateRecords() ([]UsbRecord, error) {
	ctx := gousb.NewContext()
	defer ctx.Close()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool { return true })
	defer func() {
		for _, d := range devs {
			d.Close()
		}
	}()
	if err != nil {
		return nil, err
	}

	records := make([]UsbRecord, 0, len(devs))
	for _, dev := range devs {
		rec := UsbRecord{
			VendorID:   uint16(dev.Desc.Vendor),
			ProductID:  uint16(dev.Desc.Product),
			LocationID: locationID(dev.Desc.Bus, dev.Desc.Path),
		}
		if s, err := dev.Manufacturer(); err == nil {
			rec.VendorString = s
		}
		if s, err := dev.Product(); err == nil {
			rec.ProductString = s
		}
		if s, err := dev.SerialNumber(); err == nil {
			rec.SerialNumber = s
		}
		records = append(records, rec)
	}
	return records, nil
}
