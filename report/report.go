// Package report writes probe inventory workbooks for lab bookkeeping.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ocdtools/probectl/probe"
)

const sheet = "Probes"

var header = []string{
	"#", "Type", "Fingerprint", "VID:PID", "Serial", "OpenOCD", "Serial Path", "MSD Path",
}

// WriteInventory writes one row per probe to an xlsx workbook at path.
// Capabilities a family does not have are left blank.
func WriteInventory(path string, devices []*probe.Device) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for col, name := range header {
		if err := setCell(f, col+1, 1, name); err != nil {
			return err
		}
	}

	for i, d := range devices {
		typ := "unknown"
		if t, ok := d.Type(); ok {
			typ = t
		}
		usb := d.USB()
		values := []any{
			i + 1,
			typ,
			d.Hash(),
			fmt.Sprintf("%04x:%04x", usb.VendorID, usb.ProductID),
			usb.SerialNumber,
			orBlank(d.OpenocdSerial()),
			orBlank(d.SerialPath()),
			orBlank(d.MsdPath()),
		}
		for col, v := range values {
			if err := setCell(f, col+1, i+2, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("writing cell %s: %w", cell, err)
	}
	return nil
}

// orBlank flattens an optional capability into a cell value.
func orBlank(s string, err error) string {
	if err != nil {
		return ""
	}
	return s
}
