package probe

import (
	"errors"
	"fmt"
	"strings"
)

// Family identifies the debug probe hardware type, derived solely from the
// USB vendor/product ID pair at classification time.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyJLink
	FamilyStLinkV2
	FamilyStLinkV21
	FamilyTiIcdi
	FamilyDapLink
)

// String returns the display name for the family.
func (f Family) String() string {
	switch f {
	case FamilyJLink:
		return "JLink"
	case FamilyStLinkV2:
		return "STLinkV2"
	case FamilyStLinkV21:
		return "STLinkV21"
	case FamilyTiIcdi:
		return "TI-ICDI"
	case FamilyDapLink:
		return "DAPLink"
	default:
		return "Unknown"
	}
}

var (
	// ErrNotSupported reports a capability the probe's family does not have.
	ErrNotSupported = errors.New("probe: not supported by this device family")

	// ErrShortSerial reports a TI-ICDI serial number too short to derive a
	// device path from.
	ErrShortSerial = errors.New("probe: serial number too short for device path")
)

// TI-ICDI firmware names its CDC port after the first seven characters of
// the unit serial number.
const icdiSerialPrefixLen = 7

// Device is one classified debug probe: a raw USB record plus the family
// tag driving its capability rules. Immutable after classification.
type Device struct {
	usb    UsbRecord
	family Family
}

// USB returns the raw record the device was classified from.
func (d *Device) USB() UsbRecord { return d.usb }

// Family returns the probe family tag.
func (d *Device) Family() Family { return d.family }

// Hash returns the unit fingerprint (see UsbRecord.Hash).
func (d *Device) Hash() string { return d.usb.Hash() }

// IsUnknown reports whether the vendor/product pair matched no known probe
// family.
func (d *Device) IsUnknown() bool { return d.family == FamilyUnknown }

// Type returns the family display name; ok is false for unclassified
// devices.
func (d *Device) Type() (string, bool) {
	if d.family == FamilyUnknown {
		return "", false
	}
	return d.family.String(), true
}

// OpenocdSerial returns the openocd command argument that selects this exact
// unit among several attached probes of the same family.
func (d *Device) OpenocdSerial() (string, error) {
	switch d.family {
	case FamilyJLink:
		return "jlink_serial " + d.usb.SerialNumber, nil
	case FamilyStLinkV2, FamilyStLinkV21, FamilyTiIcdi:
		return "hla_serial " + d.usb.SerialNumber, nil
	case FamilyDapLink:
		return "cmsis_dap_serial " + d.usb.SerialNumber, nil
	default:
		return "", ErrNotSupported
	}
}

// SerialPath returns the character device exposing the probe's virtual
// serial console. The names reproduce the cu.usbmodem patterns observed for
// each firmware family; they are a naming convention, not a protocol.
// ST-Link v2 and unclassified devices have no console.
func (d *Device) SerialPath() (string, error) {
	switch d.family {
	case FamilyJLink:
		return d.locationPath(1), nil
	case FamilyStLinkV21:
		return d.locationPath(3), nil
	case FamilyDapLink:
		return d.locationPath(2), nil
	case FamilyTiIcdi:
		if len(d.usb.SerialNumber) < icdiSerialPrefixLen {
			return "", fmt.Errorf("%w: %q", ErrShortSerial, d.usb.SerialNumber)
		}
		return fmt.Sprintf("/dev/cu.usbmodem%s%d", d.usb.SerialNumber[:icdiSerialPrefixLen], 1), nil
	default:
		return "", ErrNotSupported
	}
}

// locationPath renders the location id in hex, drops every '0' digit and
// appends the family's interface suffix. An unreported location renders as
// an empty run, leaving just the suffix.
func (d *Device) locationPath(suffix int) string {
	loc := strings.ReplaceAll(fmt.Sprintf("%x", d.usb.LocationID), "0", "")
	return fmt.Sprintf("/dev/cu.usbmodem%s%d", loc, suffix)
}

// MsdPath returns the mount point of the probe's drag-and-drop firmware
// volume, scanning the platform's mounted-volumes root. Only DAPLink probes
// expose one.
func (d *Device) MsdPath() (string, error) {
	return d.MsdPathIn(DefaultVolumes())
}

// MsdPathIn is MsdPath with an explicit scanner, for callers that mount
// volumes somewhere else (and for tests).
func (d *Device) MsdPathIn(s VolumeScanner) (string, error) {
	if d.family != FamilyDapLink {
		return "", ErrNotSupported
	}
	return s.FindDapLink(d.usb.SerialNumber)
}
