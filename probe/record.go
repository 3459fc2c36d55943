package probe

import (
	"crypto/sha1"
	"encoding/hex"
)

// UsbRecord holds the raw descriptor fields for one attached USB device as
// reported by the platform registry. Values are copied once at enumeration
// time and never mutated.
type UsbRecord struct {
	VendorID  uint16
	ProductID uint16

	VendorString  string
	ProductString string
	SerialNumber  string

	// LocationID is the platform-assigned USB topology address. Platforms
	// that do not report one leave it zero; the path rules treat zero the
	// same as an absent value, so the two are not distinguished.
	LocationID int64
}

// Hash returns the fingerprint identifying this physical unit: the SHA-1
// digest of vendor string, product string and serial number concatenated in
// that order, rendered as lowercase hex. Records with identical descriptor
// strings hash identically.
func (r UsbRecord) Hash() string {
	h := sha1.New()
	h.Write([]byte(r.VendorString))
	h.Write([]byte(r.ProductString))
	h.Write([]byte(r.SerialNumber))
	return hex.EncodeToString(h.Sum(nil))
}
