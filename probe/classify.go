package probe

// usbID keys the classification table.
type usbID struct {
	vendor, product uint16
}

// families maps the known probe vendor/product pairs. Supporting a new probe
// model means one row here plus its capability rules in device.go.
var families = map[usbID]Family{
	{0x0d28, 0x0204}: FamilyDapLink,
	{0x03eb, 0x2157}: FamilyDapLink,
	{0x0483, 0x3748}: FamilyStLinkV2,
	{0x0483, 0x374b}: FamilyStLinkV21,
	{0x1366, 0x0101}: FamilyJLink,
	{0x1366, 0x0105}: FamilyJLink,
	{0x1cbe, 0x00fd}: FamilyTiIcdi,
}

// Classify wraps a raw record in a typed probe handle. Every record
// classifies; pairs not in the table come back as FamilyUnknown rather than
// an error.
func Classify(usb UsbRecord) *Device {
	return &Device{usb: usb, family: families[usbID{usb.VendorID, usb.ProductID}]}
}
