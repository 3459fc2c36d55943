// Package probe identifies USB hardware debug probes (JLink, ST-Link,
// DAPLink, TI-ICDI) attached to the host and resolves, per probe family,
// how to address one unit among several: the openocd argument selecting it,
// the virtual serial console device it exposes, and the drag-and-drop
// mass-storage volume where the family provides one.
//
// Raw USB records come from the platform registry (libusb on Linux, serial
// port enumeration elsewhere); classification and the per-family path rules
// are platform independent.
package probe
