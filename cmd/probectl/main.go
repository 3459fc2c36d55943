// probectl lists the USB debug probes attached to the host and resolves how
// to address one among several: the openocd serial argument, the virtual
// serial console, and the DAPLink drag-and-drop volume.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ocdtools/probectl/console"
	"github.com/ocdtools/probectl/probe"
	"github.com/ocdtools/probectl/report"
)

func main() {
	all := flag.Bool("all", false, "include devices not recognized as debug probes")
	device := flag.String("device", "", "select probes whose fingerprint starts with this prefix")
	xlsx := flag.String("xlsx", "", "write the matched probes to an xlsx inventory at this path")
	attach := flag.Bool("console", false, "attach to the selected probe's serial console")
	baud := flag.Int("baud", 0, "console baud rate (default 115200)")
	flag.Parse()

	devices, err := probe.Search(probe.Filter{All: *all, Device: *device})
	if err != nil {
		log.Fatalf("search error: %v", err)
	}

	if len(devices) == 0 {
		fmt.Println("No debug probes found")
		return
	}

	if *attach {
		if len(devices) > 1 {
			log.Fatalf("%d probes match; narrow the selection with -device", len(devices))
		}
		runConsole(devices[0], *baud)
		return
	}

	fmt.Printf("Found %d debug probe(s):\n", len(devices))
	for i, d := range devices {
		printDevice(i+1, d)
	}

	if *xlsx != "" {
		if err := report.WriteInventory(*xlsx, devices); err != nil {
			log.Fatalf("inventory error: %v", err)
		}
		fmt.Printf("\nInventory written to %s\n", *xlsx)
	}
}

func printDevice(n int, d *probe.Device) {
	usb := d.USB()
	typ := "unknown"
	if t, ok := d.Type(); ok {
		typ = t
	}

	fmt.Printf("%d. %s  %s  (%04x:%04x)\n", n, typ, d.Hash(), usb.VendorID, usb.ProductID)
	if usb.SerialNumber != "" {
		fmt.Printf("   serial number: %s\n", usb.SerialNumber)
	}
	if arg, err := d.OpenocdSerial(); err == nil {
		fmt.Printf("   openocd:       %s\n", arg)
	}
	if path, err := d.SerialPath(); err == nil {
		fmt.Printf("   serial port:   %s\n", path)
	} else if errors.Is(err, probe.ErrShortSerial) {
		fmt.Printf("   serial port:   unavailable (%v)\n", err)
	}
	if path, err := d.MsdPath(); err == nil {
		fmt.Printf("   mass storage:  %s\n", path)
	}
}

func runConsole(d *probe.Device, baud int) {
	path, err := d.SerialPath()
	if err != nil {
		log.Fatalf("console error: %v", err)
	}
	fmt.Printf("Attaching to %s. Press Ctrl+C to detach.\n", path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = console.Attach(ctx, d, os.Stdout, console.Options{BaudRate: baud})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("console error: %v", err)
	}
}
