// Package console attaches to the virtual serial console a debug probe
// exposes alongside its debug interface.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"

	"github.com/ocdtools/probectl/probe"
)

// Options configure the serial session. The zero value selects the usual
// 115200 8N1 console settings.
type Options struct {
	BaudRate int
}

const defaultBaudRate = 115200

// Attach opens the probe's serial console and copies its output to w until
// ctx is cancelled or the port fails. Families without a serial console
// (ST-Link v2, unclassified devices) return probe.ErrNotSupported; a TI-ICDI
// unit with a truncated serial number returns probe.ErrShortSerial.
func Attach(ctx context.Context, d *probe.Device, w io.Writer, opts Options) error {
	path, err := d.SerialPath()
	if err != nil {
		return err
	}

	baud := opts.BaudRate
	if baud == 0 {
		baud = defaultBaudRate
	}
	mode := &serial.Mode{
		BaudRate: baud,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(path, mode)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = port.Close() }()

	_ = port.SetDTR(true)
	_ = port.SetReadTimeout(500 * time.Millisecond)
	if err := port.ResetInputBuffer(); err != nil {
		// stale bytes only, proceed
	}

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := port.Read(buf)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if n == 0 {
			continue
		}
		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("writing console output: %w", err)
		}
	}
}
