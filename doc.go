// Package serial provides a typed, safe abstraction over POSIX terminal
// I/O control for serial devices on Linux and Darwin.
//
// Opening a port forces it into raw mode: no line buffering, no echo, no
// signal-generating characters and no byte translation in either
// direction, so reads and writes move bytes exactly as they appear on
// the wire.
//
// # Basic Usage
//
// Open a device and configure the line through the setters:
//
//	port, err := serial.Open("/dev/ttyUSB0", serial.AccessReadWrite)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	port.SetBaudRate(serial.DirectionBoth, serial.Baud115200)
//	port.SetDataBits(serial.DataBits8)
//	port.SetParity(serial.ParityNone)
//
//	n, err := port.Write([]byte("AT\r"))
//	buf := make([]byte, 256)
//	n, err = port.Read(buf)
//
// Or pass functional options to Open, which apply the same setters:
//
//	port, err := serial.Open("/dev/ttyUSB0", serial.AccessReadWrite,
//	    serial.WithBaudRate(serial.Baud9600),
//	    serial.WithFlowControl(serial.FlowControlHardware),
//	    serial.WithBlockingMode(serial.BlockingMode{Bytes: 1, Deciseconds: 5}),
//	)
//
// # Configuration model
//
// Every parameter is a closed enumeration mapped onto the platform's
// termios bit patterns: BaudRate values are the kernel speed codes,
// DataBits covers 5 through 8, StopBits 1 and 2, Parity none/odd/even
// and FlowControl none/software/hardware. The handle keeps a cached copy
// of the control structure: setters mutate the cache and push it back as
// one ioctl, while most getters re-fetch the live kernel state first so
// out-of-band changes are observed. BlockingMode is read from the cache.
//
// If a setter's push-back fails the cache keeps the mutated value and is
// not resynchronized with the kernel; callers that need strict agreement
// must re-apply the configuration or reopen the device.
//
// A getter that decodes a bit pattern outside its enumeration panics:
// the kernel returned a configuration this library was not built for,
// which signals a platform mismatch rather than a recoverable error.
//
// # Blocking behavior
//
// Reads follow standard termios VMIN/VTIME semantics, configured through
// BlockingMode as a (minimum bytes, decisecond timeout) pair. Raw mode
// defaults to one byte minimum with no timeout. There is no cancellation
// mechanism beyond that configuration; a blocked read only returns when
// data arrives, the descriptor is closed, or a signal is delivered.
//
// # Modem control
//
// The status lines are exposed directly:
//
//	signals, err := port.ModemSignals()
//	fmt.Printf("CTS=%v DSR=%v DCD=%v RI=%v\n",
//	    signals.CTS, signals.DSR, signals.DCD, signals.RI)
//
//	err = port.SetRTS(true)
//	err = port.SetDTR(false)
//
// # Error Handling
//
// Fallible operations wrap the underlying OS error, so platform error
// codes stay reachable:
//
//	if errors.Is(err, unix.ENOENT) {
//	    // device node does not exist
//	}
//
// Operations on a closed port return ErrPortClosed; invalid enumeration
// values passed to setters return the matching ErrInvalid* sentinel.
// Nothing is retried internally.
package serial
