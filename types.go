package serial

import (
	"fmt"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/ttylab/go-serial/internal/termios"
)

// Access selects how the device node is opened.
type Access int

const (
	AccessReadOnly Access = iota
	AccessWriteOnly
	AccessReadWrite
)

func (a Access) flags() (int, error) {
	switch a {
	case AccessReadOnly:
		return unix.O_RDONLY, nil
	case AccessWriteOnly:
		return unix.O_WRONLY, nil
	case AccessReadWrite:
		return unix.O_RDWR, nil
	default:
		return 0, ErrInvalidAccess
	}
}

// Direction selects which speed field a baud rate change applies to.
type Direction int

const (
	DirectionBoth Direction = iota
	DirectionInput
	DirectionOutput
)

// DataBits is the number of data bits per character.
type DataBits int

const (
	DataBits5 DataBits = 5
	DataBits6 DataBits = 6
	DataBits7 DataBits = 7
	DataBits8 DataBits = 8
)

// StopBits is the number of stop bits per character.
type StopBits int

const (
	StopBits1 StopBits = 1
	StopBits2 StopBits = 2
)

// Parity represents the parity mode
type Parity int

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "N"
	case ParityOdd:
		return "O"
	case ParityEven:
		return "E"
	default:
		return fmt.Sprintf("Parity(%d)", int(p))
	}
}

// FlowControl represents the flow control mode
type FlowControl int

const (
	FlowControlNone FlowControl = iota
	FlowControlSoftware
	FlowControlHardware
)

func (f FlowControl) String() string {
	switch f {
	case FlowControlNone:
		return "none"
	case FlowControlSoftware:
		return "software"
	case FlowControlHardware:
		return "hardware"
	default:
		return fmt.Sprintf("FlowControl(%d)", int(f))
	}
}

// BlockingMode controls how a read call waits: the call returns once
// Bytes bytes are buffered, or when the inter-byte timer of Deciseconds
// expires, with standard termios VMIN/VTIME semantics.
type BlockingMode struct {
	Bytes       uint8
	Deciseconds uint8
}

// ModemSignals represents modem control signal states
type ModemSignals struct {
	CTS bool // Clear To Send
	DSR bool // Data Set Ready
	RI  bool // Ring Indicator
	DCD bool // Data Carrier Detect
	RTS bool // Request To Send
	DTR bool // Data Terminal Ready
}

// String returns the conventional numeric spelling, e.g. "115200".
func (b BaudRate) String() string {
	if name, ok := baudRateNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BaudRate(%#x)", uint64(b))
}

// LookupBaudRate maps a conventional numeric baud value, e.g. 9600,
// onto its BaudRate constant. The second result is false when the value
// is not in the supported set.
func LookupBaudRate(n int) (BaudRate, bool) {
	want := strconv.Itoa(n)
	for rate, name := range baudRateNames {
		if name == want {
			return rate, true
		}
	}
	return 0, false
}

// decodeBaudRate maps a kernel speed code back onto the closed BaudRate
// set. A code outside the set means the kernel is running a configuration
// this library was not built for, which is not recoverable.
func decodeBaudRate(code termios.Speed) BaudRate {
	rate := BaudRate(code)
	if _, ok := baudRateNames[rate]; !ok {
		panic(fmt.Sprintf("serial: kernel speed code %#x is outside the supported set", uint64(code)))
	}
	return rate
}

func decodeDataBits(tio *unix.Termios) DataBits {
	switch tio.Cflag & unix.CSIZE {
	case unix.CS5:
		return DataBits5
	case unix.CS6:
		return DataBits6
	case unix.CS7:
		return DataBits7
	case unix.CS8:
		return DataBits8
	default:
		panic(fmt.Sprintf("serial: unsupported character size bits %#x", uint64(tio.Cflag&unix.CSIZE)))
	}
}

func decodeStopBits(tio *unix.Termios) StopBits {
	if tio.Cflag&unix.CSTOPB != 0 {
		return StopBits2
	}
	return StopBits1
}

func decodeParity(tio *unix.Termios) Parity {
	switch {
	case tio.Cflag&unix.PARENB == 0:
		return ParityNone
	case tio.Cflag&unix.PARODD != 0:
		return ParityOdd
	default:
		return ParityEven
	}
}

// decodeFlowControl resolves the raw flags into one mode. Hardware and
// software bits are not mutually exclusive in the structure itself, so
// the hardware bit wins when both appear set.
func decodeFlowControl(tio *unix.Termios) FlowControl {
	if tio.Cflag&unix.CRTSCTS != 0 {
		return FlowControlHardware
	}
	if tio.Iflag&(unix.IXON|unix.IXOFF|unix.IXANY) == 0 {
		return FlowControlNone
	}
	return FlowControlSoftware
}
