package serial

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"

	"github.com/ttylab/go-serial/internal/termios"
)

// Port is an open serial device configured for raw I/O. It owns the file
// descriptor and a cached copy of the kernel terminal control structure;
// every setter mutates the cache and pushes it back as a single ioctl.
//
// A Port is not safe for concurrent use without external synchronization.
type Port struct {
	fd     int
	path   string
	tio    unix.Termios
	closed bool
}

// Ensure Port implements the byte stream interfaces at compile time
var _ io.ReadWriteCloser = (*Port)(nil)

// Open opens the serial device at path and forces it into raw mode:
// no line buffering, no echo, no signal characters and no byte
// translation in either direction. The device never becomes the
// controlling terminal of the process.
//
// Options run after raw mode has been applied and are shorthand for the
// corresponding setters. If any step fails the descriptor is closed and
// no Port is returned.
func Open(path string, access Access, opts ...Option) (*Port, error) {
	flags, err := access.flags()
	if err != nil {
		return nil, err
	}

	fd, err := unix.Open(path, flags|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	p := &Port{fd: fd, path: path}

	tio, err := termios.Fetch(fd)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("fetch terminal state for %s: %w", path, err)
	}
	p.tio = *tio

	termios.MakeRaw(&p.tio)
	if err := p.apply(); err != nil {
		unix.Close(fd)
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			unix.Close(fd)
			return nil, err
		}
	}

	return p, nil
}

// Close releases the underlying descriptor. The port cannot be reopened;
// any later call returns ErrPortClosed.
func (p *Port) Close() error {
	if p.closed {
		return ErrPortClosed
	}
	p.closed = true
	return unix.Close(p.fd)
}

// Read stores incoming bytes into buf and returns the number read. It
// blocks according to the configured blocking mode; with the raw-mode
// default the call waits for at least one byte.
func (p *Port) Read(buf []byte) (int, error) {
	if p.closed {
		return 0, ErrPortClosed
	}
	n, err := unix.Read(p.fd, buf)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", p.path, err)
	}
	return n, nil
}

// Write sends buf to the device and returns the number of bytes written.
func (p *Port) Write(buf []byte) (int, error) {
	if p.closed {
		return 0, ErrPortClosed
	}
	n, err := unix.Write(p.fd, buf)
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", p.path, err)
	}
	return n, nil
}

// BaudRate returns the input and output speeds. It consults the live
// kernel state rather than the cache, so changes made outside this
// handle are reflected.
func (p *Port) BaudRate() (input, output BaudRate, err error) {
	tio, err := p.fetch()
	if err != nil {
		return 0, 0, err
	}
	return decodeBaudRate(termios.InputSpeed(tio)), decodeBaudRate(termios.OutputSpeed(tio)), nil
}

// DataBits returns the number of data bits per character, read from the
// live kernel state.
func (p *Port) DataBits() (DataBits, error) {
	tio, err := p.fetch()
	if err != nil {
		return 0, err
	}
	return decodeDataBits(tio), nil
}

// StopBits returns the number of stop bits per character, read from the
// live kernel state.
func (p *Port) StopBits() (StopBits, error) {
	tio, err := p.fetch()
	if err != nil {
		return 0, err
	}
	return decodeStopBits(tio), nil
}

// Parity returns the parity mode, read from the live kernel state.
func (p *Port) Parity() (Parity, error) {
	tio, err := p.fetch()
	if err != nil {
		return 0, err
	}
	return decodeParity(tio), nil
}

// FlowControl returns the flow control mode, read from the live kernel
// state. When both hardware and software bits happen to be set, hardware
// control wins.
func (p *Port) FlowControl() (FlowControl, error) {
	tio, err := p.fetch()
	if err != nil {
		return 0, err
	}
	return decodeFlowControl(tio), nil
}

// BlockingMode returns the read blocking mode from the cached structure.
// The value is cheap to keep current and rarely changes out-of-band, so
// no kernel round trip is made.
func (p *Port) BlockingMode() (BlockingMode, error) {
	if p.closed {
		return BlockingMode{}, ErrPortClosed
	}
	return BlockingMode{
		Bytes:       p.tio.Cc[unix.VMIN],
		Deciseconds: p.tio.Cc[unix.VTIME],
	}, nil
}

// SetBaudRate changes the speed of the selected direction(s).
func (p *Port) SetBaudRate(dir Direction, rate BaudRate) error {
	if p.closed {
		return ErrPortClosed
	}
	if _, ok := baudRateNames[rate]; !ok {
		return ErrInvalidBaudRate
	}

	code := termios.Speed(rate)
	switch dir {
	case DirectionInput:
		if err := termios.SetInputSpeed(&p.tio, code); err != nil {
			return fmt.Errorf("set input speed: %w", err)
		}
	case DirectionOutput:
		if err := termios.SetOutputSpeed(&p.tio, code); err != nil {
			return fmt.Errorf("set output speed: %w", err)
		}
	case DirectionBoth:
		if err := termios.SetInputSpeed(&p.tio, code); err != nil {
			return fmt.Errorf("set input speed: %w", err)
		}
		if err := termios.SetOutputSpeed(&p.tio, code); err != nil {
			return fmt.Errorf("set output speed: %w", err)
		}
	default:
		return ErrInvalidDirection
	}

	return p.apply()
}

// SetDataBits changes the number of data bits per character.
func (p *Port) SetDataBits(bits DataBits) error {
	if p.closed {
		return ErrPortClosed
	}
	switch bits {
	case DataBits5:
		p.tio.Cflag = p.tio.Cflag&^unix.CSIZE | unix.CS5
	case DataBits6:
		p.tio.Cflag = p.tio.Cflag&^unix.CSIZE | unix.CS6
	case DataBits7:
		p.tio.Cflag = p.tio.Cflag&^unix.CSIZE | unix.CS7
	case DataBits8:
		p.tio.Cflag = p.tio.Cflag&^unix.CSIZE | unix.CS8
	default:
		return ErrInvalidDataBits
	}
	return p.apply()
}

// SetStopBits changes the number of stop bits per character.
func (p *Port) SetStopBits(bits StopBits) error {
	if p.closed {
		return ErrPortClosed
	}
	switch bits {
	case StopBits1:
		p.tio.Cflag &^= unix.CSTOPB
	case StopBits2:
		p.tio.Cflag |= unix.CSTOPB
	default:
		return ErrInvalidStopBits
	}
	return p.apply()
}

// SetParity changes the parity mode.
func (p *Port) SetParity(parity Parity) error {
	if p.closed {
		return ErrPortClosed
	}
	switch parity {
	case ParityNone:
		p.tio.Cflag &^= unix.PARENB
	case ParityOdd:
		p.tio.Cflag |= unix.PARENB | unix.PARODD
	case ParityEven:
		p.tio.Cflag |= unix.PARENB
		p.tio.Cflag &^= unix.PARODD
	default:
		return ErrInvalidParity
	}
	return p.apply()
}

// SetFlowControl changes the flow control mode. The hardware and
// software flag groups are kept mutually exclusive: enabling one always
// clears the other.
func (p *Port) SetFlowControl(flow FlowControl) error {
	if p.closed {
		return ErrPortClosed
	}
	switch flow {
	case FlowControlNone:
		p.tio.Cflag &^= unix.CRTSCTS
		p.tio.Iflag &^= unix.IXON | unix.IXOFF | unix.IXANY
	case FlowControlSoftware:
		p.tio.Cflag &^= unix.CRTSCTS
		p.tio.Iflag |= unix.IXON | unix.IXOFF | unix.IXANY
	case FlowControlHardware:
		p.tio.Cflag |= unix.CRTSCTS
		p.tio.Iflag &^= unix.IXON | unix.IXOFF | unix.IXANY
	default:
		return ErrInvalidFlowControl
	}
	return p.apply()
}

// SetBlockingMode changes how reads wait for data.
func (p *Port) SetBlockingMode(mode BlockingMode) error {
	if p.closed {
		return ErrPortClosed
	}
	p.tio.Cc[unix.VMIN] = mode.Bytes
	p.tio.Cc[unix.VTIME] = mode.Deciseconds
	return p.apply()
}

// ModemSignals returns current state of all modem control signals
func (p *Port) ModemSignals() (ModemSignals, error) {
	if p.closed {
		return ModemSignals{}, ErrPortClosed
	}
	status, err := termios.ModemBits(p.fd)
	if err != nil {
		return ModemSignals{}, fmt.Errorf("read modem lines on %s: %w", p.path, err)
	}
	return ModemSignals{
		CTS: status&termios.LineCTS != 0,
		DSR: status&termios.LineDSR != 0,
		RI:  status&termios.LineRI != 0,
		DCD: status&termios.LineDCD != 0,
		RTS: status&termios.LineRTS != 0,
		DTR: status&termios.LineDTR != 0,
	}, nil
}

// SetRTS manually sets the RTS signal state
func (p *Port) SetRTS(state bool) error {
	return p.setLine(termios.LineRTS, state)
}

// SetDTR manually sets the DTR signal state
func (p *Port) SetDTR(state bool) error {
	return p.setLine(termios.LineDTR, state)
}

func (p *Port) setLine(line int, state bool) error {
	if p.closed {
		return ErrPortClosed
	}
	var err error
	if state {
		err = termios.SetModemBits(p.fd, line)
	} else {
		err = termios.ClearModemBits(p.fd, line)
	}
	if err != nil {
		return fmt.Errorf("set modem line on %s: %w", p.path, err)
	}
	return nil
}

// Drain waits until all output written to the port has been transmitted
func (p *Port) Drain() error {
	if p.closed {
		return ErrPortClosed
	}
	if err := termios.Drain(p.fd); err != nil {
		return fmt.Errorf("drain %s: %w", p.path, err)
	}
	return nil
}

// FlushInput discards any unread input data
func (p *Port) FlushInput() error {
	return p.flush(termios.QueueInput)
}

// FlushOutput discards any unwritten output data
func (p *Port) FlushOutput() error {
	return p.flush(termios.QueueOutput)
}

func (p *Port) flush(q termios.Queue) error {
	if p.closed {
		return ErrPortClosed
	}
	if err := termios.Flush(p.fd, q); err != nil {
		return fmt.Errorf("flush %s: %w", p.path, err)
	}
	return nil
}

// fetch reads the live control structure without touching the cache, so
// getters observe out-of-band changes while setters keep operating on
// the handle's own copy.
func (p *Port) fetch() (*unix.Termios, error) {
	if p.closed {
		return nil, ErrPortClosed
	}
	tio, err := termios.Fetch(p.fd)
	if err != nil {
		return nil, fmt.Errorf("fetch terminal state for %s: %w", p.path, err)
	}
	return tio, nil
}

// apply pushes the cached structure back to the kernel. On failure the
// cache keeps the mutated value; it is not resynchronized, and callers
// needing strict agreement with the kernel must re-apply or reopen.
func (p *Port) apply() error {
	if err := termios.Apply(p.fd, &p.tio); err != nil {
		return fmt.Errorf("apply terminal state to %s: %w", p.path, err)
	}
	return nil
}
