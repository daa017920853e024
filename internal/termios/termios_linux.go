package termios

import "golang.org/x/sys/unix"

// Speed is a kernel speed code. Linux encodes the active code in the
// CBAUD bits of Cflag (CIBAUD for the input direction); the Ispeed and
// Ospeed fields are kept as mirrors of the same code.
type Speed uint32

var speedCodes = map[Speed]struct{}{
	unix.B0:       {},
	unix.B50:      {},
	unix.B75:      {},
	unix.B110:     {},
	unix.B134:     {},
	unix.B150:     {},
	unix.B200:     {},
	unix.B300:     {},
	unix.B600:     {},
	unix.B1200:    {},
	unix.B1800:    {},
	unix.B2400:    {},
	unix.B4800:    {},
	unix.B9600:    {},
	unix.B19200:   {},
	unix.B38400:   {},
	unix.B57600:   {},
	unix.B115200:  {},
	unix.B230400:  {},
	unix.B460800:  {},
	unix.B500000:  {},
	unix.B576000:  {},
	unix.B921600:  {},
	unix.B1000000: {},
	unix.B1152000: {},
	unix.B1500000: {},
	unix.B2000000: {},
	unix.B2500000: {},
	unix.B3000000: {},
	unix.B3500000: {},
	unix.B4000000: {},
}

// ValidSpeed reports whether code is representable on this platform.
func ValidSpeed(code Speed) bool {
	_, ok := speedCodes[code]
	return ok
}

// Fetch reads the live control structure for fd.
func Fetch(fd int) (*unix.Termios, error) {
	return unix.IoctlGetTermios(fd, unix.TCGETS)
}

// Apply writes tio back to fd, taking effect immediately.
func Apply(fd int, tio *unix.Termios) error {
	return unix.IoctlSetTermios(fd, unix.TCSETS, tio)
}

// MakeRaw disables canonical processing, echo, signal generation and all
// input/output character translation, leaving the line fully transparent.
// Reads block until at least one byte is available.
func MakeRaw(tio *unix.Termios) {
	tio.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON | unix.IXOFF |
		unix.IXANY | unix.INPCK | unix.IUCLC
	tio.Oflag &^= unix.OPOST
	tio.Lflag &^= unix.ICANON | unix.ECHO | unix.ECHOE | unix.ECHOK |
		unix.ECHONL | unix.ECHOCTL | unix.ECHOPRT | unix.ECHOKE |
		unix.ISIG | unix.IEXTEN
	tio.Cflag &^= unix.CSIZE | unix.PARENB
	tio.Cflag |= unix.CS8 | unix.CREAD | unix.CLOCAL
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0
}

// SetOutputSpeed injects code as the output speed.
func SetOutputSpeed(tio *unix.Termios, code Speed) error {
	if !ValidSpeed(code) {
		return unix.EINVAL
	}
	tio.Cflag = tio.Cflag&^unix.CBAUD | uint32(code)
	tio.Ospeed = uint32(code)
	return nil
}

// SetInputSpeed injects code as the input speed.
func SetInputSpeed(tio *unix.Termios, code Speed) error {
	if !ValidSpeed(code) {
		return unix.EINVAL
	}
	tio.Cflag = tio.Cflag&^unix.CIBAUD | uint32(code)<<unix.IBSHIFT
	tio.Ispeed = uint32(code)
	return nil
}

// OutputSpeed extracts the output speed code.
func OutputSpeed(tio *unix.Termios) Speed {
	return Speed(tio.Cflag & unix.CBAUD)
}

// InputSpeed extracts the input speed code. A zero CIBAUD field means the
// input speed follows the output speed.
func InputSpeed(tio *unix.Termios) Speed {
	code := Speed((tio.Cflag & unix.CIBAUD) >> unix.IBSHIFT)
	if code == 0 {
		return OutputSpeed(tio)
	}
	return code
}

// Drain blocks until all queued output has been transmitted.
func Drain(fd int) error {
	return unix.IoctlSetInt(fd, unix.TCSBRK, 1)
}

// Flush discards queued data in the selected direction.
func Flush(fd int, q Queue) error {
	sel := unix.TCIOFLUSH
	switch q {
	case QueueInput:
		sel = unix.TCIFLUSH
	case QueueOutput:
		sel = unix.TCOFLUSH
	}
	return unix.IoctlSetInt(fd, unix.TCFLSH, sel)
}
