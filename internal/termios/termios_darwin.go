package termios

import "golang.org/x/sys/unix"

// Speed is a line speed. Darwin stores speeds as plain integers in the
// Ispeed and Ospeed fields rather than encoding them into Cflag.
type Speed uint64

var speedCodes = map[Speed]struct{}{
	unix.B0:      {},
	unix.B50:     {},
	unix.B75:     {},
	unix.B110:    {},
	unix.B134:    {},
	unix.B150:    {},
	unix.B200:    {},
	unix.B300:    {},
	unix.B600:    {},
	unix.B1200:   {},
	unix.B1800:   {},
	unix.B2400:   {},
	unix.B4800:   {},
	unix.B7200:   {},
	unix.B9600:   {},
	unix.B14400:  {},
	unix.B19200:  {},
	unix.B28800:  {},
	unix.B38400:  {},
	unix.B57600:  {},
	unix.B76800:  {},
	unix.B115200: {},
	unix.B230400: {},
}

// TIOCFLUSH takes an FREAD/FWRITE selector; the generated unix package
// does not carry these two.
const (
	fread  = 0x0001
	fwrite = 0x0002
)

// ValidSpeed reports whether code is representable on this platform.
func ValidSpeed(code Speed) bool {
	_, ok := speedCodes[code]
	return ok
}

// Fetch reads the live control structure for fd.
func Fetch(fd int) (*unix.Termios, error) {
	return unix.IoctlGetTermios(fd, unix.TIOCGETA)
}

// Apply writes tio back to fd, taking effect immediately.
func Apply(fd int, tio *unix.Termios) error {
	return unix.IoctlSetTermios(fd, unix.TIOCSETA, tio)
}

// MakeRaw disables canonical processing, echo, signal generation and all
// input/output character translation, leaving the line fully transparent.
// Reads block until at least one byte is available.
func MakeRaw(tio *unix.Termios) {
	tio.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON | unix.IXOFF |
		unix.IXANY | unix.INPCK
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
	tio.Ospeed = uint64(code)
	return nil
}

// SetInputSpeed injects code as the input speed.
func SetInputSpeed(tio *unix.Termios, code Speed) error {
	if !ValidSpeed(code) {
		return unix.EINVAL
	}
	tio.Ispeed = uint64(code)
	return nil
}

// OutputSpeed extracts the output speed code.
func OutputSpeed(tio *unix.Termios) Speed {
	return Speed(tio.Ospeed)
}

// InputSpeed extracts the input speed code. Zero means the input speed
// follows the output speed.
func InputSpeed(tio *unix.Termios) Speed {
	if tio.Ispeed == 0 {
		return OutputSpeed(tio)
	}
	return Speed(tio.Ispeed)
}

// Drain blocks until all queued output has been transmitted.
func Drain(fd int) error {
	return unix.IoctlSetInt(fd, unix.TIOCDRAIN, 0)
}

// Flush discards queued data in the selected direction.
func Flush(fd int, q Queue) error {
	sel := fread | fwrite
	switch q {
	case QueueInput:
		sel = fread
	case QueueOutput:
		sel = fwrite
	}
	return unix.IoctlSetPointerInt(fd, unix.TIOCFLUSH, sel)
}
