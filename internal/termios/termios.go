// Package termios mirrors the kernel terminal control structure and the
// ioctls that move it in and out of the kernel. All platform-conditional
// bit layout knowledge lives here, behind one set of operations; callers
// never see which POSIX variant they are running on.
//
// The package owns no policy: every function is either a single ioctl or a
// pure in-memory transformation of a unix.Termios value.
package termios

import "golang.org/x/sys/unix"

// Queue selects which data a Flush discards.
type Queue int

const (
	QueueInput Queue = iota
	QueueOutput
	QueueBoth
)

// Modem status line bits. The TIOCM values coincide on the supported
// platforms, so these live outside the build-tagged files.
const (
	LineDTR = unix.TIOCM_DTR
	LineRTS = unix.TIOCM_RTS
	LineCTS = unix.TIOCM_CTS
	LineDSR = unix.TIOCM_DSR
	LineRI  = unix.TIOCM_RI
	LineDCD = unix.TIOCM_CAR
)

// ModemBits reads the current modem status lines for fd.
func ModemBits(fd int) (int, error) {
	return unix.IoctlGetInt(fd, unix.TIOCMGET)
}

// SetModemBits raises the lines in bits, leaving the others untouched.
func SetModemBits(fd int, bits int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCMBIS, bits)
}

// ClearModemBits lowers the lines in bits.
func ClearModemBits(fd int, bits int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCMBIC, bits)
}
