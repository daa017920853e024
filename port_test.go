package serial

import (
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/ttylab/go-serial/internal/termios"
)

// openPair connects a Port to the slave end of a pseudo-terminal pair and
// hands back the master end for the far side of the conversation.
func openPair(t *testing.T, opts ...Option) (*os.File, *Port) {
	t.Helper()

	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	port, err := Open(slave.Name(), AccessReadWrite, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { port.Close() })

	return master, port
}

// readExactly collects n bytes from r, failing the test if they do not
// arrive within the timeout.
func readExactly(t *testing.T, r interface{ Read([]byte) (int, error) }, n int, timeout time.Duration) []byte {
	t.Helper()

	got := make(chan []byte, 1)
	errs := make(chan error, 1)
	go func() {
		buf := make([]byte, n)
		read := 0
		for read < n {
			m, err := r.Read(buf[read:])
			if err != nil {
				errs <- err
				return
			}
			read += m
		}
		got <- buf
	}()

	select {
	case buf := <-got:
		return buf
	case err := <-errs:
		t.Fatalf("read failed: %v", err)
	case <-time.After(timeout):
		t.Fatalf("timeout waiting for %d bytes", n)
	}
	return nil
}

func TestOpenMissingDevice(t *testing.T) {
	port, err := Open("/dev/nonexistent-serial-device", AccessReadWrite)
	require.Error(t, err)
	require.ErrorIs(t, err, unix.ENOENT)
	require.Nil(t, port)
}

func TestOpenInvalidAccess(t *testing.T) {
	port, err := Open("/dev/null", Access(42))
	require.ErrorIs(t, err, ErrInvalidAccess)
	require.Nil(t, port)
}

func TestRawTransparency(t *testing.T) {
	master, port := openPair(t)

	// Bytes that canonical mode would translate or swallow.
	payload := []byte{0x0d, 0x0a, 0x1b}

	n, err := port.Write(payload)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.Equal(t, payload, readExactly(t, master, len(payload), time.Second))

	_, err = master.Write(payload)
	require.NoError(t, err)
	require.Equal(t, payload, readExactly(t, port, len(payload), time.Second))
}

func TestOpenForcesRawMode(t *testing.T) {
	_, port := openPair(t)

	tio, err := termios.Fetch(port.fd)
	require.NoError(t, err)
	require.Zero(t, tio.Lflag&(unix.ICANON|unix.ECHO|unix.ISIG|unix.IEXTEN))
	require.Zero(t, tio.Iflag&(unix.ICRNL|unix.INLCR|unix.IGNCR|unix.IXON))
	require.Zero(t, tio.Oflag&unix.OPOST)
	require.EqualValues(t, 1, tio.Cc[unix.VMIN])
	require.EqualValues(t, 0, tio.Cc[unix.VTIME])
}

func TestCloseReleasesDescriptor(t *testing.T) {
	_, port := openPair(t)
	fd := port.fd

	require.NoError(t, port.Close())

	buf := make([]byte, 1)
	_, err := unix.Read(fd, buf)
	require.ErrorIs(t, err, unix.EBADF)
}

func TestClosedPortRejectsEverything(t *testing.T) {
	_, port := openPair(t)
	require.NoError(t, port.Close())

	require.ErrorIs(t, port.Close(), ErrPortClosed)

	_, err := port.Read(make([]byte, 1))
	require.ErrorIs(t, err, ErrPortClosed)
	_, err = port.Write([]byte("x"))
	require.ErrorIs(t, err, ErrPortClosed)

	_, _, err = port.BaudRate()
	require.ErrorIs(t, err, ErrPortClosed)
	_, err = port.DataBits()
	require.ErrorIs(t, err, ErrPortClosed)
	_, err = port.BlockingMode()
	require.ErrorIs(t, err, ErrPortClosed)
	_, err = port.Settings()
	require.ErrorIs(t, err, ErrPortClosed)

	require.ErrorIs(t, port.SetBaudRate(DirectionBoth, Baud9600), ErrPortClosed)
	require.ErrorIs(t, port.SetDataBits(DataBits8), ErrPortClosed)
	require.ErrorIs(t, port.SetBlockingMode(BlockingMode{}), ErrPortClosed)
	require.ErrorIs(t, port.SetRTS(true), ErrPortClosed)
	require.ErrorIs(t, port.Drain(), ErrPortClosed)
	require.ErrorIs(t, port.FlushInput(), ErrPortClosed)
}

func TestBlockingModeRoundTrip(t *testing.T) {
	_, port := openPair(t)

	modes := []BlockingMode{
		{Bytes: 0, Deciseconds: 0},
		{Bytes: 1, Deciseconds: 0},
		{Bytes: 0, Deciseconds: 5},
		{Bytes: 4, Deciseconds: 2},
		{Bytes: 255, Deciseconds: 255},
	}
	for _, mode := range modes {
		require.NoError(t, port.SetBlockingMode(mode))

		got, err := port.BlockingMode()
		require.NoError(t, err)
		require.Equal(t, mode, got)
	}
}

// Getters for line parameters consult the kernel, not the cache, so a
// change made through a second descriptor shows up immediately.
func TestGettersObserveExternalChanges(t *testing.T) {
	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	port, err := Open(slave.Name(), AccessReadWrite, WithBaudRate(Baud115200))
	require.NoError(t, err)
	t.Cleanup(func() { port.Close() })

	tio, err := termios.Fetch(int(slave.Fd()))
	require.NoError(t, err)
	require.NoError(t, termios.SetInputSpeed(tio, termios.Speed(Baud300)))
	require.NoError(t, termios.SetOutputSpeed(tio, termios.Speed(Baud300)))
	require.NoError(t, termios.Apply(int(slave.Fd()), tio))

	in, out, err := port.BaudRate()
	require.NoError(t, err)
	require.Equal(t, Baud300, in)
	require.Equal(t, Baud300, out)
}

// BlockingMode is the one cached getter: out-of-band changes are not
// observed until the next setter pushes the cache back.
func TestBlockingModeReadsCache(t *testing.T) {
	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	port, err := Open(slave.Name(), AccessReadWrite)
	require.NoError(t, err)
	t.Cleanup(func() { port.Close() })

	tio, err := termios.Fetch(int(slave.Fd()))
	require.NoError(t, err)
	tio.Cc[unix.VMIN] = 42
	require.NoError(t, termios.Apply(int(slave.Fd()), tio))

	mode, err := port.BlockingMode()
	require.NoError(t, err)
	require.EqualValues(t, 1, mode.Bytes) // raw-mode default, from the cache
}

func TestModemSignalsOnPseudoTerminal(t *testing.T) {
	_, port := openPair(t)

	// Pseudo-terminals have no modem lines; the OS error must surface.
	_, err := port.ModemSignals()
	require.Error(t, err)

	require.NoError(t, port.Close())
	_, err = port.ModemSignals()
	require.ErrorIs(t, err, ErrPortClosed)
}

func TestSettingsSnapshot(t *testing.T) {
	_, port := openPair(t)

	require.NoError(t, port.SetBaudRate(DirectionBoth, Baud9600))
	require.NoError(t, port.SetDataBits(DataBits7))
	require.NoError(t, port.SetParity(ParityEven))
	require.NoError(t, port.SetStopBits(StopBits2))
	require.NoError(t, port.SetFlowControl(FlowControlSoftware))

	s, err := port.Settings()
	require.NoError(t, err)
	require.Equal(t, Baud9600, s.InputBaud)
	require.Equal(t, Baud9600, s.OutputBaud)
	require.Equal(t, DataBits7, s.DataBits)
	require.Equal(t, ParityEven, s.Parity)
	require.Equal(t, StopBits2, s.StopBits)
	require.Equal(t, FlowControlSoftware, s.FlowControl)
	require.Equal(t, "9600 7E2", s.String())
}
