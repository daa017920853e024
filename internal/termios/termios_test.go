package termios

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestMakeRaw(t *testing.T) {
	tio := &unix.Termios{}
	tio.Iflag |= unix.ICRNL | unix.IXON | unix.ISTRIP | unix.BRKINT
	tio.Oflag |= unix.OPOST
	tio.Lflag |= unix.ICANON | unix.ECHO | unix.ISIG | unix.IEXTEN
	tio.Cflag |= unix.PARENB | unix.CS7

	MakeRaw(tio)

	require.Zero(t, tio.Iflag&(unix.ICRNL|unix.INLCR|unix.IGNCR|unix.IXON|unix.IXOFF|unix.ISTRIP|unix.BRKINT))
	require.Zero(t, tio.Oflag&unix.OPOST)
	require.Zero(t, tio.Lflag&(unix.ICANON|unix.ECHO|unix.ECHONL|unix.ISIG|unix.IEXTEN))
	require.Zero(t, tio.Cflag&unix.PARENB)
	require.EqualValues(t, unix.CS8, tio.Cflag&unix.CSIZE)
	require.NotZero(t, tio.Cflag&unix.CREAD)
	require.NotZero(t, tio.Cflag&unix.CLOCAL)
	require.EqualValues(t, 1, tio.Cc[unix.VMIN])
	require.EqualValues(t, 0, tio.Cc[unix.VTIME])
}

func TestSpeedRoundTrip(t *testing.T) {
	tio := &unix.Termios{}

	require.NoError(t, SetOutputSpeed(tio, unix.B9600))
	require.EqualValues(t, unix.B9600, OutputSpeed(tio))

	require.NoError(t, SetInputSpeed(tio, unix.B19200))
	require.EqualValues(t, unix.B19200, InputSpeed(tio))

	// The directions are independent.
	require.EqualValues(t, unix.B9600, OutputSpeed(tio))
}

func TestInputSpeedFollowsOutput(t *testing.T) {
	tio := &unix.Termios{}

	require.NoError(t, SetOutputSpeed(tio, unix.B300))
	require.EqualValues(t, unix.B300, InputSpeed(tio))
}

func TestSetSpeedRejectsUnknownCode(t *testing.T) {
	tio := &unix.Termios{}

	err := SetOutputSpeed(tio, Speed(0x12345))
	require.ErrorIs(t, err, unix.EINVAL)

	err = SetInputSpeed(tio, Speed(0x12345))
	require.ErrorIs(t, err, unix.EINVAL)

	// Nothing was written.
	require.EqualValues(t, 0, tio.Cflag)
	require.EqualValues(t, 0, tio.Ispeed)
	require.EqualValues(t, 0, tio.Ospeed)
}

func TestValidSpeedCoversWholeTable(t *testing.T) {
	for code := range speedCodes {
		require.True(t, ValidSpeed(code))
	}
	require.False(t, ValidSpeed(Speed(0xdeadbeef)))
}
