package serial

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestAccessFlags(t *testing.T) {
	cases := []struct {
		access Access
		want   int
	}{
		{AccessReadOnly, unix.O_RDONLY},
		{AccessWriteOnly, unix.O_WRONLY},
		{AccessReadWrite, unix.O_RDWR},
	}
	for _, tc := range cases {
		got, err := tc.access.flags()
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := Access(42).flags()
	require.ErrorIs(t, err, ErrInvalidAccess)
}

func TestBaudRateString(t *testing.T) {
	require.Equal(t, "9600", Baud9600.String())
	require.Equal(t, "115200", Baud115200.String())
	require.Equal(t, "0", Baud0.String())
}

func TestParityString(t *testing.T) {
	require.Equal(t, "N", ParityNone.String())
	require.Equal(t, "O", ParityOdd.String())
	require.Equal(t, "E", ParityEven.String())
}

func TestFlowControlString(t *testing.T) {
	require.Equal(t, "none", FlowControlNone.String())
	require.Equal(t, "software", FlowControlSoftware.String())
	require.Equal(t, "hardware", FlowControlHardware.String())
}

func TestLookupBaudRate(t *testing.T) {
	rate, ok := LookupBaudRate(9600)
	require.True(t, ok)
	require.Equal(t, Baud9600, rate)

	rate, ok = LookupBaudRate(115200)
	require.True(t, ok)
	require.Equal(t, Baud115200, rate)

	_, ok = LookupBaudRate(12345)
	require.False(t, ok)
}

func TestDecodePanicsOnUnknownSpeedCode(t *testing.T) {
	require.Panics(t, func() {
		decodeBaudRate(0x12345)
	})
}

func TestDecodeParity(t *testing.T) {
	var tio unix.Termios

	require.Equal(t, ParityNone, decodeParity(&tio))

	tio.Cflag |= unix.PARENB
	require.Equal(t, ParityEven, decodeParity(&tio))

	tio.Cflag |= unix.PARODD
	require.Equal(t, ParityOdd, decodeParity(&tio))
}

func TestDecodeFlowControl(t *testing.T) {
	var tio unix.Termios

	require.Equal(t, FlowControlNone, decodeFlowControl(&tio))

	tio.Iflag |= unix.IXON
	require.Equal(t, FlowControlSoftware, decodeFlowControl(&tio))

	tio.Cflag |= unix.CRTSCTS
	require.Equal(t, FlowControlHardware, decodeFlowControl(&tio))
}
