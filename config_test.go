package serial

import (
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

func TestOpenWithOptions(t *testing.T) {
	_, port := openPair(t,
		WithBaudRate(Baud115200),
		WithDataBits(DataBits7),
		WithStopBits(StopBits2),
		WithParity(ParityEven),
		WithFlowControl(FlowControlSoftware),
		WithBlockingMode(BlockingMode{Bytes: 4, Deciseconds: 2}),
	)

	s, err := port.Settings()
	require.NoError(t, err)
	require.Equal(t, Baud115200, s.InputBaud)
	require.Equal(t, Baud115200, s.OutputBaud)
	require.Equal(t, DataBits7, s.DataBits)
	require.Equal(t, StopBits2, s.StopBits)
	require.Equal(t, ParityEven, s.Parity)
	require.Equal(t, FlowControlSoftware, s.FlowControl)
	require.Equal(t, BlockingMode{Bytes: 4, Deciseconds: 2}, s.Blocking)
}

func TestOpenRejectsBadOption(t *testing.T) {
	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	port, err := Open(slave.Name(), AccessReadWrite, WithParity(Parity(9)))
	require.ErrorIs(t, err, ErrInvalidParity)
	require.Nil(t, port)
}
