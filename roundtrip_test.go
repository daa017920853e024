package serial

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestBaudRateRoundTrip(t *testing.T) {
	_, port := openPair(t)

	for rate, name := range baudRateNames {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, port.SetBaudRate(DirectionBoth, rate))

			in, out, err := port.BaudRate()
			require.NoError(t, err)
			require.Equal(t, rate, in)
			require.Equal(t, rate, out)
		})
	}
}

func TestBaudRatePerDirection(t *testing.T) {
	_, port := openPair(t)

	require.NoError(t, port.SetBaudRate(DirectionOutput, Baud9600))
	require.NoError(t, port.SetBaudRate(DirectionInput, Baud19200))

	in, out, err := port.BaudRate()
	require.NoError(t, err)
	require.Equal(t, Baud19200, in)
	require.Equal(t, Baud9600, out)
}

func TestSetBaudRateRejectsUnknownRate(t *testing.T) {
	_, port := openPair(t)

	require.ErrorIs(t, port.SetBaudRate(DirectionBoth, BaudRate(0x12345)), ErrInvalidBaudRate)
	require.ErrorIs(t, port.SetBaudRate(Direction(9), Baud9600), ErrInvalidDirection)
}

func TestDataBitsRoundTrip(t *testing.T) {
	_, port := openPair(t)

	for _, bits := range []DataBits{DataBits5, DataBits6, DataBits7, DataBits8} {
		require.NoError(t, port.SetDataBits(bits))

		got, err := port.DataBits()
		require.NoError(t, err)
		require.Equal(t, bits, got)
	}

	require.ErrorIs(t, port.SetDataBits(DataBits(9)), ErrInvalidDataBits)
}

func TestStopBitsRoundTrip(t *testing.T) {
	_, port := openPair(t)

	for _, bits := range []StopBits{StopBits2, StopBits1} {
		require.NoError(t, port.SetStopBits(bits))

		got, err := port.StopBits()
		require.NoError(t, err)
		require.Equal(t, bits, got)
	}

	require.ErrorIs(t, port.SetStopBits(StopBits(3)), ErrInvalidStopBits)
}

func TestParityRoundTrip(t *testing.T) {
	_, port := openPair(t)

	for _, parity := range []Parity{ParityOdd, ParityEven, ParityNone} {
		require.NoError(t, port.SetParity(parity))

		got, err := port.Parity()
		require.NoError(t, err)
		require.Equal(t, parity, got)
	}

	require.ErrorIs(t, port.SetParity(Parity(5)), ErrInvalidParity)
}

func TestFlowControlRoundTrip(t *testing.T) {
	_, port := openPair(t)

	for _, flow := range []FlowControl{FlowControlSoftware, FlowControlHardware, FlowControlNone} {
		require.NoError(t, port.SetFlowControl(flow))

		got, err := port.FlowControl()
		require.NoError(t, err)
		require.Equal(t, flow, got)
	}

	require.ErrorIs(t, port.SetFlowControl(FlowControl(7)), ErrInvalidFlowControl)
}

// The raw structure can carry hardware and software bits at the same
// time; the decoder must prefer hardware control.
func TestFlowControlHardwareWins(t *testing.T) {
	_, port := openPair(t)

	port.tio.Iflag |= unix.IXON | unix.IXOFF | unix.IXANY
	port.tio.Cflag |= unix.CRTSCTS
	require.NoError(t, port.apply())

	got, err := port.FlowControl()
	require.NoError(t, err)
	require.Equal(t, FlowControlHardware, got)
}

func TestSettersKeepUnrelatedBits(t *testing.T) {
	_, port := openPair(t)

	require.NoError(t, port.SetBaudRate(DirectionBoth, Baud38400))
	require.NoError(t, port.SetParity(ParityOdd))
	require.NoError(t, port.SetDataBits(DataBits6))
	require.NoError(t, port.SetStopBits(StopBits2))

	// Each setter masked only its own field.
	s, err := port.Settings()
	require.NoError(t, err)
	require.Equal(t, Baud38400, s.OutputBaud)
	require.Equal(t, ParityOdd, s.Parity)
	require.Equal(t, DataBits6, s.DataBits)
	require.Equal(t, StopBits2, s.StopBits)
}
