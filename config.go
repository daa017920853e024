package serial

// Option is a functional option for configuring a serial port. Options
// run as part of Open, after the port has been forced into raw mode, and
// are shorthand for calling the corresponding setter on the new handle.
type Option func(*Port) error

// WithBaudRate sets the baud rate for both directions
func WithBaudRate(rate BaudRate) Option {
	return func(p *Port) error {
		return p.SetBaudRate(DirectionBoth, rate)
	}
}

// WithDataBits sets the number of data bits (5, 6, 7, or 8)
func WithDataBits(bits DataBits) Option {
	return func(p *Port) error {
		return p.SetDataBits(bits)
	}
}

// WithStopBits sets the number of stop bits (1 or 2)
func WithStopBits(bits StopBits) Option {
	return func(p *Port) error {
		return p.SetStopBits(bits)
	}
}

// WithParity sets the parity mode
func WithParity(parity Parity) Option {
	return func(p *Port) error {
		return p.SetParity(parity)
	}
}

// WithFlowControl sets the flow control mode
func WithFlowControl(fc FlowControl) Option {
	return func(p *Port) error {
		return p.SetFlowControl(fc)
	}
}

// WithBlockingMode sets the read blocking mode (VMIN/VTIME)
func WithBlockingMode(mode BlockingMode) Option {
	return func(p *Port) error {
		return p.SetBlockingMode(mode)
	}
}
