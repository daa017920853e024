package serial

import "errors"

// Predefined error types for robust error handling
var (
	ErrPortClosed         = errors.New("serial port is closed")
	ErrInvalidAccess      = errors.New("invalid access mode")
	ErrInvalidBaudRate    = errors.New("invalid baud rate")
	ErrInvalidDataBits    = errors.New("invalid data bits")
	ErrInvalidStopBits    = errors.New("invalid stop bits")
	ErrInvalidParity      = errors.New("invalid parity")
	ErrInvalidFlowControl = errors.New("invalid flow control")
	ErrInvalidDirection   = errors.New("invalid speed direction")
)
