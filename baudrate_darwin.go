package serial

import "golang.org/x/sys/unix"

// BaudRate is one of the line speeds this platform supports. Darwin
// speed codes are the literal baud numbers, but the set is still closed:
// only the rates below round-trip through this library.
type BaudRate uint64

const (
	Baud0      BaudRate = unix.B0
	Baud50     BaudRate = unix.B50
	Baud75     BaudRate = unix.B75
	Baud110    BaudRate = unix.B110
	Baud134    BaudRate = unix.B134
	Baud150    BaudRate = unix.B150
	Baud200    BaudRate = unix.B200
	Baud300    BaudRate = unix.B300
	Baud600    BaudRate = unix.B600
	Baud1200   BaudRate = unix.B1200
	Baud1800   BaudRate = unix.B1800
	Baud2400   BaudRate = unix.B2400
	Baud4800   BaudRate = unix.B4800
	Baud7200   BaudRate = unix.B7200
	Baud9600   BaudRate = unix.B9600
	Baud14400  BaudRate = unix.B14400
	Baud19200  BaudRate = unix.B19200
	Baud28800  BaudRate = unix.B28800
	Baud38400  BaudRate = unix.B38400
	Baud57600  BaudRate = unix.B57600
	Baud76800  BaudRate = unix.B76800
	Baud115200 BaudRate = unix.B115200
	Baud230400 BaudRate = unix.B230400
)

var baudRateNames = map[BaudRate]string{
	Baud0:      "0",
	Baud50:     "50",
	Baud75:     "75",
	Baud110:    "110",
	Baud134:    "134",
	Baud150:    "150",
	Baud200:    "200",
	Baud300:    "300",
	Baud600:    "600",
	Baud1200:   "1200",
	Baud1800:   "1800",
	Baud2400:   "2400",
	Baud4800:   "4800",
	Baud7200:   "7200",
	Baud9600:   "9600",
	Baud14400:  "14400",
	Baud19200:  "19200",
	Baud28800:  "28800",
	Baud38400:  "38400",
	Baud57600:  "57600",
	Baud76800:  "76800",
	Baud115200: "115200",
	Baud230400: "230400",
}
