package serial

import "golang.org/x/sys/unix"

// BaudRate is one of the line speeds this platform supports. The values
// are the kernel speed codes, not literal baud numbers; codes outside
// this set never round-trip through the kernel and are rejected.
type BaudRate uint32

const (
	Baud0       BaudRate = unix.B0
	Baud50      BaudRate = unix.B50
	Baud75      BaudRate = unix.B75
	Baud110     BaudRate = unix.B110
	Baud134     BaudRate = unix.B134
	Baud150     BaudRate = unix.B150
	Baud200     BaudRate = unix.B200
	Baud300     BaudRate = unix.B300
	Baud600     BaudRate = unix.B600
	Baud1200    BaudRate = unix.B1200
	Baud1800    BaudRate = unix.B1800
	Baud2400    BaudRate = unix.B2400
	Baud4800    BaudRate = unix.B4800
	Baud9600    BaudRate = unix.B9600
	Baud19200   BaudRate = unix.B19200
	Baud38400   BaudRate = unix.B38400
	Baud57600   BaudRate = unix.B57600
	Baud115200  BaudRate = unix.B115200
	Baud230400  BaudRate = unix.B230400
	Baud460800  BaudRate = unix.B460800
	Baud500000  BaudRate = unix.B500000
	Baud576000  BaudRate = unix.B576000
	Baud921600  BaudRate = unix.B921600
	Baud1000000 BaudRate = unix.B1000000
	Baud1152000 BaudRate = unix.B1152000
	Baud1500000 BaudRate = unix.B1500000
	Baud2000000 BaudRate = unix.B2000000
	Baud2500000 BaudRate = unix.B2500000
	Baud3000000 BaudRate = unix.B3000000
	Baud3500000 BaudRate = unix.B3500000
	Baud4000000 BaudRate = unix.B4000000
)

var baudRateNames = map[BaudRate]string{
	Baud0:       "0",
	Baud50:      "50",
	Baud75:      "75",
	Baud110:     "110",
	Baud134:     "134",
	Baud150:     "150",
	Baud200:     "200",
	Baud300:     "300",
	Baud600:     "600",
	Baud1200:    "1200",
	Baud1800:    "1800",
	Baud2400:    "2400",
	Baud4800:    "4800",
	Baud9600:    "9600",
	Baud19200:   "19200",
	Baud38400:   "38400",
	Baud57600:   "57600",
	Baud115200:  "115200",
	Baud230400:  "230400",
	Baud460800:  "460800",
	Baud500000:  "500000",
	Baud576000:  "576000",
	Baud921600:  "921600",
	Baud1000000: "1000000",
	Baud1152000: "1152000",
	Baud1500000: "1500000",
	Baud2000000: "2000000",
	Baud2500000: "2500000",
	Baud3000000: "3000000",
	Baud3500000: "3500000",
	Baud4000000: "4000000",
}
