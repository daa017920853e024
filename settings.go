package serial

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/ttylab/go-serial/internal/termios"
)

// Settings is a decoded snapshot of every line parameter, taken from the
// live kernel state in a single fetch.
type Settings struct {
	InputBaud   BaudRate
	OutputBaud  BaudRate
	DataBits    DataBits
	StopBits    StopBits
	Parity      Parity
	FlowControl FlowControl
	Blocking    BlockingMode
}

// Settings fetches and decodes the full line configuration at once.
func (p *Port) Settings() (Settings, error) {
	tio, err := p.fetch()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		InputBaud:   decodeBaudRate(termios.InputSpeed(tio)),
		OutputBaud:  decodeBaudRate(termios.OutputSpeed(tio)),
		DataBits:    decodeDataBits(tio),
		StopBits:    decodeStopBits(tio),
		Parity:      decodeParity(tio),
		FlowControl: decodeFlowControl(tio),
		Blocking: BlockingMode{
			Bytes:       tio.Cc[unix.VMIN],
			Deciseconds: tio.Cc[unix.VTIME],
		},
	}, nil
}

// String renders the conventional short form, e.g. "115200 8N1".
func (s Settings) String() string {
	return fmt.Sprintf("%s %d%s%d", s.OutputBaud, int(s.DataBits), s.Parity, int(s.StopBits))
}
