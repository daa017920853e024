package tui

import (
	"fmt"
	"strings"
	"time"
)

// DataMsg carries one chunk of port traffic into the model.
type DataMsg struct {
	Timestamp time.Time
	Data      []byte
	IsTX      bool
}

// StatusMsg reports a change in the port connection.
type StatusMsg struct {
	Connected bool
	Err       error
}

// Formatter renders traffic lines for the viewport.
type Formatter struct {
	ShowHex        bool
	ShowASCII      bool
	ShowTimestamps bool
}

func NewFormatter() Formatter {
	return Formatter{ShowHex: false, ShowASCII: true, ShowTimestamps: true}
}

func (f Formatter) Line(msg DataMsg) string {
	var indicator string
	if msg.IsTX {
		indicator = txStyle.Render("↗ TX")
	} else {
		indicator = rxStyle.Render("↙ RX")
	}

	var parts []string

	if f.ShowHex {
		parts = append(parts, fmt.Sprintf("HEX: % X", msg.Data))
	}

	if f.ShowASCII {
		var b strings.Builder
		for _, c := range msg.Data {
			if c >= 32 && c <= 126 {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		parts = append(parts, b.String())
	}

	if !f.ShowHex && !f.ShowASCII {
		parts = append(parts, fmt.Sprintf("BYTES: %d", len(msg.Data)))
	}

	line := fmt.Sprintf("%s %s", indicator, strings.Join(parts, "  "))
	if f.ShowTimestamps {
		stamp := timestampStyle.Render(fmt.Sprintf("[%s]", msg.Timestamp.Format("15:04:05.000")))
		line = stamp + " " + line
	}
	return line
}

func (f Formatter) Lines(msgs []DataMsg) []string {
	out := make([]string, len(msgs))
	for i, msg := range msgs {
		out[i] = f.Line(msg)
	}
	return out
}
