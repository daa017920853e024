package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	serial "github.com/ttylab/go-serial"
)

// inputMode is the vim-like mode of the session: normal keys drive the
// view, insert keys go to the send line.
type inputMode int

const (
	modeNormal inputMode = iota
	modeInsert
)

func (m inputMode) String() string {
	if m == modeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

// Session is the interactive terminal for a single open port.
type Session struct {
	port  *serial.Port
	path  string
	label string

	viewport  viewport.Model
	input     textinput.Model
	help      help.Model
	keys      KeyMap
	formatter Formatter

	msgs      []DataMsg
	mode      inputMode
	connected bool
	err       error
	ready     bool
	appendNL  bool
}

func NewSession(port *serial.Port, path, label string, appendNL bool) *Session {
	input := textinput.New()
	input.Placeholder = "type and press enter to send"
	input.Prompt = "> "

	return &Session{
		port:      port,
		path:      path,
		label:     label,
		input:     input,
		help:      help.New(),
		keys:      DefaultKeyMap(),
		formatter: NewFormatter(),
		connected: true,
		appendNL:  appendNL,
	}
}

// Run drives the session until the user quits, feeding incoming port
// data into the program from a background reader.
func Run(port *serial.Port, path, label string, appendNL bool) error {
	session := NewSession(port, path, label, appendNL)
	p := tea.NewProgram(session, tea.WithAltScreen())

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := port.Read(buf)
			if err != nil {
				p.Send(StatusMsg{Connected: false, Err: err})
				return
			}
			if n > 0 {
				data := make([]byte, n)
				copy(data, buf[:n])
				p.Send(DataMsg{Timestamp: time.Now(), Data: data})
			}
		}
	}()

	_, err := p.Run()
	port.Close()
	return err
}

func (s *Session) Init() tea.Cmd {
	return nil
}

func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - 4
		if height < 1 {
			height = 1
		}
		if !s.ready {
			s.viewport = viewport.New(msg.Width-2, height)
			s.ready = true
		} else {
			s.viewport.Width = msg.Width - 2
			s.viewport.Height = height
		}
		s.input.Width = msg.Width - 6
		s.refresh()

	case StatusMsg:
		s.connected = msg.Connected
		if msg.Err != nil {
			s.err = msg.Err
		}

	case DataMsg:
		s.msgs = append(s.msgs, msg)
		s.refresh()

	case tea.KeyMsg:
		if s.mode == modeInsert {
			switch {
			case key.Matches(msg, s.keys.Escape):
				s.mode = modeNormal
				s.input.Blur()
			case key.Matches(msg, s.keys.Send):
				line := s.input.Value()
				s.input.Reset()
				if line != "" && s.connected {
					cmds = append(cmds, s.send(line))
				}
			default:
				var cmd tea.Cmd
				s.input, cmd = s.input.Update(msg)
				cmds = append(cmds, cmd)
			}
			return s, tea.Batch(cmds...)
		}

		switch {
		case key.Matches(msg, s.keys.Quit):
			return s, tea.Quit

		case key.Matches(msg, s.keys.InsertMode):
			s.mode = modeInsert
			cmds = append(cmds, s.input.Focus())

		case key.Matches(msg, s.keys.Clear):
			s.msgs = nil
			s.refresh()

		case key.Matches(msg, s.keys.Help):
			s.help.ShowAll = !s.help.ShowAll

		case key.Matches(msg, s.keys.ToggleHex):
			s.formatter.ShowHex = !s.formatter.ShowHex
			s.refresh()

		case key.Matches(msg, s.keys.ToggleASCII):
			s.formatter.ShowASCII = !s.formatter.ShowASCII
			s.refresh()

		case key.Matches(msg, s.keys.ToggleTimestamps):
			s.formatter.ShowTimestamps = !s.formatter.ShowTimestamps
			s.refresh()
		}
	}

	if s.ready {
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return s, tea.Batch(cmds...)
}

// send writes one line to the port off the update loop.
func (s *Session) send(line string) tea.Cmd {
	data := []byte(line)
	if s.appendNL {
		data = append(data, '\n')
	}
	return func() tea.Msg {
		if _, err := s.port.Write(data); err != nil {
			return StatusMsg{Connected: false, Err: err}
		}
		return DataMsg{Timestamp: time.Now(), Data: data, IsTX: true}
	}
}

func (s *Session) refresh() {
	if !s.ready {
		return
	}
	s.viewport.SetContent(strings.Join(s.formatter.Lines(s.msgs), "\n"))
	s.viewport.GotoBottom()
}

func (s *Session) View() string {
	if !s.ready {
		return "Initializing..."
	}

	content := contentBorderStyle.Render(s.viewport.View())

	var middle string
	if s.mode == modeInsert {
		middle = s.input.View()
	} else if s.help.ShowAll {
		middle = helpBoxStyle.Render(s.help.View(s.keys))
	} else {
		middle = s.help.View(s.keys)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		middle,
		s.statusBar(),
	)
}

func (s *Session) statusBar() string {
	state := connectedStyle.Render("CONNECTED")
	if !s.connected {
		state = disconnectedStyle.Render("DISCONNECTED")
	}

	status := fmt.Sprintf("%s  %s  %s  %s",
		s.path, s.label, state, time.Now().Format("15:04:05"))
	if s.err != nil {
		status += "  " + disconnectedStyle.Render(s.err.Error())
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		modeStyle.Render(s.mode.String()),
		statusBarStyle.Render(status),
	)
}
