package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-activity/logging"
)

// runCommand executes the buffered ":" command. A bare number is a goto.
func (m *model) runCommand() tea.Cmd {
	fields := strings.Fields(m.ui.command.buf)
	if len(fields) == 0 {
		return nil
	}
	logging.Debugf("runCommand %q", m.ui.command.buf)

	if h, err := strconv.ParseFloat(fields[0], 64); err == nil && len(fields) == 1 {
		return m.gotoHour(h)
	}

	switch strings.ToLower(fields[0]) {
	case "zoom", "z":
		if len(fields) != 3 {
			return m.startNotice("usage: zoom A B", "warn", noticeDuration)
		}
		a, errA := strconv.ParseFloat(fields[1], 64)
		b, errB := strconv.ParseFloat(fields[2], 64)
		if errA != nil || errB != nil {
			return m.startNotice("zoom: hours must be numbers", "warn", noticeDuration)
		}
		if !m.data.ctrl.Zoom(a, b) {
			return m.startNotice(fmt.Sprintf("zoom %s %s is empty", fields[1], fields[2]), "warn", noticeDuration)
		}
		return nil
	case "goto", "g":
		if len(fields) != 2 {
			return m.startNotice("usage: goto H", "warn", noticeDuration)
		}
		h, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return m.startNotice("goto: hour must be a number", "warn", noticeDuration)
		}
		return m.gotoHour(h)
	case "reset":
		m.data.ctrl.Reset()
		return nil
	}
	return m.startNotice(fmt.Sprintf("unknown command %q", fields[0]), "warn", noticeDuration)
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	}

	// editing
	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.ui.command.buf) > 0 {
			m.ui.command.buf = m.ui.command.buf[:len(m.ui.command.buf)-1]
		}
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	}

	// append printable rune
	if len(msg.Runes) == 1 {
		m.ui.command.buf += string(msg.Runes[0])
	}
	return m, nil
}
