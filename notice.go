package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-activity/logging"
)

type clearNoticeMsg struct{ id int }

const (
	noticeDuration     = 2 * time.Second
	noticeLongDuration = 5 * time.Second
)

var noticeIcons = map[string]string{
	"info":    "ℹ",
	"success": "✓",
	"warn":    "!",
	"error":   "×",
}

func noticeText(msg, kind string) string {
	if msg == "" {
		return ""
	}
	if icon := noticeIcons[kind]; icon != "" {
		return icon + " " + msg
	}
	return msg
}

// startNotice shows msg in the status line until d elapses or a newer notice
// replaces it.
func (m *model) startNotice(msg, msgType string, d time.Duration) tea.Cmd {
	if msgType == "error" {
		logging.Warnf("notice: %s", msg)
	}
	m.ui.noticeMsg = msg
	m.ui.noticeType = msgType

	// bump sequence to invalidate older timers
	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

func (m *model) clearNotice(id int) {
	if id != m.ui.noticeSeq {
		return
	}
	m.ui.noticeMsg = ""
	m.ui.noticeType = ""
}
