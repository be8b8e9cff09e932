package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastSuccess
	toastWarn
	toastError
)

// toast is a short notice shown in the footer. Each new toast gets a fresh
// id so only its own expiry clears it.
type toast struct {
	text  string
	level toastLevel
	id    int
}

type toastExpiredMsg struct{ id int }

func (m *Model) showToast(level toastLevel, text string) tea.Cmd {
	id := m.toast.id + 1
	m.toast = toast{text: text, level: level, id: id}
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (t toast) style(styles Styles) lipgloss.Style {
	switch t.level {
	case toastSuccess:
		return styles.SuccessText
	case toastWarn:
		return styles.WarningText
	case toastError:
		return styles.DangerText
	default:
		return styles.InfoText
	}
}
