package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tvdeck/internal/catalog"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// movieDetail shows one carousel entry in full.
type movieDetail struct {
	movie catalog.Movie
	index int
	total int
}

func newMovieDetail(m catalog.Movie, index, total int) movieDetail {
	return movieDetail{movie: m, index: index, total: total}
}

func (d movieDetail) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	if key.Matches(km, keys.Back) || key.Matches(km, keys.Confirm) {
		return nil, nil, true
	}
	// Remote input stays inside the dialog.
	return d, nil, false
}

func (d movieDetail) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	inner := ModalWidth - 6

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(truncate(d.movie.Title, inner)))
	b.WriteString("\n")

	meta := []string{d.movie.Year, d.movie.Genre}
	if d.movie.Rating != "" {
		meta = append(meta, "★ "+d.movie.Rating)
	}
	b.WriteString(styles.MutedText.Render(truncate(strings.Join(nonEmpty(meta), " · "), inner)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", inner)))
	b.WriteString("\n\n")

	for _, line := range wrapText(d.movie.Description, inner, 6) {
		b.WriteString(styles.Text.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	play := styles.Selected.Padding(0, 1).Render("▶ Play")
	pos := styles.FaintText.Render(positionLabel(d.index, d.total))
	b.WriteString(play + "  " + pos)
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter/esc to close"))

	return placeOverlay(theme, width, height, styles.Modal.Width(ModalWidth).Render(b.String()))
}

// renderOffline draws the blocking no-connection notice.
func renderOffline(theme Theme, width, height int) string {
	styles := theme.Styles()
	body := styles.DangerText.Render("No connection") + "\n\n" +
		styles.Text.Render(strings.Join(wrapText(
			"Check the Wi-Fi or network cable of the TV box and try again.",
			ModalWidth-6, 3), "\n"))
	box := styles.Modal.
		BorderForeground(lipgloss.Color(theme.Danger)).
		Width(ModalWidth).
		Align(lipgloss.Center).
		Render(body)
	return placeOverlay(theme, width, height, box)
}

// placeOverlay centers content on a blank screen.
func placeOverlay(theme Theme, width, height int, content string) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

func positionLabel(index, total int) string {
	if total <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", index+1, total)
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
