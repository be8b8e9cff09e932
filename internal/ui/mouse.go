package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tvdeck/internal/focus"
)

// hit is the result of pointer hit-testing. index is -1 when the pointer is
// over a section but not over one of its items.
type hit struct {
	section focus.Section
	index   int
	ok      bool
}

// hitTest maps a screen cell to the section and item drawn there.
func (m Model) hitTest(x, y int) hit {
	row := y - HeaderHeight
	if x < 0 || x >= m.width || row < 0 || row >= m.bodyHeight() {
		return hit{index: -1}
	}

	railW := m.railWidth()
	if x < railW {
		h := hit{section: focus.NavRail, index: -1, ok: true}
		rel := row - RailTopPadding
		if rel >= 0 && rel%RailItemHeight == 0 {
			if i := rel / RailItemHeight; i < len(m.snapshot.Catalog.Nav) {
				h.index = i
			}
		}
		return h
	}

	cy := row + m.viewport.YOffset
	cx := x - railW - ContentPadding
	hero := m.cfg.Layout.HeroHeight

	if cy < hero {
		h := hit{section: focus.PrimaryContent, index: -1, ok: true}
		if cy == m.thumbLine() && cx >= 0 {
			start, count := m.visibleThumbs()
			slot := ThumbWidth + ThumbGap
			if cx%slot < ThumbWidth && cx/slot < count {
				h.index = start + cx/slot
			}
		}
		return h
	}

	h := hit{section: focus.AppGrid, index: -1, ok: true}
	rowH := max(1, m.cfg.Layout.RowHeight)
	r, line := (cy-hero)/rowH, (cy-hero)%rowH
	if line >= m.cardHeight() || cx < 0 {
		return h
	}
	cardW := m.cardWidth()
	slot := cardW + CardGap
	col := cx / slot
	if cx%slot >= cardW || col >= m.columns() {
		return h
	}
	if i := r*m.columns() + col; i < len(m.snapshot.Catalog.Apps) {
		h.index = i
	}
	return h
}

// handleMouse feeds pointer hover into the controller and turns left clicks
// into Point plus select. Thumbnails are only focused on click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready || m.showHelp || m.modal != nil || m.snapshot.IsOffline() {
		return m, nil
	}

	h := m.hitTest(msg.X, msg.Y)
	m.nav.SetHover(focus.NavRail, h.ok && h.section == focus.NavRail)
	m.nav.SetHover(focus.PrimaryContent, h.ok && h.section == focus.PrimaryContent)

	var cmds []tea.Cmd
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && h.ok && h.index >= 0 {
		if ev, ok := m.nav.Point(h.section, h.index); ok {
			var cmd tea.Cmd
			m, cmd = m.afterFocus(ev)
			cmds = append(cmds, cmd)
			if h.section != focus.PrimaryContent {
				cmds = append(cmds, m.activate(ev.Selection()))
			}
		}
	}

	m.refreshContent()
	cmds = append(cmds, m.syncCarousel())
	return m, tea.Batch(cmds...)
}
