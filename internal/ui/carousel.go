package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// syncCarousel arms or disarms the auto-advance timer to match the
// controller's pause state. At most one timer is live; disarming bumps the
// generation so an in-flight tick is ignored.
func (m *Model) syncCarousel() tea.Cmd {
	if m.nav.AutoAdvancePaused() {
		if m.carouselArmed {
			m.carouselArmed = false
			m.carouselGen++
		}
		return nil
	}
	if m.carouselArmed {
		return nil
	}
	m.carouselArmed = true
	m.carouselGen++
	gen := m.carouselGen
	return tea.Tick(m.cfg.Carousel.Interval, func(time.Time) tea.Msg {
		return carouselMsg{gen: gen}
	})
}

func (m Model) handleCarousel(msg carouselMsg) (tea.Model, tea.Cmd) {
	if !m.carouselArmed || msg.gen != m.carouselGen {
		return m, nil
	}
	m.carouselArmed = false
	if m.nav.AutoAdvance() {
		m.refreshContent()
	}
	return m, m.syncCarousel()
}
