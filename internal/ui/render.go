package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tvdeck/internal/catalog"
	"github.com/five82/tvdeck/internal/focus"
	"github.com/five82/tvdeck/internal/suggest"
)

// Geometry shared by rendering and pointer hit-testing.

func (m Model) railWidth() int {
	if m.nav.Expanded() {
		return RailExpandedWidth
	}
	return RailCollapsedWidth
}

func (m Model) mainWidth() int {
	return max(0, m.width-m.railWidth())
}

func (m Model) bodyHeight() int {
	return max(0, m.height-HeaderHeight-FooterHeight)
}

func (m Model) innerWidth() int {
	return max(0, m.mainWidth()-2*ContentPadding)
}

func (m Model) columns() int {
	return max(1, m.nav.State().Section(focus.AppGrid).Columns)
}

// fitColumns measures against the collapsed rail so hovering the rail does
// not reflow the grid.
func fitColumns(width, configured int) int {
	inner := width - RailCollapsedWidth - 2*ContentPadding
	fit := (inner + CardGap) / (MinCardWidth + CardGap)
	return max(1, min(configured, fit))
}

func (m Model) gridRows() int {
	n := len(m.snapshot.Catalog.Apps)
	cols := m.columns()
	return (n + cols - 1) / cols
}

func (m Model) contentHeight() int {
	return m.cfg.Layout.HeroHeight + m.gridRows()*m.cfg.Layout.RowHeight
}

func (m Model) cardWidth() int {
	cols := m.columns()
	w := (m.innerWidth() - (cols-1)*CardGap) / cols
	return max(MinCardWidth, w)
}

// cardHeight leaves one spacer row under each card when the row has room.
func (m Model) cardHeight() int {
	return max(1, m.cfg.Layout.RowHeight-1)
}

// thumbLine is the content row holding the carousel thumbnails.
func (m Model) thumbLine() int {
	h := m.cfg.Layout.HeroHeight
	return h - min(heroFooterLines, h)
}

// visibleThumbs returns the first thumbnail drawn and how many fit, keeping
// the active movie in view.
func (m Model) visibleThumbs() (start, count int) {
	n := len(m.snapshot.Catalog.Movies)
	fit := max(1, (m.innerWidth()+ThumbGap)/(ThumbWidth+ThumbGap))
	if n <= fit {
		return 0, n
	}
	active := m.nav.Index(focus.PrimaryContent)
	start = min(max(0, active-fit/2), n-fit)
	return start, fit
}

// Header

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Spaces(1) + bg.Render("tvdeck", styles.Logo)
	if entry, ok := m.snapshot.Catalog.NavEntry(m.selectedNav); ok {
		left += bg.Render(" › ", styles.FaintText) + bg.Render(entry.Name, styles.Text.Bold(true))
	}

	right := m.renderWeatherChip(bg, styles) +
		bg.Spaces(3) +
		bg.Render(m.now.Format("Mon 2 Jan 15:04"), styles.MutedText) +
		bg.Spaces(1)

	return bg.Spread(left, right, m.width)
}

func (m Model) renderWeatherChip(bg BgStyle, styles Styles) string {
	snap := m.snapshot
	switch {
	case snap.HasWeather:
		w := snap.Weather
		chip := bg.Render(weatherGlyph(w.Condition)+" "+fmt.Sprintf("%d°C", w.Temperature), styles.WeatherStyle(string(w.Condition)))
		chip += bg.Render(" "+w.Description, styles.MutedText)
		if snap.Suggestion.Title != "" {
			chip += bg.Render(" · Tonight: ", styles.FaintText) + bg.Render(snap.Suggestion.Title, styles.AccentText)
		}
		return chip
	case snap.WeatherLoading:
		return bg.Render(m.spinner.View(), styles.InfoText) + bg.Render(" weather", styles.FaintText)
	case snap.WeatherError != nil:
		return bg.Render("weather unavailable", styles.FaintText)
	default:
		return ""
	}
}

func weatherGlyph(c suggest.Condition) string {
	switch c {
	case suggest.Sunny:
		return "☀"
	case suggest.Cloudy:
		return "☁"
	case suggest.Rainy:
		return "☂"
	case suggest.Snowy:
		return "❄"
	case suggest.Windy:
		return "≋"
	default:
		return "·"
	}
}

// Nav rail

func (m Model) renderRail() string {
	styles := m.theme.Styles()
	width := m.railWidth()
	expanded := m.nav.Expanded()
	railFocused := m.nav.Active() == focus.NavRail
	focusedIdx := m.nav.Index(focus.NavRail)

	lines := make([]string, 0, m.bodyHeight())
	for i := 0; i < RailTopPadding; i++ {
		lines = append(lines, "")
	}
	for i, item := range m.snapshot.Catalog.Nav {
		marker := " "
		if i == m.selectedNav {
			marker = "▌"
		}
		label := center(item.Glyph, width-1)
		if expanded {
			label = padRight(" "+item.Glyph+"  "+truncate(item.Name, width-6), width-1)
		}

		style := styles.MutedText
		switch {
		case railFocused && i == focusedIdx:
			style = styles.Selected
		case i == m.selectedNav:
			style = styles.AccentText.Bold(true)
		}
		lines = append(lines, styles.AccentText.Render(marker)+style.Render(label))
		for j := 1; j < RailItemHeight; j++ {
			lines = append(lines, "")
		}
	}

	return styles.Rail.
		Width(width).
		MaxWidth(width).
		Render(strings.Join(fitLines(strings.Join(lines, "\n"), m.bodyHeight()), "\n"))
}

// Scrollable content

// renderContent draws the hero block followed by the app grid. The result
// is exactly contentHeight lines.
func (m Model) renderContent() string {
	pad := strings.Repeat(" ", ContentPadding)
	lines := m.renderHero()
	for r := 0; r < m.gridRows(); r++ {
		lines = append(lines, m.renderGridRow(r)...)
	}
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHero() []string {
	h := m.cfg.Layout.HeroHeight
	tail := min(heroFooterLines, h)
	top := fitLines(strings.Join(m.heroTop(), "\n"), h-tail)
	return append(top, m.heroBottom()[:tail]...)
}

func (m Model) heroTop() []string {
	styles := m.theme.Styles()
	width := m.innerWidth()
	cat := m.snapshot.Catalog
	focused := m.nav.Active() == focus.PrimaryContent

	f := cat.Featured
	banner := styles.AccentText.Bold(true).Render(strings.ToUpper(truncate(f.Subtitle, 20))) + " " +
		styles.Text.Bold(true).Render(truncate(f.Title, max(1, width/2))) + " " +
		styles.FaintText.Render(strings.Join(nonEmpty([]string{f.Year, f.Rating, f.Duration}), " · "))
	sound := styles.MutedText.Render(ternary(m.heroMuted, "♪ muted", "♪ sound on"))
	bannerLine := banner
	if gap := width - lipgloss.Width(banner) - lipgloss.Width(sound); gap > 0 {
		bannerLine = banner + strings.Repeat(" ", gap) + sound
	}

	idx := m.nav.Index(focus.PrimaryContent)
	movie, _ := cat.Movie(idx)

	titleStyle := styles.Text.Bold(true)
	if focused {
		titleStyle = styles.AccentText.Bold(true)
	}
	meta := []string{movie.Year, movie.Genre}
	if movie.Rating != "" {
		meta = append(meta, "★ "+movie.Rating)
	}

	lines := []string{
		bannerLine,
		"",
		styles.FaintText.Render("NOW SHOWING  " + positionLabel(idx, len(cat.Movies))),
		titleStyle.Render(truncate(movie.Title, width)),
		styles.MutedText.Render(truncate(strings.Join(nonEmpty(meta), " · "), width)),
	}
	desc := fitLines(strings.Join(wrapText(movie.Description, width, 3), "\n"), 3)
	for _, d := range desc {
		lines = append(lines, styles.Text.Render(d))
	}

	play := styles.SurfaceAlt.Padding(0, 1).Render("▶ Play")
	details := styles.SurfaceAlt.Padding(0, 1).Render("ⓘ Details")
	if focused {
		play = styles.Selected.Padding(0, 1).Render("▶ Play")
	}
	lines = append(lines, "", play+"  "+details)
	return lines
}

func (m Model) heroBottom() []string {
	styles := m.theme.Styles()
	cat := m.snapshot.Catalog
	active := m.nav.Index(focus.PrimaryContent)
	focused := m.nav.Active() == focus.PrimaryContent

	start, count := m.visibleThumbs()
	chips := make([]string, 0, count)
	for i := start; i < start+count; i++ {
		style := styles.SurfaceAlt.Foreground(lipgloss.Color(m.theme.Muted))
		switch {
		case i == active && focused:
			style = styles.Selected
		case i == active:
			style = styles.SurfaceAlt.Bold(true)
		}
		chips = append(chips, style.Render(center(cat.Movies[i].Title, ThumbWidth)))
	}

	dots := make([]string, len(cat.Movies))
	for i := range cat.Movies {
		dots[i] = styles.FaintText.Render("○")
		if i == active {
			dots[i] = styles.AccentText.Render("●")
		}
	}

	heading := styles.Text.Bold(true).Render("Apps") +
		styles.FaintText.Render(fmt.Sprintf("  %d", len(cat.Apps)))

	return []string{
		strings.Join(chips, strings.Repeat(" ", ThumbGap)),
		strings.Join(dots, " "),
		"",
		heading,
	}
}

// renderGridRow returns exactly RowHeight lines for grid row r.
func (m Model) renderGridRow(r int) []string {
	cols := m.columns()
	apps := m.snapshot.Catalog.Apps
	gridFocused := m.nav.Active() == focus.AppGrid
	focusedIdx := m.nav.Index(focus.AppGrid)
	gap := strings.Repeat(" ", CardGap)

	var parts []string
	for c := 0; c < cols; c++ {
		i := r*cols + c
		if i >= len(apps) {
			break
		}
		if c > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, m.renderCard(apps[i], gridFocused && i == focusedIdx))
	}
	return fitLines(lipgloss.JoinHorizontal(lipgloss.Top, parts...), m.cfg.Layout.RowHeight)
}

func (m Model) renderCard(app catalog.App, focused bool) string {
	styles := m.theme.Styles()
	width := m.cardWidth()
	height := m.cardHeight()

	accent := lipgloss.Color(m.theme.Border)
	if app.Color != "" {
		accent = lipgloss.Color(app.Color)
	}
	nameStyle := styles.Text
	if !app.Launchable() {
		nameStyle = styles.MutedText
	}

	// Too short for a border: a single highlighted line.
	if height < 3 {
		style := styles.SurfaceAlt.Width(width).MaxWidth(width)
		if focused {
			style = styles.Selected.Width(width).MaxWidth(width)
		}
		return style.Render(truncate(app.Glyph+" "+app.Name, width))
	}

	inner := height - 2
	content := nameStyle.Render(truncate(app.Name, width-4))
	if inner >= 2 {
		glyph := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(app.Glyph)
		content = glyph + "\n" + content
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(width-2).
		Height(inner).
		Align(lipgloss.Center, lipgloss.Center)
	if focused {
		style = style.
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
			Background(lipgloss.Color(m.theme.FocusBg)).
			Bold(true)
	}
	return style.Render(content)
}

// Footer

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var left string
	if m.toast.text != "" {
		left = bg.Render(m.toast.text, m.toast.style(styles))
	} else {
		left = bg.Render(m.announce(), styles.MutedText)
	}
	right := m.help.View(m.keys)
	return bg.Spread(bg.Spaces(1)+left, right+bg.Spaces(1), m.width)
}

// announce describes the item holding input focus.
func (m Model) announce() string {
	cat := m.snapshot.Catalog
	sel := m.ring.sel
	switch sel.Section {
	case focus.NavRail:
		if entry, ok := cat.NavEntry(sel.Index); ok {
			return "Menu › " + entry.Name
		}
	case focus.PrimaryContent:
		if movie, ok := cat.Movie(sel.Index); ok {
			return "Featured › " + movie.Title
		}
	case focus.AppGrid:
		if app, ok := cat.App(sel.Index); ok {
			return "Apps › " + app.Name + ternary(app.Launchable(), "", " (not installed)")
		}
	}
	return ""
}
