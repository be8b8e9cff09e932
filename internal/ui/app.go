package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/five82/tvdeck/internal/bridge"
	"github.com/five82/tvdeck/internal/catalog"
	"github.com/five82/tvdeck/internal/config"
	"github.com/five82/tvdeck/internal/focus"
	"github.com/five82/tvdeck/internal/input"
	"github.com/five82/tvdeck/internal/prefs"
	"github.com/five82/tvdeck/internal/scroll"
	"github.com/five82/tvdeck/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    config.Config
	Launcher  bridge.Launcher // nil disables app launching
	Logger    logrus.FieldLogger
	Prefs     prefs.Prefs
	PrefsPath string
}

// Model is the main Bubble Tea model.
type Model struct {
	ctx       context.Context
	store     *state.Store
	cfg       config.Config
	launcher  bridge.Launcher
	log       logrus.FieldLogger
	prefsPath string

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	// Focus and scrolling
	nav      *focus.Controller
	input    *input.Adapter
	sub      *input.Subscription
	anim     *scroll.Animator
	ring     *focusRing
	sync     scroll.Sync
	viewport viewport.Model
	spinner  spinner.Model

	// Data
	snapshot       state.Snapshot
	catalogVersion uint64
	now            time.Time

	heroMuted   bool
	selectedNav int
	showHelp    bool
	modal       Modal
	toast       toast

	carouselGen   uint64
	carouselArmed bool
}

// New creates a new UI model seeded from the current store snapshot.
func New(opts Options) (Model, error) {
	if opts.Store == nil {
		return Model{}, errors.New("ui: store is required")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	snap := opts.Store.Snapshot()
	cat := snap.Catalog
	nav, err := focus.NewController(focus.Layout{
		NavItems:     len(cat.Nav),
		PrimaryItems: len(cat.Movies),
		AppItems:     len(cat.Apps),
		AppColumns:   opts.Config.Layout.Columns,
	})
	if err != nil {
		return Model{}, fmt.Errorf("init focus: %w", err)
	}

	keys := DefaultKeyMap()
	adapter := input.NewAdapter(keys.KeyMap)
	sub := adapter.Subscribe(nav)

	anim := scroll.NewAnimator(0)
	ring := &focusRing{}
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		cfg:       opts.Config,
		launcher:  opts.Launcher,
		log:       log,
		prefsPath: opts.PrefsPath,

		theme: GetTheme(opts.Prefs.Theme),
		keys:  keys,
		help:  help.New(),

		nav:   nav,
		input: adapter,
		sub:   sub,
		anim:  anim,
		ring:  ring,
		sync: scroll.Sync{
			Geometry: scroll.Geometry{
				HeroHeight: opts.Config.Layout.HeroHeight,
				RowHeight:  opts.Config.Layout.RowHeight,
				LookAhead:  opts.Config.Layout.LookAhead,
			},
			Scroller: anim,
			Focuser:  ring,
		},
		viewport: viewport.New(0, 0),
		spinner:  sp,

		snapshot:       snap,
		catalogVersion: snap.CatalogVersion,
		now:            time.Now(),
		heroMuted:      opts.Prefs.HeroMuted,
	}
	m.applyTheme()
	m.sync.Apply(nav.State())
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		fetchSnapshotCmd(m.store),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.fitGrid()
		m.refreshContent()
		return m, m.applyScroll()

	case tickMsg:
		m.now = time.Time(msg)
		return m, tea.Batch(tickCmd(), fetchSnapshotCmd(m.store))

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, tea.Batch(m.applyScroll(), m.syncCarousel())

	case carouselMsg:
		return m.handleCarousel(msg)

	case frameMsg:
		if msg.gen != m.anim.Gen() {
			// Superseded by a newer scroll request.
			return m, nil
		}
		more := m.anim.Step()
		m.viewport.SetYOffset(m.anim.Offset())
		if more {
			return m, frameCmd(msg.gen)
		}
		return m, nil

	case launchMsg:
		return m, m.launchResult(msg)

	case toastExpiredMsg:
		if msg.id == m.toast.id {
			m.toast = toast{id: m.toast.id}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.snapshot.IsOffline() {
		return renderOffline(m.theme, m.width, m.height)
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderRail(), m.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		next, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			next = nil
		}
		m.modal = next
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.savePrefs()
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.ToggleMute):
		m.heroMuted = !m.heroMuted
		m.savePrefs()
		m.refreshContent()
		return m, nil
	}

	ev, consumed := m.input.Dispatch(msg)
	if !consumed {
		return m, nil
	}
	return m.afterFocus(ev)
}

// afterFocus reacts to a focus event from the keyboard or pointer.
func (m Model) afterFocus(ev focus.Event) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch ev.Kind {
	case focus.EventConfirmed:
		cmds = append(cmds, m.activate(ev.Selection()))
	case focus.EventMoved, focus.EventSwitched:
		m.log.WithFields(logrus.Fields{
			"event":   ev.Kind.String(),
			"section": ev.Section.String(),
			"index":   ev.Index,
		}).Debug("focus changed")
	}
	m.refreshContent()
	cmds = append(cmds, m.applyScroll(), m.syncCarousel())
	return m, tea.Batch(cmds...)
}

// activate performs the select action for the focused item.
func (m *Model) activate(sel focus.Selection) tea.Cmd {
	cat := m.snapshot.Catalog
	switch sel.Section {
	case focus.NavRail:
		entry, ok := cat.NavEntry(sel.Index)
		if !ok {
			return nil
		}
		m.selectedNav = sel.Index
		m.log.WithField("nav", entry.Name).Info("nav entry selected")
		return nil

	case focus.PrimaryContent:
		movie, ok := cat.Movie(sel.Index)
		if !ok {
			return nil
		}
		m.modal = newMovieDetail(movie, sel.Index, len(cat.Movies))
		return nil

	case focus.AppGrid:
		app, ok := cat.App(sel.Index)
		if !ok {
			return nil
		}
		return tea.Batch(
			m.showToast(toastInfo, "Opening "+app.Name+"…"),
			launchCmd(m.ctx, m.launcher, app, m.log),
		)
	}
	return nil
}

func (m *Model) launchResult(msg launchMsg) tea.Cmd {
	name := msg.app.Name
	switch msg.outcome {
	case bridge.Launched:
		return m.showToast(toastSuccess, "Opened "+name)
	case bridge.NoBridge:
		return m.showToast(toastWarn, name+": no launch bridge available")
	case bridge.NoPackage:
		return m.showToast(toastWarn, name+" cannot be opened on this device")
	default:
		return m.showToast(toastError, "Could not open "+name)
	}
}

// applySnapshot stores a fresh snapshot, resizing focus sections when the
// catalog changed.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if snap.CatalogVersion != m.catalogVersion {
		m.catalogVersion = snap.CatalogVersion
		m.resizeSections(snap.Catalog)
	}
	m.refreshContent()
}

func (m *Model) resizeSections(cat catalog.Catalog) {
	counts := []struct {
		section focus.Section
		n       int
	}{
		{focus.NavRail, len(cat.Nav)},
		{focus.PrimaryContent, len(cat.Movies)},
		{focus.AppGrid, len(cat.Apps)},
	}
	for _, c := range counts {
		if err := m.nav.SetItemCount(c.section, c.n); err != nil {
			m.log.WithError(err).Warn("catalog section skipped")
		}
	}
	if m.selectedNav >= len(cat.Nav) {
		m.selectedNav = 0
	}
}

// fitGrid reflows the app grid to as many configured columns as fit the
// window at the minimum card width.
func (m *Model) fitGrid() {
	cols := fitColumns(m.width, m.cfg.Layout.Columns)
	if cols == m.columns() {
		return
	}
	if err := m.nav.SetColumns(cols); err != nil {
		m.log.WithError(err).Warn("app grid reflow skipped")
		return
	}
	m.log.WithField("columns", cols).Debug("app grid reflowed")
}

// applyScroll mirrors focus into the scroll animator and starts a frame
// loop when a new target was requested.
func (m *Model) applyScroll() tea.Cmd {
	if _, requested := m.sync.Apply(m.nav.State()); !requested {
		return nil
	}
	return frameCmd(m.anim.Gen())
}

// refreshContent re-renders the scrollable body into the viewport.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	bodyHeight := m.bodyHeight()
	m.viewport.Width = m.mainWidth()
	m.viewport.Height = bodyHeight

	lines := m.renderContent()
	m.viewport.SetContent(lines)
	m.anim.SetLimit(m.contentHeight() - bodyHeight)
	m.viewport.SetYOffset(m.anim.Offset())
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.spinner.Style = styles.InfoText
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, HeroMuted: m.heroMuted}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.WithError(err).Warn("save preferences failed")
	}
}

// focusRing records which rendered item holds input focus. The footer
// announces it.
type focusRing struct {
	sel focus.Selection
}

// FocusItem implements scroll.Focuser.
func (r *focusRing) FocusItem(sel focus.Selection) {
	r.sel = sel
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type carouselMsg struct{ gen uint64 }

type frameMsg struct{ gen uint64 }

type launchMsg struct {
	app     catalog.App
	outcome bridge.Outcome
}

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(ClockInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return nil
		}
		return snapshotMsg(store.Snapshot())
	}
}

func frameCmd(gen uint64) tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func launchCmd(ctx context.Context, l bridge.Launcher, app catalog.App, log logrus.FieldLogger) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, LaunchTimeout)
		defer cancel()
		return launchMsg{app: app, outcome: bridge.Activate(ctx, l, app, log)}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.sub.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(m.ctx),
	)
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
