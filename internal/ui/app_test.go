package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/five82/tvdeck/internal/bridge"
	"github.com/five82/tvdeck/internal/catalog"
	"github.com/five82/tvdeck/internal/config"
	"github.com/five82/tvdeck/internal/focus"
	"github.com/five82/tvdeck/internal/prefs"
	"github.com/five82/tvdeck/internal/state"
	"github.com/five82/tvdeck/internal/suggest"
)

type fakeLauncher struct {
	mu     sync.Mutex
	opened []string
	err    error
}

func (f *fakeLauncher) OpenApp(_ context.Context, pkg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened = append(f.opened, pkg)
	return f.err
}

type fixture struct {
	model     Model
	store     *state.Store
	launcher  *fakeLauncher
	prefsPath string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := &state.Store{}
	store.SetCatalog(catalog.Default())
	launcher := &fakeLauncher{}
	logger, _ := test.NewNullLogger()
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")

	m, err := New(Options{
		Store:     store,
		Config:    config.Default(),
		Launcher:  launcher,
		Logger:    logger,
		Prefs:     prefs.Default(),
		PrefsPath: prefsPath,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	f := &fixture{model: m, store: store, launcher: launcher, prefsPath: prefsPath}
	f.send(tea.WindowSizeMsg{Width: 120, Height: 24})
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(Model)
	return cmd
}

func (f *fixture) key(k tea.KeyType) tea.Cmd {
	return f.send(tea.KeyMsg{Type: k})
}

func (f *fixture) runes(s string) tea.Cmd {
	return f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNew_RequiresStore(t *testing.T) {
	if _, err := New(Options{Config: config.Default()}); err == nil {
		t.Fatalf("New() without store should fail")
	}
}

func TestNew_StartsOnCarousel(t *testing.T) {
	f := newFixture(t)
	if got := f.model.nav.Active(); got != focus.PrimaryContent {
		t.Fatalf("Active() = %v, want primary", got)
	}
	if f.model.nav.Expanded() {
		t.Fatalf("rail should start collapsed")
	}
	if f.model.carouselArmed {
		t.Fatalf("carousel timer should not run while the carousel has focus")
	}
	if !strings.Contains(f.model.View(), "tvdeck") {
		t.Fatalf("View() missing header")
	}
}

func TestArrowKeysDriveFocus(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyDown)
	if f.model.nav.Active() != focus.AppGrid || f.model.nav.Index(focus.AppGrid) != 0 {
		t.Fatalf("down: active=%v index=%d, want apps/0", f.model.nav.Active(), f.model.nav.Index(focus.AppGrid))
	}

	f.key(tea.KeyRight)
	if got := f.model.nav.Index(focus.AppGrid); got != 1 {
		t.Fatalf("right: index = %d, want 1", got)
	}

	f.key(tea.KeyLeft)
	f.key(tea.KeyLeft)
	if f.model.nav.Active() != focus.NavRail || !f.model.nav.Expanded() {
		t.Fatalf("left at column 0 should open the rail")
	}

	f.key(tea.KeyRight)
	if got := f.model.nav.Active(); got != focus.AppGrid {
		t.Fatalf("right from rail: active = %v, want apps", got)
	}
	if f.model.nav.Expanded() {
		t.Fatalf("rail should collapse when focus leaves it")
	}
	if got := f.model.announce(); got != "Apps › Netflix" {
		t.Fatalf("announce() = %q", got)
	}
}

func TestConfirmOnCarouselOpensDetail(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyEnter)
	if f.model.modal == nil {
		t.Fatalf("enter on carousel should open the detail dialog")
	}
	if !strings.Contains(f.model.View(), "Dune: Part Two") {
		t.Fatalf("detail dialog missing title")
	}

	// Arrows stay inside the dialog.
	f.key(tea.KeyDown)
	if f.model.nav.Active() != focus.PrimaryContent {
		t.Fatalf("focus moved behind the dialog")
	}

	f.key(tea.KeyEsc)
	if f.model.modal != nil {
		t.Fatalf("esc should close the dialog")
	}
}

func TestConfirmOnNavSelectsEntry(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyLeft)
	f.key(tea.KeyDown)
	f.key(tea.KeySpace)

	if got := f.model.selectedNav; got != 1 {
		t.Fatalf("selectedNav = %d, want 1", got)
	}
	if !strings.Contains(f.model.renderHeader(), "Search") {
		t.Fatalf("header should show the selected nav entry")
	}
}

func TestConfirmOnAppLaunches(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyDown)
	if cmd := f.key(tea.KeyEnter); cmd == nil {
		t.Fatalf("enter on an app should return a launch command")
	}
	if !strings.HasPrefix(f.model.toast.text, "Opening Netflix") {
		t.Fatalf("toast = %q", f.model.toast.text)
	}

	app, _ := f.model.snapshot.Catalog.App(0)
	msg := launchCmd(context.Background(), f.launcher, app, f.model.log)()
	f.send(msg)

	if len(f.launcher.opened) != 1 || f.launcher.opened[0] != "com.netflix.mediaclient" {
		t.Fatalf("opened = %v", f.launcher.opened)
	}
	if f.model.toast.text != "Opened Netflix" {
		t.Fatalf("toast = %q, want Opened Netflix", f.model.toast.text)
	}
}

func TestLaunchResultToasts(t *testing.T) {
	f := newFixture(t)
	app := catalog.App{ID: "x", Name: "Prime Video"}

	tests := []struct {
		outcome bridge.Outcome
		want    string
		level   toastLevel
	}{
		{bridge.NoBridge, "Prime Video: no launch bridge available", toastWarn},
		{bridge.NoPackage, "Prime Video cannot be opened on this device", toastWarn},
		{bridge.Failed, "Could not open Prime Video", toastError},
	}
	for _, tt := range tests {
		f.send(launchMsg{app: app, outcome: tt.outcome})
		if f.model.toast.text != tt.want || f.model.toast.level != tt.level {
			t.Fatalf("%v: toast = %+v", tt.outcome, f.model.toast)
		}
	}

	id := f.model.toast.id
	f.send(toastExpiredMsg{id: id - 1})
	if f.model.toast.text == "" {
		t.Fatalf("stale expiry cleared the current toast")
	}
	f.send(toastExpiredMsg{id: id})
	if f.model.toast.text != "" {
		t.Fatalf("toast should clear on its own expiry")
	}
}

func TestLaunchWithoutBridge(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app, _ := catalog.Default().App(0)

	msg := launchCmd(context.Background(), nil, app, logger)().(launchMsg)
	if msg.outcome != bridge.NoBridge {
		t.Fatalf("outcome = %v, want no bridge", msg.outcome)
	}
	if hook.LastEntry() == nil {
		t.Fatalf("missing bridge should be logged")
	}
}

func TestCarouselAutoAdvance(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyDown)
	if !f.model.carouselArmed {
		t.Fatalf("carousel timer should run once focus leaves it")
	}

	stale := f.model.carouselGen - 1
	f.send(carouselMsg{gen: stale})
	if got := f.model.nav.Index(focus.PrimaryContent); got != 0 {
		t.Fatalf("stale tick advanced carousel to %d", got)
	}

	f.send(carouselMsg{gen: f.model.carouselGen})
	if got := f.model.nav.Index(focus.PrimaryContent); got != 1 {
		t.Fatalf("carousel index = %d, want 1", got)
	}
	if !f.model.carouselArmed {
		t.Fatalf("timer should re-arm after a tick")
	}

	f.key(tea.KeyUp)
	if f.model.carouselArmed {
		t.Fatalf("timer should stop when the carousel takes focus")
	}
	gen := f.model.carouselGen
	f.send(carouselMsg{gen: gen})
	if got := f.model.nav.Index(focus.PrimaryContent); got != 1 {
		t.Fatalf("paused carousel advanced to %d", got)
	}
}

func TestScrollFollowsFocus(t *testing.T) {
	f := newFixture(t)

	if cmd := f.key(tea.KeyDown); cmd == nil {
		t.Fatalf("moving into the grid should schedule frames")
	}
	if got := f.model.anim.Target(); got != 11 {
		t.Fatalf("scroll target = %d, want 11", got)
	}

	f.send(frameMsg{gen: f.model.anim.Gen() - 1})
	if got := f.model.anim.Offset(); got != 0 {
		t.Fatalf("stale frame moved the viewport to %d", got)
	}

	for i := 0; i < 50 && !f.model.anim.Settled(); i++ {
		f.send(frameMsg{gen: f.model.anim.Gen()})
	}
	if got := f.model.viewport.YOffset; got != 11 {
		t.Fatalf("viewport offset = %d, want 11", got)
	}

	f.key(tea.KeyUp)
	if got := f.model.anim.Target(); got != 0 {
		t.Fatalf("back on the carousel: target = %d, want 0", got)
	}
}

func TestScrollAtPageLimitStartsNoFrames(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyDown)
	f.key(tea.KeyDown)
	for i := 0; i < 50 && !f.model.anim.Settled(); i++ {
		f.send(frameMsg{gen: f.model.anim.Gen()})
	}
	limit := f.model.contentHeight() - f.model.bodyHeight()
	if got := f.model.anim.Offset(); got != limit {
		t.Fatalf("second grid row: offset = %d, want page limit %d", got, limit)
	}
	gen := f.model.anim.Gen()

	for _, k := range []tea.KeyType{tea.KeyRight, tea.KeyRight, tea.KeyLeft} {
		f.key(k)
		if cmd := f.model.applyScroll(); cmd != nil {
			t.Fatalf("%v on a clamped row started a frame loop", k)
		}
	}
	if got := f.model.anim.Gen(); got != gen {
		t.Fatalf("generation = %d, want %d", got, gen)
	}
	if got := f.model.nav.Index(focus.AppGrid); got != 5 {
		t.Fatalf("app index = %d, want 5", got)
	}
}

func TestFitColumns(t *testing.T) {
	tests := []struct {
		width, configured, want int
	}{
		{120, 4, 4},
		{40, 4, 2},
		{10, 4, 1},
		{200, 3, 3},
	}
	for _, tt := range tests {
		if got := fitColumns(tt.width, tt.configured); got != tt.want {
			t.Errorf("fitColumns(%d, %d) = %d, want %d", tt.width, tt.configured, got, tt.want)
		}
	}
}

func TestNarrowWindowReflowsGrid(t *testing.T) {
	f := newFixture(t)

	f.send(tea.WindowSizeMsg{Width: 40, Height: 24})
	if got := f.model.columns(); got != 2 {
		t.Fatalf("columns at width 40 = %d, want 2", got)
	}
	f.key(tea.KeyDown)
	f.key(tea.KeyDown)
	if got := f.model.nav.Index(focus.AppGrid); got != 2 {
		t.Fatalf("down one row in a 2-column grid: index = %d, want 2", got)
	}

	f.send(tea.WindowSizeMsg{Width: 120, Height: 24})
	if got := f.model.columns(); got != 4 {
		t.Fatalf("columns at width 120 = %d, want 4", got)
	}
	if got := f.model.nav.Index(focus.AppGrid); got != 2 {
		t.Fatalf("reflow moved focus to %d", got)
	}
}

func TestMouseHoverExpandsRail(t *testing.T) {
	f := newFixture(t)

	f.send(tea.MouseMsg{X: 1, Y: 4, Action: tea.MouseActionMotion})
	if !f.model.nav.Expanded() {
		t.Fatalf("hovering the rail should expand it")
	}
	if f.model.nav.Active() != focus.PrimaryContent {
		t.Fatalf("hover must not move focus")
	}

	f.send(tea.MouseMsg{X: 60, Y: 4, Action: tea.MouseActionMotion})
	if f.model.nav.Expanded() {
		t.Fatalf("leaving the rail should collapse it")
	}
	if !f.model.nav.Hovered(focus.PrimaryContent) {
		t.Fatalf("pointer at row 4 should be over the carousel")
	}
}

func TestMouseClickThumbnail(t *testing.T) {
	f := newFixture(t)

	x := RailCollapsedWidth + ContentPadding + 2*(ThumbWidth+ThumbGap) + 1
	y := HeaderHeight + f.model.thumbLine()
	f.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if got := f.model.nav.Index(focus.PrimaryContent); got != 2 {
		t.Fatalf("carousel index = %d, want 2", got)
	}
	if f.model.modal != nil {
		t.Fatalf("clicking a thumbnail should not open the dialog")
	}
}

func TestMouseClickApp(t *testing.T) {
	f := newFixture(t)

	cardW := f.model.cardWidth()
	x := RailCollapsedWidth + ContentPadding + cardW + CardGap + 1
	y := HeaderHeight + f.model.cfg.Layout.HeroHeight + 1
	cmd := f.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if f.model.nav.Active() != focus.AppGrid || f.model.nav.Index(focus.AppGrid) != 1 {
		t.Fatalf("click: active=%v index=%d, want apps/1", f.model.nav.Active(), f.model.nav.Index(focus.AppGrid))
	}
	if cmd == nil {
		t.Fatalf("clicking an app should launch it")
	}
}

func TestHitTest(t *testing.T) {
	f := newFixture(t)
	m := f.model
	hero := m.cfg.Layout.HeroHeight

	tests := []struct {
		name    string
		x, y    int
		section focus.Section
		index   int
		ok      bool
	}{
		{"header", 10, 0, 0, -1, false},
		{"rail first entry", 2, HeaderHeight + RailTopPadding, focus.NavRail, 0, true},
		{"rail spacer", 2, HeaderHeight + RailTopPadding + 1, focus.NavRail, -1, true},
		{"rail third entry", 2, HeaderHeight + RailTopPadding + 2*RailItemHeight, focus.NavRail, 2, true},
		{"hero text", 40, HeaderHeight + 3, focus.PrimaryContent, -1, true},
		{"first app", RailCollapsedWidth + ContentPadding, HeaderHeight + hero, focus.AppGrid, 0, true},
		{"card gap", RailCollapsedWidth + ContentPadding + m.cardWidth(), HeaderHeight + hero, focus.AppGrid, -1, true},
		{"row spacer", RailCollapsedWidth + ContentPadding, HeaderHeight + hero + m.cardHeight(), focus.AppGrid, -1, true},
		{"footer", 10, 23, 0, -1, false},
	}
	for _, tt := range tests {
		got := m.hitTest(tt.x, tt.y)
		if got.ok != tt.ok || got.index != tt.index || (tt.ok && got.section != tt.section) {
			t.Fatalf("%s: hitTest(%d,%d) = %+v, want section=%v index=%d ok=%v",
				tt.name, tt.x, tt.y, got, tt.section, tt.index, tt.ok)
		}
	}
}

func TestCatalogReloadClampsFocus(t *testing.T) {
	f := newFixture(t)

	f.key(tea.KeyDown)
	for i := 0; i < 3; i++ {
		f.key(tea.KeyRight)
	}
	if got := f.model.nav.Index(focus.AppGrid); got != 3 {
		t.Fatalf("index = %d, want 3", got)
	}

	smaller := catalog.Default()
	smaller.Apps = smaller.Apps[:2]
	f.store.SetCatalog(smaller)
	f.send(snapshotMsg(f.store.Snapshot()))

	if got := f.model.nav.Index(focus.AppGrid); got != 1 {
		t.Fatalf("index after reload = %d, want 1", got)
	}
	if got := f.model.contentHeight(); got != f.model.cfg.Layout.HeroHeight+f.model.cfg.Layout.RowHeight {
		t.Fatalf("contentHeight = %d after shrinking to one row", got)
	}
}

func TestOfflineOverlay(t *testing.T) {
	f := newFixture(t)

	f.store.UpdateConnectivity(errors.New("dial timeout"))
	f.send(snapshotMsg(f.store.Snapshot()))
	if strings.Contains(f.model.View(), "No connection") {
		t.Fatalf("a single failed probe should not show the overlay")
	}

	f.store.UpdateConnectivity(errors.New("dial timeout"))
	f.send(snapshotMsg(f.store.Snapshot()))
	if !strings.Contains(f.model.View(), "No connection") {
		t.Fatalf("overlay missing after repeated failures")
	}

	f.store.UpdateConnectivity(nil)
	f.send(snapshotMsg(f.store.Snapshot()))
	if strings.Contains(f.model.View(), "No connection") {
		t.Fatalf("overlay should clear once the network returns")
	}
}

func TestThemeAndMutePersist(t *testing.T) {
	f := newFixture(t)

	f.runes("T")
	if f.model.theme.Name != "Aurora" {
		t.Fatalf("theme = %q, want Aurora", f.model.theme.Name)
	}
	f.runes("m")
	if f.model.heroMuted {
		t.Fatalf("m should unmute the hero")
	}

	p, _ := prefs.Load(f.prefsPath)
	if p.Theme != "Aurora" || p.HeroMuted {
		t.Fatalf("saved prefs = %+v", p)
	}
}

func TestHelpOverlay(t *testing.T) {
	f := newFixture(t)

	f.runes("?")
	if !strings.Contains(f.model.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay missing")
	}
	f.key(tea.KeyDown)
	if f.model.showHelp {
		t.Fatalf("any key should close help")
	}
	if f.model.nav.Active() != focus.PrimaryContent {
		t.Fatalf("the closing key must not move focus")
	}
}

func TestQuit(t *testing.T) {
	f := newFixture(t)

	cmd := f.runes("q")
	if cmd == nil {
		t.Fatalf("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q should quit")
	}
}

func TestWeatherChip(t *testing.T) {
	f := newFixture(t)

	f.store.SetWeatherLoading()
	f.send(snapshotMsg(f.store.Snapshot()))
	if !strings.Contains(f.model.renderHeader(), "weather") {
		t.Fatalf("loading chip missing")
	}

	f.store.UpdateWeather(suggest.WeatherFor(suggest.Sunny), nil)
	f.send(snapshotMsg(f.store.Snapshot()))
	header := f.model.renderHeader()
	if !strings.Contains(header, "Mamma Mia!") || !strings.Contains(header, "28°C") {
		t.Fatalf("header = %q", header)
	}
}
