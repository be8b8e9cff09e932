package scroll

import "github.com/five82/tvdeck/internal/focus"

// Scroller accepts smooth scroll requests.
type Scroller interface {
	// ScrollTo requests a scroll to offset. A later call supersedes an
	// earlier one that has not finished. It reports whether the effective
	// target changed; a request that lands on the current target is ignored.
	ScrollTo(offset int) (changed bool)
}

// Focuser places input focus on a rendered item.
type Focuser interface {
	FocusItem(sel focus.Selection)
}

// Sync mirrors focus state into a Scroller and a Focuser. It never mutates
// focus. Either collaborator may be nil.
type Sync struct {
	Geometry Geometry
	Scroller Scroller
	Focuser  Focuser
}

// Apply requests the scroll offset for the active item of st and focuses it.
// It returns the computed offset and whether a new scroll request was issued.
// Calling Apply again with the same state computes the same offset and issues
// no request.
func (s Sync) Apply(st focus.FocusState) (offset int, requested bool) {
	active := st.ActiveState()
	sel := focus.Selection{Section: st.Active, Index: active.ActiveIndex}
	if s.Focuser != nil {
		s.Focuser.FocusItem(sel)
	}

	offset, ok := s.Geometry.Target(sel.Section, sel.Index, active.Columns)
	if !ok || s.Scroller == nil {
		return offset, false
	}
	return offset, s.Scroller.ScrollTo(offset)
}
