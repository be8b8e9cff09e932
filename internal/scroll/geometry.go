package scroll

import "github.com/five82/tvdeck/internal/focus"

// Geometry describes the vertical layout of the scrollable dashboard body.
type Geometry struct {
	HeroHeight int // rows taken by the hero banner and carousel
	RowHeight  int // rows per app grid row
	LookAhead  int // rows of the previous grid row kept visible
}

// Target returns the scroll offset that brings the item at index into view.
// The carousel lives at the top of the page, so it always scrolls to 0. The
// nav rail is fixed and reports ok=false.
func (g Geometry) Target(section focus.Section, index, columns int) (offset int, ok bool) {
	switch section {
	case focus.PrimaryContent:
		return 0, true
	case focus.AppGrid:
		if columns <= 0 {
			columns = 1
		}
		if index < 0 {
			index = 0
		}
		offset = g.HeroHeight + (index/columns)*g.RowHeight - g.LookAhead
		if offset < 0 {
			offset = 0
		}
		return offset, true
	default:
		return 0, false
	}
}
