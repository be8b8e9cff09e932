package scroll

// Animator eases a scroll position toward the latest requested target.
// Each request bumps a generation counter so frames scheduled for an older
// request can be recognised and dropped.
type Animator struct {
	pos    int
	target int
	limit  int
	gen    uint64
}

// NewAnimator returns an animator at offset 0 that never scrolls past limit.
func NewAnimator(limit int) *Animator {
	a := &Animator{}
	a.SetLimit(limit)
	return a
}

// SetLimit changes the largest reachable offset, pulling the position and
// target back inside it.
func (a *Animator) SetLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	a.limit = limit
	a.pos = a.clamp(a.pos)
	a.target = a.clamp(a.target)
}

// ScrollTo implements Scroller. The offset is clamped to the limit before it
// is compared with the current target.
func (a *Animator) ScrollTo(offset int) bool {
	offset = a.clamp(offset)
	if offset == a.target {
		return false
	}
	a.target = offset
	a.gen++
	return true
}

// Jump moves straight to offset without animating.
func (a *Animator) Jump(offset int) {
	a.ScrollTo(offset)
	a.pos = a.target
}

// Target returns the offset of the most recent request.
func (a *Animator) Target() int { return a.target }

// Offset returns the current animated position.
func (a *Animator) Offset() int { return a.pos }

// Gen identifies the most recent request.
func (a *Animator) Gen() uint64 { return a.gen }

// Settled reports whether the position has reached the target.
func (a *Animator) Settled() bool { return a.pos == a.target }

// Step advances one frame, covering a third of the remaining distance and at
// least one row. It reports whether more frames are needed.
func (a *Animator) Step() bool {
	d := a.target - a.pos
	if d == 0 {
		return false
	}
	step := d / 3
	if step == 0 {
		if d > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	a.pos += step
	return a.pos != a.target
}

func (a *Animator) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > a.limit {
		return a.limit
	}
	return offset
}
