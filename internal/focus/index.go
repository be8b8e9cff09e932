package focus

// EdgePolicy decides what happens when a move would leave [0, count).
type EdgePolicy int

const (
	// EdgeClamp keeps the current index.
	EdgeClamp EdgePolicy = iota
	// EdgeWrap continues from the opposite end.
	EdgeWrap
	// EdgeEscape keeps the current index and signals that the owning
	// controller should hand focus to a sibling section.
	EdgeEscape
)

func (p EdgePolicy) String() string {
	switch p {
	case EdgeWrap:
		return "wrap"
	case EdgeEscape:
		return "escape"
	default:
		return "clamp"
	}
}

// Move applies delta to current over a collection of count items.
// The returned index is always in [0, count) when count > 0. escaped is true
// only for EdgeEscape when the move left the collection.
func Move(current, delta, count int, policy EdgePolicy) (next int, escaped bool) {
	if count <= 0 {
		return 0, false
	}
	current = clampIndex(current, count)

	next = current + delta
	if next >= 0 && next < count {
		return next, false
	}

	switch policy {
	case EdgeWrap:
		return ((next % count) + count) % count, false
	case EdgeEscape:
		return current, true
	default:
		return current, false
	}
}

func clampIndex(i, count int) int {
	if i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}
