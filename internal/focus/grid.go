package focus

// Edge is the policy for one side of a section.
type Edge struct {
	Policy EdgePolicy
	Target Section // only read when Policy is EdgeEscape
}

// Clamp returns an edge that stops at the boundary.
func Clamp() Edge { return Edge{Policy: EdgeClamp} }

// Wrap returns an edge that continues from the opposite side.
func Wrap() Edge { return Edge{Policy: EdgeWrap} }

// EscapeTo returns an edge that hands focus to target.
func EscapeTo(target Section) Edge { return Edge{Policy: EdgeEscape, Target: target} }

// Edges holds the policy for each side of a section.
type Edges struct {
	Up, Down, Left, Right Edge
}

func (e Edges) side(dir Direction) Edge {
	switch dir {
	case Up:
		return e.Up
	case Down:
		return e.Down
	case Left:
		return e.Left
	case Right:
		return e.Right
	default:
		return Clamp()
	}
}

// OutcomeKind classifies the result of Navigate.
type OutcomeKind int

const (
	OutcomeNoOp OutcomeKind = iota
	OutcomeMove
	OutcomeSwitch
	OutcomeConfirm
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMove:
		return "move"
	case OutcomeSwitch:
		return "switch"
	case OutcomeConfirm:
		return "confirm"
	default:
		return "noop"
	}
}

// Outcome is the result of one directional input against one section.
type Outcome struct {
	Kind   OutcomeKind
	Index  int     // new index for Move, confirmed index for Confirm
	Target Section // destination for Switch
}

// Navigate computes the next focus position for dir. It has no side effects.
//
// Lists (Columns == 1) treat Up and Left as -1, Down and Right as +1.
// Grids move by one inside a row and by Columns between rows.
func Navigate(s SectionState, dir Direction, edges Edges) Outcome {
	if dir == Confirm {
		return Outcome{Kind: OutcomeConfirm, Index: s.ActiveIndex}
	}
	if s.validate() != nil {
		return Outcome{Kind: OutcomeNoOp}
	}
	s.ActiveIndex = clampIndex(s.ActiveIndex, s.ItemCount)

	if s.Columns == 1 {
		return navigateList(s, dir, edges)
	}
	return navigateGrid(s, dir, edges)
}

func navigateList(s SectionState, dir Direction, edges Edges) Outcome {
	delta := 1
	if dir == Up || dir == Left {
		delta = -1
	}
	edge := edges.side(dir)
	next, escaped := Move(s.ActiveIndex, delta, s.ItemCount, edge.Policy)
	if escaped {
		return Outcome{Kind: OutcomeSwitch, Target: edge.Target, Index: s.ActiveIndex}
	}
	return moveTo(s, next)
}

func navigateGrid(s SectionState, dir Direction, edges Edges) Outcome {
	idx, cols, count := s.ActiveIndex, s.Columns, s.ItemCount
	row, col := idx/cols, idx%cols
	lastRow := (count - 1) / cols

	switch dir {
	case Left:
		if col > 0 {
			return moveTo(s, idx-1)
		}
		rowEnd := row*cols + cols - 1
		if rowEnd >= count {
			rowEnd = count - 1
		}
		return atEdge(s, edges.Left, rowEnd)

	case Right:
		if col < cols-1 && idx+1 < count {
			return moveTo(s, idx+1)
		}
		return atEdge(s, edges.Right, row*cols)

	case Up:
		if row > 0 {
			return moveTo(s, idx-cols)
		}
		bottom := lastRow*cols + col
		if bottom >= count {
			bottom -= cols
		}
		return atEdge(s, edges.Up, bottom)

	case Down:
		if row == lastRow {
			return atEdge(s, edges.Down, col)
		}
		if idx+cols >= count {
			// Ragged gap: the row below exists but is short.
			return Outcome{Kind: OutcomeNoOp, Index: idx}
		}
		return moveTo(s, idx+cols)
	}
	return Outcome{Kind: OutcomeNoOp, Index: idx}
}

func atEdge(s SectionState, edge Edge, wrapped int) Outcome {
	switch edge.Policy {
	case EdgeWrap:
		return moveTo(s, wrapped)
	case EdgeEscape:
		return Outcome{Kind: OutcomeSwitch, Target: edge.Target, Index: s.ActiveIndex}
	default:
		return Outcome{Kind: OutcomeNoOp, Index: s.ActiveIndex}
	}
}

func moveTo(s SectionState, next int) Outcome {
	if next == s.ActiveIndex {
		return Outcome{Kind: OutcomeNoOp, Index: next}
	}
	return Outcome{Kind: OutcomeMove, Index: next}
}
