package focus

import "errors"

// Direction is an abstract remote-control input.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	Confirm
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Confirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Section identifies a top-level navigable region of the dashboard.
type Section int

const (
	NavRail Section = iota
	PrimaryContent
	AppGrid

	sectionCount = 3
)

// Sections lists every section in layout order.
func Sections() []Section {
	return []Section{NavRail, PrimaryContent, AppGrid}
}

func (s Section) String() string {
	switch s {
	case NavRail:
		return "nav"
	case PrimaryContent:
		return "primary"
	case AppGrid:
		return "apps"
	default:
		return "unknown"
	}
}

// IsContent reports whether s is one of the content sections the rail hands
// focus back to.
func (s Section) IsContent() bool {
	return s == PrimaryContent || s == AppGrid
}

func (s Section) valid() bool {
	return s >= 0 && s < sectionCount
}

var (
	// ErrNoItems is returned when a section is configured with zero items.
	ErrNoItems = errors.New("section has no items")
	// ErrNoColumns is returned when a section is configured with zero columns.
	ErrNoColumns = errors.New("section has no columns")
	// ErrUnknownSection is returned for a Section outside the known set.
	ErrUnknownSection = errors.New("unknown section")
)

// SectionState is the focus position inside one section.
type SectionState struct {
	ActiveIndex int
	ItemCount   int
	Columns     int // 1 for lists
}

// NewSectionState validates the shape of a section and returns it focused on
// its first item.
func NewSectionState(count, columns int) (SectionState, error) {
	s := SectionState{ItemCount: count, Columns: columns}
	if err := s.validate(); err != nil {
		return SectionState{}, err
	}
	return s, nil
}

func (s SectionState) validate() error {
	if s.ItemCount <= 0 {
		return ErrNoItems
	}
	if s.Columns <= 0 {
		return ErrNoColumns
	}
	return nil
}

// Row returns the zero-based row of the active item.
func (s SectionState) Row() int {
	if s.Columns <= 0 {
		return 0
	}
	return s.ActiveIndex / s.Columns
}

// Column returns the zero-based column of the active item.
func (s SectionState) Column() int {
	if s.Columns <= 0 {
		return 0
	}
	return s.ActiveIndex % s.Columns
}

// Rows returns the number of rows, counting a ragged last row.
func (s SectionState) Rows() int {
	if s.Columns <= 0 || s.ItemCount <= 0 {
		return 0
	}
	return (s.ItemCount + s.Columns - 1) / s.Columns
}

// InBounds reports whether ActiveIndex addresses an existing item.
func (s SectionState) InBounds() bool {
	return s.ActiveIndex >= 0 && s.ActiveIndex < s.ItemCount
}

// Selection names one item in one section.
type Selection struct {
	Section Section
	Index   int
}
