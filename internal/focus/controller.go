package focus

import "fmt"

// Layout describes the item counts of each section.
type Layout struct {
	NavItems     int
	PrimaryItems int
	AppItems     int
	AppColumns   int
}

// FocusState is a snapshot of the controller's state.
type FocusState struct {
	Active   Section
	Expanded bool // nav rail visual expansion
	sections [sectionCount]SectionState
}

// Section returns the state of s.
func (f FocusState) Section(s Section) SectionState {
	if !s.valid() {
		return SectionState{}
	}
	return f.sections[s]
}

// ActiveState returns the state of the active section.
func (f FocusState) ActiveState() SectionState {
	return f.sections[f.Active]
}

// EventKind classifies what Handle did.
type EventKind int

const (
	EventNone EventKind = iota
	EventMoved
	EventSwitched
	EventConfirmed
)

func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventSwitched:
		return "switched"
	case EventConfirmed:
		return "confirmed"
	default:
		return "none"
	}
}

// Event reports the effect of one input. Section and Index describe the
// focused item after the input; for EventConfirmed they name the confirmed
// item.
type Event struct {
	Kind    EventKind
	From    Section
	Section Section
	Index   int
}

// Selection returns the item the event refers to.
func (e Event) Selection() Selection {
	return Selection{Section: e.Section, Index: e.Index}
}

var sectionEdges = [sectionCount]Edges{
	NavRail: {
		Up:   Wrap(),
		Down: Wrap(),
	},
	PrimaryContent: {
		Right: Wrap(),
	},
	AppGrid: {
		Up:    EscapeTo(PrimaryContent),
		Left:  EscapeTo(NavRail),
		Right: Clamp(),
		Down:  Clamp(),
	},
}

// Controller owns the focus state machine. All focus mutation goes through
// its methods.
type Controller struct {
	state       FocusState
	lastContent Section
	hover       [sectionCount]bool
}

// NewController builds a controller focused on the first primary content
// item. It fails when any section would be empty or the grid has no columns.
func NewController(l Layout) (*Controller, error) {
	c := &Controller{lastContent: PrimaryContent}
	c.state.Active = PrimaryContent

	shapes := [sectionCount]struct{ count, cols int }{
		NavRail:        {l.NavItems, 1},
		PrimaryContent: {l.PrimaryItems, 1},
		AppGrid:        {l.AppItems, l.AppColumns},
	}
	for _, s := range Sections() {
		st, err := NewSectionState(shapes[s].count, shapes[s].cols)
		if err != nil {
			return nil, fmt.Errorf("%s section: %w", s, err)
		}
		c.state.sections[s] = st
	}
	return c, nil
}

// State returns a copy of the current focus state.
func (c *Controller) State() FocusState {
	return c.state
}

// Active returns the section holding focus.
func (c *Controller) Active() Section {
	return c.state.Active
}

// Index returns the active index inside s.
func (c *Controller) Index(s Section) int {
	return c.state.Section(s).ActiveIndex
}

// Expanded reports whether the nav rail is drawn expanded.
func (c *Controller) Expanded() bool {
	return c.state.Expanded
}

// LastContent returns the content section the rail returns to.
func (c *Controller) LastContent() Section {
	return c.lastContent
}

// Handle applies one directional input.
func (c *Controller) Handle(dir Direction) Event {
	from := c.state.Active
	if dir == Confirm {
		return Event{Kind: EventConfirmed, From: from, Section: from, Index: c.Index(from)}
	}

	switch from {
	case NavRail:
		switch dir {
		case Right:
			return c.switchTo(c.lastContent)
		case Left:
			return c.none()
		}
	case PrimaryContent:
		switch dir {
		case Left:
			return c.switchTo(NavRail)
		case Up:
			return c.none()
		case Down:
			c.state.sections[AppGrid].ActiveIndex = 0
			return c.switchTo(AppGrid)
		}
	}

	out := Navigate(c.state.sections[from], dir, sectionEdges[from])
	switch out.Kind {
	case OutcomeMove:
		c.state.sections[from].ActiveIndex = out.Index
		return Event{Kind: EventMoved, From: from, Section: from, Index: out.Index}
	case OutcomeSwitch:
		return c.switchTo(out.Target)
	default:
		return c.none()
	}
}

func (c *Controller) none() Event {
	a := c.state.Active
	return Event{Kind: EventNone, From: a, Section: a, Index: c.Index(a)}
}

func (c *Controller) switchTo(target Section) Event {
	from := c.state.Active
	if from.IsContent() {
		c.lastContent = from
	}
	c.state.Active = target
	if target == NavRail {
		c.state.Expanded = true
	} else if from == NavRail {
		c.state.Expanded = false
	}
	return Event{Kind: EventSwitched, From: from, Section: target, Index: c.Index(target)}
}

// SetHover records pointer hover over section s. Hovering the rail expands it;
// leaving the rail collapses it unless the rail holds keyboard focus. The
// latest writer, pointer or keyboard, decides the expansion. Repeating the
// current hover state is ignored.
func (c *Controller) SetHover(s Section, over bool) {
	if !s.valid() || c.hover[s] == over {
		return
	}
	c.hover[s] = over
	if s != NavRail {
		return
	}
	if over {
		c.state.Expanded = true
	} else if c.state.Active != NavRail {
		c.state.Expanded = false
	}
}

// Hovered reports whether the pointer is over s.
func (c *Controller) Hovered(s Section) bool {
	if !s.valid() {
		return false
	}
	return c.hover[s]
}

// Point focuses item index of section s, as a pointer click does. It reports
// false and changes nothing when the target does not exist.
func (c *Controller) Point(s Section, index int) (Event, bool) {
	if !s.valid() {
		return c.none(), false
	}
	st := c.state.sections[s]
	if index < 0 || index >= st.ItemCount {
		return c.none(), false
	}
	c.state.sections[s].ActiveIndex = index
	if s == c.state.Active {
		return Event{Kind: EventMoved, From: s, Section: s, Index: index}, true
	}
	return c.switchTo(s), true
}

// SetItemCount resizes section s, keeping the active index in range.
func (c *Controller) SetItemCount(s Section, count int) error {
	if !s.valid() {
		return ErrUnknownSection
	}
	if count <= 0 {
		return fmt.Errorf("%s section: %w", s, ErrNoItems)
	}
	st := &c.state.sections[s]
	st.ItemCount = count
	st.ActiveIndex = clampIndex(st.ActiveIndex, count)
	return nil
}

// SetColumns changes the column count of the app grid.
func (c *Controller) SetColumns(columns int) error {
	if columns <= 0 {
		return fmt.Errorf("%s section: %w", AppGrid, ErrNoColumns)
	}
	c.state.sections[AppGrid].Columns = columns
	return nil
}

// AutoAdvancePaused reports whether the carousel timer must hold: the
// carousel holds focus or the pointer is over it.
func (c *Controller) AutoAdvancePaused() bool {
	return c.state.Active == PrimaryContent || c.hover[PrimaryContent]
}

// AutoAdvance moves the carousel to its next item, wrapping at the end. It
// does nothing while paused.
func (c *Controller) AutoAdvance() bool {
	if c.AutoAdvancePaused() {
		return false
	}
	st := &c.state.sections[PrimaryContent]
	next, _ := Move(st.ActiveIndex, 1, st.ItemCount, EdgeWrap)
	if next == st.ActiveIndex {
		return false
	}
	st.ActiveIndex = next
	return true
}
