package ui

// LayoutMode is the responsive layout chosen from the terminal width.
type LayoutMode int

const (
	// LayoutDesktop shows navigation links inline in the header.
	LayoutDesktop LayoutMode = iota
	// LayoutNarrow replaces the links with a hamburger that opens the drawer.
	LayoutNarrow
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutDesktop:
		return "Desktop"
	case LayoutNarrow:
		return "Narrow"
	default:
		return "Unknown"
	}
}

// LayoutFor returns the layout for a terminal width.
func LayoutFor(width, breakpoint int) LayoutMode {
	if width < breakpoint {
		return LayoutNarrow
	}
	return LayoutDesktop
}

// MenuState is the navigation bar's menu state.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	switch s {
	case MenuClosed:
		return "Closed"
	case MenuOpen:
		return "Open"
	default:
		return "Unknown"
	}
}
