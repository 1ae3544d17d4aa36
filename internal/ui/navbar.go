package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/ui/textutil"
)

// NavItem is one in-page navigation link.
type NavItem struct {
	ID    string // Anchor to scroll to
	Label string
}

// NavItems returns the header links in display order.
func NavItems() []NavItem {
	return []NavItem{
		{ID: AnchorProjects, Label: "Projects"},
		{ID: AnchorAbout, Label: "About"},
		{ID: AnchorContact, Label: "Contact"},
	}
}

const (
	// NavHeight is the number of rows the sticky header takes.
	NavHeight = 2

	hamburger = "☰"
	navGap    = 3
)

type navHit struct {
	id     string
	x0, x1 int
}

// NavBar is the sticky header. It owns the menu state; the drawer is only
// drawn while the menu is open in the narrow layout.
type NavBar struct {
	Brand string
	Items []NavItem
	State MenuState

	hits []navHit // clickable ranges from the last View
}

// NewNavBar returns a closed navigation bar.
func NewNavBar(brand string) *NavBar {
	return &NavBar{Brand: brand, Items: NavItems(), State: MenuClosed}
}

// Open opens the menu.
func (n *NavBar) Open() { n.State = MenuOpen }

// Close closes the menu.
func (n *NavBar) Close() { n.State = MenuClosed }

// IsOpen reports whether the menu is open.
func (n *NavBar) IsOpen() bool { return n.State == MenuOpen }

// DrawerVisible reports whether the drawer should be drawn. The desktop
// layout never shows it, whatever the menu state.
func (n *NavBar) DrawerVisible(mode LayoutMode) bool {
	return n.State == MenuOpen && mode == LayoutNarrow
}

// FocusOrder returns the header's focusable controls for mode.
func (n *NavBar) FocusOrder(mode LayoutMode) []string {
	order := []string{FocusBrand}
	if mode == LayoutNarrow {
		return append(order, FocusMenu)
	}
	for _, it := range n.Items {
		order = append(order, NavFocusID(it.ID))
	}
	return order
}

// View renders the header for width columns. focused is the focused
// control's ID.
func (n *NavBar) View(width int, mode LayoutMode, focused string) string {
	styled := func(id, text string, base lipgloss.Style) string {
		if id == focused {
			return Styles.Focused.Render(text)
		}
		return base.Render(text)
	}

	type part struct{ id, text string }
	var right []part
	if mode == LayoutNarrow {
		right = []part{{FocusMenu, hamburger}}
	} else {
		for _, it := range n.Items {
			right = append(right, part{NavFocusID(it.ID), it.Label})
		}
	}
	rightW := 0
	for i, p := range right {
		if i > 0 {
			rightW += navGap
		}
		rightW += textutil.VisualWidth(p.text)
	}

	brand := textutil.Truncate(n.Brand, maxInt(1, width-rightW-4))
	n.hits = n.hits[:0]
	n.hits = append(n.hits, navHit{FocusBrand, 1, 1 + textutil.VisualWidth(brand)})

	var sb strings.Builder
	sb.WriteString(" ")
	sb.WriteString(styled(FocusBrand, brand, Styles.Brand))
	x := width - 1 - rightW
	if gap := x - 1 - textutil.VisualWidth(brand); gap > 0 {
		sb.WriteString(strings.Repeat(" ", gap))
	} else {
		sb.WriteString(" ")
		x = 2 + textutil.VisualWidth(brand)
	}
	for i, p := range right {
		if i > 0 {
			sb.WriteString(strings.Repeat(" ", navGap))
			x += navGap
		}
		w := textutil.VisualWidth(p.text)
		n.hits = append(n.hits, navHit{p.id, x, x + w})
		sb.WriteString(styled(p.id, p.text, Styles.NavLink))
		x += w
	}
	line := padCells(sb.String(), width)
	border := Styles.HeaderBorder.Render(strings.Repeat("─", maxInt(1, width)))
	return line + "\n" + border
}

// HitTest returns the control under column x of the header's first row,
// as laid out by the last call to View.
func (n *NavBar) HitTest(x int) (string, bool) {
	for _, h := range n.hits {
		if x >= h.x0 && x < h.x1 {
			return h.id, true
		}
	}
	return "", false
}
