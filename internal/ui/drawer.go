package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DrawerWidth is the drawer panel's width in columns, border included.
const DrawerWidth = 32

const (
	drawerTitle = "Menu"
	drawerClose = "✕"

	drawerCloseRow = 1 // panel row of the title and close control
	drawerFirstRow = 3 // panel row of the first link; links are two rows apart
)

// Drawer is the slide-over menu shown in the narrow layout. It is pushed
// on the overlay stack and drawn over the full frame.
//
// Selected is the focused entry: 0 is the close control, 1..len(Items)
// are the links.
type Drawer struct {
	Items    []NavItem
	Selected int
	Height   int
}

var _ View = (*Drawer)(nil)

// NewDrawer returns a drawer with the first link focused.
func NewDrawer(items []NavItem, height int) *Drawer {
	sel := 0
	if len(items) > 0 {
		sel = 1
	}
	return &Drawer{Items: items, Selected: sel, Height: height}
}

// Init implements View.
func (d *Drawer) Init() tea.Cmd { return nil }

// Update implements View.
func (d *Drawer) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.Height = msg.Height
	case tea.KeyMsg:
		n := len(d.Items) + 1
		switch msg.String() {
		case "down", "tab", "j":
			d.Selected = (d.Selected + 1) % n
		case "up", "shift+tab", "k":
			d.Selected = (d.Selected - 1 + n) % n
		case "enter", " ":
			return d, d.Activate(d.Selected)
		case "esc":
			return d, closeMenu
		}
	}
	return d, nil
}

// Activate returns the command for entry i: close for 0, navigate and
// close for a link.
func (d *Drawer) Activate(i int) tea.Cmd {
	if i <= 0 || i > len(d.Items) {
		return closeMenu
	}
	target := d.Items[i-1].ID
	return func() tea.Msg { return NavigateMsg{Target: target, CloseMenu: true} }
}

// ItemAt maps a panel row to an entry index.
func (d *Drawer) ItemAt(row int) (int, bool) {
	if row == drawerCloseRow {
		return 0, true
	}
	if row < drawerFirstRow || (row-drawerFirstRow)%2 != 0 {
		return 0, false
	}
	i := (row - drawerFirstRow) / 2
	if i >= len(d.Items) {
		return 0, false
	}
	return i + 1, true
}

// View implements View.
func (d *Drawer) View() string {
	inner := DrawerWidth - 1 - Styles.Panel.GetHorizontalPadding()
	entry := func(i int, text string, base lipgloss.Style) string {
		if i == d.Selected {
			return Styles.Focused.Render(text)
		}
		return base.Render(text)
	}

	title := Styles.Brand.Render(drawerTitle)
	closeBtn := entry(0, drawerClose, Styles.NavLink)
	gap := maxInt(1, inner-lipgloss.Width(title)-lipgloss.Width(closeBtn))

	lines := []string{title + strings.Repeat(" ", gap) + closeBtn}
	for i, it := range d.Items {
		lines = append(lines, "", entry(i+1, it.Label, Styles.NavLink))
	}
	return Styles.Panel.
		Width(DrawerWidth - 1).
		Height(maxInt(d.Height, len(lines)+2)).
		Render(strings.Join(lines, "\n"))
}

func closeMenu() tea.Msg { return CloseMenuMsg{} }
