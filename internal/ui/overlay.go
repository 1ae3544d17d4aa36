package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Overlay is a view drawn above the whole frame rather than inside the
// region that opened it, so no ancestor layout can clip it.
type Overlay struct {
	View    View
	Dismiss string // Key that dismisses (e.g. "esc")
	Width   int    // Columns taken from the right edge of the frame
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// Composite draws panel over the right edge of base and dims everything
// left of it. The result is exactly width x height cells.
func Composite(base, panel string, width, height, panelWidth int) string {
	if panelWidth > width {
		panelWidth = width
	}
	backdropWidth := width - panelWidth
	baseLines := strings.Split(base, "\n")
	panelLines := strings.Split(panel, "\n")

	out := make([]string, height)
	for y := 0; y < height; y++ {
		var left, right string
		if y < len(baseLines) {
			left = ansi.Truncate(ansi.Strip(baseLines[y]), backdropWidth, "")
		}
		left = padCells(left, backdropWidth)
		if y < len(panelLines) {
			right = ansi.Truncate(panelLines[y], panelWidth, "")
		}
		right = padCells(right, panelWidth)
		out[y] = Styles.Backdrop.Render(left) + right
	}
	return strings.Join(out, "\n")
}

func padCells(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
