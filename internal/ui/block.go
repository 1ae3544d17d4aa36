package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/ui/markdown"
)

// Span locates a control inside a Block: the rows it covers and the
// columns a mouse click must land in.
type Span struct {
	Row    int
	Height int
	X0, X1 int // half-open column range
}

// Contains reports whether the cell (x, row) is inside the span.
func (s Span) Contains(x, row int) bool {
	h := s.Height
	if h < 1 {
		h = 1
	}
	return row >= s.Row && row < s.Row+h && x >= s.X0 && x < s.X1
}

// Block is a rendered section plus the positions of its focusable controls.
type Block struct {
	Content  string
	Controls map[string]Span
}

// Height returns the number of rows in the block.
func (b Block) Height() int {
	if b.Content == "" {
		return 0
	}
	return strings.Count(b.Content, "\n") + 1
}

// RenderContext carries what every section renderer needs.
type RenderContext struct {
	Width    int    // Page width in columns
	Height   int    // Viewport height in rows
	Focused  string // Focus ID of the focused control, if any
	Markdown *markdown.Renderer
}

func (rc RenderContext) focused(id string) bool {
	return rc.Focused != "" && rc.Focused == id
}

// blockBuilder accumulates rows and control spans.
type blockBuilder struct {
	lines    []string
	controls map[string]Span
}

func newBlockBuilder() *blockBuilder {
	return &blockBuilder{controls: make(map[string]Span)}
}

func (b *blockBuilder) row() int { return len(b.lines) }

func (b *blockBuilder) add(s string) {
	b.lines = append(b.lines, strings.Split(s, "\n")...)
}

func (b *blockBuilder) blank(n int) {
	for i := 0; i < n; i++ {
		b.lines = append(b.lines, "")
	}
}

// addControl appends s and records it as control id covering all of its
// rows and the given columns.
func (b *blockBuilder) addControl(id, s string, x0, x1 int) {
	b.controls[id] = Span{Row: b.row(), Height: lipgloss.Height(s), X0: x0, X1: x1}
	b.add(s)
}

// addBlock appends another block, shifting its controls.
func (b *blockBuilder) addBlock(other Block, dx int) {
	base := b.row()
	for id, sp := range other.Controls {
		sp.Row += base
		sp.X0 += dx
		sp.X1 += dx
		b.controls[id] = sp
	}
	if other.Content != "" {
		b.add(other.Content)
	}
}

func (b *blockBuilder) block() Block {
	return Block{Content: strings.Join(b.lines, "\n"), Controls: b.controls}
}

// controlOrder returns control IDs top to bottom, then left to right.
func controlOrder(controls map[string]Span) []string {
	ids := make([]string, 0, len(controls))
	for id := range controls {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := controls[ids[i]], controls[ids[j]]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.X0 != b.X0 {
			return a.X0 < b.X0
		}
		return ids[i] < ids[j]
	})
	return ids
}

// center places s in the middle of width columns. Returns the centered
// string and the column where s starts.
func center(s string, width int) (string, int) {
	w := lipgloss.Width(s)
	if w >= width {
		return s, 0
	}
	left := (width - w) / 2
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s), left
}

// wrap word-wraps plain text to width and centers every line.
func wrapCentered(s string, width int, style lipgloss.Style) string {
	return style.Width(width).Align(lipgloss.Center).Render(s)
}

func button(label string, focused bool) string {
	if focused {
		return Styles.ButtonFocused.Render(label)
	}
	return Styles.Button.Render(label)
}

// hyperlink wraps text in an OSC 8 hyperlink so capable terminals make it
// clickable. The escape sequences take no columns.
func hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
