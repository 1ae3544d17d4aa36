// Package markdown renders short markdown passages for the terminal with
// glamour, falling back to plain word wrapping when glamour fails.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StyleAuto picks a dark or light theme from the terminal background.
const StyleAuto = "auto"

// Renderer caches one glamour renderer per wrap width.
// The zero value and a nil *Renderer render plain wrapped text.
type Renderer struct {
	style string
	cache map[int]*glamour.TermRenderer
}

// New returns a renderer using the named glamour style ("auto", "dark",
// "light", "notty", "ascii").
func New(style string) *Renderer {
	if style == "" {
		style = StyleAuto
	}
	return &Renderer{style: style, cache: make(map[int]*glamour.TermRenderer)}
}

// Style returns the configured glamour style.
func (r *Renderer) Style() string {
	if r == nil {
		return ""
	}
	return r.style
}

// Render returns md wrapped to width columns with surrounding blank lines
// removed.
func (r *Renderer) Render(md string, width int) string {
	if width < 1 {
		width = 1
	}
	if r == nil || r.style == "" {
		return Plain(md, width)
	}
	tr, err := r.renderer(width)
	if err != nil {
		return Plain(md, width)
	}
	out, err := tr.Render(md)
	if err != nil {
		return Plain(md, width)
	}
	return clip(strings.Trim(out, "\n"), width)
}

// clip cuts every line to width cells; glamour pads lines with its
// document margin.
func clip(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if lipgloss.Width(l) > width {
			lines[i] = ansi.Truncate(l, width, "")
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderer(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.cache[width]; ok {
		return tr, nil
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if r.style == StyleAuto {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(r.style))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	if r.cache == nil {
		r.cache = make(map[int]*glamour.TermRenderer)
	}
	r.cache[width] = tr
	return tr, nil
}

// Plain word-wraps text to width without interpreting markdown.
func Plain(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(strings.TrimSpace(text))
}
