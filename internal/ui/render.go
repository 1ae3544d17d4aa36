package ui

import (
	"folio/internal/content"
	"folio/internal/ui/markdown"
)

// RenderStatic renders the header and the whole page, unscrolled, for a
// terminal width columns wide. height sizes the hero and the bottom
// padding as if the page were shown in a viewport that tall.
func RenderStatic(site content.Site, width, height, breakpoint int, md *markdown.Renderer) string {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	mode := LayoutFor(width, breakpoint)
	rc := RenderContext{
		Width:    width,
		Height:   maxInt(1, height-NavHeight-statusHeight),
		Markdown: md,
	}
	page := ComposePage(site, nil, rc)
	return NewNavBar(site.Name).View(width, mode, "") + "\n" + page.Content
}
