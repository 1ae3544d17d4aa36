package ui

import (
	"strings"

	"folio/internal/content"
	"folio/internal/scroll"
)

// Section anchors, in page order.
const (
	AnchorTop      = "top"
	AnchorProjects = "projects"
	AnchorAbout    = "about"
	AnchorContact  = "contact"
)

// Page is the composed, scrollable document below the header.
type Page struct {
	Content  string
	Anchors  scroll.Anchors
	Controls map[string]Span // rows are absolute page rows
	Order    []string        // focus order of the page's controls
	Rows     int
}

// ComposePage renders every section in fixed order: hero, projects, about,
// contact, footer. The bottom is padded so each anchor can be scrolled to
// the top of a viewport rc.Height rows tall. A nil contact section renders
// an empty form.
func ComposePage(site content.Site, cs *ContactSection, rc RenderContext) Page {
	if cs == nil {
		cs = NewContactSection(site.Contact)
	}
	sections := []struct {
		anchor string
		block  Block
	}{
		{AnchorTop, RenderHero(site.Hero, rc)},
		{AnchorProjects, RenderProjects(site.Projects, rc)},
		{AnchorAbout, RenderAbout(site.About, rc)},
		{AnchorContact, cs.Render(rc)},
		{"", RenderFooter(site.Copyright, rc)},
	}

	b := newBlockBuilder()
	anchors := make(scroll.Anchors, 4)
	lastAnchor := 0
	for _, s := range sections {
		if s.anchor != "" {
			anchors[s.anchor] = b.row()
			lastAnchor = b.row()
		}
		b.addBlock(s.block, 0)
	}
	if pad := lastAnchor + rc.Height - b.row(); pad > 0 {
		b.blank(pad)
	}

	blk := b.block()
	return Page{
		Content:  blk.Content,
		Anchors:  anchors,
		Controls: blk.Controls,
		Order:    controlOrder(blk.Controls),
		Rows:     strings.Count(blk.Content, "\n") + 1,
	}
}

// ControlAt returns the control under the page cell (x, row).
func (p Page) ControlAt(x, row int) (string, bool) {
	for id, sp := range p.Controls {
		if sp.Contains(x, row) {
			return id, true
		}
	}
	return "", false
}
