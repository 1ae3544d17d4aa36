package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/ui/textutil"
)

// Focus IDs for page controls. Project links use ProjectLinkID.
const (
	FocusBrand        = "brand"
	FocusMenu         = "menu"
	FocusHeroCTA      = "hero:cta"
	FocusContactName  = "contact:name"
	FocusContactMsg   = "contact:message"
	FocusContactSend  = "contact:send"
	FocusContactEmail = "contact:email"
	FocusBackToTop    = "backtotop"
)

// NavFocusID returns the focus ID of the header link for anchor id.
func NavFocusID(id string) string { return "nav:" + id }

// ProjectLinkID returns the focus ID of the i-th project's "Visit" link.
func ProjectLinkID(i int) string { return fmt.Sprintf("project:%d", i) }

const (
	sectionPadding = 2 // blank rows above and below each section
	pageMargin     = 2 // columns left and right of section content
	cardGap        = 2
	visitLabel     = "Visit ↗"
)

// ProjectColumns returns how many cards fit on one grid row.
func ProjectColumns(width int) int {
	switch {
	case width < 60:
		return 1
	case width < 100:
		return 2
	default:
		return 3
	}
}

// HeroMinHeight is 70% of the viewport height, rounded up.
func HeroMinHeight(viewportHeight int) int {
	return (viewportHeight*7 + 9) / 10
}

func innerWidth(width int) int {
	return maxInt(1, width-2*pageMargin)
}

// RenderHero renders the banner: greeting, subtext and the call to action
// that scrolls to the projects.
func RenderHero(h content.Hero, rc RenderContext) Block {
	inner := innerWidth(rc.Width)
	title := wrapCentered(h.Greeting, rc.Width, Styles.HeroTitle)
	sub := lipgloss.PlaceHorizontal(rc.Width, lipgloss.Center,
		Styles.Muted.Width(minInt(inner, 60)).Align(lipgloss.Center).Render(h.Subtext))
	cta, ctaX := center(button(h.CTA, rc.focused(FocusHeroCTA)), rc.Width)
	ctaW := lipgloss.Width(button(h.CTA, false))

	body := lipgloss.Height(title) + 1 + lipgloss.Height(sub) + 1 + 1
	pad := maxInt(2*sectionPadding, HeroMinHeight(rc.Height)-body)
	top := pad / 2

	b := newBlockBuilder()
	b.blank(top)
	b.add(title)
	b.blank(1)
	b.add(sub)
	b.blank(1)
	b.addControl(FocusHeroCTA, cta, ctaX, ctaX+ctaW)
	b.blank(pad - top)
	return b.block()
}

// RenderProjects renders the heading and the card grid.
func RenderProjects(projects []content.Project, rc RenderContext) Block {
	b := newBlockBuilder()
	b.blank(sectionPadding)
	b.add(wrapCentered("Projects", rc.Width, Styles.SectionTitle))
	b.blank(1)

	inner := innerWidth(rc.Width)
	cols := ProjectColumns(rc.Width)
	cardW := maxInt(8, (inner-cardGap*(cols-1))/cols)

	for start := 0; start < len(projects); start += cols {
		end := minInt(start+cols, len(projects))
		bodies := make([][]string, 0, end-start)
		links := make([]int, 0, end-start)
		height := 0
		for i := start; i < end; i++ {
			lines, link := projectCardLines(projects[i], cardW-4, rc.focused(ProjectLinkID(i)))
			bodies = append(bodies, lines)
			links = append(links, link)
			height = maxInt(height, len(lines))
		}

		rowStart := b.row()
		cells := make([]string, 0, 2*len(bodies))
		for j, lines := range bodies {
			if j > 0 {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, Styles.Card.Width(cardW-2).Height(height).Render(strings.Join(lines, "\n")))
		}
		b.add(lipgloss.NewStyle().MarginLeft(pageMargin).Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...)))

		for j, link := range links {
			if link < 0 {
				continue
			}
			x0 := pageMargin + j*(cardW+cardGap) + 2 // border + padding
			b.controls[ProjectLinkID(start+j)] = Span{
				Row:    rowStart + 1 + link,
				Height: 1,
				X0:     x0,
				X1:     x0 + textutil.VisualWidth(visitLabel),
			}
		}
		if end < len(projects) {
			b.blank(1)
		}
	}
	b.blank(sectionPadding)
	return b.block()
}

// projectCardLines returns the card body and the line holding the link,
// or -1 when the project has none.
func projectCardLines(p content.Project, width int, linkFocused bool) ([]string, int) {
	width = maxInt(1, width)
	var lines []string
	lines = append(lines, strings.Split(Styles.CardTitle.Width(width).Render(p.Title), "\n")...)
	if p.Description != "" {
		lines = append(lines, strings.Split(Styles.Muted.Width(width).Render(p.Description), "\n")...)
	}
	if len(p.Tags) > 0 {
		badges := make([]string, len(p.Tags))
		for i, tag := range p.Tags {
			badges[i] = Styles.Badge.Render(textutil.Truncate(tag, maxInt(1, width-2)))
		}
		lines = append(lines, "")
		lines = append(lines, textutil.FlexWrap(badges, width, 1)...)
	}
	if !p.HasLink() {
		return lines, -1
	}
	style := Styles.Link
	if linkFocused {
		style = Styles.Focused
	}
	lines = append(lines, "")
	lines = append(lines, hyperlink(p.Link, style.Render(visitLabel)))
	return lines, len(lines) - 1
}

// RenderAbout renders the heading, the markdown body and the skill badges.
func RenderAbout(a content.About, rc RenderContext) Block {
	inner := minInt(innerWidth(rc.Width), 72)
	b := newBlockBuilder()
	b.blank(sectionPadding)
	b.add(wrapCentered(a.Heading, rc.Width, Styles.SectionTitle))
	b.blank(1)
	if a.Body != "" {
		b.add(lipgloss.PlaceHorizontal(rc.Width, lipgloss.Center, rc.Markdown.Render(a.Body, inner)))
		b.blank(1)
	}
	skills := make([]string, len(a.Skills))
	for i, s := range a.Skills {
		skills[i] = Styles.Skill.Render(textutil.Truncate(s, maxInt(1, inner-4)))
	}
	for _, row := range textutil.FlexWrap(skills, inner, 2) {
		b.add(lipgloss.PlaceHorizontal(rc.Width, lipgloss.Center, row))
	}
	b.blank(sectionPadding)
	return b.block()
}

// RenderFooter renders the copyright line.
func RenderFooter(copyright string, rc RenderContext) Block {
	b := newBlockBuilder()
	b.add(Styles.HeaderBorder.Render(strings.Repeat("─", maxInt(1, rc.Width))))
	b.blank(1)
	b.add(wrapCentered("© "+copyright, rc.Width, Styles.Muted))
	b.blank(1)
	return b.block()
}
