package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/content"
)

func plain(s string) string { return ansi.Strip(s) }

func TestRenderProjects_LinkOnlyWhenPresent(t *testing.T) {
	withLink := content.Project{Title: "A", Description: "d", Link: "https://example.com/a"}
	noLink := content.Project{Title: "B", Description: "d"}
	rc := RenderContext{Width: 40, Height: 20}

	blk := RenderProjects([]content.Project{withLink}, rc)
	assert.Contains(t, plain(blk.Content), visitLabel)
	assert.Contains(t, blk.Content, ansi.SetHyperlink("https://example.com/a"))

	blk = RenderProjects([]content.Project{noLink}, rc)
	assert.NotContains(t, plain(blk.Content), visitLabel)
	assert.Empty(t, blk.Controls)
}

func TestRenderProjects_TagsInOrder(t *testing.T) {
	p := content.Project{Title: "A", Tags: []string{"Zeta", "Alpha", "Mid"}}
	out := plain(RenderProjects([]content.Project{p}, RenderContext{Width: 50, Height: 20}).Content)

	z, a, m := strings.Index(out, "Zeta"), strings.Index(out, "Alpha"), strings.Index(out, "Mid")
	require.True(t, z >= 0 && a >= 0 && m >= 0, "all tags rendered: %q", out)
	assert.Less(t, z, a)
	assert.Less(t, a, m)
}

func TestRenderProjects_CardRowsKeepMargin(t *testing.T) {
	for _, w := range []int{40, 70, 100} {
		blk := RenderProjects(content.Default().Projects, RenderContext{Width: w, Height: 30})
		for i, line := range strings.Split(plain(blk.Content), "\n") {
			if strings.TrimSpace(line) == "" || !strings.ContainsAny(line, "╭│╰") {
				continue
			}
			assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", pageMargin)), "width %d line %d: %q", w, i, line)
			assert.NotEqual(t, ' ', []rune(line)[pageMargin], "width %d line %d starts inside the margin: %q", w, i, line)
		}
	}
}

func TestRenderProjectCard_NoTags(t *testing.T) {
	p := content.Project{Title: "Solo", Description: "Just text"}
	lines, link := projectCardLines(p, 20, false)
	assert.Equal(t, -1, link)
	for _, l := range lines {
		assert.NotEmpty(t, strings.TrimSpace(plain(l)), "no blank badge row without tags")
	}
}

func TestProjectColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{40, 1}, {59, 1}, {60, 2}, {99, 2}, {100, 3}, {200, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProjectColumns(tt.width), "width %d", tt.width)
	}
}

func TestRenderProjects_ControlsPointAtVisitLinks(t *testing.T) {
	site := content.Default()
	for _, w := range []int{40, 70, 100} {
		blk := RenderProjects(site.Projects, RenderContext{Width: w, Height: 30})
		lines := strings.Split(blk.Content, "\n")

		for i := range site.Projects {
			sp, ok := blk.Controls[ProjectLinkID(i)]
			require.True(t, ok, "project %d has a link control", i)
			line := plain(lines[sp.Row])
			got := ansi.Cut(line, sp.X0, sp.X1)
			assert.Equal(t, visitLabel, got, "width %d project %d", w, i)
		}
	}
}

func TestRenderHero_MinimumHeight(t *testing.T) {
	for _, h := range []int{10, 21, 40} {
		blk := RenderHero(content.Default().Hero, RenderContext{Width: 80, Height: h})
		assert.GreaterOrEqual(t, blk.Height(), HeroMinHeight(h), "viewport height %d", h)
	}
	assert.Equal(t, 15, HeroMinHeight(21))
}

func TestRenderHero_CTAControl(t *testing.T) {
	hero := content.Default().Hero
	blk := RenderHero(hero, RenderContext{Width: 80, Height: 20})
	sp, ok := blk.Controls[FocusHeroCTA]
	require.True(t, ok)
	line := plain(strings.Split(blk.Content, "\n")[sp.Row])
	assert.Contains(t, ansi.Cut(line, sp.X0, sp.X1), hero.CTA)
}

func TestRenderAbout_SkillsInOrderAndWrapped(t *testing.T) {
	about := content.Default().About
	about.Body = ""
	blk := RenderAbout(about, RenderContext{Width: 30, Height: 20})
	out := plain(blk.Content)

	last := -1
	for _, s := range about.Skills {
		idx := strings.Index(out[last+1:], s)
		require.GreaterOrEqual(t, idx, 0, "skill %q after position %d", s, last)
		last += idx + 1
	}
	for _, l := range strings.Split(blk.Content, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(l), 30)
	}
}

func TestRenderFooter(t *testing.T) {
	blk := RenderFooter("2025 Someone", RenderContext{Width: 40})
	assert.Contains(t, plain(blk.Content), "© 2025 Someone")
}

func TestComposePage_FixedOrderAndAnchors(t *testing.T) {
	site := content.Default()
	rc := RenderContext{Width: 80, Height: 21}
	page := ComposePage(site, nil, rc)

	require.Len(t, page.Anchors, 4)
	assert.Equal(t, 0, page.Anchors[AnchorTop])
	assert.Less(t, page.Anchors[AnchorTop], page.Anchors[AnchorProjects])
	assert.Less(t, page.Anchors[AnchorProjects], page.Anchors[AnchorAbout])
	assert.Less(t, page.Anchors[AnchorAbout], page.Anchors[AnchorContact])

	out := plain(page.Content)
	order := []string{site.Hero.Greeting, "Projects", site.About.Heading, site.Contact.Subtext, "© " + site.Copyright}
	last := -1
	for _, s := range order {
		idx := strings.Index(out, s)
		require.Greater(t, idx, last, "%q out of order", s)
		last = idx
	}

	// Every anchor can reach the top of the viewport.
	for id, row := range page.Anchors {
		assert.GreaterOrEqual(t, page.Rows-row, rc.Height, "anchor %s", id)
	}
}

func TestComposePage_ProjectWithoutLinkHasNoControl(t *testing.T) {
	site := content.Default()
	site.Projects[1].Link = ""
	page := ComposePage(site, nil, RenderContext{Width: 80, Height: 20})

	_, ok := page.Controls[ProjectLinkID(1)]
	assert.False(t, ok)
	assert.NotContains(t, page.Order, ProjectLinkID(1))
	assert.Contains(t, page.Order, ProjectLinkID(0))
	assert.Equal(t, 2, strings.Count(plain(page.Content), visitLabel))
}

func TestComposePage_FocusOrderTopToBottom(t *testing.T) {
	page := ComposePage(content.Default(), nil, RenderContext{Width: 100, Height: 20})
	want := []string{
		FocusHeroCTA,
		ProjectLinkID(0), ProjectLinkID(1), ProjectLinkID(2),
		FocusContactName, FocusContactMsg, FocusContactSend, FocusContactEmail,
	}
	assert.Equal(t, want, page.Order)
}

func TestPage_ControlAt(t *testing.T) {
	page := ComposePage(content.Default(), nil, RenderContext{Width: 80, Height: 20})
	sp := page.Controls[FocusContactSend]

	id, ok := page.ControlAt(sp.X0, sp.Row)
	require.True(t, ok)
	assert.Equal(t, FocusContactSend, id)

	_, ok = page.ControlAt(0, 0)
	assert.False(t, ok)
}

func TestRenderStatic(t *testing.T) {
	site := content.Default()
	out := plain(RenderStatic(site, 100, 30, 0, nil))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), site.Name))
	assert.Contains(t, out, "About")
	assert.NotContains(t, out, hamburger)

	narrow := plain(RenderStatic(site, 50, 30, 0, nil))
	assert.Contains(t, narrow, hamburger)
}
