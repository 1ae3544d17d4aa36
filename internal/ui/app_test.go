package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/contact"
	"folio/internal/content"
)

type fakeClipboard struct {
	copied []string
	err    error
}

func (c *fakeClipboard) Copy(text string) error {
	c.copied = append(c.copied, text)
	return c.err
}

func newTestApp(t *testing.T, opts Options) *AppModel {
	t.Helper()
	if opts.Site.Name == "" {
		opts.Site = content.Default()
	}
	return NewAppModel(opts)
}

// drain runs cmd and feeds the resulting messages back into m. Batches
// (cursor blinks) are not followed.
func drain(m *AppModel, cmd tea.Cmd) {
	for i := 0; cmd != nil && i < 16; i++ {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.BatchMsg); ok {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return
		}
		cmd = m.Update(msg)
	}
}

func resize(m *AppModel, w, h int) {
	m.Update(tea.WindowSizeMsg{Width: w, Height: h})
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestNewAppModel_Defaults(t *testing.T) {
	m := newTestApp(t, Options{})
	assert.Equal(t, DefaultBreakpoint, m.Breakpoint)
	assert.Equal(t, LayoutDesktop, m.Mode)
	assert.Equal(t, MenuClosed, m.Nav.State)
	assert.Equal(t, 1, m.Bus.Len(), "back-to-top mounted once")
	assert.Len(t, m.Page.Anchors, 4)
}

func TestAppModel_ViewFillsFrame(t *testing.T) {
	m := newTestApp(t, Options{})
	resize(m, 100, 30)
	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 30)
	assert.Contains(t, plain(lines[0]), "MyPortfolio")
}

func TestAppModel_NavigateAlignsAnchor(t *testing.T) {
	m := newTestApp(t, Options{})
	for _, id := range []string{AnchorProjects, AnchorAbout, AnchorContact, AnchorTop} {
		drain(m, m.Update(NavigateMsg{Target: id}))
		assert.Equal(t, m.Page.Anchors[id], m.Viewport.YOffset, id)
	}
}

func TestAppModel_NavigateUnknownIsNoop(t *testing.T) {
	m := newTestApp(t, Options{})
	drain(m, m.Update(NavigateMsg{Target: AnchorAbout}))
	before := m.Viewport.YOffset

	cmd := m.Update(NavigateMsg{Target: "nowhere"})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.Viewport.YOffset)
}

func TestAppModel_SmoothNavigateConverges(t *testing.T) {
	m := newTestApp(t, Options{Smooth: true})
	cmd := m.Update(NavigateMsg{Target: AnchorContact})
	require.NotNil(t, cmd)
	assert.True(t, m.Navigator.Animating())

	for i := 0; cmd != nil && i < 600; i++ {
		cmd = m.Update(cmd())
	}
	assert.False(t, m.Navigator.Animating())
	assert.Equal(t, m.Page.Anchors[AnchorContact], m.Viewport.YOffset)
}

func TestAppModel_LeaderNavigation(t *testing.T) {
	m := newTestApp(t, Options{})
	m.Update(keyMsg(" "))
	assert.True(t, m.KeyHandler.LeaderWaiting)
	lines := strings.Split(plain(m.View()), "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "SPC"), "status line shows leader hints")

	drain(m, m.Update(keyMsg("a")))
	assert.Equal(t, m.Page.Anchors[AnchorAbout], m.Viewport.YOffset)
}

func TestAppModel_LeaderSendsContactForm(t *testing.T) {
	m := newTestApp(t, Options{})
	m.Update(keyMsg(" "))
	cmd := m.Update(keyMsg("s"))
	require.NotNil(t, cmd)
	require.Equal(t, SubmitContactMsg{}, cmd())
	m.Update(SubmitContactMsg{})
	assert.False(t, m.Contact.Form().Submitted())
	assert.Equal(t, FocusContactName, m.Focus.Current, "empty form prompts for the name")

	m.Update(keyMsg("esc"))
	m.Contact.Form().Set(contact.FieldName, "Ada")
	m.Contact.Form().Set(contact.FieldMessage, "Hi")
	m.Update(keyMsg(" "))
	drain(m, m.Update(keyMsg("s")))
	assert.True(t, m.Contact.Form().Submitted())
	assert.Contains(t, plain(m.Page.Content), SentConfirmation)
}

func TestAppModel_BackToTop(t *testing.T) {
	m := newTestApp(t, Options{})
	assert.False(t, m.BackToTop.Visible())
	assert.NotContains(t, m.Focus.Order, FocusBackToTop)

	// "t" does nothing while hidden.
	drain(m, m.Update(keyMsg("t")))
	assert.Equal(t, 0, m.Viewport.YOffset)

	drain(m, m.Update(NavigateMsg{Target: AnchorAbout}))
	require.Greater(t, m.Viewport.YOffset*16, BackToTopThreshold)
	assert.True(t, m.BackToTop.Visible())
	assert.Contains(t, m.Focus.Order, FocusBackToTop)
	assert.Contains(t, plain(m.View()), backToTopLabel)

	drain(m, m.Update(keyMsg("t")))
	assert.Equal(t, 0, m.Viewport.YOffset)
	assert.False(t, m.BackToTop.Visible())
}

func TestAppModel_BackToTopClick(t *testing.T) {
	m := newTestApp(t, Options{})
	drain(m, m.Update(NavigateMsg{Target: AnchorContact}))
	require.True(t, m.BackToTop.Visible())

	drain(m, m.Update(click(m.Width-2, m.Height-1)))
	assert.Equal(t, 0, m.Viewport.YOffset)
}

func TestAppModel_ManualScrollPublishes(t *testing.T) {
	m := newTestApp(t, Options{})
	for i := 0; i < 3; i++ {
		m.Update(keyMsg("pgdown"))
	}
	assert.Greater(t, m.Viewport.YOffset, 25)
	assert.Equal(t, m.Viewport.YOffset*16, m.Bus.Last())
	assert.True(t, m.BackToTop.Visible())
}

func TestAppModel_ClampedOffsetIsPublished(t *testing.T) {
	m := newTestApp(t, Options{})
	for i := 0; i < 30; i++ {
		m.Update(keyMsg("pgdown"))
	}
	before := m.Viewport.YOffset

	site := content.Default()
	site.Projects = site.Projects[:1]
	site.About.Body = ""
	site.About.Skills = nil
	m.Update(ContentReloadedMsg{Site: site})

	require.Less(t, m.Viewport.YOffset, before, "shorter page clamps the offset")
	assert.Equal(t, m.Viewport.YOffset*16, m.Bus.Last())
	assert.Equal(t, m.Bus.Last() > BackToTopThreshold, m.BackToTop.Visible())
}

func TestAppModel_MenuKeyOnlyInNarrow(t *testing.T) {
	m := newTestApp(t, Options{})
	drain(m, m.Update(keyMsg("m")))
	assert.Equal(t, MenuClosed, m.Nav.State, "desktop has no hamburger")

	drain(m, m.Update(OpenMenuMsg{}))
	assert.Equal(t, MenuClosed, m.Nav.State)
	assert.Equal(t, 0, m.Overlays.Len())
}

func TestAppModel_DrawerOpenClose(t *testing.T) {
	m := newTestApp(t, Options{})
	resize(m, 60, 24)
	require.Equal(t, LayoutNarrow, m.Mode)

	drain(m, m.Update(keyMsg("m")))
	assert.Equal(t, MenuOpen, m.Nav.State)
	assert.Equal(t, 1, m.Overlays.Len())

	view := m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 24)
	for _, l := range lines {
		assert.Equal(t, 60, lipgloss.Width(l))
	}
	assert.Contains(t, plain(lines[drawerCloseRow]), drawerTitle)
	assert.Contains(t, plain(lines[drawerCloseRow]), drawerClose)

	m.Update(keyMsg("esc"))
	assert.Equal(t, MenuClosed, m.Nav.State)
	assert.Equal(t, 0, m.Overlays.Len())
	assert.Equal(t, FocusMenu, m.Focus.Current, "focus returns to the hamburger")
	assert.NotContains(t, plain(m.View()), drawerClose)
}

func TestAppModel_DrawerKeysDoNotReachPage(t *testing.T) {
	m := newTestApp(t, Options{})
	resize(m, 60, 24)
	drain(m, m.Update(OpenMenuMsg{}))

	drain(m, m.Update(keyMsg("q")))
	assert.Equal(t, MenuOpen, m.Nav.State, "q is swallowed by the drawer")
	m.Update(keyMsg("pgdown"))
	assert.Equal(t, 0, m.Viewport.YOffset)
}

func TestAppModel_DrawerBackdropClick(t *testing.T) {
	m := newTestApp(t, Options{})
	resize(m, 60, 24)
	drain(m, m.Update(OpenMenuMsg{}))

	drain(m, m.Update(click(5, 10)))
	assert.Equal(t, MenuClosed, m.Nav.State)
	assert.Equal(t, 0, m.Viewport.YOffset)
}

func TestAppModel_DrawerCloseControlClick(t *testing.T) {
	m := newTestApp(t, Options{})
	resize(m, 60, 24)
	drain(m, m.Update(OpenMenuMsg{}))

	drain(m, m.Update(click(58, drawerCloseRow)))
	assert.Equal(t, MenuClosed, m.Nav.State)
}

func TestAppModel_DrawerLinkNavigatesAndCloses(t *testing.T) {
	m := newTestApp(t, Options{})
	resize(m, 60, 24)
	drain(m, m.Update(OpenMenuMsg{}))

	// Second link: About.
	drain(m, m.Update(click(60-DrawerWidth+4, drawerFirstRow+2)))
	assert.Equal(t, MenuClosed, m.Nav.State)
	assert.Equal(t, 0, m.Overlays.Len())
	assert.Equal(t, m.Page.Anchors[AnchorAbout], m.Viewport.YOffset)
}

func TestAppModel_DrawerEnterNavigates(t *testing.T) {
	m := newTestApp(t, Options{})
	resize(m, 60, 24)
	drain(m, m.Update(OpenMenuMsg{}))

	m.Update(keyMsg("down"))
	m.Update(keyMsg("down"))
	drain(m, m.Update(keyMsg("enter")))
	assert.Equal(t, MenuClosed, m.Nav.State)
	assert.Equal(t, m.Page.Anchors[AnchorContact], m.Viewport.YOffset)
}

func TestAppModel_WidenWhileOpenHidesDrawer(t *testing.T) {
	m := newTestApp(t, Options{})
	resize(m, 60, 24)
	drain(m, m.Update(OpenMenuMsg{}))

	resize(m, 120, 24)
	assert.Equal(t, LayoutDesktop, m.Mode)
	assert.Equal(t, MenuOpen, m.Nav.State)
	assert.False(t, m.Nav.DrawerVisible(m.Mode))
	assert.NotContains(t, plain(m.View()), drawerClose)

	resize(m, 60, 24)
	assert.Contains(t, plain(m.View()), drawerClose)
}

func TestAppModel_HeaderClicks(t *testing.T) {
	m := newTestApp(t, Options{})
	resize(m, 100, 30)
	header := plain(strings.Split(m.View(), "\n")[0])

	drain(m, m.Update(click(strings.Index(header, "Contact"), 0)))
	assert.Equal(t, m.Page.Anchors[AnchorContact], m.Viewport.YOffset)
	assert.Equal(t, NavFocusID(AnchorContact), m.Focus.Current)

	drain(m, m.Update(click(1, 0)))
	assert.Equal(t, 0, m.Viewport.YOffset)
}

func TestAppModel_HeroCTA(t *testing.T) {
	m := newTestApp(t, Options{})
	require.True(t, m.Focus.SetFocus(FocusHeroCTA))
	drain(m, m.Update(keyMsg("enter")))
	assert.Equal(t, m.Page.Anchors[AnchorProjects], m.Viewport.YOffset)
}

func TestAppModel_TabRevealsFocusedControl(t *testing.T) {
	m := newTestApp(t, Options{})
	require.True(t, m.Focus.SetFocus(FocusContactEmail))
	m.Update(keyMsg("shift+tab"))
	assert.Equal(t, FocusContactSend, m.Focus.Current)

	sp := m.Page.Controls[FocusContactSend]
	assert.GreaterOrEqual(t, sp.Row, m.Viewport.YOffset)
	assert.LessOrEqual(t, sp.Row+sp.Height, m.Viewport.YOffset+m.Viewport.Height)
}

func TestAppModel_ProjectLinkCopies(t *testing.T) {
	clip := &fakeClipboard{}
	site := content.Default()
	site.Projects[0].Link = "https://example.com/folio"
	m := newTestApp(t, Options{Site: site, Clipboard: clip})

	drain(m, m.Update(ActivateMsg{ID: ProjectLinkID(0)}))
	assert.Equal(t, []string{"https://example.com/folio"}, clip.copied)
	assert.Contains(t, plain(m.View()), "Copied https://example.com/folio")

	drain(m, m.Update(ActivateMsg{ID: FocusContactEmail}))
	assert.Equal(t, site.Contact.Email, clip.copied[1])
}

func TestAppModel_ContactFlow(t *testing.T) {
	ch := make(chan contact.Submission, 1)
	m := newTestApp(t, Options{Relay: &contact.ChanRelay{Ch: ch}})

	require.True(t, m.Focus.SetFocus(FocusContactName))
	for _, r := range "Ada" {
		m.Update(keyMsg(string(r)))
	}
	m.Update(keyMsg("tab"))
	assert.Equal(t, FocusContactMsg, m.Focus.Current)
	for _, r := range "Hello" {
		m.Update(keyMsg(string(r)))
	}
	assert.Equal(t, contact.FormState{Name: "Ada", Message: "Hello"}, m.Contact.Form().State())

	cmd := m.Update(keyMsg("ctrl+s"))
	require.NotNil(t, cmd)
	assert.True(t, m.Contact.Form().Submitted())
	assert.Contains(t, plain(m.Page.Content), SentConfirmation)

	msg := cmd()
	delivered, ok := msg.(ContactDeliveredMsg)
	require.True(t, ok)
	assert.NoError(t, delivered.Err)
	sub := <-ch
	assert.Equal(t, delivered.ID, sub.ID)
	assert.Equal(t, "Ada", sub.Name)
	assert.Equal(t, "Hello", sub.Message)
}

func TestAppModel_EnterInNameSubmits(t *testing.T) {
	m := newTestApp(t, Options{})
	require.True(t, m.Focus.SetFocus(FocusContactName))
	m.Update(keyMsg("A"))

	m.Update(keyMsg("enter"))
	assert.False(t, m.Contact.Form().Submitted())
	assert.Equal(t, FocusContactMsg, m.Focus.Current)
	assert.Contains(t, plain(m.Page.Content), RequiredPrompt)
}

func TestAppModel_SubmitEmptyFocusesName(t *testing.T) {
	m := newTestApp(t, Options{})
	m.Update(ActivateMsg{ID: FocusContactSend})
	assert.False(t, m.Contact.Form().Submitted())
	assert.Equal(t, FocusContactName, m.Focus.Current)

	field, editing := m.Contact.Editing()
	assert.True(t, editing)
	assert.Equal(t, contact.FieldName, field)

	sp := m.Page.Controls[FocusContactName]
	assert.GreaterOrEqual(t, sp.Row, m.Viewport.YOffset, "prompted field scrolled into view")
}

func TestAppModel_EditingSwallowsShortcuts(t *testing.T) {
	m := newTestApp(t, Options{})
	require.True(t, m.Focus.SetFocus(FocusContactName))
	m.Update(keyMsg("q"))
	assert.Equal(t, "q", m.Contact.Form().State().Name, "q is typed, not a shortcut")

	m.Update(keyMsg("esc"))
	assert.Equal(t, "", m.Focus.Current)
	_, editing := m.Contact.Editing()
	assert.False(t, editing)
}

func TestAppModel_DeliveryFailureKeepsSubmitted(t *testing.T) {
	m := newTestApp(t, Options{})
	m.Contact.Form().Set(contact.FieldName, "Ada")
	m.Contact.Form().Set(contact.FieldMessage, "Hi")
	drain(m, m.Update(SubmitContactMsg{}))
	require.True(t, m.Contact.Form().Submitted())

	m.Update(ContactDeliveredMsg{ID: "x", Err: errors.New("smtp down")})
	assert.True(t, m.Contact.Form().Submitted())
	assert.Contains(t, plain(m.View()), "smtp down")
}

type blockingRelay struct{}

func (blockingRelay) Deliver(ctx context.Context, _ contact.Submission) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestAppModel_QuitCancelsDelivery(t *testing.T) {
	m := newTestApp(t, Options{Relay: blockingRelay{}})
	m.Contact.Form().Set(contact.FieldName, "Ada")
	m.Contact.Form().Set(contact.FieldMessage, "Hi")
	deliver := m.Update(SubmitContactMsg{})
	require.NotNil(t, deliver)

	m.Update(QuitMsg{})
	delivered, ok := deliver().(ContactDeliveredMsg)
	require.True(t, ok)
	assert.ErrorIs(t, delivered.Err, context.Canceled)
}

func TestAppModel_ParentContextBoundsDelivery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := newTestApp(t, Options{Relay: blockingRelay{}, Context: ctx})
	m.Contact.Form().Set(contact.FieldName, "Ada")
	m.Contact.Form().Set(contact.FieldMessage, "Hi")
	deliver := m.Update(SubmitContactMsg{})
	require.NotNil(t, deliver)

	cancel()
	delivered, ok := deliver().(ContactDeliveredMsg)
	require.True(t, ok)
	assert.ErrorIs(t, delivered.Err, context.Canceled)
}

func TestAppModel_ContentReload(t *testing.T) {
	m := newTestApp(t, Options{})
	m.Contact.Form().Set(contact.FieldName, "Ada")

	site := content.Default()
	site.Name = "Renamed"
	site.Hero.Greeting = "Hello there"
	m.Update(ContentReloadedMsg{Site: site})

	assert.Contains(t, plain(m.View()), "Renamed")
	assert.Contains(t, plain(m.Page.Content), "Hello there")
	assert.Equal(t, "Ada", m.Contact.Form().State().Name, "form values survive a reload")

	m.Update(ContentErrorMsg{Err: errors.New("bad yaml")})
	assert.Equal(t, "Renamed", m.Site.Name)
}

func TestAppModel_QuitUnmounts(t *testing.T) {
	m := newTestApp(t, Options{})
	cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, QuitMsg{}, cmd())

	cmd = m.Update(QuitMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 0, m.Bus.Len())
	assert.False(t, m.BackToTop.Mounted())
}

func TestAppModel_CtrlCQuitsEvenWhileEditing(t *testing.T) {
	m := newTestApp(t, Options{})
	// Focusing through Update flushes the cursor blink cmd.
	m.Update(ActivateMsg{ID: FocusContactMsg})
	_, editing := m.Contact.Editing()
	require.True(t, editing)

	cmd := m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, QuitMsg{}, cmd())
}

func TestAsTeaModel(t *testing.T) {
	m := newTestApp(t, Options{})
	tm := m.AsTeaModel()
	next, _ := tm.Update(tea.WindowSizeMsg{Width: 90, Height: 20})
	assert.Same(t, tm, next)
	assert.Equal(t, 90, m.Width)
	assert.NotEmpty(t, tm.View())
}
