package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/scroll"
	"folio/internal/ui/markdown"
)

// DefaultBreakpoint is the width below which the narrow layout is used.
const DefaultBreakpoint = 80

const (
	defaultWidth  = 80
	defaultHeight = 24
	statusHeight  = 1
)

// Options configures NewAppModel.
type Options struct {
	Site       content.Site
	Breakpoint int  // 0 means DefaultBreakpoint
	Smooth     bool // animate anchor scrolling
	Relay      contact.Relay
	Logger     *zap.Logger
	Markdown   *markdown.Renderer
	Clipboard  Clipboard
	Context    context.Context // parent of contact deliveries; nil means Background
}

// AppModel is the root model: sticky header, scrollable page, status line
// and the drawer overlay.
type AppModel struct {
	Site       content.Site
	Breakpoint int
	Width      int
	Height     int
	Mode       LayoutMode

	Nav        *NavBar
	Contact    *ContactSection
	BackToTop  *BackToTop
	Overlays   OverlayStack
	Focus      *FocusRing
	KeyHandler *KeyHandler
	Navigator  *scroll.Navigator
	Bus        *scroll.Bus
	Viewport   viewport.Model
	Page       Page

	relay     contact.Relay
	logger    *zap.Logger
	markdown  *markdown.Renderer
	clipboard Clipboard
	status    string
	ctx       context.Context
	cancel    context.CancelFunc

	reveal  bool      // keyboard focus moved; scroll it into view after layout
	pending []tea.Cmd // commands produced by focus changes
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.AppModel.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.AppModel.Update(msg)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.AppModel.View()
}

// viewportScroller lets the navigator move the page viewport.
type viewportScroller struct {
	m *AppModel
}

func (s viewportScroller) Offset() int       { return s.m.Viewport.YOffset }
func (s viewportScroller) SetOffset(row int) { s.m.Viewport.SetYOffset(row) }

// NewAppModel creates the root application model laid out for an 80x24
// terminal until the first WindowSizeMsg arrives.
func NewAppModel(opts Options) *AppModel {
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = DefaultBreakpoint
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Relay == nil {
		opts.Relay = contact.DiscardRelay{}
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	m := &AppModel{
		Site:       opts.Site,
		Breakpoint: opts.Breakpoint,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Nav:        NewNavBar(opts.Site.Name),
		Contact:    NewContactSection(opts.Site.Contact),
		BackToTop:  &BackToTop{},
		Bus:        &scroll.Bus{},
		relay:      opts.Relay,
		logger:     opts.Logger,
		markdown:   opts.Markdown,
		clipboard:  opts.Clipboard,
	}
	m.ctx, m.cancel = context.WithCancel(opts.Context)
	m.Viewport = viewport.New(m.Width, m.viewportHeight())
	m.Navigator = scroll.NewNavigator(viewportScroller{m}, m.Bus, opts.Smooth)
	m.Focus = &FocusRing{OnChange: m.focusChanged}
	m.KeyHandler = NewKeyHandler(m.bindings())
	m.BackToTop.Mount(m.Bus)
	m.layout()
	return m
}

func (m *AppModel) bindings() *KeybindRegistry {
	navigate := func(id string) tea.Cmd {
		return func() tea.Msg { return NavigateMsg{Target: id} }
	}
	quit := func() tea.Msg { return QuitMsg{} }
	openMenu := func() tea.Msg { return OpenMenuMsg{} }
	narrow := []LayoutMode{LayoutNarrow}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", quit, "Quit")
	reg.BindWithDesc("SPC q", quit, "Quit")
	reg.BindWithDesc("SPC t", navigate(AnchorTop), "Top")
	reg.BindWithDesc("SPC p", navigate(AnchorProjects), "Projects")
	reg.BindWithDesc("SPC a", navigate(AnchorAbout), "About")
	reg.BindWithDesc("SPC c", navigate(AnchorContact), "Contact")
	reg.BindWithDesc("SPC s", func() tea.Msg { return SubmitContactMsg{} }, "Send message")
	reg.BindWithDescForMode("SPC m", openMenu, "Menu", narrow)
	reg.BindWithDescForMode("m", openMenu, "Menu", narrow)
	reg.BindWithDesc("t", func() tea.Msg { return ActivateMsg{ID: FocusBackToTop} }, "Back to top")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init sets the terminal title.
func (m *AppModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.Site.Name)
}

// Update handles msg and re-lays out the frame.
func (m *AppModel) Update(msg tea.Msg) tea.Cmd {
	cmd := m.update(msg)
	m.layout()
	if m.reveal {
		m.reveal = false
		m.revealFocused()
	}
	if len(m.pending) > 0 {
		cmd = tea.Batch(append(m.pending, cmd)...)
		m.pending = nil
	}
	return cmd
}

func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		cmd, _ := m.Overlays.UpdateTop(msg)
		return cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case scroll.FrameMsg:
		return m.Navigator.Update(msg)
	case NavigateMsg:
		if msg.CloseMenu {
			m.closeMenu()
		}
		return m.Navigator.ScrollTo(msg.Target)
	case OpenMenuMsg:
		m.openMenu()
		return nil
	case CloseMenuMsg:
		m.closeMenu()
		return nil
	case ActivateMsg:
		return m.activate(msg.ID)
	case SubmitContactMsg:
		return m.submit()
	case ContactDeliveredMsg:
		if msg.Err != nil {
			m.logger.Warn("contact delivery failed", zap.String("id", msg.ID), zap.Error(msg.Err))
			m.status = "Message could not be delivered: " + msg.Err.Error()
			return nil
		}
		m.logger.Debug("contact delivered", zap.String("id", msg.ID))
		return nil
	case ContentReloadedMsg:
		m.SetSite(msg.Site)
		m.status = "Content reloaded"
		m.logger.Info("content reloaded", zap.String("name", msg.Site.Name))
		return nil
	case ContentErrorMsg:
		m.logger.Warn("content reload failed", zap.Error(msg.Err))
		m.status = "Content not reloaded: " + msg.Err.Error()
		return nil
	case CopiedMsg:
		if msg.Err != nil {
			m.status = "Copy failed: " + msg.Err.Error()
		} else {
			m.status = "Copied " + msg.Text
		}
		return nil
	case QuitMsg:
		m.BackToTop.Unmount()
		m.cancel()
		return tea.Quit
	}
	// Cursor blinks and other input-model messages.
	return m.Contact.Update(msg)
}

// SetSite swaps in new content. Form values and submitted state are kept.
func (m *AppModel) SetSite(site content.Site) {
	m.Site = site
	m.Nav.Brand = site.Name
	m.Contact.SetContent(site.Contact)
}

func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return func() tea.Msg { return QuitMsg{} }
	}
	m.status = ""

	if m.Nav.DrawerVisible(m.Mode) {
		if top, ok := m.Overlays.Peek(); ok && top.IsDismissKey(s) {
			m.closeMenu()
			return nil
		}
		cmd, _ := m.Overlays.UpdateTop(msg)
		return cmd
	}

	if field, editing := m.Contact.Editing(); editing {
		switch s {
		case "tab":
			m.Focus.Next()
			m.reveal = true
		case "shift+tab":
			m.Focus.Prev()
			m.reveal = true
		case "esc":
			m.Focus.Clear()
		case "ctrl+s":
			return m.submit()
		case "enter":
			if field == contact.FieldName {
				return m.submit()
			}
			return m.Contact.Update(msg)
		default:
			return m.Contact.Update(msg)
		}
		return nil
	}

	if m.KeyHandler != nil {
		if consumed, cmd := m.KeyHandler.Handle(msg, m.Mode); consumed {
			return cmd
		}
	}

	switch s {
	case "tab":
		m.Focus.Next()
		m.reveal = true
		return nil
	case "shift+tab":
		m.Focus.Prev()
		m.reveal = true
		return nil
	case "esc":
		m.Focus.Clear()
		return nil
	case "enter":
		if m.Focus.Current != "" {
			return m.activate(m.Focus.Current)
		}
		return nil
	}

	m.Navigator.Cancel()
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	m.Navigator.Publish()
	return cmd
}

func (m *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	click := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.Nav.DrawerVisible(m.Mode) {
		if !click {
			return nil
		}
		top, ok := m.Overlays.Peek()
		if !ok {
			return nil
		}
		if msg.X < m.Width-top.Width {
			m.closeMenu() // backdrop
			return nil
		}
		if d, ok := top.View.(*Drawer); ok {
			if i, ok := d.ItemAt(msg.Y); ok {
				return d.Activate(i)
			}
		}
		return nil
	}

	if tea.MouseEvent(msg).IsWheel() {
		m.Navigator.Cancel()
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		m.Navigator.Publish()
		return cmd
	}
	if !click {
		return nil
	}

	var (
		id string
		ok bool
	)
	switch {
	case msg.Y == 0:
		id, ok = m.Nav.HitTest(msg.X)
	case msg.Y >= NavHeight && msg.Y < NavHeight+m.Viewport.Height:
		id, ok = m.Page.ControlAt(msg.X, msg.Y-NavHeight+m.Viewport.YOffset)
	case msg.Y == m.Height-1 && m.BackToTop.Visible():
		w := lipgloss.Width(m.BackToTop.View(false))
		id, ok = FocusBackToTop, msg.X >= m.Width-w
	}
	if !ok {
		m.Focus.Clear()
		return nil
	}
	m.Focus.SetFocus(id)
	return m.activate(id)
}

// activate performs the action of the control with focus ID id.
func (m *AppModel) activate(id string) tea.Cmd {
	switch {
	case id == FocusBrand:
		return m.Navigator.ScrollTo(AnchorTop)
	case id == FocusMenu:
		m.openMenu()
		return nil
	case strings.HasPrefix(id, "nav:"):
		return m.Navigator.ScrollTo(strings.TrimPrefix(id, "nav:"))
	case id == FocusHeroCTA:
		return m.Navigator.ScrollTo(AnchorProjects)
	case strings.HasPrefix(id, "project:"):
		i, err := strconv.Atoi(strings.TrimPrefix(id, "project:"))
		if err != nil || i < 0 || i >= len(m.Site.Projects) || !m.Site.Projects[i].HasLink() {
			return nil
		}
		return m.copy(m.Site.Projects[i].Link)
	case id == FocusContactName, id == FocusContactMsg:
		m.Focus.SetFocus(id)
		return nil
	case id == FocusContactSend:
		return m.submit()
	case id == FocusContactEmail:
		return m.copy(m.Site.Contact.Email)
	case id == FocusBackToTop:
		if !m.BackToTop.Visible() {
			return nil
		}
		return m.Navigator.ScrollTo(AnchorTop)
	}
	return nil
}

func (m *AppModel) copy(text string) tea.Cmd {
	var err error
	if m.clipboard != nil {
		err = m.clipboard.Copy(text)
	}
	return func() tea.Msg { return CopiedMsg{Text: text, Err: err} }
}

func (m *AppModel) submit() tea.Cmd {
	sub, missing, ok := m.Contact.Submit()
	if !ok {
		id := FocusContactName
		if missing == contact.FieldMessage {
			id = FocusContactMsg
		}
		m.Focus.SetFocus(id)
		m.reveal = true
		return nil
	}
	ctx, relay := m.ctx, m.relay
	m.logger.Debug("contact form submitted", zap.String("id", sub.ID))
	return func() tea.Msg {
		err := relay.Deliver(ctx, sub)
		return ContactDeliveredMsg{ID: sub.ID, Err: err}
	}
}

func (m *AppModel) openMenu() {
	if m.Mode != LayoutNarrow {
		return
	}
	m.Nav.Open()
	if m.Overlays.Len() == 0 {
		m.Overlays.Push(Overlay{
			View:    NewDrawer(m.Nav.Items, m.Height),
			Dismiss: "esc",
			Width:   DrawerWidth,
		})
	}
}

func (m *AppModel) closeMenu() {
	wasOpen := m.Nav.IsOpen()
	m.Nav.Close()
	for m.Overlays.Len() > 0 {
		m.Overlays.Pop()
	}
	if wasOpen && m.Mode == LayoutNarrow {
		m.Focus.SetFocus(FocusMenu)
	}
}

func (m *AppModel) focusChanged(from, to string) {
	switch to {
	case FocusContactName:
		m.pending = append(m.pending, m.Contact.Focus(contact.FieldName))
	case FocusContactMsg:
		m.pending = append(m.pending, m.Contact.Focus(contact.FieldMessage))
	default:
		m.Contact.Blur()
	}
}

func (m *AppModel) viewportHeight() int {
	return maxInt(1, m.Height-NavHeight-statusHeight)
}

// layout recomposes the page for the current size, focus and content.
func (m *AppModel) layout() {
	m.Mode = LayoutFor(m.Width, m.Breakpoint)
	vpH := m.viewportHeight()

	compose := func() {
		m.Page = ComposePage(m.Site, m.Contact, RenderContext{
			Width:    m.Width,
			Height:   vpH,
			Focused:  m.Focus.Current,
			Markdown: m.markdown,
		})
	}
	compose()
	focused := m.Focus.Current
	m.Focus.SetOrder(m.focusOrder())
	if m.Focus.Current != focused {
		compose()
	}

	off := m.Viewport.YOffset
	m.Viewport.Width = m.Width
	m.Viewport.Height = vpH
	m.Viewport.SetContent(m.Page.Content)
	m.Viewport.SetYOffset(off)
	m.Navigator.SetAnchors(m.Page.Anchors)
	if m.Viewport.YOffset != off {
		// Shorter content or a taller viewport clamped the offset.
		m.Navigator.Publish()
		m.Focus.SetOrder(m.focusOrder())
	}

	// A drawer left over from the narrow layout is not drawn on desktop;
	// the menu state itself is untouched.
	if m.Nav.DrawerVisible(m.Mode) && m.Overlays.Len() == 0 {
		m.Overlays.Push(Overlay{View: NewDrawer(m.Nav.Items, m.Height), Dismiss: "esc", Width: DrawerWidth})
	}
}

func (m *AppModel) focusOrder() []string {
	order := m.Nav.FocusOrder(m.Mode)
	order = append(order, m.Page.Order...)
	if m.BackToTop.Visible() {
		order = append(order, FocusBackToTop)
	}
	return order
}

// revealFocused scrolls the viewport so the focused page control is fully
// visible.
func (m *AppModel) revealFocused() {
	sp, ok := m.Page.Controls[m.Focus.Current]
	if !ok {
		return
	}
	h := maxInt(1, sp.Height)
	top := m.Viewport.YOffset
	switch {
	case sp.Row < top:
		m.Navigator.ScrollToRow(sp.Row)
	case sp.Row+h > top+m.Viewport.Height:
		m.Navigator.ScrollToRow(sp.Row + h - m.Viewport.Height)
	}
}

// View renders the full frame.
func (m *AppModel) View() string {
	frame := lipgloss.JoinVertical(lipgloss.Left,
		m.Nav.View(m.Width, m.Mode, m.Focus.Current),
		m.Viewport.View(),
		m.statusLine(),
	)
	if m.Nav.DrawerVisible(m.Mode) {
		if top, ok := m.Overlays.Peek(); ok {
			frame = Composite(frame, top.View.View(), m.Width, m.Height, top.Width)
		}
	}
	return frame
}

func (m *AppModel) statusLine() string {
	right := m.BackToTop.View(m.Focus.Current == FocusBackToTop)
	var left string
	switch {
	case m.KeyHandler != nil && m.KeyHandler.LeaderWaiting:
		left = RenderKeybindHelp(m.KeyHandler, m.Mode)
	case m.status != "":
		left = Styles.Status.Render(m.status)
	default:
		left = Styles.Hint.Render(m.hint())
	}
	room := maxInt(0, m.Width-lipgloss.Width(right)-1)
	left = ansi.Truncate(left, room, "…")
	return padCells(left, m.Width-lipgloss.Width(right)) + right
}

func (m *AppModel) hint() string {
	if _, editing := m.Contact.Editing(); editing {
		return "tab next · ctrl+s send · esc done"
	}
	if m.Mode == LayoutNarrow {
		return "tab focus · enter open · m menu · q quit"
	}
	return "tab focus · enter open · SPC jump · q quit"
}
