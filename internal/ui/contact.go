package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/contact"
	"folio/internal/content"
)

const (
	// RequiredPrompt is shown under the first empty required field.
	RequiredPrompt = "Please fill out this field."
	// SentConfirmation is shown once the form has been submitted.
	SentConfirmation = "Thanks! I'll get back to you soon."

	sendLabel     = "Send Message"
	messageRows   = 4
	maxFormWidth  = 60
	emailLeadText = "Or email me directly at "
)

// ContactSection owns the contact form's inputs and renders the section.
// Every keystroke that reaches a field is copied into the form state.
type ContactSection struct {
	Content content.Contact

	form    *contact.Form
	name    textinput.Model
	message textarea.Model
	editing contact.Field
	active  bool

	prompt     contact.Field
	showPrompt bool
}

// NewContactSection returns an empty, unsubmitted contact section.
func NewContactSection(c content.Contact) *ContactSection {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Your name"

	msg := textarea.New()
	msg.Prompt = ""
	msg.Placeholder = "Your message"
	msg.ShowLineNumbers = false
	msg.SetHeight(messageRows)
	msg.FocusedStyle.CursorLine = lipgloss.NewStyle()

	return &ContactSection{
		Content: c,
		form:    contact.NewForm(),
		name:    name,
		message: msg,
	}
}

// Form returns the underlying form.
func (s *ContactSection) Form() *contact.Form { return s.form }

// SetContent replaces the section copy. Typed values are kept.
func (s *ContactSection) SetContent(c content.Contact) { s.Content = c }

// Editing returns the field receiving keystrokes, if any.
func (s *ContactSection) Editing() (contact.Field, bool) { return s.editing, s.active }

// Prompt returns the field showing the required-field prompt, if any.
func (s *ContactSection) Prompt() (contact.Field, bool) { return s.prompt, s.showPrompt }

// Focus moves the text cursor into f.
func (s *ContactSection) Focus(f contact.Field) tea.Cmd {
	s.editing, s.active = f, true
	if f == contact.FieldMessage {
		s.name.Blur()
		return s.message.Focus()
	}
	s.message.Blur()
	return s.name.Focus()
}

// Blur removes the text cursor from both fields.
func (s *ContactSection) Blur() {
	s.active = false
	s.name.Blur()
	s.message.Blur()
}

// Update forwards msg to the field being edited and records its new value.
func (s *ContactSection) Update(msg tea.Msg) tea.Cmd {
	if !s.active {
		return nil
	}
	var cmd tea.Cmd
	switch s.editing {
	case contact.FieldName:
		s.name, cmd = s.name.Update(msg)
		s.set(contact.FieldName, s.name.Value())
	case contact.FieldMessage:
		s.message, cmd = s.message.Update(msg)
		s.set(contact.FieldMessage, s.message.Value())
	}
	return cmd
}

func (s *ContactSection) set(f contact.Field, v string) {
	if s.form.State().Value(f) == v {
		return
	}
	s.form.Set(f, v)
	if s.showPrompt && s.prompt == f {
		s.showPrompt = false
	}
}

// Submit validates and submits the form. When a field is empty the prompt
// is attached to it and ok is false; the caller moves focus there.
func (s *ContactSection) Submit() (sub contact.Submission, missing contact.Field, ok bool) {
	sub, missing, ok = s.form.Submit()
	if !ok {
		s.prompt, s.showPrompt = missing, true
		return sub, missing, false
	}
	s.showPrompt = false
	return sub, 0, true
}

func formWidth(width int) int {
	return maxInt(10, minInt(innerWidth(width), maxFormWidth))
}

// Render lays the section out for rc.Width. It resizes the inputs to fit.
func (s *ContactSection) Render(rc RenderContext) Block {
	fw := formWidth(rc.Width)
	left := maxInt(0, (rc.Width-fw)/2)
	indent := func(str string) string {
		pad := strings.Repeat(" ", left)
		lines := strings.Split(str, "\n")
		for i, l := range lines {
			lines[i] = pad + l
		}
		return strings.Join(lines, "\n")
	}
	s.name.Width = maxInt(1, fw-3)
	s.message.SetWidth(maxInt(1, fw-2))

	b := newBlockBuilder()
	b.blank(sectionPadding)
	b.add(wrapCentered(s.Content.Heading, rc.Width, Styles.SectionTitle))
	b.blank(1)
	if s.Content.Subtext != "" {
		b.add(lipgloss.PlaceHorizontal(rc.Width, lipgloss.Center,
			Styles.Body.Width(fw).Align(lipgloss.Center).Render(s.Content.Subtext)))
		b.blank(1)
	}

	fields := []struct {
		field contact.Field
		id    string
		label string
		view  string
	}{
		{contact.FieldName, FocusContactName, "Name", s.name.View()},
		{contact.FieldMessage, FocusContactMsg, "Message", s.message.View()},
	}
	for _, f := range fields {
		b.add(indent(Styles.Label.Render(f.label)))
		box := Styles.Input
		if rc.focused(f.id) {
			box = Styles.InputFocused
		}
		b.addControl(f.id, indent(box.Width(fw-2).Render(f.view)), left, left+fw)
		if s.showPrompt && s.prompt == f.field {
			b.add(indent(Styles.Prompt.Render("! " + RequiredPrompt)))
		}
		b.blank(1)
	}

	send := Styles.Button
	if rc.focused(FocusContactSend) {
		send = Styles.ButtonFocused
	}
	b.addControl(FocusContactSend, indent(send.Width(fw).Align(lipgloss.Center).Render(sendLabel)), left, left+fw)

	if s.form.Submitted() {
		b.blank(1)
		b.add(wrapCentered(SentConfirmation, rc.Width, Styles.Success))
	}

	b.blank(1)
	if email := s.Content.Email; email != "" {
		linkStyle := Styles.Link
		if rc.focused(FocusContactEmail) {
			linkStyle = Styles.Focused
		}
		lead := Styles.Muted.Render(emailLeadText)
		line := lead + hyperlink("mailto:"+email, linkStyle.Render(email)) + Styles.Muted.Render(".")
		centered, x := center(line, rc.Width)
		x0 := x + lipgloss.Width(lead)
		b.addControl(FocusContactEmail, centered, x0, x0+lipgloss.Width(email))
	}
	b.blank(sectionPadding)
	return b.block()
}
