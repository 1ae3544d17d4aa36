package ui

import "folio/internal/content"

// NavigateMsg scrolls the page to an anchor. CloseMenu also closes the
// drawer, as a drawer link does.
type NavigateMsg struct {
	Target    string
	CloseMenu bool
}

// OpenMenuMsg opens the navigation menu (hamburger, m, SPC m).
type OpenMenuMsg struct{}

// CloseMenuMsg closes the navigation menu (close control, backdrop, esc).
type CloseMenuMsg struct{}

// ActivateMsg activates the control with the given focus ID, as enter or a
// mouse click does.
type ActivateMsg struct {
	ID string
}

// SubmitContactMsg submits the contact form.
type SubmitContactMsg struct{}

// ContactDeliveredMsg reports the outcome of handing a submission to the
// relay. Err never reverts the submitted state.
type ContactDeliveredMsg struct {
	ID  string
	Err error
}

// ContentReloadedMsg replaces the site content, e.g. after the content
// file changed on disk.
type ContentReloadedMsg struct {
	Site content.Site
}

// ContentErrorMsg reports a content reload that failed; the previous
// content stays on screen.
type ContentErrorMsg struct {
	Err error
}

// CopiedMsg reports text copied to the clipboard.
type CopiedMsg struct {
	Text string
	Err  error
}

// QuitMsg unmounts observers and quits.
type QuitMsg struct{}
