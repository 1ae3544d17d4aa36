// Package ui renders the portfolio as a Bubble Tea program.
//
// Core abstractions:
//   - View: a region with its own Init/Update/View (Elm-style)
//   - Block: a rendered page section plus the positions of its controls
//   - Page: the composed document, its anchors and its focus order
//   - NavBar / Drawer: the sticky header and the narrow-layout menu overlay
//   - OverlayStack: top-level views composited over the whole frame
//   - FocusRing: tab order across every focusable control
//   - BackToTop: a scroll observer registered once per mount
package ui
