package ui

import "folio/internal/scroll"

// BackToTopThreshold is the scroll offset, in scroll units, past which the
// control appears.
const BackToTopThreshold = 400

const backToTopLabel = "↑ Top"

// BackToTop is the floating "back to top" control. It observes the scroll
// bus while mounted and holds at most one subscription.
type BackToTop struct {
	visible bool
	release func()
}

// Mount subscribes to bus. Mounting an already mounted control does
// nothing. The current offset is applied right away.
func (b *BackToTop) Mount(bus *scroll.Bus) {
	if b.release != nil || bus == nil {
		return
	}
	b.release = bus.Subscribe(b.observe)
	b.observe(bus.Last())
}

// Unmount releases the subscription. Safe to call when not mounted.
func (b *BackToTop) Unmount() {
	if b.release == nil {
		return
	}
	b.release()
	b.release = nil
}

// Mounted reports whether the control holds a subscription.
func (b *BackToTop) Mounted() bool { return b.release != nil }

// Visible reports whether the last observed offset is past the threshold.
func (b *BackToTop) Visible() bool { return b.visible }

func (b *BackToTop) observe(units int) {
	b.visible = units > BackToTopThreshold
}

// View renders the control, or "" while hidden.
func (b *BackToTop) View(focused bool) string {
	if !b.visible {
		return ""
	}
	if focused {
		return Styles.ButtonFocused.Padding(0, 1).Render(backToTopLabel)
	}
	return Styles.TopBtn.Render(backToTopLabel)
}
