package scroll

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	tea "github.com/charmbracelet/bubbletea"
)

// Anchors maps a section identifier to the document row where it starts.
type Anchors map[string]int

// Row returns the row for id.
func (a Anchors) Row(id string) (int, bool) {
	if a == nil {
		return 0, false
	}
	r, ok := a[id]
	return r, ok
}

// Scroller is the viewport the navigator moves. Offsets are rows.
type Scroller interface {
	Offset() int
	SetOffset(row int)
}

const (
	frameRate       = 60
	springFrequency = 7.0
	springDamping   = 1.0 // critically damped: no overshoot past the anchor
)

// FrameMsg advances a smooth scroll by one frame.
type FrameMsg struct {
	gen int
}

// Navigator scrolls the viewport so that an anchor's row sits at the top.
type Navigator struct {
	scroller Scroller
	bus      *Bus
	anchors  Anchors
	smooth   bool

	spring    harmonica.Spring
	pos, vel  float64
	target    int
	gen       int
	animating bool
}

// NewNavigator returns a navigator over s that publishes every offset it
// writes to bus. bus may be nil.
func NewNavigator(s Scroller, bus *Bus, smooth bool) *Navigator {
	return &Navigator{
		scroller: s,
		bus:      bus,
		smooth:   smooth,
		spring:   harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
	}
}

// SetAnchors replaces the anchor table, typically after the page is
// recomposed.
func (n *Navigator) SetAnchors(a Anchors) {
	if n == nil {
		return
	}
	n.anchors = a
}

// Anchors returns the current anchor table.
func (n *Navigator) Anchors() Anchors {
	if n == nil {
		return nil
	}
	return n.anchors
}

// Animating reports whether a smooth scroll is in flight.
func (n *Navigator) Animating() bool { return n != nil && n.animating }

// ScrollTo brings the anchor id to the top of the viewport. Unknown ids,
// or a navigator with nothing to scroll, do nothing.
func (n *Navigator) ScrollTo(id string) tea.Cmd {
	if n == nil || n.scroller == nil {
		return nil
	}
	row, ok := n.anchors.Row(id)
	if !ok {
		return nil
	}
	if !n.smooth {
		n.ScrollToRow(row)
		return nil
	}
	n.gen++
	n.target = row
	n.pos = float64(n.scroller.Offset())
	n.vel = 0
	if n.scroller.Offset() == row {
		n.animating = false
		n.publish()
		return nil
	}
	n.animating = true
	return n.frame()
}

// ScrollToRow jumps straight to row, cancelling any animation.
func (n *Navigator) ScrollToRow(row int) {
	if n == nil || n.scroller == nil {
		return
	}
	n.Cancel()
	n.scroller.SetOffset(row)
	n.publish()
}

// Cancel stops an in-flight animation. Frames already scheduled are
// ignored when they arrive.
func (n *Navigator) Cancel() {
	if n == nil {
		return
	}
	if n.animating {
		n.gen++
		n.animating = false
	}
}

// Update advances the animation. Stale frames are dropped.
func (n *Navigator) Update(msg FrameMsg) tea.Cmd {
	if n == nil || n.scroller == nil || !n.animating || msg.gen != n.gen {
		return nil
	}
	n.pos, n.vel = n.spring.Update(n.pos, n.vel, float64(n.target))
	if math.Abs(n.pos-float64(n.target)) < 0.5 && math.Abs(n.vel) < 0.5 {
		n.animating = false
		n.scroller.SetOffset(n.target)
		n.publish()
		return nil
	}
	n.scroller.SetOffset(int(math.Round(n.pos)))
	n.publish()
	return n.frame()
}

// Publish pushes the scroller's current offset to the bus. Callers use it
// after scrolling the viewport directly.
func (n *Navigator) Publish() {
	if n == nil || n.scroller == nil {
		return
	}
	n.publish()
}

func (n *Navigator) publish() {
	if n.bus != nil {
		n.bus.Publish(Units(n.scroller.Offset()))
	}
}

func (n *Navigator) frame() tea.Cmd {
	gen := n.gen
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return FrameMsg{gen: gen}
	})
}
