// Package scroll moves the page viewport to named anchors and lets
// components observe the resulting scroll offset.
//
// Offsets on the bus are in scroll units rather than rows: one terminal
// row is UnitsPerRow units, so thresholds written for a pixel-based page
// keep their meaning.
package scroll

// UnitsPerRow converts a row offset into scroll units.
const UnitsPerRow = 16

// Units returns the scroll-unit offset for a row offset.
func Units(row int) int { return row * UnitsPerRow }

// Listener receives the current offset in scroll units.
type Listener func(units int)

type subscription struct {
	id int
	fn Listener
}

// Bus fans scroll offsets out to listeners. It lives on the UI event loop
// and is not safe for concurrent use.
type Bus struct {
	nextID int
	subs   []subscription
	last   int
}

// Subscribe registers fn and returns a function that removes it.
// The release function is idempotent.
func (b *Bus) Subscribe(fn Listener) (release func()) {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	return func() { b.remove(id) }
}

func (b *Bus) remove(id int) {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers units to every listener in subscription order.
func (b *Bus) Publish(units int) {
	b.last = units
	for _, s := range append([]subscription(nil), b.subs...) {
		s.fn(units)
	}
}

// Last returns the most recently published offset.
func (b *Bus) Last() int { return b.last }

// Len returns the number of registered listeners.
func (b *Bus) Len() int { return len(b.subs) }
