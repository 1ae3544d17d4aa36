package ui

// FocusRing tracks keyboard focus across the page's controls.
// An empty Current means nothing is focused.
type FocusRing struct {
	Current  string   // ID of the focused control
	Order    []string // Tab order
	OnChange func(from, to string)
}

// SetOrder replaces the tab order. Focus is kept if the current control
// is still present, otherwise it is cleared.
func (f *FocusRing) SetOrder(order []string) {
	f.Order = order
	if f.Current != "" && !f.contains(f.Current) {
		f.set("")
	}
}

// Next advances focus to the next control in order, wrapping around.
// With nothing focused it moves to the first control.
func (f *FocusRing) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index(f.Current)
	f.set(f.Order[(idx+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous control, wrapping around.
func (f *FocusRing) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index(f.Current) - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	f.set(f.Order[idx])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in the order.
func (f *FocusRing) SetFocus(id string) bool {
	if !f.contains(id) {
		return false
	}
	f.set(id)
	return true
}

// Clear drops focus.
func (f *FocusRing) Clear() {
	f.set("")
}

func (f *FocusRing) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

func (f *FocusRing) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusRing) contains(id string) bool {
	return f.index(id) >= 0
}
