// ABOUTME: Page navigation bounded to [1, count]; every accepted move requests a render
// ABOUTME: Out-of-range moves are silent no-ops

package viewer

// Navigator owns the current page.
type Navigator struct {
	current int
	count   int
	render  func(page int)
}

// NewNavigator starts at page 1 of count pages. It does not request a
// render; the session does that once the document is open.
func NewNavigator(count int, render func(page int)) *Navigator {
	if render == nil {
		render = func(int) {}
	}
	return &Navigator{current: 1, count: count, render: render}
}

// GoToPage moves by delta pages. Returns false and changes nothing when the
// target falls outside the document.
func (n *Navigator) GoToPage(delta int) bool {
	return n.set(n.current + delta)
}

// First jumps to page 1.
func (n *Navigator) First() bool { return n.set(1) }

// Last jumps to the final page.
func (n *Navigator) Last() bool { return n.set(n.count) }

func (n *Navigator) set(page int) bool {
	if page < 1 || page > n.count || page == n.current {
		return false
	}
	n.current = page
	n.render(page)
	return true
}

// Current returns the current page.
func (n *Navigator) Current() int { return n.current }

// Count returns the page count.
func (n *Navigator) Count() int { return n.count }
