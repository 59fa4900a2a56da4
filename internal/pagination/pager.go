// Package pagination bounds the rendered subset of an already-fetched
// list. The full filtered list always stays in memory; only the window
// grows, which deliberately limits the design to small catalogs.
package pagination

// Default window sizes per surface.
const (
	GalleryInitial = 20
	ThemeInitial   = 10
)

// Pager tracks how many items of a list are currently revealed.
type Pager struct {
	initial int
	step    int
	visible int
	filter  string
}

func NewPager(initial, step int) *Pager {
	if initial < 1 {
		initial = 1
	}
	if step < 1 {
		step = initial
	}
	return &Pager{initial: initial, step: step, visible: initial}
}

func (p *Pager) Visible() int {
	return p.visible
}

// LoadMore advances the window by one step, clamped to total.
func (p *Pager) LoadMore(total int) int {
	p.visible += p.step
	if p.visible > total {
		p.visible = total
	}
	if p.visible < p.initial {
		p.visible = p.initial
	}
	return p.visible
}

// SetFilter resets the window to the initial size whenever the active
// filter actually changes.
func (p *Pager) SetFilter(filter string) {
	if filter == p.filter {
		return
	}
	p.filter = filter
	p.visible = p.initial
}

// Window returns the first visible items of the list, clamped to its length.
func Window[T any](items []T, visible int) []T {
	if visible < 0 {
		visible = 0
	}
	if visible > len(items) {
		visible = len(items)
	}
	return items[:visible]
}

// Clamp bounds a requested window size between the initial constant and the
// list length, used by handlers that take the size from a query parameter.
func Clamp(requested, initial, total int) int {
	if requested < initial {
		requested = initial
	}
	if requested > total {
		requested = total
	}
	return requested
}
