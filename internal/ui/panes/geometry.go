package panes

import (
	"math"
	"sort"
)

// SetWidth records the rendered width of the group in columns, handles
// included. Mouse positions are interpreted against it.
func (g *Group) SetWidth(width int) {
	g.width = width
}

// Width returns the width last passed to SetWidth.
func (g Group) Width() int {
	return g.width
}

// Widths converts the layout into column widths for the recorded group
// width. Handles take one column each and are not included.
func (g Group) Widths() []int {
	n := len(g.panes)
	widths := make([]int, n)
	content := g.width - (n - 1)
	if content <= 0 {
		return widths
	}

	type frac struct {
		idx  int
		part float64
	}
	fracs := make([]frac, n)
	used := 0
	for i, s := range g.sizes {
		exact := s / 100 * float64(content)
		widths[i] = int(math.Floor(exact))
		used += widths[i]
		fracs[i] = frac{idx: i, part: exact - math.Floor(exact)}
	}

	sort.SliceStable(fracs, func(a, b int) bool { return fracs[a].part > fracs[b].part })
	for i := 0; used < content; i = (i + 1) % n {
		widths[fracs[i].idx]++
		used++
	}

	for i, p := range g.panes {
		for widths[i] < p.MinCols {
			widest := 0
			for j := range widths {
				if widths[j] > widths[widest] {
					widest = j
				}
			}
			if widest == i || widths[widest] <= g.panes[widest].MinCols {
				break
			}
			widths[widest]--
			widths[i]++
		}
	}

	return widths
}

// HandleAt returns the handle occupying column x, or -1.
func (g Group) HandleAt(x int) int {
	col := 0
	widths := g.Widths()
	for i := 0; i < len(widths)-1; i++ {
		col += widths[i]
		if x == col {
			return i
		}
		col++
	}
	return -1
}

// Press starts dragging the handle at column x. It reports whether x
// was on a handle.
func (g *Group) Press(x int) bool {
	handle := g.HandleAt(x)
	if handle < 0 {
		return false
	}
	g.drag = &drag{handle: handle, startX: x, start: g.Sizes()}
	return true
}

// DragTo moves the dragged handle so it follows column x. The layout is
// recomputed from the one at Press, so a drag that returns to its start
// restores it. It reports whether the layout changed.
func (g *Group) DragTo(x int) bool {
	if g.drag == nil {
		return false
	}
	content := g.width - (len(g.panes) - 1)
	if content <= 0 {
		return false
	}

	delta := float64(x-g.drag.startX) * 100 / float64(content)
	next, ok := g.resized(g.drag.start, g.drag.handle, delta)
	if !ok {
		next = append([]float64(nil), g.drag.start...)
	}
	return g.apply(next)
}

// Release ends a drag.
func (g *Group) Release() {
	g.drag = nil
}
