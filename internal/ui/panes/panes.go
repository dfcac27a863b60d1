// Package panes implements a horizontal group of resizable panes whose
// sizes are percentages of the group width. It knows nothing about what
// the panes display; callers read Sizes after each successful change.
package panes

import "math"

// epsilon absorbs float noise when comparing percentages.
const epsilon = 1e-6

// Pane declares the bounds of one pane, in percent of the group width.
type Pane struct {
	Min float64
	// Max of zero means unbounded.
	Max float64

	Collapsible   bool
	CollapsedSize float64

	// MinCols is the narrowest the pane may be rendered, in columns.
	MinCols int
}

// drag tracks an in-progress mouse drag on a handle.
type drag struct {
	handle int
	startX int
	start  []float64
}

// Group is an ordered row of panes separated by one-column handles.
type Group struct {
	panes []Pane
	sizes []float64
	width int
	drag  *drag
}

// New returns a group with the given panes and initial layout. The
// layout is normalised into the pane bounds.
func New(panes []Pane, sizes []float64) Group {
	g := Group{panes: panes}
	g.SetLayout(sizes)
	return g
}

// Sizes returns a copy of the current layout.
func (g Group) Sizes() []float64 {
	return append([]float64(nil), g.sizes...)
}

// Size returns the size of pane i.
func (g Group) Size(i int) float64 {
	return g.sizes[i]
}

// IsCollapsed reports whether pane i is collapsible and at its collapsed
// size.
func (g Group) IsCollapsed(i int) bool {
	p := g.panes[i]
	return p.Collapsible && g.sizes[i] <= p.CollapsedSize+epsilon
}

// Dragging reports whether a handle is being dragged.
func (g Group) Dragging() bool {
	return g.drag != nil
}

// SetLayout replaces the layout. Sizes that do not sum to 100 are
// scaled, then every pane is clamped into its bounds and the remainder
// is absorbed by the panes that still have room, last pane first. A
// layout of the wrong length or with a non-finite size is ignored. It
// reports whether the resulting layout differs from the previous one.
func (g *Group) SetLayout(sizes []float64) bool {
	if len(sizes) != len(g.panes) || !finite(sizes) {
		if g.sizes == nil {
			return g.SetLayout(g.even())
		}
		return false
	}

	next := append([]float64(nil), sizes...)

	sum := 0.0
	for _, v := range next {
		sum += v
	}
	if sum <= epsilon {
		next = g.even()
	} else if math.Abs(sum-100) > epsilon {
		for i := range next {
			next[i] = next[i] * 100 / sum
		}
	}

	for i, p := range g.panes {
		if p.Collapsible && next[i] <= p.CollapsedSize+epsilon {
			next[i] = p.CollapsedSize
			continue
		}
		next[i] = p.clamp(next[i])
	}
	g.absorb(next)

	return g.apply(next)
}

// Resize moves handle by delta percent; positive moves it right. Panes
// on the shrinking side give up space nearest-first. A collapsible pane
// pushed below its minimum snaps to its collapsed size, and a collapsed
// pane that is grown snaps open to its minimum. It reports whether the
// layout changed.
func (g *Group) Resize(handle int, delta float64) bool {
	if handle < 0 || handle >= len(g.panes)-1 {
		return false
	}
	next, ok := g.resized(g.sizes, handle, delta)
	if !ok {
		return false
	}
	return g.apply(next)
}

// Collapse shrinks pane i to its collapsed size.
func (g *Group) Collapse(i int) bool {
	if !g.panes[i].Collapsible || g.IsCollapsed(i) {
		return false
	}
	handle, sign := g.handleFor(i)
	return g.Resize(handle, sign*(g.sizes[i]-g.panes[i].CollapsedSize))
}

// Expand opens collapsed pane i to its minimum size.
func (g *Group) Expand(i int) bool {
	if !g.IsCollapsed(i) {
		return false
	}
	handle, sign := g.handleFor(i)
	return g.Resize(handle, -sign*(g.panes[i].Min-g.sizes[i]))
}

// handleFor returns the handle used to resize pane i and the delta sign
// that shrinks it.
func (g Group) handleFor(i int) (int, float64) {
	if i < len(g.panes)-1 {
		return i, -1
	}
	return i - 1, 1
}

// resized computes the layout after moving handle by delta from base.
func (g Group) resized(base []float64, handle int, delta float64) ([]float64, bool) {
	if math.Abs(delta) <= epsilon {
		return nil, false
	}

	next := append([]float64(nil), base...)

	growIdx, shrinkIdx, dir := handle, handle+1, 1
	if delta < 0 {
		growIdx, shrinkIdx, dir = handle+1, handle, -1
		delta = -delta
	}

	// The pane next to the handle on the shrinking side collapses
	// outright once pushed under its minimum.
	adjacent := g.panes[shrinkIdx]
	collapsedAdjacent := adjacent.Collapsible && next[shrinkIdx] <= adjacent.CollapsedSize+epsilon
	if adjacent.Collapsible && !collapsedAdjacent && next[shrinkIdx]-delta < adjacent.Min-epsilon {
		release := next[shrinkIdx] - adjacent.CollapsedSize
		grown := next[growIdx] + release
		if !g.panes[growIdx].fits(grown) {
			return nil, false
		}
		next[shrinkIdx] = adjacent.CollapsedSize
		next[growIdx] = grown
		return round(next), true
	}

	grow := g.panes[growIdx]
	expanding := grow.Collapsible && next[growIdx] <= grow.CollapsedSize+epsilon
	var want float64
	if expanding {
		want = grow.clamp(grow.Min) - next[growIdx]
	} else {
		want = grow.clamp(next[growIdx]+delta) - next[growIdx]
	}
	if want <= epsilon {
		return nil, false
	}

	remaining := want
	for i := shrinkIdx; i >= 0 && i < len(next) && remaining > epsilon; i += dir {
		floor := g.panes[i].Min
		if g.panes[i].Collapsible && next[i] <= g.panes[i].CollapsedSize+epsilon {
			floor = next[i]
		}
		take := math.Min(remaining, next[i]-floor)
		if take <= 0 {
			continue
		}
		next[i] -= take
		remaining -= take
	}

	if remaining > epsilon {
		if expanding {
			return nil, false
		}
		want -= remaining
		if want <= epsilon {
			return nil, false
		}
	}
	next[growIdx] += want

	return round(next), true
}

// absorb spreads any difference between sum(next) and 100 over the panes
// that still have room, last pane first.
func (g Group) absorb(next []float64) {
	diff := 100.0
	for _, v := range next {
		diff -= v
	}
	for i := len(next) - 1; i >= 0 && math.Abs(diff) > epsilon; i-- {
		p := g.panes[i]
		if p.Collapsible && next[i] <= p.CollapsedSize+epsilon {
			continue
		}
		adjusted := p.clamp(next[i] + diff)
		diff -= adjusted - next[i]
		next[i] = adjusted
	}
}

// apply stores next and reports whether it differs from the old layout.
func (g *Group) apply(next []float64) bool {
	if len(g.sizes) == len(next) {
		same := true
		for i := range next {
			if math.Abs(g.sizes[i]-next[i]) > epsilon {
				same = false
				break
			}
		}
		if same {
			return false
		}
	}
	g.sizes = next
	return true
}

// even splits the group equally.
func (g Group) even() []float64 {
	sizes := make([]float64, len(g.panes))
	for i := range sizes {
		sizes[i] = 100 / float64(len(sizes))
	}
	return sizes
}

func (p Pane) clamp(v float64) float64 {
	if v < p.Min {
		v = p.Min
	}
	if p.Max > 0 && v > p.Max {
		v = p.Max
	}
	return v
}

func (p Pane) fits(v float64) bool {
	return v >= p.Min-epsilon && (p.Max == 0 || v <= p.Max+epsilon)
}

// round trims float noise so persisted layouts stay readable.
func round(sizes []float64) []float64 {
	for i, v := range sizes {
		sizes[i] = math.Round(v*1000) / 1000
	}
	return sizes
}

func finite(sizes []float64) bool {
	for _, v := range sizes {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
