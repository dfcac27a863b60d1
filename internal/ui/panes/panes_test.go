package panes

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 0.001)

func mailPanes() []Pane {
	return []Pane{
		{Min: 15, Max: 20, Collapsible: true, CollapsedSize: 4, MinCols: 3},
		{Min: 30},
		{},
	}
}

func TestNewKeepsValidLayout(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})

	if diff := cmp.Diff([]float64{20, 32, 48}, g.Sizes(), approx); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
	if g.IsCollapsed(0) {
		t.Error("nav should start expanded")
	}
}

func TestSetLayoutClampsIntoBounds(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"nav too wide", []float64{40, 30, 30}, []float64{20, 30, 50}},
		{"list too narrow", []float64{20, 10, 70}, []float64{20, 30, 50}},
		{"collapsed nav", []float64{4, 40, 56}, []float64{4, 40, 56}},
		{"between collapsed and min", []float64{10, 40, 50}, []float64{15, 40, 45}},
		{"not summing to 100", []float64{10, 16, 24}, []float64{20, 32, 48}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(mailPanes(), tt.in)
			if diff := cmp.Diff(tt.want, g.Sizes(), approx); diff != "" {
				t.Errorf("sizes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetLayoutIgnoresWrongLength(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})

	if g.SetLayout([]float64{50, 50}) {
		t.Error("SetLayout with two sizes reported a change")
	}
	if diff := cmp.Diff([]float64{20, 32, 48}, g.Sizes(), approx); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestSetLayoutIgnoresNonFinite(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})

	for _, in := range [][]float64{
		{math.NaN(), 40, math.NaN()},
		{20, math.Inf(1), 48},
		{math.Inf(-1), 40, 60},
	} {
		if g.SetLayout(in) {
			t.Errorf("SetLayout(%v) reported a change", in)
		}
	}
	if diff := cmp.Diff([]float64{20, 32, 48}, g.Sizes(), approx); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestNewWithUnusableLayoutStaysInBounds(t *testing.T) {
	g := New(mailPanes(), []float64{math.NaN(), 40, 60})

	sizes := g.Sizes()
	if sizes[0] < 15 || sizes[0] > 20 || sizes[1] < 30 {
		t.Errorf("fallback layout %v violates pane bounds", sizes)
	}
	sum := sizes[0] + sizes[1] + sizes[2]
	if math.Abs(sum-100) > 0.001 {
		t.Errorf("fallback layout %v sums to %v", sizes, sum)
	}
}

func TestResizeWithinBounds(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})

	if !g.Resize(1, 8) {
		t.Fatal("moving the list/detail handle right should change the layout")
	}
	if diff := cmp.Diff([]float64{20, 40, 40}, g.Sizes(), approx); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestResizeStopsAtMax(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})

	if g.Resize(0, 5) {
		t.Error("nav is already at its maximum")
	}
}

func TestResizeCascadesAcrossPanes(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})

	// Growing detail by 10 can only take 2 from the list before it hits
	// its minimum; the rest comes from nav down to its own minimum.
	g.Resize(1, -10)

	if diff := cmp.Diff([]float64{15, 30, 55}, g.Sizes(), approx); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestShrinkingNavBelowMinCollapses(t *testing.T) {
	g := New(mailPanes(), []float64{15, 32, 53})

	if !g.Resize(0, -1) {
		t.Fatal("expected a change")
	}
	if !g.IsCollapsed(0) {
		t.Fatalf("nav not collapsed: %v", g.Sizes())
	}
	if diff := cmp.Diff([]float64{4, 43, 53}, g.Sizes(), approx); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestGrowingCollapsedNavSnapsToMin(t *testing.T) {
	g := New(mailPanes(), []float64{4, 43, 53})

	if !g.Resize(0, 1) {
		t.Fatal("expected a change")
	}
	if g.IsCollapsed(0) {
		t.Fatal("nav still collapsed")
	}
	if diff := cmp.Diff([]float64{15, 32, 53}, g.Sizes(), approx); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestCollapseAndExpand(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})

	if !g.Collapse(0) {
		t.Fatal("Collapse reported no change")
	}
	if diff := cmp.Diff([]float64{4, 48, 48}, g.Sizes(), approx); diff != "" {
		t.Errorf("collapsed sizes mismatch (-want +got):\n%s", diff)
	}
	if g.Collapse(0) {
		t.Error("collapsing twice reported a change")
	}

	if !g.Expand(0) {
		t.Fatal("Expand reported no change")
	}
	if diff := cmp.Diff([]float64{15, 37, 48}, g.Sizes(), approx); diff != "" {
		t.Errorf("expanded sizes mismatch (-want +got):\n%s", diff)
	}
	if g.Expand(0) {
		t.Error("expanding an open pane reported a change")
	}
}

func TestCollapseNonCollapsible(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})

	if g.Collapse(1) {
		t.Error("list pane is not collapsible")
	}
}

func TestSizesIsACopy(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})

	s := g.Sizes()
	s[0] = 99
	if g.Size(0) != 20 {
		t.Error("mutating Sizes() leaked into the group")
	}
}

func TestSizesAlwaysSumTo100(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})

	moves := []struct {
		handle int
		delta  float64
	}{
		{0, -3}, {1, 7.5}, {0, -20}, {1, -40}, {0, 2}, {1, 13.3}, {0, 1},
	}
	for _, mv := range moves {
		g.Resize(mv.handle, mv.delta)

		sizes := g.Sizes()
		if len(sizes) != 3 {
			t.Fatalf("len(sizes) = %d", len(sizes))
		}
		sum := 0.0
		for _, v := range sizes {
			sum += v
		}
		if sum < 99.99 || sum > 100.01 {
			t.Errorf("after %+v sizes %v sum to %v", mv, sizes, sum)
		}
		if g.Size(1) < 30-0.001 {
			t.Errorf("list below minimum: %v", sizes)
		}
	}
}
