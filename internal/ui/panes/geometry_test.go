package panes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWidths(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})
	g.SetWidth(102)

	if diff := cmp.Diff([]int{20, 32, 48}, g.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

func TestWidthsDistributeRemainder(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})
	g.SetWidth(82) // 80 content columns

	widths := g.Widths()
	total := 0
	for _, w := range widths {
		total += w
	}
	if total != 80 {
		t.Errorf("widths %v sum to %d, want 80", widths, total)
	}
}

func TestWidthsHonourMinCols(t *testing.T) {
	g := New(mailPanes(), []float64{4, 48, 48})
	g.SetWidth(52)

	if diff := cmp.Diff([]int{3, 23, 24}, g.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

func TestWidthsTooNarrow(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})
	g.SetWidth(1)

	if diff := cmp.Diff([]int{0, 0, 0}, g.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleAt(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})
	g.SetWidth(102)

	tests := map[int]int{0: -1, 19: -1, 20: 0, 21: -1, 53: 1, 54: -1, 101: -1}
	for x, want := range tests {
		if got := g.HandleAt(x); got != want {
			t.Errorf("HandleAt(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestMouseDrag(t *testing.T) {
	g := New(mailPanes(), []float64{20, 32, 48})
	g.SetWidth(102)

	if g.Press(5) {
		t.Fatal("press inside a pane should not start a drag")
	}
	if !g.Press(20) {
		t.Fatal("press on the nav handle should start a drag")
	}
	if !g.Dragging() {
		t.Fatal("Dragging() = false after Press")
	}

	if !g.DragTo(15) {
		t.Fatal("drag left should change the layout")
	}
	if diff := cmp.Diff([]float64{15, 37, 48}, g.Sizes(), approx); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}

	g.DragTo(14)
	if !g.IsCollapsed(0) {
		t.Errorf("dragging past the minimum should collapse nav: %v", g.Sizes())
	}

	g.DragTo(20)
	if diff := cmp.Diff([]float64{20, 32, 48}, g.Sizes(), approx); diff != "" {
		t.Errorf("returning to the start should restore the layout (-want +got):\n%s", diff)
	}

	g.Release()
	if g.Dragging() {
		t.Error("Dragging() = true after Release")
	}
	if g.DragTo(40) {
		t.Error("DragTo without a drag should be a no-op")
	}
}
