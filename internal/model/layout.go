package model

// Pane indexes within the mailbox pane group.
const (
	PaneNav = iota
	PaneList
	PaneDetail
	PaneCount
)

// Static pane bounds, in percent of the group width.
const (
	NavMinSize  = 15.0
	NavMaxSize  = 20.0
	ListMinSize = 30.0

	// DefaultNavCollapsedSize is the width share of the nav rail when
	// collapsed to icons.
	DefaultNavCollapsedSize = 4.0
)

// DefaultPaneSizes is the nav/list/detail split used when no layout has
// been persisted.
var DefaultPaneSizes = []float64{20, 32, 48}

// LayoutPreferences is the persisted geometry of the mailbox view.
type LayoutPreferences struct {
	// PaneSizes always holds exactly PaneCount percentages.
	PaneSizes    []float64
	NavCollapsed bool
}

// DefaultLayoutPreferences returns the built-in layout.
func DefaultLayoutPreferences() LayoutPreferences {
	sizes := make([]float64, len(DefaultPaneSizes))
	copy(sizes, DefaultPaneSizes)
	return LayoutPreferences{PaneSizes: sizes}
}
