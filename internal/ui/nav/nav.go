// Package nav renders the category navigation rail. It holds no state;
// the caller supplies the links, density and cursor on every render.
package nav

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/nhle/avon/internal/model"
	"github.com/nhle/avon/internal/theme"
)

var glyphs = map[model.Icon]string{
	model.IconInbox:          "✉",
	model.IconActionRequired: "⚠",
	model.IconAccepted:       "✓",
	model.IconRejected:       "✗",
	model.IconConfirmation:   "✔",
	model.IconOthers:         "≡",
	model.IconUnknown:        "?",
	model.IconDrafts:         "✎",
	model.IconSent:           "➤",
	model.IconJunk:           "⊘",
	model.IconTrash:          "⌫",
	model.IconArchive:        "▤",
}

// Props is everything needed to draw the rail.
type Props struct {
	Groups    [][]model.NavLink
	Collapsed bool
	Width     int
	Height    int
	// Hover is the flat index of the link under the cursor, or -1.
	Hover int
}

// Glyph returns the single-cell symbol drawn for icon.
func Glyph(icon model.Icon) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return "•"
}

// Tooltip is the accessible text for a link: its title and, when
// present, its count.
func Tooltip(l model.NavLink) string {
	if l.Label == "" {
		return l.Title
	}
	return l.Title + " (" + l.Label + ")"
}

// Count returns the number of links across groups.
func Count(groups [][]model.NavLink) int {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	return n
}

// At returns the link at flat index i.
func At(groups [][]model.NavLink, i int) (model.NavLink, bool) {
	if i < 0 {
		return model.NavLink{}, false
	}
	for _, g := range groups {
		if i < len(g) {
			return g[i], true
		}
		i -= len(g)
	}
	return model.NavLink{}, false
}

// LinkAt maps a rendered row to a flat link index. Separator rows map to
// no link.
func LinkAt(groups [][]model.NavLink, row int) (int, bool) {
	if row < 0 {
		return 0, false
	}
	idx := 0
	for gi, g := range groups {
		if gi > 0 {
			if row == 0 {
				return 0, false
			}
			row--
		}
		if row < len(g) {
			return idx + row, true
		}
		row -= len(g)
		idx += len(g)
	}
	return 0, false
}

// View draws the rail, one line per link, groups separated by a rule.
func View(p Props) string {
	if p.Width <= 0 {
		return ""
	}

	var lines []string
	idx := 0
	for gi, group := range p.Groups {
		if gi > 0 {
			lines = append(lines, theme.HandleStyle.Render(strings.Repeat("─", p.Width)))
		}
		for _, link := range group {
			if p.Collapsed {
				lines = append(lines, collapsedRow(link, p.Width, idx == p.Hover))
			} else {
				lines = append(lines, expandedRow(link, p.Width, idx == p.Hover))
			}
			idx++
		}
	}

	return lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		MaxHeight(p.Height).
		Render(strings.Join(lines, "\n"))
}

// expandedRow renders icon, title and a right-aligned badge.
func expandedRow(l model.NavLink, width int, hover bool) string {
	style := theme.NavGhostStyle
	if l.Variant == model.VariantDefault {
		style = theme.NavDefaultStyle
	}
	if hover {
		style = style.Foreground(theme.NavHoverStyle.GetForeground()).Bold(true)
	}

	left := " " + Glyph(l.Icon) + " "
	badge := ""
	if l.Label != "" {
		badge = " " + l.Label + " "
	}

	avail := width - runewidth.StringWidth(left) - runewidth.StringWidth(badge)
	if avail < 1 {
		// Too narrow for a title; keep the icon visible.
		return style.Width(width).Render(runewidth.Truncate(left, width, ""))
	}

	title := runewidth.Truncate(l.Title, avail, "…")
	gap := avail - runewidth.StringWidth(title)

	row := left + title + strings.Repeat(" ", gap)
	if badge != "" {
		return style.Render(row) + theme.BadgeStyle.Background(style.GetBackground()).Render(badge)
	}
	return style.Render(row)
}

// collapsedRow renders the icon alone, centred. The count is available
// through Tooltip rather than inline.
func collapsedRow(l model.NavLink, width int, hover bool) string {
	style := theme.NavGhostStyle
	if l.Variant == model.VariantDefault {
		style = theme.NavDefaultStyle
	}
	if hover {
		style = style.Foreground(theme.NavHoverStyle.GetForeground()).Bold(true)
	}
	return style.Width(width).Align(lipgloss.Center).Render(Glyph(l.Icon))
}
