package nav

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/nhle/avon/internal/model"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func groups() [][]model.NavLink {
	return [][]model.NavLink{model.PrimaryLinks(), model.SecondaryLinks()}
}

func lines(s string) []string {
	return strings.Split(s, "\n")
}

func TestExpandedShowsTitlesAndBadges(t *testing.T) {
	out := View(Props{Groups: groups(), Width: 24, Height: 20, Hover: -1})

	rows := lines(out)
	if !strings.Contains(rows[0], "Inbox") || !strings.Contains(rows[0], "128") {
		t.Errorf("inbox row = %q", rows[0])
	}
	if !strings.HasSuffix(strings.TrimRight(rows[0], " "), "128") {
		t.Errorf("badge should be right-aligned: %q", rows[0])
	}

	accepted := rows[2]
	if !strings.Contains(accepted, "Accepted") {
		t.Fatalf("row 2 = %q", accepted)
	}
	if strings.ContainsAny(accepted, "0123456789") {
		t.Errorf("empty label should render no badge: %q", accepted)
	}

	// 7 primary links, separator, 5 secondary links.
	if !strings.Contains(rows[7], "─") {
		t.Errorf("row 7 should be the group separator: %q", rows[7])
	}
	if !strings.Contains(rows[8], "Drafts") {
		t.Errorf("row 8 = %q", rows[8])
	}
}

func TestRowsFitWidth(t *testing.T) {
	for _, collapsed := range []bool{false, true} {
		width := 24
		if collapsed {
			width = 4
		}
		out := View(Props{Groups: groups(), Collapsed: collapsed, Width: width, Height: 20, Hover: 3})

		for i, row := range lines(out) {
			if w := lipgloss.Width(row); w != width {
				t.Errorf("collapsed=%v row %d width = %d, want %d: %q", collapsed, i, w, width, row)
			}
		}
		if n := len(lines(out)); n != 20 {
			t.Errorf("collapsed=%v rendered %d lines, want 20", collapsed, n)
		}
	}
}

func TestCollapsedIsIconOnly(t *testing.T) {
	out := View(Props{Groups: groups(), Collapsed: true, Width: 4, Height: 13, Hover: -1})

	if strings.Contains(out, "Inbox") || strings.Contains(out, "128") {
		t.Errorf("collapsed rail should not show titles or counts:\n%s", out)
	}
	if !strings.Contains(lines(out)[0], Glyph(model.IconInbox)) {
		t.Errorf("first row should show the inbox glyph: %q", lines(out)[0])
	}
}

func TestNarrowExpandedTruncatesTitle(t *testing.T) {
	out := View(Props{Groups: groups(), Width: 12, Height: 13, Hover: -1})

	row := lines(out)[1] // Action Required, badge 9
	if !strings.Contains(row, "…") {
		t.Errorf("long title should be truncated: %q", row)
	}
	if !strings.Contains(row, "9") {
		t.Errorf("badge should survive truncation: %q", row)
	}
}

func TestTooltip(t *testing.T) {
	inbox, _ := At(groups(), 0)
	if got := Tooltip(inbox); got != "Inbox (128)" {
		t.Errorf("Tooltip(inbox) = %q", got)
	}

	sent, _ := At(groups(), 8)
	if got := Tooltip(sent); got != "Sent" {
		t.Errorf("Tooltip(sent) = %q", got)
	}
}

func TestAtAndCount(t *testing.T) {
	g := groups()

	if n := Count(g); n != 12 {
		t.Errorf("Count = %d, want 12", n)
	}
	if l, ok := At(g, 7); !ok || l.Title != "Drafts" {
		t.Errorf("At(7) = %v, %v", l.Title, ok)
	}
	if _, ok := At(g, 12); ok {
		t.Error("At(12) should be out of range")
	}
	if _, ok := At(g, -1); ok {
		t.Error("At(-1) should be out of range")
	}
}

func TestLinkAt(t *testing.T) {
	g := groups()

	tests := []struct {
		row  int
		want int
		ok   bool
	}{
		{0, 0, true},
		{6, 6, true},
		{7, 0, false}, // separator
		{8, 7, true},
		{12, 11, true},
		{13, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := LinkAt(g, tt.row)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("LinkAt(%d) = %d, %v; want %d, %v", tt.row, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUnknownIconFallsBack(t *testing.T) {
	if got := Glyph("nope"); got != "•" {
		t.Errorf("Glyph(unknown) = %q", got)
	}
}
