package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

var tabs = []string{"Mailbox", "Job Tracker", "Spreadsheet"}

func TestContentHeight(t *testing.T) {
	if got := NewLayout(80, 24).ContentHeight(); got != 22 {
		t.Errorf("ContentHeight = %d, want 22", got)
	}
	if got := NewLayout(80, 1).ContentHeight(); got != 0 {
		t.Errorf("ContentHeight = %d on a one-line terminal", got)
	}
}

func TestHeaderPlacesTabsRight(t *testing.T) {
	l := NewLayout(80, 24)
	header := l.RenderHeader("avon", tabs, 0)

	if w := lipgloss.Width(header); w != 80 {
		t.Errorf("header width = %d, want 80", w)
	}
	if !strings.HasPrefix(header, " avon ") {
		t.Errorf("header = %q", header)
	}
	if !strings.HasSuffix(header, " Spreadsheet ") {
		t.Errorf("header = %q", header)
	}
}

func TestTabAt(t *testing.T) {
	l := NewLayout(80, 24)
	// Tabs take 9 + 13 + 13 = 35 columns ending at column 79.
	tests := map[int]int{44: -1, 45: 0, 53: 0, 54: 1, 66: 1, 67: 2, 79: 2}
	for x, want := range tests {
		if got := l.TabAt(tabs, x); got != want {
			t.Errorf("TabAt(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestStatusBarWidth(t *testing.T) {
	l := NewLayout(60, 24)
	bar := l.RenderStatusBar("? help", "layout reset")

	if w := lipgloss.Width(bar); w != 60 {
		t.Errorf("status bar width = %d, want 60", w)
	}
	if !strings.Contains(bar, "layout reset") {
		t.Errorf("status bar = %q", bar)
	}
}

func TestStatusBarKeepsMessageWhenHintsOverflow(t *testing.T) {
	hints := "enter open | tab all/unread | h/l focus | [ nav | < > resize | = reset | q quit | ? help"
	for _, width := range []int{40, 80, 102} {
		l := NewLayout(width, 24)
		bar := l.RenderStatusBar(hints, "unknown command: fly")

		if !strings.Contains(bar, "unknown command: fly") {
			t.Errorf("width %d: message clipped: %q", width, bar)
		}
		if w := lipgloss.Width(bar); w != width {
			t.Errorf("width %d: status bar width = %d", width, w)
		}
		if !strings.HasPrefix(strings.TrimSpace(bar), "enter") {
			t.Errorf("width %d: hints should lead: %q", width, bar)
		}
	}
}
