package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Name
		ok   bool
	}{
		{"collapse", Collapse, true},
		{"  Reset   Layout ", ResetLayout, true},
		{"res", ResetLayout, true},
		{"un", ShowUnread, true},
		{"e", Expand, true},
		{"s", Spreadsheet, true},
		{"q", Quit, true},
		{"", "", false},
		{"x", "", false},
		{"archive", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Parse(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestEnterEmitsCommand(t *testing.T) {
	m := New(60, 20)
	m = typeText(m, "unread")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if got, ok := cmd().(CommandMsg); !ok || Name(got) != ShowUnread {
		t.Errorf("cmd() = %#v", cmd())
	}
	if m.input.Value() != "" {
		t.Error("input should reset after enter")
	}
}

func TestEnterReportsUnknown(t *testing.T) {
	m := New(60, 20)
	m = typeText(m, "fly")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got, ok := cmd().(UnknownMsg); !ok || string(got) != "fly" {
		t.Errorf("cmd() = %#v", cmd())
	}
}

func TestEnterOnEmptyInput(t *testing.T) {
	m := New(60, 20)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("empty input should not emit a command")
	}
}
