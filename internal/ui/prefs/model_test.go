package prefs

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/nhle/avon/internal/model"
)

func TestParseSizes(t *testing.T) {
	tests := []struct {
		nav, list string
		want      []float64
		wantErr   bool
	}{
		{"20", "32", []float64{20, 32, 48}, false},
		{" 17.5% ", "30", []float64{17.5, 30, 52.5}, false},
		{"abc", "30", nil, true},
		{"20", "-1", nil, true},
		{"60", "60", nil, true},
		{"NaN", "40", nil, true},
		{"20", "+Inf", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseSizes(tt.nav, tt.list)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSizes(%q, %q) error = %v, wantErr %v", tt.nav, tt.list, err, tt.wantErr)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseSizes(%q, %q) mismatch (-want +got):\n%s", tt.nav, tt.list, diff)
		}
	}
}

func TestPrefilledFromCurrentLayout(t *testing.T) {
	m := New(model.LayoutPreferences{PaneSizes: []float64{17.5, 30, 52.5}, NavCollapsed: true}, 80, 24)

	got, err := m.result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	want := model.LayoutPreferences{PaneSizes: []float64{17.5, 30, 52.5}, NavCollapsed: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("prefs mismatch (-want +got):\n%s", diff)
	}
}

func TestBindingsSurviveCopies(t *testing.T) {
	m := New(model.DefaultLayoutPreferences(), 80, 24)
	copied := m
	copied.vals.list = "40"

	got, err := m.result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if got.PaneSizes[model.PaneList] != 40 {
		t.Errorf("list = %v, want 40", got.PaneSizes[model.PaneList])
	}
}

func TestValidation(t *testing.T) {
	if err := validateNav("14"); err == nil {
		t.Error("nav below the minimum should be rejected")
	}
	if err := validateNav("15"); err != nil {
		t.Errorf("validateNav(15) = %v", err)
	}

	m := New(model.DefaultLayoutPreferences(), 80, 24)
	if err := m.validateList("29"); err == nil {
		t.Error("list below the minimum should be rejected")
	}
	m.vals.nav = "20"
	if err := m.validateList("81"); err == nil {
		t.Error("nav plus list above 100 should be rejected")
	}
}

func TestEscCancels(t *testing.T) {
	m := New(model.DefaultLayoutPreferences(), 80, 24)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Errorf("cmd() = %#v", cmd())
	}
}
