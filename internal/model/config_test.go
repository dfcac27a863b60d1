package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if diff := cmp.Diff(defaultAppConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeFile(t, `
store:
  path: /tmp/prefs.db
fixtures:
  dir: /tmp/mail
layout:
  default_sizes: [18, 30, 52]
  default_collapsed: true
  nav_collapsed_size: 6
display:
  mouse: false
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	want := LayoutConfig{DefaultSizes: []float64{18, 30, 52}, DefaultCollapsed: true, NavCollapsedSize: 6}
	if diff := cmp.Diff(want, cfg.Layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
	if cfg.Store.Path != "/tmp/prefs.db" || cfg.Fixtures.Dir != "/tmp/mail" || cfg.Display.Mouse {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level default lost: %q", cfg.Log.Level)
	}
}

func TestLoadConfigIgnoresBadLayout(t *testing.T) {
	path := writeFile(t, `
layout:
  default_sizes: [50, 50]
  nav_collapsed_size: 40
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Layout.DefaultSizes != nil {
		t.Errorf("default sizes = %v, want nil", cfg.Layout.DefaultSizes)
	}
	if cfg.Layout.NavCollapsedSize != DefaultNavCollapsedSize {
		t.Errorf("nav collapsed size = %v", cfg.Layout.NavCollapsedSize)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeFile(t, "layout: [unterminated")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
