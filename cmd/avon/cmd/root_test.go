package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nhle/avon/internal/model"
	"github.com/nhle/avon/internal/store"
)

// writeConfig points the store and log at a temp directory and returns
// the config file path.
func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "avon.db")
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("store:\n  path: %s\nlog:\n  file: %s\n", dbPath, filepath.Join(dir, "avon.log"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path, dbPath
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("avon %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestLayoutShowDefaults(t *testing.T) {
	path, _ := writeConfig(t)

	out := execute(t, "--config", path, "layout", "show")
	for _, want := range []string{"Navigation: 20%", "List:       32%", "Detail:     48%", "Collapsed:  false", "Source:     default", "Stored:     none"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLayoutShowAndReset(t *testing.T) {
	path, dbPath := writeConfig(t)

	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := s.SetPreference(ctx, store.LayoutKey, "[17,33,50]"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPreference(ctx, store.CollapsedKey, "true"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// The rail opens collapsed, so its share moves to the list.
	out := execute(t, "--config", path, "layout", "show")
	for _, want := range []string{
		"Navigation: 4%", "List:       46%", "Detail:     50%", "Collapsed:  true", "Source:     saved",
		store.CollapsedKey + " = true", store.LayoutKey + " = [17,33,50]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out = execute(t, "--config", path, "layout", "reset", "--yes")
	if !strings.Contains(out, "Layout reset.") {
		t.Errorf("reset output:\n%s", out)
	}

	out = execute(t, "--config", path, "layout", "show")
	if !strings.Contains(out, "Navigation: 20%") || !strings.Contains(out, "Source:     default") {
		t.Errorf("layout not reset:\n%s", out)
	}
}

func TestLayoutShowClampsSavedLayout(t *testing.T) {
	path, dbPath := writeConfig(t)

	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetPreference(context.Background(), store.LayoutKey, "[50,25,25]"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	out := execute(t, "--config", path, "layout", "show")
	if !strings.Contains(out, "Navigation: 20%") || strings.Contains(out, "Navigation: 50%") {
		t.Errorf("nav share should be clamped to its maximum:\n%s", out)
	}
	if !strings.Contains(out, store.LayoutKey+" = [50,25,25]") {
		t.Errorf("stored row should be listed verbatim:\n%s", out)
	}
}

func TestConfigPath(t *testing.T) {
	path, _ := writeConfig(t)

	out := execute(t, "--config", path, "config", "path")
	if strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, want %q", out, path)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out := execute(t, "--config", path, "config", "init")
	if !strings.Contains(out, "Wrote "+path) {
		t.Errorf("init output:\n%s", out)
	}

	cfg, err := model.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Layout.NavCollapsedSize != model.DefaultNavCollapsedSize {
		t.Errorf("nav collapsed size = %v", cfg.Layout.NavCollapsedSize)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(written), "mouse: true") || strings.Contains(string(written), "theme") {
		t.Errorf("written config should carry only settings the app reads:\n%s", written)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "warn")
	l.Info("hidden")
	l.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("log output = %q", buf.String())
	}

	buf.Reset()
	newLogger(&buf, "nonsense").Debug("dropped")
	if buf.Len() != 0 {
		t.Errorf("unknown level should default to info, got %q", buf.String())
	}
}
