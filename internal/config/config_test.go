package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if opts.TabWidth != 4 || !opts.WatchEnabled() || opts.Clipboard != "system" {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	in := Defaults()
	in.Wrap = true
	in.TabWidth = 8
	if err := Save(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !out.Wrap || out.TabWidth != 8 {
		t.Fatalf("round trip lost values: %+v", out)
	}
}

func TestLoadRejectsBadClipboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"clipboard":"carrier-pigeon"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for invalid clipboard value")
	}
}

func TestLoadRepairsTabWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"tab_width":-1}`), 0644); err != nil {
		t.Fatal(err)
	}
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if opts.TabWidth != 4 {
		t.Fatalf("tab width not repaired: %d", opts.TabWidth)
	}
}
