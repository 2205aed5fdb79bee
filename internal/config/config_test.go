package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, expected defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "default_lead: 5\ndefault_trail: 7\nfps: 30\nautosave: true\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultLead != 5 || cfg.DefaultTrail != 7 {
		t.Errorf("padding [%v,%v]", cfg.DefaultLead, cfg.DefaultTrail)
	}
	if cfg.FPS != 30 || !cfg.Autosave {
		t.Errorf("fps=%d autosave=%v", cfg.FPS, cfg.Autosave)
	}
	// Unset fields keep their defaults.
	if cfg.RecentLimit != Default().RecentLimit {
		t.Errorf("recent_limit %d", cfg.RecentLimit)
	}
}

func TestLoadSanitizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "default_lead: -3\nfps: 0\nrecent_limit: -1\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultLead != 0 {
		t.Errorf("default_lead %v", cfg.DefaultLead)
	}
	if cfg.FPS != Default().FPS || cfg.RecentLimit != Default().RecentLimit {
		t.Errorf("fps=%d recent_limit=%d", cfg.FPS, cfg.RecentLimit)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("defaults: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
