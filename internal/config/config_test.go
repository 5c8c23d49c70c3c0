package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SectionLabel != "todos" {
		t.Errorf("SectionLabel = %q, want %q", cfg.SectionLabel, "todos")
	}
	if !cfg.AutoEmbedEnabled() {
		t.Error("AutoEmbedEnabled() = false by default, want true")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SectionLabel != "todos" {
		t.Errorf("SectionLabel = %q, want default %q", cfg.SectionLabel, "todos")
	}
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `{"section_label": "reminders", "auto_embed": false, "vault_dir": "/tmp/notes"}`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SectionLabel != "reminders" {
		t.Errorf("SectionLabel = %q, want %q", cfg.SectionLabel, "reminders")
	}
	if cfg.AutoEmbedEnabled() {
		t.Error("AutoEmbedEnabled() = true, want false")
	}
	if cfg.VaultDir != "/tmp/notes" {
		t.Errorf("VaultDir = %q, want %q", cfg.VaultDir, "/tmp/notes")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte("{not json"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Error("Load succeeded on invalid JSON, want error")
	}
}

func TestMerge_OverlayWins(t *testing.T) {
	disabled := false
	base := &Config{
		SectionLabel:   "todos",
		VaultDir:       "/base",
		DBMaxOpenConns: 2,
	}
	overlay := &Config{
		SectionLabel: "tasks",
		AutoEmbed:    &disabled,
	}

	merged := Merge(base, overlay)

	if merged.SectionLabel != "tasks" {
		t.Errorf("SectionLabel = %q, want %q", merged.SectionLabel, "tasks")
	}
	if merged.VaultDir != "/base" {
		t.Errorf("VaultDir = %q, want base value %q", merged.VaultDir, "/base")
	}
	if merged.DBMaxOpenConns != 2 {
		t.Errorf("DBMaxOpenConns = %d, want 2", merged.DBMaxOpenConns)
	}
	if merged.AutoEmbedEnabled() {
		t.Error("AutoEmbedEnabled() = true, overlay should win")
	}
}

func TestMerge_BaseBoolSurvives(t *testing.T) {
	disabled := false
	base := &Config{AutoEmbed: &disabled}
	overlay := &Config{}

	merged := Merge(base, overlay)
	if merged.AutoEmbedEnabled() {
		t.Error("AutoEmbedEnabled() = true, base false should survive empty overlay")
	}
}

func TestMerge_DisabledToolsDeduplicated(t *testing.T) {
	base := &Config{DisabledTools: []string{"note_sync", "reminder_remove"}}
	overlay := &Config{DisabledTools: []string{" note_sync ", "reminder_add"}}

	merged := Merge(base, overlay)

	want := []string{"note_sync", "reminder_remove", "reminder_add"}
	if len(merged.DisabledTools) != len(want) {
		t.Fatalf("DisabledTools = %v, want %v", merged.DisabledTools, want)
	}
	for i, tool := range want {
		if merged.DisabledTools[i] != tool {
			t.Errorf("DisabledTools[%d] = %q, want %q", i, merged.DisabledTools[i], tool)
		}
	}
}

func TestLoadWithRepo(t *testing.T) {
	globalDir := t.TempDir()
	repoRoot := t.TempDir()

	global := `{"section_label": "todos", "vault_dir": "/global/notes"}`
	if err := os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(global), 0600); err != nil {
		t.Fatalf("write global config: %v", err)
	}

	repoCfgDir := filepath.Join(repoRoot, ".tickmark")
	if err := os.MkdirAll(repoCfgDir, 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	repo := `{"vault_dir": "/repo/notes"}`
	if err := os.WriteFile(filepath.Join(repoCfgDir, "config.json"), []byte(repo), 0600); err != nil {
		t.Fatalf("write repo config: %v", err)
	}

	// Start from a nested directory; the walk should find repoRoot/.tickmark
	nested := filepath.Join(repoRoot, "a", "b")
	if err := os.MkdirAll(nested, 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, err := LoadWithRepo(globalDir, nested)
	if err != nil {
		t.Fatalf("LoadWithRepo failed: %v", err)
	}

	if cfg.VaultDir != "/repo/notes" {
		t.Errorf("VaultDir = %q, want repo override %q", cfg.VaultDir, "/repo/notes")
	}
	if cfg.SectionLabel != "todos" {
		t.Errorf("SectionLabel = %q, want %q", cfg.SectionLabel, "todos")
	}
}

func TestFindRepoConfig_NotFound(t *testing.T) {
	if path := FindRepoConfig(t.TempDir()); path != "" {
		t.Errorf("FindRepoConfig = %q, want empty", path)
	}
}
