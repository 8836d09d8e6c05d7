package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{
		Version:          "1",
		UnitName:         "SQ-804",
		DefaultInspector: 123456,
	}
	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.UnitName != "SQ-804" {
		t.Errorf("UnitName = %q, want %q", loaded.UnitName, "SQ-804")
	}
	if loaded.DefaultInspector != 123456 {
		t.Errorf("DefaultInspector = %d, want 123456", loaded.DefaultInspector)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Errorf("LoadConfig() on empty dir should fail")
	}
}

func TestResolveChecklistCatalogDefault(t *testing.T) {
	catalog, err := ResolveChecklistCatalog(nil)
	if err != nil {
		t.Fatalf("ResolveChecklistCatalog() error = %v", err)
	}
	if catalog.ItemCount() != 20 {
		t.Errorf("ItemCount() = %d, want 20", catalog.ItemCount())
	}
}

func TestLoadChecklistCatalogOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checklist.yaml")
	yaml := `sections:
  - name: Appearance
    items:
      - Haircut
      - Cleanliness
  - name: Bearing
    items:
      - Posture
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	catalog, err := LoadChecklistCatalog(path)
	if err != nil {
		t.Fatalf("LoadChecklistCatalog() error = %v", err)
	}
	if len(catalog.Sections) != 2 {
		t.Errorf("sections = %d, want 2", len(catalog.Sections))
	}
	if catalog.ItemCount() != 3 {
		t.Errorf("ItemCount() = %d, want 3", catalog.ItemCount())
	}
}

func TestLoadChecklistCatalogEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checklist.yaml")
	if err := os.WriteFile(path, []byte("sections: []\n"), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	if _, err := LoadChecklistCatalog(path); err == nil {
		t.Errorf("LoadChecklistCatalog() on empty catalog should fail")
	}
}
