package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/cadet-tracker/internal/core/inspection"
)

// catalogFile is the YAML shape of a checklist-catalog override. A unit
// whose published checklist differs from the default can replace it without
// recompiling.
type catalogFile struct {
	Sections []struct {
		Name  string   `yaml:"name"`
		Items []string `yaml:"items"`
	} `yaml:"sections"`
}

// LoadChecklistCatalog reads a checklist catalog from a YAML file.
func LoadChecklistCatalog(path string) (inspection.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return inspection.Catalog{}, fmt.Errorf("failed to read checklist catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return inspection.Catalog{}, fmt.Errorf("failed to parse checklist catalog: %w", err)
	}

	var catalog inspection.Catalog
	for _, s := range file.Sections {
		catalog.Sections = append(catalog.Sections, inspection.Section{
			Name:  s.Name,
			Items: s.Items,
		})
	}
	if catalog.ItemCount() == 0 {
		return inspection.Catalog{}, fmt.Errorf("checklist catalog %s has no items", path)
	}

	return catalog, nil
}

// ResolveChecklistCatalog returns the catalog from the configured override
// file, or the published default when no override is configured.
func ResolveChecklistCatalog(cfg *Config) (inspection.Catalog, error) {
	if cfg == nil || cfg.ChecklistPath == "" {
		return inspection.DefaultCatalog(), nil
	}
	return LoadChecklistCatalog(cfg.ChecklistPath)
}
