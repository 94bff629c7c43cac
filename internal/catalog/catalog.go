// Package catalog is the read-only table of design patterns shown by the
// application: name, category, reference link and a sample implementation.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed patterns.yaml
var defaultCatalog []byte

var ErrNotFound = errors.New("pattern not found")

// Category is one of the three fixed pattern groups.
type Category string

const (
	Creational Category = "Creational"
	Structural Category = "Structural"
	Behavioral Category = "Behavioral"
)

// Categories lists the categories in display order.
func Categories() []Category {
	return []Category{Creational, Structural, Behavioral}
}

func (c Category) valid() bool {
	for _, x := range Categories() {
		if c == x {
			return true
		}
	}
	return false
}

// Pattern is one catalog record.
type Pattern struct {
	Name      string   `yaml:"name"`
	Category  Category `yaml:"category"`
	Reference string   `yaml:"reference,omitempty"`
	Summary   string   `yaml:"summary,omitempty"`
	Classes   []string `yaml:"classes,omitempty"`
	Code      string   `yaml:"code,omitempty"`
}

// Catalog is the full pattern table in display order.
type Catalog struct {
	Version  string    `yaml:"version"`
	Patterns []Pattern `yaml:"patterns"`
}

// Load parses the catalog compiled into the binary.
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Read reads a catalog from a YAML file.
func Read(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Write stores the catalog as YAML.
func Write(c *Catalog, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Patterns))
	for i, p := range c.Patterns {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if key == "" {
			return fmt.Errorf("catalog: pattern %d has no name", i)
		}
		if seen[key] {
			return fmt.Errorf("catalog: duplicate pattern %q", p.Name)
		}
		if !p.Category.valid() {
			return fmt.Errorf("catalog: pattern %q has unknown category %q", p.Name, p.Category)
		}
		seen[key] = true
	}
	return nil
}

// Get finds a pattern by name, ignoring case.
func (c *Catalog) Get(name string) (Pattern, error) {
	for _, p := range c.Patterns {
		if strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// ByCategory returns the names in cat, in catalog order.
func (c *Catalog) ByCategory(cat Category) []string {
	var names []string
	for _, p := range c.Patterns {
		if p.Category == cat {
			names = append(names, p.Name)
		}
	}
	return names
}
