package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the application. Zero values are filled in
// from Default when a file is loaded.
type Config struct {
	FPS         int    `yaml:"fps"`
	AssetsDir   string `yaml:"assets_dir,omitempty"`
	CatalogPath string `yaml:"catalog_path,omitempty"`
	CellWidth   int    `yaml:"cell_width"`
	CellHeight  int    `yaml:"cell_height"`
	LogFile     string `yaml:"log_file,omitempty"`
	ShowStats   bool   `yaml:"show_stats"`
	Export      Export `yaml:"export"`

	BuildVersion string `yaml:"-"`
}

// Export configures headless rendering to files.
type Export struct {
	Output       string   `yaml:"output,omitempty"`
	Patterns     []string `yaml:"patterns,omitempty"`
	Frames       int      `yaml:"frames"`
	Width        int      `yaml:"width"`
	Height       int      `yaml:"height"`
	Workers      int      `yaml:"workers"`
	Quality      int      `yaml:"quality"`
	VideoEncoder string   `yaml:"video_encoder,omitempty"`
}

func Default() Config {
	return Config{
		FPS:        60,
		CellWidth:  8,
		CellHeight: 16,
		Export: Export{
			Frames:  240,
			Width:   1280,
			Height:  720,
			Workers: runtime.NumCPU(),
			Quality: 23,
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/patternviz/config.yaml (or the OS equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "patternviz", "config.yaml")
}

// Load reads path over the defaults. A missing file at the default location
// is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Save writes cfg as YAML.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("cell size must be positive, got %dx%d", c.CellWidth, c.CellHeight)
	}
	return nil
}

// ValidateExport checks the export block before a headless run.
func (c Config) ValidateExport() error {
	e := c.Export
	switch {
	case e.Output == "":
		return errors.New("export output path is empty")
	case e.Frames <= 0:
		return fmt.Errorf("frames must be positive, got %d", e.Frames)
	case e.Width <= 0 || e.Height <= 0:
		return fmt.Errorf("export size must be positive, got %dx%d", e.Width, e.Height)
	case e.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", e.Workers)
	}
	return nil
}
