// Package config manages bomcheck configuration and the .bomcheck directory
// structure. It handles loading, saving, and initializing the workspace
// configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	BomcheckDir  = ".bomcheck"
	ConfigFile   = "config"
	DatabaseFile = "bomcheck.db"
)

// Config represents the bomcheck workspace configuration
type Config struct {
	ServiceURL  string  `toml:"service_url"`
	DatabaseKey string  `toml:"database_key"`
	Username    string  `toml:"username"`
	Password    string  `toml:"password"`
	RateLimit   float64 `toml:"rate_limit"` // requests per second, 0 disables

	// Optional table-name overrides for non-standard databases
	MaterialUniverseTable string `toml:"material_universe_table,omitempty"`
	InHouseMaterialsTable string `toml:"in_house_materials_table,omitempty"`
	SpecificationsTable   string `toml:"specifications_table,omitempty"`
	ProductsAndPartsTable string `toml:"products_and_parts_table,omitempty"`
	SubstancesTable       string `toml:"substances_table,omitempty"`
	CoatingsTable         string `toml:"coatings_table,omitempty"`

	path string // path to .bomcheck directory
}

// FindRoot finds the .bomcheck directory by walking up from current directory
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		cfgPath := filepath.Join(dir, BomcheckDir)
		if info, err := os.Stat(cfgPath); err == nil && info.IsDir() {
			return cfgPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not a bomcheck workspace (or any parent up to root)")
		}
		dir = parent
	}
}

// Load loads the configuration from the .bomcheck directory
func Load() (*Config, error) {
	cfgDir, err := FindRoot()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(cfgDir, ConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.path = cfgDir
	return &cfg, nil
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configPath := filepath.Join(c.path, ConfigFile)
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0600)
}

// Path returns the path to the .bomcheck directory
func (c *Config) Path() string {
	return c.path
}

// DatabasePath returns the path to the query history database
func (c *Config) DatabasePath() string {
	return filepath.Join(c.path, DatabaseFile)
}

// HasTableOverrides reports whether any table-name override is set.
func (c *Config) HasTableOverrides() bool {
	return c.MaterialUniverseTable != "" ||
		c.InHouseMaterialsTable != "" ||
		c.SpecificationsTable != "" ||
		c.ProductsAndPartsTable != "" ||
		c.SubstancesTable != "" ||
		c.CoatingsTable != ""
}

// Initialize creates a new .bomcheck directory with initial configuration
func Initialize(serviceURL, databaseKey string) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfgDir := filepath.Join(cwd, BomcheckDir)

	// Check if already initialized
	if _, err := os.Stat(cfgDir); err == nil {
		return nil, fmt.Errorf("bomcheck workspace already exists")
	}

	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .bomcheck directory: %w", err)
	}

	cfg := &Config{
		ServiceURL:  serviceURL,
		DatabaseKey: databaseKey,
		path:        cfgDir,
	}

	if err := cfg.Save(); err != nil {
		// Cleanup on failure
		os.RemoveAll(cfgDir)
		return nil, err
	}

	return cfg, nil
}
