package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Storage settings
	Storage StorageConfig `yaml:"storage"`

	// Store behavior
	Store StoreConfig `yaml:"store"`

	// Invoice settings
	Invoice InvoiceConfig `yaml:"invoice"`

	// Business info printed on invoices
	Business BusinessConfig `yaml:"business"`
}

type StorageConfig struct {
	Path string `yaml:"path"` // Path to the localstore JSON file
}

type StoreConfig struct {
	LatencyMS int `yaml:"latency_ms"` // Simulated store latency in milliseconds
}

// Latency returns the simulated store latency as a duration.
func (s StoreConfig) Latency() time.Duration {
	return time.Duration(s.LatencyMS) * time.Millisecond
}

type InvoiceConfig struct {
	DefaultDueDays int     `yaml:"default_due_days"` // Days until invoice due
	DefaultTaxRate float64 `yaml:"default_tax_rate"` // Tax rate as decimal (0.0825 = 8.25%)
	OutputDir      string  `yaml:"output_dir"`       // Directory for exported PDFs
}

type BusinessConfig struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
}

// DefaultConfigPath returns ~/.config/freelink/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "freelink", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "freelink", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Storage: StorageConfig{
			Path: filepath.Join(homeDir, ".config", "freelink", "localstore.json"),
		},
		Store: StoreConfig{
			LatencyMS: 300,
		},
		Invoice: InvoiceConfig{
			DefaultDueDays: 14,
			DefaultTaxRate: 0.0,
			OutputDir:      filepath.Join(homeDir, ".config", "freelink", "invoices"),
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates all necessary directories (for the
// localstore, exported invoices, etc.)
func (c *Config) EnsureDirectories() error {
	storeDir := filepath.Dir(c.Storage.Path)
	if err := os.MkdirAll(storeDir, 0755); err != nil {
		return err
	}

	if err := os.MkdirAll(c.Invoice.OutputDir, 0755); err != nil {
		return err
	}

	return nil
}
