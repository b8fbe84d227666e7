package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type PathsConfig struct {
	DownloadsDir string `yaml:"downloads_dir"`
	ProcessedDir string `yaml:"processed_dir"`
	ReportFile   string `yaml:"report_file"`
}

type WikidataConfig struct {
	Endpoint   string        `yaml:"endpoint"`
	UserAgent  string        `yaml:"user_agent"`
	TimeoutStr string        `yaml:"timeout"`
	Timeout    time.Duration `yaml:"-"`
}

type PartsCatalogConfig struct {
	BaseURL       string        `yaml:"base_url"`
	Manufacturers []string      `yaml:"manufacturers"`
	TimeoutStr    string        `yaml:"timeout"`
	Timeout       time.Duration `yaml:"-"`
	DelayStr      string        `yaml:"delay"`
	Delay         time.Duration `yaml:"-"`
}

type ImportConfig struct {
	BatchSize int `yaml:"batch_size"`
}

type Config struct {
	Database     DatabaseConfig     `yaml:"database"`
	Paths        PathsConfig        `yaml:"paths"`
	Wikidata     WikidataConfig     `yaml:"wikidata"`
	PartsCatalog PartsCatalogConfig `yaml:"parts_catalog"`
	Import       ImportConfig       `yaml:"import"`
}

// Load reads the YAML config file, applies environment overrides for the
// database credentials (optionally from a .env file) and makes sure the data
// directories exist. Credentials never live in the checked-in YAML; they are
// injected at process start.
func Load(configPath string) (*Config, error) {
	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()
	applyEnvOverrides(&cfg.Database)

	if err := parseDurations(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	for _, dir := range []string{cfg.Paths.DownloadsDir, cfg.Paths.ProcessedDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Paths.ReportFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(db *DatabaseConfig) {
	if v := os.Getenv("DB_HOST"); v != "" {
		db.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		db.Port = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		db.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		db.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		db.DBName = v
	}
}

func parseDurations(cfg *Config) error {
	var err error
	if cfg.Wikidata.TimeoutStr != "" {
		if cfg.Wikidata.Timeout, err = time.ParseDuration(cfg.Wikidata.TimeoutStr); err != nil {
			return fmt.Errorf("failed to parse wikidata timeout: %w", err)
		}
	}
	if cfg.PartsCatalog.TimeoutStr != "" {
		if cfg.PartsCatalog.Timeout, err = time.ParseDuration(cfg.PartsCatalog.TimeoutStr); err != nil {
			return fmt.Errorf("failed to parse parts catalog timeout: %w", err)
		}
	}
	if cfg.PartsCatalog.DelayStr != "" {
		if cfg.PartsCatalog.Delay, err = time.ParseDuration(cfg.PartsCatalog.DelayStr); err != nil {
			return fmt.Errorf("failed to parse parts catalog delay: %w", err)
		}
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Wikidata.Timeout == 0 {
		cfg.Wikidata.Timeout = 60 * time.Second
	}
	if cfg.PartsCatalog.Timeout == 0 {
		cfg.PartsCatalog.Timeout = 10 * time.Second
	}
	if cfg.PartsCatalog.Delay == 0 {
		cfg.PartsCatalog.Delay = 2 * time.Second
	}
	if cfg.Import.BatchSize <= 0 {
		cfg.Import.BatchSize = 100
	}
	if cfg.Paths.DownloadsDir == "" {
		cfg.Paths.DownloadsDir = "data/downloads"
	}
	if cfg.Paths.ProcessedDir == "" {
		cfg.Paths.ProcessedDir = "data/processed"
	}
	if cfg.Paths.ReportFile == "" {
		cfg.Paths.ReportFile = "data/processed/validation_report.json"
	}
}
