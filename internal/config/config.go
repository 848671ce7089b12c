package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the service settings. Zero values are replaced by Default().
type Config struct {
	Port         string        `yaml:"port"`
	GinMode      string        `yaml:"gin_mode"`
	FontPath     string        `yaml:"font_path"`
	MaxUploadMB  int64         `yaml:"max_upload_mb"`
	MaxPixels    int64         `yaml:"max_pixels"`
	Quality      float32       `yaml:"quality"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

func Default() Config {
	return Config{
		Port:         "8080",
		GinMode:      "debug",
		MaxUploadMB:  20,
		MaxPixels:    40_000_000,
		Quality:      95,
		FetchTimeout: 10 * time.Second,
	}
}

// Load reads an optional YAML file and then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		var fileCfg Config
		if err := yaml.Unmarshal(b, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.merge(fileCfg)
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) merge(o Config) {
	if o.Port != "" {
		c.Port = o.Port
	}
	if o.GinMode != "" {
		c.GinMode = o.GinMode
	}
	if o.FontPath != "" {
		c.FontPath = o.FontPath
	}
	if o.MaxUploadMB > 0 {
		c.MaxUploadMB = o.MaxUploadMB
	}
	if o.MaxPixels > 0 {
		c.MaxPixels = o.MaxPixels
	}
	if o.Quality > 0 {
		c.Quality = o.Quality
	}
	if o.FetchTimeout > 0 {
		c.FetchTimeout = o.FetchTimeout
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.GinMode = v
	}
	if v := os.Getenv("IMAGEGEN_FONT"); v != "" {
		c.FontPath = v
	}
	if v := os.Getenv("IMAGEGEN_MAX_UPLOAD_MB"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("IMAGEGEN_MAX_UPLOAD_MB: %w", err)
		}
		c.MaxUploadMB = n
	}
	if v := os.Getenv("IMAGEGEN_MAX_PIXELS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("IMAGEGEN_MAX_PIXELS: %w", err)
		}
		c.MaxPixels = n
	}
	return nil
}

func (c Config) Validate() error {
	if err := ValidateQuality(c.Quality); err != nil {
		return err
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("max_upload_mb must be positive")
	}
	if c.MaxPixels <= 0 {
		return fmt.Errorf("max_pixels must be positive")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("gin_mode %q must be debug, release or test", c.GinMode)
	}
	return nil
}

// ValidateQuality checks a WebP quality against (0, 100].
func ValidateQuality(q float32) error {
	if q <= 0 || q > 100 {
		return fmt.Errorf("quality %v out of range (0, 100]", q)
	}
	return nil
}

// MaxUploadBytes is the multipart memory limit handed to gin.
func (c Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
