package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the resolved server configuration. Values merge in priority
// order: defaults -> file -> environment.
type Config struct {
	Port        string
	CORSEnabled bool
	MaxUploadMB int
}

// configFile mirrors the YAML schema. Kept separate from Config so the
// resolved struct stays free of serialization concerns.
type configFile struct {
	Server struct {
		Port        string `yaml:"port"`
		CORSEnabled *bool  `yaml:"cors_enabled"`
		MaxUploadMB int    `yaml:"max_upload_mb"`
	} `yaml:"server"`
}

// Load reads configuration from the given YAML path. A missing file is
// not an error; defaults and environment variables still apply.
func Load(path string) (Config, error) {
	cfg := Config{
		Port:        "8080",
		CORSEnabled: true,
		MaxUploadMB: 10,
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			var file configFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
			if file.Server.Port != "" {
				cfg.Port = file.Server.Port
			}
			if file.Server.CORSEnabled != nil {
				cfg.CORSEnabled = *file.Server.CORSEnabled
			}
			if file.Server.MaxUploadMB > 0 {
				cfg.MaxUploadMB = file.Server.MaxUploadMB
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if v := os.Getenv("CORS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CORS_ENABLED value %q: %w", v, err)
		}
		cfg.CORSEnabled = enabled
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		mb, err := strconv.Atoi(v)
		if err != nil || mb <= 0 {
			return Config{}, fmt.Errorf("invalid MAX_UPLOAD_MB value %q", v)
		}
		cfg.MaxUploadMB = mb
	}

	return cfg, nil
}
