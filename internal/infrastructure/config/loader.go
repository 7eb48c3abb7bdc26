package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// FileLoader loads YAML configuration from ~/.macfix/config.yaml
// (overridable via MACFIX_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created with
// defaults on first run.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("MACFIX_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".macfix", "config.yaml")
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Network: domain.NetworkSettings{
			PingTarget:       "8.8.8.8",
			PingCount:        3,
			DNSProbeHost:     "apple.com",
			TracerouteTarget: "8.8.8.8",
		},
		Thresholds: domain.ThresholdSettings{
			DiskUsedPercentMax: 90,
			MinFreeMemoryPages: 50000,
		},
		Execution: domain.ExecutionSettings{
			ConfirmDestructive: true,
		},
		Logging: domain.LoggingSettings{
			Verbose:        false,
			TranscriptPath: "",
		},
		History: domain.HistorySettings{
			Enabled: true,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Network.PingTarget == "" {
		cfg.Network.PingTarget = "8.8.8.8"
	}
	if cfg.Network.PingCount == 0 {
		cfg.Network.PingCount = 3
	}
	if cfg.Network.DNSProbeHost == "" {
		cfg.Network.DNSProbeHost = "apple.com"
	}
	if cfg.Network.TracerouteTarget == "" {
		cfg.Network.TracerouteTarget = cfg.Network.PingTarget
	}
	if cfg.Thresholds.DiskUsedPercentMax == 0 {
		cfg.Thresholds.DiskUsedPercentMax = 90
	}
	if cfg.Thresholds.MinFreeMemoryPages == 0 {
		cfg.Thresholds.MinFreeMemoryPages = 50000
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
