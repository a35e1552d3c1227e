package commands

import (
	"fmt"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/config"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
}

// loadConfigOrDefault loads configuration from configPath, or returns the
// defaults when no path was given.
func loadConfigOrDefault(configPath string) (*config.Config, error) {
	if configPath == "" {
		log.Debugf("No configuration file given, using defaults")
		cfg := config.Default()
		return &cfg, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func validateConfigOrFail(cfg *config.Config) error {
	if err := cfg.ValidateConfig(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// applyOverrides replaces configuration values with non-empty command line values.
func applyOverrides(cfg *config.Config, host, iface string) {
	if host != "" {
		cfg.Host = host
	}
	if iface != "" {
		cfg.Interface = iface
	}
}
