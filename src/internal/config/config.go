package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/log"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/utils"
)

// LoadConfig reads a TOML file on top of Default. Keys missing from the file keep
// their default values. Unknown keys are rejected so that typos do not silently
// fall back to defaults.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %w", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s", configFile)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := parseConfig(content)
	if err != nil {
		return nil, err
	}

	configDir := filepath.Dir(configFile)
	config.PrivateKeyPath = utils.ResolvePath(config.PrivateKeyPath, configDir)
	config.KnownHostsFile = utils.ResolvePath(config.KnownHostsFile, configDir)

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Target: %s (port %d), interface %s, transport %s", config.Destination(), config.Port, config.Interface, config.Transport)

	return config, nil
}

func parseConfig(content []byte) (*Config, error) {
	config := Default()

	decoder := toml.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			log.Errorf(derr.String())
			return nil, fmt.Errorf("failed to parse config file at line %d, column %d: %w", row, col, err)
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("failed to parse config file: %s", serr.String())
		}
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SerializeConfig renders the configuration as TOML.
func (c *Config) SerializeConfig() ([]byte, error) {
	return toml.Marshal(c)
}
