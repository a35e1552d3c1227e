package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configFile := filepath.Join(t.TempDir(), "openwrt-ifstatus.toml")
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return configFile
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Host != "192.168.1.1" {
		t.Errorf("Expected default host 192.168.1.1, got %s", cfg.Host)
	}
	if cfg.Port != 22 {
		t.Errorf("Expected default port 22, got %d", cfg.Port)
	}
	if cfg.Username != "root" {
		t.Errorf("Expected default username root, got %s", cfg.Username)
	}
	if cfg.Interface != "wan" {
		t.Errorf("Expected default interface wan, got %s", cfg.Interface)
	}
	if cfg.PrivateKeyPath != "" {
		t.Errorf("Expected no default private key, got %s", cfg.PrivateKeyPath)
	}
	if cfg.Transport != TransportExec {
		t.Errorf("Expected exec transport by default, got %s", cfg.Transport)
	}
	if cfg.StrictHostKeyChecking {
		t.Error("Expected host key checking to be relaxed by default")
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected defaults to be valid, got: %v", err)
	}
}

func TestConfig_DestinationAndAddress(t *testing.T) {
	cfg := Default()
	cfg.Username = "admin"
	cfg.Host = "fd00::1"
	cfg.Port = 2222

	if got := cfg.Destination(); got != "admin@fd00::1" {
		t.Errorf("Destination() = %s", got)
	}
	if got := cfg.Address(); got != "[fd00::1]:2222" {
		t.Errorf("Address() = %s", got)
	}
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	configFile := writeConfig(t, `host = "10.0.0.1
port = 22`)

	_, err := LoadConfig(configFile)
	if err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	configFile := writeConfig(t, `hots = "10.0.0.1"`)

	_, err := LoadConfig(configFile)
	if err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	configFile := writeConfig(t, `host = "10.0.0.1"
interface = "wan6"`)

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if cfg.Host != "10.0.0.1" {
		t.Errorf("Expected host 10.0.0.1, got %s", cfg.Host)
	}
	if cfg.Interface != "wan6" {
		t.Errorf("Expected interface wan6, got %s", cfg.Interface)
	}
	if cfg.Port != 22 || cfg.Username != "root" || cfg.CommandTemplate != DefaultCommandTemplate {
		t.Errorf("Expected missing keys to keep defaults, got %+v", cfg)
	}
}

func TestLoadConfig_ResolvesRelativePaths(t *testing.T) {
	configFile := writeConfig(t, `private_key_path = "keys/openwrt"
known_hosts_file = "known_hosts"
transport = "native"`)
	configDir := filepath.Dir(configFile)

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error: %v", err)
	}

	if cfg.PrivateKeyPath != filepath.Join(configDir, "keys/openwrt") {
		t.Errorf("Expected key path relative to config dir, got %s", cfg.PrivateKeyPath)
	}
	if cfg.KnownHostsFile != filepath.Join(configDir, "known_hosts") {
		t.Errorf("Expected known_hosts relative to config dir, got %s", cfg.KnownHostsFile)
	}
	if cfg.Transport != TransportNative {
		t.Errorf("Expected native transport, got %s", cfg.Transport)
	}
}

func TestSerializeConfig(t *testing.T) {
	cfg := Default()

	data, err := cfg.SerializeConfig()
	if err != nil {
		t.Fatalf("SerializeConfig() error: %v", err)
	}

	out := string(data)
	for _, want := range []string{"host = ", "192.168.1.1", "port = 22", "interface = "} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected serialized config to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "private_key_path") {
		t.Errorf("Expected empty private_key_path to be omitted, got:\n%s", out)
	}

	reparsed, err := parseConfig(data)
	if err != nil {
		t.Fatalf("Failed to parse serialized config: %v", err)
	}
	if *reparsed != cfg {
		t.Errorf("Round trip mismatch: got %+v, want %+v", *reparsed, cfg)
	}
}
