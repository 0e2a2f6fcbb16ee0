// Package config persists the daemon API address across runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// EndpointKey is the key the API address is stored under.
	EndpointKey = "ipfs_api_addrs"

	// DefaultEndpoint is written back on first use so a second read
	// always observes a value.
	DefaultEndpoint = "http://localhost:5001/api/v0"
)

// Resolve returns the API address stored under EndpointKey in v. When the
// key is absent the default is written to path and returned. The stored
// string is handed to the client as-is; no URL validation happens here.
func Resolve(v *viper.Viper, path string) (string, error) {
	if addr := v.GetString(EndpointKey); addr != "" {
		return addr, nil
	}

	v.Set(EndpointKey, DefaultEndpoint)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("config: create config dir: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("config: persist api address: %w", err)
	}
	return DefaultEndpoint, nil
}

// Dir returns the directory the config file lives in.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dit")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "dit")
	}
	return ".dit"
}

// File returns the default config file path.
func File() string {
	return filepath.Join(Dir(), "config.yaml")
}
