package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SionoiS/dit/internal/config"
)

func TestResolveInitializesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	v := viper.New()

	addr, err := config.Resolve(v, path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultEndpoint, addr)

	// The default must now be persisted under the fixed key.
	stored := viper.New()
	stored.SetConfigFile(path)
	require.NoError(t, stored.ReadInConfig())
	assert.Equal(t, config.DefaultEndpoint, stored.GetString(config.EndpointKey))
}

func TestResolveSecondReadObservesValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	v := viper.New()

	_, err := config.Resolve(v, path)
	require.NoError(t, err)

	fresh := viper.New()
	fresh.SetConfigFile(path)
	require.NoError(t, fresh.ReadInConfig())

	addr, err := config.Resolve(fresh, path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultEndpoint, addr)
}

func TestResolveReturnsStoredValueUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte(config.EndpointKey+": http://host:1234/api/v0\n"), 0644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	addr, err := config.Resolve(v, path)
	require.NoError(t, err)
	assert.Equal(t, "http://host:1234/api/v0", addr)

	// No validation, no rewrite: the file stays byte-identical.
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestResolveAcceptsArbitraryString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte(config.EndpointKey+": not a url at all\n"), 0644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	addr, err := config.Resolve(v, path)
	require.NoError(t, err)
	assert.Equal(t, "not a url at all", addr)
}
