package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"console"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://localhost:8080/api", cfg.ServerBaseURL)
	require.Equal(t, "userdesk.db", cfg.StateFile)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "http://api.example.com/api", "-d", "/tmp/state.db")

	cfg := LoadConfig()
	require.Equal(t, "http://api.example.com/api", cfg.ServerBaseURL)
	require.Equal(t, "/tmp/state.db", cfg.StateFile)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_base_url":"http://json.example.com/api"}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "http://json.example.com/api", cfg.ServerBaseURL)
	// Field absent from JSON keeps its default.
	require.Equal(t, "userdesk.db", cfg.StateFile)
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_base_url":"http://json.example.com/api"}`), 0o600))

	withArgs(t, "-c", path, "-a", "http://flag.example.com/api")

	cfg := LoadConfig()
	require.Equal(t, "http://flag.example.com/api", cfg.ServerBaseURL)
}
