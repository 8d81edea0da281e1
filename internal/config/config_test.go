package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmateos/procura-be/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("DATABASE_PATH")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.ServerPort)
	require.Equal(t, "./procurement.db", cfg.DatabasePath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/procura.db")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.ServerPort)
	require.Equal(t, "/tmp/procura.db", cfg.DatabasePath)
}

func TestLoadBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := config.Load()
	require.Error(t, err)
}
