package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
seats:
  - name: Alice
    provider: human
  - name: Bob
    provider: oracle
oracleAuctionBudget: 2
outfile: game.log
logLevel: debug
fixedPlayOrder: true
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, []Seat{
			{Name: "Alice", Provider: ProviderHuman},
			{Name: "Bob", Provider: ProviderOracle},
		}, cfg.Seats)
		require.Equal(t, 2, cfg.OracleAuctionBudget)
		require.Equal(t, "game.log", cfg.Outfile)
		require.Equal(t, "debug", cfg.LogLevel)
		require.True(t, cfg.FixedPlayOrder)
		require.Equal(t, []string{"Alice", "Bob"}, cfg.PlayerNames())
	})

	t.Run("absent fields fall back to defaults", func(t *testing.T) {
		path := writeConfig(t, "outfile: game.log\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, Default().Seats, cfg.Seats)
		require.Equal(t, Default().OracleAuctionBudget, cfg.OracleAuctionBudget)
		require.Equal(t, "game.log", cfg.Outfile)
	})

	t.Run("unknown provider", func(t *testing.T) {
		path := writeConfig(t, `
seats:
  - name: Alice
    provider: psychic
`)
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("seat without a name", func(t *testing.T) {
		path := writeConfig(t, `
seats:
  - provider: oracle
`)
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("negative auction budget", func(t *testing.T) {
		path := writeConfig(t, "oracleAuctionBudget: -1\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "seats: [whoops\n")
		_, err := Load(path)
		require.Error(t, err)
	})
}
