package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-stock/pkg/config"
)

// chdir cambia el directorio de trabajo durante el test y lo restaura al
// terminar (equivalente a testing.T.Chdir, disponible solo desde Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "Data/stock.json", cfg.Stock.DataPath)
	assert.Equal(t, "Data/registro.log", cfg.Stock.HistoryPath)
	assert.Equal(t, "Data/reportes", cfg.Stock.ReportsDir)
	assert.Equal(t, 7, cfg.Stock.ExpiryWarningDays)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STOCK_DATA_PATH", "/tmp/otro.json")
	t.Setenv("EXPIRY_WARNING_DAYS", "15")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/otro.json", cfg.Stock.DataPath)
	assert.Equal(t, 15, cfg.Stock.ExpiryWarningDays)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DiasInvalidosUsaDefecto(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("EXPIRY_WARNING_DAYS", "siete")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Stock.ExpiryWarningDays)
}
