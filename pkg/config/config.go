package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Log   LogConfig
	Stock StockConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// LogConfig configuración del logger de diagnóstico (no confundir con el historial de cambios).
type LogConfig struct {
	Level string
	File  string // vacío = stderr
}

// StockConfig rutas de datos y parámetros de los avisos.
type StockConfig struct {
	DataPath          string // documento JSON del inventario
	HistoryPath       string // historial de cambios (append-only)
	ReportsDir        string // destino de los reportes PDF
	ExpiryWarningDays int    // ventana de "por vencer", inclusiva
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, STOCK_DATA_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "control-stock"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "warn"),
			File:  getString(v, "LOG_FILE", ""),
		},
		Stock: StockConfig{
			DataPath:          getString(v, "STOCK_DATA_PATH", "Data/stock.json"),
			HistoryPath:       getString(v, "STOCK_LOG_PATH", "Data/registro.log"),
			ReportsDir:        getString(v, "STOCK_REPORTS_DIR", "Data/reportes"),
			ExpiryWarningDays: getInt(v, "EXPIRY_WARNING_DAYS", 7),
		},
	}
	if cfg.Stock.ExpiryWarningDays < 0 {
		cfg.Stock.ExpiryWarningDays = 7
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
