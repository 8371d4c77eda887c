package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Auth  AuthConfig
	Stock StockConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig configuración de los usuarios sembrados.
type AuthConfig struct {
	SeedPassword string
}

// StockConfig parámetros del motor de inventario.
type StockConfig struct {
	AlertWindowDays int    // días para considerar un lote "por vencer"
	SnapshotPath    string // archivo donde se guarda el agregado completo
	CSVSeparator    string // separador del export CSV (un carácter)
}

// Separator devuelve el separador CSV como rune; ';' si no se configuró bien.
func (c StockConfig) Separator() rune {
	if len(c.CSVSeparator) == 0 {
		return ';'
	}
	return rune(c.CSVSeparator[0])
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, JWT_SECRET, STOCK_ALERT_WINDOW_DAYS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "stokos"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "stokos"),
		},
		Auth: AuthConfig{
			SeedPassword: getString(v, "SEED_USERS_PASSWORD", "mc322"),
		},
		Stock: StockConfig{
			AlertWindowDays: getInt(v, "STOCK_ALERT_WINDOW_DAYS", 3),
			SnapshotPath:    getString(v, "SNAPSHOT_PATH", "./stokos_data.stk"),
			CSVSeparator:    getString(v, "CSV_EXPORT_SEPARATOR", ";"),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
