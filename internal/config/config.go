// Package config loads the explorer settings from the environment and
// optional .env/config.env files through viper.
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups every setting of the application.
type Config struct {
	App    AppConfig
	Log    LogConfig
	DB     DBConfig
	Search SearchConfig
	UI     UIConfig
}

// AppConfig holds general settings.
type AppConfig struct {
	Env           string // development, production
	Name          string
	DefaultModule string
	PrefsPath     string // empty means the XDG config dir
	ExportDir     string
}

// LogConfig selects the log sink. The TUI owns the terminal, so logs
// always go to File.
type LogConfig struct {
	Level string
	File  string
}

// DBConfig is the Postgres connection. DatabaseURL, when set, wins over
// the discrete fields (e.g. a Supabase connection string).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	RPCSchema   string
	Timeout     time.Duration
}

// ConnectionString returns DATABASE_URL if set, otherwise DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds a postgres URL, escaping special characters in the password.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// SearchConfig tunes the data access hook.
type SearchConfig struct {
	Debounce      time.Duration
	FallbackLimit int
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale   string
	PageSize int
}

// Load reads the configuration. Environment variables win over files;
// file is an optional explicit config file (the --config flag).
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // optional

	if file != "" {
		v.SetConfigFile(file)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:           getString(v, "APP_ENV", "development"),
			Name:          getString(v, "APP_NAME", "gcz-explorer"),
			DefaultModule: getString(v, "DEFAULT_MODULE", "pqt06"),
			PrefsPath:     getString(v, "PREFS_PATH", ""),
			ExportDir:     getString(v, "EXPORT_DIR", "."),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", "gcz-explorer.log"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "postgres"),
			SSLMode:     getString(v, "DB_SSLMODE", "require"),
			RPCSchema:   getString(v, "DB_RPC_SCHEMA", "public"),
			Timeout:     time.Duration(getInt(v, "DB_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Search: SearchConfig{
			Debounce:      time.Duration(getInt(v, "SEARCH_DEBOUNCE_MS", 400)) * time.Millisecond,
			FallbackLimit: getInt(v, "SEARCH_FALLBACK_LIMIT", 100),
		},
		UI: UIConfig{
			Locale:   getString(v, "UI_LOCALE", "es-PE"),
			PageSize: getInt(v, "UI_PAGE_SIZE", 50),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.UI.PageSize {
	case 20, 50, 100:
	default:
		return fmt.Errorf("UI_PAGE_SIZE must be 20, 50 or 100, got %d", c.UI.PageSize)
	}
	if c.Search.FallbackLimit <= 0 {
		return fmt.Errorf("SEARCH_FALLBACK_LIMIT must be positive, got %d", c.Search.FallbackLimit)
	}
	if c.Search.Debounce < 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE_MS must not be negative")
	}
	return nil
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
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
