package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Nominatim NominatimConfig
	Overpass  OverpassConfig
	Search    SearchConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type LogConfig struct {
	Level string
}

type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type OverpassConfig struct {
	URL       string
	UserAgent string
	// Timeout bounds one HTTP attempt on the client side.
	Timeout time.Duration
	// QueryTimeout is the [timeout:N] directive sent to the interpreter, in seconds.
	QueryTimeout int
	RetryDelay   time.Duration
}

type SearchConfig struct {
	DefaultRadius int
	DefaultLimit  int
	MaxRadius     int
	MaxLimit      int
	// OverFetchFactor multiplies the limit when a text filter is applied.
	// It is a heuristic for post-filter attrition, not a yield guarantee.
	OverFetchFactor int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("NOMINATIM_USER_AGENT", "restaurant-finder")
	v.SetDefault("NOMINATIM_TIMEOUT", 10)

	v.SetDefault("OVERPASS_URL", "https://overpass-api.de/api/interpreter")
	v.SetDefault("OVERPASS_USER_AGENT", "restaurant-finder")
	v.SetDefault("OVERPASS_TIMEOUT", 40)
	v.SetDefault("OVERPASS_QUERY_TIMEOUT", 30)
	v.SetDefault("OVERPASS_RETRY_DELAY", 2000)

	v.SetDefault("SEARCH_DEFAULT_RADIUS", 1000)
	v.SetDefault("SEARCH_DEFAULT_LIMIT", 10)
	v.SetDefault("SEARCH_MAX_RADIUS", 50000)
	v.SetDefault("SEARCH_MAX_LIMIT", 100)
	v.SetDefault("SEARCH_OVERFETCH_FACTOR", 2)
}

// Load читает конфигурацию из .env (если есть) и переменных окружения
func Load() (*Config, error) {
	return load(".env")
}

func load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Nominatim: NominatimConfig{
			BaseURL:   v.GetString("NOMINATIM_BASE_URL"),
			UserAgent: v.GetString("NOMINATIM_USER_AGENT"),
			Timeout:   time.Duration(v.GetInt("NOMINATIM_TIMEOUT")) * time.Second,
		},
		Overpass: OverpassConfig{
			URL:          v.GetString("OVERPASS_URL"),
			UserAgent:    v.GetString("OVERPASS_USER_AGENT"),
			Timeout:      time.Duration(v.GetInt("OVERPASS_TIMEOUT")) * time.Second,
			QueryTimeout: v.GetInt("OVERPASS_QUERY_TIMEOUT"),
			RetryDelay:   time.Duration(v.GetInt("OVERPASS_RETRY_DELAY")) * time.Millisecond,
		},
		Search: SearchConfig{
			DefaultRadius:   v.GetInt("SEARCH_DEFAULT_RADIUS"),
			DefaultLimit:    v.GetInt("SEARCH_DEFAULT_LIMIT"),
			MaxRadius:       v.GetInt("SEARCH_MAX_RADIUS"),
			MaxLimit:        v.GetInt("SEARCH_MAX_LIMIT"),
			OverFetchFactor: v.GetInt("SEARCH_OVERFETCH_FACTOR"),
		},
	}

	if cfg.Search.OverFetchFactor < 1 {
		cfg.Search.OverFetchFactor = 1
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
