package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Catalog  CatalogConfig
	Tracker  TrackerConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ProximityCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// CatalogConfig - загрузка фикстур каталога. DefaultKinds перечисляет kind,
// для которых запись без координат получает synthetic default (центр города),
// а не отбрасывается. Это явная именованная настройка, не скрытое поведение.
type CatalogConfig struct {
	DataDir      string
	DefaultLat   float64
	DefaultLon   float64
	DefaultKinds []string
}

type TrackerConfig struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaxAge       time.Duration
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxRetries    int
	Kinds         []string
	RadiusKm      float64
	Limit         int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ProximityCacheTTL: time.Duration(viper.GetInt("PROXIMITY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Catalog: CatalogConfig{
			DataDir:      viper.GetString("CATALOG_DATA_DIR"),
			DefaultLat:   viper.GetFloat64("CATALOG_DEFAULT_LAT"),
			DefaultLon:   viper.GetFloat64("CATALOG_DEFAULT_LON"),
			DefaultKinds: parseList(viper.GetString("CATALOG_DEFAULT_KINDS")),
		},
		Tracker: TrackerConfig{
			HighAccuracy: viper.GetBool("TRACKER_HIGH_ACCURACY"),
			Timeout:      time.Duration(viper.GetInt("TRACKER_TIMEOUT_MS")) * time.Millisecond,
			MaxAge:       time.Duration(viper.GetInt("TRACKER_MAX_AGE_MS")) * time.Millisecond,
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
			Kinds:         parseList(viper.GetString("WORKER_KINDS")),
			RadiusKm:      viper.GetFloat64("WORKER_RADIUS_KM"),
			Limit:         viper.GetInt("WORKER_LIMIT"),
		},
	}

	// Set default values if not provided
	if cfg.Catalog.DataDir == "" {
		cfg.Catalog.DataDir = "./data"
	}
	if cfg.Cache.ProximityCacheTTL == 0 {
		cfg.Cache.ProximityCacheTTL = 30 * time.Second
	}
	if cfg.Tracker.Timeout == 0 {
		cfg.Tracker.Timeout = 10 * time.Second
	}
	if cfg.Tracker.MaxAge == 0 {
		cfg.Tracker.MaxAge = 5 * time.Minute
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "proximity-refresh-workers"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if len(cfg.Worker.Kinds) == 0 {
		cfg.Worker.Kinds = []string{"hospital", "police", "taxi", "bike_vendor"}
	}
	if cfg.Worker.RadiusKm == 0 {
		cfg.Worker.RadiusKm = 10
	}
	if cfg.Worker.Limit == 0 {
		cfg.Worker.Limit = 20
	}

	return cfg, nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
