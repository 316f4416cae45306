// Package config loads service configuration from defaults, an optional
// YAML file, GMAPI_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g. GMAPI_REDIS_ADDRS.
const EnvPrefix = "GMAPI"

// Storage backends for encounters and campaigns.
const (
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config is the full service configuration.
type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	GRPC    GRPCConfig    `mapstructure:"grpc"`
	Storage string        `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Library LibraryConfig `mapstructure:"library"`
	Log     LogConfig     `mapstructure:"log"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type HTTPConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// OwnerHeader carries the authenticated owner id set by the gateway.
	OwnerHeader string `mapstructure:"owner_header"`
}

type GRPCConfig struct {
	Port int `mapstructure:"port"`
}

type RedisConfig struct {
	Addrs    []string      `mapstructure:"addrs"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	PoolSize int           `mapstructure:"pool_size"`
	DraftTTL time.Duration `mapstructure:"draft_ttl"`
}

type LibraryConfig struct {
	// Path is the SQLite database file holding creatures, hazards, items
	// and the treasure table.
	Path      string `mapstructure:"path"`
	CacheSize int    `mapstructure:"cache_size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"http-port":   "http.port",
	"grpc-port":   "grpc.port",
	"storage":     "storage",
	"redis-addrs": "redis.addrs",
	"library":     "library.path",
	"log-level":   "log.level",
	"log-format":  "log.format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.shutdown_timeout", 30*time.Second)
	v.SetDefault("http.owner_header", "X-Owner-ID")
	v.SetDefault("grpc.port", 50051)
	v.SetDefault("storage", StorageRedis)
	v.SetDefault("redis.addrs", []string{"localhost:6379"})
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.draft_ttl", time.Duration(0))
	v.SetDefault("library.path", "library.db")
	v.SetDefault("library.cache_size", 1024)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load reads the configuration. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "failed to bind flag %s", name)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("http.port", c.HTTP.Port, 1, 65535, vb)
	errors.ValidateRange("grpc.port", c.GRPC.Port, 0, 65535, vb)
	errors.ValidateRequired("http.owner_header", c.HTTP.OwnerHeader, vb)
	errors.ValidateEnum("storage", c.Storage, []string{StorageRedis, StorageMemory}, vb)
	if c.Storage == StorageRedis && len(c.Redis.Addrs) == 0 {
		vb.RequiredField("redis.addrs")
	}
	errors.ValidateRequired("library.path", c.Library.Path, vb)
	errors.ValidateMin("library.cache_size", c.Library.CacheSize, 1, vb)
	errors.ValidateEnum("log.format", strings.ToLower(c.Log.Format), []string{"json", "text"}, vb)

	return vb.Build()
}
