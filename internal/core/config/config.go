package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeoutSec  int    `mapstructure:"read_timeout_sec"`
	WriteTimeoutSec int    `mapstructure:"write_timeout_sec"`
	IdleTimeoutSec  int    `mapstructure:"idle_timeout_sec"`
}

type AdminHTTP struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type App struct {
	Name  string    `mapstructure:"name"`
	Env   string    `mapstructure:"env"`
	HTTP  HTTP      `mapstructure:"http"`
	Admin AdminHTTP `mapstructure:"admin"`
}

type LogFile struct {
	Enable     bool   `mapstructure:"enable"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type Log struct {
	Level string  `mapstructure:"level"`
	JSON  bool    `mapstructure:"json"`
	File  LogFile `mapstructure:"file"`
}

// Auth points at the identity-provider realm. RealmPublicKey wins over
// fetching the key from ServerURL.
type Auth struct {
	ServerURL      string `mapstructure:"server_url"`
	Realm          string `mapstructure:"realm"`
	RealmPublicKey string `mapstructure:"realm_public_key"`
	LeewaySec      int    `mapstructure:"leeway_sec"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTLSec   int    `mapstructure:"ttl_sec"`
}

type DB struct {
	Driver             string `mapstructure:"driver"`
	DSN                string `mapstructure:"dsn"`
	MaxOpenConns       int    `mapstructure:"max_open_conns"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMin int    `mapstructure:"conn_max_lifetime_min"`
	AutoMigrate        bool   `mapstructure:"auto_migrate"`
	Seed               bool   `mapstructure:"seed"`
	LogLevel           string `mapstructure:"log_level"`
}

type Limits struct {
	RateRPS       float64  `mapstructure:"rate_rps"`
	RateBurst     int      `mapstructure:"rate_burst"`
	PerIPRPS      float64  `mapstructure:"per_ip_rps"`
	PerIPBurst    int      `mapstructure:"per_ip_burst"`
	MaxConcurrent int64    `mapstructure:"max_concurrent"`
	MaxBodyBytes  int64    `mapstructure:"max_body_bytes"`
	TimeoutSec    int      `mapstructure:"timeout_sec"`
	CORSOrigins   []string `mapstructure:"cors_origins"`
}

type Completion struct {
	// Idempotent blocks a second completion inside the same repeat window.
	Idempotent bool `mapstructure:"idempotent"`
}

type Config struct {
	App        App        `mapstructure:"app"`
	Log        Log        `mapstructure:"log"`
	Auth       Auth       `mapstructure:"auth"`
	DB         DB         `mapstructure:"db"`
	Redis      Redis      `mapstructure:"redis"`
	Limits     Limits     `mapstructure:"limits"`
	Completion Completion `mapstructure:"completion"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "myplanetplan-api")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.read_timeout_sec", 5)
	v.SetDefault("app.http.write_timeout_sec", 10)
	v.SetDefault("app.http.idle_timeout_sec", 60)
	v.SetDefault("app.admin.host", "127.0.0.1")
	v.SetDefault("app.admin.port", 8081)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file.filename", "logs/app.log")
	v.SetDefault("log.file.max_size_mb", 100)
	v.SetDefault("log.file.max_backups", 7)
	v.SetDefault("log.file.max_age_days", 30)

	v.SetDefault("auth.leeway_sec", 60)

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime_min", 30)
	v.SetDefault("db.log_level", "warn")

	v.SetDefault("redis.ttl_sec", 600)

	v.SetDefault("limits.rate_rps", 200)
	v.SetDefault("limits.rate_burst", 400)
	v.SetDefault("limits.per_ip_rps", 20)
	v.SetDefault("limits.per_ip_burst", 40)
	v.SetDefault("limits.max_concurrent", 300)
	v.SetDefault("limits.max_body_bytes", 1<<20)
	v.SetDefault("limits.timeout_sec", 10)

	v.SetDefault("completion.idempotent", true)
}

// Read loads the YAML file at path (or CONFIG_PATH, or the local default) and
// applies APP_ prefixed environment overrides.
func Read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Load(path string) *Config {
	c, err := Read(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return c
}
