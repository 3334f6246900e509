package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	TMDB     TMDBConfig     `yaml:"tmdb"`
	Sync     SyncConfig     `yaml:"sync"`
	Artwork  ArtworkConfig  `yaml:"artwork"`
}

type ServerConfig struct {
	Port         string        `yaml:"port" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver" validate:"oneof=postgres sqlite"`
	Host            string        `yaml:"host" validate:"required_if=Driver postgres"`
	Port            string        `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	DBName          string        `yaml:"name"`
	SSLMode         string        `yaml:"sslmode"`
	SQLitePath      string        `yaml:"sqlite_path" validate:"required_if=Driver sqlite"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	QueryTimeout    time.Duration `yaml:"query_timeout"`
}

type TMDBConfig struct {
	APIKey        string        `yaml:"api_key" validate:"required"`
	BaseURL       string        `yaml:"base_url" validate:"required,url"`
	Language      string        `yaml:"language" validate:"required"`
	ImageBaseURL  string        `yaml:"image_base_url" validate:"omitempty,url"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	RetryAttempts int           `yaml:"retry_attempts" validate:"min=0"`
	RetryDelay    time.Duration `yaml:"retry_delay"`
}

// SyncConfig bounds a sync pass. Both ends of the range are inclusive.
type SyncConfig struct {
	FromID       int  `yaml:"from_id" validate:"min=1"`
	ToID         int  `yaml:"to_id" validate:"gtefield=FromID"`
	SkipNotFound bool `yaml:"skip_not_found"`
	CacheSize    int  `yaml:"cache_size" validate:"min=0"`
}

type ArtworkConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Endpoint        string `yaml:"endpoint" validate:"required_if=Enabled true"`
	AccessKeyID     string `yaml:"access_key_id" validate:"required_if=Enabled true"`
	SecretAccessKey string `yaml:"secret_access_key" validate:"required_if=Enabled true"`
	BucketName      string `yaml:"bucket" validate:"required_if=Enabled true"`
	Region          string `yaml:"region"`
	UseSSL          bool   `yaml:"use_ssl"`
}

type setting struct {
	key string
	env string
	def any
}

var settings = []setting{
	{"server.port", "SERVER_PORT", "8010"},
	{"server.read_timeout", "SERVER_READ_TIMEOUT", 30 * time.Second},
	{"server.write_timeout", "SERVER_WRITE_TIMEOUT", 5 * time.Minute},

	{"database.driver", "DB_DRIVER", "postgres"},
	{"database.host", "DB_HOST", "localhost"},
	{"database.port", "DB_PORT", "5432"},
	{"database.user", "DB_USER", "postgres"},
	{"database.password", "DB_PASSWORD", "postgres"},
	{"database.name", "DB_NAME", "movia"},
	{"database.sslmode", "DB_SSLMODE", "disable"},
	{"database.sqlite_path", "DB_SQLITE_PATH", "movia.db"},
	{"database.max_open_conns", "DB_MAX_OPEN_CONNS", 10},
	{"database.max_idle_conns", "DB_MAX_IDLE_CONNS", 2},
	{"database.conn_max_lifetime", "DB_CONN_MAX_LIFETIME", 5 * time.Minute},
	{"database.query_timeout", "DB_QUERY_TIMEOUT", 10 * time.Second},

	{"tmdb.api_key", "TMDB_API_KEY", ""},
	{"tmdb.base_url", "TMDB_BASE_URL", "https://api.themoviedb.org/3"},
	{"tmdb.language", "TMDB_LANGUAGE", "fr-FR"},
	{"tmdb.image_base_url", "TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p/original"},
	{"tmdb.http_timeout", "TMDB_HTTP_TIMEOUT", 30 * time.Second},
	{"tmdb.retry_attempts", "TMDB_RETRY_ATTEMPTS", 0},
	{"tmdb.retry_delay", "TMDB_RETRY_DELAY", 2 * time.Second},

	{"sync.from_id", "SYNC_FROM_ID", 1},
	{"sync.to_id", "SYNC_TO_ID", 99},
	{"sync.skip_not_found", "SYNC_SKIP_NOT_FOUND", false},
	{"sync.cache_size", "SYNC_CACHE_SIZE", 1024},

	{"artwork.enabled", "ARTWORK_ENABLED", false},
	{"artwork.endpoint", "AWS_ENDPOINT", ""},
	{"artwork.access_key_id", "AWS_ACCESS_KEY_ID", ""},
	{"artwork.secret_access_key", "AWS_SECRET_ACCESS_KEY", ""},
	{"artwork.bucket", "AWS_BUCKET", "artwork"},
	{"artwork.region", "AWS_DEFAULT_REGION", "us-east-1"},
	{"artwork.use_ssl", "AWS_USE_SSL", true},
}

// Bind registers defaults and environment bindings on v. It is safe to call
// more than once.
func Bind(v *viper.Viper) {
	for _, s := range settings {
		v.SetDefault(s.key, s.def)
		_ = v.BindEnv(s.key, s.env)
	}
}

// Load reads the configuration from the global viper instance, which the CLI
// has already pointed at flags and an optional config file.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	Bind(v)

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("database.driver")),
			Host:            v.GetString("database.host"),
			Port:            v.GetString("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.name"),
			SSLMode:         v.GetString("database.sslmode"),
			SQLitePath:      v.GetString("database.sqlite_path"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
			QueryTimeout:    v.GetDuration("database.query_timeout"),
		},
		TMDB: TMDBConfig{
			APIKey:        v.GetString("tmdb.api_key"),
			BaseURL:       strings.TrimRight(v.GetString("tmdb.base_url"), "/"),
			Language:      v.GetString("tmdb.language"),
			ImageBaseURL:  strings.TrimRight(v.GetString("tmdb.image_base_url"), "/"),
			HTTPTimeout:   v.GetDuration("tmdb.http_timeout"),
			RetryAttempts: v.GetInt("tmdb.retry_attempts"),
			RetryDelay:    v.GetDuration("tmdb.retry_delay"),
		},
		Sync: SyncConfig{
			FromID:       v.GetInt("sync.from_id"),
			ToID:         v.GetInt("sync.to_id"),
			SkipNotFound: v.GetBool("sync.skip_not_found"),
			CacheSize:    v.GetInt("sync.cache_size"),
		},
		Artwork: ArtworkConfig{
			Enabled:         v.GetBool("artwork.enabled"),
			Endpoint:        v.GetString("artwork.endpoint"),
			AccessKeyID:     v.GetString("artwork.access_key_id"),
			SecretAccessKey: v.GetString("artwork.secret_access_key"),
			BucketName:      v.GetString("artwork.bucket"),
			Region:          v.GetString("artwork.region"),
			UseSSL:          v.GetBool("artwork.use_ssl"),
		},
	}

	return cfg, nil
}

// GetDSN returns PostgreSQL connection string
func (c *Config) GetDSN() string {
	return c.Database.DSN()
}

func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "url":
		return field + " must be a URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
	}
}

const redacted = "******"

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.TMDB.APIKey != "" {
		c.TMDB.APIKey = redacted
	}
	if c.Database.Password != "" {
		c.Database.Password = redacted
	}
	if c.Artwork.SecretAccessKey != "" {
		c.Artwork.SecretAccessKey = redacted
	}
	return c
}
