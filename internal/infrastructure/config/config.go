package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite3"
)

// Config holds all configuration for our application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host        string        `mapstructure:"host"`
	HTTPPort    int           `mapstructure:"http_port"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Path         string `mapstructure:"path"`
	LogSQL       bool   `mapstructure:"log_sql"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// QuizConfig bounds the size of generated play sessions.
type QuizConfig struct {
	DefaultCount int `mapstructure:"default_count"`
	MaxCount     int `mapstructure:"max_count"`
}

// FlagKeys maps command line flag names onto configuration keys.
var FlagKeys = map[string]string{
	"log-level": "log.level",
	"db-driver": "database.driver",
	"db-path":   "database.path",
	"http-port": "server.http_port",
}

// Load reads configuration from file and environment variables. A non-empty
// file overrides the default .env lookup. Flags listed in FlagKeys that were
// set on the command line win over every other source.
func Load(file string, flags ...*pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".env")
		v.SetConfigType("env")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, fs := range flags {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	for name, key := range FlagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.read_timeout", 15*time.Second)

	// Database defaults
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "cortexex")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "cortexex.db")
	v.SetDefault("database.log_sql", false)
	v.SetDefault("database.max_open_conns", 10)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Quiz defaults
	v.SetDefault("quiz.default_count", 20)
	v.SetDefault("quiz.max_count", 200)
}

// DatabaseDriver returns the validated, lower-cased driver name.
func (c *Config) DatabaseDriver() (string, error) {
	driver := strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch driver {
	case "", DriverPostgres, "postgresql":
		return DriverPostgres, nil
	case DriverPgx:
		return DriverPgx, nil
	case DriverSQLite, "sqlite":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
}

// DatabaseURL returns the connection string for the configured driver.
func (c *Config) DatabaseURL() (string, error) {
	driver, err := c.DatabaseDriver()
	if err != nil {
		return "", err
	}

	if driver == DriverSQLite {
		path := strings.TrimSpace(c.Database.Path)
		if path == "" {
			return "", errors.New("database.path is required for sqlite3")
		}
		if strings.HasPrefix(path, "file:") {
			return path, nil
		}
		return fmt.Sprintf("file:%s?_fk=1", path), nil
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": []string{c.Database.SSLMode}}.Encode(),
	}
	return u.String(), nil
}

// ClampCount resolves a requested session size against the quiz bounds.
func (q QuizConfig) ClampCount(requested int) int {
	count := requested
	if count <= 0 {
		count = q.DefaultCount
	}
	if q.MaxCount > 0 && count > q.MaxCount {
		count = q.MaxCount
	}
	return count
}
