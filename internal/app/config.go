package app

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = "3001"
	defaultDatabaseURI  = "mongodb://localhost:27017/costmanager"
	defaultStoreTimeout = 10 * time.Second
)

type Config struct {
	RunAddress     string
	DatabaseURI    string
	LogLevel       string
	MigrationsPath string
	Timezone       string
	StoreTimeout   time.Duration

	// Location is the calendar used for report month boundaries.
	Location *time.Location
}

// NewConfigFromFlags reads .env (if present), command line flags and the
// environment. Environment variables win over flags.
func NewConfigFromFlags() (*Config, error) {
	_ = godotenv.Load()
	return parseConfig(flag.CommandLine, os.Args[1:], os.LookupEnv)
}

func parseConfig(fs *flag.FlagSet, args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}

	fs.StringVar(&cfg.RunAddress, "a", "", "Server address (env: RUN_ADDRESS, or :PORT)")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "Store connection string, mongodb:// or postgres:// (env: MONGODB_URI, DATABASE_URI)")
	fs.StringVar(&cfg.LogLevel, "l", "info", "Log level (debug|info|warn|error) (env: LOG_LEVEL)")
	fs.StringVar(&cfg.MigrationsPath, "migrations", "./migrations", "Path to migrations folder, postgres only (env: MIGRATIONS_PATH)")
	fs.StringVar(&cfg.Timezone, "tz", "", "Timezone for monthly reports, defaults to local (env: REPORT_TIMEZONE)")
	fs.DurationVar(&cfg.StoreTimeout, "timeout", defaultStoreTimeout, "Store dial and socket timeout (env: STORE_TIMEOUT)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.applyEnvVars(lookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvVars(lookupEnv func(string) (string, bool)) error {
	getenv := func(key string) string {
		v, _ := lookupEnv(key)
		return v
	}

	if envAddr := getenv("RUN_ADDRESS"); envAddr != "" {
		c.RunAddress = envAddr
	}
	if c.RunAddress == "" {
		port := getenv("PORT")
		if port == "" {
			port = defaultPort
		}
		c.RunAddress = ":" + port
	}

	if envDB := getenv("MONGODB_URI"); envDB != "" {
		c.DatabaseURI = envDB
	} else if envDB := getenv("DATABASE_URI"); envDB != "" {
		c.DatabaseURI = envDB
	}
	if c.DatabaseURI == "" {
		c.DatabaseURI = defaultDatabaseURI
	}

	if envLogLevel := getenv("LOG_LEVEL"); envLogLevel != "" {
		c.LogLevel = envLogLevel
	}
	if envMigrations := getenv("MIGRATIONS_PATH"); envMigrations != "" {
		c.MigrationsPath = envMigrations
	}
	if envTZ := getenv("REPORT_TIMEZONE"); envTZ != "" {
		c.Timezone = envTZ
	}
	if envTimeout := getenv("STORE_TIMEOUT"); envTimeout != "" {
		d, err := time.ParseDuration(envTimeout)
		if err != nil {
			return fmt.Errorf("invalid STORE_TIMEOUT %q: %w", envTimeout, err)
		}
		c.StoreTimeout = d
	}

	return nil
}

func (c *Config) validate() error {
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("store timeout must be positive, got %s", c.StoreTimeout)
	}

	c.Location = time.Local
	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
		c.Location = loc
	}

	return nil
}

func (c *Config) MaskDBPassword() string {
	u, err := url.Parse(c.DatabaseURI)
	if err != nil {
		return c.DatabaseURI
	}

	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), "***")
		}
	}
	return u.String()
}
