// Package config reads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

var drivers = []string{DriverSQLite, DriverPostgres, DriverMySQL}

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// HTTP server
	APIURL *url.URL
	Port   string

	// Database
	Driver     string
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// AMQP, events are only published when the URL is set
	AMQPURL      string
	AMQPExchange string

	apiURL string
}

// Load reads the configuration from the environment.
//
// CORS_ALLOW_ORIGINS and ENABLE_PPROF are read by the router.
//
// Variables from a .env file in the working directory are loaded
// first. They do not override variables that are already set.
func Load() *Config {
	err := godotenv.Load()
	if err == nil {
		log.Debug().Msg("loaded environment variables from .env")
	}

	c := &Config{
		apiURL: os.Getenv("API_URL"),
		Port:   getEnv("PORT", "8080"),

		Driver:     getEnv("DB_DRIVER", DriverSQLite),
		SQLitePath: getEnv("SQLITE_PATH", filepath.Join("data", "expenses.db")),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "expenses"),
	}

	return c
}

// Validate verifies the configuration. It reports all problems at once.
func (c *Config) Validate() error {
	var problems []string

	if c.apiURL == "" && c.APIURL == nil {
		problems = append(problems, "environment variable API_URL must be set")
	} else if c.APIURL == nil {
		u, err := url.Parse(c.apiURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("API_URL '%s' must be an absolute URL", c.apiURL))
		} else {
			c.APIURL = u
		}
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !slices.Contains(drivers, c.Driver) {
		problems = append(problems, fmt.Sprintf("invalid database driver '%s': must be one of %v", c.Driver, drivers))
	}

	switch c.Driver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH must not be empty when using sqlite")
		}
	case DriverPostgres, DriverMySQL:
		if c.DBHost == "" || c.DBName == "" {
			problems = append(problems, fmt.Sprintf("DB_HOST and DB_NAME must be set when using %s", c.Driver))
		}
	}

	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL: %v", err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", u.Scheme))
		}

		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP_EXCHANGE must not be empty when AMQP_URL is set")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}

// Dialector returns the gorm dialector for the configured database.
//
// For sqlite, the directory of the database file is created if needed.
func (c *Config) Dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", c.DBHost, c.DBUser, c.DBPassword, c.DBName)
		if c.DBPort != "" {
			dsn = fmt.Sprintf("%s port=%s", dsn, c.DBPort)
		}

		return postgres.Open(dsn), nil

	case DriverMySQL:
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC", c.DBUser, c.DBPassword, c.DBHost, port, c.DBName)

		return mysql.Open(dsn), nil

	case DriverSQLite:
		err := os.MkdirAll(filepath.Dir(c.SQLitePath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("could not create data directory: %w", err)
		}

		return sqlite.Open(c.SQLitePath), nil
	}

	return nil, fmt.Errorf("%w: unknown database driver '%s'", ErrInvalid, c.Driver)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
