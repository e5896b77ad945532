package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Highscore HighscoreConfig
	MinIO     MinIOConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
	SlowThreshold   time.Duration
	AutoMigrate     bool
}

// FeedDedup selects what the global feed collapses rows on.
type FeedDedup string

const (
	// DedupByTitle keeps one row per distinct title. Two games sharing a
	// title show up as a single row.
	DedupByTitle FeedDedup = "title"
	// DedupByGame keeps one row per game.
	DedupByGame FeedDedup = "game"
)

// DeletePolicy decides what happens to a game's scores when it is deleted.
type DeletePolicy string

const (
	// DeleteRestrict refuses to delete a game that still has scores.
	DeleteRestrict DeletePolicy = "restrict"
	// DeleteCascade removes the game's scores in the same transaction.
	DeleteCascade DeletePolicy = "cascade"
)

type HighscoreConfig struct {
	FeedDedup    FeedDedup
	DeletePolicy DeletePolicy
}

type MinIOConfig struct {
	Enabled         bool
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	PublicURL       string
	PresignExpiry   time.Duration
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8010"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnvOrDefault("DB_DRIVER", DriverPostgres)),
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "highscore"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			SQLitePath:      getEnvOrDefault("DB_SQLITE_PATH", "highscore.db"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
			SlowThreshold:   getDurationOrDefault("DB_SLOW_THRESHOLD", 200*time.Millisecond),
			AutoMigrate:     getBoolOrDefault("DB_AUTO_MIGRATE", true),
		},
		Highscore: HighscoreConfig{
			FeedDedup:    FeedDedup(strings.ToLower(getEnvOrDefault("FEED_DEDUP", string(DedupByTitle)))),
			DeletePolicy: DeletePolicy(strings.ToLower(getEnvOrDefault("GAME_DELETE_POLICY", string(DeleteRestrict)))),
		},
		MinIO: MinIOConfig{
			Enabled:         getBoolOrDefault("MINIO_ENABLED", false),
			Endpoint:        getEnvOrDefault("AWS_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("AWS_BUCKET", "game-covers"),
			Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("AWS_USE_SSL", false),
			PublicURL:       getEnvOrDefault("AWS_URL", "http://localhost:9000/game-covers"),
			PresignExpiry:   getDurationOrDefault("AWS_PRESIGN_EXPIRY", 15*time.Minute),
		},
	}
}

// DSN returns the connection string for the configured driver.
func (c DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", c.SQLitePath)
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("DB_SQLITE_PATH is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Highscore.FeedDedup {
	case DedupByTitle, DedupByGame:
	default:
		return fmt.Errorf("FEED_DEDUP must be %q or %q, got %q", DedupByTitle, DedupByGame, c.Highscore.FeedDedup)
	}

	switch c.Highscore.DeletePolicy {
	case DeleteRestrict, DeleteCascade:
	default:
		return fmt.Errorf("GAME_DELETE_POLICY must be %q or %q, got %q", DeleteRestrict, DeleteCascade, c.Highscore.DeletePolicy)
	}

	if c.MinIO.Enabled {
		if c.MinIO.AccessKeyID == "" {
			return fmt.Errorf("AWS_ACCESS_KEY_ID is required for MinIO")
		}
		if c.MinIO.SecretAccessKey == "" {
			return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required for MinIO")
		}
		if c.MinIO.Endpoint == "" {
			return fmt.Errorf("AWS_ENDPOINT is required for MinIO")
		}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
