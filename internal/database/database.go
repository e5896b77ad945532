package database

import (
	"context"
	"fmt"
	"time"

	"highscore-backend/internal/config"
	"highscore-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	*gorm.DB
	config config.DatabaseConfig
}

func Connect(cfg config.DatabaseConfig, log *logrus.Logger) (*Database, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             cfg.SlowThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
		PrepareStmt:    cfg.Driver == config.DriverPostgres,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("%w: failed to connect to database: %w", models.ErrStoreUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		log.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("%w: failed to ping database: %w", models.ErrStoreUnavailable, err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	log.WithField("driver", cfg.Driver).Info("Database connection established successfully")

	database := &Database{
		DB:     db,
		config: cfg,
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(log); err != nil {
			log.WithError(err).Error("Failed to run auto migration")
			return nil, fmt.Errorf("failed to run auto migration: %w", err)
		}
	}

	return database, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

// Driver reports which store the handle talks to.
func (d *Database) Driver() string {
	return d.config.Driver
}

// LowerFunc names the SQL function that lowercases text with Unicode case
// folding on the current driver.
func (d *Database) LowerFunc() string {
	if d.config.Driver == config.DriverSQLite {
		return sqliteLowerFunc
	}
	return "LOWER"
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the game, genre, game_genre and score tables
// together with their foreign keys.
func (d *Database) Migrate(log *logrus.Logger) error {
	log.Info("Running auto migration...")

	err := d.DB.AutoMigrate(
		&models.Game{},
		&models.Genre{},
		&models.GameGenre{},
		&models.Score{},
	)
	if err != nil {
		return err
	}

	log.Info("Auto migration completed successfully")
	return nil
}
