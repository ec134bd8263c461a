package postgres

import (
	"electromed-tracker/internal/config"
	"electromed-tracker/internal/domain/catalog"
	"electromed-tracker/internal/infrastructure/database/postgres/models"
	"electromed-tracker/internal/logger"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
}

func NewDB(cfg *config.Config) (*DB, error) {
	dsn := cfg.Database.DSN()

	var gormLogLevel gormLogger.LogLevel
	if cfg.Server.Environment == "production" {
		gormLogLevel = gormLogger.Warn
	} else {
		gormLogLevel = gormLogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	logger.Info("Database connection established",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
		zap.Int("max_open_connections", 25),
		zap.Int("max_idle_connections", 5),
	)

	return &DB{DB: db}, nil
}

func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *DB) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Migrate creates the schema and seeds the service catalog defaults on an
// empty database.
func (d *DB) Migrate() error {
	if err := d.DB.AutoMigrate(
		&models.ShipmentModel{},
		&models.ServiceModel{},
		&models.ReferenceModel{},
		&models.ProviderModel{},
	); err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	var count int64
	if err := d.DB.Model(&models.ServiceModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("error checking service catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := catalog.DefaultServices()
	seed := make([]models.ServiceModel, len(defaults))
	for i, name := range defaults {
		seed[i] = models.ServiceModel{Name: name, Position: i}
	}
	if err := d.DB.Create(&seed).Error; err != nil {
		return fmt.Errorf("error seeding service catalog: %w", err)
	}

	logger.Info("Service catalog seeded",
		zap.Int("services", len(seed)),
	)
	return nil
}
