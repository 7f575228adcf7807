package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"registro/internal/config"
	"registro/internal/logs"
	"registro/internal/models"
)

var DB *gorm.DB

// Connect opens the database selected by config. TranslateError is on so
// unique-key violations surface as gorm.ErrDuplicatedKey on every driver.
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logs.Logger.WithField("driver", cfg.Database.Driver).Info("database connection established")
	return nil
}

func Migrate() error {
	logs.Logger.Info("running database migrations")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Position{},
		&models.Employee{},
		&models.Project{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logs.Logger.Info("database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
