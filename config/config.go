package config

import (
	"fmt"
	"time"

	"kitchenpos/models"

	"github.com/caarlos0/env/v11"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`
	DBPath  string `env:"KITCHENPOS_DB_PATH" envDefault:"kitchenpos.db"`
	JWT     JWTConfig
	Log     LogConfig
	Manager ManagerConfig
}

type JWTConfig struct {
	// Secret used to sign tokens, read from env or the development fallback
	Secret string        `env:"JWT_SECRET" envDefault:"kitchenpos_dev_secret"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	File  string `env:"LOG_FILE"`
}

// ManagerConfig seeds the first manager account. Nothing is seeded when
// Email is empty.
type ManagerConfig struct {
	Name     string `env:"MANAGER_NAME" envDefault:"Manager"`
	Email    string `env:"MANAGER_EMAIL"`
	Password string `env:"MANAGER_PASSWORD"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// InitDB opens the SQLite database at path and migrates every model.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Staff{},
		&models.Product{},
		&models.MenuGroup{},
		&models.Menu{},
		&models.MenuProduct{},
		&models.OrderTable{},
		&models.TableGroup{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}
