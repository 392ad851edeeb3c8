package persistence

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/infrastructure/config"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/infrastructure/persistence/models"
)

// Database holds the local database connection. The service keeps only the
// address-override table here; order data always comes from the external
// source and is never stored.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (creating if needed) the sqlite database at the
// configured path and migrates the schema.
func NewDatabase(cfg *config.StoreConfig) (*Database, error) {
	return open(cfg.Path)
}

// NewInMemoryDatabase opens a throwaway in-memory database, used in tests
func NewInMemoryDatabase() (*Database, error) {
	return open("file::memory:?cache=shared")
}

func open(path string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&models.OverrideModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}
