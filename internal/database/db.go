package database

import (
	"log"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"cape/internal/cart"
	"cape/internal/menu"
	"cape/internal/models"
)

var DB *gorm.DB

// InitDB opens the database, migrates the schema and seeds the menu.
func InitDB(dbPath string) error {
	var err error
	DB, err = gorm.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	if err := Migrate(DB); err != nil {
		return err
	}
	seedMenu(DB)
	return nil
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.MenuItem{},
		&models.Booking{},
		&models.OrderRecord{},
		&cart.Record{},
	).Error
}

// seedMenu loads the reference menu into the database when the table is
// empty.
func seedMenu(db *gorm.DB) {
	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}

	for _, item := range menu.Items() {
		if err := db.Create(&item).Error; err != nil {
			log.Printf("database: failed to seed menu item %d: %v", item.ID, err)
		}
	}
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}

// CloseDB closes the database connection.
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
