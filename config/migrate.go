package config

import (
	"log"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB, cfg *Config) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.SupportSession{},
		&models.SupportMessage{},
	)

	if err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database Migrations completed succesfully...")

	// Ensure baseline rows exist even on normal migration
	SeedCategories(db)
	SeedAdmin(db, cfg)
	SeedProducts(db)

	return err
}

func ResetAndMigrate(db *gorm.DB, cfg *Config) error {
	// Drop all tables
	tables := []interface{}{
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.SupportSession{},
		&models.SupportMessage{},
	}

	if err := db.Migrator().DropTable(tables...); err != nil {
		log.Printf("Failed to drop tables: %v", err)
		return err
	}

	log.Println("All tables dropped successfully.")

	if err := db.AutoMigrate(tables...); err != nil {
		log.Printf("Failed to auto migrate: %v", err)
		return err
	}

	SeedCategories(db)
	SeedAdmin(db, cfg)
	SeedProducts(db)

	log.Println("Database reset and migration completed successfully.")
	return nil
}
