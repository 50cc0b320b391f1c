package db

import (
	"fmt"
	"log"
	"os"

	"lostfound/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.AuditLog{}); err != nil {
		return err
	}

	// Claim/unclaim filters on list membership.
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_claimed_by_gin
	  ON %s USING GIN (claimed_by);
	`, models.ItemTable, models.ItemTable)).Error; err != nil {
		return err
	}

	// The browse view only ever reads unverified items, newest first.
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_unverified_recent
	  ON %s (created_at DESC)
	  WHERE is_verified = FALSE;
	`, models.ItemTable, models.ItemTable)).Error; err != nil {
		return err
	}

	return nil
}
