package db

import (
	"fmt"
	"log"
	"time"

	"shikshamitra/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config enables TranslateError so unique-index violations surface as
// gorm.ErrDuplicatedKey; the auth service relies on that to map a lost
// check-then-insert race to a conflict.
func Config() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

func Init(dsn string) {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), Config())
	if err != nil {
		log.Fatal("connection to db failed:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get db from GORM: ", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	fmt.Println("(SUCCESS): connected to database successfully ")

	// AutoMigrate required tables
	if err = DB.AutoMigrate(&models.Credential{}); err != nil {
		log.Fatal("AutoMigration failed for Credential: ", err)
	}
	if err = DB.AutoMigrate(&models.Ticket{}); err != nil {
		log.Fatal("AutoMigration failed for Ticket: ", err)
	}
}
