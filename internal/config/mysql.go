package config

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the MySQL connection. TranslateError is on so duplicate-key
// violations surface as gorm.ErrDuplicatedKey, which the store adapter maps
// onto the Conflict error.
func InitDB() {
	dsn := os.Getenv("DB_DSN")

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Error connecting to the database:", err)
	}
	log.Println("Database connected")
}
