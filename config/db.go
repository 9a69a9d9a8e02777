package config

import (
	"fmt"
	"os"

	"hospital/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// GetDatabaseURL builds the database connection string.
func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB initializes the database connection and runs migrations.
// TranslateError is on so the unique index on rooms.room_number surfaces
// as gorm.ErrDuplicatedKey instead of a driver-specific error.
func BootDB() (*gorm.DB, error) {
	url := GetDatabaseURL()
	var err error

	db, err = gorm.Open(postgres.Open(url), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return db, err
	}

	fmt.Println("DB initialized")
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	if err := db.Exec(`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'gender_enum') THEN
			CREATE TYPE gender_enum AS ENUM ('Male', 'Female', 'Other');
		END IF;
	END $$`).Error; err != nil {
		return fmt.Errorf("failed to create gender ENUM: %w", err)
	}

	if err := db.Exec(`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'room_type_enum') THEN
			CREATE TYPE room_type_enum AS ENUM ('General', 'Private', 'ICU', 'Emergency');
		END IF;
	END $$`).Error; err != nil {
		return fmt.Errorf("failed to create room type ENUM: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.Patient{},
		&domain.Room{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	return nil
}
