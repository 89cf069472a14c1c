package db

import (
	"fmt"
	"log"

	"aero-club/tower/internal/constants"
	gormModels "aero-club/tower/internal/models/gorm"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	PgDB = db
	log.Println("Connected to Postgres via GORM")
	return db, nil
}

// Migrate creates the schema and seeds the fixed SMS booking user.
// Also used by the sqlite-backed tests.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&gormModels.Airplane{},
		&gormModels.User{},
		&gormModels.Reservation{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	smsUser := gormModels.User{ID: constants.SMSUserID, Name: constants.SMSUserName}
	if err := db.FirstOrCreate(&smsUser, gormModels.User{ID: constants.SMSUserID}).Error; err != nil {
		return fmt.Errorf("failed to seed sms user: %w", err)
	}
	return nil
}
