package client

import (
	"log"

	"plateforge/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitSqliteClient opens the sqlite database (an in-memory one by default,
// matching the volatile storage model of the service) and migrates the
// catalog and order tables.
func InitSqliteClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&model.PlateSelection{},
		&model.PlateType{},
		&model.Badge{},
		&model.BadgeColor{},
		&model.TextStyle{},
		&model.BorderColor{},
		&model.PlateSurround{},
		&model.Order{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
