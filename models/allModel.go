package models

import (
	"log"

	"bitbucket.org/mmdatafocus/profit_backend/config"
)

func MigrateTable() {
	db := config.GetDB()
	err := db.AutoMigrate(
		&Product{},
		&ProductHistory{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}
