package migration

import (
	"Waste2Wealth-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Report{}); err != nil {
		log.Fatalf("Error migrating report database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Reward{}); err != nil {
		log.Fatalf("Error migrating reward database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Transaction{}); err != nil {
		log.Fatalf("Error migrating transaction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Notification{}); err != nil {
		log.Fatalf("Error migrating notification database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CollectedWaste{}); err != nil {
		log.Fatalf("Error migrating collected waste database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
