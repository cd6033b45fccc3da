package config

import (
	"log"
	"os"

	"github.com/tmarchal/agence-voyage/models"
	"github.com/tmarchal/agence-voyage/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the SQLite database file, migrates the six tables and
// seeds the default rows. The path comes from DB_PATH (default agence.db).
func ConnectDB() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "agence.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Reservation{},
		&models.Comment{},
		&models.Destination{},
		&models.HomepageImage{},
		&models.SiteText{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := Seed(db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	DB = db
	log.Println("Connected to SQLite & migrated successfully")
}

// Seed inserts the default rows on first boot. Every step checks for
// existing data first, so running it again is a no-op.
func Seed(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		hash, err := utils.HashPassword("admin123")
		if err != nil {
			return err
		}
		admin := models.User{Username: "admin", PasswordHash: hash}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	defaultTexts := []models.SiteText{
		{Identifier: models.TextPresentation, Content: "Bienvenue sur notre agence de voyage ! Nous vous proposons les meilleures destinations à des prix compétitifs."},
		{Identifier: models.TextContact, Content: "Contactez-nous au 01 23 45 67 89 ou par email à contact@agence-voyage.com"},
		{Identifier: models.TextFooter, Content: "© 2023 Agence de Voyage. Tous droits réservés."},
	}
	for _, txt := range defaultTexts {
		var n int64
		db.Model(&models.SiteText{}).Where("identifiant = ?", txt.Identifier).Count(&n)
		if n == 0 {
			if err := db.Create(&txt).Error; err != nil {
				return err
			}
		}
	}

	db.Model(&models.Destination{}).Count(&count)
	if count == 0 {
		paris := "paris.jpg"
		tokyo := "tokyo.jpg"
		newyork := "newyork.jpg"
		bali := "bali.jpg"
		defaults := []models.Destination{
			{Title: "Paris, France", Description: "La ville lumière avec sa tour Eiffel et ses monuments historiques.", Price: 799.99, ImageURL: &paris},
			{Title: "Tokyo, Japon", Description: "Mélange unique de tradition et de modernité.", Price: 1299.99, ImageURL: &tokyo},
			{Title: "New York, USA", Description: "La ville qui ne dort jamais.", Price: 1099.99, ImageURL: &newyork},
			{Title: "Bali, Indonésie", Description: "Plages paradisiaques et culture riche.", Price: 899.99, ImageURL: &bali},
		}
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
	}

	return nil
}
