package utils

import (
	"popout/models"

	"gorm.io/gorm"
)

// SeedCategories inserts the fixed category set if missing. Safe to run
// on every boot.
func SeedCategories(db *gorm.DB) {
	categories := []models.Category{
		{Name: "Food & Drink"},
		{Name: "Art"},
		{Name: "Music"},
		{Name: "Sports & Fitness"},
		{Name: "Hobbies"},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := db.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			db.Create(&cat)
		}
	}
}
