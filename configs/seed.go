package configs

import (
	"github.com/amalakkad93/StarcoEat/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData loads a demo user and two restaurants with menus so a
// fresh database is browsable. Skipped when restaurants already exist.
func SeedDemoData() error {
	var n int64
	if err := db.Model(&entity.Restaurant{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	demo := entity.User{
		Username:  "demo",
		Email:     "demo@starcoeat.io",
		Password:  string(hashed),
		FirstName: "Demo",
		LastName:  "User",
	}
	if err := db.Create(&demo).Error; err != nil {
		return err
	}

	restaurants := []entity.Restaurant{
		{
			OwnerID:       demo.ID,
			Name:          "Starco Pizzeria",
			Description:   "Wood-fired pizza and calzones.",
			FoodType:      "Pizza",
			StreetAddress: "101 Market St",
			City:          "San Francisco",
			State:         "CA",
			PostalCode:    "94105",
			Country:       "USA",
			OpeningTime:   "11:00",
			ClosingTime:   "22:00",
		},
		{
			OwnerID:       demo.ID,
			Name:          "Golden Wok",
			Description:   "Cantonese classics.",
			FoodType:      "Chinese",
			StreetAddress: "88 Grant Ave",
			City:          "San Francisco",
			State:         "CA",
			PostalCode:    "94108",
			Country:       "USA",
			OpeningTime:   "10:30",
			ClosingTime:   "21:30",
		},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	menuItems := []entity.MenuItem{
		{RestaurantID: restaurants[0].ID, Name: "Margherita", Type: "entree", Price: 14.50, Description: "Tomato, mozzarella, basil."},
		{RestaurantID: restaurants[0].ID, Name: "Garlic Knots", Type: "appetizer", Price: 5.00, Description: "Six knots with marinara."},
		{RestaurantID: restaurants[0].ID, Name: "Tiramisu", Type: "dessert", Price: 7.25},
		{RestaurantID: restaurants[1].ID, Name: "Beef Chow Fun", Type: "entree", Price: 12.50},
		{RestaurantID: restaurants[1].ID, Name: "Spring Rolls", Type: "appetizer", Price: 6.00},
	}
	return db.Create(&menuItems).Error
}
