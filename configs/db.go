package configs

import (
	"github.com/amalakkad93/StarcoEat/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{}, &entity.MenuItemImg{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Delivery{}, &entity.Payment{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{}, &entity.ReviewImg{},
		&entity.Favorite{},
	)
}
