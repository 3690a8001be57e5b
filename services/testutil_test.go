package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/amalakkad93/StarcoEat/entity"
	"github.com/amalakkad93/StarcoEat/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory sqlite database. The shared cache
// keeps every pooled connection on the same database; the name keeps
// tests isolated from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{}, &entity.MenuItemImg{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Delivery{}, &entity.Payment{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{}, &entity.ReviewImg{},
		&entity.Favorite{},
	))
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewDeliveryRepository(db),
		repository.NewMenuRepository(db),
	)
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	u := entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

// seedMenu creates a restaurant with two menu items priced 5.00 and
// 12.50.
func seedMenu(t *testing.T, db *gorm.DB, owner *entity.User) (entity.MenuItem, entity.MenuItem) {
	t.Helper()
	rest := entity.Restaurant{OwnerID: owner.ID, Name: "Test Kitchen", FoodType: "Test"}
	require.NoError(t, db.Create(&rest).Error)

	a := entity.MenuItem{RestaurantID: rest.ID, Name: "Item A", Type: "entree", Price: 5.00}
	b := entity.MenuItem{RestaurantID: rest.ID, Name: "Item B", Type: "entree", Price: 12.50}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)
	return a, b
}

func fillCart(t *testing.T, svc *CartService, userID uint, items ...entity.CartItem) {
	t.Helper()
	for _, it := range items {
		_, err := svc.Add(userID, it.MenuItemID, it.Quantity)
		require.NoError(t, err)
	}
}
