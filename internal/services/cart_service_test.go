package services

import (
	"testing"

	"github.com/burgerclub/gin-burger-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// An in-memory sqlite database exists per connection; pin the pool to a
	// single connection so every query and transaction sees the same schema
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Burger{},
		&models.BurgerIngredient{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		FullName:     "Test " + username,
		IsAdmin:      isAdmin,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestBurger(t *testing.T, db *gorm.DB, name string, price float64, available bool) *models.Burger {
	burger := &models.Burger{
		Name:        name,
		Price:       price,
		IsAvailable: available,
	}
	require.NoError(t, db.Create(burger).Error)
	return burger
}

func TestCartAddAccumulatesQuantity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	user := createTestUser(t, db, "alice", false)
	burger := createTestBurger(t, db, "Classic", 8.99, true)

	item, err := svc.Add(user.ID, burger.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	item, err = svc.Add(user.ID, burger.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	// Still exactly one row for (user, burger)
	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCartAddClampsQuantity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	user := createTestUser(t, db, "alice", false)
	burger := createTestBurger(t, db, "Classic", 8.99, true)

	item, err := svc.Add(user.ID, burger.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartAddUnknownBurger(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	user := createTestUser(t, db, "alice", false)

	_, err := svc.Add(user.ID, 999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartAddUnavailableBurger(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	user := createTestUser(t, db, "alice", false)
	burger := createTestBurger(t, db, "Seasonal", 10.99, false)

	_, err := svc.Add(user.ID, burger.ID, 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCartAddRowRemovedUnderneath(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	user := createTestUser(t, db, "alice", false)
	burger := createTestBurger(t, db, "Classic", 8.99, true)

	// Drop the row right after the upsert writes it, standing in for a
	// concurrent Remove or Clear landing before the read-back
	err := db.Callback().Create().After("gorm:create").Register("drop_fresh_cart_rows", func(tx *gorm.DB) {
		if tx.Statement.Table == "cart_items" {
			tx.Session(&gorm.Session{NewDB: true}).
				Where("user_id = ?", user.ID).
				Delete(&models.CartItem{})
		}
	})
	require.NoError(t, err)
	defer db.Callback().Create().Remove("drop_fresh_cart_rows")

	_, err = svc.Add(user.ID, burger.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartRemoveOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)
	burger := createTestBurger(t, db, "Classic", 8.99, true)

	item, err := svc.Add(alice.ID, burger.ID, 1)
	require.NoError(t, err)

	err = svc.Remove(bob.ID, item.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Remove(bob.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Remove(alice.ID, item.ID))

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCartUpdateQuantity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	user := createTestUser(t, db, "alice", false)
	burger := createTestBurger(t, db, "Classic", 8.99, true)

	item, err := svc.Add(user.ID, burger.ID, 1)
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(user.ID, item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	// Update-to-zero removes the row
	removed, err := svc.UpdateQuantity(user.ID, item.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, removed)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCartViewLiveTotal(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCartService(db)
	user := createTestUser(t, db, "alice", false)
	classic := createTestBurger(t, db, "Classic", 8.99, true)
	deluxe := createTestBurger(t, db, "Deluxe", 12.49, true)

	_, err := svc.Add(user.ID, classic.ID, 2)
	require.NoError(t, err)
	_, err = svc.Add(user.ID, deluxe.ID, 1)
	require.NoError(t, err)

	items, total, err := svc.View(user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.InDelta(t, 2*8.99+12.49, total, 0.001)

	// Cart totals are live: a catalog price change is reflected immediately
	require.NoError(t, db.Model(classic).Update("price", 10.99).Error)
	_, total, err = svc.View(user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2*10.99+12.49, total, 0.001)
}
