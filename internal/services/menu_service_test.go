package services

import (
	"testing"

	"github.com/burgerclub/gin-burger-api/internal/models"
	"github.com/burgerclub/gin-burger-api/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBurgerRejectsDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMenuService(db, nil)

	first := models.Burger{Name: "Classic", Price: 8.99, IsAvailable: true}
	require.NoError(t, svc.CreateBurger(&first, nil))

	dup := models.Burger{Name: "Classic", Price: 9.99, IsAvailable: true}
	assert.ErrorIs(t, svc.CreateBurger(&dup, nil), ErrDuplicateName)
}

func TestUpdateBurgerRejectsDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMenuService(db, nil)

	classic := models.Burger{Name: "Classic", Price: 8.99, IsAvailable: true}
	require.NoError(t, svc.CreateBurger(&classic, nil))
	deluxe := models.Burger{Name: "Deluxe", Price: 12.49, IsAvailable: true}
	require.NoError(t, svc.CreateBurger(&deluxe, nil))

	// Renaming onto another burger's name clashes the same way creation does
	deluxe.Name = "Classic"
	assert.ErrorIs(t, svc.UpdateBurger(&deluxe, nil), ErrDuplicateName)

	// Saving a burger under its own name is not a clash
	classic.Price = 9.49
	assert.NoError(t, svc.UpdateBurger(&classic, nil))
}

func TestBurgerCompositionSkipsBadRows(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMenuService(db, nil)

	cheese := models.Ingredient{Name: "Cheddar", Price: 0.80, IsAvailable: true}
	require.NoError(t, db.Create(&cheese).Error)
	bacon := models.Ingredient{Name: "Bacon", Price: 1.20, IsAvailable: true}
	require.NoError(t, db.Create(&bacon).Error)

	burger := models.Burger{Name: "Deluxe", Price: 12.49, IsAvailable: true}
	err := svc.CreateBurger(&burger, []IngredientSelection{
		{IngredientID: cheese.ID, Quantity: "2"},
		{IngredientID: bacon.ID, Quantity: "not-a-number"}, // skipped, not fatal
		{IngredientID: 999, Quantity: "1"},                 // unknown ingredient, skipped
	})
	require.NoError(t, err)

	var rows []models.BurgerIngredient
	require.NoError(t, db.Where("burger_id = ?", burger.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, cheese.ID, rows[0].IngredientID)
	assert.InDelta(t, 2.0, rows[0].Quantity, 0.001)
}

func TestToggleBurgerAvailability(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMenuService(db, nil)

	burger := models.Burger{Name: "Classic", Price: 8.99, IsAvailable: true}
	require.NoError(t, svc.CreateBurger(&burger, nil))

	toggled, err := svc.ToggleAvailability(burger.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsAvailable)

	toggled, err = svc.ToggleAvailability(burger.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsAvailable)
}

func TestDeleteBurgerReferentialBehavior(t *testing.T) {
	db := setupTestDB(t)
	menu := NewMenuService(db, nil)
	carts := NewCartService(db)
	orders := NewOrderService(db, payment.NewSimulatedGateway())

	user := createTestUser(t, db, "alice", false)
	cheese := models.Ingredient{Name: "Cheddar", Price: 0.80, IsAvailable: true}
	require.NoError(t, db.Create(&cheese).Error)

	burger := models.Burger{Name: "Classic", Price: 8.99, IsAvailable: true}
	require.NoError(t, menu.CreateBurger(&burger, []IngredientSelection{{IngredientID: cheese.ID, Quantity: "1"}}))

	// Place an order for the burger, then leave another one in the cart
	_, err := carts.Add(user.ID, burger.ID, 1)
	require.NoError(t, err)
	order, err := orders.Checkout(user.ID)
	require.NoError(t, err)
	_, err = carts.Add(user.ID, burger.ID, 1)
	require.NoError(t, err)

	require.NoError(t, menu.DeleteBurger(burger.ID))

	// Cart and composition rows are gone with the burger
	var cartCount, compCount int64
	db.Model(&models.CartItem{}).Count(&cartCount)
	db.Model(&models.BurgerIngredient{}).Count(&compCount)
	assert.Equal(t, int64(0), cartCount)
	assert.Equal(t, int64(0), compCount)

	// The placed order keeps its receipt lines and total
	var reloaded models.Order
	require.NoError(t, db.Preload("Items").First(&reloaded, order.ID).Error)
	require.Len(t, reloaded.Items, 1)
	assert.InDelta(t, 8.99, reloaded.Items[0].PriceAtOrder, 0.001)
	assert.InDelta(t, 8.99, reloaded.TotalPrice, 0.001)
}

func TestDeleteIngredientCascadesToCompositionOnly(t *testing.T) {
	db := setupTestDB(t)
	menu := NewMenuService(db, nil)
	ingredients := NewIngredientService(db)

	cheese := models.Ingredient{Name: "Cheddar", Price: 0.80, IsAvailable: true}
	require.NoError(t, ingredients.CreateIngredient(&cheese))

	burger := models.Burger{Name: "Cheeseburger", Price: 9.99, IsAvailable: true}
	require.NoError(t, menu.CreateBurger(&burger, []IngredientSelection{{IngredientID: cheese.ID, Quantity: "1"}}))

	require.NoError(t, ingredients.DeleteIngredient(cheese.ID))

	var compCount, burgerCount int64
	db.Model(&models.BurgerIngredient{}).Count(&compCount)
	db.Model(&models.Burger{}).Count(&burgerCount)
	assert.Equal(t, int64(0), compCount)
	assert.Equal(t, int64(1), burgerCount)
}

func TestIngredientDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)

	first := models.Ingredient{Name: "Cheddar", IsAvailable: true}
	require.NoError(t, svc.CreateIngredient(&first))

	dup := models.Ingredient{Name: "Cheddar"}
	assert.ErrorIs(t, svc.CreateIngredient(&dup), ErrDuplicateName)
}
