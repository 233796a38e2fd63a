package services

import (
	"errors"

	"github.com/burgerclub/gin-burger-api/internal/models"
	"github.com/burgerclub/gin-burger-api/internal/payment"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// statusTransitions is the explicit order state machine. The six labels are
// fixed; a status not present as a key is terminal. Cancellation is reachable
// from every non-terminal state and is itself terminal: a cancelled order is
// never reactivated, the customer places a new one.
var statusTransitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing: {models.StatusReady, models.StatusCancelled},
	models.StatusReady:     {models.StatusDelivered, models.StatusCancelled},
}

func canTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderService owns the order lifecycle: the atomic cart-to-order checkout,
// the payment transition and the admin status state machine.
type OrderService interface {
	// Checkout converts the user's cart into an order in one transaction.
	// Order, order items and cart clearing commit together or not at all.
	Checkout(userID uint) (*models.Order, error)
	// Pay charges the order total through the gateway and applies the
	// payment outcome to the order. A completed payment is returned as-is
	// without a new charge; terminal orders refuse payment.
	Pay(userID, orderID uint, simulateFailure bool) (*models.Order, error)
	// UpdateStatus moves an order through the status state machine (admin only)
	UpdateStatus(actor Actor, orderID uint, newStatus string) (*models.Order, error)
	// GetOrder returns an order with its items, gated by ownership (or admin)
	GetOrder(actor Actor, orderID uint) (*models.Order, error)
	// ListForUser returns the user's orders, newest first
	ListForUser(userID uint) ([]models.Order, error)
	// ListAll returns every order, optionally filtered by status (admin only)
	ListAll(actor Actor, status string) ([]models.Order, error)
}

type orderService struct {
	db      *gorm.DB
	gateway payment.Gateway
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB, gateway payment.Gateway) OrderService {
	return &orderService{db: db, gateway: gateway}
}

func (s *orderService) Checkout(userID uint) (*models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Burger").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		// Price the order from the catalog as it stands at this instant
		var total float64
		for _, it := range items {
			total += it.Burger.Price * float64(it.Quantity)
		}

		order = models.Order{
			UserID:        userID,
			TotalPrice:    total,
			Status:        models.StatusPending,
			PaymentStatus: models.PaymentPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		ids := make([]uint, 0, len(items))
		for _, it := range items {
			oi := models.OrderItem{
				OrderID:      order.ID,
				BurgerID:     it.BurgerID,
				Quantity:     it.Quantity,
				PriceAtOrder: it.Burger.Price,
			}
			if err := tx.Create(&oi).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
			ids = append(ids, it.ID)
		}

		// Clear exactly the rows we snapshotted. If a concurrent checkout
		// already consumed them the count comes up short and the whole
		// transaction rolls back, so at most one order is created per cart
		// state and the cart never double-charges.
		res := tx.Where("id IN ? AND user_id = ?", ids, userID).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(ids)) {
			return ErrEmptyCart
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_id": order.ID,
		"user_id":  userID,
		"total":    order.TotalPrice,
		"items":    len(order.Items),
	}).Info("Order created from cart")
	return &order, nil
}

func (s *orderService) Pay(userID, orderID uint, simulateFailure bool) (*models.Order, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrForbidden
	}
	// An order that already collected its payment is done; return it as-is
	// instead of charging the gateway again.
	if order.PaymentStatus == models.PaymentCompleted {
		return order, nil
	}
	// A terminal order (cancelled, delivered) never takes a payment
	if order.IsTerminal() {
		return nil, ErrInvalidTransition
	}

	result := s.gateway.Charge(payment.ChargeRequest{
		OrderID:         order.ID,
		Amount:          order.TotalPrice,
		SimulateFailure: simulateFailure,
	})

	// Payment status and order status move as one transition: the pair is
	// written in a single UPDATE so no reader observes payment completed
	// while the order is still pending.
	updates := map[string]interface{}{
		"payment_ref": result.Reference,
	}
	if result.Succeeded() {
		updates["payment_status"] = models.PaymentCompleted
		updates["status"] = models.StatusConfirmed
	} else {
		updates["payment_status"] = models.PaymentFailed
	}

	// Guard on the status we charged against, mirroring UpdateStatus: if an
	// admin moved the order while the gateway ran, the write loses cleanly.
	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, order.Status).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	log.WithFields(log.Fields{
		"order_id": order.ID,
		"outcome":  result.Outcome,
		"ref":      result.Reference,
	}).Info("Payment outcome applied")
	return s.loadOrder(orderID)
}

func (s *orderService) UpdateStatus(actor Actor, orderID uint, newStatus string) (*models.Order, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	if !models.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !canTransition(order.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	// Guard on the previous status so a concurrent transition loses cleanly
	// instead of overwriting (affected-rows check, not a second read).
	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, order.Status).
		Update("status", newStatus)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	log.WithFields(log.Fields{
		"order_id": orderID,
		"from":     order.Status,
		"to":       newStatus,
		"admin_id": actor.ID,
	}).Info("Order status updated")
	return s.loadOrder(orderID)
}

func (s *orderService) GetOrder(actor Actor, orderID uint) (*models.Order, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	// Customers read their own orders; ownership, not role, is the gate.
	// Admins may read any order.
	if order.UserID != actor.ID && !actor.IsAdmin {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *orderService) ListForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) ListAll(actor Actor, status string) ([]models.Order, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	query := s.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) loadOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").Preload("Items.Burger").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}
