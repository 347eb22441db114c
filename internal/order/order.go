package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hubshop/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrValidation       = errors.New("validation")
	ErrEmptyCart        = errors.New("empty cart")
	ErrNotFound         = errors.New("order not found")
	ErrAlreadyCancelled = errors.New("order already cancelled")
)

// Ledger is the append-only sequence of finalized orders, most recent
// first. Orders are never mutated after creation except their status, and
// never deleted. Like the cart ledger it relies on the owning session for
// serialization.
type Ledger struct {
	orders []models.Order
	now    func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{now: func() time.Time { return time.Now().UTC() }}
}

// Checkout snapshots the given cart lines into a new completed order.
// The total is recomputed from the lines; a caller-supplied total is
// never trusted. An empty snapshot is rejected and nothing is created.
func (l *Ledger) Checkout(lines []models.CartLine, userID string) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: nothing to order", ErrEmptyCart)
	}
	if userID == "" {
		userID = models.GuestUserID
	}

	total := decimal.Zero
	items := make([]models.CartLine, len(lines))
	for i, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
		}
		if line.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}
		items[i] = line
		total = total.Add(line.LineTotal())
	}

	ord := models.Order{
		ID:        "ord-" + uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Total:     total,
		Status:    models.OrderStatusCompleted,
		CreatedAt: l.now(),
	}

	// Most recent first.
	l.orders = append([]models.Order{ord}, l.orders...)

	out := cloneOrder(ord)
	return &out, nil
}

// History returns orders most-recent-first. A non-empty userID restricts
// the result to that user's orders.
func (l *Ledger) History(userID string) []models.Order {
	out := make([]models.Order, 0, len(l.orders))
	for _, ord := range l.orders {
		if userID != "" && ord.UserID != userID {
			continue
		}
		out = append(out, cloneOrder(ord))
	}
	return out
}

func (l *Ledger) Get(id string) (*models.Order, error) {
	for _, ord := range l.orders {
		if ord.ID == id {
			out := cloneOrder(ord)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Cancel flips an order to cancelled, the only status transition allowed
// after creation. Cancelled orders stay in history.
func (l *Ledger) Cancel(id string) (*models.Order, error) {
	for i := range l.orders {
		if l.orders[i].ID != id {
			continue
		}
		if l.orders[i].Status == models.OrderStatusCancelled {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyCancelled, id)
		}
		l.orders[i].Status = models.OrderStatusCancelled
		out := cloneOrder(l.orders[i])
		return &out, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func cloneOrder(ord models.Order) models.Order {
	items := make([]models.CartLine, len(ord.Items))
	copy(items, ord.Items)
	ord.Items = items
	return ord
}
