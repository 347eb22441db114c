package cart

import (
	"errors"
	"fmt"

	"github.com/hubshop/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("invalid quantity")

// Ledger maps composite line keys to quantities and locked unit
// attributes. It is not safe for concurrent use on its own; the owning
// session serializes access.
type Ledger struct {
	lines []models.CartLine
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add merges quantity into an existing line with the same composite key,
// or inserts a new line with the product's price locked at insertion
// time. Quantities below 1 are rejected with no state change.
func (l *Ledger) Add(p models.Product, quantity int, size string) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be >= 1, got %d", ErrInvalidQuantity, quantity)
	}

	key := models.LineKey(p.ID, size)
	for i := range l.lines {
		if l.lines[i].Key() == key {
			l.lines[i].Quantity += quantity
			return nil
		}
	}

	l.lines = append(l.lines, models.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
		Size:      size,
		Category:  p.Category,
		Image:     p.Image,
	})
	return nil
}

// Remove deletes the line with the given composite key. Absent keys are a
// no-op, not an error.
func (l *Ledger) Remove(key string) {
	for i := range l.lines {
		if l.lines[i].Key() == key {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// AdjustQuantity applies delta to the line's quantity, clamped to at
// least 1. Dropping a line entirely requires Remove. Absent keys are a
// silent no-op.
func (l *Ledger) AdjustQuantity(key string, delta int) {
	for i := range l.lines {
		if l.lines[i].Key() == key {
			q := l.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			l.lines[i].Quantity = q
			return
		}
	}
}

// Clear empties all lines. Called only by checkout.
func (l *Ledger) Clear() {
	l.lines = nil
}

func (l *Ledger) Empty() bool {
	return len(l.lines) == 0
}

// Lines returns the cart contents in insertion order. The returned slice
// is the caller's to keep.
func (l *Ledger) Lines() []models.CartLine {
	out := make([]models.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// Snapshot is the deep, independent copy handed to checkout. CartLine
// holds no reference types, so a value copy is a full copy.
func (l *Ledger) Snapshot() []models.CartLine {
	return l.Lines()
}

// Subtotal is the exact sum of price x quantity over all lines.
func (l *Ledger) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// TotalItemCount is the sum of quantities, used for the cart badge.
func (l *Ledger) TotalItemCount() int {
	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}
