package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hubshop/storefront/internal/cart"
	"github.com/hubshop/storefront/internal/models"
	"github.com/hubshop/storefront/internal/order"
	"github.com/shopspring/decimal"
)

type View string

const (
	ViewStore  View = "store"
	ViewAdmin  View = "admin"
	ViewOrders View = "orders"
	ViewAuth   View = "auth"
)

var ErrUnknownView = errors.New("unknown view")

// State is the application state for one session: active view, identity,
// search text, and the cart and order ledgers. All mutation goes through
// its methods; the mutex makes each operation a single observable
// transition even under concurrent HTTP delivery.
type State struct {
	ID string

	mu       sync.Mutex
	view     View
	user     *models.User
	search   string
	cart     *cart.Ledger
	orders   *order.Ledger
	lastSeen time.Time
}

func newState(id string, now time.Time) *State {
	return &State{
		ID:       id,
		view:     ViewStore,
		cart:     cart.NewLedger(),
		orders:   order.NewLedger(),
		lastSeen: now,
	}
}

func (s *State) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *State) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *State) SetView(v View) error {
	switch v {
	case ViewStore, ViewAdmin, ViewOrders, ViewAuth:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownView, v)
	}
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
	return nil
}

func (s *State) SetSearch(query string) {
	s.mu.Lock()
	s.search = query
	s.mu.Unlock()
}

func (s *State) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// Login resolves the mock identity; real authentication is out of scope.
func (s *State) Login() models.User {
	u := models.MockUser()
	s.mu.Lock()
	s.user = &u
	s.view = ViewStore
	s.mu.Unlock()
	return u
}

func (s *State) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// User returns a copy of the current user, or nil for a guest session.
func (s *State) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// UserID is the order-owning identity: the user's id, or the guest
// sentinel.
func (s *State) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.GuestUserID
	}
	return s.user.ID
}

func (s *State) AddToCart(p models.Product, quantity int, size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Add(p, quantity, size)
}

func (s *State) RemoveFromCart(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(key)
}

func (s *State) AdjustCartQuantity(key string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AdjustQuantity(key, delta)
}

func (s *State) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// CartContents returns lines, subtotal and item count as one consistent
// read.
func (s *State) CartContents() ([]models.CartLine, decimal.Decimal, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines(), s.cart.Subtotal(), s.cart.TotalItemCount()
}

// Checkout snapshots the cart into a new order, clears the cart, and
// redirects to the order view, all under one lock: no observer ever sees
// the old cart and the new order together. On failure the cart is left
// untouched and no order is created.
func (s *State) Checkout() (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID := models.GuestUserID
	if s.user != nil {
		userID = s.user.ID
	}

	ord, err := s.orders.Checkout(s.cart.Snapshot(), userID)
	if err != nil {
		return nil, err
	}
	s.cart.Clear()
	s.view = ViewOrders
	return ord, nil
}

// Orders is the current identity's history, most recent first.
func (s *State) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return s.orders.History(models.GuestUserID)
	}
	return s.orders.History(s.user.ID)
}

// AllOrders is the unfiltered history, used by the admin dashboard.
func (s *State) AllOrders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.History("")
}

func (s *State) GetOrder(id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.Get(id)
}

func (s *State) CancelOrder(id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.Cancel(id)
}
