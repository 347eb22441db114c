package session

import (
	"testing"
	"time"

	"github.com/hubshop/storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testProduct(id, price string) models.Product {
	return models.Product{
		ID:       id,
		Name:     "product " + id,
		Price:    decimal.RequireFromString(price),
		Category: models.CategoryFashion,
	}
}

func newTestState() *State {
	return newState("test-session", time.Now().UTC())
}

func TestCheckoutIsOneTransition(t *testing.T) {
	st := newTestState()
	require.NoError(t, st.AddToCart(testProduct("p1", "19.99"), 3, ""))

	_, subtotal, _ := st.CartContents()

	ord, err := st.Checkout()
	require.NoError(t, err)

	// Order total equals the pre-checkout subtotal, the cart is empty,
	// the new order is first in history, and the view moved to orders.
	require.Equal(t, subtotal.StringFixed(2), ord.Total.StringFixed(2))
	require.Equal(t, "59.97", ord.Total.StringFixed(2))

	lines, _, count := st.CartContents()
	require.Empty(t, lines)
	require.Zero(t, count)

	hist := st.Orders()
	require.Len(t, hist, 1)
	require.Equal(t, ord.ID, hist[0].ID)
	require.Equal(t, ViewOrders, st.View())
}

func TestCheckoutEmptyCartLeavesEverythingUntouched(t *testing.T) {
	st := newTestState()
	require.NoError(t, st.SetView(ViewStore))

	_, err := st.Checkout()
	require.Error(t, err)
	require.Empty(t, st.Orders())
	require.Equal(t, ViewStore, st.View())
}

func TestCheckoutOrderIsImmuneToLaterCartMutation(t *testing.T) {
	st := newTestState()
	require.NoError(t, st.AddToCart(testProduct("p1", "50.00"), 2, "M"))

	ord, err := st.Checkout()
	require.NoError(t, err)

	require.NoError(t, st.AddToCart(testProduct("p1", "50.00"), 9, "M"))
	st.AdjustCartQuantity("p1:M", 5)

	stored, err := st.GetOrder(ord.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	require.Equal(t, 2, stored.Items[0].Quantity)
	require.Equal(t, "100.00", stored.Total.StringFixed(2))
}

func TestGuestAndUserOrderOwnership(t *testing.T) {
	st := newTestState()
	require.Nil(t, st.User())
	require.Equal(t, models.GuestUserID, st.UserID())

	require.NoError(t, st.AddToCart(testProduct("p1", "10.00"), 1, ""))
	guestOrd, err := st.Checkout()
	require.NoError(t, err)
	require.Equal(t, models.GuestUserID, guestOrd.UserID)

	user := st.Login()
	require.Equal(t, "user-1", user.ID)
	require.True(t, user.IsAdmin)

	// The guest order belongs to the guest identity, not the user.
	require.Empty(t, st.Orders())

	require.NoError(t, st.AddToCart(testProduct("p2", "20.00"), 1, ""))
	userOrd, err := st.Checkout()
	require.NoError(t, err)
	require.Equal(t, "user-1", userOrd.UserID)
	require.Len(t, st.Orders(), 1)
	require.Len(t, st.AllOrders(), 2)

	st.Logout()
	require.Len(t, st.Orders(), 1)
	require.Equal(t, guestOrd.ID, st.Orders()[0].ID)
}

func TestSetViewRejectsUnknownName(t *testing.T) {
	st := newTestState()

	require.ErrorIs(t, st.SetView("dashboard"), ErrUnknownView)
	require.Equal(t, ViewStore, st.View())

	require.NoError(t, st.SetView(ViewAdmin))
	require.Equal(t, ViewAdmin, st.View())
}

func TestSearchText(t *testing.T) {
	st := newTestState()
	require.Empty(t, st.Search())
	st.SetSearch("wool")
	require.Equal(t, "wool", st.Search())
}

func TestManagerCreatesAndResolvesSessions(t *testing.T) {
	m := NewManager(time.Hour)

	st := m.GetOrCreate("")
	require.NotEmpty(t, st.ID)
	require.Equal(t, 1, m.Len())

	same := m.GetOrCreate(st.ID)
	require.Same(t, st, same)
	require.Equal(t, 1, m.Len())

	other := m.GetOrCreate("unknown-id")
	require.NotEqual(t, st.ID, other.ID)
	require.Equal(t, 2, m.Len())
}

func TestManagerExpiresIdleSessions(t *testing.T) {
	m := NewManager(10 * time.Minute)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	st := m.GetOrCreate("")
	require.NoError(t, st.AddToCart(testProduct("p1", "10.00"), 1, ""))

	// Still alive inside the ttl.
	now = now.Add(5 * time.Minute)
	require.Same(t, st, m.GetOrCreate(st.ID))

	// Gone after the ttl: a fresh session with an empty cart.
	now = now.Add(11 * time.Minute)
	fresh := m.GetOrCreate(st.ID)
	require.NotEqual(t, st.ID, fresh.ID)
	lines, _, _ := fresh.CartContents()
	require.Empty(t, lines)
}
