package cart

import (
	"testing"

	"github.com/hubshop/storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testProduct(id, name, price string) models.Product {
	return models.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: models.CategoryFashion,
	}
}

func TestAddMergesSameCompositeKey(t *testing.T) {
	l := NewLedger()
	p1 := testProduct("p1", "Over-sized Wool Coat", "50.00")

	require.NoError(t, l.Add(p1, 1, "M"))
	require.NoError(t, l.Add(p1, 1, "L"))
	require.NoError(t, l.Add(p1, 2, "M"))

	lines := l.Lines()
	require.Len(t, lines, 2)
	require.Equal(t, "p1:M", lines[0].Key())
	require.Equal(t, 3, lines[0].Quantity)
	require.Equal(t, "p1:L", lines[1].Key())
	require.Equal(t, 1, lines[1].Quantity)
	require.Equal(t, "200", l.Subtotal().String())
}

func TestAddQuantitySumsOverRepeatedAdds(t *testing.T) {
	l := NewLedger()
	p := testProduct("p1", "Aura Headphones", "299.99")

	added := 0
	for _, q := range []int{1, 4, 2, 3} {
		require.NoError(t, l.Add(p, q, ""))
		added += q
	}

	lines := l.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, added, lines[0].Quantity)
	require.Equal(t, added, l.TotalItemCount())
}

func TestAddRejectsQuantityBelowOne(t *testing.T) {
	l := NewLedger()
	p := testProduct("p1", "Aura Headphones", "299.99")

	require.ErrorIs(t, l.Add(p, 0, ""), ErrInvalidQuantity)
	require.ErrorIs(t, l.Add(p, -3, ""), ErrInvalidQuantity)
	require.True(t, l.Empty())
}

func TestAddLocksPriceAtInsertionTime(t *testing.T) {
	l := NewLedger()
	p := testProduct("p1", "Minimalist Timepiece", "189.50")
	require.NoError(t, l.Add(p, 1, ""))

	// A later catalog price change must not reach the existing line.
	p.Price = decimal.RequireFromString("250.00")
	require.NoError(t, l.Add(p, 1, ""))

	lines := l.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "189.5", lines[0].Price.String())
	require.Equal(t, "379", l.Subtotal().String())
}

func TestRemoveThenAddIsAFreshAdd(t *testing.T) {
	l := NewLedger()
	p := testProduct("p1", "Suede Chelsea Boots", "210.00")

	require.NoError(t, l.Add(p, 5, "42"))
	l.Remove("p1:42")
	require.True(t, l.Empty())

	require.NoError(t, l.Add(p, 1, "42"))
	lines := l.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 1, lines[0].Quantity)
}

func TestRemoveAbsentKeyIsNoOp(t *testing.T) {
	l := NewLedger()
	p := testProduct("p1", "Glow Skin Serum", "65.00")
	require.NoError(t, l.Add(p, 2, ""))

	l.Remove("missing")
	require.Len(t, l.Lines(), 1)
}

func TestAdjustQuantityClampsAtOne(t *testing.T) {
	l := NewLedger()
	p := testProduct("p1", "Ceramic Pour-Over Kit", "45.00")
	require.NoError(t, l.Add(p, 3, ""))

	l.AdjustQuantity("p1", -2)
	require.Equal(t, 1, l.Lines()[0].Quantity)

	l.AdjustQuantity("p1", -1000)
	require.Equal(t, 1, l.Lines()[0].Quantity)

	l.AdjustQuantity("p1", 4)
	require.Equal(t, 5, l.Lines()[0].Quantity)
}

func TestAdjustQuantityAbsentKeyIsNoOp(t *testing.T) {
	l := NewLedger()
	l.AdjustQuantity("missing", 3)
	require.True(t, l.Empty())
}

func TestSubtotalExactToTheCent(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(testProduct("p1", "A", "19.99"), 3, ""))
	require.NoError(t, l.Add(testProduct("p2", "B", "0.10"), 7, ""))
	require.NoError(t, l.Add(testProduct("p3", "C", "299.99"), 2, ""))

	// 59.97 + 0.70 + 599.98
	require.Equal(t, "660.65", l.Subtotal().StringFixed(2))
	require.Equal(t, 12, l.TotalItemCount())
}

func TestClearEmptiesAllLines(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(testProduct("p1", "A", "10.00"), 1, ""))
	require.NoError(t, l.Add(testProduct("p2", "B", "20.00"), 2, "M"))

	l.Clear()
	require.True(t, l.Empty())
	require.Equal(t, 0, l.TotalItemCount())
	require.True(t, l.Subtotal().IsZero())
}

func TestSnapshotIsIndependentOfLaterMutation(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(testProduct("p1", "A", "10.00"), 2, ""))

	snap := l.Snapshot()
	l.AdjustQuantity("p1", 5)
	l.Clear()

	require.Len(t, snap, 1)
	require.Equal(t, 2, snap[0].Quantity)
}
