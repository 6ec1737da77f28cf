package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/schema"
)

func TestNewOrder(t *testing.T) {
	o, err := New("A001", "AAPL", 100, schema.SideBuy)
	require.NoError(t, err)
	assert.Equal(t, StateNew, o.State())
	assert.Equal(t, "Order(ID=A001, AAPL, Buy 100, State=New)", o.String())
}

func TestNewOrderInvalidQuantity(t *testing.T) {
	for _, qty := range []int64{0, -1, -100} {
		o, err := New("A001", "AAPL", qty, schema.SideBuy)
		require.ErrorIs(t, err, ErrInvalidQuantity, "qty=%d", qty)
		assert.Nil(t, o)
	}
}

func TestNewOrderInvalidSide(t *testing.T) {
	for _, side := range []schema.Side{schema.SideUnknown, schema.Side(7)} {
		o, err := New("A001", "AAPL", 100, side)
		require.ErrorIs(t, err, schema.ErrInvalidSide, "side=%d", side)
		assert.Nil(t, o)
	}
}
