package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"main/internal/schema"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Order holds a single trade order and its lifecycle state. The economic
// attributes are fixed at construction; state changes only through Transition.
type Order struct {
	ID      string
	Symbol  string
	Qty     int64
	Side    schema.Side
	OrdType schema.OrdType
	Price   decimal.Decimal

	state State
}

// New validates the economic attributes and returns an order in StateNew.
// Uniqueness of the ID across a run is the caller's responsibility.
func New(id, symbol string, qty int64, side schema.Side) (*Order, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !side.Valid() {
		return nil, schema.ErrInvalidSide
	}
	return &Order{
		ID:     id,
		Symbol: symbol,
		Qty:    qty,
		Side:   side,
		state:  StateNew,
	}, nil
}

// State returns the current lifecycle state.
func (o *Order) State() State {
	return o.state
}

func (o *Order) String() string {
	return fmt.Sprintf("Order(ID=%s, %s, %s %d, State=%s)", o.ID, o.Symbol, o.Side, o.Qty, o.state)
}
