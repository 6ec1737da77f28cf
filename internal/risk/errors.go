package risk

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLimits = errors.New("risk limits must be positive")
	ErrKillSwitch    = errors.New("risk check failed: kill switch engaged")
)

// OrderSizeExceededError reports an order quantity above MaxOrderSize.
type OrderSizeExceededError struct {
	Qty   int64
	Limit int64
}

func (e OrderSizeExceededError) Error() string {
	return fmt.Sprintf("risk check failed: order size %d exceeds limit %d", e.Qty, e.Limit)
}

// PositionLimitExceededError reports a hypothetical position beyond the
// absolute MaxPosition bound.
type PositionLimitExceededError struct {
	Symbol       string
	Current      int64
	Hypothetical int64
	Limit        int64
}

func (e PositionLimitExceededError) Error() string {
	return fmt.Sprintf("risk check failed: new position %d for %s exceeds limit %d (current: %d)",
		e.Hypothetical, e.Symbol, e.Limit, e.Current)
}
