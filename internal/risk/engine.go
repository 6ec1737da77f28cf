package risk

import (
	"sync"

	"main/internal/order"
	"main/internal/schema"
)

// Config defines the pre-trade limits. Both limits are fixed at construction.
type Config struct {
	MaxOrderSize int64 `json:"maxOrderSize"`
	MaxPosition  int64 `json:"maxPosition"`
	KillSwitch   bool  `json:"killSwitch"`
}

// Validate ensures the limits are usable.
func (c Config) Validate() error {
	if c.MaxOrderSize <= 0 || c.MaxPosition <= 0 {
		return ErrInvalidLimits
	}
	return nil
}

// Engine performs pre-trade checks and post-trade position commits. The
// position ledger is owned exclusively by the engine; Check never mutates it.
// The mutex makes individual calls race-free, but check-then-commit for one
// symbol is still two calls: the single-threaded driver serializes them.
type Engine struct {
	cfg Config

	mu        sync.Mutex
	positions map[string]int64
}

// NewEngine creates an engine with static limits.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:       cfg,
		positions: make(map[string]int64),
	}, nil
}

// Config returns the engine limits.
func (e *Engine) Config() Config {
	return e.cfg
}

// Check runs the pre-trade limits against the order without committing
// anything. A nil return is purely advisory.
func (e *Engine) Check(o *order.Order) error {
	if e.cfg.KillSwitch {
		return ErrKillSwitch
	}
	if o.Qty > e.cfg.MaxOrderSize {
		return OrderSizeExceededError{Qty: o.Qty, Limit: e.cfg.MaxOrderSize}
	}

	e.mu.Lock()
	current := e.positions[o.Symbol]
	e.mu.Unlock()

	// Side is validated at order construction; kept as defense.
	hypothetical, err := applySide(current, o.Side, o.Qty)
	if err != nil {
		return err
	}
	if abs(hypothetical) > e.cfg.MaxPosition {
		return PositionLimitExceededError{
			Symbol:       o.Symbol,
			Current:      current,
			Hypothetical: hypothetical,
			Limit:        e.cfg.MaxPosition,
		}
	}
	return nil
}

// Apply commits the signed fill delta to the symbol's ledger entry and
// returns the new position. It performs no validation: callers only invoke
// it after a successful Check and an intent to fill.
func (e *Engine) Apply(o *order.Order) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := applySide(e.positions[o.Symbol], o.Side, o.Qty)
	if err != nil {
		return e.positions[o.Symbol]
	}
	e.positions[o.Symbol] = next
	return next
}

// Position returns the current net position, 0 for unseen symbols.
func (e *Engine) Position(symbol string) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.positions[symbol]
}

// Positions returns a copy of the ledger.
func (e *Engine) Positions() map[string]int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]int64, len(e.positions))
	for symbol, qty := range e.positions {
		out[symbol] = qty
	}
	return out
}

// Restore replaces the ledger with previously captured positions.
func (e *Engine) Restore(positions map[string]int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.positions = make(map[string]int64, len(positions))
	for symbol, qty := range positions {
		e.positions[symbol] = qty
	}
}

func applySide(position int64, side schema.Side, qty int64) (int64, error) {
	switch side {
	case schema.SideBuy:
		return position + qty, nil
	case schema.SideSell:
		return position - qty, nil
	default:
		return position, schema.ErrInvalidSide
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
