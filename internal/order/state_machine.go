package order

import "fmt"

// State tracks the lifecycle of an order.
type State uint16

const (
	StateUnknown State = iota
	StateNew
	StateAcked
	StateFilled
	StateCanceled
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "New"
	case StateAcked:
		return "Acked"
	case StateFilled:
		return "Filled"
	case StateCanceled:
		return "Canceled"
	case StateRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no transition can leave the state.
func (s State) Terminal() bool {
	switch s {
	case StateFilled, StateCanceled, StateRejected:
		return true
	default:
		return false
	}
}

// transitions is the static allowed-edge table. Terminal states have no
// outgoing edges.
var transitions = map[State][]State{
	StateNew:   {StateAcked, StateRejected},
	StateAcked: {StateFilled, StateCanceled, StateRejected},
}

// Diagnostic describes a rejected transition attempt. It is reported to the
// caller instead of raised as an error: probing an illegal transition leaves
// the order untouched.
type Diagnostic struct {
	OrderID string
	Symbol  string
	From    State
	To      State
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("invalid transition: order %s (%s) cannot move from %s to %s",
		d.OrderID, d.Symbol, d.From, d.To)
}

// Transition moves the order to target when the edge is in the table and
// reports success. On a disallowed edge the state is left unchanged and the
// returned diagnostic describes the attempt.
func (o *Order) Transition(target State) (Diagnostic, bool) {
	for _, allowed := range transitions[o.state] {
		if allowed == target {
			o.state = target
			return Diagnostic{}, true
		}
	}
	return Diagnostic{
		OrderID: o.ID,
		Symbol:  o.Symbol,
		From:    o.state,
		To:      target,
	}, false
}
