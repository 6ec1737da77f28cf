package pipeline

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/yanun0323/logs"

	"main/internal/eventlog"
	"main/internal/fix"
	"main/internal/obs"
	"main/internal/order"
	"main/internal/risk"
	"main/internal/schema"
)

// Rejection reason classes for metrics.
const (
	ReasonMissingTags     = "missing_tags"
	ReasonMissingPrice    = "missing_price"
	ReasonDecode          = "decode"
	ReasonInvalidQuantity = "invalid_quantity"
	ReasonInvalidSide     = "invalid_side"
	ReasonOrderSize       = "order_size"
	ReasonPositionLimit   = "position_limit"
	ReasonKillSwitch      = "kill_switch"
	ReasonUnexpected      = "unexpected"
)

// Result is the outcome of one processed message. Err carries the rejection
// cause; Order is nil when construction never happened.
type Result struct {
	Order *order.Order
	Err   error
}

// Pipeline feeds raw messages through decode, order construction, risk check
// and the lifecycle transitions, emitting an event at every step. Messages
// are processed one at a time; check-then-commit is never interleaved.
type Pipeline struct {
	engine  *risk.Engine
	sink    eventlog.Sink
	metrics *obs.Metrics

	runID int64
	seq   atomic.Uint64
}

// New wires a pipeline to its collaborators. The sink is owned by the
// caller; the pipeline only appends to it.
func New(engine *risk.Engine, sink eventlog.Sink, metrics *obs.Metrics) *Pipeline {
	return &Pipeline{
		engine:  engine,
		sink:    sink,
		metrics: metrics,
		runID:   time.Now().Unix(),
	}
}

// Process runs one raw message through the full pipeline. It never returns
// a fault to abort on: rejections and unexpected errors are absorbed into
// the Result and the event log.
func (p *Pipeline) Process(raw string) (res Result) {
	start := time.Now()
	defer func() {
		p.metrics.ObserveProcess(time.Since(start))
	}()
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("unexpected fault: %v", r)
			p.metrics.IncReject(ReasonUnexpected)
			p.emit(eventlog.KindSystemError, map[string]any{
				"error":       err.Error(),
				"raw_message": raw,
			})
			res = Result{Err: err}
		}
	}()

	fields, err := fix.Decode(raw)
	if err != nil {
		return p.rejectMessage(raw, err)
	}
	msg, err := fix.ParseNewOrder(fields)
	if err != nil {
		return p.rejectMessage(raw, err)
	}

	o, err := order.New(p.nextOrderID(), msg.Symbol, msg.Qty, msg.Side)
	if err != nil {
		return p.rejectMessage(raw, err)
	}
	o.OrdType = msg.OrdType
	o.Price = msg.Price

	p.emit(eventlog.KindOrderCreated, map[string]any{
		"order_id": o.ID,
		"symbol":   o.Symbol,
		"qty":      o.Qty,
		"side":     o.Side.String(),
		"fix_msg":  fields,
	})

	if err := p.engine.Check(o); err != nil {
		return p.rejectOrder(o, err)
	}

	p.transition(o, order.StateAcked)
	p.emit(eventlog.KindOrderAcked, map[string]any{
		"order_id": o.ID,
	})

	newPosition := p.engine.Apply(o)
	p.transition(o, order.StateFilled)
	p.emit(eventlog.KindOrderFilled, map[string]any{
		"order_id":     o.ID,
		"symbol":       o.Symbol,
		"new_position": newPosition,
	})

	return Result{Order: o}
}

// rejectOrder moves a constructed order to Rejected and records the cause.
func (p *Pipeline) rejectOrder(o *order.Order, cause error) Result {
	if diag, ok := o.Transition(order.StateRejected); !ok {
		logs.Warnf("%s", diag)
	}
	p.metrics.IncReject(Reason(cause))
	p.emit(eventlog.KindOrderRejected, map[string]any{
		"order_id": o.ID,
		"reason":   cause.Error(),
	})
	return Result{Order: o, Err: cause}
}

// rejectMessage records a message that never produced an order.
func (p *Pipeline) rejectMessage(raw string, cause error) Result {
	p.metrics.IncReject(Reason(cause))
	p.emit(eventlog.KindMessageRejected, map[string]any{
		"raw_message": raw,
		"reason":      cause.Error(),
	})
	return Result{Err: cause}
}

// transition applies a lifecycle edge that is legal on the happy path. A
// refused edge is a diagnostic, not a failure.
func (p *Pipeline) transition(o *order.Order, target order.State) {
	if diag, ok := o.Transition(target); !ok {
		logs.Warnf("%s", diag)
	}
}

func (p *Pipeline) emit(kind eventlog.Kind, data map[string]any) {
	p.metrics.ObserveEvent(kind)
	p.sink.Append(eventlog.Event{Kind: kind, Data: data})
}

func (p *Pipeline) nextOrderID() string {
	return fmt.Sprintf("Ord_%d_%d", p.runID, p.seq.Add(1))
}

// Reason maps a taxonomy error to its metrics class.
func Reason(err error) string {
	var missingTags fix.MissingTagsError
	var sizeExceeded risk.OrderSizeExceededError
	var positionExceeded risk.PositionLimitExceededError
	var decodeFailure fix.DecodeError
	switch {
	case errors.As(err, &missingTags):
		return ReasonMissingTags
	case errors.Is(err, fix.ErrMissingPrice):
		return ReasonMissingPrice
	case errors.As(err, &decodeFailure):
		return ReasonDecode
	case errors.Is(err, order.ErrInvalidQuantity):
		return ReasonInvalidQuantity
	case errors.Is(err, schema.ErrInvalidSide):
		return ReasonInvalidSide
	case errors.As(err, &sizeExceeded):
		return ReasonOrderSize
	case errors.As(err, &positionExceeded):
		return ReasonPositionLimit
	case errors.Is(err, risk.ErrKillSwitch):
		return ReasonKillSwitch
	default:
		return ReasonUnexpected
	}
}
