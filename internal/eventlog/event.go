package eventlog

import "time"

// Kind labels an event in the append-only log.
type Kind string

const (
	KindSystemInitialized Kind = "SystemInitialized"
	KindOrderCreated      Kind = "OrderCreated"
	KindOrderAcked        Kind = "OrderAcked"
	KindOrderFilled       Kind = "OrderFilled"
	KindOrderRejected     Kind = "OrderRejected"
	KindMessageRejected   Kind = "MessageRejected"
	KindSystemError       Kind = "SystemError"
)

// Event is one record in the log.
type Event struct {
	Timestamp time.Time      `json:"timestamp"`
	Kind      Kind           `json:"event"`
	Data      map[string]any `json:"data"`
}

// Sink accepts events from the pipeline. Implementations accumulate them for
// the process lifetime and persist on flush or close.
type Sink interface {
	Append(Event)
}

// Multi fans an event out to several sinks.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Append(e Event) {
	for _, sink := range m {
		sink.Append(e)
	}
}
