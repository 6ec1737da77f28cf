package fix

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"main/internal/schema"
)

// NewOrderSingle is the typed view of a decoded 35=D message. Side and order
// type carry the parsed enum values; unrecognized wire values map to the
// Unknown members so that order construction owns the rejection. The checksum
// tag is carried but never validated.
type NewOrderSingle struct {
	BeginString string
	Symbol      string
	Side        schema.Side
	Qty         int64
	OrdType     schema.OrdType
	Price       decimal.Decimal
	Checksum    string
}

// ParseNewOrder builds the typed view from a validated FieldMap. Numeric
// parse faults surface as DecodeError.
func ParseNewOrder(fields FieldMap) (NewOrderSingle, error) {
	if !fields.IsNewOrder() {
		return NewOrderSingle{}, DecodeError{Err: errors.New("message type is not D")}
	}

	qty, err := strconv.ParseInt(fields[TagOrderQty], 10, 64)
	if err != nil {
		return NewOrderSingle{}, DecodeError{Err: err}
	}

	side, _ := schema.ParseSide(fields[TagSide])
	ordType, _ := schema.ParseOrdType(fields[TagOrdType])

	msg := NewOrderSingle{
		BeginString: fields[TagBeginString],
		Symbol:      fields[TagSymbol],
		Side:        side,
		Qty:         qty,
		OrdType:     ordType,
		Checksum:    fields[TagChecksum],
	}

	if raw, ok := fields.Get(TagPrice); ok {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return NewOrderSingle{}, DecodeError{Err: err}
		}
		msg.Price = price
	}

	return msg, nil
}
