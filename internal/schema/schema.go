package schema

import "errors"

var (
	ErrInvalidSide    = errors.New("side must be buy or sell")
	ErrInvalidOrdType = errors.New("order type must be market or limit")
)

// Side describes order direction.
type Side uint16

const (
	SideUnknown Side = iota
	SideBuy
	SideSell
)

// FIX wire values for tag 54.
const (
	WireSideBuy  = "1"
	WireSideSell = "2"
)

// ParseSide maps a tag 54 wire value to a Side.
func ParseSide(v string) (Side, error) {
	switch v {
	case WireSideBuy:
		return SideBuy, nil
	case WireSideSell:
		return SideSell, nil
	default:
		return SideUnknown, ErrInvalidSide
	}
}

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "Buy"
	case SideSell:
		return "Sell"
	default:
		return "Unknown"
	}
}

// Valid reports whether the side is one of the two recognized values.
func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// OrdType describes order type.
type OrdType uint16

const (
	OrdTypeUnknown OrdType = iota
	OrdTypeMarket
	OrdTypeLimit
)

// FIX wire values for tag 40.
const (
	WireOrdTypeMarket = "1"
	WireOrdTypeLimit  = "2"
)

// ParseOrdType maps a tag 40 wire value to an OrdType.
func ParseOrdType(v string) (OrdType, error) {
	switch v {
	case WireOrdTypeMarket:
		return OrdTypeMarket, nil
	case WireOrdTypeLimit:
		return OrdTypeLimit, nil
	default:
		return OrdTypeUnknown, ErrInvalidOrdType
	}
}

func (t OrdType) String() string {
	switch t {
	case OrdTypeMarket:
		return "Market"
	case OrdTypeLimit:
		return "Limit"
	default:
		return "Unknown"
	}
}
