package fix

// Tag is a FIX tag identifier in its wire form, e.g. "55".
type Tag string

const (
	TagBeginString Tag = "8"
	TagChecksum    Tag = "10"
	TagMsgType     Tag = "35"
	TagOrderQty    Tag = "38"
	TagOrdType     Tag = "40"
	TagPrice       Tag = "44"
	TagSide        Tag = "54"
	TagSymbol      Tag = "55"
)

// FieldSeparator stands in for the protocol's native SOH delimiter.
const FieldSeparator = "|"

// MsgTypeNewOrder is the tag 35 value for New Order Single.
const MsgTypeNewOrder = "D"

// requiredNewOrderTags is the mandatory set for a 35=D message.
// Tag 44 is conditional on 40=2 and checked separately.
var requiredNewOrderTags = []Tag{
	TagBeginString,
	TagMsgType,
	TagSymbol,
	TagSide,
	TagOrderQty,
	TagOrdType,
}
