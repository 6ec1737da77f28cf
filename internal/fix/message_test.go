package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/schema"
)

func TestParseNewOrder(t *testing.T) {
	fields, err := Decode("8=FIX.4.2|35=D|55=AAPL|54=1|38=100|40=2|44=150.25|10=128")
	require.NoError(t, err)

	msg, err := ParseNewOrder(fields)
	require.NoError(t, err)
	assert.Equal(t, "FIX.4.2", msg.BeginString)
	assert.Equal(t, "AAPL", msg.Symbol)
	assert.Equal(t, schema.SideBuy, msg.Side)
	assert.Equal(t, int64(100), msg.Qty)
	assert.Equal(t, schema.OrdTypeLimit, msg.OrdType)
	assert.Equal(t, "150.25", msg.Price.String())
	assert.Equal(t, "128", msg.Checksum)
}

func TestParseNewOrderUnknownSidePassesThrough(t *testing.T) {
	// Side validation belongs to order construction, not the decoder.
	fields, err := Decode("8=FIX.4.2|35=D|55=AAPL|54=9|38=100|40=1|10=128")
	require.NoError(t, err)

	msg, err := ParseNewOrder(fields)
	require.NoError(t, err)
	assert.Equal(t, schema.SideUnknown, msg.Side)
}

func TestParseNewOrderBadQty(t *testing.T) {
	fields, err := Decode("8=FIX.4.2|35=D|55=AAPL|54=1|38=abc|40=1|10=128")
	require.NoError(t, err)

	_, err = ParseNewOrder(fields)
	var decodeErr DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestParseNewOrderBadPrice(t *testing.T) {
	fields, err := Decode("8=FIX.4.2|35=D|55=AAPL|54=1|38=100|40=2|44=oops|10=128")
	require.NoError(t, err)

	_, err = ParseNewOrder(fields)
	var decodeErr DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestParseNewOrderRejectsOtherMsgTypes(t *testing.T) {
	fields, err := Decode("8=FIX.4.2|35=0|10=111")
	require.NoError(t, err)

	_, err = ParseNewOrder(fields)
	var decodeErr DecodeError
	require.ErrorAs(t, err, &decodeErr)
}
