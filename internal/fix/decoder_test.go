package fix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidLimitOrder(t *testing.T) {
	fields, err := Decode("8=FIX.4.2|35=D|55=AAPL|54=1|38=100|40=2|44=150.25|10=128")
	require.NoError(t, err)

	assert.Equal(t, "FIX.4.2", fields[TagBeginString])
	assert.Equal(t, "D", fields[TagMsgType])
	assert.Equal(t, "AAPL", fields[TagSymbol])
	assert.Equal(t, "1", fields[TagSide])
	assert.Equal(t, "100", fields[TagOrderQty])
	assert.Equal(t, "2", fields[TagOrdType])
	assert.Equal(t, "150.25", fields[TagPrice])
	assert.Equal(t, "128", fields[TagChecksum])
	assert.True(t, fields.IsNewOrder())
}

func TestDecodeValidMarketOrder(t *testing.T) {
	fields, err := Decode("8=FIX.4.2|35=D|55=GOOG|54=2|38=50|40=1|10=130")
	require.NoError(t, err)
	_, ok := fields.Get(TagPrice)
	assert.False(t, ok)
}

func TestDecodeMissingTags(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		missing []Tag
	}{
		{
			name:    "missing symbol",
			raw:     "8=FIX.4.2|35=D|54=1|38=100|40=1|10=128",
			missing: []Tag{"55"},
		},
		{
			name:    "missing side",
			raw:     "8=FIX.4.2|35=D|55=AAPL|38=100|40=1|10=128",
			missing: []Tag{"54"},
		},
		{
			name:    "missing several, sorted",
			raw:     "35=D|55=AAPL|40=1",
			missing: []Tag{"38", "54", "8"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			var missingErr MissingTagsError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.missing, missingErr.Tags)
		})
	}
}

func TestDecodeMissingPriceForLimit(t *testing.T) {
	_, err := Decode("8=FIX.4.2|35=D|55=MSFT|54=1|38=200|40=2|10=129")
	require.ErrorIs(t, err, ErrMissingPrice)
}

func TestDecodeMissingPriceOnNonOrderMessage(t *testing.T) {
	// The limit/price rule applies regardless of message type.
	_, err := Decode("8=FIX.4.2|35=8|40=2|10=129")
	require.ErrorIs(t, err, ErrMissingPrice)
}

func TestDecodeNonOrderSkipsTagValidation(t *testing.T) {
	fields, err := Decode("8=FIX.4.2|35=0|10=111")
	require.NoError(t, err)
	assert.False(t, fields.IsNewOrder())
	assert.Equal(t, "0", fields.MsgType())
}

func TestDecodeDuplicateTagLastWins(t *testing.T) {
	fields, err := Decode("8=FIX.4.2|35=D|55=AAPL|55=GOOG|54=1|38=100|40=1|10=128")
	require.NoError(t, err)
	assert.Equal(t, "GOOG", fields[TagSymbol])
}

func TestDecodeSkipsMalformedSegments(t *testing.T) {
	fields, err := Decode("8=FIX.4.2|junk|35=D|55=AAPL|54=1|38=100|40=1||10=128")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", fields[TagSymbol])
	_, ok := fields.Get("junk")
	assert.False(t, ok)
}

func TestDecodeValueWithEquals(t *testing.T) {
	fields, err := Decode("35=0|58=a=b")
	require.NoError(t, err)
	assert.Equal(t, "a=b", fields[Tag("58")])
}

func TestDecodeErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := DecodeError{Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("decode error should unwrap to its cause: %+v", err)
	}
}
