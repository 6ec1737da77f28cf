package fixgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/fix"
)

func TestGeneratorDeterministicBySeed(t *testing.T) {
	a, err := NewGenerator(Config{Seed: 42})
	require.NoError(t, err)
	b, err := NewGenerator(Config{Seed: 42})
	require.NoError(t, err)

	for range 20 {
		assert.Equal(t, a.Valid(), b.Valid())
	}
}

func TestValidMessagesDecode(t *testing.T) {
	g, err := NewGenerator(Config{Seed: 1})
	require.NoError(t, err)

	for range 50 {
		raw := g.Valid()
		fields, err := fix.Decode(raw)
		require.NoError(t, err, "raw=%s", raw)
		require.True(t, fields.IsNewOrder())

		msg, err := fix.ParseNewOrder(fields)
		require.NoError(t, err, "raw=%s", raw)
		assert.Positive(t, msg.Qty)
		assert.True(t, msg.Side.Valid())
	}
}

func TestFaultsAreDetected(t *testing.T) {
	g, err := NewGenerator(Config{Seed: 7})
	require.NoError(t, err)

	t.Run("missing symbol", func(t *testing.T) {
		_, err := fix.Decode(g.WithFault(FaultMissingSymbol))
		var missing fix.MissingTagsError
		require.ErrorAs(t, err, &missing)
		assert.Contains(t, missing.Tags, fix.TagSymbol)
	})

	t.Run("missing side", func(t *testing.T) {
		_, err := fix.Decode(g.WithFault(FaultMissingSide))
		var missing fix.MissingTagsError
		require.ErrorAs(t, err, &missing)
		assert.Contains(t, missing.Tags, fix.TagSide)
	})

	t.Run("missing price on limit", func(t *testing.T) {
		_, err := fix.Decode(g.WithFault(FaultMissingPriceLimit))
		require.ErrorIs(t, err, fix.ErrMissingPrice)
	})

	t.Run("zero qty decodes but fails construction", func(t *testing.T) {
		fields, err := fix.Decode(g.WithFault(FaultZeroQty))
		require.NoError(t, err)
		msg, err := fix.ParseNewOrder(fields)
		require.NoError(t, err)
		assert.Equal(t, int64(0), msg.Qty)
	})
}

func TestInvalidEveryCadence(t *testing.T) {
	tests := []struct {
		name         string
		invalidEvery int
		total        int
		wantInvalid  int
	}{
		{"every fourth", 4, 12, 3},
		{"every message", 1, 10, 10},
		{"never", 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenerator(Config{Seed: 3, InvalidEvery: tt.invalidEvery})
			require.NoError(t, err)

			invalid := 0
			for range tt.total {
				raw := g.Next()
				if _, err := decodeAndConstructable(raw); err != nil {
					invalid++
				}
			}
			assert.Equal(t, tt.wantInvalid, invalid)
		})
	}
}

func TestConfigValidation(t *testing.T) {
	_, err := NewGenerator(Config{MaxQty: -5})
	require.Error(t, err)

	_, err = NewGenerator(Config{InvalidEvery: -1})
	require.Error(t, err)
}

// decodeAndConstructable mirrors the pipeline's first two stages so cadence
// counts include defects that only fail at order construction.
func decodeAndConstructable(raw string) (fix.NewOrderSingle, error) {
	fields, err := fix.Decode(raw)
	if err != nil {
		return fix.NewOrderSingle{}, err
	}
	msg, err := fix.ParseNewOrder(fields)
	if err != nil {
		return fix.NewOrderSingle{}, err
	}
	if msg.Qty <= 0 {
		return msg, errors.New("non-positive qty")
	}
	return msg, nil
}
