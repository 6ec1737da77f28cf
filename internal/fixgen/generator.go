// Package fixgen generates random FIX order messages for pipeline fixtures.
// It produces both structurally valid messages and messages with known
// defects, so runs exercise the rejection paths deterministically from a seed.
package fixgen

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"main/internal/fix"
	"main/internal/schema"
)

var defaultSymbols = []string{"AAPL", "GOOG", "MSFT", "TSLA"}

// Fault names an intentional defect in a generated message.
type Fault string

const (
	FaultMissingSymbol     Fault = "missing_symbol"
	FaultMissingSide       Fault = "missing_side"
	FaultZeroQty           Fault = "zero_qty"
	FaultMissingPriceLimit Fault = "missing_price_limit"
)

var faults = []Fault{
	FaultMissingSymbol,
	FaultMissingSide,
	FaultZeroQty,
	FaultMissingPriceLimit,
}

// Config controls message generation.
type Config struct {
	Seed         int64    `json:"seed"`
	Symbols      []string `json:"symbols"`
	MaxQty       int64    `json:"maxQty"`
	InvalidEvery int      `json:"invalidEvery"`
}

// Validate ensures the config is within supported ranges.
func (c Config) Validate() error {
	if c.MaxQty <= 0 {
		return fmt.Errorf("maxQty must be > 0")
	}
	if c.InvalidEvery < 0 {
		return fmt.Errorf("invalidEvery must be >= 0")
	}
	return nil
}

func (c Config) withDefaults() Config {
	if len(c.Symbols) == 0 {
		c.Symbols = defaultSymbols
	}
	if c.MaxQty == 0 {
		c.MaxQty = 1000
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UTC().UnixNano()
	}
	return c
}

// Generator creates random 35=D messages.
type Generator struct {
	cfg   Config
	rng   *rand.Rand
	count int
}

// NewGenerator creates a seeded generator.
func NewGenerator(cfg Config) (*Generator, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Next returns the next message, injecting an invalid one every InvalidEvery
// messages when that is enabled.
func (g *Generator) Next() string {
	g.count++
	if g.cfg.InvalidEvery > 0 && (g.count-1)%g.cfg.InvalidEvery == 0 {
		return g.Invalid()
	}
	return g.Valid()
}

// Valid generates a structurally valid market or limit order message.
func (g *Generator) Valid() string {
	tags := g.baseTags()
	if tags[fix.TagOrdType] == schema.WireOrdTypeLimit {
		tags[fix.TagPrice] = g.price()
	}
	return build(tags)
}

// Invalid generates a message with one randomly chosen defect.
func (g *Generator) Invalid() string {
	return g.WithFault(faults[g.rng.Intn(len(faults))])
}

// WithFault generates a message carrying the given defect.
func (g *Generator) WithFault(fault Fault) string {
	tags := g.baseTags()
	tags[fix.TagOrdType] = schema.WireOrdTypeMarket
	switch fault {
	case FaultMissingSymbol:
		delete(tags, fix.TagSymbol)
	case FaultMissingSide:
		delete(tags, fix.TagSide)
	case FaultZeroQty:
		// Fails in order construction, not in the decoder.
		tags[fix.TagOrderQty] = "0"
	case FaultMissingPriceLimit:
		tags[fix.TagOrdType] = schema.WireOrdTypeLimit
	}
	return build(tags)
}

func (g *Generator) baseTags() map[fix.Tag]string {
	side := schema.WireSideBuy
	if g.rng.Intn(2) == 1 {
		side = schema.WireSideSell
	}
	ordType := schema.WireOrdTypeMarket
	if g.rng.Intn(2) == 1 {
		ordType = schema.WireOrdTypeLimit
	}
	return map[fix.Tag]string{
		fix.TagBeginString: "FIX.4.2",
		fix.TagMsgType:     fix.MsgTypeNewOrder,
		fix.TagSymbol:      g.cfg.Symbols[g.rng.Intn(len(g.cfg.Symbols))],
		fix.TagSide:        side,
		fix.TagOrderQty:    strconv.FormatInt(1+g.rng.Int63n(g.cfg.MaxQty), 10),
		fix.TagOrdType:     ordType,
		fix.TagChecksum:    strconv.Itoa(100 + g.rng.Intn(101)),
	}
}

func (g *Generator) price() string {
	return fmt.Sprintf("%.2f", 100+g.rng.Float64()*400)
}

// build joins tags in numeric tag order. FIX does not require the ordering,
// it just keeps fixtures readable.
func build(tags map[fix.Tag]string) string {
	keys := make([]fix.Tag, 0, len(tags))
	for tag := range tags {
		keys = append(keys, tag)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(string(keys[i]))
		b, _ := strconv.Atoi(string(keys[j]))
		return a < b
	})
	segments := make([]string, 0, len(keys))
	for _, tag := range keys {
		segments = append(segments, string(tag)+"="+tags[tag])
	}
	return strings.Join(segments, fix.FieldSeparator)
}
