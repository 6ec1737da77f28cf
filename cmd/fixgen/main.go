package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"main/internal/fixgen"
)

func main() {
	count := flag.Int("count", 10, "Number of messages to generate")
	seed := flag.Int64("seed", 0, "Generator seed (0=time-based)")
	maxQty := flag.Int64("max-qty", 1000, "Maximum order quantity")
	symbols := flag.String("symbols", "", "Comma-separated symbol list (empty=defaults)")
	invalidEvery := flag.Int("invalid-every", 0, "Generate an invalid message every N messages (0=never)")
	fault := flag.String("fault", "", "Generate only messages with this defect: missing_symbol|missing_side|zero_qty|missing_price_limit")
	flag.Parse()

	if *count <= 0 {
		log.Fatalf("count must be > 0")
	}

	cfg := fixgen.Config{
		Seed:         *seed,
		MaxQty:       *maxQty,
		InvalidEvery: *invalidEvery,
	}
	if *symbols != "" {
		cfg.Symbols = strings.Split(*symbols, ",")
	}

	generator, err := fixgen.NewGenerator(cfg)
	if err != nil {
		log.Fatalf("generator init failed: %v", err)
	}

	for range *count {
		if *fault != "" {
			fmt.Println(generator.WithFault(fixgen.Fault(*fault)))
			continue
		}
		fmt.Println(generator.Next())
	}
}
