package main

import (
	"flag"
	"log"
	"os"
	"strings"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"

	"main/internal/eventlog"
	"main/internal/fixgen"
	"main/internal/obs"
	"main/internal/ops"
	"main/internal/pipeline"
	"main/internal/risk"
	"main/internal/state"
	"main/pkg/conn"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config")
	messagesPath := flag.String("messages", "", "File with raw FIX messages, one per line (disables the generator)")
	count := flag.Int("count", 10, "Number of messages to generate")
	seed := flag.Int64("seed", 0, "Generator seed (0=time-based)")
	invalidEvery := flag.Int("invalid-every", 4, "Generate an invalid message every N messages (0=never)")
	eventLogPath := flag.String("event-log", "", "Event log output path (overrides config)")
	snapshotPath := flag.String("snapshot-path", "", "Position snapshot output (empty=disabled)")
	recoverSnapshot := flag.String("recover-snapshot", "", "Restore positions from a snapshot before processing")
	profileAddr := flag.String("profile-addr", "", "Pyroscope server address (empty=disabled)")
	flag.Parse()

	cfg, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *eventLogPath != "" {
		cfg.EventLogPath = *eventLogPath
	}

	if *profileAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "fix.trader",
			ServerAddress:   *profileAddr,
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileInuseObjects,
			},
		})
		if err != nil {
			log.Fatalf("profiler start failed: %v", err)
		}
		defer profiler.Stop()
	}

	engine, err := risk.NewEngine(cfg.Risk)
	if err != nil {
		log.Fatalf("risk engine init failed: %v", err)
	}
	if *recoverSnapshot != "" {
		snap, err := state.ReadSnapshot(*recoverSnapshot)
		if err != nil {
			log.Fatalf("snapshot recover failed: %v", err)
		}
		engine.Restore(snap.PositionMap())
		logs.Infof("restored %d positions from %s", len(snap.Positions), *recoverSnapshot)
	}

	eventLog := eventlog.NewLog(cfg.EventLogPath)
	defer eventLog.Close()
	sink := eventlog.Sink(eventLog)

	if cfg.Postgres.Enabled {
		client, err := conn.New(conn.Config{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			Database: cfg.Postgres.Database,
			SSLMode:  cfg.Postgres.SSLMode,
		})
		if err != nil {
			log.Fatalf("postgres connect failed: %v", err)
		}
		defer client.Close()

		pgSink, err := eventlog.NewPGSink(client.DB())
		if err != nil {
			log.Fatalf("postgres sink init failed: %v", err)
		}
		defer pgSink.Close()
		sink = eventlog.Multi(eventLog, pgSink)
	}

	genCfg := resolveGeneratorConfig(cfg.Generator, *seed, *invalidEvery, flagWasSet("invalid-every"))
	messages, err := loadMessages(*messagesPath, genCfg, *count)
	if err != nil {
		log.Fatalf("message source failed: %v", err)
	}

	sink.Append(eventlog.Event{
		Kind: eventlog.KindSystemInitialized,
		Data: map[string]any{
			"max_order_size": cfg.Risk.MaxOrderSize,
			"max_position":   cfg.Risk.MaxPosition,
		},
	})

	metrics := obs.NewMetrics()
	p := pipeline.New(engine, sink, metrics)

	processed := 0
loop:
	for i, raw := range messages {
		select {
		case <-sys.Shutdown():
			logs.Warnf("shutdown requested, stopping after %d messages", processed)
			break loop
		default:
		}
		res := p.Process(raw)
		processed++
		if res.Err != nil {
			logs.Warnf("message %d rejected: %v", i+1, res.Err)
			continue
		}
		logs.Infof("message %d: %s", i+1, res.Order)
	}

	if *snapshotPath != "" {
		snap := state.BuildSnapshot(engine.Positions())
		if err := state.WriteSnapshot(*snapshotPath, snap); err != nil {
			logs.Errorf("write snapshot to %s, err: %+v", *snapshotPath, err)
		} else {
			logs.Infof("saved %d positions to %s", len(snap.Positions), *snapshotPath)
		}
	}

	summary := metrics.Snapshot()
	logs.Infof("processed %d messages, events: %v, rejects: %v, latency avg: %s",
		processed, summary.EventCounts, summary.RejectCounts, summary.ProcessLatency.Avg)
}

// resolveGeneratorConfig layers the command-line flags over the config file.
// The invalid-every flag only wins when it was passed explicitly, so the
// config file's setting survives the flag default.
func resolveGeneratorConfig(genCfg fixgen.Config, seed int64, invalidEvery int, invalidEverySet bool) fixgen.Config {
	if seed != 0 {
		genCfg.Seed = seed
	}
	if invalidEverySet {
		genCfg.InvalidEvery = invalidEvery
	}
	return genCfg
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func loadMessages(path string, genCfg fixgen.Config, count int) ([]string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var messages []string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			messages = append(messages, line)
		}
		return messages, nil
	}

	generator, err := fixgen.NewGenerator(genCfg)
	if err != nil {
		return nil, err
	}
	messages := make([]string, 0, count)
	for range count {
		messages = append(messages, generator.Next())
	}
	return messages, nil
}
