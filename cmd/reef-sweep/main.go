package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"time"

	"deepsea/internal/logging"
	"deepsea/internal/sim"
	"deepsea/internal/sim/tuning"
	"deepsea/internal/sweep"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	scene := flag.String("scene", "reef", "scene preset name or path to a preset YAML file")
	first := flag.Int64("seed", 1, "first seed of the sweep")
	count := flag.Int("seeds", 32, "number of consecutive seeds to dive")
	steps := flag.Int("steps", 3600, "frames per dive")
	tps := flag.Int("tps", 60, "frames per simulated second")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel dives")
	level := flag.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	log := logging.Setup(os.Stderr, *level, false)

	cfg, err := tuning.Resolve(*scene)
	if err != nil {
		log.Fatal().Err(err).Msg("load scene")
	}
	if len(overrides) > 0 {
		kv := make(map[string]string, len(overrides))
		for _, o := range overrides {
			parts := strings.SplitN(o, "=", 2)
			if len(parts) != 2 {
				log.Warn().Str("override", o).Msg("ignoring malformed override")
				continue
			}
			kv[parts[0]] = parts[1]
		}
		cfg = sim.FromMap(cfg, kv)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Diving %d seeds of %q (%d workers, %d steps)\n", *count, cfg.Name, *workers, *steps)
	start := time.Now()
	results, err := sweep.Run(ctx, cfg, sweep.Seeds(*first, *count), *steps, *tps, *workers)
	if err != nil {
		log.Fatal().Err(err).Msg("sweep interrupted")
	}

	perDive := logging.Sampled(log, 8)
	unhealthy := 0
	for _, r := range results {
		ok := r.Healthy(cfg.Params.Flock.MaxSpeed)
		if !ok {
			unhealthy++
			log.Error().Int64("seed", r.Seed).
				Float64("max_fish_speed", r.MaxFishSpeed).
				Int("school_escapes", r.SchoolEscapes).
				Int("bubbles_above", r.BubblesAbove).
				Msg("invariant broken")
			continue
		}
		perDive.Info().Int64("seed", r.Seed).Float64("min_oxygen", r.MinOxygen).Msg("dive ok")
	}

	sort.Slice(results, func(i, j int) bool { return results[i].MinOxygen < results[j].MinOxygen })
	fmt.Printf("\nLowest oxygen dives (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		r := results[i]
		fmt.Printf("%2d) seed=%d fish=%d bubbles=%d maxSpeed=%.4f recycled=%d minO2=%.2f maxDepth=%.2f warnings=%d found=%s\n",
			i+1, r.Seed, r.Fish, r.Bubbles, r.MaxFishSpeed, r.Recycled, r.MinOxygen, r.MaxDepth, r.Warnings, strings.Join(r.Discovered, "; "))
	}

	fmt.Printf("\n%d/%d dives kept every invariant\n", len(results)-unhealthy, len(results))
	if unhealthy > 0 {
		os.Exit(1)
	}
}
