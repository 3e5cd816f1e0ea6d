package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"time"

	"cloutchase/internal/desktop"
	"cloutchase/internal/game"
)

func main() {
	seed := flag.Uint64("seed", getEnvUintOrDefault("CLOUTCHASE_SEED", uint64(time.Now().UnixNano())), "Random seed for spawns and food")
	food := flag.Int("food", game.FoodCount, "Number of food pellets kept in the arena")
	radius := flag.Float64("radius", game.WorldRadius, "Arena radius in world units")
	level := flag.String("log-level", getEnvOrDefault("CLOUTCHASE_LOG", "info"), "Log level: debug, info, warn, error")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(*level)}))
	slog.SetDefault(log)

	cfg := game.Config{Seed: *seed, WorldRadius: *radius, FoodCount: *food}
	log.Info("starting", "seed", cfg.Seed, "food", cfg.FoodCount, "radius", cfg.WorldRadius)

	if err := desktop.Run(cfg, log); err != nil {
		log.Error("desktop run failed", "err", err)
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvUintOrDefault(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if v, err := strconv.ParseUint(val, 10, 64); err == nil {
			return v
		}
	}
	return defaultVal
}
