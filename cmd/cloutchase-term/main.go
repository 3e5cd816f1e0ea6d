package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"cloutchase/internal/game"
	"cloutchase/internal/term"
)

func main() {
	seed := flag.Uint64("seed", getEnvUintOrDefault("CLOUTCHASE_SEED", uint64(time.Now().UnixNano())), "Random seed for spawns and food")
	food := flag.Int("food", game.FoodCount, "Number of food pellets kept in the arena")
	radius := flag.Float64("radius", game.WorldRadius, "Arena radius in world units")
	level := flag.String("log-level", getEnvOrDefault("CLOUTCHASE_LOG", "info"), "Log level: debug, info, warn, error")
	logPath := flag.String("log-file", getEnvOrDefault("CLOUTCHASE_LOG_FILE", ""), "Write logs here while the terminal is in use (default: discard)")
	flag.Parse()

	// The screen owns stderr while the game runs.
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("open log file", "path", *logPath, "err", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	log := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: parseLevel(*level)}))

	cfg := game.Config{Seed: *seed, WorldRadius: *radius, FoodCount: *food}
	log.Info("starting", "seed", cfg.Seed, "food", cfg.FoodCount, "radius", cfg.WorldRadius)

	if err := term.Run(cfg, log); err != nil {
		// Screen is finalized by now; report on stderr.
		slog.Error("terminal run failed", "err", err)
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
