package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"war/dice"
	"war/engine"
	"war/game"
	"war/metrics"
)

type config struct {
	seed        uint64
	territories int
	logLevel    string
}

func main() {
	cfg := config{}
	flag.Uint64Var(&cfg.seed, "seed", 0, "Seed for every random draw, 0 picks one")
	flag.IntVar(&cfg.territories, "territories", 0, "Number of territories, 0 picks one at random")
	flag.StringVar(&cfg.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error, disabled)")
	flag.Parse()

	os.Exit(run(cfg))
}

func run(cfg config) int {
	if err := setupLogger(cfg.logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		return 1
	}

	seed := cfg.seed
	if seed == 0 {
		var err error
		if seed, err = dice.NewSeed(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed random source: %v\n", err)
			return 1
		}
	}

	state, err := game.NewGameState(game.DefaultCatalog(), dice.New(seed), cfg.territories)
	if err != nil {
		log.Error().Err(err).Uint64("seed", seed).Msg("setup failed")
		fmt.Fprintln(os.Stderr, "Failed to create territories.")
		return 1
	}
	log.Info().Uint64("seed", seed).Int("territories", len(state.Territories)).Msg("session created")
	fmt.Fprintln(os.Stderr, replayHint(seed))

	collector := metrics.NewCollector()
	collector.Start(seed, len(state.Territories))

	e := engine.LocalEngine(state, os.Stdin, os.Stdout, os.Stderr, collector)
	e.Run()
	return 0
}

// replayHint tells the player how to replay the same session.
func replayHint(seed uint64) string {
	return fmt.Sprintf("Seed %d (replay with -seed %d)", seed, seed)
}

func setupLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}
