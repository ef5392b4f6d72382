package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"wizardwar/communication"
	"wizardwar/config"
	"wizardwar/engine"
	"wizardwar/game"
	"wizardwar/gamemaster"
	"wizardwar/metrics"
	"wizardwar/player"
	"wizardwar/scenario"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("wizardwar: %v", err)
	}
	config.SetupLogging(cfg, os.Stderr)

	console := communication.NewConsole(os.Stdin, os.Stdout)
	var result *metrics.GameMetric
	if cfg.Scenario != "" {
		result, err = runScenario(cfg.Scenario, console)
	} else {
		result, err = runGame(cfg.Seed, console)
	}
	if err != nil {
		config.Exitf("wizardwar: %v", err)
	}
	if result != nil && cfg.MetricsDir != "" {
		if err := writeMetrics(cfg.MetricsDir, *result); err != nil {
			config.Exitf("wizardwar: %v", err)
		}
	}
}

func writeMetrics(dir string, m metrics.GameMetric) error {
	w, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}
	if err := w.WriteGameRecords([]metrics.GameMetric{m}); err != nil {
		return err
	}
	log.Info().Str("path", w.Path()).Msg("game metrics written")
	return nil
}

// runGame plays an interactive game on a randomly set up board, both players sharing the console.
func runGame(seed int64, console *communication.Console) (*metrics.GameMetric, error) {
	if seed == 0 {
		var err error
		if seed, err = gamemaster.NewSeed(); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	log.Info().Int64("seed", seed).Msg("setting up board")

	human := player.NewHuman(console)
	board := game.NewBoard(human, console)
	players := gamemaster.NewGameMaster(seed).InitializeGame(board)

	console.Println("Welcome to Wizard War!")
	for _, p := range players {
		console.Println(fmt.Sprintf("%s plays as %c at %s", p.Name, p.Symbol, p.Position()))
	}

	e := engine.New(board, players, human, console, engine.WithMetrics(metrics.NewCollector()))
	if _, err := e.Run(); err != nil {
		if errors.Is(err, communication.ErrInputClosed) {
			console.Println("Input closed, leaving the game.")
			return nil, nil
		}
		return nil, err
	}
	m := e.Metric()
	return &m, nil
}

func runScenario(path string, console *communication.Console) (*metrics.GameMetric, error) {
	s, err := scenario.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	res, err := scenario.Run(s, console)
	if err != nil {
		return nil, err
	}
	if err := res.Verify(); err != nil {
		return nil, fmt.Errorf("scenario %s failed:\n%w", s.Name, err)
	}
	console.Println(fmt.Sprintf("Scenario %s passed after %d rounds.", s.Name, res.Rounds))
	return &res.Metrics, nil
}
