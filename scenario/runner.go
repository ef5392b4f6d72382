package scenario

import (
	"errors"
	"fmt"
	"slices"
	"wizardwar/communication"
	"wizardwar/engine"
	"wizardwar/game"
	"wizardwar/metrics"
	"wizardwar/player"

	"github.com/rs/zerolog/log"
)

// Result describes how a scenario run ended.
type Result struct {
	Scenario *Scenario
	// Completed is false when the scripts ran out before a winner was found.
	Completed  bool
	Winner     *game.Player
	Rounds     int
	Players    map[string]*game.Player
	Roster     []*game.Player
	Board      *game.Board
	Transcript *communication.Transcript
	Metrics    metrics.GameMetric
}

// Run sets up the scenario board, plays it with the scripted decisions and returns the final
// state. Narration is recorded in the result and also forwarded to echo when it is non-nil.
func Run(s *Scenario, echo game.DisplaySink) (*Result, error) {
	table := player.NewTable(nil)
	for _, p := range s.Players {
		table.Seat(p.Name, newScriptedInput(s.Scripts[p.Name]))
	}
	for name := range s.Scripts {
		if !s.hasPlayer(name) {
			return nil, fmt.Errorf("scenario %s: script for unknown player %s", s.Name, name)
		}
	}

	transcript := communication.NewTranscript(echo)
	board := game.NewBoard(table, transcript)
	for _, pos := range s.Trees {
		if !board.Place(game.NewObstacle(), pos) {
			return nil, fmt.Errorf("scenario %s: tree at occupied cell %s", s.Name, pos)
		}
	}
	for _, w := range s.Weapons {
		if !board.Place(game.NewWeapon(w.Kind), w.Pos) {
			return nil, fmt.Errorf("scenario %s: %s at occupied cell %s", s.Name, w.Kind, w.Pos)
		}
	}
	players := make(map[string]*game.Player, len(s.Players))
	roster := make([]*game.Player, 0, len(s.Players))
	for _, setup := range s.Players {
		p := game.NewPlayer(setup.Name, setup.Symbol)
		for _, k := range setup.Weapons {
			p.AddWeapon(game.NewWeapon(k))
		}
		if !board.Place(p, setup.Pos) {
			return nil, fmt.Errorf("scenario %s: %s at occupied cell %s", s.Name, p.Name, setup.Pos)
		}
		players[p.Name] = p
		roster = append(roster, p)
	}

	collector := metrics.NewCollector()
	e := engine.New(board, roster, table, transcript, engine.WithMetrics(collector))
	log.Info().Str("scenario", s.Name).Str("game", e.ID()).Msg("running scenario")

	winner, err := e.Run()
	if err != nil && !errors.Is(err, ErrScriptExhausted) {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	res := &Result{
		Scenario:   s,
		Completed:  err == nil,
		Winner:     winner,
		Rounds:     e.Rounds(),
		Players:    players,
		Roster:     e.Roster(),
		Board:      board,
		Transcript: transcript,
	}
	if res.Completed {
		res.Metrics = e.Metric()
	} else {
		res.Metrics = collector.Complete("")
		log.Info().Str("scenario", s.Name).Int("rounds", res.Rounds).Msg("scripts exhausted before a winner")
	}
	return res, nil
}

// Verify checks the result against the scenario's expectations and reports every mismatch.
func (r *Result) Verify() error {
	exp := r.Scenario.Expect
	var errs []error

	if exp.Winner != "" {
		switch {
		case r.Winner == nil:
			errs = append(errs, fmt.Errorf("winner: want %s, game did not finish", exp.Winner))
		case r.Winner.Name != exp.Winner:
			errs = append(errs, fmt.Errorf("winner: want %s, got %s", exp.Winner, r.Winner.Name))
		}
	}
	if exp.Rounds != nil && *exp.Rounds != r.Rounds {
		errs = append(errs, fmt.Errorf("rounds: want %d, got %d", *exp.Rounds, r.Rounds))
	}
	for name, want := range exp.Weapons {
		p, ok := r.Players[name]
		if !ok {
			errs = append(errs, fmt.Errorf("weapons: unknown player %s", name))
			continue
		}
		if got := p.Kinds(); !slices.Equal(want, got) {
			errs = append(errs, fmt.Errorf("weapons of %s: want %v, got %v", name, want, got))
		}
	}
	for name, want := range exp.Positions {
		p, ok := r.Players[name]
		if !ok {
			errs = append(errs, fmt.Errorf("position: unknown player %s", name))
			continue
		}
		if p.Position() != want {
			errs = append(errs, fmt.Errorf("position of %s: want %s, got %s", name, want, p.Position()))
		}
	}
	for _, name := range exp.Eliminated {
		if slices.ContainsFunc(r.Roster, func(p *game.Player) bool { return p.Name == name }) {
			errs = append(errs, fmt.Errorf("%s was not eliminated", name))
		}
	}
	snapshot := r.Board.Snapshot()
	for pos, want := range exp.Cells {
		if got := snapshot[pos.Row][pos.Col].Glyph(); got != want {
			errs = append(errs, fmt.Errorf("cell %s: want %q, got %q", pos, want, got))
		}
	}
	return errors.Join(errs...)
}
