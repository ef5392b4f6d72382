package engine

import (
	"errors"
	"fmt"
	"wizardwar/game"
	"wizardwar/gamemaster"
	"wizardwar/metrics"
	"wizardwar/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "GameOver"
	}
	return "Running"
}

// ErrGameOver is returned when a round is requested after the game has ended.
var ErrGameOver = errors.New("game is over - no moves allowed")

type Option func(e *Engine)

// WithMetrics records game events in the given collector.
func WithMetrics(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.metrics = c
		}
	}
}

// WithGameID overrides the random game id used in log events.
func WithGameID(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.id = id
		}
	}
}

// Engine drives the rounds of one game until a single player remains.
type Engine struct {
	Board   *game.Board
	roster  []*game.Player
	input   game.InputProvider
	display game.DisplaySink
	metrics metrics.Collector
	result  metrics.GameMetric
	state   State
	rounds  int
	id      string
	logger  zerolog.Logger
}

// New creates an engine for players already placed on board. The input provider answers move
// prompts; pickup and weapon prompts go through the board's own provider. A nil display
// discards narration.
func New(board *game.Board, players []*game.Player, input game.InputProvider, display game.DisplaySink, options ...Option) *Engine {
	if len(players) < 2 {
		panic("need at least two players")
	}
	for _, p := range players {
		if board.At(p.Position()) != game.Entity(p) {
			panic(fmt.Sprintf("player %s is not on the board", p.Name))
		}
	}

	if display == nil {
		display = game.Discard
	}

	e := &Engine{
		Board:   board,
		roster:  append([]*game.Player(nil), players...),
		input:   input,
		display: display,
		metrics: metrics.NewDummyCollector(),
		state:   Running,
		id:      uuid.NewString(),
	}
	for _, option := range options {
		option(e)
	}
	e.logger = log.With().Str("game", e.id).Logger()
	return e
}

// Run plays rounds until one player is left and returns that player.
func (e *Engine) Run() (*game.Player, error) {
	e.metrics.Start(e.id)
	e.logger.Info().Int("players", len(e.roster)).Msg("game started")

	for e.state == Running {
		if err := e.PlayRound(); err != nil {
			e.logger.Warn().Err(err).Int("round", e.rounds).Msg("game aborted")
			return nil, err
		}
	}

	winner := e.Winner()
	e.display.Announce(fmt.Sprintf("Game over! Winner: %s", winner.Name))

	e.result = e.metrics.Complete(winner.Name)
	m := e.result
	e.logger.Info().
		Str("winner", winner.Name).
		Int("rounds", e.rounds).
		Int("turns", m.Turns).
		Int("battles", m.Battles).
		Int("pickups", m.Pickups).
		Int("invalid_moves", m.InvalidMoves).
		Dur("duration", m.Duration).
		Msg("game over")
	return winner, nil
}

// PlayRound gives every player on the roster one turn, in roster order. A player eliminated
// earlier in the round does not act.
func (e *Engine) PlayRound() error {
	if e.state == GameOver {
		return ErrGameOver
	}
	e.rounds++
	e.metrics.AddRound()
	e.logger.Debug().Int("round", e.rounds).Msg("round started")

	order := append([]*game.Player(nil), e.roster...)
	for _, p := range order {
		if utils.FindIndex(e.roster, p) < 0 {
			continue
		}
		if err := e.TakeTurn(p); err != nil {
			return err
		}
		if gamemaster.CheckGameOver(e.roster) {
			e.state = GameOver
			return nil
		}
	}
	return nil
}

// TakeTurn renders the board, asks p for one move and applies it. An invalid move is
// announced and ends the turn without changing the board.
func (e *Engine) TakeTurn(p *game.Player) error {
	e.display.RenderBoard(e.Board.Snapshot())

	dir, err := e.input.RequestMove(p.Name)
	if err != nil {
		return fmt.Errorf("move for %s: %w", p.Name, err)
	}
	e.metrics.AddTurn()

	target := p.Position().Step(dir)
	if !e.Board.IsValidMove(target) {
		e.metrics.AddInvalidMove()
		e.display.Announce("Invalid move!")
		e.logger.Debug().Str("player", p.Name).Stringer("direction", dir).Msg("invalid move")
		return nil
	}

	interaction, err := e.Board.MovePlayer(p, target)
	if err != nil {
		return err
	}
	e.logger.Debug().
		Str("player", p.Name).
		Stringer("direction", dir).
		Int("row", p.Position().Row).
		Int("col", p.Position().Col).
		Str("weapons", p.WeaponList()).
		Msg("player moved")

	e.observe(p, interaction)
	return nil
}

// observe applies the roster consequences of a move: the loser of a battle is eliminated.
func (e *Engine) observe(p *game.Player, in game.Interaction) {
	switch in.Kind {
	case game.PickupInteraction:
		e.metrics.AddPickup(in.Accepted)
		e.logger.Debug().Str("player", p.Name).Stringer("weapon", in.Weapon.Kind).Bool("accepted", in.Accepted).Msg("pickup")
	case game.BattleInteraction:
		e.metrics.AddBattle()
		e.logger.Info().
			Str("attacker", p.Name).
			Str("defender", in.Opponent.Name).
			Stringer("reason", in.Outcome.Reason).
			Msg("battle")
		if in.Loser == nil || utils.FindIndex(e.roster, in.Loser) < 0 {
			return
		}
		e.roster = utils.Remove(e.roster, in.Loser)
		e.metrics.AddElimination()
		e.display.Announce(fmt.Sprintf("%s has been eliminated!", in.Loser.Name))
		e.logger.Info().Str("player", in.Loser.Name).Int("remaining", len(e.roster)).Msg("player eliminated")
	}
}

// Roster returns the players still in the game, in turn order.
func (e *Engine) Roster() []*game.Player {
	return append([]*game.Player(nil), e.roster...)
}

func (e *Engine) Rounds() int {
	return e.rounds
}

func (e *Engine) State() State {
	return e.state
}

// Metric returns the metrics completed when the game ended; it is zero until then.
func (e *Engine) Metric() metrics.GameMetric {
	return e.result
}

func (e *Engine) ID() string {
	return e.id
}

// Winner returns the last remaining player, or nil while the game is running.
func (e *Engine) Winner() *game.Player {
	if e.state != GameOver || len(e.roster) == 0 {
		return nil
	}
	return e.roster[0]
}
