package metrics

import (
	"sync/atomic"
	"time"
)

type GameMetric struct {
	GameID          string
	Winner          string // Player name
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
	Rounds          int
	Turns           int
	InvalidMoves    int
	Pickups         int
	DeclinedPickups int
	Battles         int
	Eliminations    int
}

type Collector interface {
	Start(gameID string)
	AddRound()
	AddTurn()
	AddInvalidMove()
	AddPickup(accepted bool)
	AddBattle()
	AddElimination()
	Complete(winner string) GameMetric
}

type collector struct {
	gameID          string
	startTime       time.Time
	rounds          atomic.Int32
	turns           atomic.Int32
	invalidMoves    atomic.Int32
	pickups         atomic.Int32
	declinedPickups atomic.Int32
	battles         atomic.Int32
	eliminations    atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(gameID string) {
	m.startTime = time.Now()
	m.gameID = gameID
}

func (m *collector) AddRound() {
	m.rounds.Add(1)
}

func (m *collector) AddTurn() {
	m.turns.Add(1)
}

func (m *collector) AddInvalidMove() {
	m.invalidMoves.Add(1)
}

func (m *collector) AddPickup(accepted bool) {
	if accepted {
		m.pickups.Add(1)
	} else {
		m.declinedPickups.Add(1)
	}
}

func (m *collector) AddBattle() {
	m.battles.Add(1)
}

func (m *collector) AddElimination() {
	m.eliminations.Add(1)
}

func (m *collector) Complete(winner string) GameMetric {
	end := time.Now()
	return GameMetric{
		GameID:          m.gameID,
		Winner:          winner,
		StartTime:       m.startTime,
		EndTime:         end,
		Duration:        end.Sub(m.startTime),
		Rounds:          int(m.rounds.Load()),
		Turns:           int(m.turns.Load()),
		InvalidMoves:    int(m.invalidMoves.Load()),
		Pickups:         int(m.pickups.Load()),
		DeclinedPickups: int(m.declinedPickups.Load()),
		Battles:         int(m.battles.Load()),
		Eliminations:    int(m.eliminations.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(gameID string)               {}
func (m *dummyCollector) AddRound()                         {}
func (m *dummyCollector) AddTurn()                          {}
func (m *dummyCollector) AddInvalidMove()                   {}
func (m *dummyCollector) AddPickup(accepted bool)           {}
func (m *dummyCollector) AddBattle()                        {}
func (m *dummyCollector) AddElimination()                   {}
func (m *dummyCollector) Complete(winner string) GameMetric { return GameMetric{Winner: winner} }
