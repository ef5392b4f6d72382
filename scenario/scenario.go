package scenario

import (
	"errors"
	"wizardwar/game"
)

// ErrScriptExhausted is returned when a scripted player is asked for a move it does not have.
var ErrScriptExhausted = errors.New("script exhausted")

// Scenario is a fixed starting board, the decisions each player makes and the expected result.
type Scenario struct {
	Name    string
	Trees   []game.Position
	Weapons []WeaponSetup
	Players []PlayerSetup
	Scripts map[string]*Script
	Expect  Expectations
}

type WeaponSetup struct {
	Kind game.WeaponKind
	Pos  game.Position
}

type PlayerSetup struct {
	Name    string
	Symbol  rune
	Pos     game.Position
	Weapons []game.WeaponKind
}

// Script holds one player's decisions, consumed in order. Choices are 1-based weapon numbers;
// 0 fights unarmed. A player out of choices uses their first weapon and one out of pickup
// answers accepts.
type Script struct {
	Moves   []game.Direction
	Choices []int
	Pickups []bool
}

// Expectations are checked after the game ends or the scripts run out. Zero values are not
// checked. Weapons are compared in inventory order.
type Expectations struct {
	Winner     string
	Rounds     *int
	Weapons    map[string][]game.WeaponKind
	Positions  map[string]game.Position
	Eliminated []string
	Cells      map[game.Position]rune
}

func newScenario(name string) *Scenario {
	return &Scenario{
		Name:    name,
		Scripts: make(map[string]*Script),
		Expect: Expectations{
			Weapons:   make(map[string][]game.WeaponKind),
			Positions: make(map[string]game.Position),
			Cells:     make(map[game.Position]rune),
		},
	}
}

func (s *Scenario) script(name string) *Script {
	sc, ok := s.Scripts[name]
	if !ok {
		sc = &Script{}
		s.Scripts[name] = sc
	}
	return sc
}

func (s *Scenario) hasPlayer(name string) bool {
	for _, p := range s.Players {
		if p.Name == name {
			return true
		}
	}
	return false
}
