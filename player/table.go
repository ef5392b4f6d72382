package player

import (
	"errors"
	"fmt"
	"wizardwar/game"
)

var ErrUnseated = errors.New("no input provider seated for player")

// Table routes every prompt to the provider seated for the named player. Players without a
// seat fall back to the default provider, if there is one.
type Table struct {
	seats    map[string]game.InputProvider
	fallback game.InputProvider
}

func NewTable(fallback game.InputProvider) *Table {
	return &Table{
		seats:    make(map[string]game.InputProvider),
		fallback: fallback,
	}
}

// Seat assigns provider to the player called name, replacing any earlier seat.
func (t *Table) Seat(name string, provider game.InputProvider) {
	t.seats[name] = provider
}

func (t *Table) provider(name string) (game.InputProvider, error) {
	if p, ok := t.seats[name]; ok {
		return p, nil
	}
	if t.fallback != nil {
		return t.fallback, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnseated, name)
}

func (t *Table) RequestMove(player string) (game.Direction, error) {
	p, err := t.provider(player)
	if err != nil {
		return game.Up, err
	}
	return p.RequestMove(player)
}

func (t *Table) RequestWeaponChoice(player string, weapons []game.Weapon) (int, bool, error) {
	p, err := t.provider(player)
	if err != nil {
		return 0, false, err
	}
	return p.RequestWeaponChoice(player, weapons)
}

func (t *Table) RequestYesNo(player string, prompt string) (bool, error) {
	p, err := t.provider(player)
	if err != nil {
		return false, err
	}
	return p.RequestYesNo(player, prompt)
}
