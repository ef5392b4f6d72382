package scenario

import (
	"fmt"
	"wizardwar/game"
)

// scriptedInput plays one player's Script.
type scriptedInput struct {
	script  Script
	moves   int
	choices int
	pickups int
}

func newScriptedInput(s *Script) *scriptedInput {
	in := &scriptedInput{}
	if s != nil {
		in.script = *s
	}
	return in
}

func (in *scriptedInput) RequestMove(player string) (game.Direction, error) {
	if in.moves >= len(in.script.Moves) {
		return game.Up, fmt.Errorf("%w: %s has no moves left", ErrScriptExhausted, player)
	}
	dir := in.script.Moves[in.moves]
	in.moves++
	return dir, nil
}

func (in *scriptedInput) RequestWeaponChoice(player string, weapons []game.Weapon) (int, bool, error) {
	if in.choices >= len(in.script.Choices) {
		return 0, len(weapons) > 0, nil
	}
	n := in.script.Choices[in.choices]
	in.choices++
	if n == 0 {
		return 0, false, nil
	}
	if n > len(weapons) {
		return 0, false, fmt.Errorf("%w: %s chose weapon %d of %d", game.ErrChoiceOutOfRange, player, n, len(weapons))
	}
	return n - 1, true, nil
}

func (in *scriptedInput) RequestYesNo(player string, prompt string) (bool, error) {
	if in.pickups >= len(in.script.Pickups) {
		return true, nil
	}
	yes := in.script.Pickups[in.pickups]
	in.pickups++
	return yes, nil
}
