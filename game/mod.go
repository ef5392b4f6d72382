package game

// InputProvider supplies every decision the core needs from a player. Implementations
// re-prompt on malformed input themselves, so the core only ever receives valid values.
// A non-nil error means no decision can be obtained at all (closed input, exhausted
// script) and ends the game.
type InputProvider interface {
	RequestMove(player string) (Direction, error)
	// RequestWeaponChoice returns an index into weapons, or ok=false to fight unarmed.
	RequestWeaponChoice(player string, weapons []Weapon) (index int, ok bool, err error)
	RequestYesNo(player string, prompt string) (bool, error)
}

// DisplaySink receives board renders and narration.
type DisplaySink interface {
	RenderBoard(snapshot Snapshot)
	Announce(message string)
}

// Discard is a DisplaySink that drops everything.
var Discard DisplaySink = discard{}

type discard struct{}

func (discard) RenderBoard(Snapshot) {}
func (discard) Announce(string)      {}
