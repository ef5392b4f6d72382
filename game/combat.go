package game

// Side names a combatant: A is the player who moved, B the one moved onto.
type Side int

const (
	NoSide Side = iota
	SideA
	SideB
)

// Reason explains how a battle was decided.
type Reason int

const (
	Draw Reason = iota
	DefaultWin
	DecisiveWin
	TieBreak
)

func (r Reason) String() string {
	switch r {
	case Draw:
		return "draw"
	case DefaultWin:
		return "default"
	case DecisiveWin:
		return "decisive"
	case TieBreak:
		return "tie-break"
	default:
		return "unknown"
	}
}

// BattleOutcome is the verdict of ResolveBattle.
type BattleOutcome struct {
	Winner Side
	Reason Reason
	Spoils *Weapon // the loser's spent weapon, handed to the winner on a decisive win
}

// Stronger reports whether weapon kind a beats b: Fireball beats Sword, Sword beats Magic Ring
// and Magic Ring beats Fireball. Every other pair, equal kinds included, is false.
func Stronger(a, b WeaponKind) bool {
	switch a {
	case Fireball:
		return b == Sword
	case Sword:
		return b == MagicRing
	case MagicRing:
		return b == Fireball
	}
	return false
}

// ResolveBattle decides a battle from the weapons each side spent; nil means no weapon.
// When neither weapon is stronger, B wins the tie-break and nothing is transferred.
func ResolveBattle(a, b *Weapon) BattleOutcome {
	switch {
	case a == nil && b == nil:
		return BattleOutcome{Winner: NoSide, Reason: Draw}
	case a == nil:
		return BattleOutcome{Winner: SideB, Reason: DefaultWin}
	case b == nil:
		return BattleOutcome{Winner: SideA, Reason: DefaultWin}
	case Stronger(a.Kind, b.Kind):
		return BattleOutcome{Winner: SideA, Reason: DecisiveWin, Spoils: b}
	case Stronger(b.Kind, a.Kind):
		return BattleOutcome{Winner: SideB, Reason: DecisiveWin, Spoils: a}
	default:
		return BattleOutcome{Winner: SideB, Reason: TieBreak}
	}
}
