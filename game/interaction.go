package game

import (
	"errors"
	"fmt"
)

// ErrChoiceOutOfRange indicates an input provider returned a weapon index outside the inventory.
var ErrChoiceOutOfRange = errors.New("weapon choice out of range")

type InteractionKind int

const (
	NoInteraction InteractionKind = iota
	PickupInteraction
	BattleInteraction
)

// Interaction reports what happened when a player arrived on a cell.
type Interaction struct {
	Kind InteractionKind

	// Pickup
	Weapon   *Weapon
	Accepted bool

	// Battle
	Opponent *Player
	Outcome  BattleOutcome
	Winner   *Player
	Loser    *Player // eliminated combatant, nil on a draw
}

func (b *Board) interact(p *Player, from Position, prior Entity) (Interaction, error) {
	switch prior := prior.(type) {
	case *Weapon:
		return b.offerPickup(p, prior)
	case *Player:
		if prior == p {
			return Interaction{}, nil
		}
		return b.battle(p, prior, from)
	default:
		return Interaction{}, nil
	}
}

// offerPickup asks the mover whether to take the weapon that was on the cell. A declined weapon
// is discarded so that the cell keeps a single occupant.
func (b *Board) offerPickup(p *Player, w *Weapon) (Interaction, error) {
	prompt := fmt.Sprintf("You found a %s. Do you want to pick it up? (yes/no): ", w.Kind)
	yes, err := b.input.RequestYesNo(p.Name, prompt)
	if err != nil {
		return Interaction{}, fmt.Errorf("pickup prompt for %s: %w", p.Name, err)
	}

	in := Interaction{Kind: PickupInteraction, Weapon: w, Accepted: yes}
	if yes {
		p.AddWeapon(w)
		b.display.Announce(fmt.Sprintf("%s picked up a %s", p.Name, w.Kind))
	} else {
		b.display.Announce(fmt.Sprintf("%s left the %s behind; it is lost.", p.Name, w.Kind))
	}
	return in, nil
}

// battle fights mover a against defender d, who was standing on the cell a just entered.
// The winner holds the cell afterwards; on a draw a steps back to from.
func (b *Board) battle(a, d *Player, from Position) (Interaction, error) {
	ia, err := b.chooseWeapon(a)
	if err != nil {
		return Interaction{}, err
	}
	id, err := b.chooseWeapon(d)
	if err != nil {
		return Interaction{}, err
	}
	wa, wd := spend(a, ia), spend(d, id)
	b.display.Announce(fmt.Sprintf("%s used %s", a.Name, weaponName(wa)))
	b.display.Announce(fmt.Sprintf("%s used %s", d.Name, weaponName(wd)))

	outcome := ResolveBattle(wa, wd)
	in := Interaction{Kind: BattleInteraction, Opponent: d, Outcome: outcome}
	cell := a.Position()

	switch outcome.Winner {
	case SideA:
		in.Winner, in.Loser = a, d
	case SideB:
		in.Winner, in.Loser = d, a
		b.grid[cell.Row][cell.Col] = d
	default:
		b.grid[cell.Row][cell.Col] = d
		b.grid[from.Row][from.Col] = a
		a.setPosition(from)
	}
	if outcome.Spoils != nil {
		in.Winner.AddWeapon(outcome.Spoils)
	}

	switch outcome.Reason {
	case Draw:
		b.display.Announce("Both players have no weapons. No winner.")
	case DefaultWin:
		b.display.Announce(fmt.Sprintf("%s loses (no weapon).", in.Loser.Name))
	case DecisiveWin:
		b.display.Announce(fmt.Sprintf("%s wins the battle!", in.Winner.Name))
	case TieBreak:
		b.display.Announce(fmt.Sprintf("It's a draw. %s wins.", in.Winner.Name))
	}
	return in, nil
}

// chooseWeapon asks p for a weapon and returns its inventory index, or -1 to fight unarmed.
// A player without weapons is not prompted. Nothing is spent until both sides have chosen.
func (b *Board) chooseWeapon(p *Player) (int, error) {
	if !p.HasWeapons() {
		b.display.Announce(fmt.Sprintf("%s has no weapons available.", p.Name))
		return -1, nil
	}
	weapons := p.Weapons()
	i, ok, err := b.input.RequestWeaponChoice(p.Name, weapons)
	if err != nil {
		return -1, fmt.Errorf("weapon choice for %s: %w", p.Name, err)
	}
	if !ok {
		return -1, nil
	}
	if i < 0 || i >= len(weapons) {
		return -1, fmt.Errorf("%w: %s chose %d of %d", ErrChoiceOutOfRange, p.Name, i, len(weapons))
	}
	return i, nil
}

func spend(p *Player, i int) *Weapon {
	if i < 0 {
		return nil
	}
	return p.Spend(i)
}

func weaponName(w *Weapon) string {
	if w == nil {
		return "no weapon"
	}
	return w.Kind.String()
}
