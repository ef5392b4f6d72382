package game

import (
	"errors"
	"fmt"
	"strings"
	"wizardwar/meta"
)

// Position is a (row, col) cell coordinate. Row 0 is the top of the board.
type Position struct {
	Row int
	Col int
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < meta.BOARD_SIZE && p.Col >= 0 && p.Col < meta.BOARD_SIZE
}

// Step returns the neighbouring position in the given direction. The result may be off the board.
func (p Position) Step(d Direction) Position {
	switch d {
	case Up:
		p.Row--
	case Down:
		p.Row++
	case Left:
		p.Col--
	case Right:
		p.Col++
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// WeaponKind is one of the three weapon types of the game.
type WeaponKind int

const (
	Sword WeaponKind = iota
	Fireball
	MagicRing
)

// WeaponKinds lists every kind in setup order.
var WeaponKinds = []WeaponKind{Sword, Fireball, MagicRing}

// ErrUnknownWeapon indicates a weapon name outside the fixed set.
var ErrUnknownWeapon = errors.New("unknown weapon")

func (k WeaponKind) String() string {
	switch k {
	case Sword:
		return "Sword"
	case Fireball:
		return "Fireball"
	case MagicRing:
		return "Magic Ring"
	default:
		return fmt.Sprintf("WeaponKind(%d)", int(k))
	}
}

// ParseWeaponKind maps a display name ("Magic Ring", "magicring", "fireball"...) to its kind.
func ParseWeaponKind(s string) (WeaponKind, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, kind := range WeaponKinds {
		if strings.ToLower(strings.ReplaceAll(kind.String(), " ", "")) == normalized {
			return kind, nil
		}
	}
	return Sword, fmt.Errorf("%w: %q", ErrUnknownWeapon, s)
}

// Entity is anything that can occupy a board cell: *Weapon, *Obstacle or *Player.
// An empty cell holds a nil Entity. The set is closed to this package.
type Entity interface {
	Position() Position
	setPosition(pos Position)
}

// Weapon lies on the board until picked up. Once held by a player its position is meaningless.
type Weapon struct {
	Kind WeaponKind
	pos  Position
}

func NewWeapon(kind WeaponKind) *Weapon {
	return &Weapon{Kind: kind}
}

func (w *Weapon) Position() Position     { return w.pos }
func (w *Weapon) setPosition(p Position) { w.pos = p }

// Obstacle is an impassable tree.
type Obstacle struct {
	pos Position
}

func NewObstacle() *Obstacle {
	return &Obstacle{}
}

func (o *Obstacle) Position() Position     { return o.pos }
func (o *Obstacle) setPosition(p Position) { o.pos = p }

// Player is a combatant. Its inventory keeps weapons in acquisition order.
type Player struct {
	Name    string
	Symbol  rune
	pos     Position
	weapons []*Weapon
}

func NewPlayer(name string, symbol rune) *Player {
	return &Player{Name: name, Symbol: symbol}
}

func (p *Player) Position() Position     { return p.pos }
func (p *Player) setPosition(q Position) { p.pos = q }

// AddWeapon appends a weapon to the end of the inventory.
func (p *Player) AddWeapon(w *Weapon) {
	p.weapons = append(p.weapons, w)
}

// Spend removes and returns the weapon at index i. The order of the remaining weapons is kept.
func (p *Player) Spend(i int) *Weapon {
	w := p.weapons[i]
	p.weapons = append(p.weapons[:i:i], p.weapons[i+1:]...)
	return w
}

// Weapons returns a copy of the inventory.
func (p *Player) Weapons() []Weapon {
	out := make([]Weapon, len(p.weapons))
	for i, w := range p.weapons {
		out[i] = *w
	}
	return out
}

// Kinds returns the kinds of the held weapons in inventory order.
func (p *Player) Kinds() []WeaponKind {
	out := make([]WeaponKind, len(p.weapons))
	for i, w := range p.weapons {
		out[i] = w.Kind
	}
	return out
}

func (p *Player) HasWeapons() bool {
	return len(p.weapons) > 0
}

// WeaponList renders the inventory as "Sword, Fireball", or "No weapons".
func (p *Player) WeaponList() string {
	if len(p.weapons) == 0 {
		return "No weapons"
	}
	names := make([]string, len(p.weapons))
	for i, w := range p.weapons {
		names[i] = w.Kind.String()
	}
	return strings.Join(names, ", ")
}
