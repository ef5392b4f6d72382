package game

import (
	"fmt"
	"wizardwar/meta"
)

// Board is the fixed-size grid and the only authority on occupancy.
type Board struct {
	grid    [meta.BOARD_SIZE][meta.BOARD_SIZE]Entity
	input   InputProvider
	display DisplaySink
}

// NewBoard creates an empty board. The input provider answers pickup and weapon prompts raised
// by moves; a nil display discards narration.
func NewBoard(input InputProvider, display DisplaySink) *Board {
	if display == nil {
		display = Discard
	}
	return &Board{
		input:   input,
		display: display,
	}
}

// Place puts an entity on an empty cell and records its position. It is a no-op returning
// false when the cell is occupied or off the board; callers retry with another position.
func (b *Board) Place(e Entity, pos Position) bool {
	if !pos.InBounds() || b.grid[pos.Row][pos.Col] != nil {
		return false
	}
	b.grid[pos.Row][pos.Col] = e
	e.setPosition(pos)
	return true
}

// At returns the occupant of a cell, nil when empty or off the board.
func (b *Board) At(pos Position) Entity {
	if !pos.InBounds() {
		return nil
	}
	return b.grid[pos.Row][pos.Col]
}

// Remove clears a cell.
func (b *Board) Remove(pos Position) {
	if !pos.InBounds() {
		return
	}
	b.grid[pos.Row][pos.Col] = nil
}

// IsValidMove reports whether a player may step onto pos: the cell must be on the board and not
// hold a tree. Weapon and player cells are valid targets; stepping on them triggers interactions.
func (b *Board) IsValidMove(pos Position) bool {
	if !pos.InBounds() {
		return false
	}
	_, tree := b.grid[pos.Row][pos.Col].(*Obstacle)
	return !tree
}

// MovePlayer moves p onto to and resolves the interaction with whatever the cell held before.
// The move must have been validated with IsValidMove. When a prompt fails the move is undone
// and the board, inventories included, is left as it was.
func (b *Board) MovePlayer(p *Player, to Position) (Interaction, error) {
	from := p.Position()
	if b.At(from) != Entity(p) {
		panic(fmt.Sprintf("player %s is not on the board at %v", p.Name, from))
	}
	if !b.IsValidMove(to) {
		panic(fmt.Sprintf("invalid move for player %s to %v", p.Name, to))
	}

	prior := b.grid[to.Row][to.Col]
	b.grid[from.Row][from.Col] = nil
	b.grid[to.Row][to.Col] = p
	p.setPosition(to)

	in, err := b.interact(p, from, prior)
	if err != nil {
		b.grid[to.Row][to.Col] = prior
		b.grid[from.Row][from.Col] = p
		p.setPosition(from)
		return Interaction{}, err
	}
	return in, nil
}

// Occupants counts the non-empty cells.
func (b *Board) Occupants() int {
	n := 0
	for _, row := range b.grid {
		for _, e := range row {
			if e != nil {
				n++
			}
		}
	}
	return n
}

// EmptyCells lists the empty cells in row-major order.
func (b *Board) EmptyCells() []Position {
	var cells []Position
	for r, row := range b.grid {
		for c, e := range row {
			if e == nil {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Snapshot copies the grid into display tiles.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for r, row := range b.grid {
		for c, e := range row {
			switch e := e.(type) {
			case *Player:
				s[r][c] = Tile{Kind: PlayerTile, Symbol: e.Symbol}
			case *Weapon:
				s[r][c] = Tile{Kind: WeaponTile}
			case *Obstacle:
				s[r][c] = Tile{Kind: TreeTile}
			}
		}
	}
	return s
}
