package game

import (
	"strings"
	"wizardwar/meta"
)

type TileKind int

const (
	EmptyTile TileKind = iota
	WeaponTile
	TreeTile
	PlayerTile
)

// Tile is the display view of one cell.
type Tile struct {
	Kind   TileKind
	Symbol rune // player symbol, set for PlayerTile only
}

// Glyph returns the character used for the tile in text renders.
func (t Tile) Glyph() rune {
	switch t.Kind {
	case WeaponTile:
		return 'W'
	case TreeTile:
		return 'T'
	case PlayerTile:
		return t.Symbol
	default:
		return '.'
	}
}

// Snapshot is a value copy of the board for display sinks.
type Snapshot [meta.BOARD_SIZE][meta.BOARD_SIZE]Tile

func (s Snapshot) String() string {
	var sb strings.Builder
	for _, row := range s {
		for j, tile := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(tile.Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
