package gamemaster

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"wizardwar/game"
	"wizardwar/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// GameMaster lays out the starting board from a seeded random source.
type GameMaster struct {
	rng *rand.Rand
}

// NewGameMaster initializes a GameMaster. The same seed always produces the same layout.
func NewGameMaster(seed int64) *GameMaster {
	return &GameMaster{
		rng: rand.New(rand.NewSource(uint64(seed))),
	}
}

// InitializeGame places the trees, two weapons of each kind and the players on random empty
// cells of an empty board, in that order. It returns the players in turn order.
func (gm *GameMaster) InitializeGame(board *game.Board) []*game.Player {
	for i := 0; i < meta.NUM_TREES; i++ {
		gm.placeRandomly(board, game.NewObstacle())
	}

	for _, kind := range game.WeaponKinds {
		for i := 0; i < meta.WEAPON_COPIES; i++ {
			gm.placeRandomly(board, game.NewWeapon(kind))
		}
	}

	players := NewPlayers()
	for _, p := range players {
		pos := gm.placeRandomly(board, p)
		log.Debug().Str("player", p.Name).Int("row", pos.Row).Int("col", pos.Col).Msg("player placed")
	}
	return players
}

// placeRandomly retries random cells until one is empty.
func (gm *GameMaster) placeRandomly(board *game.Board, e game.Entity) game.Position {
	if board.Occupants() >= meta.BOARD_SIZE*meta.BOARD_SIZE {
		panic("cannot place entity: board is full")
	}
	for {
		pos := game.Position{Row: gm.rng.Intn(meta.BOARD_SIZE), Col: gm.rng.Intn(meta.BOARD_SIZE)}
		if board.Place(e, pos) {
			return pos
		}
	}
}

// NewPlayers creates Player1, Player2, ... with symbols '1', '2', ...
func NewPlayers() []*game.Player {
	players := make([]*game.Player, meta.NUM_PLAYERS)
	for i := range players {
		players[i] = game.NewPlayer(fmt.Sprintf("Player%d", i+1), rune('1'+i))
	}
	return players
}

// CheckGameOver determines if the game has ended.
func CheckGameOver(roster []*game.Player) bool {
	return len(roster) <= 1
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
