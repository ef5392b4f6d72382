package gamemaster

import (
	"testing"
	"wizardwar/game"
	"wizardwar/meta"

	"github.com/stretchr/testify/require"
)

func countTiles(s game.Snapshot) map[game.TileKind]int {
	counts := map[game.TileKind]int{}
	for _, row := range s {
		for _, tile := range row {
			counts[tile.Kind]++
		}
	}
	return counts
}

func TestInitializeGame(t *testing.T) {
	t.Run("places the fixed starting scenario", func(t *testing.T) {
		board := game.NewBoard(nil, nil)

		players := NewGameMaster(42).InitializeGame(board)

		counts := countTiles(board.Snapshot())
		require.Equal(t, meta.NUM_TREES, counts[game.TreeTile])
		require.Equal(t, meta.WEAPON_COPIES*len(game.WeaponKinds), counts[game.WeaponTile])
		require.Equal(t, meta.NUM_PLAYERS, counts[game.PlayerTile])
		require.Len(t, players, meta.NUM_PLAYERS)
		for _, p := range players {
			require.Equal(t, game.Entity(p), board.At(p.Position()), "player %s should stand on its cell", p.Name)
			require.False(t, p.HasWeapons())
		}
	})

	t.Run("same seed gives the same board", func(t *testing.T) {
		b1, b2 := game.NewBoard(nil, nil), game.NewBoard(nil, nil)

		NewGameMaster(7).InitializeGame(b1)
		NewGameMaster(7).InitializeGame(b2)

		require.Equal(t, b1.Snapshot(), b2.Snapshot())
	})

	t.Run("weapons of every kind are placed", func(t *testing.T) {
		board := game.NewBoard(nil, nil)
		NewGameMaster(3).InitializeGame(board)

		kinds := map[game.WeaponKind]int{}
		for r := 0; r < meta.BOARD_SIZE; r++ {
			for c := 0; c < meta.BOARD_SIZE; c++ {
				if w, ok := board.At(game.Position{Row: r, Col: c}).(*game.Weapon); ok {
					kinds[w.Kind]++
				}
			}
		}
		for _, kind := range game.WeaponKinds {
			require.Equal(t, meta.WEAPON_COPIES, kinds[kind], "copies of %s", kind)
		}
	})
}

func TestNewPlayers(t *testing.T) {
	players := NewPlayers()

	require.Equal(t, "Player1", players[0].Name)
	require.Equal(t, '1', players[0].Symbol)
	require.Equal(t, "Player2", players[1].Name)
	require.Equal(t, '2', players[1].Symbol)
}

func TestCheckGameOver(t *testing.T) {
	players := NewPlayers()

	require.False(t, CheckGameOver(players))
	require.True(t, CheckGameOver(players[:1]))
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()

	require.NoError(t, err)
}
