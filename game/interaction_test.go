package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPickup(t *testing.T) {
	t.Run("accepted pickup moves the weapon into the inventory", func(t *testing.T) {
		input := newFakeInput()
		input.answers["Player1"] = []bool{true}
		display := &transcript{}
		b := NewBoard(input, display)
		p := NewPlayer("Player1", '1')
		b.Place(p, Position{Row: 3, Col: 2})
		w := NewWeapon(Fireball)
		b.Place(w, Position{Row: 3, Col: 3})

		in, err := b.MovePlayer(p, Position{Row: 3, Col: 3})

		require.NoError(t, err)
		require.Equal(t, PickupInteraction, in.Kind)
		require.True(t, in.Accepted)
		require.Same(t, w, in.Weapon)
		require.Equal(t, []WeaponKind{Fireball}, p.Kinds(), "inventory should gain exactly one weapon")
		require.Equal(t, Entity(p), b.At(Position{Row: 3, Col: 3}), "cell should hold only the player")
		require.Equal(t, []string{"You found a Fireball. Do you want to pick it up? (yes/no): "}, input.prompts)
		require.Contains(t, display.messages, "Player1 picked up a Fireball")
	})

	t.Run("declined pickup discards the weapon", func(t *testing.T) {
		input := newFakeInput()
		input.answers["Player1"] = []bool{false}
		b := NewBoard(input, nil)
		p := NewPlayer("Player1", '1')
		b.Place(p, Position{Row: 3, Col: 2})
		b.Place(NewWeapon(Sword), Position{Row: 3, Col: 3})

		in, err := b.MovePlayer(p, Position{Row: 3, Col: 3})
		require.NoError(t, err)
		_, err = b.MovePlayer(p, Position{Row: 3, Col: 4})
		require.NoError(t, err)

		require.False(t, in.Accepted)
		require.False(t, p.HasWeapons())
		require.Nil(t, b.At(Position{Row: 3, Col: 3}), "declined weapon should not reappear")
	})

	t.Run("prompt failure is returned", func(t *testing.T) {
		b := NewBoard(newFakeInput(), nil)
		p := NewPlayer("Player1", '1')
		b.Place(p, Position{Row: 0, Col: 0})
		b.Place(NewWeapon(Sword), Position{Row: 0, Col: 1})

		_, err := b.MovePlayer(p, Position{Row: 0, Col: 1})

		require.ErrorIs(t, err, errNoAnswer)
		require.Equal(t, Entity(p), b.At(Position{Row: 0, Col: 0}), "move should be undone")
		require.IsType(t, &Weapon{}, b.At(Position{Row: 0, Col: 1}))
		require.Equal(t, Position{Row: 0, Col: 0}, p.Position())
	})
}

// setupDuel places mover a at (5,5) and defender d at (5,6).
func setupDuel(input *fakeInput, display DisplaySink, a, d *Player) *Board {
	b := NewBoard(input, display)
	b.Place(a, Position{Row: 5, Col: 5})
	b.Place(d, Position{Row: 5, Col: 6})
	return b
}

func TestBattle(t *testing.T) {
	t.Run("equal swords: second combatant wins by tie-break without transfer", func(t *testing.T) {
		input := newFakeInput()
		input.choices["Player1"] = []int{0}
		input.choices["Player2"] = []int{0}
		display := &transcript{}
		a, d := armed("Player1", '1', Sword), armed("Player2", '2', Sword)
		b := setupDuel(input, display, a, d)

		in, err := b.MovePlayer(a, Position{Row: 5, Col: 6})

		require.NoError(t, err)
		require.Equal(t, BattleInteraction, in.Kind)
		require.Equal(t, TieBreak, in.Outcome.Reason)
		require.Same(t, d, in.Winner)
		require.Same(t, a, in.Loser, "mover should be eliminated")
		require.Empty(t, a.Kinds(), "A's sword should be spent")
		require.Empty(t, d.Kinds(), "tie-break should not transfer weapons")
		require.Equal(t, Entity(d), b.At(Position{Row: 5, Col: 6}), "winner should hold the cell")
		require.Nil(t, b.At(Position{Row: 5, Col: 5}))
		require.Equal(t, []string{
			"Player1 used Sword",
			"Player2 used Sword",
			"It's a draw. Player2 wins.",
		}, display.messages)
		requireConsistent(t, b)
	})

	t.Run("fireball beats sword and takes it, keeping unspent weapons first", func(t *testing.T) {
		input := newFakeInput()
		input.choices["Player1"] = []int{1}
		input.choices["Player2"] = []int{0}
		a, d := armed("Player1", '1', Fireball, Fireball), armed("Player2", '2', Sword)
		b := setupDuel(input, nil, a, d)

		in, err := b.MovePlayer(a, Position{Row: 5, Col: 6})

		require.NoError(t, err)
		require.Equal(t, DecisiveWin, in.Outcome.Reason)
		require.Same(t, a, in.Winner)
		require.Same(t, d, in.Loser)
		require.Equal(t, []WeaponKind{Fireball, Sword}, a.Kinds())
		require.Empty(t, d.Kinds())
		require.Equal(t, Entity(a), b.At(Position{Row: 5, Col: 6}))
		requireConsistent(t, b)
	})

	t.Run("selection removes only the chosen weapon", func(t *testing.T) {
		input := newFakeInput()
		input.choices["Player1"] = []int{0}
		input.choices["Player2"] = []int{1}
		a := armed("Player1", '1', Fireball)
		d := armed("Player2", '2', MagicRing, Sword, Fireball)
		b := setupDuel(input, nil, a, d)

		in, err := b.MovePlayer(a, Position{Row: 5, Col: 6})

		require.NoError(t, err)
		require.Same(t, a, in.Winner)
		require.Equal(t, []WeaponKind{Sword}, a.Kinds(), "spent fireball is gone, sword is won")
		require.Equal(t, []WeaponKind{MagicRing, Fireball}, d.Kinds(), "unchosen weapons stay in order")
		require.Equal(t, []Weapon{{Kind: MagicRing}, {Kind: Sword}, {Kind: Fireball}}, stripPositions(input.offered["Player2"][0]))
	})

	t.Run("defender with a stronger weapon wins and takes the mover's", func(t *testing.T) {
		input := newFakeInput()
		input.choices["Player1"] = []int{0}
		input.choices["Player2"] = []int{0}
		a, d := armed("Player1", '1', Sword), armed("Player2", '2', Fireball)
		b := setupDuel(input, nil, a, d)

		in, err := b.MovePlayer(a, Position{Row: 5, Col: 6})

		require.NoError(t, err)
		require.Same(t, d, in.Winner)
		require.Equal(t, []WeaponKind{Sword}, d.Kinds())
		require.Equal(t, Entity(d), b.At(Position{Row: 5, Col: 6}))
		require.Nil(t, b.At(Position{Row: 5, Col: 5}))
	})

	t.Run("unarmed defender loses by default without prompt", func(t *testing.T) {
		input := newFakeInput()
		input.choices["Player1"] = []int{0}
		display := &transcript{}
		a, d := armed("Player1", '1', MagicRing), NewPlayer("Player2", '2')
		b := setupDuel(input, display, a, d)

		in, err := b.MovePlayer(a, Position{Row: 5, Col: 6})

		require.NoError(t, err)
		require.Equal(t, DefaultWin, in.Outcome.Reason)
		require.Same(t, d, in.Loser)
		require.Empty(t, a.Kinds(), "default win should not return the spent weapon")
		require.NotContains(t, input.offered, "Player2", "unarmed player should not be prompted")
		require.Contains(t, display.messages, "Player2 has no weapons available.")
		require.Contains(t, display.messages, "Player2 loses (no weapon).")
	})

	t.Run("choosing to fight unarmed loses by default", func(t *testing.T) {
		input := newFakeInput()
		input.choices["Player1"] = []int{-1}
		input.choices["Player2"] = []int{0}
		a, d := armed("Player1", '1', Fireball), armed("Player2", '2', Sword)
		b := setupDuel(input, nil, a, d)

		in, err := b.MovePlayer(a, Position{Row: 5, Col: 6})

		require.NoError(t, err)
		require.Same(t, a, in.Loser)
		require.Equal(t, []WeaponKind{Fireball}, a.Kinds(), "unspent weapon stays with the loser")
		require.Empty(t, d.Kinds())
	})

	t.Run("both unarmed is a draw and the mover steps back", func(t *testing.T) {
		a, d := NewPlayer("Player1", '1'), NewPlayer("Player2", '2')
		display := &transcript{}
		b := setupDuel(newFakeInput(), display, a, d)

		in, err := b.MovePlayer(a, Position{Row: 5, Col: 6})

		require.NoError(t, err)
		require.Equal(t, Draw, in.Outcome.Reason)
		require.Nil(t, in.Winner)
		require.Nil(t, in.Loser)
		require.Equal(t, Entity(a), b.At(Position{Row: 5, Col: 5}))
		require.Equal(t, Entity(d), b.At(Position{Row: 5, Col: 6}))
		require.Contains(t, display.messages, "Both players have no weapons. No winner.")
		requireConsistent(t, b)
	})

	t.Run("out of range choice is an error", func(t *testing.T) {
		input := newFakeInput()
		input.choices["Player1"] = []int{3}
		a, d := armed("Player1", '1', Sword), armed("Player2", '2', Sword)
		b := setupDuel(input, nil, a, d)

		_, err := b.MovePlayer(a, Position{Row: 5, Col: 6})

		require.ErrorIs(t, err, ErrChoiceOutOfRange)
	})

	t.Run("defender prompt failure leaves the board untouched", func(t *testing.T) {
		input := newFakeInput()
		input.choices["Player1"] = []int{0}
		a, d := armed("Player1", '1', Fireball), armed("Player2", '2', Sword)
		b := setupDuel(input, nil, a, d)
		before := b.Snapshot()

		_, err := b.MovePlayer(a, Position{Row: 5, Col: 6})

		require.ErrorIs(t, err, errNoAnswer)
		require.Equal(t, before, b.Snapshot())
		require.Equal(t, Position{Row: 5, Col: 5}, a.Position())
		require.Equal(t, Position{Row: 5, Col: 6}, d.Position())
		require.Equal(t, []WeaponKind{Fireball}, a.Kinds(), "mover's weapon should not be spent")
		require.Equal(t, []WeaponKind{Sword}, d.Kinds())
		requireConsistent(t, b)
	})
}

func stripPositions(weapons []Weapon) []Weapon {
	out := make([]Weapon, len(weapons))
	for i, w := range weapons {
		out[i] = Weapon{Kind: w.Kind}
	}
	return out
}
