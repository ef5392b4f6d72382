// meta/meta.go
package meta

// BOARD_SIZE is the number of rows and columns of the board.
const BOARD_SIZE = 10

// NUM_TREES defines how many obstacles are placed at setup.
const NUM_TREES = 3

// WEAPON_COPIES defines how many weapons of each kind are placed at setup.
const WEAPON_COPIES = 2

// NUM_PLAYERS defines how many players start the game.
const NUM_PLAYERS = 2
