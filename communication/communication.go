package communication

import (
	"errors"
	"wizardwar/game"
)

// ErrInputClosed is returned when the input stream ends before an answer is read.
var ErrInputClosed = errors.New("input closed")

// Communicator is an interface that abstracts the text channel to a human player.
type Communicator interface {
	// Prompt writes msg without a line break and returns the next line of input, trimmed.
	Prompt(msg string) (string, error)
	Println(msg string)
}

// Terminal is a Communicator that can also display the game.
type Terminal interface {
	Communicator
	game.DisplaySink
}
