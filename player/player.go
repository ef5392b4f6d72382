package player

import (
	"fmt"
	"strconv"
	"strings"
	"wizardwar/communication"
	"wizardwar/game"
)

// Human answers game prompts by asking a person through a Communicator. Malformed answers are
// rejected and the question is asked again.
type Human struct {
	Communicator communication.Communicator
}

// NewHuman creates a new Human reading from comm.
func NewHuman(comm communication.Communicator) *Human {
	return &Human{Communicator: comm}
}

func (h *Human) RequestMove(player string) (game.Direction, error) {
	for {
		line, err := h.Communicator.Prompt(fmt.Sprintf("%s, enter move (U, D, L, R): ", player))
		if err != nil {
			return game.Up, err
		}
		dir, err := game.ParseDirection(line)
		if err != nil {
			h.Communicator.Println("Invalid input. Please enter U, D, L or R.")
			continue
		}
		return dir, nil
	}
}

func (h *Human) RequestWeaponChoice(player string, weapons []game.Weapon) (int, bool, error) {
	if len(weapons) == 0 {
		return 0, false, nil
	}
	h.Communicator.Println(fmt.Sprintf("%s, choose a weapon to use:", player))
	for i, w := range weapons {
		h.Communicator.Println(fmt.Sprintf("%d. %s", i+1, w.Kind))
	}
	for {
		line, err := h.Communicator.Prompt("Enter weapon number: ")
		if err != nil {
			return 0, false, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(weapons) {
			h.Communicator.Println(fmt.Sprintf("Invalid choice. Enter a number from 1 to %d.", len(weapons)))
			continue
		}
		return n - 1, true, nil
	}
}

func (h *Human) RequestYesNo(player string, prompt string) (bool, error) {
	for {
		line, err := h.Communicator.Prompt(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		h.Communicator.Println("Please answer yes or no.")
	}
}
