package game

import "errors"

var errNoAnswer = errors.New("no scripted answer")

// fakeInput answers prompts from per-player queues. A choice of -1 means fight unarmed.
type fakeInput struct {
	moves   map[string][]Direction
	choices map[string][]int
	answers map[string][]bool
	offered map[string][][]Weapon
	prompts []string
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		moves:   map[string][]Direction{},
		choices: map[string][]int{},
		answers: map[string][]bool{},
		offered: map[string][][]Weapon{},
	}
}

func (f *fakeInput) RequestMove(player string) (Direction, error) {
	queue := f.moves[player]
	if len(queue) == 0 {
		return Up, errNoAnswer
	}
	f.moves[player] = queue[1:]
	return queue[0], nil
}

func (f *fakeInput) RequestWeaponChoice(player string, weapons []Weapon) (int, bool, error) {
	f.offered[player] = append(f.offered[player], weapons)
	queue := f.choices[player]
	if len(queue) == 0 {
		return 0, false, errNoAnswer
	}
	f.choices[player] = queue[1:]
	if queue[0] < 0 {
		return 0, false, nil
	}
	return queue[0], true, nil
}

func (f *fakeInput) RequestYesNo(player string, prompt string) (bool, error) {
	f.prompts = append(f.prompts, prompt)
	queue := f.answers[player]
	if len(queue) == 0 {
		return false, errNoAnswer
	}
	f.answers[player] = queue[1:]
	return queue[0], nil
}

// transcript records narration.
type transcript struct {
	renders  int
	messages []string
}

func (t *transcript) RenderBoard(Snapshot) { t.renders++ }
func (t *transcript) Announce(msg string)  { t.messages = append(t.messages, msg) }

func armed(name string, symbol rune, kinds ...WeaponKind) *Player {
	p := NewPlayer(name, symbol)
	for _, k := range kinds {
		p.AddWeapon(NewWeapon(k))
	}
	return p
}
