package communication

import "wizardwar/game"

// Transcript is a display sink that keeps the narration and the last board it was shown.
// Scripted games use it in place of a console.
type Transcript struct {
	Messages []string
	Renders  int
	Last     game.Snapshot
	echo     game.DisplaySink
}

// NewTranscript returns a transcript that also forwards everything to echo when it is non-nil.
func NewTranscript(echo game.DisplaySink) *Transcript {
	return &Transcript{echo: echo}
}

func (t *Transcript) RenderBoard(s game.Snapshot) {
	t.Renders++
	t.Last = s
	if t.echo != nil {
		t.echo.RenderBoard(s)
	}
}

func (t *Transcript) Announce(msg string) {
	t.Messages = append(t.Messages, msg)
	if t.echo != nil {
		t.echo.Announce(msg)
	}
}
