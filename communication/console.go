package communication

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"wizardwar/game"
)

// Console reads answers line by line from r and writes prompts, boards and narration to w.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(r),
		out: w,
	}
}

func (c *Console) Prompt(msg string) (string, error) {
	fmt.Fprint(c.out, msg)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) Println(msg string) {
	fmt.Fprintln(c.out, msg)
}

// RenderBoard prints the board followed by a blank line.
func (c *Console) RenderBoard(s game.Snapshot) {
	fmt.Fprintln(c.out, s.String())
}

func (c *Console) Announce(msg string) {
	c.Println(msg)
}
