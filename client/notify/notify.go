// Package notify shows store failures to the person at the terminal.
package notify

import (
	"bufio"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Console prints failures in red, then calls Acknowledge, when set, so the
// message cannot scroll away unseen.
type Console struct {
	Out         io.Writer
	Acknowledge func()

	mu sync.Mutex
}

// NewConsole waits for a line on in after each message. in may be nil.
func NewConsole(out io.Writer, in io.Reader) *Console {
	c := &Console{Out: out}
	if in != nil {
		reader := bufio.NewReader(in)
		c.Acknowledge = func() {
			_, _ = color.New(color.Faint).Fprint(out, "press enter to continue")
			_, _ = reader.ReadString('\n')
		}
	}
	return c
}

func (c *Console) Notify(message string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	red := color.New(color.FgRed, color.Bold)
	if err != nil {
		_, _ = red.Fprintf(c.Out, "%s: %s\n", message, err)
	} else {
		_, _ = red.Fprintln(c.Out, message)
	}

	if c.Acknowledge != nil {
		c.Acknowledge()
	}
}
