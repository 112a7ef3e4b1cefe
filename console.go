// Package termline is an interactive terminal line editor: it reads raw
// keystrokes, renders an editable line in place, keeps a command history
// browsable with the arrow keys, and offers prefix completion against a
// fixed vocabulary via a double-tab protocol.
package termline

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Console ties the line buffer, history and completion vocabulary to a
// terminal in raw mode. One line is produced per ReadLine call; the
// command loop around it belongs to the caller.
type Console struct {
	prompt   string
	oldState *term.State
	out      io.Writer
	keys     KeySource
	vocab    *Trie
	hist     *History
	buf      *Buffer
	trace    *tracer
}

// Option configures a Console.
type Option func(*Console)

// WithKeySource substitutes the key event source. The default reads the
// process's stdin, which is switched into raw mode; a custom source leaves
// the terminal state alone.
func WithKeySource(src KeySource) Option {
	return func(c *Console) { c.keys = src }
}

// WithOutput redirects terminal output; the default is stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Console) { c.out = w }
}

// WithTraceLog writes a rotating debug log of key events to path.
func WithTraceLog(path string) Option {
	return func(c *Console) { c.trace = newTracer(path) }
}

// WithHistoryLimit caps the history log at n entries (0 keeps everything).
func WithHistoryLimit(n int) Option {
	return func(c *Console) { c.hist = NewHistory(n) }
}

// New returns a console reading from the controlling terminal, which is
// put into raw mode. Close restores the saved terminal state.
func New(prompt string, opts ...Option) (*Console, error) {
	c := &Console{
		prompt: prompt,
		out:    os.Stdout,
		vocab:  NewTrie(),
		hist:   NewHistory(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.buf = NewBuffer(c.out)
	if c.keys == nil {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return nil, fmt.Errorf("entering raw mode: %w", err)
		}
		c.oldState = oldState
		c.keys = newStdinSource()
	}
	return c, nil
}

// Vocabulary exposes the completion trie for population before first use.
func (c *Console) Vocabulary() *Trie {
	return c.vocab
}

// AddCommand registers word for tab completion.
func (c *Console) AddCommand(word string) error {
	return c.vocab.Insert(word)
}

// History returns a copy of the recorded lines, oldest first.
func (c *Console) History() []string {
	return c.hist.Entries()
}

// SetPrompt changes the prompt shown by subsequent ReadLine calls.
func (c *Console) SetPrompt(prompt string) {
	c.prompt = prompt
}

// ReadLine shows the prompt, runs one editing session to completion and
// returns the finished line, recording it into history. A decode or IO
// failure aborts the call; the caller decides whether to retry or shut
// down.
func (c *Console) ReadLine() (string, error) {
	fmt.Fprint(c.out, c.prompt)
	s := &session{
		buf:    c.buf,
		hist:   c.hist,
		vocab:  c.vocab,
		keys:   c.keys,
		out:    c.out,
		prompt: c.prompt,
		trace:  c.trace,
	}
	line, err := s.run()
	if err != nil {
		return "", err
	}
	c.trace.logLine(line)
	c.hist.Record(line)
	return line, nil
}

// Close restores the terminal state saved by New.
func (c *Console) Close() error {
	if err := c.trace.close(); err != nil {
		return err
	}
	if c.oldState != nil {
		return term.Restore(int(os.Stdin.Fd()), c.oldState)
	}
	return nil
}
