package termline

import (
	"fmt"
	"io"
)

// tabState is the double-tab sub-machine: the first unresolved tab arms
// it, a second consecutive tab lists every candidate, and any other key
// disarms it.
type tabState int

const (
	tabIdle tabState = iota
	tabArmed
)

// session holds the state for reading one input line. It is created fresh
// per ReadLine and discarded when the line completes.
type session struct {
	buf    *Buffer
	hist   *History
	vocab  *Trie
	keys   KeySource
	out    io.Writer
	prompt string
	tab    tabState
	trace  *tracer
}

// run processes key events until enter and returns the finished line.
func (s *session) run() (string, error) {
	s.buf.Reset()
	s.hist.ResetBrowse()
	s.tab = tabIdle
	for {
		keys, err := s.keys.ReadKeys()
		if err != nil {
			return "", err
		}
		for _, k := range keys {
			s.trace.logKey(k)
			if k.Kind != KeyTab {
				s.tab = tabIdle
			}
			switch k.Kind {
			case KeyEnter:
				fmt.Fprint(s.out, "\r\n")
				return s.buf.String(), nil
			case KeyChar:
				s.buf.Insert(k.Ch)
			case KeyBackspace:
				s.buf.Backspace()
			case KeyDelete:
				s.buf.Delete()
			case KeyLeft:
				s.buf.MoveLeft()
			case KeyRight:
				s.buf.MoveRight()
			case KeyHome:
				s.buf.MoveStart()
			case KeyEnd:
				s.buf.MoveEnd()
			case KeyUp:
				s.hist.BeginBrowse(s.buf.String())
				if line, ok := s.hist.Previous(); ok {
					s.buf.Replace(line)
				} else {
					s.alert()
				}
			case KeyDown:
				s.hist.BeginBrowse(s.buf.String())
				if line, ok := s.hist.Next(); ok {
					s.buf.Replace(line)
				} else {
					s.alert()
				}
			case KeyTab:
				s.completeLine()
			}
		}
	}
}

func (s *session) alert() {
	fmt.Fprint(s.out, "\a")
}

// completeLine runs the double-tab protocol. A first tab extends the line
// to the longest unambiguous completion; when nothing can be added it
// alerts and arms the sub-machine, and an immediately following tab lists
// every candidate before redrawing the prompt and line.
func (s *session) completeLine() {
	line := s.buf.String()
	if s.tab == tabArmed {
		s.tab = tabIdle
		matches := s.vocab.Completions(line)
		if len(matches) == 0 {
			fmt.Fprint(s.out, "\r\nno matches\r\n")
		} else {
			fmt.Fprint(s.out, "\r\n")
			for _, m := range matches {
				fmt.Fprintf(s.out, "%s\r\n", m)
			}
		}
		fmt.Fprint(s.out, s.prompt)
		fmt.Fprint(s.out, line)
		// The redraw leaves the terminal cursor at the end of the line.
		s.buf.cursor = s.buf.Len()
		return
	}
	n, ext := s.vocab.Query(line)
	if n >= 1 && ext != line {
		s.buf.Replace(ext)
		return
	}
	s.alert()
	s.tab = tabArmed
}
