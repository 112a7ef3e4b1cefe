//go:build unix

package termline

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// stdinSource reads raw bytes from the terminal. The first read blocks for
// a single byte; FIONREAD then reports how many bytes the driver still has
// queued, so a key that produces several bytes (arrows, delete) is drained
// into the same batch instead of decoded a fragment at a time.
type stdinSource struct {
	f       *os.File
	pending []byte
}

func newStdinSource() KeySource {
	return &stdinSource{f: os.Stdin}
}

func (s *stdinSource) ReadKeys() ([]Key, error) {
	buf := make([]byte, 1)
	for {
		if len(s.pending) > 0 {
			keys, n := decode(s.pending)
			s.pending = s.pending[n:]
			if len(keys) > 0 {
				return keys, nil
			}
		}
		n, err := s.f.Read(buf)
		if err != nil {
			return nil, fmt.Errorf("reading terminal input: %w", err)
		}
		if n == 0 {
			continue
		}
		s.pending = append(s.pending, buf[0])
		queued, err := unix.IoctlGetInt(int(s.f.Fd()), unix.TIOCINQ)
		if err != nil || queued == 0 {
			continue
		}
		rest := make([]byte, queued)
		m, err := s.f.Read(rest)
		if err != nil {
			return nil, fmt.Errorf("reading terminal input: %w", err)
		}
		s.pending = append(s.pending, rest[:m]...)
	}
}
