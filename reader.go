package termline

import (
	"fmt"
	"io"
)

// decode classifies raw terminal bytes into keys and returns the number of
// bytes consumed. A trailing incomplete escape sequence is left unconsumed
// so the caller can wait for the rest of it.
func decode(buf []byte) ([]Key, int) {
	var keys []Key
	i := 0
	for i < len(buf) {
		b := buf[i]
		if b == 0x1b {
			if i+1 >= len(buf) {
				// Esc with nothing queued behind it is the key itself.
				keys = append(keys, Key{Kind: KeyUndefined})
				i++
				continue
			}
			k, n := decodeEscape(buf[i:])
			if n == 0 {
				break
			}
			keys = append(keys, k)
			i += n
			continue
		}
		keys = append(keys, classifyByte(b))
		i++
	}
	return keys, i
}

func classifyByte(b byte) Key {
	switch {
	case b == '\r' || b == '\n':
		return Key{Kind: KeyEnter}
	case b == '\t':
		return Key{Kind: KeyTab}
	case b == 0x7f || b == 0x08:
		return Key{Kind: KeyBackspace}
	case b >= 0x20 && b < 0x7f:
		return Key{Kind: KeyChar, Ch: b}
	default:
		return Key{Kind: KeyUndefined}
	}
}

// decodeEscape handles one escape sequence starting at buf[0] == ESC,
// with len(buf) >= 2. It returns the consumed length, or zero when the
// sequence is still partial.
func decodeEscape(buf []byte) (Key, int) {
	if buf[1] != '[' {
		// Two-byte sequences (alt-modified keys and the like) are ignored.
		return Key{Kind: KeyUndefined}, 2
	}
	for i := 2; i < len(buf) && i < 8; i++ {
		b := buf[i]
		if b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b == '~' {
			return classifyEscape(string(buf[1 : i+1])), i + 1
		}
	}
	if len(buf) >= 8 {
		return Key{Kind: KeyUndefined}, 8
	}
	return Key{}, 0
}

func classifyEscape(seq string) Key {
	switch seq {
	case "[A":
		return Key{Kind: KeyUp}
	case "[B":
		return Key{Kind: KeyDown}
	case "[C":
		return Key{Kind: KeyRight}
	case "[D":
		return Key{Kind: KeyLeft}
	case "[3~":
		return Key{Kind: KeyDelete}
	case "[H", "[1~":
		return Key{Kind: KeyHome}
	case "[F", "[4~":
		return Key{Kind: KeyEnd}
	default:
		return Key{Kind: KeyUndefined}
	}
}

// ReaderSource is a KeySource decoding raw terminal bytes from an
// io.Reader. It is the portable source, and the one tests script against.
type ReaderSource struct {
	r       io.Reader
	pending []byte
}

// NewReaderSource returns a KeySource reading raw bytes from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// ReadKeys blocks until at least one whole key has been read.
func (s *ReaderSource) ReadKeys() ([]Key, error) {
	buf := make([]byte, 64)
	for {
		if len(s.pending) > 0 {
			keys, n := decode(s.pending)
			s.pending = s.pending[n:]
			if len(keys) > 0 {
				return keys, nil
			}
		}
		n, err := s.r.Read(buf)
		if n > 0 {
			s.pending = append(s.pending, buf[:n]...)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading key input: %w", err)
		}
	}
}
