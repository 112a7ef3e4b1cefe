package termline

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     []Key
		consumed int
	}{
		{"printable", "hi", []Key{{KeyChar, 'h'}, {KeyChar, 'i'}}, 2},
		{"enter cr", "\r", []Key{{Kind: KeyEnter}}, 1},
		{"enter lf", "\n", []Key{{Kind: KeyEnter}}, 1},
		{"tab", "\t", []Key{{Kind: KeyTab}}, 1},
		{"backspace del", "\x7f", []Key{{Kind: KeyBackspace}}, 1},
		{"backspace bs", "\x08", []Key{{Kind: KeyBackspace}}, 1},
		{"up", "\x1b[A", []Key{{Kind: KeyUp}}, 3},
		{"down", "\x1b[B", []Key{{Kind: KeyDown}}, 3},
		{"right", "\x1b[C", []Key{{Kind: KeyRight}}, 3},
		{"left", "\x1b[D", []Key{{Kind: KeyLeft}}, 3},
		{"delete", "\x1b[3~", []Key{{Kind: KeyDelete}}, 4},
		{"home", "\x1b[H", []Key{{Kind: KeyHome}}, 3},
		{"home vt", "\x1b[1~", []Key{{Kind: KeyHome}}, 4},
		{"end", "\x1b[F", []Key{{Kind: KeyEnd}}, 3},
		{"end vt", "\x1b[4~", []Key{{Kind: KeyEnd}}, 4},
		{"unknown csi", "\x1b[5~", []Key{{Kind: KeyUndefined}}, 4},
		{"alt key", "\x1bx", []Key{{Kind: KeyUndefined}}, 2},
		{"bare escape", "\x1b", []Key{{Kind: KeyUndefined}}, 1},
		{"control byte", "\x01", []Key{{Kind: KeyUndefined}}, 1},
		{"incomplete csi", "\x1b[", nil, 0},
		{"incomplete vt seq", "\x1b[3", nil, 0},
		{"mixed", "a\x1b[Ab\r", []Key{{KeyChar, 'a'}, {Kind: KeyUp}, {KeyChar, 'b'}, {Kind: KeyEnter}}, 6},
		{"stops at partial tail", "ab\x1b[", []Key{{KeyChar, 'a'}, {KeyChar, 'b'}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, n := decode([]byte(tt.input))
			assert.Equal(t, tt.want, keys)
			assert.Equal(t, tt.consumed, n)
		})
	}
}

// chunkReader returns one scripted chunk per Read call.
type chunkReader struct {
	chunks [][]byte
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	c.chunks = c.chunks[1:]
	return n, nil
}

func TestReaderSourceReassemblesSplitSequences(t *testing.T) {
	src := NewReaderSource(&chunkReader{chunks: [][]byte{
		[]byte("\x1b["),
		[]byte("A"),
		[]byte("q\r"),
	}})

	keys, err := src.ReadKeys()
	require.NoError(t, err)
	assert.Equal(t, []Key{{Kind: KeyUp}}, keys)

	keys, err = src.ReadKeys()
	require.NoError(t, err)
	assert.Equal(t, []Key{{KeyChar, 'q'}, {Kind: KeyEnter}}, keys)
}

func TestReaderSourceBatchOrder(t *testing.T) {
	src := NewReaderSource(bytes.NewReader([]byte("ab\x1b[D!")))
	keys, err := src.ReadKeys()
	require.NoError(t, err)
	assert.Equal(t, []Key{{KeyChar, 'a'}, {KeyChar, 'b'}, {Kind: KeyLeft}, {KeyChar, '!'}}, keys)
}

func TestReaderSourcePropagatesReadFailure(t *testing.T) {
	src := NewReaderSource(&chunkReader{})
	_, err := src.ReadKeys()
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF))
}
