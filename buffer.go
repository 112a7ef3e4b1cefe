package termline

import (
	"bytes"
	"io"
)

// Buffer is the editable input line. Every mutation also writes the
// terminal bytes that keep the display in step with the logical line, on
// the assumption that the terminal cursor sits at the buffer cursor's
// column before the call. Operations that cannot proceed ring the bell
// and leave the line untouched.
type Buffer struct {
	line   []byte
	cursor int
	out    io.Writer
}

// NewBuffer returns an empty buffer writing its redraw bytes to out.
func NewBuffer(out io.Writer) *Buffer {
	return &Buffer{out: out}
}

// String returns the current line.
func (b *Buffer) String() string {
	return string(b.line)
}

// Cursor returns the cursor offset into the line.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the length of the line.
func (b *Buffer) Len() int {
	return len(b.line)
}

// Reset clears the line for a fresh input without touching the display.
func (b *Buffer) Reset() {
	b.line = b.line[:0]
	b.cursor = 0
}

func (b *Buffer) emit(p []byte) {
	if b.out != nil {
		b.out.Write(p)
	}
}

func (b *Buffer) bell() {
	b.emit([]byte{'\a'})
}

func backspaces(n int) []byte {
	return bytes.Repeat([]byte{'\b'}, n)
}

// Insert places ch at the cursor and advances it. Mid-line the shifted
// tail is re-echoed and the terminal cursor walked back so the visual
// column lands just after the new character.
func (b *Buffer) Insert(ch byte) {
	if b.cursor == len(b.line) {
		b.line = append(b.line, ch)
		b.cursor++
		b.emit([]byte{ch})
		return
	}
	b.line = append(b.line, 0)
	copy(b.line[b.cursor+1:], b.line[b.cursor:])
	b.line[b.cursor] = ch
	b.cursor++
	var out []byte
	out = append(out, b.line[b.cursor-1:]...)
	out = append(out, backspaces(len(b.line)-b.cursor)...)
	b.emit(out)
}

// Backspace removes the character before the cursor. At the start of the
// line it only rings the bell.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		b.bell()
		return
	}
	if b.cursor == len(b.line) {
		b.line = b.line[:len(b.line)-1]
		b.cursor--
		b.emit([]byte("\b \b"))
		return
	}
	copy(b.line[b.cursor-1:], b.line[b.cursor:])
	b.line = b.line[:len(b.line)-1]
	b.cursor--
	// Step onto the removed cell, rewrite the tail plus a blank over the
	// stale last cell, then walk back to the cursor column.
	var out []byte
	out = append(out, '\b')
	out = append(out, b.line[b.cursor:]...)
	out = append(out, ' ')
	out = append(out, backspaces(len(b.line)-b.cursor+1)...)
	b.emit(out)
}

// Delete removes the character under the cursor without moving it. At the
// end of the line it only rings the bell.
func (b *Buffer) Delete() {
	if b.cursor == len(b.line) {
		b.bell()
		return
	}
	copy(b.line[b.cursor:], b.line[b.cursor+1:])
	b.line = b.line[:len(b.line)-1]
	var out []byte
	out = append(out, b.line[b.cursor:]...)
	out = append(out, ' ')
	out = append(out, backspaces(len(b.line)-b.cursor+1)...)
	b.emit(out)
}

// MoveLeft steps the cursor back one character.
func (b *Buffer) MoveLeft() {
	if b.cursor == 0 {
		b.bell()
		return
	}
	b.cursor--
	b.emit([]byte{'\b'})
}

// MoveRight re-echoes the character the cursor passes over, advancing the
// terminal cursor without changing the line.
func (b *Buffer) MoveRight() {
	if b.cursor == len(b.line) {
		b.bell()
		return
	}
	b.emit([]byte{b.line[b.cursor]})
	b.cursor++
}

// MoveStart returns the cursor to the first column.
func (b *Buffer) MoveStart() {
	b.emit(backspaces(b.cursor))
	b.cursor = 0
}

// MoveEnd advances the cursor past the last character.
func (b *Buffer) MoveEnd() {
	b.emit(b.line[b.cursor:])
	b.cursor = len(b.line)
}

// Replace swaps the whole displayed line for newLine and parks the cursor
// at its end. A shorter replacement is padded with blanks to erase the
// leftover tail of the old line.
func (b *Buffer) Replace(newLine string) {
	var out []byte
	out = append(out, backspaces(b.cursor)...)
	out = append(out, newLine...)
	if diff := len(b.line) - len(newLine); diff > 0 {
		out = append(out, bytes.Repeat([]byte{' '}, diff)...)
		out = append(out, backspaces(diff)...)
	}
	b.emit(out)
	b.line = append(b.line[:0], newLine...)
	b.cursor = len(b.line)
}
