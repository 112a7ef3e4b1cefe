package termline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryRecord(t *testing.T) {
	h := NewHistory(0)
	h.Record("a")
	h.Record("b")
	h.Record("b")
	h.Record("")
	assert.Equal(t, []string{"a", "b"}, h.Entries())

	// Only consecutive repeats are suppressed.
	h.Record("a")
	assert.Equal(t, []string{"a", "b", "a"}, h.Entries())
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(2)
	h.Record("a")
	h.Record("b")
	h.Record("c")
	assert.Equal(t, []string{"b", "c"}, h.Entries())
	assert.Equal(t, 2, h.Len())
}

func TestHistoryBrowse(t *testing.T) {
	h := NewHistory(0)
	h.Record("a")
	h.Record("b")
	h.ResetBrowse()
	h.BeginBrowse("")

	line, ok := h.Previous()
	assert.True(t, ok)
	assert.Equal(t, "b", line)

	line, ok = h.Previous()
	assert.True(t, ok)
	assert.Equal(t, "a", line)

	_, ok = h.Previous()
	assert.False(t, ok, "top of the log")

	line, ok = h.Next()
	assert.True(t, ok)
	assert.Equal(t, "b", line)

	line, ok = h.Next()
	assert.True(t, ok)
	assert.Equal(t, "", line, "leaving the log restores the draft")

	_, ok = h.Next()
	assert.False(t, ok, "already at the bottom")
}

func TestHistoryDraftRestored(t *testing.T) {
	h := NewHistory(0)
	h.Record("older")
	h.ResetBrowse()

	h.BeginBrowse("half typed")
	line, ok := h.Previous()
	assert.True(t, ok)
	assert.Equal(t, "older", line)

	// A second BeginBrowse while browsing must not clobber the draft.
	h.BeginBrowse("older")

	line, ok = h.Next()
	assert.True(t, ok)
	assert.Equal(t, "half typed", line)
}

func TestHistoryResetBrowse(t *testing.T) {
	h := NewHistory(0)
	h.Record("a")
	h.ResetBrowse()
	h.BeginBrowse("draft")
	_, ok := h.Previous()
	assert.True(t, ok)

	// A new input line rests the cursor below the newest entry and drops
	// the old draft.
	h.ResetBrowse()
	_, ok = h.Next()
	assert.False(t, ok)
	h.BeginBrowse("")
	line, ok := h.Previous()
	assert.True(t, ok)
	assert.Equal(t, "a", line)
	line, ok = h.Next()
	assert.True(t, ok)
	assert.Equal(t, "", line)
}

func TestHistoryEntriesIsACopy(t *testing.T) {
	h := NewHistory(0)
	h.Record("a")
	got := h.Entries()
	got[0] = "mutated"
	assert.Equal(t, []string{"a"}, h.Entries())
}
