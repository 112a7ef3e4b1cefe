package termline

// History holds completed input lines, newest last. Browsing walks the log
// with a cursor; the line under composition when browsing starts is kept
// as a draft and restored once the cursor passes the newest entry again.
type History struct {
	entries []string
	limit   int
	pos     int
	draft   string
}

// NewHistory returns an empty history keeping at most limit entries
// (0 keeps everything).
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Record appends line unless it is empty or repeats the newest entry.
func (h *History) Record(line string) {
	if line == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// BeginBrowse saves cur as the draft if browsing has not started yet.
func (h *History) BeginBrowse(cur string) {
	if h.pos == len(h.entries) {
		h.draft = cur
	}
}

// Previous steps to the next older entry. ok is false at the top of the
// log.
func (h *History) Previous() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Next steps back toward the newest entry, returning the saved draft once
// the cursor leaves the log. ok is false when not browsing.
func (h *History) Next() (string, bool) {
	if h.pos == len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.pos], true
}

// ResetBrowse rests the cursor below the newest entry for a fresh line.
func (h *History) ResetBrowse() {
	h.pos = len(h.entries)
	h.draft = ""
}

// Len reports the number of recorded lines.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
