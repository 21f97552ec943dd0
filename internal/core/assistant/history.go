package assistant

import "sync"

const (
	// AnonymousKey stores the history of unauthenticated callers.
	AnonymousKey = "anonymous"
	// DefaultHistoryLimit is the number of entries kept per caller.
	DefaultHistoryLimit = 20
)

// KeyFor maps a caller identity to its history key.
func KeyFor(callerID string) string {
	if callerID == "" {
		return AnonymousKey
	}
	return callerID
}

// History is the in-process conversation log, one bounded FIFO of
// "User: …" / "Assistant: …" entries per caller. The mutex only protects
// the map: a turn reads its entries before the model call and appends
// after it, so overlapping turns of one caller may interleave.
type History struct {
	mu      sync.Mutex
	limit   int
	entries map[string][]string
}

// NewHistory returns an empty history keeping at most limit entries per
// caller. A non-positive limit selects DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit, entries: make(map[string][]string)}
}

// Entries returns a copy of the caller's entries, oldest first.
func (h *History) Entries(key string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	e := h.entries[key]
	if len(e) == 0 {
		return nil
	}
	out := make([]string, len(e))
	copy(out, e)
	return out
}

// Append adds entries for key and drops the oldest ones beyond the limit.
func (h *History) Append(key string, entries ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e := append(h.entries[key], entries...)
	if over := len(e) - h.limit; over > 0 {
		e = append([]string(nil), e[over:]...)
	}
	h.entries[key] = e
}

// Clear forgets the history of key.
func (h *History) Clear(key string) {
	h.mu.Lock()
	delete(h.entries, key)
	h.mu.Unlock()
}

// Reset forgets every caller's history.
func (h *History) Reset() {
	h.mu.Lock()
	clear(h.entries)
	h.mu.Unlock()
}
