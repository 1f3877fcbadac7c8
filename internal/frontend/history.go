package frontend

import (
	"fmt"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

const historyCapacity = 64

// HistoryEntry is a single line of the console history.
type HistoryEntry struct {
	Tick    int
	Source  string // "console", "admin" or "game"
	Message string
}

// History is a ring buffer of console lines. It also listens to the run and
// records the milestones worth scrolling back to.
type History struct {
	entries []HistoryEntry
	head    int
	count   int
}

// NewHistory creates a history with a fixed capacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{entries: make([]HistoryEntry, capacity)}
}

// Add appends a line, overwriting the oldest once full.
func (h *History) Add(tick int, source, msg string) {
	h.entries[h.head] = HistoryEntry{Tick: tick, Source: source, Message: msg}
	h.head = (h.head + 1) % len(h.entries)
	if h.count < len(h.entries) {
		h.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (h *History) Recent() []HistoryEntry {
	n := len(h.entries)
	out := make([]HistoryEntry, h.count)
	for i := 0; i < h.count; i++ {
		out[i] = h.entries[(h.head-h.count+i+n)%n]
	}
	return out
}

func (h *History) Len() int { return h.count }

// OnEvent records run milestones.
func (h *History) OnEvent(ev game.Event) {
	var msg string
	switch ev.Type {
	case game.BossSpawned:
		msg = fmt.Sprintf("boss incoming (level %d)", ev.Value)
	case game.BossKilled:
		msg = fmt.Sprintf("boss down, score %d", ev.Value)
	case game.LevelStarted:
		msg = fmt.Sprintf("level %d", ev.Value)
	case game.PurchaseMade:
		msg = fmt.Sprintf("bought %s for %d", ev.Detail, ev.Value)
	case game.RunEnded:
		msg = fmt.Sprintf("run over, score %d", ev.Value)
	default:
		return
	}
	h.Add(ev.Tick, "game", msg)
}
