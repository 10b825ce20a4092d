package assistant

import (
	"sync"
	"time"
)

// Turn is one utterance in a conversation, from either side.
type Turn struct {
	Role string // "user" or "assistant"
	Text string
	At   time.Time
}

// ConversationStore keeps a bounded per-sender history in memory. When a
// sender's history exceeds the limit the oldest turns are dropped. Safe for
// concurrent use.
type ConversationStore struct {
	mu    sync.Mutex
	limit int
	turns map[string][]Turn
}

// NewConversationStore creates a store keeping at most limit turns per
// sender. A non-positive limit falls back to 50.
func NewConversationStore(limit int) *ConversationStore {
	if limit <= 0 {
		limit = 50
	}
	return &ConversationStore{
		limit: limit,
		turns: make(map[string][]Turn),
	}
}

// Append records one turn for the sender, evicting the oldest turn when the
// history is full.
func (s *ConversationStore) Append(sender string, turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.turns[sender], turn)
	if len(history) > s.limit {
		history = history[len(history)-s.limit:]
	}
	s.turns[sender] = history
}

// History returns a copy of the sender's turns, oldest first.
func (s *ConversationStore) History(sender string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Turn(nil), s.turns[sender]...)
}
