package service

import "sync"

// conversationLocks serializes turn processing per conversation. The merge
// step is not commutative under concurrent negation, so two turns of the same
// conversation must never merge in parallel; turns of different conversations
// proceed independently.
type conversationLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newConversationLocks() *conversationLocks {
	return &conversationLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire blocks until the conversation's lock is held and returns the
// release function. Entries are kept for the life of the process, matching
// the session lifecycle: conversations have no terminal state.
func (l *conversationLocks) acquire(conversationID string) func() {
	l.mu.Lock()
	m, ok := l.locks[conversationID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[conversationID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
