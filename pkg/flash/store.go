// Package flash keeps one-shot user messages between a POST and the page
// rendered after its redirect.
package flash

import (
	"sync"
	"time"
)

// Message is a single notice shown on the next rendered page.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type Store interface {
	Add(token string, msg Message, ttl time.Duration)

	// Consume returns the pending messages for token and removes them
	// (single-use). Expired entries yield nil.
	Consume(token string) []Message
}

type entry struct {
	messages  []Message
	expiresAt time.Time
}

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *MemoryStore) Add(token string, msg Message, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.data[token]
	if s.now().After(e.expiresAt) {
		e.messages = nil
	}
	e.messages = append(e.messages, msg)
	e.expiresAt = s.now().Add(ttl)
	s.data[token] = e
}

func (s *MemoryStore) Consume(token string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return nil
	}
	delete(s.data, token)
	if s.now().After(e.expiresAt) {
		return nil
	}
	return e.messages
}

// Sweep drops expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for token, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, token)
			removed++
		}
	}
	return removed
}
