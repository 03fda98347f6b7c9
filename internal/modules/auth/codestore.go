package auth

import (
	"sync"
	"time"
)

// CodeStore holds short-lived verification artifacts (two-factor codes,
// password-reset codes) with a TTL and a resend cooldown. It is an owned,
// explicit store rather than a package-level map: the clock is injectable
// and the type sits behind an interface, so a multi-instance deployment
// can swap in an external cache without touching callers.
type CodeStore struct {
	mu       sync.Mutex
	entries  map[string]codeEntry
	ttl      time.Duration
	cooldown time.Duration
	now      func() time.Time
}

type codeEntry struct {
	value     string
	issuedAt  time.Time
	expiresAt time.Time
}

func NewCodeStore(ttl, cooldown time.Duration) *CodeStore {
	return &CodeStore{
		entries:  make(map[string]codeEntry),
		ttl:      ttl,
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Issue stores value under key. It refuses re-issuing within the cooldown
// window so a user hammering "send code" does not mint fresh codes.
func (s *CodeStore) Issue(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, ok := s.entries[key]; ok && now.Sub(e.issuedAt) < s.cooldown {
		return ErrTooManyRequests
	}

	s.entries[key] = codeEntry{
		value:     value,
		issuedAt:  now,
		expiresAt: now.Add(s.ttl),
	}
	return nil
}

// Peek returns the stored value without consuming it. Expired entries are
// reported as ErrExpiredActionCode and removed.
func (s *CodeStore) Peek(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", ErrInvalidActionCode
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return "", ErrExpiredActionCode
	}
	return e.value, nil
}

// Consume verifies value against the entry under key and deletes it on
// success. A code is single-use.
func (s *CodeStore) Consume(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return ErrInvalidActionCode
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return ErrExpiredActionCode
	}
	if e.value != value {
		return ErrInvalidActionCode
	}
	delete(s.entries, key)
	return nil
}

// Drop removes an entry regardless of state.
func (s *CodeStore) Drop(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}
