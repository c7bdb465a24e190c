package auth

import (
	"sync"
	"time"
)

const resetTokenTTL = 15 * time.Minute

type resetEntry struct {
	userID    int
	expiresAt time.Time
}

// TokenStore holds issued password reset tokens until they are consumed or
// expire. It lives only in process memory: tokens do not survive a restart
// and are not shared across instances.
type TokenStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	tokens map[string]resetEntry
}

func NewTokenStore(ttl time.Duration) *TokenStore {
	return &TokenStore{
		ttl:    ttl,
		now:    time.Now,
		tokens: make(map[string]resetEntry),
	}
}

// Issue stores a fresh token for the user and returns it.
func (s *TokenStore) Issue(userID int) string {
	token := GenerateResetToken()
	s.mu.Lock()
	s.tokens[token] = resetEntry{userID: userID, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return token
}

// Consume removes the token and returns the mapped user id. The lookup and
// removal happen under one lock, so concurrent resets on the same token have
// exactly one winner. Expired tokens are treated as absent.
func (s *TokenStore) Consume(token string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[token]
	if !ok {
		return 0, false
	}
	delete(s.tokens, token)
	if s.now().After(entry.expiresAt) {
		return 0, false
	}
	return entry.userID, true
}

// PurgeExpired drops every expired token and reports how many were removed.
func (s *TokenStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for token, entry := range s.tokens {
		if now.After(entry.expiresAt) {
			delete(s.tokens, token)
			purged++
		}
	}
	return purged
}

// Len returns the number of tokens currently held, expired or not.
func (s *TokenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

var resetTokens = NewTokenStore(resetTokenTTL)

// PurgeExpiredResetTokens is the sweep hook for the background scheduler.
func PurgeExpiredResetTokens() int {
	return resetTokens.PurgeExpired()
}
