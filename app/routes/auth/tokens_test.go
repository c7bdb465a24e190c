package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStoreConsumeOnce(t *testing.T) {
	store := NewTokenStore(resetTokenTTL)

	token := store.Issue(42)
	require.NotEmpty(t, token)

	userID, ok := store.Consume(token)
	require.True(t, ok)
	assert.Equal(t, 42, userID)

	_, ok = store.Consume(token)
	assert.False(t, ok, "a token must be consumable at most once")
}

func TestTokenStoreUnknownToken(t *testing.T) {
	store := NewTokenStore(resetTokenTTL)

	_, ok := store.Consume("never-issued")
	assert.False(t, ok)
}

func TestTokenStoreExpiry(t *testing.T) {
	store := NewTokenStore(resetTokenTTL)
	base := time.Now()
	current := base
	store.now = func() time.Time { return current }

	token := store.Issue(7)

	// Just before the deadline the token is still valid.
	current = base.Add(resetTokenTTL - time.Second)
	userID, ok := store.Consume(token)
	require.True(t, ok)
	assert.Equal(t, 7, userID)

	// Just past the deadline it is gone.
	token = store.Issue(7)
	current = base.Add(2*resetTokenTTL + time.Second)
	_, ok = store.Consume(token)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len(), "an expired token is removed on lookup")
}

func TestTokenStorePurgeExpired(t *testing.T) {
	store := NewTokenStore(resetTokenTTL)
	base := time.Now()
	current := base
	store.now = func() time.Time { return current }

	expired := store.Issue(1)
	current = base.Add(resetTokenTTL - time.Minute)
	fresh := store.Issue(2)

	current = base.Add(resetTokenTTL + time.Second)
	assert.Equal(t, 1, store.PurgeExpired())
	assert.Equal(t, 1, store.Len())

	_, ok := store.Consume(expired)
	assert.False(t, ok)
	userID, ok := store.Consume(fresh)
	require.True(t, ok)
	assert.Equal(t, 2, userID)
}

func TestTokenStoreConcurrentConsume(t *testing.T) {
	store := NewTokenStore(resetTokenTTL)
	token := store.Issue(9)

	const attempts = 50
	var wg sync.WaitGroup
	wins := make(chan int, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := store.Consume(token); ok {
				wins <- 1
			}
		}()
	}
	wg.Wait()
	close(wins)

	total := 0
	for range wins {
		total++
	}
	assert.Equal(t, 1, total, "exactly one concurrent reset may win")
}
