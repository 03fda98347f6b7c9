package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCodeStore_Expiry(t *testing.T) {
	store := NewCodeStore(5*time.Minute, time.Nanosecond)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	assert.NoError(t, store.Issue("anna@example.de", "123456"))

	now = now.Add(4 * time.Minute)
	assert.NoError(t, store.Consume("anna@example.de", "123456"))

	assert.NoError(t, store.Issue("anna@example.de", "654321"))
	now = now.Add(6 * time.Minute)
	assert.ErrorIs(t, store.Consume("anna@example.de", "654321"), ErrExpiredActionCode)
}

func TestCodeStore_ResendCooldown(t *testing.T) {
	store := NewCodeStore(5*time.Minute, time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	assert.NoError(t, store.Issue("anna@example.de", "111111"))
	assert.ErrorIs(t, store.Issue("anna@example.de", "222222"), ErrTooManyRequests)

	now = now.Add(2 * time.Minute)
	assert.NoError(t, store.Issue("anna@example.de", "333333"))
}

func TestCodeStore_WrongValueKeepsEntry(t *testing.T) {
	store := NewCodeStore(5*time.Minute, time.Nanosecond)

	assert.NoError(t, store.Issue("k", "richtig"))
	assert.ErrorIs(t, store.Consume("k", "falsch"), ErrInvalidActionCode)
	assert.NoError(t, store.Consume("k", "richtig"))
}
