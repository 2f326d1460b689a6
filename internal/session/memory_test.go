package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	token, err := s.Issue(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, uid)

	live, err := s.Revoke(ctx, token)
	require.NoError(t, err)
	assert.True(t, live)

	_, err = s.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	// Revoking again reports no live session but is not an error.
	live, err = s.Revoke(ctx, token)
	require.NoError(t, err)
	assert.False(t, live)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Resolve(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIssueProducesDistinctTokens(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	// Two sessions for the same uid coexist and resolve independently.
	t1, err := s.Issue(ctx, 7)
	require.NoError(t, err)
	t2, err := s.Issue(ctx, 7)
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)

	uid, err := s.Resolve(ctx, t1)
	require.NoError(t, err)
	assert.EqualValues(t, 7, uid)

	_, err = s.Revoke(ctx, t1)
	require.NoError(t, err)
	uid, err = s.Resolve(ctx, t2)
	require.NoError(t, err)
	assert.EqualValues(t, 7, uid)
}

func TestNewTokenEntropy(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token, err := NewToken()
		require.NoError(t, err)
		// 32 random bytes encode to 43 characters of unpadded base64url.
		assert.Len(t, token, 43)
		require.False(t, seen[token], "token collision")
		seen[token] = true
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			token, err := s.Issue(ctx, uid)
			if err != nil {
				t.Error(err)
				return
			}
			got, err := s.Resolve(ctx, token)
			if err != nil || got != uid {
				t.Errorf("resolve uid %d: got %d, err %v", uid, got, err)
				return
			}
			if _, err := s.Revoke(ctx, token); err != nil {
				t.Error(err)
			}
		}(int64(i))
	}
	wg.Wait()
}
