package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevocationStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocationStore()

	after, err := store.ValidAfter(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, after.IsZero())

	at := time.Unix(1700000000, 0)
	require.NoError(t, store.RevokeAll(ctx, "u1", at))

	after, err = store.ValidAfter(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, after.Equal(at))
}

func TestRedisRevocationStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisRevocationStore(client, SessionTTL)

	after, err := store.ValidAfter(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, after.IsZero(), "unknown user has no revocation")

	at := time.Unix(1700000000, 0)
	require.NoError(t, store.RevokeAll(ctx, "u1", at))

	after, err = store.ValidAfter(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, after.Equal(at))

	assert.Equal(t, SessionTTL, mr.TTL("revoked:u1"))

	mr.FastForward(SessionTTL + time.Second)

	after, err = store.ValidAfter(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, after.IsZero(), "revocation expires with the longest session")
}

func TestRedisRevocationStore_CorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, mr.Set("revoked:u1", "not-a-number"))

	_, err := NewRedisRevocationStore(client, time.Hour).ValidAfter(context.Background(), "u1")
	assert.Error(t, err)
}
