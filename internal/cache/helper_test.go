package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withMiniredis points the package client at an in-process Redis for the
// duration of the test. The cache tests cannot run in parallel because the
// client is package state.
func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })

	return mr
}

func TestAside_FetchesThenServesFromCache(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	fetchCalls := 0
	fetch := func(dest *string) func() error {
		return func() error {
			fetchCalls++
			*dest = "from-db"
			return nil
		}
	}

	var got string
	require.NoError(t, Aside(ctx, "k", &got, time.Minute, fetch(&got)))
	assert.Equal(t, "from-db", got)
	assert.Equal(t, 1, fetchCalls)

	var again string
	require.NoError(t, Aside(ctx, "k", &again, time.Minute, fetch(&again)))
	assert.Equal(t, "from-db", again)
	assert.Equal(t, 1, fetchCalls, "second read must be served from cache")
}

func TestAside_FetchErrorPropagates(t *testing.T) {
	withMiniredis(t)

	boom := errors.New("boom")
	var dest string
	err := Aside(context.Background(), "k2", &dest, time.Minute, func() error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestAside_NoClientDegradesToFetch(t *testing.T) {
	SetClient(nil)

	fetchCalls := 0
	var dest string
	for i := 0; i < 2; i++ {
		require.NoError(t, Aside(context.Background(), "k3", &dest, time.Minute, func() error {
			fetchCalls++
			dest = "direct"
			return nil
		}))
	}
	assert.Equal(t, 2, fetchCalls, "without a client every read goes to the fetcher")
}

func TestInvalidatePost_DropsPostAndFeed(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostKey(7), "post", PostTTL))
	require.NoError(t, SetJSON(ctx, FeedKey, "feed", FeedTTL))
	require.NoError(t, SetJSON(ctx, UserKey(1), "user", UserTTL))

	InvalidatePost(ctx, 7)

	assert.False(t, mr.Exists(PostKey(7)))
	assert.False(t, mr.Exists(FeedKey))
	assert.True(t, mr.Exists(UserKey(1)), "user entries are untouched")
}

func TestGetJSON_MissingKey(t *testing.T) {
	withMiniredis(t)

	var dest string
	found, err := GetJSON(context.Background(), "absent", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}
