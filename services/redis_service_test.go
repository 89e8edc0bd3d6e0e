package services

import (
	"context"
	"testing"
	"time"

	"stayhub/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisRoundTrip(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	hotels := []models.Hotel{
		{ID: 1, Name: "Grand Central", City: "New York City"},
		{ID: 2, Name: "Harbor View", City: "San Francisco"},
	}

	require.NoError(t, SetToRedis(ctx, rdb, HotelsCacheKey, hotels, time.Minute))

	var cached []models.Hotel
	require.NoError(t, GetFromRedis(ctx, rdb, HotelsCacheKey, &cached))
	require.Len(t, cached, 2)
	assert.Equal(t, "Grand Central", cached[0].Name)

	require.NoError(t, DeleteFromRedis(ctx, rdb, HotelsCacheKey))

	var afterDelete []models.Hotel
	require.NoError(t, GetFromRedis(ctx, rdb, HotelsCacheKey, &afterDelete))
	assert.Empty(t, afterDelete)
}

func TestRedisMissLeavesTargetUntouched(t *testing.T) {
	rdb := newTestRedis(t)

	target := []models.Hotel{{ID: 9}}
	require.NoError(t, GetFromRedis(context.Background(), rdb, "missing-key", &target))
	assert.Equal(t, uint(9), target[0].ID)
}
