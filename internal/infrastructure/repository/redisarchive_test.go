package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsummarizer/internal/domain/summary"
	"blogsummarizer/internal/shared/logger"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestRedisArchive_SaveAndGet(t *testing.T) {
	mr, client := setupTestRedis(t)
	archive := NewRedisArchive(client, "", 0, logger.NewNopLogger())
	ctx := context.Background()

	rec := createTestRecord(t, "https://example.com/post")
	require.NoError(t, archive.Save(ctx, rec))

	raw, err := mr.Get(DefaultArchivePrefix + rec.ID())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "https://example.com/post", doc["url"])
	assert.Equal(t, "Hello. World. Again.", doc["full_text"])
	assert.Contains(t, doc, "created_at")
	assert.Equal(t, time.Duration(0), mr.TTL(DefaultArchivePrefix+rec.ID()))

	got, err := archive.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, rec.ID(), got.ID())
	assert.Equal(t, rec.SummaryTranslated(), got.SummaryTranslated())
	assert.True(t, rec.CreatedAt().Equal(got.CreatedAt()))
}

func TestRedisArchive_TTLAndPrefix(t *testing.T) {
	mr, client := setupTestRedis(t)
	archive := NewRedisArchive(client, "test:", time.Hour, logger.NewNopLogger())

	rec := createTestRecord(t, "")
	require.NoError(t, archive.Save(context.Background(), rec))

	assert.True(t, mr.Exists("test:"+rec.ID()))
	assert.Equal(t, time.Hour, mr.TTL("test:"+rec.ID()))
}

func TestRedisArchive_SaveWritesOnlyRecordKey(t *testing.T) {
	mr, client := setupTestRedis(t)
	archive := NewRedisArchive(client, "test:", time.Hour, logger.NewNopLogger())

	rec := createTestRecord(t, "")
	require.NoError(t, archive.Save(context.Background(), rec))

	assert.Equal(t, []string{"test:" + rec.ID()}, mr.Keys())
}

func TestRedisArchive_NotFound(t *testing.T) {
	_, client := setupTestRedis(t)
	archive := NewRedisArchive(client, "", 0, logger.NewNopLogger())

	_, err := archive.GetByID(context.Background(), "sum_absentabsent")
	assert.ErrorIs(t, err, summary.ErrRecordNotFound)
}

func TestRedisArchive_ServerDown(t *testing.T) {
	mr, client := setupTestRedis(t)
	archive := NewRedisArchive(client, "", 0, logger.NewNopLogger())
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.Error(t, archive.Save(ctx, createTestRecord(t, "")))
}
