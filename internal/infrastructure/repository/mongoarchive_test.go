package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogsummarizer/internal/domain/summary"
	"blogsummarizer/internal/shared/id"
	"blogsummarizer/internal/shared/logger"
)

// setupTestMongo needs a reachable server in BLOGSUM_TEST_MONGO_URI.
func setupTestMongo(t *testing.T) *mongo.Collection {
	uri := os.Getenv("BLOGSUM_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("BLOGSUM_TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	suffix, err := id.Generate(8)
	require.NoError(t, err)
	coll := client.Database("blogSummarizer_test").Collection("blogs_" + suffix)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = coll.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return coll
}

func TestMongoArchive_SaveAndGet(t *testing.T) {
	coll := setupTestMongo(t)
	archive := NewMongoArchive(coll, logger.NewNopLogger())
	ctx := context.Background()

	rec := createTestRecord(t, "https://example.com/post")
	require.NoError(t, archive.Save(ctx, rec))
	require.NoError(t, archive.EnsureIndexes(ctx))

	var raw bson.M
	require.NoError(t, coll.FindOne(ctx, bson.M{"record_id": rec.ID()}).Decode(&raw))
	assert.Equal(t, "https://example.com/post", raw["url"])
	assert.Equal(t, rec.OriginalText(), raw["full_text"])

	got, err := archive.GetByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, rec.SummaryEn(), got.SummaryEn())

	assert.Error(t, archive.Save(ctx, rec), "unique record_id index rejects duplicates")

	_, err = archive.GetByID(ctx, "sum_absentabsent")
	assert.ErrorIs(t, err, summary.ErrRecordNotFound)
}

func TestMongoArchive_FirstSaveCreatesIndexes(t *testing.T) {
	coll := setupTestMongo(t)
	archive := NewMongoArchive(coll, logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, archive.Save(ctx, createTestRecord(t, "")))
	assert.True(t, archive.indexed.Load())

	cursor, err := coll.Indexes().List(ctx)
	require.NoError(t, err)
	var specs []bson.M
	require.NoError(t, cursor.All(ctx, &specs))

	var names []string
	for _, spec := range specs {
		names = append(names, spec["name"].(string))
	}
	assert.Contains(t, names, "idx_blogs_record_id")
	assert.Contains(t, names, "idx_blogs_created_at")
}

func TestMongoArchive_IndexFailureIsRetried(t *testing.T) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	archive := NewMongoArchive(client.Database("blogSummarizer").Collection("blogs"), logger.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	assert.Error(t, archive.Save(ctx, createTestRecord(t, "")))
	assert.False(t, archive.indexed.Load())
}
