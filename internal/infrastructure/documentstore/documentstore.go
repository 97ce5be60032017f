// Package documentstore opens the secondary archive selected by configuration.
package documentstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogsummarizer/internal/domain/summary"
	"blogsummarizer/internal/infrastructure/repository"
	"blogsummarizer/internal/shared/config"
	"blogsummarizer/internal/shared/logger"
)

const (
	DriverMongo = "mongo"
	DriverRedis = "redis"
)

// Archive is an opened secondary store. Close releases its client.
type Archive struct {
	Repository summary.ArchiveRepository
	Driver     string
	close      func(ctx context.Context) error
}

// Close disconnects the underlying client.
func (a *Archive) Close(ctx context.Context) error {
	if a == nil || a.close == nil {
		return nil
	}
	return a.close(ctx)
}

// Open builds the archive client once at startup. Neither driver dials or
// selects a server here: connections and Mongo indexes are made on the first
// write, so an unreachable archive never blocks startup or the primary store.
func Open(ctx context.Context, cfg *config.ArchiveConfig, redisCfg *config.RedisConfig, log logger.Interface) (*Archive, error) {
	switch cfg.Driver {
	case DriverMongo, "":
		return openMongo(ctx, &cfg.Mongo, log)
	case DriverRedis:
		return openRedis(cfg.KeyPrefix, redisCfg, log), nil
	default:
		return nil, fmt.Errorf("unsupported archive driver: %s", cfg.Driver)
	}
}

func openMongo(ctx context.Context, cfg *config.MongoConfig, log logger.Interface) (*Archive, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	archive := repository.NewMongoArchive(
		client.Database(cfg.Database).Collection(cfg.Collection),
		log.Named("mongo_archive"),
	)

	log.Infow("archive store configured",
		"driver", DriverMongo,
		"database", cfg.Database,
		"collection", cfg.Collection,
	)

	return &Archive{
		Repository: archive,
		Driver:     DriverMongo,
		close:      client.Disconnect,
	}, nil
}

func openRedis(prefix string, cfg *config.RedisConfig, log logger.Interface) *Archive {
	client := NewRedisClient(cfg)

	log.Infow("archive store configured", "driver", DriverRedis, "addr", cfg.GetAddr())

	return &Archive{
		Repository: repository.NewRedisArchive(client, prefix, 0, log.Named("redis_archive")),
		Driver:     DriverRedis,
		close: func(context.Context) error {
			return client.Close()
		},
	}
}

// NewRedisClient builds a client from config without dialing.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
