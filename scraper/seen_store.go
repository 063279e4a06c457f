package scraper

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const (
	// Redis only has string type, there is no boolean or int, so we use "1" to represent true
	redisTrue = "1"

	seenKeyPrefix = "seen__"
)

var ctx = context.Background()

// SeenStore caches already-scraped post ids in Redis so repeat listings can
// be skipped without a round trip to the database. It is an optimization
// only: a cache miss falls through to the store's idempotent insert, so
// losing Redis never produces duplicates.
type SeenStore struct {
	inner *redis.Client
}

func NewSeenStore(host, port, passwd string) (*SeenStore, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: passwd,
		DB:       0, // use default DB
	})
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return &SeenStore{inner: redisClient}, nil
}

func seenKey(postId string) string {
	return seenKeyPrefix + postId
}

func (s *SeenStore) IsSeen(postId string) bool {
	val, err := s.inner.Get(ctx, seenKey(postId)).Result()
	return err == nil && val == redisTrue
}

func (s *SeenStore) MarkSeen(postIds []string) error {
	if len(postIds) == 0 {
		return nil
	}
	keyValues := []interface{}{}
	for _, pid := range postIds {
		keyValues = append(keyValues, seenKey(pid), redisTrue)
	}
	return s.inner.MSet(ctx, keyValues...).Err()
}
