package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const songListKey = "songs:all"

// NewRedisClient returns a configured go-redis client from URL (e.g., redis://localhost:6379/0).
func NewRedisClient(redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, errors.New("empty redis url")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

// SongCache is a read-through cache for catalog reads. Failures degrade to a
// cache miss; the database stays authoritative.
type SongCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSongCache(client *redis.Client, ttl time.Duration) *SongCache {
	return &SongCache{client: client, ttl: ttl}
}

func songKey(id int64) string {
	return fmt.Sprintf("song:%d", id)
}

// GetSong returns the cached song and true on a hit.
func (c *SongCache) GetSong(ctx context.Context, id int64) (*SongRecord, bool) {
	raw, err := c.client.Get(ctx, songKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var s SongRecord
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return &s, true
}

// SetSong stores a song under its id key.
func (c *SongCache) SetSong(ctx context.Context, s *SongRecord) {
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, songKey(s.ID), raw, c.ttl).Err()
}

// GetList returns the cached full listing and true on a hit.
func (c *SongCache) GetList(ctx context.Context) ([]SongRecord, bool) {
	raw, err := c.client.Get(ctx, songListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []SongRecord
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

// SetList stores the full listing.
func (c *SongCache) SetList(ctx context.Context, items []SongRecord) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, songListKey, raw, c.ttl).Err()
}

// Invalidate drops the song's entry and the listing after any write.
func (c *SongCache) Invalidate(ctx context.Context, id int64) {
	_ = c.client.Del(ctx, songKey(id), songListKey).Err()
}
