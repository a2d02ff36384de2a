package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Keys of the cached read endpoints.
const (
	KeySchedule       = "schedule:data"
	KeyUniversityData = "schedule:university_data"
	KeySubjects       = "schedule:subjects"
	KeyFlows          = "schedule:flows"
	KeyCurriculum     = "schedule:curriculum"
)

// RDB is nil when caching is disabled.
var RDB *redis.Client

var ttl = 5 * time.Minute

// Init connects to Redis. An empty addr or a failed ping leaves caching off.
func Init(ctx context.Context, addr string, expiry time.Duration) {
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR is not set, caching disabled")
		return
	}
	if expiry > 0 {
		ttl = expiry
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("❌ Failed to connect to Redis at %s: %v\n", addr, err)
		_ = client.Close()
		return
	}
	RDB = client
	log.Println("✅ Redis connected")
}

// Get decodes the cached value into dst and reports whether it was there.
func Get(ctx context.Context, key string, dst any) bool {
	if RDB == nil {
		return false
	}
	data, err := RDB.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("⚠️ Cache read %s: %v\n", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("⚠️ Cache decode %s: %v\n", key, err)
		return false
	}
	return true
}

func Set(ctx context.Context, key string, v any) {
	if RDB == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("⚠️ Cache encode %s: %v\n", key, err)
		return
	}
	if err := RDB.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("⚠️ Cache write %s: %v\n", key, err)
	}
}

// Invalidate drops the given keys.
func Invalidate(ctx context.Context, keys ...string) {
	if RDB == nil || len(keys) == 0 {
		return
	}
	if err := RDB.Del(ctx, keys...).Err(); err != nil {
		log.Printf("⚠️ Cache invalidate %v: %v\n", keys, err)
	}
}

func Close() error {
	if RDB == nil {
		return nil
	}
	err := RDB.Close()
	RDB = nil
	return err
}
