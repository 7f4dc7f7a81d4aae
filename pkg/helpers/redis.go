package helpers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// hsetIfExistsScript writes a hash field only while guard field exists, so a
// write never recreates an expired hash without its TTL.
var hsetIfExistsScript = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 0 then
  return 0
end
redis.call("HSET", KEYS[1], ARGV[2], ARGV[3])
return 1
`)

// RedisHSetJSONIfExists stores value JSON-encoded under field of the hash at key
// when the hash still holds guard. It reports false when it does not.
func RedisHSetJSONIfExists(ctx context.Context, rdb redis.Scripter, key, guard, field string, value any) (bool, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	n, err := hsetIfExistsScript.Run(ctx, rdb, []string{key}, guard, field, b).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// RedisHGetJSON decodes the JSON stored under field of the hash at key.
// It reports false when the field does not exist.
func RedisHGetJSON(ctx context.Context, rdb redis.Cmdable, key, field string, dest any) (bool, error) {
	res, err := rdb.HGet(ctx, key, field).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(res, dest); err != nil {
		return false, err
	}
	return true, nil
}

func RedisDel(ctx context.Context, rdb redis.Cmdable, key string) error {
	return rdb.Del(ctx, key).Err()
}
