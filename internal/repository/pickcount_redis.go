package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const pickCountsKey = "pick_counts"

// RedisPickCounter keeps global pick counts in one redis hash; HINCRBY makes
// concurrent submissions safe across instances.
type RedisPickCounter struct {
	client *redis.Client
}

func NewRedisPickCounter(client *redis.Client) *RedisPickCounter {
	return &RedisPickCounter{
		client: client,
	}
}

func (that *RedisPickCounter) Increment(ctx context.Context, pokemon string) (int64, error) {
	count, err := that.client.HIncrBy(ctx, pickCountsKey, pokemon, 1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment pick count: %w", err)
	}

	return count, nil
}

func (that *RedisPickCounter) Count(ctx context.Context, pokemon string) (int64, error) {
	count, err := that.client.HGet(ctx, pickCountsKey, pokemon).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get pick count: %w", err)
	}

	return count, nil
}

func (that *RedisPickCounter) Counts(ctx context.Context, pokemon []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(pokemon))
	if len(pokemon) == 0 {
		return counts, nil
	}

	values, err := that.client.HMGet(ctx, pickCountsKey, pokemon...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get pick counts: %w", err)
	}

	for i, value := range values {
		counts[pokemon[i]] = 0

		raw, ok := value.(string)
		if !ok {
			continue
		}

		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed pick count for %s: %w", pokemon[i], err)
		}

		counts[pokemon[i]] = count
	}

	return counts, nil
}
