package storage

import (
	"context"
	"strconv"
	"time"

	"restaurant-reservations/activity-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const dailyRetention = 7 * 24 * time.Hour

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func totalsKey(resource string) string {
	return "activity:" + resource
}

func dailyKey(day time.Time) string {
	return "activity:daily:" + day.UTC().Format("2006-01-02")
}

// Record counts one event in the all-time totals and in the leaderboard of
// the day the event happened.
func (s *Store) Record(ctx context.Context, event domain.Event) error {
	key := dailyKey(event.Timestamp)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, totalsKey(event.Resource), event.Action(), 1)
		pipe.ZIncrBy(ctx, key, 1, event.Type)
		pipe.Expire(ctx, key, dailyRetention)
		return nil
	})
	return err
}

func (s *Store) Totals(ctx context.Context) (domain.ResourceTotals, error) {
	totals := make(domain.ResourceTotals, len(domain.Resources))
	for _, resource := range domain.Resources {
		fields, err := s.rdb.HGetAll(ctx, totalsKey(resource)).Result()
		if err != nil {
			return nil, err
		}
		counts := make(map[string]int64, len(fields))
		for action, raw := range fields {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				continue
			}
			counts[action] = n
		}
		totals[resource] = counts
	}
	return totals, nil
}

// Daily returns the most frequent event types of the given day, highest first.
func (s *Store) Daily(ctx context.Context, day time.Time, limit int) ([]domain.EventCount, error) {
	result, err := s.rdb.ZRevRangeWithScores(ctx, dailyKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	counts := make([]domain.EventCount, 0, len(result))
	for _, member := range result {
		eventType, _ := member.Member.(string)
		counts = append(counts, domain.EventCount{Type: eventType, Count: int64(member.Score)})
	}
	return counts, nil
}
