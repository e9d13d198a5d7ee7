package service

import (
	"context"
	"encoding/json"
	"time"

	"quiz_arena_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const leaderboardCacheKey = "leaderboard:top"

type LeaderboardEntry struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// LeaderboardService projects the top player-role users by their running
// score total. Results are cached in redis for a short TTL; the cache is
// purely an accelerator and a nil client disables it.
type LeaderboardService struct {
	Users    UserRepo
	Redis    *redis.Client
	Size     int
	CacheTTL time.Duration
}

func NewLeaderboardService(users UserRepo, rdb *redis.Client, size int, cacheTTL time.Duration) *LeaderboardService {
	return &LeaderboardService{
		Users:    users,
		Redis:    rdb,
		Size:     size,
		CacheTTL: cacheTTL,
	}
}

func (s *LeaderboardService) Top(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil && s.CacheTTL > 0 {
		cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Bytes()
		if err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal(cached, &entries); err == nil {
				return entries, nil
			}
		}
	}

	users, err := s.Users.FindTopPlayers(s.Size)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			ID:    u.ID,
			Name:  u.Name,
			Score: u.Score,
		})
	}

	if s.Redis != nil && s.CacheTTL > 0 {
		payload, err := json.Marshal(entries)
		if err == nil {
			if err := s.Redis.Set(ctx, leaderboardCacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}

	return entries, nil
}
