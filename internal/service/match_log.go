package service

import (
	"context"
	"time"

	"github.com/bluewake-marine/shorebot/internal/domain"
	"github.com/bluewake-marine/shorebot/internal/pagination"
)

// MatchLogPageResult is one keyset page of match logs.
type MatchLogPageResult struct {
	Items      []*domain.MatchLog
	NextCursor string
	HasMore    bool
}

// MatchStats aggregates match logs for the analytics dashboard.
type MatchStats struct {
	TotalReplies int64            `json:"total_replies"`
	Escalations  int64            `json:"escalations"`
	Fallbacks    int64            `json:"fallbacks"`
	ByCategory   map[string]int64 `json:"by_category"`
}

// MatchLogRepositoryInterface defines the repository interface for match log persistence
type MatchLogRepositoryInterface interface {
	Create(ctx context.Context, entry *domain.MatchLog) error
	ListWithCursor(ctx context.Context, cursor *pagination.Cursor, limit int) (*MatchLogPageResult, error)
	Stats(ctx context.Context) (*MatchStats, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
