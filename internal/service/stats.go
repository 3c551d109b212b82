package service

import (
	"context"

	"github.com/bluewake-marine/shorebot/internal/domain"
	"github.com/bluewake-marine/shorebot/internal/pagination"
	"github.com/bluewake-marine/shorebot/internal/telemetry"
)

// StatsService serves the admin analytics views over match logs.
type StatsService struct {
	matchLogRepo MatchLogRepositoryInterface
}

// NewStatsService creates a new StatsService instance
func NewStatsService(matchLogRepo MatchLogRepositoryInterface) *StatsService {
	return &StatsService{matchLogRepo: matchLogRepo}
}

// Overview returns aggregate reply counts across all recorded bot turns
func (s *StatsService) Overview(ctx context.Context) (*MatchStats, error) {
	ctx, span := telemetry.StartSpan(ctx, "StatsService.Overview", telemetry.SpanAttributes{
		Operation: "stats",
	})
	defer span.End()

	return s.matchLogRepo.Stats(ctx)
}

type ListLogsInput struct {
	Cursor string
	Limit  int
}

type ListLogsOutput struct {
	Items   []*domain.MatchLog
	Cursor  string
	HasMore bool
}

// ListLogs returns recent match logs, newest first, cursor-paginated.
func (s *StatsService) ListLogs(ctx context.Context, input ListLogsInput) (*ListLogsOutput, error) {
	ctx, span := telemetry.StartSpan(ctx, "StatsService.ListLogs", telemetry.SpanAttributes{
		Operation: "list",
	})
	defer span.End()

	cursor, _ := pagination.DecodeCursor(input.Cursor)
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	result, err := s.matchLogRepo.ListWithCursor(ctx, cursor, limit)
	if err != nil {
		return nil, err
	}

	return &ListLogsOutput{
		Items:   result.Items,
		Cursor:  result.NextCursor,
		HasMore: result.HasMore,
	}, nil
}
