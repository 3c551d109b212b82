package repository

import (
	"context"
	"time"

	"github.com/bluewake-marine/shorebot/internal/domain"
	"github.com/bluewake-marine/shorebot/internal/pagination"
	"github.com/bluewake-marine/shorebot/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MatchLogRepository stores one row per bot turn for the analytics views.
type MatchLogRepository struct {
	pool *pgxpool.Pool
}

func NewMatchLogRepository(pool *pgxpool.Pool) *MatchLogRepository {
	return &MatchLogRepository{pool: pool}
}

func (r *MatchLogRepository) Create(ctx context.Context, entry *domain.MatchLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO match_logs (id, chat_id, message, matched_id, matched_question, category, score, escalated, fallback, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		entry.ID,
		entry.ChatID,
		entry.Message,
		nullableString(entry.MatchedID),
		entry.MatchedQuestion,
		entry.Category,
		entry.Score,
		entry.Escalated,
		entry.Fallback,
		entry.CreatedAt,
	)
	return err
}

func (r *MatchLogRepository) ListWithCursor(ctx context.Context, cursor *pagination.Cursor, limit int) (*service.MatchLogPageResult, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows pgx.Rows
	var err error

	if cursor != nil {
		rows, err = r.pool.Query(ctx,
			`SELECT id, chat_id, message, matched_id, matched_question, category, score, escalated, fallback, created_at
			 FROM match_logs
			 WHERE (created_at, id) < ($1, $2)
			 ORDER BY created_at DESC, id DESC
			 LIMIT $3`,
			cursor.Timestamp, cursor.LastID, limit+1,
		)
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT id, chat_id, message, matched_id, matched_question, category, score, escalated, fallback, created_at
			 FROM match_logs
			 ORDER BY created_at DESC, id DESC
			 LIMIT $1`,
			limit+1,
		)
	}

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := scanMatchLogRows(rows)
	if err != nil {
		return nil, err
	}

	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	var nextCursor string
	if hasMore && len(items) > 0 {
		lastItem := items[len(items)-1]
		nextCursor = pagination.EncodeCursor(lastItem.ID, lastItem.CreatedAt)
	}

	return &service.MatchLogPageResult{
		Items:      items,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}, nil
}

func (r *MatchLogRepository) Stats(ctx context.Context) (*service.MatchStats, error) {
	stats := &service.MatchStats{ByCategory: map[string]int64{}}

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE escalated),
		        COUNT(*) FILTER (WHERE fallback)
		 FROM match_logs`,
	).Scan(&stats.TotalReplies, &stats.Escalations, &stats.Fallbacks)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT category, COUNT(*) FROM match_logs GROUP BY category ORDER BY category`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		stats.ByCategory[category] = count
	}
	return stats, rows.Err()
}

func (r *MatchLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM match_logs WHERE created_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}

func scanMatchLogRows(rows pgx.Rows) ([]*domain.MatchLog, error) {
	var results []*domain.MatchLog
	for rows.Next() {
		var entry domain.MatchLog
		var matchedID *string
		if err := rows.Scan(&entry.ID, &entry.ChatID, &entry.Message, &matchedID, &entry.MatchedQuestion,
			&entry.Category, &entry.Score, &entry.Escalated, &entry.Fallback, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if matchedID != nil {
			entry.MatchedID = *matchedID
		}
		results = append(results, &entry)
	}
	return results, rows.Err()
}
