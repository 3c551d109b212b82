package repository

import (
	"context"
	"errors"

	"github.com/bluewake-marine/shorebot/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type KnowledgeRepository struct {
	db dbtx
}

func NewKnowledgeRepository(pool *pgxpool.Pool) *KnowledgeRepository {
	return &KnowledgeRepository{db: pool}
}

func NewKnowledgeRepositoryWithTx(tx pgx.Tx) *KnowledgeRepository {
	return &KnowledgeRepository{db: tx}
}

func (r *KnowledgeRepository) Create(ctx context.Context, k *domain.KnowledgeRecord) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO knowledge_records (id, question, answer, category, keywords, priority, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		k.ID, k.Question, k.Answer, k.Category, k.Keywords, k.Priority, k.IsActive, k.CreatedAt, k.UpdatedAt,
	)
	return err
}

func (r *KnowledgeRepository) GetByID(ctx context.Context, id string) (*domain.KnowledgeRecord, error) {
	var k domain.KnowledgeRecord
	err := r.db.QueryRow(ctx,
		`SELECT id, question, answer, category, keywords, priority, is_active, created_at, updated_at
		 FROM knowledge_records WHERE id = $1`,
		id,
	).Scan(&k.ID, &k.Question, &k.Answer, &k.Category, &k.Keywords, &k.Priority, &k.IsActive, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrKnowledgeRecordNotFound
		}
		return nil, err
	}
	return &k, nil
}

// ListActive returns active records sorted by category. Creation order breaks
// ties within a category, which keeps the matcher's first-seen-wins tie-break
// stable across reads.
func (r *KnowledgeRepository) ListActive(ctx context.Context) ([]*domain.KnowledgeRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, question, answer, category, keywords, priority, is_active, created_at, updated_at
		 FROM knowledge_records WHERE is_active ORDER BY category, created_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanKnowledgeRows(rows)
}

func (r *KnowledgeRepository) ListAll(ctx context.Context) ([]*domain.KnowledgeRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, question, answer, category, keywords, priority, is_active, created_at, updated_at
		 FROM knowledge_records ORDER BY category, created_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanKnowledgeRows(rows)
}

func (r *KnowledgeRepository) Update(ctx context.Context, k *domain.KnowledgeRecord) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE knowledge_records SET question = $1, answer = $2, category = $3, keywords = $4, priority = $5, is_active = $6, updated_at = $7
		 WHERE id = $8`,
		k.Question, k.Answer, k.Category, k.Keywords, k.Priority, k.IsActive, k.UpdatedAt, k.ID,
	)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrKnowledgeRecordNotFound
	}
	return nil
}

func (r *KnowledgeRepository) DeleteAll(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM knowledge_records`)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}

func scanKnowledgeRows(rows pgx.Rows) ([]*domain.KnowledgeRecord, error) {
	var results []*domain.KnowledgeRecord
	for rows.Next() {
		var k domain.KnowledgeRecord
		if err := rows.Scan(&k.ID, &k.Question, &k.Answer, &k.Category, &k.Keywords, &k.Priority, &k.IsActive, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, &k)
	}
	return results, rows.Err()
}
