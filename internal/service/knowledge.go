package service

import (
	"context"
	"time"

	"github.com/bluewake-marine/shorebot/internal/domain"
	"github.com/bluewake-marine/shorebot/internal/telemetry"
	"github.com/google/uuid"
)

// KnowledgeRepositoryInterface defines the repository interface for knowledge record persistence
type KnowledgeRepositoryInterface interface {
	Create(ctx context.Context, r *domain.KnowledgeRecord) error
	GetByID(ctx context.Context, id string) (*domain.KnowledgeRecord, error)
	ListActive(ctx context.Context) ([]*domain.KnowledgeRecord, error)
	ListAll(ctx context.Context) ([]*domain.KnowledgeRecord, error)
	Update(ctx context.Context, r *domain.KnowledgeRecord) error
	DeleteAll(ctx context.Context) (int64, error)
}

// UUIDGenerator defines interface for UUID generation (for testing)
type UUIDGenerator interface {
	NewString() string
}

// DefaultUUIDGenerator is the default UUID generator using google/uuid
type DefaultUUIDGenerator struct{}

// NewString generates a new UUID string
func (g *DefaultUUIDGenerator) NewString() string {
	return uuid.NewString()
}

// KnowledgeService handles the administrative content management of the
// knowledge base. The bot's read path lives in BotService.
type KnowledgeService struct {
	knowledgeRepo KnowledgeRepositoryInterface
	uuidGen       UUIDGenerator
}

// NewKnowledgeService creates a new KnowledgeService instance
func NewKnowledgeService(knowledgeRepo KnowledgeRepositoryInterface) *KnowledgeService {
	return &KnowledgeService{
		knowledgeRepo: knowledgeRepo,
		uuidGen:       &DefaultUUIDGenerator{},
	}
}

// NewKnowledgeServiceWithUUIDGen creates a new KnowledgeService with custom UUID generator (for testing)
func NewKnowledgeServiceWithUUIDGen(knowledgeRepo KnowledgeRepositoryInterface, uuidGen UUIDGenerator) *KnowledgeService {
	return &KnowledgeService{
		knowledgeRepo: knowledgeRepo,
		uuidGen:       uuidGen,
	}
}

// CreateRecordInput represents the input for creating a knowledge record
type CreateRecordInput struct {
	Question string
	Answer   string
	Category domain.Category
	Keywords []string
	Priority int
}

// UpdateRecordInput represents the input for updating a knowledge record
type UpdateRecordInput struct {
	RecordID string
	Question string
	Answer   string
	Category domain.Category
	Keywords []string
	Priority int
}

// Create validates and persists a new knowledge record
func (s *KnowledgeService) Create(ctx context.Context, input CreateRecordInput) (*domain.KnowledgeRecord, error) {
	ctx, span := telemetry.StartSpan(ctx, "KnowledgeService.Create", telemetry.SpanAttributes{
		Category:  string(input.Category),
		Operation: "create",
	})
	defer span.End()

	now := time.Now().UTC()
	category := input.Category
	if category == "" {
		category = domain.CategoryGeneral
	}

	record := domain.NewKnowledgeRecord(
		s.uuidGen.NewString(),
		input.Question,
		input.Answer,
		category,
		input.Keywords,
		input.Priority,
		now,
		now,
	)

	if err := domain.ValidateKnowledgeRecord(record); err != nil {
		return nil, err
	}

	if err := s.knowledgeRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// GetByID retrieves a knowledge record by ID
func (s *KnowledgeService) GetByID(ctx context.Context, id string) (*domain.KnowledgeRecord, error) {
	return s.knowledgeRepo.GetByID(ctx, id)
}

// Update replaces the content of an existing knowledge record and refreshes
// its updatedAt timestamp
func (s *KnowledgeService) Update(ctx context.Context, input UpdateRecordInput) (*domain.KnowledgeRecord, error) {
	ctx, span := telemetry.StartSpan(ctx, "KnowledgeService.Update", telemetry.SpanAttributes{
		RecordID:  input.RecordID,
		Operation: "update",
	})
	defer span.End()

	record, err := s.knowledgeRepo.GetByID(ctx, input.RecordID)
	if err != nil {
		return nil, err
	}

	if !record.IsActive {
		return nil, domain.ErrCannotModifyInactive
	}

	record.Question = input.Question
	record.Answer = input.Answer
	record.Category = input.Category
	record.Keywords = input.Keywords
	record.Priority = input.Priority
	record.UpdatedAt = time.Now().UTC()

	if err := domain.ValidateKnowledgeRecord(record); err != nil {
		return nil, err
	}

	if err := s.knowledgeRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Deactivate excludes a knowledge record from matching without deleting it
func (s *KnowledgeService) Deactivate(ctx context.Context, recordID string) (*domain.KnowledgeRecord, error) {
	ctx, span := telemetry.StartSpan(ctx, "KnowledgeService.Deactivate", telemetry.SpanAttributes{
		RecordID:  recordID,
		Operation: "deactivate",
	})
	defer span.End()

	record, err := s.knowledgeRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	record.IsActive = false
	record.UpdatedAt = time.Now().UTC()

	if err := s.knowledgeRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// ListAll retrieves every knowledge record, including deactivated ones
func (s *KnowledgeService) ListAll(ctx context.Context) ([]*domain.KnowledgeRecord, error) {
	return s.knowledgeRepo.ListAll(ctx)
}
