package service

import (
	"context"
	"time"

	"github.com/bluewake-marine/shorebot/internal/domain"
	"github.com/bluewake-marine/shorebot/internal/matcher"
	"github.com/bluewake-marine/shorebot/internal/telemetry"
)

// BotService answers incoming chat messages against the knowledge base and
// performs the administrative reset. Matching is stateless; the knowledge
// base read is the only suspension point per request.
type BotService struct {
	knowledgeRepo KnowledgeRepositoryInterface
	matchLogRepo  MatchLogRepositoryInterface
	txRunner      TxRunner
	uuidGen       UUIDGenerator
}

// NewBotService creates a new BotService instance. matchLogRepo may be nil,
// in which case replies are not recorded.
func NewBotService(
	knowledgeRepo KnowledgeRepositoryInterface,
	matchLogRepo MatchLogRepositoryInterface,
	txRunner TxRunner,
) *BotService {
	return &BotService{
		knowledgeRepo: knowledgeRepo,
		matchLogRepo:  matchLogRepo,
		txRunner:      txRunner,
		uuidGen:       &DefaultUUIDGenerator{},
	}
}

// NewBotServiceWithUUIDGen creates a new BotService with custom UUID generator (for testing)
func NewBotServiceWithUUIDGen(
	knowledgeRepo KnowledgeRepositoryInterface,
	matchLogRepo MatchLogRepositoryInterface,
	txRunner TxRunner,
	uuidGen UUIDGenerator,
) *BotService {
	return &BotService{
		knowledgeRepo: knowledgeRepo,
		matchLogRepo:  matchLogRepo,
		txRunner:      txRunner,
		uuidGen:       uuidGen,
	}
}

// RespondInput represents one incoming chat message
type RespondInput struct {
	Message string
	ChatID  string
}

// Respond selects the best-matching knowledge record for the message and
// wraps it in a reply envelope. An empty or unmatched message falls through
// to the escalation-keyword check; this path is graceful degradation, never
// an error.
func (s *BotService) Respond(ctx context.Context, input RespondInput) (*domain.Reply, error) {
	ctx, span := telemetry.StartSpan(ctx, "BotService.Respond", telemetry.SpanAttributes{
		ChatID:    input.ChatID,
		Operation: "respond",
	})
	defer span.End()

	records, err := s.knowledgeRepo.ListActive(ctx)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	normalized := matcher.Normalize(input.Message)
	now := time.Now().UTC()

	entry := &domain.MatchLog{
		ID:        s.uuidGen.NewString(),
		ChatID:    input.ChatID,
		Message:   input.Message,
		CreatedAt: now,
	}

	var reply *domain.Reply
	if best := matcher.BestMatch(normalized, records); best != nil {
		reply = domain.NewBotReply(best.Answer, input.ChatID, best.Priority == domain.PriorityEscalate, now)
		entry.MatchedID = best.ID
		entry.MatchedQuestion = best.Question
		entry.Category = best.Category
		entry.Score = matcher.Score(normalized, best)
		entry.Escalated = reply.Escalate
	} else if matcher.WantsHuman(normalized) {
		reply = domain.NewBotReply(matcher.HandoffReply, input.ChatID, true, now)
		entry.Category = domain.CategoryEscalation
		entry.Escalated = true
		entry.Fallback = true
	} else {
		reply = domain.NewBotReply(matcher.CapabilityReply, input.ChatID, false, now)
		entry.Category = domain.CategoryGeneral
		entry.Fallback = true
	}

	// A failed log write must not fail the user-facing reply.
	if s.matchLogRepo != nil {
		if err := s.matchLogRepo.Create(ctx, entry); err != nil {
			telemetry.CaptureError(ctx, err)
		}
	}

	return reply, nil
}

// ResetKnowledge destructively replaces the knowledge base with the default
// seed set. Delete and insert run in a single transaction, so readers never
// observe a partially seeded base. Returns the number of records inserted.
func (s *BotService) ResetKnowledge(ctx context.Context) (int, error) {
	ctx, span := telemetry.StartSpan(ctx, "BotService.ResetKnowledge", telemetry.SpanAttributes{
		Operation: "reset",
	})
	defer span.End()

	records := DefaultKnowledgeRecords(s.uuidGen, time.Now().UTC())

	count := 0
	err := s.txRunner.WithTx(ctx, func(repos TxRepositories) error {
		repo := repos.Knowledge()
		if _, err := repo.DeleteAll(ctx); err != nil {
			return err
		}
		for _, record := range records {
			if err := domain.ValidateKnowledgeRecord(record); err != nil {
				return err
			}
			if err := repo.Create(ctx, record); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		span.SetError(err)
		return 0, err
	}

	return count, nil
}

// ListActive retrieves all active knowledge records sorted by category
func (s *BotService) ListActive(ctx context.Context) ([]*domain.KnowledgeRecord, error) {
	return s.knowledgeRepo.ListActive(ctx)
}
