package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bluewake-marine/shorebot/internal/domain"
	"github.com/bluewake-marine/shorebot/internal/matcher"
	"github.com/bluewake-marine/shorebot/internal/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockKnowledgeRepository is a mock implementation of KnowledgeRepositoryInterface
type MockKnowledgeRepository struct {
	mock.Mock
}

func (m *MockKnowledgeRepository) Create(ctx context.Context, r *domain.KnowledgeRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockKnowledgeRepository) GetByID(ctx context.Context, id string) (*domain.KnowledgeRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KnowledgeRecord), args.Error(1)
}

func (m *MockKnowledgeRepository) ListActive(ctx context.Context) ([]*domain.KnowledgeRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.KnowledgeRecord), args.Error(1)
}

func (m *MockKnowledgeRepository) ListAll(ctx context.Context) ([]*domain.KnowledgeRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.KnowledgeRecord), args.Error(1)
}

func (m *MockKnowledgeRepository) Update(ctx context.Context, r *domain.KnowledgeRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockKnowledgeRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockMatchLogRepository is a mock implementation of MatchLogRepositoryInterface
type MockMatchLogRepository struct {
	mock.Mock
}

func (m *MockMatchLogRepository) Create(ctx context.Context, entry *domain.MatchLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockMatchLogRepository) ListWithCursor(ctx context.Context, cursor *pagination.Cursor, limit int) (*MatchLogPageResult, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MatchLogPageResult), args.Error(1)
}

func (m *MockMatchLogRepository) Stats(ctx context.Context) (*MatchStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MatchStats), args.Error(1)
}

func (m *MockMatchLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// stubTxRunner runs the transaction function directly against the given repo
type stubTxRunner struct {
	knowledgeRepo KnowledgeRepositoryInterface
	beginErr      error
}

func (r *stubTxRunner) Knowledge() KnowledgeRepositoryInterface {
	return r.knowledgeRepo
}

func (r *stubTxRunner) WithTx(ctx context.Context, fn func(repos TxRepositories) error) error {
	if r.beginErr != nil {
		return r.beginErr
	}
	return fn(r)
}

// sequentialUUIDGenerator produces deterministic IDs for assertions
type sequentialUUIDGenerator struct {
	n int
}

func (g *sequentialUUIDGenerator) NewString() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func activeRecord(id, question, answer string, category domain.Category, keywords []string, priority int) *domain.KnowledgeRecord {
	now := time.Now().UTC()
	return &domain.KnowledgeRecord{
		ID:        id,
		Question:  question,
		Answer:    answer,
		Category:  category,
		Keywords:  keywords,
		Priority:  priority,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testKnowledgeBase() []*domain.KnowledgeRecord {
	return []*domain.KnowledgeRecord{
		activeRecord("r-greeting", "hello", "Welcome aboard!", domain.CategoryGreeting,
			[]string{"hi", "hello", "hey"}, domain.PriorityDirect),
		activeRecord("r-pricing", "how much does it cost", "Rides start at $45.", domain.CategoryPricing,
			[]string{"price", "cost", "how much"}, domain.PriorityDirect),
		activeRecord("r-escalation", "talk to a person", "Connecting you to our team.", domain.CategoryEscalation,
			[]string{"admin", "manager", "speak", "agent"}, domain.PriorityEscalate),
	}
}

func TestBotService_Respond_MatchesGreeting(t *testing.T) {
	mockRepo := new(MockKnowledgeRepository)
	mockLogs := new(MockMatchLogRepository)
	svc := NewBotService(mockRepo, mockLogs, &stubTxRunner{})

	mockRepo.On("ListActive", mock.Anything).Return(testKnowledgeBase(), nil)
	mockLogs.On("Create", mock.Anything, mock.MatchedBy(func(entry *domain.MatchLog) bool {
		return entry.MatchedID == "r-greeting" && !entry.Fallback && entry.Score == 3
	})).Return(nil)

	reply, err := svc.Respond(context.Background(), RespondInput{Message: "Hello there", ChatID: "chat-1"})

	require.NoError(t, err)
	assert.Equal(t, "Welcome aboard!", reply.Message)
	assert.Equal(t, domain.SenderBot, reply.Sender)
	assert.False(t, reply.Escalate)
	assert.Equal(t, "chat-1", reply.ChatID)
	assert.False(t, reply.Timestamp.IsZero())
	mockLogs.AssertExpectations(t)
}

func TestBotService_Respond_EscalationRecordSetsEscalate(t *testing.T) {
	mockRepo := new(MockKnowledgeRepository)
	mockLogs := new(MockMatchLogRepository)
	svc := NewBotService(mockRepo, mockLogs, &stubTxRunner{})

	mockRepo.On("ListActive", mock.Anything).Return(testKnowledgeBase(), nil)
	mockLogs.On("Create", mock.Anything, mock.MatchedBy(func(entry *domain.MatchLog) bool {
		return entry.MatchedID == "r-escalation" && entry.Escalated
	})).Return(nil)

	reply, err := svc.Respond(context.Background(), RespondInput{
		Message: "I need to speak to the admin about a problem",
		ChatID:  "chat-2",
	})

	require.NoError(t, err)
	assert.True(t, reply.Escalate)
	assert.Equal(t, "Connecting you to our team.", reply.Message)
}

func TestBotService_Respond_UnmatchedEscalationKeyword(t *testing.T) {
	mockRepo := new(MockKnowledgeRepository)
	mockLogs := new(MockMatchLogRepository)
	svc := NewBotService(mockRepo, mockLogs, &stubTxRunner{})

	// Knowledge base with no record keyword overlapping the message.
	records := []*domain.KnowledgeRecord{
		activeRecord("r-pricing", "how much does it cost", "Rides start at $45.", domain.CategoryPricing,
			[]string{"price", "cost"}, domain.PriorityDirect),
	}
	mockRepo.On("ListActive", mock.Anything).Return(records, nil)
	mockLogs.On("Create", mock.Anything, mock.MatchedBy(func(entry *domain.MatchLog) bool {
		return entry.Fallback && entry.Escalated && entry.Category == domain.CategoryEscalation
	})).Return(nil)

	reply, err := svc.Respond(context.Background(), RespondInput{Message: "give me a human", ChatID: "chat-3"})

	require.NoError(t, err)
	assert.True(t, reply.Escalate)
	assert.Equal(t, matcher.HandoffReply, reply.Message)
	mockLogs.AssertExpectations(t)
}

func TestBotService_Respond_GenericFallback(t *testing.T) {
	mockRepo := new(MockKnowledgeRepository)
	mockLogs := new(MockMatchLogRepository)
	svc := NewBotService(mockRepo, mockLogs, &stubTxRunner{})

	mockRepo.On("ListActive", mock.Anything).Return(testKnowledgeBase(), nil)
	mockLogs.On("Create", mock.Anything, mock.MatchedBy(func(entry *domain.MatchLog) bool {
		return entry.Fallback && !entry.Escalated && entry.Category == domain.CategoryGeneral
	})).Return(nil)

	reply, err := svc.Respond(context.Background(), RespondInput{Message: "xyzzy unrelated", ChatID: "chat-4"})

	require.NoError(t, err)
	assert.False(t, reply.Escalate)
	assert.Equal(t, matcher.CapabilityReply, reply.Message)
}

func TestBotService_Respond_EmptyMessage(t *testing.T) {
	mockRepo := new(MockKnowledgeRepository)
	mockLogs := new(MockMatchLogRepository)
	svc := NewBotService(mockRepo, mockLogs, &stubTxRunner{})

	mockRepo.On("ListActive", mock.Anything).Return(testKnowledgeBase(), nil)
	mockLogs.On("Create", mock.Anything, mock.Anything).Return(nil)

	reply, err := svc.Respond(context.Background(), RespondInput{Message: "", ChatID: ""})

	require.NoError(t, err)
	assert.Equal(t, matcher.CapabilityReply, reply.Message)
	assert.False(t, reply.Escalate)
}

func TestBotService_Respond_LogFailureDoesNotFailReply(t *testing.T) {
	mockRepo := new(MockKnowledgeRepository)
	mockLogs := new(MockMatchLogRepository)
	svc := NewBotService(mockRepo, mockLogs, &stubTxRunner{})

	mockRepo.On("ListActive", mock.Anything).Return(testKnowledgeBase(), nil)
	mockLogs.On("Create", mock.Anything, mock.Anything).Return(errors.New("log table unavailable"))

	reply, err := svc.Respond(context.Background(), RespondInput{Message: "hello", ChatID: "chat-5"})

	require.NoError(t, err)
	assert.Equal(t, "Welcome aboard!", reply.Message)
}

func TestBotService_Respond_NilLogRepository(t *testing.T) {
	mockRepo := new(MockKnowledgeRepository)
	svc := NewBotService(mockRepo, nil, &stubTxRunner{})

	mockRepo.On("ListActive", mock.Anything).Return(testKnowledgeBase(), nil)

	reply, err := svc.Respond(context.Background(), RespondInput{Message: "hello", ChatID: "chat-6"})

	require.NoError(t, err)
	assert.Equal(t, "Welcome aboard!", reply.Message)
}

func TestBotService_Respond_RepositoryError(t *testing.T) {
	mockRepo := new(MockKnowledgeRepository)
	svc := NewBotService(mockRepo, nil, &stubTxRunner{})

	mockRepo.On("ListActive", mock.Anything).Return(nil, errors.New("connection refused"))

	reply, err := svc.Respond(context.Background(), RespondInput{Message: "hello", ChatID: "chat-7"})

	assert.Error(t, err)
	assert.Nil(t, reply)
}

func TestBotService_ResetKnowledge(t *testing.T) {
	txRepo := new(MockKnowledgeRepository)
	runner := &stubTxRunner{knowledgeRepo: txRepo}
	svc := NewBotServiceWithUUIDGen(new(MockKnowledgeRepository), nil, runner, &sequentialUUIDGenerator{})

	txRepo.On("DeleteAll", mock.Anything).Return(int64(3), nil)
	txRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.KnowledgeRecord) bool {
		return r.IsActive && r.ID != ""
	})).Return(nil).Times(8)

	count, err := svc.ResetKnowledge(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 8, count)
	txRepo.AssertExpectations(t)
}

func TestBotService_ResetKnowledge_DeleteFails(t *testing.T) {
	txRepo := new(MockKnowledgeRepository)
	runner := &stubTxRunner{knowledgeRepo: txRepo}
	svc := NewBotService(new(MockKnowledgeRepository), nil, runner)

	txRepo.On("DeleteAll", mock.Anything).Return(int64(0), errors.New("deadlock detected"))

	count, err := svc.ResetKnowledge(context.Background())

	assert.Error(t, err)
	assert.Zero(t, count)
	txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBotService_ResetKnowledge_BeginFails(t *testing.T) {
	runner := &stubTxRunner{beginErr: errors.New("pool exhausted")}
	svc := NewBotService(new(MockKnowledgeRepository), nil, runner)

	count, err := svc.ResetKnowledge(context.Background())

	assert.Error(t, err)
	assert.Zero(t, count)
}

func TestDefaultKnowledgeRecords_CoversAllCategories(t *testing.T) {
	now := time.Now().UTC()
	records := DefaultKnowledgeRecords(&sequentialUUIDGenerator{}, now)

	require.Len(t, records, 8)

	seen := map[domain.Category]bool{}
	escalations := 0
	for _, r := range records {
		require.NoError(t, domain.ValidateKnowledgeRecord(r))
		assert.True(t, r.IsActive)
		assert.Equal(t, now, r.CreatedAt)
		seen[r.Category] = true
		if r.Priority == domain.PriorityEscalate {
			escalations++
		}
	}

	assert.Len(t, seen, 8)
	assert.Equal(t, 1, escalations)
	assert.True(t, seen[domain.CategoryEscalation])
}
