package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockJobProcessor is a mock implementation of JobProcessor
type MockJobProcessor struct {
	mock.Mock
}

func (m *MockJobProcessor) ProcessJobs(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockMatchLogPruner is a mock implementation of MatchLogPruner
type MockMatchLogPruner struct {
	mock.Mock
}

func (m *MockMatchLogPruner) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// TestWorker_StartStop tests the worker start and stop functionality
func TestWorker_StartStop(t *testing.T) {
	mockProcessor := new(MockJobProcessor)
	mockProcessor.On("ProcessJobs", mock.Anything).Return(nil)

	worker := NewWorker(mockProcessor, 100*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Start(ctx)
	}()

	time.Sleep(250 * time.Millisecond)

	worker.Stop()
	wg.Wait()

	mockProcessor.AssertCalled(t, "ProcessJobs", mock.Anything)
}

// TestWorker_ContextCancellation tests worker stops on context cancellation
func TestWorker_ContextCancellation(t *testing.T) {
	mockProcessor := new(MockJobProcessor)
	mockProcessor.On("ProcessJobs", mock.Anything).Return(nil)

	worker := NewWorker(mockProcessor, 100*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Start(ctx)
	}()

	time.Sleep(150 * time.Millisecond)

	cancel()
	wg.Wait()

	mockProcessor.AssertCalled(t, "ProcessJobs", mock.Anything)
}

func TestRetentionWorker_PrunesExpiredLogs(t *testing.T) {
	mockPruner := new(MockMatchLogPruner)
	mockPruner.On("DeleteOlderThan", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
		// Cutoff should be roughly 30 days in the past.
		expected := time.Now().UTC().Add(-30 * 24 * time.Hour)
		return cutoff.Sub(expected).Abs() < time.Minute
	})).Return(int64(12), nil)

	worker := NewRetentionWorker(mockPruner, 30)
	err := worker.ProcessJobs(context.Background())

	assert.NoError(t, err)
	mockPruner.AssertExpectations(t)
}

func TestRetentionWorker_ZeroRetentionDisablesPruning(t *testing.T) {
	mockPruner := new(MockMatchLogPruner)

	worker := NewRetentionWorker(mockPruner, 0)
	err := worker.ProcessJobs(context.Background())

	assert.NoError(t, err)
	mockPruner.AssertNotCalled(t, "DeleteOlderThan", mock.Anything, mock.Anything)
}

func TestRetentionWorker_PrunerError(t *testing.T) {
	mockPruner := new(MockMatchLogPruner)
	mockPruner.On("DeleteOlderThan", mock.Anything, mock.Anything).Return(int64(0), errors.New("database error"))

	worker := NewRetentionWorker(mockPruner, 7)
	err := worker.ProcessJobs(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to prune match logs")
	mockPruner.AssertExpectations(t)
}
