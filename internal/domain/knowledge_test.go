package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryConstants(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		expected string
	}{
		{"Greeting", CategoryGreeting, "greeting"},
		{"Services", CategoryServices, "services"},
		{"Pricing", CategoryPricing, "pricing"},
		{"Hours", CategoryHours, "hours"},
		{"Contact", CategoryContact, "contact"},
		{"Booking", CategoryBooking, "booking"},
		{"Technical", CategoryTechnical, "technical"},
		{"Escalation", CategoryEscalation, "escalation"},
		{"General", CategoryGeneral, "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.category))
		})
	}
}

func TestNewKnowledgeRecord(t *testing.T) {
	now := time.Now()
	record := NewKnowledgeRecord(
		"r1",
		"What are your opening hours?",
		"We are open 8am-6pm, Monday through Saturday.",
		CategoryHours,
		[]string{"hours", "open", "time"},
		PriorityDirect,
		now,
		now,
	)

	assert.Equal(t, "r1", record.ID)
	assert.Equal(t, "What are your opening hours?", record.Question)
	assert.Equal(t, "We are open 8am-6pm, Monday through Saturday.", record.Answer)
	assert.Equal(t, CategoryHours, record.Category)
	assert.Equal(t, []string{"hours", "open", "time"}, record.Keywords)
	assert.Equal(t, PriorityDirect, record.Priority)
	assert.True(t, record.IsActive)
	assert.Equal(t, now, record.CreatedAt)
	assert.Equal(t, now, record.UpdatedAt)
}

func TestValidateKnowledgeRecord(t *testing.T) {
	now := time.Now()

	valid := func() *KnowledgeRecord {
		return &KnowledgeRecord{
			ID:        "r1",
			Question:  "hello",
			Answer:    "Welcome aboard!",
			Category:  CategoryGreeting,
			Keywords:  []string{"hi", "hey"},
			Priority:  PriorityDirect,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*KnowledgeRecord)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid record",
			mutate:  func(r *KnowledgeRecord) {},
			wantErr: false,
		},
		{
			name:    "missing ID",
			mutate:  func(r *KnowledgeRecord) { r.ID = "" },
			wantErr: true,
			errMsg:  "ID",
		},
		{
			name:    "missing Question",
			mutate:  func(r *KnowledgeRecord) { r.Question = "" },
			wantErr: true,
			errMsg:  "Question",
		},
		{
			name:    "missing Answer",
			mutate:  func(r *KnowledgeRecord) { r.Answer = "" },
			wantErr: true,
			errMsg:  "Answer",
		},
		{
			name:    "invalid Category",
			mutate:  func(r *KnowledgeRecord) { r.Category = Category("invalid") },
			wantErr: true,
			errMsg:  "Category",
		},
		{
			name:    "zero Priority",
			mutate:  func(r *KnowledgeRecord) { r.Priority = 0 },
			wantErr: true,
			errMsg:  "Priority",
		},
		{
			name:    "out of range Priority",
			mutate:  func(r *KnowledgeRecord) { r.Priority = 3 },
			wantErr: true,
			errMsg:  "Priority",
		},
		{
			name:    "empty keyword list is allowed",
			mutate:  func(r *KnowledgeRecord) { r.Keywords = nil },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid()
			tt.mutate(record)
			err := ValidateKnowledgeRecord(record)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateKnowledgeRecord_Nil(t *testing.T) {
	err := ValidateKnowledgeRecord(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil")
}

func TestNewBotReply(t *testing.T) {
	now := time.Now().UTC()
	reply := NewBotReply("Welcome aboard!", "chat-42", false, now)

	assert.Equal(t, "Welcome aboard!", reply.Message)
	assert.Equal(t, SenderBot, reply.Sender)
	assert.False(t, reply.Escalate)
	assert.Equal(t, "chat-42", reply.ChatID)
	assert.Equal(t, now, reply.Timestamp)
}
