package domain

import (
	"fmt"
	"time"
)

// Category classifies a knowledge record. Informational only; it is never
// consulted during matching.
type Category string

const (
	CategoryGreeting   Category = "greeting"
	CategoryServices   Category = "services"
	CategoryPricing    Category = "pricing"
	CategoryHours      Category = "hours"
	CategoryContact    Category = "contact"
	CategoryBooking    Category = "booking"
	CategoryTechnical  Category = "technical"
	CategoryEscalation Category = "escalation"
	CategoryGeneral    Category = "general"
)

// Record priorities. A priority-2 record escalates to a human operator even
// when the matcher answers it.
const (
	PriorityDirect   = 1
	PriorityEscalate = 2
)

// KnowledgeRecord is one canned question/answer entry usable by the bot.
type KnowledgeRecord struct {
	ID        string
	Question  string
	Answer    string
	Category  Category
	Keywords  []string
	Priority  int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewKnowledgeRecord creates a new KnowledgeRecord instance
func NewKnowledgeRecord(
	id string,
	question, answer string,
	category Category,
	keywords []string,
	priority int,
	createdAt, updatedAt time.Time,
) *KnowledgeRecord {
	return &KnowledgeRecord{
		ID:        id,
		Question:  question,
		Answer:    answer,
		Category:  category,
		Keywords:  keywords,
		Priority:  priority,
		IsActive:  true,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ValidateKnowledgeRecord validates a KnowledgeRecord instance
func ValidateKnowledgeRecord(r *KnowledgeRecord) error {
	if r == nil {
		return fmt.Errorf("knowledge record cannot be nil")
	}

	if r.ID == "" {
		return fmt.Errorf("knowledge record ID is required")
	}

	if r.Question == "" {
		return fmt.Errorf("knowledge record Question is required")
	}

	if r.Answer == "" {
		return fmt.Errorf("knowledge record Answer is required")
	}

	if !IsValidCategory(r.Category) {
		return fmt.Errorf("knowledge record Category is invalid: %s", r.Category)
	}

	if r.Priority != PriorityDirect && r.Priority != PriorityEscalate {
		return fmt.Errorf("knowledge record Priority must be 1 or 2, got %d", r.Priority)
	}

	return nil
}

// IsValidCategory checks if a Category is valid
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryGreeting, CategoryServices, CategoryPricing, CategoryHours,
		CategoryContact, CategoryBooking, CategoryTechnical, CategoryEscalation,
		CategoryGeneral:
		return true
	}
	return false
}
