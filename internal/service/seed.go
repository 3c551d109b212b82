package service

import (
	"time"

	"github.com/bluewake-marine/shorebot/internal/domain"
)

type seedRecord struct {
	question string
	answer   string
	category domain.Category
	keywords []string
	priority int
}

// defaultSeed is the canonical eight-entry knowledge base installed by the
// administrative reset, one record per customer-facing category.
var defaultSeed = []seedRecord{
	{
		question: "hello",
		answer:   "Welcome to Bluewake Marine! I can help you with boat rides, spare parts, repairs and bookings. What can I do for you today?",
		category: domain.CategoryGreeting,
		keywords: []string{"hi", "hello", "hey", "good morning", "good afternoon"},
		priority: domain.PriorityDirect,
	},
	{
		question: "what services do you offer",
		answer:   "We offer boat rides, spare parts sales, boat repair services and purchase visits. Which one are you interested in?",
		category: domain.CategoryServices,
		keywords: []string{"services", "offer", "what do you do"},
		priority: domain.PriorityDirect,
	},
	{
		question: "how much does it cost",
		answer:   "Boat rides start at $45 per person, and repair work is quoted after inspection. Spare part prices are listed in our online shop.",
		category: domain.CategoryPricing,
		keywords: []string{"price", "cost", "pricing", "rates", "fee", "how much"},
		priority: domain.PriorityDirect,
	},
	{
		question: "what are your opening hours",
		answer:   "We are open 8am to 6pm, Monday through Saturday. The marina office is closed on Sundays.",
		category: domain.CategoryHours,
		keywords: []string{"hours", "open", "close", "timing", "when"},
		priority: domain.PriorityDirect,
	},
	{
		question: "how can i contact you",
		answer:   "You can reach us at +1 (555) 010-2525, support@bluewakemarine.com, or visit us at Pier 14, Bluewake Marina.",
		category: domain.CategoryContact,
		keywords: []string{"contact", "phone", "email", "address", "location", "reach"},
		priority: domain.PriorityDirect,
	},
	{
		question: "book a boat ride",
		answer:   "You can book a boat ride through our website or right here in the chat. Let me know your preferred date and group size.",
		category: domain.CategoryBooking,
		keywords: []string{"book", "booking", "reserve", "reservation", "schedule", "appointment"},
		priority: domain.PriorityDirect,
	},
	{
		question: "my boat needs repair",
		answer:   "Sorry to hear that! Please describe what is wrong and our technicians will get back to you with an estimate within one business day.",
		category: domain.CategoryTechnical,
		keywords: []string{"repair", "fix", "broken", "not working", "maintenance", "engine"},
		priority: domain.PriorityDirect,
	},
	{
		question: "talk to a person",
		answer:   "Of course. Let me connect you with a member of our team. A support agent will be with you shortly.",
		category: domain.CategoryEscalation,
		keywords: []string{"admin", "manager", "speak", "agent", "representative", "staff"},
		priority: domain.PriorityEscalate,
	},
}

// DefaultKnowledgeRecords materializes the seed set with fresh IDs and the
// given creation time.
func DefaultKnowledgeRecords(uuidGen UUIDGenerator, now time.Time) []*domain.KnowledgeRecord {
	records := make([]*domain.KnowledgeRecord, 0, len(defaultSeed))
	for _, s := range defaultSeed {
		records = append(records, domain.NewKnowledgeRecord(
			uuidGen.NewString(),
			s.question,
			s.answer,
			s.category,
			s.keywords,
			s.priority,
			now,
			now,
		))
	}
	return records
}
