// Package matcher implements the keyword-scoring match over the knowledge
// base. Scoring is plain case-insensitive substring containment: weak +1
// signals per keyword, a stronger fixed +2 for containing the record's
// question phrase.
package matcher

import (
	"strings"

	"github.com/bluewake-marine/shorebot/internal/domain"
)

// Fallback reply texts used when no record matches.
const (
	HandoffReply = "I'm connecting you to one of our team members who can help you further. Please hold on a moment."

	CapabilityReply = "I can help you with boat rides, spare parts, repair services, opening hours, pricing and bookings. " +
		"Could you tell me a bit more about what you're looking for?"
)

// escalationKeywords triggers a human handoff when no record matches.
var escalationKeywords = []string{
	"admin", "human", "person", "manager", "help", "problem", "issue", "complaint",
}

// Normalize lower-cases raw user input for case-insensitive comparison.
// No trimming, punctuation stripping or unicode folding happens here; every
// downstream comparison is a plain substring test.
func Normalize(message string) string {
	return strings.ToLower(message)
}

// Score computes the relevance of one record against a normalized message:
// +1 per keyword contained in the message, +2 when the message contains the
// record's question phrase. Keyword hits stack without a ceiling, so longer
// and more specific messages outrank short generic ones.
func Score(normalized string, record *domain.KnowledgeRecord) int {
	score := 0
	for _, keyword := range record.Keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(normalized, strings.ToLower(keyword)) {
			score++
		}
	}
	if strings.Contains(normalized, strings.ToLower(record.Question)) {
		score += 2
	}
	return score
}

// BestMatch scans the records once and returns the highest-scoring one, or
// nil when every score is zero (including the empty-set case). Ties resolve
// to the first record reaching the maximum, so the caller's iteration order
// is the tie-break.
func BestMatch(normalized string, records []*domain.KnowledgeRecord) *domain.KnowledgeRecord {
	var best *domain.KnowledgeRecord
	maxScore := 0
	for _, record := range records {
		if score := Score(normalized, record); score > maxScore {
			maxScore = score
			best = record
		}
	}
	return best
}

// WantsHuman reports whether an unmatched message should be routed to a
// human operator instead of the generic capability reply.
func WantsHuman(normalized string) bool {
	for _, keyword := range escalationKeywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}
