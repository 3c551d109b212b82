package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/bluewake-marine/shorebot/internal/api"
	"github.com/bluewake-marine/shorebot/internal/service"
)

type StatsService interface {
	Overview(ctx context.Context) (*service.MatchStats, error)
	ListLogs(ctx context.Context, input service.ListLogsInput) (*service.ListLogsOutput, error)
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

type MatchLogResponse struct {
	ID              string `json:"id"`
	ChatID          string `json:"chatId"`
	Message         string `json:"message"`
	MatchedID       string `json:"matchedId,omitempty"`
	MatchedQuestion string `json:"matchedQuestion,omitempty"`
	Category        string `json:"category"`
	Score           int    `json:"score"`
	Escalated       bool   `json:"escalated"`
	Fallback        bool   `json:"fallback"`
	CreatedAt       string `json:"createdAt"`
}

type MatchLogListResponse struct {
	Items   []*MatchLogResponse `json:"items"`
	Cursor  string              `json:"cursor,omitempty"`
	HasMore bool                `json:"hasMore"`
}

func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Overview(r.Context())
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, stats)
}

func (h *StatsHandler) Logs(w http.ResponseWriter, r *http.Request) {
	cursor := r.URL.Query().Get("cursor")
	limitStr := r.URL.Query().Get("limit")
	limit := 20
	if limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	output, err := h.svc.ListLogs(r.Context(), service.ListLogsInput{
		Cursor: cursor,
		Limit:  limit,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	items := make([]*MatchLogResponse, len(output.Items))
	for i, entry := range output.Items {
		items[i] = &MatchLogResponse{
			ID:              entry.ID,
			ChatID:          entry.ChatID,
			Message:         entry.Message,
			MatchedID:       entry.MatchedID,
			MatchedQuestion: entry.MatchedQuestion,
			Category:        string(entry.Category),
			Score:           entry.Score,
			Escalated:       entry.Escalated,
			Fallback:        entry.Fallback,
			CreatedAt:       entry.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	api.Success(w, http.StatusOK, MatchLogListResponse{
		Items:   items,
		Cursor:  output.Cursor,
		HasMore: output.HasMore,
	})
}
