package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bluewake-marine/shorebot/internal/api"
	"github.com/bluewake-marine/shorebot/internal/domain"
	"github.com/bluewake-marine/shorebot/internal/service"
)

type BotService interface {
	Respond(ctx context.Context, input service.RespondInput) (*domain.Reply, error)
	ResetKnowledge(ctx context.Context) (int, error)
	ListActive(ctx context.Context) ([]*domain.KnowledgeRecord, error)
}

type BotHandler struct {
	svc BotService
}

func NewBotHandler(svc BotService) *BotHandler {
	return &BotHandler{svc: svc}
}

type BotMessageRequest struct {
	Message string `json:"message"`
	ChatID  string `json:"chatId"`
}

type BotReplyResponse struct {
	Message   string `json:"message"`
	Sender    string `json:"sender"`
	Escalate  bool   `json:"escalate"`
	ChatID    string `json:"chatId"`
	Timestamp string `json:"timestamp"`
}

type InitBotResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func replyToResponse(r *domain.Reply) *BotReplyResponse {
	return &BotReplyResponse{
		Message:   r.Message,
		Sender:    r.Sender,
		Escalate:  r.Escalate,
		ChatID:    r.ChatID,
		Timestamp: r.Timestamp.Format("2006-01-02T15:04:05Z"),
	}
}

// Respond handles POST /bot/response. A missing or empty message is not an
// error; it falls through the matcher to the generic fallback reply.
func (h *BotHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req BotMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.svc.Respond(r.Context(), service.RespondInput{
		Message: req.Message,
		ChatID:  req.ChatID,
	})
	if err != nil {
		api.Failure(w, http.StatusInternalServerError, "Failed to get bot response", err)
		return
	}

	api.Success(w, http.StatusOK, replyToResponse(reply))
}

// Init handles POST /bot/init: the destructive knowledge-base reset.
func (h *BotHandler) Init(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.ResetKnowledge(r.Context())
	if err != nil {
		api.Failure(w, http.StatusInternalServerError, "Failed to initialize bot", err)
		return
	}

	api.JSON(w, http.StatusOK, InitBotResponse{
		Success: true,
		Message: "Bot knowledge base initialized successfully",
		Count:   count,
	})
}

// ListResponses handles GET /bot/responses: active records sorted by category.
func (h *BotHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListActive(r.Context())
	if err != nil {
		api.Failure(w, http.StatusInternalServerError, "Failed to fetch bot responses", err)
		return
	}

	responses := make([]*KnowledgeRecordResponse, len(records))
	for i, record := range records {
		responses[i] = recordToResponse(record)
	}

	api.Success(w, http.StatusOK, responses)
}
