package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bluewake-marine/shorebot/internal/api"
	"github.com/bluewake-marine/shorebot/internal/domain"
	"github.com/bluewake-marine/shorebot/internal/service"
	"github.com/go-chi/chi/v5"
)

type KnowledgeService interface {
	Create(ctx context.Context, input service.CreateRecordInput) (*domain.KnowledgeRecord, error)
	GetByID(ctx context.Context, id string) (*domain.KnowledgeRecord, error)
	Update(ctx context.Context, input service.UpdateRecordInput) (*domain.KnowledgeRecord, error)
	Deactivate(ctx context.Context, recordID string) (*domain.KnowledgeRecord, error)
	ListAll(ctx context.Context) ([]*domain.KnowledgeRecord, error)
}

type KnowledgeHandler struct {
	svc KnowledgeService
}

func NewKnowledgeHandler(svc KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{svc: svc}
}

type CreateRecordRequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
	Priority int      `json:"priority"`
}

type UpdateRecordRequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
	Priority int      `json:"priority"`
}

type KnowledgeRecordResponse struct {
	ID        string   `json:"id"`
	Question  string   `json:"question"`
	Answer    string   `json:"answer"`
	Category  string   `json:"category"`
	Keywords  []string `json:"keywords"`
	Priority  int      `json:"priority"`
	IsActive  bool     `json:"isActive"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

func recordToResponse(r *domain.KnowledgeRecord) *KnowledgeRecordResponse {
	return &KnowledgeRecordResponse{
		ID:        r.ID,
		Question:  r.Question,
		Answer:    r.Answer,
		Category:  string(r.Category),
		Keywords:  r.Keywords,
		Priority:  r.Priority,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: r.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func (h *KnowledgeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Question == "" {
		api.Error(w, http.StatusBadRequest, "question is required")
		return
	}
	if req.Answer == "" {
		api.Error(w, http.StatusBadRequest, "answer is required")
		return
	}

	category := domain.Category(req.Category)
	if req.Category != "" && !domain.IsValidCategory(category) {
		api.Error(w, http.StatusBadRequest, "invalid category")
		return
	}

	priority := req.Priority
	if priority == 0 {
		priority = domain.PriorityDirect
	}

	record, err := h.svc.Create(r.Context(), service.CreateRecordInput{
		Question: req.Question,
		Answer:   req.Answer,
		Category: category,
		Keywords: req.Keywords,
		Priority: priority,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusCreated, recordToResponse(record))
}

func (h *KnowledgeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.Error(w, http.StatusBadRequest, "id is required")
		return
	}

	record, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, recordToResponse(record))
}

func (h *KnowledgeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.Error(w, http.StatusBadRequest, "id is required")
		return
	}

	var req UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Question == "" {
		api.Error(w, http.StatusBadRequest, "question is required")
		return
	}
	if req.Answer == "" {
		api.Error(w, http.StatusBadRequest, "answer is required")
		return
	}

	category := domain.Category(req.Category)
	if !domain.IsValidCategory(category) {
		api.Error(w, http.StatusBadRequest, "invalid category")
		return
	}

	record, err := h.svc.Update(r.Context(), service.UpdateRecordInput{
		RecordID: id,
		Question: req.Question,
		Answer:   req.Answer,
		Category: category,
		Keywords: req.Keywords,
		Priority: req.Priority,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, recordToResponse(record))
}

// Deactivate handles DELETE; records are excluded from matching rather than
// removed, so match logs keep dangling references intact.
func (h *KnowledgeHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.Error(w, http.StatusBadRequest, "id is required")
		return
	}

	record, err := h.svc.Deactivate(r.Context(), id)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, recordToResponse(record))
}

func (h *KnowledgeHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListAll(r.Context())
	if err != nil {
		api.HandleError(w, err)
		return
	}

	responses := make([]*KnowledgeRecordResponse, len(records))
	for i, record := range records {
		responses[i] = recordToResponse(record)
	}

	api.Success(w, http.StatusOK, responses)
}
