package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"tenderhub/internal/service"
	"tenderhub/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type createBidRequest struct {
	Name            string    `json:"name" validate:"required,max=100"`
	Description     string    `json:"description" validate:"required,max=500"`
	Status          string    `json:"status" validate:"omitempty,oneof=Submitted Published Canceled"`
	TenderID        uuid.UUID `json:"tenderId" validate:"required"`
	OrganizationID  uuid.UUID `json:"organizationId" validate:"required"`
	CreatorUsername string    `json:"creatorUsername" validate:"required"`
}

func (h *Handler) CreateBidHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req createBidRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bid, err := h.Service.CreateBid(r.Context(), service.CreateBidInput{
		Name:            req.Name,
		Description:     req.Description,
		Status:          req.Status,
		TenderID:        req.TenderID,
		OrganizationID:  req.OrganizationID,
		CreatorUsername: req.CreatorUsername,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(bid)
}

func (h *Handler) GetUserBidsHandler(w http.ResponseWriter, r *http.Request) {
	params := parsePaginationParams(r)

	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "Missing username parameter", http.StatusBadRequest)
		return
	}
	username = strings.TrimSpace(username)

	bids, err := h.Service.ListBidsByCreator(r.Context(), username, params.Limit, params.Offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, bids)
}

func (h *Handler) GetBidsForTenderHandler(w http.ResponseWriter, r *http.Request) {
	params := parsePaginationParams(r)

	tenderID, err := uuid.Parse(chi.URLParam(r, "tenderId"))
	if err != nil {
		http.Error(w, "Invalid tenderId", http.StatusBadRequest)
		return
	}

	bids, err := h.Service.ListBidsForTender(r.Context(), tenderID, params.Limit, params.Offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, bids)
}

// EditBidHandler — правка предложения; username в query задает
// действующую личность, править может только автор
func (h *Handler) EditBidHandler(w http.ResponseWriter, r *http.Request) {
	bidID, err := uuid.Parse(chi.URLParam(r, "bidId"))
	if err != nil {
		http.Error(w, "Invalid bidId", http.StatusBadRequest)
		return
	}

	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "Missing username parameter", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Cannot read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var input struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
	}
	if err := json.Unmarshal(body, &input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if input.Name != nil && (len(*input.Name) == 0 || len(*input.Name) > 100) {
		http.Error(w, "Invalid name length", http.StatusBadRequest)
		return
	}
	if input.Description != nil && (len(*input.Description) == 0 || len(*input.Description) > 500) {
		http.Error(w, "Invalid description length", http.StatusBadRequest)
		return
	}

	bid, err := h.Service.UpdateBid(r.Context(), bidID, service.BidPatch{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
	}, username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, bid)
}

func (h *Handler) UpdateBidStatusHandler(w http.ResponseWriter, r *http.Request) {
	bidID, err := uuid.Parse(chi.URLParam(r, "bidId"))
	if err != nil {
		http.Error(w, "Invalid bidId", http.StatusBadRequest)
		return
	}

	status := r.URL.Query().Get("status")
	username := r.URL.Query().Get("username")
	if status == "" || username == "" {
		http.Error(w, "Missing status or username", http.StatusBadRequest)
		return
	}
	if !models.IsValidBidStatus(status) {
		http.Error(w, "Invalid status value", http.StatusBadRequest)
		return
	}

	bid, err := h.Service.UpdateBid(r.Context(), bidID, service.BidPatch{Status: &status}, username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, bid)
}

func (h *Handler) RollbackBidHandler(w http.ResponseWriter, r *http.Request) {
	bidID, err := uuid.Parse(chi.URLParam(r, "bidId"))
	if err != nil {
		http.Error(w, "Invalid bidId", http.StatusBadRequest)
		return
	}
	version, err := strconv.Atoi(chi.URLParam(r, "version"))
	if err != nil || version < 1 {
		http.Error(w, "Invalid version number", http.StatusBadRequest)
		return
	}

	bid, err := h.Service.RollbackBid(r.Context(), bidID, version)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, bid)
}

func (h *Handler) GetBidVersionsHandler(w http.ResponseWriter, r *http.Request) {
	bidID, err := uuid.Parse(chi.URLParam(r, "bidId"))
	if err != nil {
		http.Error(w, "Invalid bidId", http.StatusBadRequest)
		return
	}

	versions, err := h.Service.ListBidVersions(r.Context(), bidID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, versions)
}

// CreateBidFeedbackHandler добавляет отзыв к предложению
func (h *Handler) CreateBidFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	bidID, err := uuid.Parse(chi.URLParam(r, "bidId"))
	if err != nil {
		http.Error(w, "Invalid bidId", http.StatusBadRequest)
		return
	}

	username := r.URL.Query().Get("username")
	feedback := r.URL.Query().Get("bidFeedback")
	if username == "" || feedback == "" {
		http.Error(w, "Missing username or feedback", http.StatusBadRequest)
		return
	}
	if len(feedback) > 1000 {
		http.Error(w, "Feedback too long", http.StatusBadRequest)
		return
	}

	review, err := h.Service.AddBidReview(r.Context(), bidID, username, feedback)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, review)
}

// GetBidReviewsHandler — отзывы по предложениям тендера: фильтр по автору
// отзыва и организации предложения одновременно
func (h *Handler) GetBidReviewsHandler(w http.ResponseWriter, r *http.Request) {
	tenderID, err := uuid.Parse(chi.URLParam(r, "tenderId"))
	if err != nil {
		http.Error(w, "Invalid tenderId", http.StatusBadRequest)
		return
	}

	authorUsername := r.URL.Query().Get("authorUsername")
	organizationIDStr := r.URL.Query().Get("organizationId")
	if authorUsername == "" || organizationIDStr == "" {
		http.Error(w, "Missing required parameters", http.StatusBadRequest)
		return
	}
	organizationID, err := uuid.Parse(organizationIDStr)
	if err != nil {
		http.Error(w, "Invalid organizationId", http.StatusBadRequest)
		return
	}

	reviews, err := h.Service.ListBidReviews(r.Context(), tenderID, authorUsername, organizationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, reviews)
}
