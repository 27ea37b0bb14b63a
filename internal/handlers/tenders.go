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

type PaginationParams struct {
	Limit  int
	Offset int
}

// parsePaginationParams парсит limit и offset из query, с дефолтами и ограничениями
func parsePaginationParams(r *http.Request) PaginationParams {
	var params PaginationParams
	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")

	params.Limit = 5 // дефолт
	params.Offset = 0

	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 50 {
			params.Limit = l
		}
	}
	if offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			params.Offset = o
		}
	}
	return params
}

// GetTendersHandler возвращает список тендеров с фильтром по serviceType
func (h *Handler) GetTendersHandler(w http.ResponseWriter, r *http.Request) {
	params := parsePaginationParams(r)

	// Фильтр serviceType — может повторяться в query
	serviceTypes := r.URL.Query()["serviceType"]
	var filteredTypes []string
	for _, v := range serviceTypes {
		if v != "" && models.IsValidServiceType(v) {
			filteredTypes = append(filteredTypes, v)
		}
	}

	tenders, err := h.Service.ListTenders(r.Context(), filteredTypes, params.Limit, params.Offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, tenders)
}

// GetUserTendersHandler возвращает тендеры, созданные пользователем username
func (h *Handler) GetUserTendersHandler(w http.ResponseWriter, r *http.Request) {
	params := parsePaginationParams(r)

	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "Missing username parameter", http.StatusBadRequest)
		return
	}
	username = strings.TrimSpace(username)

	tenders, err := h.Service.ListTendersByCreator(r.Context(), username, params.Limit, params.Offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, tenders)
}

func (h *Handler) EditTenderHandler(w http.ResponseWriter, r *http.Request) {
	tenderID, err := uuid.Parse(chi.URLParam(r, "tenderId"))
	if err != nil {
		http.Error(w, "Invalid tenderId", http.StatusBadRequest)
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
		ServiceType *string `json:"serviceType"`
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

	tender, err := h.Service.UpdateTender(r.Context(), tenderID, service.TenderPatch{
		Name:        input.Name,
		Description: input.Description,
		ServiceType: input.ServiceType,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, tender)
}

func (h *Handler) ChangeTenderStatusHandler(w http.ResponseWriter, r *http.Request) {
	tenderID, err := uuid.Parse(chi.URLParam(r, "tenderId"))
	if err != nil {
		http.Error(w, "Invalid tenderId", http.StatusBadRequest)
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		http.Error(w, "Missing status", http.StatusBadRequest)
		return
	}
	if !models.IsValidTenderStatus(status) {
		http.Error(w, "Invalid status value", http.StatusBadRequest)
		return
	}

	tender, err := h.Service.UpdateTender(r.Context(), tenderID, service.TenderPatch{Status: &status})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, tender)
}

func (h *Handler) RollbackTenderHandler(w http.ResponseWriter, r *http.Request) {
	tenderID, err := uuid.Parse(chi.URLParam(r, "tenderId"))
	if err != nil {
		http.Error(w, "invalid tender ID", http.StatusBadRequest)
		return
	}
	version, err := strconv.Atoi(chi.URLParam(r, "version"))
	if err != nil || version < 1 {
		http.Error(w, "invalid version number", http.StatusBadRequest)
		return
	}

	tender, err := h.Service.RollbackTender(r.Context(), tenderID, version)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, tender)
}

// GetTenderVersionsHandler возвращает историю правок тендера, новые сверху
func (h *Handler) GetTenderVersionsHandler(w http.ResponseWriter, r *http.Request) {
	tenderID, err := uuid.Parse(chi.URLParam(r, "tenderId"))
	if err != nil {
		http.Error(w, "Invalid tenderId", http.StatusBadRequest)
		return
	}

	versions, err := h.Service.ListTenderVersions(r.Context(), tenderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, versions)
}
