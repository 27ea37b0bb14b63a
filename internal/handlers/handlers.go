package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"tenderhub/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Handler оборачивает ядро для HTTP-слоя
type Handler struct {
	Service  ServiceInterface
	validate *validator.Validate
}

// NewHandler создает новый Handler
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{
		Service:  svc,
		validate: validator.New(),
	}
}

// PingHandler отвечает "ok" для проверки сервера
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// writeError переводит ошибки ядра в HTTP-статусы
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrPermissionDenied):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

type createTenderRequest struct {
	Name            string    `json:"name" validate:"required,max=100"`
	Description     string    `json:"description" validate:"required,max=500"`
	ServiceType     string    `json:"serviceType" validate:"omitempty,oneof=Construction Delivery Manufacture"`
	Status          string    `json:"status" validate:"omitempty,oneof=Created Published Closed"`
	OrganizationID  uuid.UUID `json:"organizationId" validate:"required"`
	CreatorUsername string    `json:"creatorUsername" validate:"required"`
}

// CreateTenderHandler обрабатывает POST /api/tenders/new запрос
func (h *Handler) CreateTenderHandler(w http.ResponseWriter, r *http.Request) {
	// Ограничение размера тела, чтобы избежать DoS
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req createTenderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tender, err := h.Service.CreateTender(r.Context(), service.CreateTenderInput{
		Name:            req.Name,
		Description:     req.Description,
		ServiceType:     req.ServiceType,
		Status:          req.Status,
		OrganizationID:  req.OrganizationID,
		CreatorUsername: req.CreatorUsername,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tender)
}
