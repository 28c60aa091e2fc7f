package list_services

import (
	"net/http"

	"github.com/shidenryu/booking-service/internal/api/handlers"
	"github.com/shidenryu/booking-service/internal/domain"
)

type Handler struct {
	useCase ListServicesUseCase
	logger  Logger
}

func NewHandler(useCase ListServicesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []domain.Service `json:"services"`
	Fallback bool             `json:"fallback,omitempty"`
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Catalog served: count=%d, fallback=%v", len(result.Services), result.Fallback)
	handlers.RespondJSON(w, http.StatusOK, ServicesResponse{
		Services: result.Services,
		Fallback: result.Fallback,
	})
}
