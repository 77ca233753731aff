package list_inspections

import (
	"errors"
	"net/http"
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/api/handlers"
	"github.com/avtomix/ACS-InspectionService/internal/domain"
	"github.com/avtomix/ACS-InspectionService/internal/service/inspections"
	"github.com/avtomix/ACS-InspectionService/internal/service/inspections/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus = "неизвестный статус заявки"
)

type Handler struct {
	service InspectionsService
	logger  Logger
}

func NewHandler(service InspectionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/inspections?date=YYYY-MM-DD&status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{}

	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		date, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /inspections - Invalid date %q: %v", rawDate, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if rawStatus := r.URL.Query().Get("status"); rawStatus != "" {
		req.Status = &rawStatus
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, inspections.ErrInvalidInput):
			h.logger.Warn("GET /inspections - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("GET /inspections - Failed to list inspections: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /inspections - Returned %d inspections", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
