package get_inspection

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avtomix/ACS-InspectionService/internal/api/handlers"
	"github.com/avtomix/ACS-InspectionService/internal/service/inspections"
)

const (
	msgInvalidInspectionID = "некорректный идентификатор заявки"
	msgInspectionNotFound  = "заявка на осмотр не найдена"
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

// Handle GET /api/v1/inspections/{inspectionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	inspectionID, err := strconv.ParseInt(mux.Vars(r)["inspectionId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /inspections/{inspectionId} - Invalid inspection id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInspectionID)
		return
	}

	result, err := h.service.GetByID(r.Context(), inspectionID)
	if err != nil {
		switch {
		case errors.Is(err, inspections.ErrInspectionNotFound):
			h.logger.Warn("GET /inspections/%d - Inspection not found", inspectionID)
			handlers.RespondNotFound(w, msgInspectionNotFound)
		default:
			h.logger.Error("GET /inspections/%d - Failed to get inspection: %v", inspectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
