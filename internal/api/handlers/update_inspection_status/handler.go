package update_inspection_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avtomix/ACS-InspectionService/internal/api/handlers"
	"github.com/avtomix/ACS-InspectionService/internal/service/inspections"
	"github.com/avtomix/ACS-InspectionService/internal/service/inspections/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInspectionID = "некорректный идентификатор заявки"
	msgInspectionNotFound  = "заявка на осмотр не найдена"
	msgUnknownStatus       = "неизвестный статус заявки"
	msgInvalidTransition   = "недопустимый переход статуса"
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

// Handle PATCH /api/v1/inspections/{inspectionId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	inspectionID, err := strconv.ParseInt(mux.Vars(r)["inspectionId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /inspections/{inspectionId}/status - Invalid inspection id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInspectionID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /inspections/%d/status - Invalid request body: %v", inspectionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateStatus(r.Context(), inspectionID, &models.UpdateStatusRequest{Status: req.Status})
	if err != nil {
		switch {
		case errors.Is(err, inspections.ErrInspectionNotFound):
			h.logger.Warn("PATCH /inspections/%d/status - Inspection not found", inspectionID)
			handlers.RespondNotFound(w, msgInspectionNotFound)

		case errors.Is(err, inspections.ErrInvalidInput):
			h.logger.Warn("PATCH /inspections/%d/status - Unknown status %q", inspectionID, req.Status)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		case errors.Is(err, inspections.ErrInvalidTransition):
			h.logger.Warn("PATCH /inspections/%d/status - Invalid transition to %q", inspectionID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /inspections/%d/status - Failed to update status: %v", inspectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result, err := h.service.GetByID(r.Context(), inspectionID)
	if err != nil {
		h.logger.Error("PATCH /inspections/%d/status - Failed to reload inspection: %v", inspectionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /inspections/%d/status - Status updated to %q", inspectionID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
