package update_inspection_notes

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
	msgNotesTooLong        = "примечание слишком длинное, максимум 500 символов"
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

// Handle PATCH /api/v1/inspections/{inspectionId}/notes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	inspectionID, err := strconv.ParseInt(mux.Vars(r)["inspectionId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /inspections/{inspectionId}/notes - Invalid inspection id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInspectionID)
		return
	}

	var req UpdateNotesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /inspections/%d/notes - Invalid request body: %v", inspectionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateNotes(r.Context(), inspectionID, &models.UpdateNotesRequest{Notes: req.Notes})
	if err != nil {
		switch {
		case errors.Is(err, inspections.ErrInspectionNotFound):
			h.logger.Warn("PATCH /inspections/%d/notes - Inspection not found", inspectionID)
			handlers.RespondNotFound(w, msgInspectionNotFound)

		case errors.Is(err, inspections.ErrInvalidInput):
			h.logger.Warn("PATCH /inspections/%d/notes - Notes too long", inspectionID)
			handlers.RespondBadRequest(w, msgNotesTooLong)

		default:
			h.logger.Error("PATCH /inspections/%d/notes - Failed to update notes: %v", inspectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result, err := h.service.GetByID(r.Context(), inspectionID)
	if err != nil {
		h.logger.Error("PATCH /inspections/%d/notes - Failed to reload inspection: %v", inspectionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /inspections/%d/notes - Notes updated", inspectionID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
