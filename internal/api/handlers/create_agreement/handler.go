package create_agreement

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avtomix/ACS-InspectionService/internal/api/handlers"
	"github.com/avtomix/ACS-InspectionService/internal/service/agreements"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCarID       = "некорректный идентификатор автомобиля"
	msgValidationFailed   = "форма заполнена с ошибками"
	msgCarNotFound        = "автомобиль не найден"
)

type Handler struct {
	service AgreementsService
	logger  Logger
}

func NewHandler(service AgreementsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/cars/{carId}/agreement
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := strconv.ParseInt(mux.Vars(r)["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /cars/{carId}/agreement - Invalid car id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req CreateAgreementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars/%d/agreement - Invalid request body: %v", carID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), carID, req.ToServiceRequest(carID))
	if err != nil {
		var validationErr *agreements.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /cars/%d/agreement - Validation failed: %v", carID, err)
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)

		case errors.Is(err, agreements.ErrCarNotFound):
			h.logger.Warn("POST /cars/%d/agreement - Car not found", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("POST /cars/%d/agreement - Failed to create agreement: %v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars/%d/agreement - Agreement created: agreement_id=%d, number=%s",
		carID, result.ID, result.Number)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
