package create_inspection

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avtomix/ACS-InspectionService/internal/api/handlers"
	"github.com/avtomix/ACS-InspectionService/internal/domain"
	createInspection "github.com/avtomix/ACS-InspectionService/internal/usecase/create_inspection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCarID       = "некорректный идентификатор автомобиля"
	msgInvalidDate        = "некорректный формат даты осмотра, ожидается YYYY-MM-DD"
	msgValidationFailed   = "форма заполнена с ошибками"
	msgSlotTaken          = "выбранное время уже занято, выберите другое"
	msgCarNotFound        = "автомобиль не найден"
)

type Handler struct {
	useCase CreateInspectionUseCase
	logger  Logger
}

func NewHandler(useCase CreateInspectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cars/{carId}/inspection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := strconv.ParseInt(mux.Vars(r)["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /cars/{carId}/inspection - Invalid car id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req CreateInspectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars/%d/inspection - Invalid request body: %v", carID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(carID)
	if err != nil {
		// Кривая дата - такая же ошибка заполнения формы, как и остальные:
		// клиент должен получить ее с привязкой к полю
		h.logger.Warn("POST /cars/%d/inspection - Failed to parse date: %v", carID, err)
		handlers.RespondValidationError(w, msgValidationFailed, map[string]string{
			"inspection_date": msgInvalidDate,
		})
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createInspection.ValidationError
		var conflictErr *createInspection.SlotConflictError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /cars/%d/inspection - Validation failed: %v", carID, err)
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)

		case errors.As(err, &conflictErr):
			// 409 с актуальным списком свободных слотов, пересчитанным
			// после проигранной гонки
			h.logger.Warn("POST /cars/%d/inspection - Slot taken: date=%s, time=%s",
				carID, req.InspectionDate, req.InspectionTime)
			handlers.RespondJSON(w, http.StatusConflict, buildConflictResponse(conflictErr))

		case errors.Is(err, createInspection.ErrSlotTaken):
			h.logger.Warn("POST /cars/%d/inspection - Slot taken: date=%s, time=%s",
				carID, req.InspectionDate, req.InspectionTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createInspection.ErrCarNotFound):
			h.logger.Warn("POST /cars/%d/inspection - Car not found", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("POST /cars/%d/inspection - Failed to create inspection: %v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /cars/%d/inspection - Inspection created: inspection_id=%d, date=%s, time=%s",
		carID, result.ID, req.InspectionDate, req.InspectionTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

func buildConflictResponse(conflictErr *createInspection.SlotConflictError) *SlotConflictResponse {
	availableTimes := make([]string, len(conflictErr.AvailableSlots))
	for i, slot := range conflictErr.AvailableSlots {
		availableTimes[i] = string(slot)
	}
	return &SlotConflictResponse{
		Code:           http.StatusConflict,
		Message:        msgSlotTaken,
		Date:           conflictErr.Date.Format(domain.DateFormat),
		AvailableTimes: availableTimes,
	}
}
