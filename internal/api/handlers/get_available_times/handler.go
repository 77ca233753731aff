package get_available_times

import (
	"net/http"
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/api/handlers"
	"github.com/avtomix/ACS-InspectionService/internal/domain"
	getAvailableTimes "github.com/avtomix/ACS-InspectionService/internal/usecase/get_available_times"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-times?date=YYYY-MM-DD
//
// Эндпоинт дергается фронтендом при каждой смене даты в форме, поэтому
// отсутствующая или кривая дата не считается ошибкой: отдаем пустой
// список, форма просто не покажет слотов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /available-times - Invalid date %q: %v", rawDate, err)
		handlers.RespondJSON(w, http.StatusOK, &AvailableTimesResponse{AvailableTimes: []string{}})
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /available-times - Failed to get available times: date=%s, error=%v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /available-times - date=%s, available=%d", rawDate, len(result.AvailableTimes))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
