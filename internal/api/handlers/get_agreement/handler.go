package get_agreement

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avtomix/ACS-InspectionService/internal/api/handlers"
	"github.com/avtomix/ACS-InspectionService/internal/service/agreements"
)

const (
	msgInvalidAgreementID = "некорректный идентификатор договора"
	msgAgreementNotFound  = "договор не найден"
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

// Handle GET /api/v1/agreements/{agreementId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agreementID, err := strconv.ParseInt(mux.Vars(r)["agreementId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agreements/{agreementId} - Invalid agreement id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgreementID)
		return
	}

	result, err := h.service.GetByID(r.Context(), agreementID)
	if err != nil {
		switch {
		case errors.Is(err, agreements.ErrAgreementNotFound):
			h.logger.Warn("GET /agreements/%d - Agreement not found", agreementID)
			handlers.RespondNotFound(w, msgAgreementNotFound)
		default:
			h.logger.Error("GET /agreements/%d - Failed to get agreement: %v", agreementID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
