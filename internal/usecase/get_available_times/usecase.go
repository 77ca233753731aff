package get_available_times

import (
	"context"
	"fmt"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
)

// UseCase use case получения свободных слотов на дату
type UseCase struct {
	inspectionRepo InspectionRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(inspectionRepo InspectionRepository, logger Logger) *UseCase {
	return &UseCase{
		inspectionRepo: inspectionRepo,
		logger:         logger,
	}
}

// Execute возвращает свободные слоты: каталог минус занятые активными
// заявками, с сохранением порядка каталога. Для даты без заявок
// возвращается полный каталог.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	busy, err := uc.inspectionRepo.BusySlots(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get busy slots for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get busy slots: %v", ErrInternal, err)
	}

	available := domain.AvailableSlots(busy)

	uc.logger.Info("GetAvailableTimes: date=%s, %d of %d slots available",
		req.Date.Format(domain.DateFormat), len(available), len(domain.AllSlots()))

	return &Response{
		Date:           req.Date,
		AvailableTimes: available,
	}, nil
}
