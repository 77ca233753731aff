package create_inspection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	inspectionRepo "github.com/avtomix/ACS-InspectionService/internal/infra/storage/inspection"
	catalogClient "github.com/avtomix/ACS-InspectionService/internal/integrations/carcatalog"
)

// serializationFailure код ошибки PostgreSQL при конфликте сериализации
const serializationFailure = "40001"

// UseCase use case создания заявки на осмотр
type UseCase struct {
	inspectionRepo InspectionRepository
	catalogClient  CarCatalogClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	inspectionRepo InspectionRepository,
	catalogClient CarCatalogClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		inspectionRepo: inspectionRepo,
		catalogClient:  catalogClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет создание заявки на осмотр.
//
// Проверка занятости слота и вставка выполняются единой сериализуемой
// транзакцией: блокирующее чтение занятых слотов плюс частичный уникальный
// индекс в БД гарантируют не более одной активной заявки на (дата, слот)
// при любом числе конкурентных запросов. Наивная пара "запрос - вставка"
// без транзакции здесь недопустима.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateInspection: car=%d, date=%s, slot=%s",
		req.CarID, req.InspectionDate.Format(domain.DateFormat), req.InspectionTime)

	// 1. Валидация и нормализация формы
	now := uc.timeProvider.Now()
	validated, vErr := validateRequest(req, now)
	if vErr != nil {
		uc.logger.Warn("CreateInspection: validation failed: %v", vErr)
		return nil, vErr
	}

	// 2. Автомобиль должен существовать и быть опубликован
	car, err := uc.catalogClient.GetPublishedCar(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCarNotFound) {
			uc.logger.Warn("CreateInspection: car id=%d not found or not listed", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("CreateInspection: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	inspection := &domain.InspectionRequest{
		CarID:          car.ID,
		FullName:       validated.FullName,
		Phone:          validated.Phone,
		Email:          validated.Email,
		InspectionDate: validated.InspectionDate,
		InspectionTime: validated.InspectionTime,
		Status:         domain.StatusPending,
		CarBrand:       car.Brand,
		CarModel:       car.Model,
	}

	var created *domain.InspectionRequest

	// 3. Проверка конфликта и вставка как единое целое
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		busy, err := uc.inspectionRepo.BusySlots(txCtx, validated.InspectionDate)
		if err != nil {
			return fmt.Errorf("%w: failed to get busy slots: %v", ErrInternal, err)
		}

		for _, slot := range busy {
			if slot == validated.InspectionTime {
				return inspectionRepo.ErrSlotTaken
			}
		}

		created, err = uc.inspectionRepo.Create(txCtx, inspection)
		if err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		// Проигравший гонку писатель получает конфликт со свежим списком
		// альтернатив; список пересчитывается после неудачной попытки,
		// а не берется из устаревшего чтения до нее. Исчерпанные повторы
		// сериализации - тоже проигранная гонка, а не внутренняя ошибка.
		if errors.Is(err, inspectionRepo.ErrSlotTaken) || isSerializationFailure(err) {
			uc.logger.Warn("CreateInspection: slot %s on %s already taken",
				validated.InspectionTime, validated.InspectionDate.Format(domain.DateFormat))
			return nil, uc.buildConflict(ctx, validated.InspectionDate)
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateInspection: failed to create inspection: %v", err)
		return nil, fmt.Errorf("%w: failed to create inspection: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateInspection: successfully created inspection id=%d", created.ID)

	return &Response{
		ID:             created.ID,
		CarID:          created.CarID,
		FullName:       created.FullName,
		Phone:          created.Phone,
		Email:          created.Email,
		InspectionDate: created.InspectionDate,
		InspectionTime: created.InspectionTime,
		Status:         string(created.Status),
		CarBrand:       created.CarBrand,
		CarModel:       created.CarModel,
		CreatedAt:      created.CreatedAt,
	}, nil
}

// isSerializationFailure распознает конфликт сериализации PostgreSQL (40001),
// переживший повторы менеджера транзакций
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == serializationFailure
}

// buildConflict пересчитывает свободные слоты после проигранной гонки
func (uc *UseCase) buildConflict(ctx context.Context, date time.Time) error {
	busy, err := uc.inspectionRepo.BusySlots(ctx, date)
	if err != nil {
		uc.logger.Error("CreateInspection: failed to recompute availability after conflict: %v", err)
		// Конфликт важнее, чем список альтернатив - отдаем его без слотов
		return &SlotConflictError{Date: date, AvailableSlots: []domain.SlotLabel{}}
	}

	return &SlotConflictError{Date: date, AvailableSlots: domain.AvailableSlots(busy)}
}
