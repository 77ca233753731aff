package inspections

import (
	"context"
	"errors"
	"fmt"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	inspectionRepo "github.com/avtomix/ACS-InspectionService/internal/infra/storage/inspection"
	"github.com/avtomix/ACS-InspectionService/internal/service/inspections/models"
)

// Service административный сервис заявок на осмотр: просмотр,
// переходы статусов и примечания. Клиентских переходов статусов нет.
type Service struct {
	inspectionRepo InspectionRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(inspectionRepo InspectionRepository, logger Logger) *Service {
	return &Service{
		inspectionRepo: inspectionRepo,
		logger:         logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.InspectionResponse, error) {
	booking, err := s.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, inspectionRepo.ErrInspectionNotFound) {
			s.logger.Warn("GetByID: inspection id=%d not found", id)
			return nil, ErrInspectionNotFound
		}
		s.logger.Error("GetByID: repository error for inspection id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInspection(booking), nil
}

// List получает заявки с фильтрацией по дате и статусу, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.InspectionListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	inspections, err := s.inspectionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d inspections", len(inspections))
	return models.FromDomainInspectionList(inspections), nil
}

// UpdateStatus выполняет переход статуса заявки.
// Допустимы только переходы из белого списка: pending -> confirmed,
// pending -> cancelled, confirmed -> cancelled, confirmed -> completed.
// Недопустимый переход отклоняется без изменения заявки.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: inspection id=%d -> status=%s", id, req.Status)

	newStatus := domain.InspectionStatus(req.Status)
	if !domain.IsKnownStatus(newStatus) {
		s.logger.Warn("UpdateStatus: unknown status=%s for inspection id=%d", req.Status, id)
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	inspection, err := s.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, inspectionRepo.ErrInspectionNotFound) {
			s.logger.Warn("UpdateStatus: inspection id=%d not found", id)
			return ErrInspectionNotFound
		}
		s.logger.Error("UpdateStatus: repository error for inspection id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(inspection.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for inspection id=%d",
			inspection.Status, newStatus, id)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, inspection.Status, newStatus)
	}

	if err := s.inspectionRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, inspectionRepo.ErrInspectionNotFound) {
			return ErrInspectionNotFound
		}
		s.logger.Error("UpdateStatus: repository error for inspection id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: inspection id=%d transitioned %s -> %s", id, inspection.Status, newStatus)
	return nil
}

// UpdateNotes обновляет примечания администратора.
// Примечания изменяются независимо от статуса заявки.
func (s *Service) UpdateNotes(ctx context.Context, id int64, req *models.UpdateNotesRequest) error {
	if len(req.Notes) > domain.MaxNotesLength {
		s.logger.Warn("UpdateNotes: notes too long (%d chars) for inspection id=%d", len(req.Notes), id)
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if err := s.inspectionRepo.UpdateNotes(ctx, id, req.Notes); err != nil {
		if errors.Is(err, inspectionRepo.ErrInspectionNotFound) {
			s.logger.Warn("UpdateNotes: inspection id=%d not found", id)
			return ErrInspectionNotFound
		}
		s.logger.Error("UpdateNotes: repository error for inspection id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateNotes - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateNotes: updated notes for inspection id=%d", id)
	return nil
}
