package models

import (
	"errors"
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
)

// ErrUnknownStatus возвращается при неизвестном значении статуса в фильтре
var ErrUnknownStatus = errors.New("inspections.models: unknown status")

// InspectionResponse заявка на осмотр в ответе сервиса
type InspectionResponse struct {
	ID             int64
	CarID          int64
	FullName       string
	Phone          string
	Email          *string
	InspectionDate time.Time
	InspectionTime string
	Status         string
	CarBrand       string
	CarModel       string
	Notes          *string
	CreatedAt      time.Time
}

// InspectionListResponse список заявок
type InspectionListResponse struct {
	Inspections []*InspectionResponse
	Total       int
}

// ListRequest параметры выборки заявок администратором
type ListRequest struct {
	Date   *time.Time
	Status *string
}

// UpdateStatusRequest запрос на переход статуса заявки
type UpdateStatusRequest struct {
	Status string
}

// UpdateNotesRequest запрос на изменение примечаний администратора
type UpdateNotesRequest struct {
	Notes string
}

// FromDomainInspection конвертирует доменную модель в ответ сервиса
func FromDomainInspection(req *domain.InspectionRequest) *InspectionResponse {
	return &InspectionResponse{
		ID:             req.ID,
		CarID:          req.CarID,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Email:          req.Email,
		InspectionDate: req.InspectionDate,
		InspectionTime: string(req.InspectionTime),
		Status:         string(req.Status),
		CarBrand:       req.CarBrand,
		CarModel:       req.CarModel,
		Notes:          req.Notes,
		CreatedAt:      req.CreatedAt,
	}
}

// FromDomainInspectionList конвертирует список доменных моделей
func FromDomainInspectionList(reqs []*domain.InspectionRequest) *InspectionListResponse {
	inspections := make([]*InspectionResponse, len(reqs))
	for i, req := range reqs {
		inspections[i] = FromDomainInspection(req)
	}
	return &InspectionListResponse{
		Inspections: inspections,
		Total:       len(inspections),
	}
}

// ToDomainFilter конвертирует параметры выборки в доменный фильтр
func (r *ListRequest) ToDomainFilter() (domain.InspectionsFilter, error) {
	filter := domain.InspectionsFilter{Date: r.Date}

	if r.Status != nil {
		status := domain.InspectionStatus(*r.Status)
		if !domain.IsKnownStatus(status) {
			return domain.InspectionsFilter{}, ErrUnknownStatus
		}
		filter.Status = &status
	}

	return filter, nil
}
