package get_available_times

import (
	getAvailableTimes "github.com/avtomix/ACS-InspectionService/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model.
// Слоты идут в порядке каталога.
type AvailableTimesResponse struct {
	AvailableTimes []string `json:"available_times"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	availableTimes := make([]string, len(resp.AvailableTimes))
	for i, slot := range resp.AvailableTimes {
		availableTimes[i] = string(slot)
	}
	return &AvailableTimesResponse{AvailableTimes: availableTimes}
}
