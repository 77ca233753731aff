package domain

// SlotLabel метка временного слота осмотра (например, "09:00-10:00")
type SlotLabel string

// timeSlots фиксированный список слотов осмотра на любой рабочий день.
// Задаётся один раз, не зависит от даты и никогда не изменяется в рантайме.
var timeSlots = []SlotLabel{
	"09:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"12:00-13:00",
	"13:00-14:00",
	"14:00-15:00",
	"15:00-16:00",
	"16:00-17:00",
}

// AllSlots возвращает копию полного списка слотов в каноническом порядке
func AllSlots() []SlotLabel {
	slots := make([]SlotLabel, len(timeSlots))
	copy(slots, timeSlots)
	return slots
}

// IsValidSlot проверяет, что метка слота входит в фиксированный список
func IsValidSlot(label SlotLabel) bool {
	for _, slot := range timeSlots {
		if slot == label {
			return true
		}
	}
	return false
}

// AvailableSlots возвращает слоты, не занятые активными заявками.
// Порядок совпадает с порядком каталога, дубликаты в busy на результат не влияют.
func AvailableSlots(busy []SlotLabel) []SlotLabel {
	busySet := make(map[SlotLabel]struct{}, len(busy))
	for _, slot := range busy {
		busySet[slot] = struct{}{}
	}

	available := make([]SlotLabel, 0, len(timeSlots))
	for _, slot := range timeSlots {
		if _, taken := busySet[slot]; !taken {
			available = append(available, slot)
		}
	}
	return available
}
