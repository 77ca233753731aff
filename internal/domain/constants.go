package domain

// Форматы даты и времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения на поля заявок
const (
	MaxFullNameLength = 200
	MaxNotesLength    = 500
)

// ActiveStatuses статусы, удерживающие слот.
// Используются в запросах занятости и в частичном уникальном индексе БД.
var ActiveStatuses = []InspectionStatus{
	StatusPending,
	StatusConfirmed,
}
