package inspection

import "errors"

var (
	// ErrInspectionNotFound возвращается, когда заявка не найдена
	ErrInspectionNotFound = errors.New("inspection.repository: inspection request not found")

	// ErrSlotTaken возвращается при нарушении уникальности активной заявки
	// на пару (дата, слот) - частичный уникальный индекс в БД
	ErrSlotTaken = errors.New("inspection.repository: slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("inspection.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("inspection.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("inspection.repository: failed to scan row")
)
