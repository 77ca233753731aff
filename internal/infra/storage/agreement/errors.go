package agreement

import "errors"

var (
	// ErrAgreementNotFound возвращается, когда заявка на договор не найдена
	ErrAgreementNotFound = errors.New("agreement.repository: agreement not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("agreement.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("agreement.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("agreement.repository: failed to scan row")
)
