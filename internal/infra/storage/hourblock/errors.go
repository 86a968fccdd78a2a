package hourblock

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блокировка часа не найдена
	ErrBlockNotFound = errors.New("hourblock.repository: hour block not found")

	// ErrDuplicateBlock возвращается при попытке заблокировать уже заблокированный час
	ErrDuplicateBlock = errors.New("hourblock.repository: hour already blocked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hourblock.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hourblock.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hourblock.repository: failed to scan row")
)
