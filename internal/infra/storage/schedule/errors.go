package schedule

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда для даты нет собственного расписания
	ErrOverrideNotFound = errors.New("schedule.repository: override not found")

	// ErrSlotNotFound возвращается, когда слот отсутствует в расписании
	ErrSlotNotFound = errors.New("schedule.repository: slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
