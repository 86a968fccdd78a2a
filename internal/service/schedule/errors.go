package schedule

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден в расписании
	ErrSlotNotFound = errors.New("slot not found")

	// ErrOverrideNotFound возвращается, когда на дату нет отдельного расписания
	ErrOverrideNotFound = errors.New("schedule override not found")

	// ErrSlotBusy возвращается при попытке освободить слот, занятый записью
	// Слот с активной записью освобождается только отменой записи
	ErrSlotBusy = errors.New("slot is occupied by an appointment")

	// ErrBlockNotFound возвращается, когда блокировка часа не найдена
	ErrBlockNotFound = errors.New("hour block not found")

	// ErrDuplicateBlock возвращается при повторной блокировке того же часа
	ErrDuplicateBlock = errors.New("hour block already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
