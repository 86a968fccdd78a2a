package create_appointment

import "errors"

var (
	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrSlotNotFound возвращается, когда время не входит в расписание на дату
	ErrSlotNotFound = errors.New("create_appointment: slot is not in the schedule")

	// ErrSlotNotAvailable возвращается, когда слот отключен в расписании
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrSlotTaken возвращается, когда слот уже занят другой записью
	ErrSlotTaken = errors.New("create_appointment: slot is already booked")

	// ErrSlotBlocked возвращается, когда час заблокирован вручную
	ErrSlotBlocked = errors.New("create_appointment: slot is blocked")

	// ErrTooLateToBook возвращается при попытке записаться на прошедший час
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
