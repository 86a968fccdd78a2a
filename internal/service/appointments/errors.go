package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда запись не может быть отменена
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrCannotConclude возвращается, когда запись не может быть завершена
	// Завершить можно только подтвержденную запись
	ErrCannotConclude = errors.New("appointment cannot be concluded")

	// ErrCannotUpdate возвращается при попытке изменить завершенную или отмененную запись
	ErrCannotUpdate = errors.New("appointment cannot be updated")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrPaymentSubtypeRequired возвращается при завершении записи без способа оплаты
	ErrPaymentSubtypeRequired = errors.New("payment subtype is required to conclude")

	// ErrSlotBusy возвращается при переносе записи на занятый слот
	ErrSlotBusy = errors.New("slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
