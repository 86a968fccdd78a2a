package domain

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MinTestimonialRating        = 1
	MaxTestimonialRating        = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, при которых запись занимает свой слот
// Используется при вычислении занятости часов
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusAttended,
}

// TerminalStatuses список статусов, после которых запись не изменяется
var TerminalStatuses = []AppointmentStatus{
	StatusAttended,
	StatusCancelled,
}

// AllStatuses перечень всех допустимых статусов записи
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusAttended,
	StatusCancelled,
}
