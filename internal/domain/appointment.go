package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/AMC-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusAttended  AppointmentStatus = "attended"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentType distinguishes a first-visit valuation from a procedure session
type AppointmentType string

const (
	TypeValuation AppointmentType = "valoracion"
	TypeProcedure AppointmentType = "procedimiento"
)

// PaymentMethod is the payment channel chosen during booking
type PaymentMethod string

const (
	PaymentOnSite PaymentMethod = "Consultorio"
	PaymentOnline PaymentMethod = "Online"
)

// PaymentSubtype is the concrete payment instrument within a channel
type PaymentSubtype string

const (
	SubtypeCash    PaymentSubtype = "Efectivo"
	SubtypeCard    PaymentSubtype = "Tarjeta"
	SubtypeGateway PaymentSubtype = "Pasarela"
)

// CreatedBy records whether the booking came from the patient flow or staff
type CreatedBy string

const (
	CreatedByPatient CreatedBy = "patient"
	CreatedByStaff   CreatedBy = "staff"
)

// Appointment represents a clinic appointment (cita)
type Appointment struct {
	ID     int64
	UserID int64

	// Patient contact data captured by the booking wizard
	FirstName string
	LastName  string
	Phone     string
	Email     string

	// Scheduling
	Date          time.Time
	StartTime     types.TimeString
	ProcedureName string
	Type          AppointmentType

	// Payment
	PaymentMethod  PaymentMethod
	PaymentSubtype *PaymentSubtype
	Amount         float64
	AmountPaid     float64
	Paid           bool

	Status             AppointmentStatus
	CancellationReason *string
	CancelledAt        *time.Time

	Notes     *string
	CreatedBy CreatedBy

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsTerminal returns true if no further mutation is permitted
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusAttended || a.Status == StatusCancelled
}

// CanBeConfirmed returns true if the appointment may transition to confirmed
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status == StatusPending
}

// CanBeReverted returns true if the appointment may be toggled back to pending
func (a *Appointment) CanBeReverted() bool {
	return a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment may be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeConcluded returns true if the appointment may be marked attended.
// Only a confirmed appointment may be concluded.
func (a *Appointment) CanBeConcluded() bool {
	return a.Status == StatusConfirmed
}

// CanBeUpdated returns true if staff may still edit date/time/procedure
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status change follows a legal edge
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch next {
	case StatusConfirmed:
		return a.CanBeConfirmed()
	case StatusPending:
		return a.CanBeReverted()
	case StatusAttended:
		return a.CanBeConcluded()
	case StatusCancelled:
		return a.CanBeCancelled()
	default:
		return false
	}
}

// FullName returns the patient's display name
func (a *Appointment) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

// OccupantLabel names the patient and procedure occupying a slot
func (a *Appointment) OccupantLabel() string {
	return fmt.Sprintf("%s (%s)", a.FullName(), a.ProcedureName)
}

// AppointmentsFilter фильтр для выборки записей клиники
type AppointmentsFilter struct {
	Date            *time.Time         // Конкретная дата (опционально)
	UserID          *int64             // Фильтр по пациенту (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые записи
}
