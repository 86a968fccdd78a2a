package models

import (
	"errors"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetUserAppointmentsRequest запрос на получение записей пациента
type GetUserAppointmentsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// ListAppointmentsRequest запрос на получение записей клиники с фильтрацией
type ListAppointmentsRequest struct {
	Date            *time.Time `json:"date,omitempty"`            // Конкретная дата (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateAppointmentRequest запрос на перенос или правку записи
// Изменяются только переданные поля
type UpdateAppointmentRequest struct {
	Date           *string  `json:"date,omitempty"`      // "2025-10-15"
	StartTime      *string  `json:"startTime,omitempty"` // "10:00" или "10:00 AM"
	ProcedureName  *string  `json:"procedureName,omitempty"`
	PaymentSubtype *string  `json:"paymentSubtype,omitempty"` // Efectivo | Tarjeta | Pasarela
	Amount         *float64 `json:"amount,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ConcludeAppointmentRequest запрос на завершение записи с фиксацией оплаты
type ConcludeAppointmentRequest struct {
	PaymentSubtype string   `json:"paymentSubtype"`   // Efectivo | Tarjeta | Pasarela
	NewPayment     float64  `json:"newPayment"`       // Платеж, внесенный при завершении
	Amount         *float64 `json:"amount,omitempty"` // Скорректированная итоговая стоимость (опционально)
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`

	Date          string `json:"date"`      // "2025-10-15"
	StartTime     string `json:"startTime"` // "10:00"
	ProcedureName string `json:"procedureName"`
	Type          string `json:"type"`

	PaymentMethod  string  `json:"paymentMethod"`
	PaymentSubtype *string `json:"paymentSubtype,omitempty"`
	Amount         float64 `json:"amount"`
	AmountPaid     float64 `json:"amountPaid"`
	Paid           bool    `json:"paid"`

	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	Notes     *string `json:"notes,omitempty"`
	CreatedBy string  `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// PaymentBreakdownResponse расчет оплаты, возвращаемый при завершении записи
type PaymentBreakdownResponse struct {
	PaidSoFar    float64 `json:"paidSoFar"`
	RemainingDue float64 `json:"remainingDue"`
	RefundDue    float64 `json:"refundDue"`
	Percentage   float64 `json:"percentage"`
}

// ConcludeAppointmentResponse ответ на завершение записи
type ConcludeAppointmentResponse struct {
	Appointment AppointmentResponse      `json:"appointment"`
	Payment     PaymentBreakdownResponse `json:"payment"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		UserID:             a.UserID,
		FirstName:          a.FirstName,
		LastName:           a.LastName,
		Phone:              a.Phone,
		Email:              a.Email,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		ProcedureName:      a.ProcedureName,
		Type:               string(a.Type),
		PaymentMethod:      string(a.PaymentMethod),
		Amount:             a.Amount,
		AmountPaid:         a.AmountPaid,
		Paid:               a.Paid,
		Status:             string(a.Status),
		CancellationReason: a.CancellationReason,
		Notes:              a.Notes,
		CreatedBy:          string(a.CreatedBy),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.PaymentSubtype != nil {
		subtype := string(*a.PaymentSubtype)
		resp.PaymentSubtype = &subtype
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// FromDomainPaymentBreakdown конвертирует расчет оплаты в DTO
func FromDomainPaymentBreakdown(b domain.PaymentBreakdown) PaymentBreakdownResponse {
	return PaymentBreakdownResponse{
		PaidSoFar:    b.PaidSoFar,
		RemainingDue: b.RemainingDue,
		RefundDue:    b.RefundDue,
		Percentage:   b.Percentage,
	}
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	for _, valid := range domain.AllStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// ToDomainPaymentSubtype конвертирует строку в domain.PaymentSubtype с валидацией
func ToDomainPaymentSubtype(subtype string) (domain.PaymentSubtype, error) {
	s := domain.PaymentSubtype(subtype)

	switch s {
	case domain.SubtypeCash, domain.SubtypeCard, domain.SubtypeGateway:
		return s, nil
	}

	return "", errors.New("invalid payment subtype")
}

// ParseStartTime нормализует метку времени запроса в канонический вид
func ParseStartTime(label string) (types.TimeString, error) {
	return types.NewTimeStringFromLabel(label)
}
