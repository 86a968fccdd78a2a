package create_appointment

import (
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	createAppointment "github.com/m04kA/AMC-BookingService/internal/usecase/create_appointment"
	"github.com/m04kA/AMC-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Date          string   `json:"date"`      // "2025-10-15"
	StartTime     string   `json:"startTime"` // "10:00" или "10:00 AM"
	ProcedureName string   `json:"procedureName"`
	Type          string   `json:"type"`          // valoracion | procedimiento
	PaymentMethod string   `json:"paymentMethod"` // Consultorio | Online
	Amount        *float64 `json:"amount,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	ProcedureName string  `json:"procedureName"`
	Type          string  `json:"type"`
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
	AmountPaid    float64 `json:"amountPaid"`
	Paid          bool    `json:"paid"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedBy     string  `json:"createdBy"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Метка времени нормализуется: "9:00 AM" и "09:00" дают один и тот же слот
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64, createdBy domain.CreatedBy) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromLabel(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:        userID,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Phone:         r.Phone,
		Email:         r.Email,
		Date:          date,
		StartTime:     startTime,
		ProcedureName: r.ProcedureName,
		Type:          domain.AppointmentType(r.Type),
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		Amount:        r.Amount,
		Notes:         r.Notes,
		CreatedBy:     createdBy,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		FirstName:     resp.FirstName,
		LastName:      resp.LastName,
		Phone:         resp.Phone,
		Email:         resp.Email,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		ProcedureName: resp.ProcedureName,
		Type:          resp.Type,
		PaymentMethod: resp.PaymentMethod,
		Amount:        resp.Amount,
		AmountPaid:    resp.AmountPaid,
		Paid:          resp.Paid,
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedBy:     resp.CreatedBy,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
