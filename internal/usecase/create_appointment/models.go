package create_appointment

import (
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID int64 // ID пользователя, создающего запись

	// Контактные данные пациента из мастера бронирования
	FirstName string
	LastName  string
	Phone     string
	Email     string

	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала (например, "10:00")
	ProcedureName string           // Название процедуры из каталога
	Type          domain.AppointmentType

	PaymentMethod domain.PaymentMethod
	Amount        *float64 // Стоимость; nil - подставляется цена из каталога

	Notes     *string // Дополнительные заметки (опционально)
	CreatedBy domain.CreatedBy
}

// Response модель ответа с созданной записью
type Response struct {
	ID     int64
	UserID int64

	FirstName string
	LastName  string
	Phone     string
	Email     string

	Date          time.Time
	StartTime     types.TimeString
	ProcedureName string
	Type          string

	PaymentMethod string
	Amount        float64
	AmountPaid    float64
	Paid          bool

	Status    string
	Notes     *string
	CreatedBy string

	CreatedAt time.Time
	UpdatedAt time.Time
}
