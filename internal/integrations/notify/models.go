package notify

// Event тип события жизненного цикла записи
type Event string

const (
	EventAppointmentCreated   Event = "appointment.created"
	EventAppointmentConfirmed Event = "appointment.confirmed"
	EventAppointmentCancelled Event = "appointment.cancelled"
	EventAppointmentUpdated   Event = "appointment.updated"
)

// AppointmentEvent тело уведомления о событии записи
type AppointmentEvent struct {
	Event         Event  `json:"event"`
	AppointmentID int64  `json:"appointment_id"`
	PatientName   string `json:"patient_name"`
	PatientPhone  string `json:"patient_phone"`
	PatientEmail  string `json:"patient_email"`
	ProcedureName string `json:"procedure_name"`
	Date          string `json:"date"`       // Формат YYYY-MM-DD
	StartTime     string `json:"start_time"` // Формат HH:MM
	Reason        string `json:"reason,omitempty"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
