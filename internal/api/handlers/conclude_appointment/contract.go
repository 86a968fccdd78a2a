package conclude_appointment

import (
	"context"

	"github.com/m04kA/AMC-BookingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	Conclude(ctx context.Context, id int64, req *models.ConcludeAppointmentRequest) (*models.ConcludeAppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
