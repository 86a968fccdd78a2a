package get_schedule

import (
	"context"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetEffective(ctx context.Context, date time.Time) (*models.ScheduleResponse, error)
	GetGlobal(ctx context.Context) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
