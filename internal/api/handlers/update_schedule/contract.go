package update_schedule

import (
	"context"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
	ToggleSlot(ctx context.Context, req *models.ToggleSlotRequest) error
	DeleteOverride(ctx context.Context, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
