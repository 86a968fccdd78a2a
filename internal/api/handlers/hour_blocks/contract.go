package hour_blocks

import (
	"context"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.HourBlockResponse, error)
	ListBlocks(ctx context.Context, date time.Time) (*models.HourBlockListResponse, error)
	DeleteBlock(ctx context.Context, date time.Time, blockTime string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
