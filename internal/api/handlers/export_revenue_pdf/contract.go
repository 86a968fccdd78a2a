package export_revenue_pdf

import (
	"context"

	"github.com/m04kA/AMC-BookingService/internal/usecase/monthly_revenue"
)

type MonthlyRevenueUseCase interface {
	Execute(ctx context.Context, req *monthly_revenue.Request) (*monthly_revenue.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
