package monthly_revenue

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
)

// UseCase use case для расчета выручки клиники за месяц
type UseCase struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(apptRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// Execute выполняет use case расчета выручки
// Собранная выручка считается по посещенным и оплаченным записям,
// ожидаемая - по стоимости всех записей месяца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MonthlyRevenue: year=%d, month=%d", req.Year, req.Month)

	if req.Year < 2000 || req.Year > 2100 {
		uc.logger.Warn("MonthlyRevenue: invalid year=%d", req.Year)
		return nil, fmt.Errorf("%w: invalid year", ErrInvalidInput)
	}
	if req.Month < time.January || req.Month > time.December {
		uc.logger.Warn("MonthlyRevenue: invalid month=%d", req.Month)
		return nil, fmt.Errorf("%w: invalid month", ErrInvalidInput)
	}
	if req.Method != nil && *req.Method != domain.PaymentOnSite && *req.Method != domain.PaymentOnline {
		uc.logger.Warn("MonthlyRevenue: invalid payment method=%s", *req.Method)
		return nil, fmt.Errorf("%w: invalid payment method", ErrInvalidInput)
	}

	appointments, err := uc.apptRepo.GetByMonth(ctx, req.Year, req.Month)
	if err != nil {
		uc.logger.Error("MonthlyRevenue: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	lastDay := daysInMonth(req.Year, req.Month)
	buckets := makeBuckets(lastDay)

	resp := &Response{
		Year:  req.Year,
		Month: req.Month,
	}

	for _, appt := range appointments {
		// Ожидаемая выручка считается по всем записям месяца
		resp.ExpectedTotal += appt.Amount

		if appt.Status != domain.StatusAttended {
			continue
		}

		collected := collectedAmount(appt)

		switch appt.PaymentMethod {
		case domain.PaymentOnSite:
			resp.OnSiteTotal += collected
		case domain.PaymentOnline:
			resp.OnlineTotal += collected
		}

		// В отрезки месяца попадают только посещенные и оплаченные записи,
		// при заданном канале - только записи этого канала
		if !appt.Paid {
			continue
		}
		if req.Method != nil && appt.PaymentMethod != *req.Method {
			continue
		}

		day := appt.Date.Day()
		for i := range buckets {
			if day >= buckets[i].StartDay && day <= buckets[i].EndDay {
				buckets[i].Total += collected
				break
			}
		}
	}

	resp.Buckets = buckets
	resp.CollectedTotal = resp.OnSiteTotal + resp.OnlineTotal

	uc.logger.Info("MonthlyRevenue: %d appointments, expected=%.2f, collected=%.2f",
		len(appointments), resp.ExpectedTotal, resp.CollectedTotal)

	return resp, nil
}

// collectedAmount возвращает собранную сумму по записи
// Нулевая сумма платежей при выставленном признаке оплаты означает,
// что оплата прошла на полную стоимость
func collectedAmount(appt *domain.Appointment) float64 {
	if appt.AmountPaid > 0 {
		return appt.AmountPaid
	}
	if appt.Paid {
		return appt.Amount
	}
	return 0
}

// makeBuckets строит отрезки месяца: 1-7, 8-14, 15-21 и 22-конец
func makeBuckets(lastDay int) []Bucket {
	return []Bucket{
		{Label: "1-7", StartDay: 1, EndDay: 7},
		{Label: "8-14", StartDay: 8, EndDay: 14},
		{Label: "15-21", StartDay: 15, EndDay: 21},
		{Label: fmt.Sprintf("22-%d", lastDay), StartDay: 22, EndDay: lastDay},
	}
}

// daysInMonth возвращает число дней в месяце
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
