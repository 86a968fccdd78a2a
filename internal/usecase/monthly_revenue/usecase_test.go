package monthly_revenue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AMC-BookingService/internal/domain"
)

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (m *mockAppointmentRepo) GetByMonth(_ context.Context, _ int, _ time.Month) ([]*domain.Appointment, error) {
	return m.appointments, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2025, time.October, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_BucketsAndTotals(t *testing.T) {
	repo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			// Посещена и оплачена полностью, первая неделя
			{
				Date: day(3), Status: domain.StatusAttended,
				PaymentMethod: domain.PaymentOnSite,
				Amount:        100000, AmountPaid: 100000, Paid: true,
			},
			// Посещена и оплачена, третья неделя, онлайн
			{
				Date: day(20), Status: domain.StatusAttended,
				PaymentMethod: domain.PaymentOnline,
				Amount:        80000, AmountPaid: 80000, Paid: true,
			},
			// Посещена с частичной оплатой: в отрезки не попадает,
			// но собранная сумма учитывается в итогах
			{
				Date: day(10), Status: domain.StatusAttended,
				PaymentMethod: domain.PaymentOnSite,
				Amount:        60000, AmountPaid: 20000, Paid: false,
			},
			// Подтверждена, но не посещена: только ожидаемая выручка
			{
				Date: day(25), Status: domain.StatusConfirmed,
				PaymentMethod: domain.PaymentOnSite,
				Amount:        50000,
			},
			// Отменена: только ожидаемая выручка
			{
				Date: day(28), Status: domain.StatusCancelled,
				PaymentMethod: domain.PaymentOnline,
				Amount:        40000,
			},
		},
	}

	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: time.October})
	require.NoError(t, err)

	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, time.October, resp.Month)

	require.Len(t, resp.Buckets, 4)
	assert.Equal(t, "1-7", resp.Buckets[0].Label)
	assert.Equal(t, "8-14", resp.Buckets[1].Label)
	assert.Equal(t, "15-21", resp.Buckets[2].Label)
	assert.Equal(t, "22-31", resp.Buckets[3].Label)

	assert.Equal(t, 100000.0, resp.Buckets[0].Total)
	assert.Equal(t, 0.0, resp.Buckets[1].Total, "partially paid appointment stays out of the buckets")
	assert.Equal(t, 80000.0, resp.Buckets[2].Total)
	assert.Equal(t, 0.0, resp.Buckets[3].Total)

	assert.Equal(t, 330000.0, resp.ExpectedTotal)
	assert.Equal(t, 120000.0, resp.OnSiteTotal)
	assert.Equal(t, 80000.0, resp.OnlineTotal)
	assert.Equal(t, 200000.0, resp.CollectedTotal)
}

func TestExecute_ChannelFilterAppliesToBuckets(t *testing.T) {
	repo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				Date: day(3), Status: domain.StatusAttended,
				PaymentMethod: domain.PaymentOnSite,
				Amount:        100000, AmountPaid: 100000, Paid: true,
			},
			{
				Date: day(20), Status: domain.StatusAttended,
				PaymentMethod: domain.PaymentOnline,
				Amount:        80000, AmountPaid: 80000, Paid: true,
			},
		},
	}

	uc := NewUseCase(repo, nopLogger{})

	method := domain.PaymentOnline
	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: time.October, Method: &method})
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.Buckets[0].Total, "other channel stays out of the buckets")
	assert.Equal(t, 80000.0, resp.Buckets[2].Total)

	// Итоги месяца остаются по всем каналам
	assert.Equal(t, 100000.0, resp.OnSiteTotal)
	assert.Equal(t, 80000.0, resp.OnlineTotal)
	assert.Equal(t, 180000.0, resp.CollectedTotal)
}

func TestExecute_InvalidChannel(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{}, nopLogger{})

	method := domain.PaymentMethod("Cripto")
	_, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: time.October, Method: &method})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PaidFlagWithoutRecordedPayments(t *testing.T) {
	// Старые записи могут нести признак оплаты без суммы платежей,
	// собранная сумма в этом случае равна полной стоимости
	repo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				Date: day(5), Status: domain.StatusAttended,
				PaymentMethod: domain.PaymentOnline,
				Amount:        90000, AmountPaid: 0, Paid: true,
			},
		},
	}

	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: time.October})
	require.NoError(t, err)

	assert.Equal(t, 90000.0, resp.Buckets[0].Total)
	assert.Equal(t, 90000.0, resp.OnlineTotal)
	assert.Equal(t, 90000.0, resp.CollectedTotal)
}

func TestExecute_LastBucketCoversMonthEnd(t *testing.T) {
	repo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				Date:          time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
				Status:        domain.StatusAttended,
				PaymentMethod: domain.PaymentOnSite,
				Amount:        50000, AmountPaid: 50000, Paid: true,
			},
		},
	}

	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: time.February})
	require.NoError(t, err)

	assert.Equal(t, "22-28", resp.Buckets[3].Label)
	assert.Equal(t, 50000.0, resp.Buckets[3].Total)
}

func TestExecute_InvalidPeriod(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Year: 1800, Month: time.May})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Year: 2025, Month: time.Month(13)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: time.October})
	assert.ErrorIs(t, err, ErrInternal)
}
