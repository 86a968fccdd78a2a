package appointments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	apptRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/AMC-BookingService/internal/integrations/notify"
	"github.com/m04kA/AMC-BookingService/internal/service/appointments/models"
	"github.com/m04kA/AMC-BookingService/pkg/ptr"
)

// Моки в стиле in-memory хранилища

type mockApptRepo struct {
	appointments map[int64]*domain.Appointment

	concludeCalls int
	statusCalls   []domain.AppointmentStatus
}

func newMockApptRepo(appointments ...*domain.Appointment) *mockApptRepo {
	m := &mockApptRepo{appointments: make(map[int64]*domain.Appointment)}
	for _, appt := range appointments {
		m.appointments[appt.ID] = appt
	}
	return m
}

func (m *mockApptRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := m.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (m *mockApptRepo) GetByUserID(_ context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range m.appointments {
		if appt.UserID != userID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (m *mockApptRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range m.appointments {
		if filter.Date != nil && !appt.Date.Equal(*filter.Date) {
			continue
		}
		if !filter.IncludeInactive && !appt.IsActive() {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (m *mockApptRepo) Update(_ context.Context, id int64, appt *domain.Appointment) (*domain.Appointment, error) {
	if _, ok := m.appointments[id]; !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *appt
	m.appointments[id] = &copied
	return appt, nil
}

func (m *mockApptRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := m.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	m.statusCalls = append(m.statusCalls, status)
	appt.Status = status
	return nil
}

func (m *mockApptRepo) Conclude(_ context.Context, id int64, subtype domain.PaymentSubtype, amount, amountPaid float64, paid bool) error {
	appt, ok := m.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	m.concludeCalls++
	appt.Status = domain.StatusAttended
	appt.PaymentSubtype = &subtype
	appt.Amount = amount
	appt.AmountPaid = amountPaid
	appt.Paid = paid
	return nil
}

func (m *mockApptRepo) Cancel(_ context.Context, id int64, reason *string) error {
	appt, ok := m.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Status = domain.StatusCancelled
	appt.CancellationReason = reason
	return nil
}

func (m *mockApptRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.appointments[id]; !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	delete(m.appointments, id)
	return nil
}

type mockNotify struct {
	events []notify.AppointmentEvent
	err    error
}

func (m *mockNotify) SendAppointmentEventWithGracefulDegradation(_ context.Context, event notify.AppointmentEvent) error {
	m.events = append(m.events, event)
	return m.err
}

// fakeTxManager выполняет функцию без транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:            id,
		UserID:        42,
		FirstName:     "Laura",
		LastName:      "Gómez",
		Phone:         "+57 300 000 0000",
		Email:         "laura@example.com",
		Date:          time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		ProcedureName: "Limpieza facial",
		Type:          domain.TypeProcedure,
		PaymentMethod: domain.PaymentOnSite,
		Amount:        100000,
		Status:        domain.StatusConfirmed,
		CreatedBy:     domain.CreatedByPatient,
	}
}

func newService(repo *mockApptRepo, notifier *mockNotify) *Service {
	return NewService(repo, notifier, fakeTxManager{}, nopLogger{})
}

func TestConclude_PartialPayment(t *testing.T) {
	repo := newMockApptRepo(confirmedAppointment(1))
	svc := newService(repo, &mockNotify{})

	resp, err := svc.Conclude(context.Background(), 1, &models.ConcludeAppointmentRequest{
		PaymentSubtype: "Efectivo",
		NewPayment:     60000,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.concludeCalls)
	assert.Equal(t, string(domain.StatusAttended), resp.Appointment.Status)
	assert.False(t, resp.Appointment.Paid)

	assert.Equal(t, 60000.0, resp.Payment.PaidSoFar)
	assert.Equal(t, 40000.0, resp.Payment.RemainingDue)
	assert.Equal(t, 0.0, resp.Payment.RefundDue)
	assert.Equal(t, 60.0, resp.Payment.Percentage)
}

func TestConclude_SettlesAcrossPayments(t *testing.T) {
	appt := confirmedAppointment(1)
	appt.AmountPaid = 60000
	repo := newMockApptRepo(appt)
	svc := newService(repo, &mockNotify{})

	resp, err := svc.Conclude(context.Background(), 1, &models.ConcludeAppointmentRequest{
		PaymentSubtype: "Tarjeta",
		NewPayment:     40000,
	})
	require.NoError(t, err)

	assert.True(t, resp.Appointment.Paid)
	assert.Equal(t, 100000.0, resp.Payment.PaidSoFar)
	assert.Equal(t, 0.0, resp.Payment.RemainingDue)
	assert.Equal(t, 100.0, resp.Payment.Percentage)
}

func TestConclude_AdjustedTotalProducesRefund(t *testing.T) {
	appt := confirmedAppointment(1)
	appt.AmountPaid = 100000
	repo := newMockApptRepo(appt)
	svc := newService(repo, &mockNotify{})

	// Итоговая стоимость скорректирована вниз уже после предоплаты
	resp, err := svc.Conclude(context.Background(), 1, &models.ConcludeAppointmentRequest{
		PaymentSubtype: "Pasarela",
		NewPayment:     0,
		Amount:         ptr.Ptr(80000.0),
	})
	require.NoError(t, err)

	assert.True(t, resp.Appointment.Paid)
	assert.Equal(t, 80000.0, resp.Appointment.Amount)
	assert.Equal(t, 20000.0, resp.Payment.RefundDue)
}

func TestConclude_PendingRejected(t *testing.T) {
	appt := confirmedAppointment(1)
	appt.Status = domain.StatusPending
	repo := newMockApptRepo(appt)
	svc := newService(repo, &mockNotify{})

	_, err := svc.Conclude(context.Background(), 1, &models.ConcludeAppointmentRequest{
		PaymentSubtype: "Efectivo",
	})
	assert.ErrorIs(t, err, ErrCannotConclude)
	assert.Zero(t, repo.concludeCalls)
}

func TestConclude_SubtypeRequired(t *testing.T) {
	repo := newMockApptRepo(confirmedAppointment(1))
	svc := newService(repo, &mockNotify{})

	_, err := svc.Conclude(context.Background(), 1, &models.ConcludeAppointmentRequest{})
	assert.ErrorIs(t, err, ErrPaymentSubtypeRequired)
}

func TestConclude_InvalidSubtype(t *testing.T) {
	repo := newMockApptRepo(confirmedAppointment(1))
	svc := newService(repo, &mockNotify{})

	_, err := svc.Conclude(context.Background(), 1, &models.ConcludeAppointmentRequest{
		PaymentSubtype: "Cheque",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConfirm_SendsEvent(t *testing.T) {
	appt := confirmedAppointment(1)
	appt.Status = domain.StatusPending
	repo := newMockApptRepo(appt)
	notifier := &mockNotify{}
	svc := newService(repo, notifier)

	resp, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, notify.EventAppointmentConfirmed, notifier.events[0].Event)
	assert.Equal(t, "Laura Gómez", notifier.events[0].PatientName)
}

func TestConfirm_InvalidTransition(t *testing.T) {
	appt := confirmedAppointment(1)
	appt.Status = domain.StatusAttended
	repo := newMockApptRepo(appt)
	svc := newService(repo, &mockNotify{})

	_, err := svc.Confirm(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConfirm_NotifyDegradationDoesNotFailOperation(t *testing.T) {
	appt := confirmedAppointment(1)
	appt.Status = domain.StatusPending
	repo := newMockApptRepo(appt)
	notifier := &mockNotify{err: fmt.Errorf("%w: appointment_id=1", notify.ErrServiceDegraded)}
	svc := newService(repo, notifier)

	_, err := svc.Confirm(context.Background(), 1)
	assert.NoError(t, err)
}

func TestRevert_ConfirmedBackToPending(t *testing.T) {
	repo := newMockApptRepo(confirmedAppointment(1))
	svc := newService(repo, &mockNotify{})

	resp, err := svc.Revert(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestCancel_WithReason(t *testing.T) {
	repo := newMockApptRepo(confirmedAppointment(1))
	notifier := &mockNotify{}
	svc := newService(repo, notifier)

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		CancellationReason: ptr.Ptr("paciente no puede asistir"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, repo.appointments[1].Status)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, notify.EventAppointmentCancelled, notifier.events[0].Event)
	assert.Equal(t, "paciente no puede asistir", notifier.events[0].Reason)
}

func TestCancel_AttendedRejected(t *testing.T) {
	appt := confirmedAppointment(1)
	appt.Status = domain.StatusAttended
	repo := newMockApptRepo(appt)
	svc := newService(repo, &mockNotify{})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdate_RescheduleToBusySlotRejected(t *testing.T) {
	first := confirmedAppointment(1)
	second := confirmedAppointment(2)
	second.StartTime = "11:00"
	repo := newMockApptRepo(first, second)
	svc := newService(repo, &mockNotify{})

	_, err := svc.Update(context.Background(), 2, &models.UpdateAppointmentRequest{
		StartTime: ptr.Ptr("10:00 AM"),
	})
	assert.ErrorIs(t, err, ErrSlotBusy)
}

func TestUpdate_RescheduleToFreeSlot(t *testing.T) {
	repo := newMockApptRepo(confirmedAppointment(1))
	notifier := &mockNotify{}
	svc := newService(repo, notifier)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{
		StartTime: ptr.Ptr("3:00 PM"),
	})
	require.NoError(t, err)

	assert.Equal(t, "15:00", resp.StartTime, "display label must be stored canonically")
	require.Len(t, notifier.events, 1)
	assert.Equal(t, notify.EventAppointmentUpdated, notifier.events[0].Event)
}

func TestUpdate_PaymentSubtype(t *testing.T) {
	repo := newMockApptRepo(confirmedAppointment(1))
	svc := newService(repo, &mockNotify{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{
		PaymentSubtype: ptr.Ptr("Tarjeta"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.PaymentSubtype)
	assert.Equal(t, "Tarjeta", *resp.PaymentSubtype)
	require.NotNil(t, repo.appointments[1].PaymentSubtype)
	assert.Equal(t, domain.SubtypeCard, *repo.appointments[1].PaymentSubtype)
}

func TestUpdate_InvalidPaymentSubtype(t *testing.T) {
	repo := newMockApptRepo(confirmedAppointment(1))
	svc := newService(repo, &mockNotify{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{
		PaymentSubtype: ptr.Ptr("Cheque"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_TerminalStatusRejected(t *testing.T) {
	appt := confirmedAppointment(1)
	appt.Status = domain.StatusCancelled
	repo := newMockApptRepo(appt)
	svc := newService(repo, &mockNotify{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{
		Notes: ptr.Ptr("nueva nota"),
	})
	assert.ErrorIs(t, err, ErrCannotUpdate)
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := newMockApptRepo(confirmedAppointment(1))
	svc := newService(repo, &mockNotify{})

	// Владелец видит свою запись
	_, err := svc.GetByID(context.Background(), 1, 42, false)
	assert.NoError(t, err)

	// Чужой пациент не видит
	_, err = svc.GetByID(context.Background(), 1, 7, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Администратор видит любую
	_, err = svc.GetByID(context.Background(), 1, 7, true)
	assert.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(newMockApptRepo(), &mockNotify{})

	_, err := svc.GetByID(context.Background(), 99, 42, true)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
