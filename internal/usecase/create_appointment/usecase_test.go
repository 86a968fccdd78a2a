package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	procStore "github.com/m04kA/AMC-BookingService/internal/infra/storage/procedure"
	scheduleStore "github.com/m04kA/AMC-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/AMC-BookingService/internal/integrations/notify"
	"github.com/m04kA/AMC-BookingService/pkg/ptr"
)

type mockApptRepo struct {
	existing  []*domain.Appointment
	createErr error
	filterErr error
	created   *domain.Appointment
}

func (m *mockApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	out := *appt
	out.ID = 1
	out.CreatedAt = time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	out.UpdatedAt = out.CreatedAt
	m.created = &out
	return &out, nil
}

func (m *mockApptRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return m.existing, m.filterErr
}

type mockScheduleRepo struct {
	global   []domain.ScheduleSlot
	override []domain.ScheduleSlot
}

func (m *mockScheduleRepo) GetGlobal(_ context.Context) ([]domain.ScheduleSlot, error) {
	return m.global, nil
}

func (m *mockScheduleRepo) GetOverride(_ context.Context, _ time.Time) ([]domain.ScheduleSlot, error) {
	if m.override == nil {
		return nil, scheduleStore.ErrOverrideNotFound
	}
	return m.override, nil
}

type mockHourBlockRepo struct {
	blocks []*domain.HourBlock
}

func (m *mockHourBlockRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.HourBlock, error) {
	return m.blocks, nil
}

type mockProcRepo struct {
	procedures map[string]*domain.Procedure
}

func (m *mockProcRepo) GetByName(_ context.Context, name string) (*domain.Procedure, error) {
	proc, ok := m.procedures[name]
	if !ok {
		return nil, procStore.ErrProcedureNotFound
	}
	return proc, nil
}

type mockNotify struct {
	events []notify.AppointmentEvent
	err    error
}

func (m *mockNotify) SendAppointmentEventWithGracefulDegradation(_ context.Context, event notify.AppointmentEvent) error {
	m.events = append(m.events, event)
	return m.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	appts    *mockApptRepo
	schedule *mockScheduleRepo
	blocks   *mockHourBlockRepo
	procs    *mockProcRepo
	notify   *mockNotify
}

func newFixture() *fixture {
	f := &fixture{
		appts: &mockApptRepo{},
		schedule: &mockScheduleRepo{
			global: []domain.ScheduleSlot{
				{Time: "09:00", Available: true},
				{Time: "10:00", Available: true},
				{Time: "15:00", Available: true},
				{Time: "16:00", Available: false},
			},
		},
		blocks: &mockHourBlockRepo{},
		procs: &mockProcRepo{
			procedures: map[string]*domain.Procedure{
				"Limpieza facial": {Name: "Limpieza facial", PriceLabel: "$150.000"},
				"Plasma rico":     {Name: "Plasma rico", PriceLabel: "$150.000 - $300.000"},
			},
		},
		notify: &mockNotify{},
	}

	f.uc = NewUseCase(f.appts, f.schedule, f.blocks, f.procs, f.notify, fakeTxManager{}, nopLogger{})
	f.uc.timeProvider = fixedClock{now: time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		UserID:        42,
		FirstName:     "Laura",
		LastName:      "Gómez",
		Phone:         "+57 300 123 4567",
		Email:         "laura@example.com",
		Date:          time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		ProcedureName: "Limpieza facial",
		Type:          domain.TypeProcedure,
		PaymentMethod: domain.PaymentOnSite,
		CreatedBy:     domain.CreatedByPatient,
	}
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 150000.0, resp.Amount, "amount comes from the catalog price")
	assert.Equal(t, 0.0, resp.AmountPaid)
	assert.False(t, resp.Paid)

	require.Len(t, f.notify.events, 1)
	assert.Equal(t, notify.EventAppointmentCreated, f.notify.events[0].Event)
	assert.Equal(t, "Laura Gómez", f.notify.events[0].PatientName)
	assert.Equal(t, "2025-10-15", f.notify.events[0].Date)
}

func TestExecute_ExplicitAmountWins(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Amount = ptr.Ptr(99000.0)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 99000.0, resp.Amount)
}

func TestExecute_RangePriceDefaultsToZero(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ProcedureName = "Plasma rico"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Amount)
}

func TestExecute_UnknownProcedureDefaultsToZero(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ProcedureName = "Masaje relajante"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Amount)
}

func TestExecute_SlotTaken(t *testing.T) {
	f := newFixture()
	f.appts.existing = []*domain.Appointment{
		{ID: 7, StartTime: "10:00", Status: domain.StatusConfirmed},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.appts.existing = []*domain.Appointment{
		{ID: 7, StartTime: "10:00", Status: domain.StatusCancelled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_SlotBlocked(t *testing.T) {
	f := newFixture()
	f.blocks.blocks = []*domain.HourBlock{
		{Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), Time: "10:00"},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotBlocked)
}

func TestExecute_SlotNotInSchedule(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartTime = "13:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotDisabled(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartTime = "16:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OverrideReplacesGlobalSchedule(t *testing.T) {
	f := newFixture()
	f.schedule.override = []domain.ScheduleSlot{
		{Time: "14:00", Available: true},
	}

	// 10:00 входит в общее расписание, но на эту дату действует исключение
	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)

	req := validRequest()
	req.StartTime = "14:00"
	_, err = f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_DateInPast(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TooLateToBookToday(t *testing.T) {
	f := newFixture()
	f.uc.timeProvider = fixedClock{now: time.Date(2025, 10, 15, 12, 30, 0, 0, time.UTC)}

	req := validRequest()

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// Будущий час того же дня остается доступным
	req.StartTime = "15:00"
	_, err = f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"missing first name", func(req *Request) { req.FirstName = "" }},
		{"missing phone", func(req *Request) { req.Phone = "" }},
		{"invalid email", func(req *Request) { req.Email = "not-an-email" }},
		{"missing procedure", func(req *Request) { req.ProcedureName = "" }},
		{"invalid type", func(req *Request) { req.Type = "checkup" }},
		{"invalid payment method", func(req *Request) { req.PaymentMethod = "bitcoin" }},
		{"invalid createdBy", func(req *Request) { req.CreatedBy = "robot" }},
		{"negative amount", func(req *Request) { req.Amount = ptr.Ptr(-100.0) }},
		{"zero user", func(req *Request) { req.UserID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_NotifyDegradationDoesNotFailBooking(t *testing.T) {
	f := newFixture()
	f.notify.err = notify.ErrServiceDegraded

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	f := newFixture()
	f.appts.createErr = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
