package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	hourblockStore "github.com/m04kA/AMC-BookingService/internal/infra/storage/hourblock"
	scheduleStore "github.com/m04kA/AMC-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/AMC-BookingService/internal/service/schedule/models"
	"github.com/m04kA/AMC-BookingService/pkg/ptr"
)

// Моки в стиле in-memory хранилища

type mockScheduleRepo struct {
	global    []domain.ScheduleSlot
	overrides map[string][]domain.ScheduleSlot
}

func newMockScheduleRepo(global ...domain.ScheduleSlot) *mockScheduleRepo {
	return &mockScheduleRepo{
		global:    global,
		overrides: make(map[string][]domain.ScheduleSlot),
	}
}

func (m *mockScheduleRepo) GetGlobal(_ context.Context) ([]domain.ScheduleSlot, error) {
	return append([]domain.ScheduleSlot(nil), m.global...), nil
}

func (m *mockScheduleRepo) GetOverride(_ context.Context, date time.Time) ([]domain.ScheduleSlot, error) {
	slots, ok := m.overrides[date.Format(domain.DateFormat)]
	if !ok {
		return nil, scheduleStore.ErrOverrideNotFound
	}
	return append([]domain.ScheduleSlot(nil), slots...), nil
}

func (m *mockScheduleRepo) ReplaceGlobal(_ context.Context, slots []domain.ScheduleSlot) error {
	m.global = slots
	return nil
}

func (m *mockScheduleRepo) ReplaceOverride(_ context.Context, date time.Time, slots []domain.ScheduleSlot) error {
	m.overrides[date.Format(domain.DateFormat)] = slots
	return nil
}

func (m *mockScheduleRepo) SetGlobalSlotAvailability(_ context.Context, slotTime string, available bool) error {
	for i := range m.global {
		if m.global[i].Time.String() == slotTime {
			m.global[i].Available = available
			return nil
		}
	}
	return scheduleStore.ErrSlotNotFound
}

func (m *mockScheduleRepo) DeleteOverride(_ context.Context, date time.Time) error {
	key := date.Format(domain.DateFormat)
	if _, ok := m.overrides[key]; !ok {
		return scheduleStore.ErrOverrideNotFound
	}
	delete(m.overrides, key)
	return nil
}

type mockHourBlockRepo struct {
	blocks map[string]*domain.HourBlock
	nextID int64
}

func newMockHourBlockRepo() *mockHourBlockRepo {
	return &mockHourBlockRepo{blocks: make(map[string]*domain.HourBlock)}
}

func blockKey(date time.Time, blockTime string) string {
	return date.Format(domain.DateFormat) + " " + blockTime
}

func (m *mockHourBlockRepo) Create(_ context.Context, block *domain.HourBlock) (*domain.HourBlock, error) {
	key := blockKey(block.Date, block.Time.String())
	if _, ok := m.blocks[key]; ok {
		return nil, hourblockStore.ErrDuplicateBlock
	}
	m.nextID++
	copied := *block
	copied.ID = m.nextID
	m.blocks[key] = &copied
	return &copied, nil
}

func (m *mockHourBlockRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.HourBlock, error) {
	var result []*domain.HourBlock
	for _, block := range m.blocks {
		if block.Date.Equal(date) {
			result = append(result, block)
		}
	}
	return result, nil
}

func (m *mockHourBlockRepo) Delete(_ context.Context, date time.Time, blockTime string) error {
	key := blockKey(date, blockTime)
	if _, ok := m.blocks[key]; !ok {
		return hourblockStore.ErrBlockNotFound
	}
	delete(m.blocks, key)
	return nil
}

type mockApptRepo struct {
	appointments []*domain.Appointment
}

func (m *mockApptRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range m.appointments {
		if filter.Date != nil && !appt.Date.Equal(*filter.Date) {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
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

func defaultGlobal() []domain.ScheduleSlot {
	return []domain.ScheduleSlot{
		{Time: "09:00", Available: true},
		{Time: "10:00", Available: true},
		{Time: "11:00", Available: true},
	}
}

type fixture struct {
	svc      *Service
	schedule *mockScheduleRepo
	blocks   *mockHourBlockRepo
	appts    *mockApptRepo
}

func newFixture() *fixture {
	f := &fixture{
		schedule: newMockScheduleRepo(defaultGlobal()...),
		blocks:   newMockHourBlockRepo(),
		appts:    &mockApptRepo{},
	}
	f.svc = NewService(f.schedule, f.blocks, f.appts, fakeTxManager{}, nopLogger{})
	return f
}

func TestToggleSlot_BusySlotRejected(t *testing.T) {
	f := newFixture()
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	f.appts.appointments = []*domain.Appointment{
		{ID: 7, Date: date, StartTime: "10:00", Status: domain.StatusConfirmed},
	}

	err := f.svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		Date:      ptr.Ptr("2025-10-15"),
		Time:      "10:00",
		Available: false,
	})
	assert.ErrorIs(t, err, ErrSlotBusy)
	assert.Empty(t, f.schedule.overrides, "rejected toggle must not create an override")
}

func TestToggleSlot_CancelledAppointmentDoesNotBlock(t *testing.T) {
	f := newFixture()
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	f.appts.appointments = []*domain.Appointment{
		{ID: 7, Date: date, StartTime: "10:00", Status: domain.StatusCancelled},
	}

	err := f.svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		Date:      ptr.Ptr("2025-10-15"),
		Time:      "10:00",
		Available: false,
	})
	assert.NoError(t, err)
}

func TestToggleSlot_CreatesOverrideFromGlobal(t *testing.T) {
	f := newFixture()

	err := f.svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		Date:      ptr.Ptr("2025-10-15"),
		Time:      "10:00",
		Available: false,
	})
	require.NoError(t, err)

	// Переключение на дату без отдельного расписания копирует общее
	// расписание в исключение с одним измененным слотом
	override := f.schedule.overrides["2025-10-15"]
	require.Len(t, override, 3)
	assert.True(t, override[0].Available)
	assert.False(t, override[1].Available)
	assert.True(t, override[2].Available)

	// Общее расписание не тронуто
	assert.True(t, f.schedule.global[1].Available)
}

func TestToggleSlot_UpdatesExistingOverride(t *testing.T) {
	f := newFixture()
	f.schedule.overrides["2025-10-15"] = []domain.ScheduleSlot{
		{Time: "14:00", Available: false},
	}

	err := f.svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		Date:      ptr.Ptr("2025-10-15"),
		Time:      "2:00 PM",
		Available: true,
	})
	require.NoError(t, err)

	override := f.schedule.overrides["2025-10-15"]
	require.Len(t, override, 1)
	assert.True(t, override[0].Available)
}

func TestToggleSlot_GlobalSchedule(t *testing.T) {
	f := newFixture()

	err := f.svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		Time:      "09:00",
		Available: false,
	})
	require.NoError(t, err)
	assert.False(t, f.schedule.global[0].Available)

	err = f.svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		Time:      "13:00",
		Available: false,
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestToggleSlot_UnknownSlotOnDate(t *testing.T) {
	f := newFixture()

	err := f.svc.ToggleSlot(context.Background(), &models.ToggleSlotRequest{
		Date:      ptr.Ptr("2025-10-15"),
		Time:      "13:00",
		Available: false,
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestUpdate_ReplacesGlobalSchedule(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Update(context.Background(), &models.UpdateScheduleRequest{
		Slots: []models.SlotInput{
			{Time: "9:00 AM", Available: true},
			{Time: "10:00 AM", Available: false},
		},
	})
	require.NoError(t, err)

	assert.Nil(t, resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:00", resp.Slots[0].Time, "labels are stored canonically")
	require.Len(t, f.schedule.global, 2)
}

func TestUpdate_ReplacesOverride(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Update(context.Background(), &models.UpdateScheduleRequest{
		Date: ptr.Ptr("2025-10-15"),
		Slots: []models.SlotInput{
			{Time: "14:00", Available: true},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Date)
	assert.Equal(t, "2025-10-15", *resp.Date)
	assert.Len(t, f.schedule.overrides["2025-10-15"], 1)
}

func TestUpdate_InvalidSlots(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Update(context.Background(), &models.UpdateScheduleRequest{
		Slots: []models.SlotInput{{Time: "pronto", Available: true}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Update(context.Background(), &models.UpdateScheduleRequest{
		Slots: []models.SlotInput{
			{Time: "10:00", Available: true},
			{Time: "10:00 AM", Available: false},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "equivalent labels are duplicates")
}

func TestGetEffective_OverrideWinsOverGlobal(t *testing.T) {
	f := newFixture()
	f.schedule.overrides["2025-10-15"] = []domain.ScheduleSlot{
		{Time: "14:00", Available: true},
	}

	resp, err := f.svc.GetEffective(context.Background(), time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, resp.Date)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "14:00", resp.Slots[0].Time)

	resp, err = f.svc.GetEffective(context.Background(), time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, resp.Date)
	assert.Len(t, resp.Slots, 3)
}

func TestDeleteOverride(t *testing.T) {
	f := newFixture()
	f.schedule.overrides["2025-10-15"] = []domain.ScheduleSlot{
		{Time: "14:00", Available: true},
	}

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.svc.DeleteOverride(context.Background(), date))
	assert.Empty(t, f.schedule.overrides)

	err := f.svc.DeleteOverride(context.Background(), date)
	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestCreateBlock_NormalizesLabelAndRejectsDuplicate(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.CreateBlock(context.Background(), &models.CreateBlockRequest{
		Date: "2025-10-15",
		Time: "9:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.Time)

	_, err = f.svc.CreateBlock(context.Background(), &models.CreateBlockRequest{
		Date: "2025-10-15",
		Time: "09:00",
	})
	assert.ErrorIs(t, err, ErrDuplicateBlock)
}

func TestDeleteBlock_NotFound(t *testing.T) {
	f := newFixture()

	err := f.svc.DeleteBlock(context.Background(), time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), "10:00")
	assert.ErrorIs(t, err, ErrBlockNotFound)
}
