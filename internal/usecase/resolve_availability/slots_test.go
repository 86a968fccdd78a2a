package resolve_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/pkg/types"
)

func scheduleOf(times ...types.TimeString) []domain.ScheduleSlot {
	slots := make([]domain.ScheduleSlot, len(times))
	for i, ts := range times {
		slots[i] = domain.ScheduleSlot{Time: ts, Available: true}
	}
	return slots
}

func TestResolveSlots_BusySlot(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)

	appointments := []*domain.Appointment{
		{
			FirstName:     "Laura",
			LastName:      "Gómez",
			ProcedureName: "Limpieza facial",
			StartTime:     "10:00",
			Status:        domain.StatusConfirmed,
		},
	}

	result := resolveSlots(scheduleOf("09:00", "10:00"), appointments, nil, date, now, false)

	require.Len(t, result, 2)
	assert.True(t, result[0].Available)
	assert.False(t, result[0].Busy)

	assert.False(t, result[1].Available)
	assert.True(t, result[1].Busy)
	assert.Nil(t, result[1].Occupant, "occupant labels are admin only")
}

func TestResolveSlots_OccupantForAdmin(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)

	appointments := []*domain.Appointment{
		{
			FirstName:     "Laura",
			LastName:      "Gómez",
			ProcedureName: "Limpieza facial",
			StartTime:     "10:00",
			Status:        domain.StatusPending,
		},
	}

	result := resolveSlots(scheduleOf("10:00"), appointments, nil, date, now, true)

	require.Len(t, result, 1)
	require.NotNil(t, result[0].Occupant)
	assert.Equal(t, "Laura Gómez (Limpieza facial)", *result[0].Occupant)
}

func TestResolveSlots_CancelledAppointmentFreesSlot(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)

	appointments := []*domain.Appointment{
		{StartTime: "10:00", Status: domain.StatusCancelled},
	}

	result := resolveSlots(scheduleOf("10:00"), appointments, nil, date, now, false)

	require.Len(t, result, 1)
	assert.True(t, result[0].Available)
	assert.False(t, result[0].Busy)
}

func TestResolveSlots_BusyOverridesDisabledFlag(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)

	// Слот выключен в расписании, но занят активной записью
	slots := []domain.ScheduleSlot{{Time: "10:00", Available: false}}
	appointments := []*domain.Appointment{
		{StartTime: "10:00", Status: domain.StatusConfirmed},
	}

	result := resolveSlots(slots, appointments, nil, date, now, false)

	require.Len(t, result, 1)
	assert.True(t, result[0].Busy)
	assert.False(t, result[0].Available)
}

func TestResolveSlots_ManualBlock(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)

	blocks := []*domain.HourBlock{{Date: date, Time: "11:00"}}

	result := resolveSlots(scheduleOf("10:00", "11:00"), nil, blocks, date, now, false)

	require.Len(t, result, 2)
	assert.True(t, result[0].Available)
	assert.True(t, result[1].Blocked)
	assert.False(t, result[1].Available)
}

func TestResolveSlots_PastHourToday(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 12, 30, 0, 0, time.UTC)

	result := resolveSlots(scheduleOf("10:00", "12:00", "15:00"), nil, nil, date, now, false)

	require.Len(t, result, 3)
	assert.False(t, result[0].Available, "past hour must be unavailable")
	assert.False(t, result[1].Available, "hour already started must be unavailable")
	assert.True(t, result[2].Available, "future hour stays available")
}

func TestResolveSlots_PastDateResolvesEmpty(t *testing.T) {
	date := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)

	result := resolveSlots(scheduleOf("09:00", "10:00"), nil, nil, date, now, false)

	assert.Empty(t, result)
}

func TestResolveSlots_PastHourRuleOnlyAppliesToday(t *testing.T) {
	date := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 23, 0, 0, 0, time.UTC)

	result := resolveSlots(scheduleOf("09:00"), nil, nil, date, now, false)

	require.Len(t, result, 1)
	assert.True(t, result[0].Available)
}
