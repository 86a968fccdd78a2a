package domain

import (
	"time"

	"github.com/m04kA/AMC-BookingService/pkg/types"
)

// ScheduleSlot is a configurable hour slot with its availability flag.
// The flag only reflects staff configuration; whether the slot is actually
// bookable on a date also depends on appointments and manual blocks.
type ScheduleSlot struct {
	Time      types.TimeString
	Available bool
}

// DaySchedule is a slot list for one scope: the global default when Date is
// nil, or a per-date override otherwise. A date with an override resolves
// against the override only; all other dates resolve against the default.
type DaySchedule struct {
	Date  *time.Time
	Slots []ScheduleSlot
}

// IsGlobalDefault returns true if this is the fallback schedule for all dates
func (d *DaySchedule) IsGlobalDefault() bool {
	return d.Date == nil
}

// SlotByTime returns the slot at the given canonical time, if present
func (d *DaySchedule) SlotByTime(t types.TimeString) (ScheduleSlot, bool) {
	for _, slot := range d.Slots {
		if slot.Time.Equal(t) {
			return slot, true
		}
	}
	return ScheduleSlot{}, false
}

// HourBlock is a manual per-date block created by staff, independent of the
// appointment-derived busy state
type HourBlock struct {
	ID        int64
	Date      time.Time
	Time      types.TimeString
	Reason    *string
	CreatedAt time.Time
}
