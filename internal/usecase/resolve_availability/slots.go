package resolve_availability

import (
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/pkg/types"
)

// resolveSlots вычисляет состояние каждого часа расписания на дату
//
// Правила, в порядке приоритета:
// - прошедшая дата дает пустой список
// - активная запись на тот же канонический час делает слот занятым,
//   независимо от флага доступности в расписании
// - ручная блокировка часа делает слот недоступным
// - выключенный в расписании слот недоступен
// - прошедший час сегодняшнего дня недоступен
func resolveSlots(
	slots []domain.ScheduleSlot,
	appointments []*domain.Appointment,
	blocks []*domain.HourBlock,
	date time.Time,
	now time.Time,
	includeOccupants bool,
) []Slot {
	// На прошедшую дату записаться уже нельзя
	if isDateInPast(date, now) {
		return []Slot{}
	}

	// Индексируем активные записи по каноническому времени
	occupied := make(map[types.TimeString]*domain.Appointment, len(appointments))
	for _, appt := range appointments {
		if appt.IsActive() {
			occupied[appt.StartTime] = appt
		}
	}

	blocked := make(map[types.TimeString]struct{}, len(blocks))
	for _, block := range blocks {
		blocked[block.Time] = struct{}{}
	}

	today := isSameDay(date, now)
	currentTime := types.NewTimeString(now)

	result := make([]Slot, len(slots))

	for i, slot := range slots {
		resolved := Slot{
			Time:      slot.Time,
			Available: slot.Available,
		}

		if appt, ok := occupied[slot.Time]; ok {
			resolved.Busy = true
			resolved.Available = false
			if includeOccupants {
				label := appt.OccupantLabel()
				resolved.Occupant = &label
			}
		}

		if _, ok := blocked[slot.Time]; ok {
			resolved.Blocked = true
			resolved.Available = false
		}

		// Прошедший час сегодняшнего дня уже не бронируется
		if today && slot.Time.IsBefore(currentTime) {
			resolved.Available = false
		}

		result[i] = resolved
	}

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
