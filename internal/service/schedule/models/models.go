package models

import (
	"errors"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/pkg/types"
)

var (
	// ErrInvalidSlotTime возвращается при нераспознанной метке времени
	ErrInvalidSlotTime = errors.New("invalid slot time")

	// ErrDuplicateSlotTime возвращается при повторяющемся времени в запросе
	ErrDuplicateSlotTime = errors.New("duplicate slot time")
)

// Request модели

// SlotInput слот в запросе на обновление расписания
type SlotInput struct {
	Time      string `json:"time"` // "10:00" или "10:00 AM"
	Available bool   `json:"available"`
}

// UpdateScheduleRequest запрос на полную замену расписания
// Date == nil означает замену расписания по умолчанию
type UpdateScheduleRequest struct {
	Date  *string     `json:"date,omitempty"` // "2025-10-15"
	Slots []SlotInput `json:"slots"`
}

// ToDomainSlots нормализует метки времени и конвертирует слоты в domain модель
func ToDomainSlots(inputs []SlotInput) ([]domain.ScheduleSlot, error) {
	slots := make([]domain.ScheduleSlot, 0, len(inputs))
	seen := make(map[types.TimeString]struct{}, len(inputs))

	for _, input := range inputs {
		slotTime, err := types.NewTimeStringFromLabel(input.Time)
		if err != nil {
			return nil, ErrInvalidSlotTime
		}
		if _, ok := seen[slotTime]; ok {
			return nil, ErrDuplicateSlotTime
		}
		seen[slotTime] = struct{}{}

		slots = append(slots, domain.ScheduleSlot{
			Time:      slotTime,
			Available: input.Available,
		})
	}

	return slots, nil
}

// ToggleSlotRequest запрос на переключение доступности одного слота
// Date == nil означает переключение в расписании по умолчанию
type ToggleSlotRequest struct {
	Date      *string `json:"date,omitempty"` // "2025-10-15"
	Time      string  `json:"time"`           // "10:00" или "10:00 AM"
	Available bool    `json:"available"`
}

// CreateBlockRequest запрос на блокировку часа
type CreateBlockRequest struct {
	Date   string  `json:"date"` // "2025-10-15"
	Time   string  `json:"time"` // "10:00" или "10:00 AM"
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// SlotResponse слот расписания
type SlotResponse struct {
	Time      string `json:"time"` // "10:00"
	Available bool   `json:"available"`
}

// ScheduleResponse расписание одной области действия
// Date отсутствует у расписания по умолчанию
type ScheduleResponse struct {
	Date  *string        `json:"date,omitempty"`
	Slots []SlotResponse `json:"slots"`
}

// HourBlockResponse блокировка часа
type HourBlockResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // "2025-10-15"
	Time      string    `json:"time"` // "10:00"
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// HourBlockListResponse список блокировок
type HourBlockListResponse struct {
	Blocks []HourBlockResponse `json:"blocks"`
}

// Методы конвертации

// FromDomainSlots конвертирует слоты в DTO
func FromDomainSlots(date *time.Time, slots []domain.ScheduleSlot) *ScheduleResponse {
	resp := &ScheduleResponse{
		Slots: make([]SlotResponse, len(slots)),
	}

	if date != nil {
		dateStr := date.Format(domain.DateFormat)
		resp.Date = &dateStr
	}

	for i, slot := range slots {
		resp.Slots[i] = SlotResponse{
			Time:      slot.Time.String(),
			Available: slot.Available,
		}
	}

	return resp
}

// FromDomainHourBlock конвертирует блокировку в DTO
func FromDomainHourBlock(b *domain.HourBlock) *HourBlockResponse {
	if b == nil {
		return nil
	}

	return &HourBlockResponse{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		Time:      b.Time.String(),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainHourBlockList конвертирует список блокировок в DTO
func FromDomainHourBlockList(blocks []*domain.HourBlock) *HourBlockListResponse {
	resp := &HourBlockListResponse{
		Blocks: make([]HourBlockResponse, len(blocks)),
	}

	for i, block := range blocks {
		if blockResp := FromDomainHourBlock(block); blockResp != nil {
			resp.Blocks[i] = *blockResp
		}
	}

	return resp
}
