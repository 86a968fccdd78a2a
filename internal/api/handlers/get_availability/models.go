package get_availability

import (
	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/internal/usecase/resolve_availability"
)

// SlotResponse HTTP модель одного часа
type SlotResponse struct {
	Time      string  `json:"time"` // "10:00"
	Available bool    `json:"available"`
	Busy      bool    `json:"busy"`
	Blocked   bool    `json:"blocked"`
	Occupant  *string `json:"occupant,omitempty"`
}

// Response HTTP модель ответа
type Response struct {
	Date       string         `json:"date"` // "2025-10-15"
	IsOverride bool           `json:"isOverride"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *resolve_availability.Response) *Response {
	out := &Response{
		Date:       resp.Date.Format(domain.DateFormat),
		IsOverride: resp.IsOverride,
		Slots:      make([]SlotResponse, len(resp.Slots)),
	}

	for i, slot := range resp.Slots {
		out.Slots[i] = SlotResponse{
			Time:      slot.Time.String(),
			Available: slot.Available,
			Busy:      slot.Busy,
			Blocked:   slot.Blocked,
			Occupant:  slot.Occupant,
		}
	}

	return out
}
