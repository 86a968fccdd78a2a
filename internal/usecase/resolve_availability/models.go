package resolve_availability

import (
	"time"

	"github.com/m04kA/AMC-BookingService/pkg/types"
)

// Request модель запроса на вычисление доступности часов
type Request struct {
	Date time.Time // Дата (без времени)

	// IncludeOccupants добавляет в занятые слоты имя пациента и процедуру.
	// Включается только для администратора
	IncludeOccupants bool
}

// Slot вычисленное состояние одного часа
type Slot struct {
	Time      types.TimeString // Время начала (например, "10:00")
	Available bool             // Можно ли записаться на этот час
	Busy      bool             // Час занят активной записью
	Blocked   bool             // Час заблокирован вручную
	Occupant  *string          // "Имя Фамилия (Процедура)" для занятых часов
}

// Response модель ответа с вычисленной доступностью
type Response struct {
	Date       time.Time
	IsOverride bool // На дату действует отдельное расписание
	Slots      []Slot
}
