package monthly_revenue

import (
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
)

// Request модель запроса на расчет выручки за месяц
type Request struct {
	Year  int
	Month time.Month

	// Опциональный фильтр отрезков по каналу оплаты
	Method *domain.PaymentMethod
}

// Bucket выручка за отрезок месяца
type Bucket struct {
	Label    string  // Например, "1-7"
	StartDay int     // Первый день отрезка
	EndDay   int     // Последний день отрезка
	Total    float64 // Собранная выручка за отрезок
}

// Response модель ответа с расчетом выручки
type Response struct {
	Year  int
	Month time.Month

	// Выручка по отрезкам месяца: дни 1-7, 8-14, 15-21 и 22-конец.
	// Учитываются только посещенные и оплаченные записи
	Buckets []Bucket

	// Итоги месяца
	ExpectedTotal  float64 // Сумма стоимости всех записей месяца
	OnSiteTotal    float64 // Собрано с посещенных записей с оплатой в консультории
	OnlineTotal    float64 // Собрано с посещенных записей с оплатой онлайн
	CollectedTotal float64 // Всего собрано за месяц
}
