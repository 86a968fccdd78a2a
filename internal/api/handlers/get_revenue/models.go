package get_revenue

import (
	"github.com/m04kA/AMC-BookingService/internal/usecase/monthly_revenue"
)

// BucketResponse выручка за отрезок месяца
type BucketResponse struct {
	Label    string  `json:"label"` // "1-7"
	StartDay int     `json:"startDay"`
	EndDay   int     `json:"endDay"`
	Total    float64 `json:"total"`
}

// Response HTTP модель ответа с расчетом выручки
type Response struct {
	Year           int              `json:"year"`
	Month          int              `json:"month"`
	Buckets        []BucketResponse `json:"buckets"`
	ExpectedTotal  float64          `json:"expectedTotal"`
	OnSiteTotal    float64          `json:"onSiteTotal"`
	OnlineTotal    float64          `json:"onlineTotal"`
	CollectedTotal float64          `json:"collectedTotal"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *monthly_revenue.Response) *Response {
	out := &Response{
		Year:           resp.Year,
		Month:          int(resp.Month),
		Buckets:        make([]BucketResponse, len(resp.Buckets)),
		ExpectedTotal:  resp.ExpectedTotal,
		OnSiteTotal:    resp.OnSiteTotal,
		OnlineTotal:    resp.OnlineTotal,
		CollectedTotal: resp.CollectedTotal,
	}

	for i, bucket := range resp.Buckets {
		out.Buckets[i] = BucketResponse{
			Label:    bucket.Label,
			StartDay: bucket.StartDay,
			EndDay:   bucket.EndDay,
			Total:    bucket.Total,
		}
	}

	return out
}
