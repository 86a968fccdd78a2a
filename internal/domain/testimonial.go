package domain

import "time"

// Testimonial is a patient review shown on the public site after approval
type Testimonial struct {
	ID            int64
	AuthorName    string
	ProcedureName *string
	Text          string
	Rating        int // 1..5
	Approved      bool
	CreatedAt     time.Time
}

// IsVisible returns true if the testimonial may be shown publicly
func (t *Testimonial) IsVisible() bool {
	return t.Approved
}
