package domain

import (
	"strconv"
	"strings"
	"time"
)

// ProcedureCategory is the catalog section a procedure belongs to
type ProcedureCategory string

const (
	CategoryFacial   ProcedureCategory = "Facial"
	CategoryCorporal ProcedureCategory = "Corporal"
	CategoryCapilar  ProcedureCategory = "Capilar"
)

// Procedure is a catalog entry offered by the clinic.
// PriceLabel is free text because prices are sometimes ranges
// ("$150.000 - $300.000"); PriceAmount extracts a numeric value when the
// label denotes a single price.
type Procedure struct {
	ID          int64
	Name        string
	Description string
	PriceLabel  string
	Category    ProcedureCategory
	ImageURLs   []string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PriceAmount parses the price label into a single numeric amount.
// Currency signs and thousand separators are stripped; labels that denote
// ranges or contain words yield ok=false and the booking defaults to 0.
func (p *Procedure) PriceAmount() (float64, bool) {
	s := strings.TrimSpace(p.PriceLabel)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return amount, true
}

// ValidCategory reports whether the category is one of the catalog sections
func ValidCategory(c ProcedureCategory) bool {
	return c == CategoryFacial || c == CategoryCorporal || c == CategoryCapilar
}
