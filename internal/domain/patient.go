package domain

import "time"

// Role determines what a user may do in the system
type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

// Patient is a registered user of the clinic. Medical history fields are
// optional and explicitly modelled as absent when nil.
type Patient struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      Role

	// Optional medical history
	Conditions   *string
	Allergies    *string
	Medications  *string
	MedicalNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true for clinic staff accounts
func (p *Patient) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// HasMedicalHistory returns true if any medical field has been filled in
func (p *Patient) HasMedicalHistory() bool {
	return p.Conditions != nil || p.Allergies != nil ||
		p.Medications != nil || p.MedicalNotes != nil
}
