package models

import (
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
)

// Request модели

// RegisterPatientRequest запрос на регистрацию пользователя
type RegisterPatientRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ToDomainPatient конвертирует запрос в domain модель
// Новые пользователи всегда регистрируются пациентами
func (r *RegisterPatientRequest) ToDomainPatient() *domain.Patient {
	return &domain.Patient{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      domain.RolePatient,
	}
}

// UpdatePatientRequest запрос на обновление профиля
// Все поля опциональны - обновляются только переданные значения
type UpdatePatientRequest struct {
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Conditions   *string `json:"conditions,omitempty"`
	Allergies    *string `json:"allergies,omitempty"`
	Medications  *string `json:"medications,omitempty"`
	MedicalNotes *string `json:"medicalNotes,omitempty"`
}

// ApplyToPatient применяет переданные поля к domain модели
func (r *UpdatePatientRequest) ApplyToPatient(p *domain.Patient) {
	if r.FirstName != nil {
		p.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		p.LastName = *r.LastName
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.Conditions != nil {
		p.Conditions = r.Conditions
	}
	if r.Allergies != nil {
		p.Allergies = r.Allergies
	}
	if r.Medications != nil {
		p.Medications = r.Medications
	}
	if r.MedicalNotes != nil {
		p.MedicalNotes = r.MedicalNotes
	}
}

// Response модели

// PatientResponse ответ с данными пользователя
type PatientResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`

	Conditions   *string `json:"conditions,omitempty"`
	Allergies    *string `json:"allergies,omitempty"`
	Medications  *string `json:"medications,omitempty"`
	MedicalNotes *string `json:"medicalNotes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainPatient конвертирует domain модель в DTO
func FromDomainPatient(p *domain.Patient) *PatientResponse {
	if p == nil {
		return nil
	}

	return &PatientResponse{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Phone:        p.Phone,
		Role:         string(p.Role),
		Conditions:   p.Conditions,
		Allergies:    p.Allergies,
		Medications:  p.Medications,
		MedicalNotes: p.MedicalNotes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
