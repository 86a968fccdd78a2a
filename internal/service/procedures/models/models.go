package models

import (
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
)

// Request модели

// CreateProcedureRequest запрос на создание процедуры
type CreateProcedureRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceLabel  string   `json:"priceLabel"` // "$250.000" или "$150.000 - $300.000"
	Category    string   `json:"category"`   // Facial | Corporal | Capilar
	ImageURLs   []string `json:"imageUrls,omitempty"`
	Featured    bool     `json:"featured"`
}

// ToDomainProcedure конвертирует запрос в domain модель
func (r *CreateProcedureRequest) ToDomainProcedure() *domain.Procedure {
	return &domain.Procedure{
		Name:        r.Name,
		Description: r.Description,
		PriceLabel:  r.PriceLabel,
		Category:    domain.ProcedureCategory(r.Category),
		ImageURLs:   r.ImageURLs,
		Featured:    r.Featured,
	}
}

// UpdateProcedureRequest запрос на обновление процедуры
// Все поля опциональны - обновляются только переданные значения
type UpdateProcedureRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	PriceLabel  *string   `json:"priceLabel,omitempty"`
	Category    *string   `json:"category,omitempty"`
	ImageURLs   *[]string `json:"imageUrls,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
}

// ApplyToProcedure применяет переданные поля к domain модели
func (r *UpdateProcedureRequest) ApplyToProcedure(proc *domain.Procedure) {
	if r.Name != nil {
		proc.Name = *r.Name
	}
	if r.Description != nil {
		proc.Description = *r.Description
	}
	if r.PriceLabel != nil {
		proc.PriceLabel = *r.PriceLabel
	}
	if r.Category != nil {
		proc.Category = domain.ProcedureCategory(*r.Category)
	}
	if r.ImageURLs != nil {
		proc.ImageURLs = *r.ImageURLs
	}
	if r.Featured != nil {
		proc.Featured = *r.Featured
	}
}

// ListProceduresRequest запрос на получение каталога процедур
type ListProceduresRequest struct {
	Category     *string `json:"category,omitempty"`
	FeaturedOnly bool    `json:"featuredOnly,omitempty"`
}

// Response модели

// ProcedureResponse ответ с данными процедуры
type ProcedureResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceLabel  string    `json:"priceLabel"`
	Category    string    `json:"category"`
	ImageURLs   []string  `json:"imageUrls"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProcedureListResponse ответ со списком процедур
type ProcedureListResponse struct {
	Procedures []ProcedureResponse `json:"procedures"`
}

// Методы конвертации

// FromDomainProcedure конвертирует domain модель в DTO
func FromDomainProcedure(p *domain.Procedure) *ProcedureResponse {
	if p == nil {
		return nil
	}

	imageURLs := p.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return &ProcedureResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceLabel:  p.PriceLabel,
		Category:    string(p.Category),
		ImageURLs:   imageURLs,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromDomainProcedureList конвертирует список domain моделей в DTO
func FromDomainProcedureList(procedures []*domain.Procedure) *ProcedureListResponse {
	resp := &ProcedureListResponse{
		Procedures: make([]ProcedureResponse, len(procedures)),
	}

	for i, proc := range procedures {
		if procResp := FromDomainProcedure(proc); procResp != nil {
			resp.Procedures[i] = *procResp
		}
	}

	return resp
}
