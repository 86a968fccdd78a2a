package patients

import (
	"context"

	"github.com/m04kA/AMC-BookingService/internal/service/patients/models"
)

type PatientsService interface {
	Register(ctx context.Context, req *models.RegisterPatientRequest) (*models.PatientResponse, error)
	GetByID(ctx context.Context, id int64, requesterID int64, isAdmin bool) (*models.PatientResponse, error)
	Update(ctx context.Context, id int64, requesterID int64, isAdmin bool, req *models.UpdatePatientRequest) (*models.PatientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
