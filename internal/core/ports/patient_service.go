package ports

import (
	"context"

	"github.com/medrecords/patient-system/internal/core/domain"
)

type PatientService interface {
	List(ctx context.Context) ([]*domain.Patient, error)
	Get(ctx context.Context, id int) (*domain.Patient, error)
	Create(ctx context.Context, draft domain.PatientDraft) (*domain.Patient, error)
	Update(ctx context.Context, id int, patch domain.PatientPatch) (*domain.Patient, error)
	Delete(ctx context.Context, id int) error
}
