package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medrecords/patient-system/internal/api/metrics"
	"github.com/medrecords/patient-system/internal/core/domain"
	"github.com/medrecords/patient-system/internal/core/ports"
)

// PatientService implements patient CRUD over the patient store. Field
// formats are validated at the transport layer; business rules (email
// uniqueness, empty updates) live here and in the store.
type PatientService struct {
	repo ports.PatientRepository
	log  zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, log zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, log: log}
}

func (s *PatientService) List(ctx context.Context) ([]*domain.Patient, error) {
	return s.repo.List(ctx)
}

func (s *PatientService) Get(ctx context.Context, id int) (*domain.Patient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PatientService) Create(ctx context.Context, draft domain.PatientDraft) (*domain.Patient, error) {
	patient, err := s.repo.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	metrics.PatientMutationsTotal.WithLabelValues("create").Inc()
	s.log.Info().Int("patient_id", patient.ID).Msg("patient created")
	return patient, nil
}

func (s *PatientService) Update(ctx context.Context, id int, patch domain.PatientPatch) (*domain.Patient, error) {
	if patch.Empty() {
		return nil, domain.ErrEmptyUpdate
	}

	patient, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	metrics.PatientMutationsTotal.WithLabelValues("update").Inc()
	s.log.Info().Int("patient_id", patient.ID).Msg("patient updated")
	return patient, nil
}

func (s *PatientService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.PatientMutationsTotal.WithLabelValues("delete").Inc()
	s.log.Info().Int("patient_id", id).Msg("patient deleted")
	return nil
}
