package ports

import (
	"context"

	"github.com/medrecords/patient-system/internal/core/domain"
)

// PatientRepository defines persistence for patient records. The store is
// the sole writer: uniqueness of email is enforced under its lock so two
// concurrent creates cannot both succeed.
type PatientRepository interface {
	// List returns all patients in insertion order.
	List(ctx context.Context) ([]*domain.Patient, error)
	FindByID(ctx context.Context, id int) (*domain.Patient, error)
	// Create assigns the next sequential id and both timestamps.
	// Returns domain.ErrEmailExists when the email is already taken.
	Create(ctx context.Context, draft domain.PatientDraft) (*domain.Patient, error)
	// Update merges the non-nil patch fields and refreshes UpdatedAt.
	// Returns domain.ErrEmailExists when the new email belongs to a
	// different patient; a patient's own unchanged email never conflicts.
	Update(ctx context.Context, id int, patch domain.PatientPatch) (*domain.Patient, error)
	Delete(ctx context.Context, id int) error
}
