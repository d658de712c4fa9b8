// Package seed loads demo fixtures into the in-memory stores. Seeding is a
// startup option controlled by configuration, not behavior owned by the
// stores themselves, so a deployment that wants an empty system simply
// turns it off.
package seed

import (
	"context"
	"fmt"

	"github.com/medrecords/patient-system/internal/core/domain"
	"github.com/medrecords/patient-system/internal/core/ports"
)

// Accounts created by Demo.
const (
	AdminUsername = "admin"
	UserUsername  = "user"
)

// Demo seeds two fixed accounts and a handful of sample patients.
func Demo(ctx context.Context, users ports.UserRepository, patients ports.PatientRepository, adminPassword, userPassword string) error {
	if _, err := users.Create(ctx, AdminUsername, adminPassword, domain.RoleAdmin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if _, err := users.Create(ctx, UserUsername, userPassword, domain.RoleUser); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	drafts := []domain.PatientDraft{
		{FirstName: "John", LastName: "Doe", Email: "john.doe@email.com", PhoneNumber: "+1234567890", DOB: "1985-06-15"},
		{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@email.com", PhoneNumber: "+1987654321", DOB: "1990-03-22"},
		{FirstName: "Michael", LastName: "Johnson", Email: "michael.johnson@email.com", PhoneNumber: "+1122334455", DOB: "1978-11-08"},
	}
	for _, d := range drafts {
		if _, err := patients.Create(ctx, d); err != nil {
			return fmt.Errorf("seed patient %s: %w", d.Email, err)
		}
	}

	return nil
}
