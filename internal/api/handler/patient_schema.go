package handler

import "github.com/medrecords/patient-system/internal/core/domain"

// Request types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to
// internal changes.

type createPatientRequest struct {
	FirstName   string `json:"firstName"   validate:"required,max=50"`
	LastName    string `json:"lastName"    validate:"required,max=50"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=10,max=15"`
	DOB         string `json:"dob"         validate:"required,dob"`
}

func (r createPatientRequest) draft() domain.PatientDraft {
	return domain.PatientDraft{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		DOB:         r.DOB,
	}
}

// updatePatientRequest is the partial-update payload: absent fields stay
// nil and untouched; present fields must individually satisfy the same
// rules as on create.
type updatePatientRequest struct {
	FirstName   *string `json:"firstName"   validate:"omitnil,min=1,max=50"`
	LastName    *string `json:"lastName"    validate:"omitnil,min=1,max=50"`
	Email       *string `json:"email"       validate:"omitnil,email"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitnil,min=10,max=15"`
	DOB         *string `json:"dob"         validate:"omitnil,dob"`
}

func (r updatePatientRequest) patch() domain.PatientPatch {
	return domain.PatientPatch{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		DOB:         r.DOB,
	}
}
