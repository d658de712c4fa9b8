package domain

import "time"

// Patient is the core record managed by the service. Dates of birth are
// carried as ISO "2006-01-02" strings on the wire; timestamps are full
// RFC3339. JSON names stay camelCase to match the dashboard contract.
type Patient struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	DOB         string    `json:"dob"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PatientDraft carries the writable fields of a patient record.
type PatientDraft struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	DOB         string
}

// PatientPatch carries a partial update; nil fields are left untouched.
type PatientPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	DOB         *string
}

// Empty reports whether the patch carries no fields at all.
func (p PatientPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.PhoneNumber == nil && p.DOB == nil
}

// DOBLayout is the wire format for dates of birth.
const DOBLayout = "2006-01-02"

// ValidDOB reports whether dob parses as an ISO date strictly before now.
func ValidDOB(dob string, now time.Time) bool {
	t, err := time.Parse(DOBLayout, dob)
	if err != nil {
		return false
	}
	return t.Before(now)
}
