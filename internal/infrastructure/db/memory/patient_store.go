package memory

import (
	"context"
	"sync"
	"time"

	"github.com/medrecords/patient-system/internal/core/domain"
)

// PatientStore holds patient records in insertion order, keyed by an
// auto-incrementing id. It is the sole writer of patient state; callers
// always receive copies and never aliases into the table. Email uniqueness
// is enforced under the write lock so racing creates cannot both win.
//
// There is no version field: two admins racing an update on the same id is
// last write wins.
type PatientStore struct {
	mu      sync.RWMutex
	order   []int
	byID    map[int]*domain.Patient
	idByEml map[string]int
	nextID  int
}

func NewPatientStore() *PatientStore {
	return &PatientStore{
		byID:    make(map[int]*domain.Patient),
		idByEml: make(map[string]int),
		nextID:  1,
	}
}

// List returns copies of all records in insertion order.
func (s *PatientStore) List(_ context.Context) ([]*domain.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Patient, 0, len(s.order))
	for _, id := range s.order {
		clone := *s.byID[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (s *PatientStore) FindByID(_ context.Context, id int) (*domain.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *PatientStore) Create(_ context.Context, draft domain.PatientDraft) (*domain.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.idByEml[draft.Email]; taken {
		return nil, domain.ErrEmailExists
	}

	now := time.Now().UTC()
	p := &domain.Patient{
		ID:          s.nextID,
		FirstName:   draft.FirstName,
		LastName:    draft.LastName,
		Email:       draft.Email,
		PhoneNumber: draft.PhoneNumber,
		DOB:         draft.DOB,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.byID[p.ID] = p
	s.idByEml[p.Email] = p.ID
	s.order = append(s.order, p.ID)

	clone := *p
	return &clone, nil
}

func (s *PatientStore) Update(_ context.Context, id int, patch domain.PatientPatch) (*domain.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}

	if patch.Email != nil {
		// A patient's own unchanged email never conflicts.
		if owner, taken := s.idByEml[*patch.Email]; taken && owner != id {
			return nil, domain.ErrEmailExists
		}
		delete(s.idByEml, p.Email)
		p.Email = *patch.Email
		s.idByEml[p.Email] = id
	}
	if patch.FirstName != nil {
		p.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		p.LastName = *patch.LastName
	}
	if patch.PhoneNumber != nil {
		p.PhoneNumber = *patch.PhoneNumber
	}
	if patch.DOB != nil {
		p.DOB = *patch.DOB
	}
	p.UpdatedAt = time.Now().UTC()

	clone := *p
	return &clone, nil
}

func (s *PatientStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return domain.ErrPatientNotFound
	}
	delete(s.byID, id)
	delete(s.idByEml, p.Email)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
