package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medrecords/patient-system/internal/core/domain"
)

type stubPatientService struct {
	listFn   func(ctx context.Context) ([]*domain.Patient, error)
	getFn    func(ctx context.Context, id int) (*domain.Patient, error)
	createFn func(ctx context.Context, draft domain.PatientDraft) (*domain.Patient, error)
	updateFn func(ctx context.Context, id int, patch domain.PatientPatch) (*domain.Patient, error)
	deleteFn func(ctx context.Context, id int) error
}

func (s *stubPatientService) List(ctx context.Context) ([]*domain.Patient, error) {
	return s.listFn(ctx)
}

func (s *stubPatientService) Get(ctx context.Context, id int) (*domain.Patient, error) {
	return s.getFn(ctx, id)
}

func (s *stubPatientService) Create(ctx context.Context, draft domain.PatientDraft) (*domain.Patient, error) {
	return s.createFn(ctx, draft)
}

func (s *stubPatientService) Update(ctx context.Context, id int, patch domain.PatientPatch) (*domain.Patient, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubPatientService) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestPatientHandler_List(t *testing.T) {
	stub := &stubPatientService{
		listFn: func(context.Context) ([]*domain.Patient, error) {
			return []*domain.Patient{
				{ID: 1, FirstName: "John", LastName: "Doe", Email: "john@email.com"},
				{ID: 2, FirstName: "Jane", LastName: "Smith", Email: "jane@email.com"},
			}, nil
		},
	}
	c, rec := newTestContext(t, http.MethodGet, "/api/patients", "")

	if err := NewPatientHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	if resp["success"] != true {
		t.Fatalf("expected success envelope: %+v", resp)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("expected 2 patients, got %+v", resp["data"])
	}
}

func TestPatientHandler_Get_InvalidID(t *testing.T) {
	stub := &stubPatientService{
		getFn: func(context.Context, int) (*domain.Patient, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewPatientHandler(stub)

	for _, raw := range []string{"abc", "0", "-4", "1.5"} {
		c, rec := newTestContext(t, http.MethodGet, "/api/patients/"+raw, "")
		c.SetParamNames("id")
		c.SetParamValues(raw)

		if err := handler.Get(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400, got %d", raw, rec.Code)
		}
		resp := decodeEnvelope(t, rec)
		if resp["error"] != "Invalid patient ID" {
			t.Fatalf("unexpected error text: %+v", resp)
		}
	}
}

func TestPatientHandler_Get_NotFound(t *testing.T) {
	stub := &stubPatientService{
		getFn: func(context.Context, int) (*domain.Patient, error) {
			return nil, domain.ErrPatientNotFound
		},
	}
	c, _ := newTestContext(t, http.MethodGet, "/api/patients/99999", "")
	c.SetParamNames("id")
	c.SetParamValues("99999")

	err := NewPatientHandler(stub).Get(c)
	if !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound to propagate, got %v", err)
	}
}

func TestPatientHandler_Create_Success(t *testing.T) {
	stub := &stubPatientService{
		createFn: func(_ context.Context, draft domain.PatientDraft) (*domain.Patient, error) {
			if draft.FirstName != "John" || draft.Email != "john@email.com" {
				t.Fatalf("unexpected draft: %+v", draft)
			}
			return &domain.Patient{ID: 4, FirstName: draft.FirstName, LastName: draft.LastName,
				Email: draft.Email, PhoneNumber: draft.PhoneNumber, DOB: draft.DOB}, nil
		},
	}
	body := `{"firstName":"John","lastName":"Doe","email":"john@email.com","phoneNumber":"+1234567890","dob":"1985-06-15"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/patients", body)

	if err := NewPatientHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Patient created successfully" {
		t.Fatalf("unexpected message: %+v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["id"] != float64(4) {
		t.Fatalf("expected created patient in data: %+v", resp)
	}
}

func TestPatientHandler_Create_ValidationMessages(t *testing.T) {
	stub := &stubPatientService{
		createFn: func(context.Context, domain.PatientDraft) (*domain.Patient, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewPatientHandler(stub)

	long := strings.Repeat("x", 51)
	cases := []struct {
		name, body, want string
	}{
		{"missing first name", `{"lastName":"Doe","email":"a@b.com","phoneNumber":"+1234567890","dob":"1985-06-15"}`, "First name is required"},
		{"first name too long", `{"firstName":"` + long + `","lastName":"Doe","email":"a@b.com","phoneNumber":"+1234567890","dob":"1985-06-15"}`, "First name too long"},
		{"missing last name", `{"firstName":"John","email":"a@b.com","phoneNumber":"+1234567890","dob":"1985-06-15"}`, "Last name is required"},
		{"bad email", `{"firstName":"John","lastName":"Doe","email":"not-an-email","phoneNumber":"+1234567890","dob":"1985-06-15"}`, "Invalid email address"},
		{"short phone", `{"firstName":"John","lastName":"Doe","email":"a@b.com","phoneNumber":"12345","dob":"1985-06-15"}`, "Phone number must be at least 10 digits"},
		{"long phone", `{"firstName":"John","lastName":"Doe","email":"a@b.com","phoneNumber":"1234567890123456","dob":"1985-06-15"}`, "Phone number too long"},
		{"future dob", `{"firstName":"John","lastName":"Doe","email":"a@b.com","phoneNumber":"+1234567890","dob":"2999-01-01"}`, "Invalid date of birth"},
		{"garbled dob", `{"firstName":"John","lastName":"Doe","email":"a@b.com","phoneNumber":"+1234567890","dob":"June 15"}`, "Invalid date of birth"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodPost, "/api/patients", tc.body)
			if err := handler.Create(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			resp := decodeEnvelope(t, rec)
			if resp["error"] != "Invalid input" {
				t.Fatalf("unexpected error text: %+v", resp)
			}
			if resp["message"] != tc.want {
				t.Fatalf("expected message %q, got %+v", tc.want, resp["message"])
			}
		})
	}
}

func TestPatientHandler_Create_EmailConflict(t *testing.T) {
	stub := &stubPatientService{
		createFn: func(context.Context, domain.PatientDraft) (*domain.Patient, error) {
			return nil, domain.ErrEmailExists
		},
	}
	body := `{"firstName":"John","lastName":"Doe","email":"taken@email.com","phoneNumber":"+1234567890","dob":"1985-06-15"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/patients", body)

	err := NewPatientHandler(stub).Create(c)
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists to propagate, got %v", err)
	}
}

func TestPatientHandler_Update_PartialPatch(t *testing.T) {
	stub := &stubPatientService{
		updateFn: func(_ context.Context, id int, patch domain.PatientPatch) (*domain.Patient, error) {
			if id != 3 {
				t.Fatalf("unexpected id: %d", id)
			}
			if patch.PhoneNumber == nil || *patch.PhoneNumber != "+1999999999" {
				t.Fatalf("expected phone in patch: %+v", patch)
			}
			if patch.FirstName != nil || patch.LastName != nil || patch.Email != nil || patch.DOB != nil {
				t.Fatalf("absent fields must stay nil: %+v", patch)
			}
			return &domain.Patient{ID: id, PhoneNumber: *patch.PhoneNumber}, nil
		},
	}
	c, rec := newTestContext(t, http.MethodPut, "/api/patients/3", `{"phoneNumber":"+1999999999"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := NewPatientHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Patient updated successfully" {
		t.Fatalf("unexpected message: %+v", resp)
	}
}

func TestPatientHandler_Update_InvalidPresentField(t *testing.T) {
	stub := &stubPatientService{
		updateFn: func(context.Context, int, domain.PatientPatch) (*domain.Patient, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	c, rec := newTestContext(t, http.MethodPut, "/api/patients/3", `{"firstName":""}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := NewPatientHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "First name is required" {
		t.Fatalf("unexpected message: %+v", resp)
	}
}

func TestPatientHandler_Update_BadJSON(t *testing.T) {
	stub := &stubPatientService{
		updateFn: func(context.Context, int, domain.PatientPatch) (*domain.Patient, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	c, rec := newTestContext(t, http.MethodPut, "/api/patients/3", "not-json")
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := NewPatientHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["error"] != "Invalid JSON body" {
		t.Fatalf("unexpected error text: %+v", resp)
	}
}

func TestPatientHandler_Update_EmptyPayload(t *testing.T) {
	stub := &stubPatientService{
		updateFn: func(_ context.Context, _ int, patch domain.PatientPatch) (*domain.Patient, error) {
			if !patch.Empty() {
				t.Fatalf("expected empty patch, got %+v", patch)
			}
			return nil, domain.ErrEmptyUpdate
		},
	}
	c, _ := newTestContext(t, http.MethodPut, "/api/patients/3", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := NewPatientHandler(stub).Update(c)
	if !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate to propagate, got %v", err)
	}
}

func TestPatientHandler_Delete(t *testing.T) {
	deleted := 0
	stub := &stubPatientService{
		deleteFn: func(_ context.Context, id int) error {
			deleted = id
			return nil
		},
	}
	c, rec := newTestContext(t, http.MethodDelete, "/api/patients/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := NewPatientHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != 5 {
		t.Fatalf("expected delete of 5, got %d", deleted)
	}

	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Patient deleted successfully" {
		t.Fatalf("unexpected message: %+v", resp)
	}
	if _, hasData := resp["data"]; hasData {
		t.Fatalf("delete must not return data: %+v", resp)
	}
}

func TestPatientHandler_Delete_NotFound(t *testing.T) {
	stub := &stubPatientService{
		deleteFn: func(context.Context, int) error {
			return domain.ErrPatientNotFound
		},
	}
	c, _ := newTestContext(t, http.MethodDelete, "/api/patients/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	err := NewPatientHandler(stub).Delete(c)
	if !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound to propagate, got %v", err)
	}
}
