package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/medrecords/patient-system/internal/core/ports"
)

// PatientHandler handles HTTP requests for patient CRUD.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// patientID parses and validates the :id path parameter.
func patientID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List handles GET /api/patients.
//
// @Summary      List all patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /api/patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, OK(patients))
}

// Get handles GET /api/patients/:id.
//
// @Summary      Get a patient by id
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Patient id"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	id, ok := patientID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, Fail("Invalid patient ID", ""))
	}

	patient, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, OK(patient))
}

// Create handles POST /api/patients.
//
// @Summary      Create a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPatientRequest  true  "New patient"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /api/patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req createPatientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid JSON body", ""))
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid input", err.Error()))
	}

	patient, err := h.service.Create(c.Request().Context(), req.draft())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, OKMessage(patient, "Patient created successfully"))
}

// Update handles PUT /api/patients/:id.
//
// @Summary      Partially update a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Patient id"
// @Param        body  body      updatePatientRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /api/patients/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	id, ok := patientID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, Fail("Invalid patient ID", ""))
	}

	var req updatePatientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid JSON body", ""))
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid input", err.Error()))
	}

	patient, err := h.service.Update(c.Request().Context(), id, req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, OKMessage(patient, "Patient updated successfully"))
}

// Delete handles DELETE /api/patients/:id.
//
// @Summary      Delete a patient
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Patient id"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/patients/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	id, ok := patientID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, Fail("Invalid patient ID", ""))
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "Patient deleted successfully"})
}
