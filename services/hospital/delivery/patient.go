package delivery

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hospital/config"
	"hospital/domain"
	"hospital/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type patientHandler struct {
	puc   domain.PatientUseCase
	flash *middleware.Flash
}

func NewPatientDelivery(app *fiber.App, uc domain.PatientUseCase, flash *middleware.Flash) {
	handler := &patientHandler{
		puc:   uc,
		flash: flash,
	}

	route := app.Group("/patients")
	route.Get("/", handler.GetAllPatient)
	route.Get("/new", handler.NewPatientForm)
	route.Post("/", handler.CreatePatient)
	route.Get("/:id", handler.ViewPatient)
	route.Get("/:id/edit", handler.EditPatientForm)
	route.Post("/:id", handler.UpdatePatient)
}

func (ph *patientHandler) GetAllPatient(c *fiber.Ctx) error {
	search := c.Query("search")

	patients, err := ph.puc.GetAllPatient(c.Context(), search)
	if err != nil {
		config.GetLogrusInstance().Errorf("Error fetching patients: %v", err)
		ph.flash.Error(c, "Failed to load patients.")
		return c.Redirect("/")
	}

	return render(c, ph.flash, "patients/all_patients", fiber.Map{
		"Patients":    *patients,
		"SearchQuery": search,
	})
}

func (ph *patientHandler) NewPatientForm(c *fiber.Ctx) error {
	return render(c, ph.flash, "patients/new_patient", nil)
}

func (ph *patientHandler) CreatePatient(c *fiber.Ctx) error {
	payload, ok := parsePatientForm(c)
	if !ok {
		ph.flash.Error(c, "All fields are required.")
		return c.Redirect("/patients/new")
	}

	if err := ph.puc.CreatePatient(c.Context(), payload); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			ph.flash.Error(c, verr.Error())
			return c.Redirect("/patients/new")
		}
		config.GetLogrusInstance().Errorf("Error saving patient: %v", err)
		ph.flash.Error(c, "Failed to add patient. Please try again.")
		return c.Redirect("/patients/new")
	}

	ph.flash.Success(c, fmt.Sprintf("Patient %s added successfully.", payload.Name))
	return c.Redirect("/patients")
}

func (ph *patientHandler) ViewPatient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		ph.flash.Error(c, "Patient not found.")
		return c.Redirect("/patients")
	}

	patient, err := ph.puc.GetPatientByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			ph.flash.Error(c, "Patient not found.")
			return c.Redirect("/patients")
		}
		config.GetLogrusInstance().Errorf("Error fetching patient: %v", err)
		ph.flash.Error(c, "Failed to load patient.")
		return c.Redirect("/patients")
	}

	return render(c, ph.flash, "patients/view_patient", fiber.Map{"Patient": patient})
}

func (ph *patientHandler) EditPatientForm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		ph.flash.Error(c, "Patient not found.")
		return c.Redirect("/patients")
	}

	patient, err := ph.puc.GetPatientByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			ph.flash.Error(c, "Patient not found.")
			return c.Redirect("/patients")
		}
		config.GetLogrusInstance().Errorf("Error loading edit form: %v", err)
		ph.flash.Error(c, "Failed to load edit form.")
		return c.Redirect("/patients")
	}

	return render(c, ph.flash, "patients/edit_patient", fiber.Map{"Patient": patient})
}

func (ph *patientHandler) UpdatePatient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		ph.flash.Error(c, "Patient not found.")
		return c.Redirect("/patients")
	}

	payload, ok := parsePatientForm(c)
	if !ok {
		ph.flash.Error(c, "All fields are required.")
		return c.Redirect(fmt.Sprintf("/patients/%s/edit", id))
	}

	updated, err := ph.puc.UpdatePatient(c.Context(), id, payload)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrPatientNotFound):
			ph.flash.Error(c, "Patient not found.")
			return c.Redirect("/patients")
		case errors.As(err, &verr):
			ph.flash.Error(c, verr.Error())
			return c.Redirect(fmt.Sprintf("/patients/%s/edit", id))
		default:
			config.GetLogrusInstance().Errorf("Error updating patient: %v", err)
			ph.flash.Error(c, "Failed to update patient.")
			return c.Redirect(fmt.Sprintf("/patients/%s/edit", id))
		}
	}

	ph.flash.Success(c, fmt.Sprintf("Patient %s updated successfully.", updated.Name))
	return c.Redirect(fmt.Sprintf("/patients/%s", updated.ID))
}

// parsePatientForm reads the five business fields from the submitted form.
// ok is false when any field is missing or the age is not a number.
func parsePatientForm(c *fiber.Ctx) (*domain.Patient, bool) {
	name := c.FormValue("name")
	age := c.FormValue("age")
	gender := c.FormValue("gender")
	contactNumber := c.FormValue("contactNumber")
	address := c.FormValue("address")

	if name == "" || age == "" || gender == "" || contactNumber == "" || address == "" {
		return nil, false
	}

	parsedAge, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil {
		return nil, false
	}

	return &domain.Patient{
		Name:          name,
		Age:           parsedAge,
		Gender:        gender,
		ContactNumber: contactNumber,
		Address:       address,
	}, true
}
