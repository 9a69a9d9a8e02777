package usecase

import (
	"context"
	"strings"
	"time"

	"hospital/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type patientUseCase struct {
	repo    domain.PatientRepo
	audit   *logrus.Logger
	TimeOut time.Duration
}

func NewPatientUseCase(repo domain.PatientRepo, audit *logrus.Logger, to time.Duration) domain.PatientUseCase {
	return &patientUseCase{
		repo:    repo,
		audit:   audit,
		TimeOut: to,
	}
}

// GetAllPatient lists patients by name ascending. A non-empty search term
// filters by case-insensitive substring and is recorded in the audit log
// together with the result count.
func (pu *patientUseCase) GetAllPatient(ctx context.Context, search string) (*[]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	search = strings.TrimSpace(search)

	patients, err := pu.repo.GetAll(ctx, search)
	if err != nil {
		return nil, err
	}

	if search != "" {
		pu.audit.WithFields(logrus.Fields{
			"query":   search,
			"results": len(*patients),
		}).Infof("Search performed: %q returned %d result(s).", search, len(*patients))
	}

	return patients, nil
}

func (pu *patientUseCase) CreatePatient(ctx context.Context, payload *domain.Patient) error {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	sanitizePatient(payload)
	if verr := payload.Validate(); verr != nil {
		return verr
	}

	if err := pu.repo.Create(ctx, payload); err != nil {
		return err
	}

	pu.audit.WithField("name", payload.Name).Info("New patient added")
	return nil
}

func (pu *patientUseCase) GetPatientByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetByID(ctx, id)
}

// UpdatePatient is a full replace: every business field is validated and
// rewritten, then the stored record is re-fetched and returned.
func (pu *patientUseCase) UpdatePatient(ctx context.Context, id uuid.UUID, payload *domain.Patient) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	sanitizePatient(payload)
	if verr := payload.Validate(); verr != nil {
		return nil, verr
	}

	payload.ID = id
	if err := pu.repo.Update(ctx, payload); err != nil {
		return nil, err
	}

	updated, err := pu.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pu.audit.WithField("name", updated.Name).Info("Patient updated")
	return updated, nil
}

func sanitizePatient(p *domain.Patient) {
	p.Name = strings.TrimSpace(p.Name)
	p.Gender = strings.TrimSpace(p.Gender)
	p.ContactNumber = strings.TrimSpace(p.ContactNumber)
	p.Address = strings.TrimSpace(p.Address)
}
