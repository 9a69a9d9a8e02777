package repository

import (
	"context"
	"errors"
	"fmt"

	"hospital/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(database *gorm.DB) domain.PatientRepo {
	return &patientRepository{
		db: database,
	}
}

// GetAll returns patients sorted by name ascending. A non-empty search
// term narrows the result to case-insensitive substring matches on name.
func (pr *patientRepository) GetAll(ctx context.Context, search string) (*[]domain.Patient, error) {
	var patients []domain.Patient

	query := pr.db.WithContext(ctx).Order("name asc")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("could not retrieve patients: %w", err)
	}

	return &patients, nil
}

func (pr *patientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	if err := pr.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("could not insert patient: %w", err)
	}
	return nil
}

func (pr *patientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	var patient domain.Patient

	err := pr.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("could not get patient: %w", err)
	}

	return &patient, nil
}

// Update replaces all five business fields of the stored record.
func (pr *patientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	result := pr.db.WithContext(ctx).Model(&domain.Patient{}).
		Where("id = ?", patient.ID).
		Updates(map[string]interface{}{
			"name":           patient.Name,
			"age":            patient.Age,
			"gender":         patient.Gender,
			"contact_number": patient.ContactNumber,
			"address":        patient.Address,
		})
	if result.Error != nil {
		return fmt.Errorf("could not update patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}
