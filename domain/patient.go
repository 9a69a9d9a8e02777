package domain

import (
	"context"
	"regexp"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient is a single patient record. All five business fields are
// mandatory; partial records never persist.
type Patient struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(150);not null" json:"name" valid:"required~Patient name is required"`
	Age           int       `gorm:"not null" json:"age"`
	Gender        string    `gorm:"type:gender_enum;not null" json:"gender" valid:"required~Gender is required,in(Male|Female|Other)~Gender must be Male, Female, or Other"`
	ContactNumber string    `gorm:"type:varchar(20);not null" json:"contact_number" valid:"required~Contact number is required"`
	Address       string    `gorm:"type:text;not null" json:"address" valid:"required~Address is required"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

var contactNumberPattern = regexp.MustCompile(`^[\d\s+]+$`)

// Validate checks every business field and collects the full failure list.
// It runs before any persistence call, independent of storage constraints.
func (p *Patient) Validate() *ValidationError {
	var fields []string

	if _, err := govalidator.ValidateStruct(p); err != nil {
		for _, msg := range govalidator.ErrorsByField(err) {
			fields = append(fields, msg)
		}
	}

	if p.Age < 0 {
		fields = append(fields, "Age cannot be negative")
	}

	if p.ContactNumber != "" && !contactNumberPattern.MatchString(p.ContactNumber) {
		fields = append(fields, `Contact number can only contain digits, spaces, or "+"`)
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

type PatientRepo interface {
	GetAll(ctx context.Context, search string) (*[]Patient, error)
	Create(ctx context.Context, patient *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, patient *Patient) error
}

type PatientUseCase interface {
	GetAllPatient(ctx context.Context, search string) (*[]Patient, error)
	CreatePatient(ctx context.Context, payload *Patient) error
	GetPatientByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, payload *Patient) (*Patient, error)
}
