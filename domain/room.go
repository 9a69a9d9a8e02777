package domain

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room is a single room record. RoomNumber is unique across the whole
// collection; the unique index is the final arbiter when two creates race
// past the service-level duplicate check.
type Room struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoomNumber string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"room_number" valid:"required~Room number is required"`
	Type       string    `gorm:"type:room_type_enum;not null" json:"type" valid:"required~Room type must be selected,in(General|Private|ICU|Emergency)~Room type must be General, Private, ICU, or Emergency"`
	IsOccupied bool      `gorm:"not null;default:false" json:"is_occupied"`
	// AssignedPatient is a weak reference: no FK constraint, no cascade.
	// Occupancy and assignment are independently mutable.
	AssignedPatient *uuid.UUID `gorm:"type:uuid" json:"assigned_patient,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Validate collects every field failure, independent of the storage-level
// unique index and enum types.
func (r *Room) Validate() *ValidationError {
	var fields []string

	if _, err := govalidator.ValidateStruct(r); err != nil {
		for _, msg := range govalidator.ErrorsByField(err) {
			fields = append(fields, msg)
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

type RoomRepo interface {
	GetAll(ctx context.Context) (*[]Room, error)
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*Room, error)
	FindByNumber(ctx context.Context, number string, excludeID uuid.UUID) (*Room, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id uuid.UUID) (*Room, error)
}

type RoomUseCase interface {
	GetAllRoom(ctx context.Context) (*[]Room, error)
	CreateRoom(ctx context.Context, payload *Room) error
	GetRoomByID(ctx context.Context, id uuid.UUID) (*Room, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, payload *Room) (*Room, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) (*Room, error)
}
