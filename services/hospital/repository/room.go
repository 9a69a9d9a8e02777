package repository

import (
	"context"
	"errors"
	"fmt"

	"hospital/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(database *gorm.DB) domain.RoomRepo {
	return &roomRepository{
		db: database,
	}
}

func (rr *roomRepository) GetAll(ctx context.Context) (*[]domain.Room, error) {
	var rooms []domain.Room

	err := rr.db.WithContext(ctx).Order("room_number asc").Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("could not retrieve rooms: %w", err)
	}

	return &rooms, nil
}

func (rr *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	if err := rr.db.WithContext(ctx).Create(room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRoomNumber
		}
		return fmt.Errorf("could not insert room: %w", err)
	}
	return nil
}

func (rr *roomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	var room domain.Room

	err := rr.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("could not get room: %w", err)
	}

	return &room, nil
}

// FindByNumber looks up a room by its number, optionally excluding one id
// so an update does not collide with the record being updated.
func (rr *roomRepository) FindByNumber(ctx context.Context, number string, excludeID uuid.UUID) (*domain.Room, error) {
	var room domain.Room

	query := rr.db.WithContext(ctx).Where("room_number = ?", number)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	err := query.First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("could not look up room number: %w", err)
	}

	return &room, nil
}

func (rr *roomRepository) Update(ctx context.Context, room *domain.Room) error {
	result := rr.db.WithContext(ctx).Model(&domain.Room{}).
		Where("id = ?", room.ID).
		Updates(map[string]interface{}{
			"room_number": room.RoomNumber,
			"type":        room.Type,
			"is_occupied": room.IsOccupied,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRoomNumber
		}
		return fmt.Errorf("could not update room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// Delete removes the room and returns the removed record for logging and
// user confirmation.
func (rr *roomRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	room, err := rr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := rr.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Room{}).Error; err != nil {
		return nil, fmt.Errorf("could not delete room: %w", err)
	}

	return room, nil
}
