package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospital/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type roomUseCase struct {
	repo    domain.RoomRepo
	audit   *logrus.Logger
	TimeOut time.Duration
}

func NewRoomUseCase(repo domain.RoomRepo, audit *logrus.Logger, to time.Duration) domain.RoomUseCase {
	return &roomUseCase{
		repo:    repo,
		audit:   audit,
		TimeOut: to,
	}
}

func (ru *roomUseCase) GetAllRoom(ctx context.Context) (*[]domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	return ru.repo.GetAll(ctx)
}

// CreateRoom pre-checks the trimmed room number for duplicates before the
// insert. The pre-check gives the user a specific message; the unique
// index behind repo.Create remains the arbiter when two creates race.
func (ru *roomUseCase) CreateRoom(ctx context.Context, payload *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	sanitizeRoom(payload)
	if verr := payload.Validate(); verr != nil {
		return verr
	}

	if err := ru.checkDuplicateNumber(ctx, payload.RoomNumber, uuid.Nil); err != nil {
		return err
	}

	if err := ru.repo.Create(ctx, payload); err != nil {
		return err
	}

	ru.audit.WithField("room_number", payload.RoomNumber).Infof("Room created: %s", payload.RoomNumber)
	return nil
}

func (ru *roomUseCase) GetRoomByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	return ru.repo.GetByID(ctx, id)
}

// UpdateRoom re-fetches the target, re-checks the number for duplicates
// excluding the record itself, then replaces all three editable fields.
func (ru *roomUseCase) UpdateRoom(ctx context.Context, id uuid.UUID, payload *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	room, err := ru.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sanitizeRoom(payload)
	if verr := payload.Validate(); verr != nil {
		return nil, verr
	}

	if err := ru.checkDuplicateNumber(ctx, payload.RoomNumber, id); err != nil {
		return nil, err
	}

	room.RoomNumber = payload.RoomNumber
	room.Type = payload.Type
	room.IsOccupied = payload.IsOccupied

	if err := ru.repo.Update(ctx, room); err != nil {
		return nil, err
	}

	ru.audit.WithField("room_number", room.RoomNumber).Infof("Room updated: %s", room.RoomNumber)
	return room, nil
}

// DeleteRoom is a hard delete. Deletion is a higher-attention event than
// create or update, so it logs at warning severity.
func (ru *roomUseCase) DeleteRoom(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	room, err := ru.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	ru.audit.WithField("room_number", room.RoomNumber).Warnf("Room deleted: %s", room.RoomNumber)
	return room, nil
}

func (ru *roomUseCase) checkDuplicateNumber(ctx context.Context, number string, excludeID uuid.UUID) error {
	_, err := ru.repo.FindByNumber(ctx, number, excludeID)
	if err == nil {
		return domain.ErrDuplicateRoomNumber
	}
	if !errors.Is(err, domain.ErrRoomNotFound) {
		return err
	}
	return nil
}

func sanitizeRoom(r *domain.Room) {
	r.RoomNumber = strings.TrimSpace(r.RoomNumber)
	r.Type = strings.TrimSpace(r.Type)
}
