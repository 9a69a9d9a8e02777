package usecase

import (
	"context"
	"errors"
	"sync/atomic"

	"hospital/domain"

	"github.com/google/uuid"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var _ domain.PatientRepo = (*MockPatientRepo)(nil)
var _ domain.RoomRepo = (*MockRoomRepo)(nil)

type MockPatientRepo struct {
	GetAllFunc  func(ctx context.Context, search string) (*[]domain.Patient, error)
	CreateFunc  func(ctx context.Context, patient *domain.Patient) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	UpdateFunc  func(ctx context.Context, patient *domain.Patient) error

	CreateCallCount int32
	UpdateCallCount int32
}

func (m *MockPatientRepo) GetAll(ctx context.Context, search string) (*[]domain.Patient, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx, search)
	}
	return &[]domain.Patient{}, nil
}

func (m *MockPatientRepo) Create(ctx context.Context, patient *domain.Patient) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientRepo) Update(ctx context.Context, patient *domain.Patient) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return nil
}

type MockRoomRepo struct {
	GetAllFunc       func(ctx context.Context) (*[]domain.Room, error)
	CreateFunc       func(ctx context.Context, room *domain.Room) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	FindByNumberFunc func(ctx context.Context, number string, excludeID uuid.UUID) (*domain.Room, error)
	UpdateFunc       func(ctx context.Context, room *domain.Room) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) (*domain.Room, error)

	CreateCallCount int32
	UpdateCallCount int32
}

func (m *MockRoomRepo) GetAll(ctx context.Context) (*[]domain.Room, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return &[]domain.Room{}, nil
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, room)
	}
	return nil
}

func (m *MockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockRoomRepo) FindByNumber(ctx context.Context, number string, excludeID uuid.UUID) (*domain.Room, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number, excludeID)
	}
	return nil, domain.ErrRoomNotFound
}

func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, room)
	}
	return nil
}

func (m *MockRoomRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, domain.ErrRoomNotFound
}
