package usecase

import (
	"context"
	"errors"
	"strings"

	"avflow/internal/domain/entities"
	"avflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidEquipmentName = errors.New("invalid equipment name")
	ErrInvalidTotalQuantity = errors.New("invalid total quantity")
	ErrInvalidDailyRate     = errors.New("invalid daily rate")
)

// IEquipmentUseCase manages the rentable catalog. Removing equipment that
// budgets still reference is allowed; the dangling reference degrades to
// zero availability and blank display downstream.

type IEquipmentUseCase interface {
	List(ctx context.Context) ([]entities.Equipment, error)
	Add(ctx context.Context, name, category string, totalQuantity int, dailyRate float64) (entities.Equipment, error)
	Remove(ctx context.Context, id string) error
}

type EquipmentUseCase struct {
	store interfaces.IEntityStore
}

var _ IEquipmentUseCase = (*EquipmentUseCase)(nil)

func NewEquipmentUseCase(store interfaces.IEntityStore) *EquipmentUseCase {
	return &EquipmentUseCase{store: store}
}

func (u *EquipmentUseCase) List(ctx context.Context) ([]entities.Equipment, error) {
	return u.store.ListEquipments(ctx)
}

func (u *EquipmentUseCase) Add(ctx context.Context, name, category string, totalQuantity int, dailyRate float64) (entities.Equipment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Equipment{}, ErrInvalidEquipmentName
	}
	if totalQuantity < 0 {
		return entities.Equipment{}, ErrInvalidTotalQuantity
	}
	if dailyRate < 0 {
		return entities.Equipment{}, ErrInvalidDailyRate
	}

	eq := entities.Equipment{
		ID:            uuid.NewString(),
		Name:          name,
		Category:      strings.TrimSpace(category),
		TotalQuantity: totalQuantity,
		DailyRate:     dailyRate,
	}
	return u.store.AddEquipment(ctx, eq)
}

func (u *EquipmentUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEquipmentID
	}

	removed, err := u.store.RemoveEquipment(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrEquipmentNotFound
	}
	return nil
}
