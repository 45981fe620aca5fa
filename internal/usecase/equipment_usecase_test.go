package usecase

import (
	"context"
	"errors"
	"testing"

	"avflow/internal/domain/entities"
	mock_interfaces "avflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEquipmentUseCase_Add(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewEquipmentUseCase(nil)
		_, err := uc.Add(context.Background(), "   ", "Som", 1, 10)
		if !errors.Is(err, ErrInvalidEquipmentName) {
			t.Fatalf("expected ErrInvalidEquipmentName, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		uc := NewEquipmentUseCase(nil)
		_, err := uc.Add(context.Background(), "Mesa de Som", "Som", -1, 10)
		if !errors.Is(err, ErrInvalidTotalQuantity) {
			t.Fatalf("expected ErrInvalidTotalQuantity, got %v", err)
		}
	})

	t.Run("negative rate", func(t *testing.T) {
		uc := NewEquipmentUseCase(nil)
		_, err := uc.Add(context.Background(), "Mesa de Som", "Som", 1, -10)
		if !errors.Is(err, ErrInvalidDailyRate) {
			t.Fatalf("expected ErrInvalidDailyRate, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIEntityStore(ctrl)
		uc := NewEquipmentUseCase(store)

		store.EXPECT().AddEquipment(gomock.Any(), gomock.AssignableToTypeOf(entities.Equipment{})).DoAndReturn(
			func(_ context.Context, eq entities.Equipment) (entities.Equipment, error) {
				if eq.ID == "" || eq.Name != "Mesa de Som" || eq.TotalQuantity != 3 || eq.DailyRate != 450 {
					t.Fatalf("unexpected equipment: %+v", eq)
				}
				return eq, nil
			},
		)

		eq, err := uc.Add(context.Background(), " Mesa de Som ", "Som", 3, 450)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if eq.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestEquipmentUseCase_Remove(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewEquipmentUseCase(nil)
		if err := uc.Remove(context.Background(), "  "); !errors.Is(err, ErrInvalidEquipmentID) {
			t.Fatalf("expected ErrInvalidEquipmentID, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIEntityStore(ctrl)
		uc := NewEquipmentUseCase(store)

		store.EXPECT().RemoveEquipment(gomock.Any(), "eq-1").Return(false, nil)

		if err := uc.Remove(context.Background(), "eq-1"); !errors.Is(err, ErrEquipmentNotFound) {
			t.Fatalf("expected ErrEquipmentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIEntityStore(ctrl)
		uc := NewEquipmentUseCase(store)

		store.EXPECT().RemoveEquipment(gomock.Any(), "eq-1").Return(true, nil)

		if err := uc.Remove(context.Background(), "eq-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
