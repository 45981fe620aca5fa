package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"avflow/internal/domain/entities"
	"avflow/internal/usecase/interfaces"
)

var (
	ErrInvalidEquipmentID = errors.New("invalid equipment id")
	ErrInvalidDateRange   = errors.New("invalid date range")
)

// IAvailabilityUseCase exposes the reservation engine: how many units of an
// equipment item are free for a prospective rental window.

type IAvailabilityUseCase interface {
	AvailableStock(ctx context.Context, equipmentID string, rangeStart, rangeEnd time.Time) (int, error)
}

type AvailabilityUseCase struct {
	store interfaces.IEntityStore
}

var _ IAvailabilityUseCase = (*AvailabilityUseCase)(nil)

func NewAvailabilityUseCase(store interfaces.IEntityStore) *AvailabilityUseCase {
	return &AvailabilityUseCase{store: store}
}

// AvailableStock computes free units for [rangeStart, rangeEnd].
//
// Only approved budgets reserve stock. A budget blocks the equipment over its
// whole [PickupDate, ReturnDate] span, tested with inclusive closed-interval
// overlap, so a zero-length query range still collides with any budget whose
// span contains that day. Unknown equipment resolves to 0 capacity rather
// than an error. The scan is recomputed on every query: with a single
// operator's inventory the O(budgets x items) cost is not worth indexing.
func (u *AvailabilityUseCase) AvailableStock(ctx context.Context, equipmentID string, rangeStart, rangeEnd time.Time) (int, error) {
	equipmentID = strings.TrimSpace(equipmentID)
	if equipmentID == "" {
		return 0, ErrInvalidEquipmentID
	}
	if rangeStart.After(rangeEnd) {
		return 0, ErrInvalidDateRange
	}

	eq, err := u.store.GetEquipment(ctx, equipmentID)
	if err != nil {
		return 0, err
	}
	if eq.ID == "" {
		return 0, nil
	}

	budgets, err := u.store.ListBudgets(ctx)
	if err != nil {
		return 0, err
	}

	reserved := 0
	for _, b := range budgets {
		if b.Status != entities.BudgetStatusApproved {
			continue
		}
		if !overlaps(rangeStart, rangeEnd, b.PickupDate, b.ReturnDate) {
			continue
		}
		if it, ok := b.ItemFor(equipmentID); ok {
			reserved += it.Quantity
		}
	}

	available := eq.TotalQuantity - reserved
	if available < 0 {
		// Reservations can exceed the fleet if TotalQuantity was reduced
		// after approvals; clamp at read time instead of failing.
		return 0, nil
	}
	return available, nil
}

// overlaps reports whether the closed intervals [s1,e1] and [s2,e2]
// intersect: s1 <= e2 && s2 <= e1.
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}
