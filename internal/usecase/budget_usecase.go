package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"avflow/internal/domain/entities"
	"avflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound       = errors.New("budget not found")
	ErrInvalidBudgetID      = errors.New("invalid budget id")
	ErrInvalidStatus        = errors.New("invalid budget status")
	ErrInvalidInitialStatus = errors.New("invalid initial budget status")
	ErrInvalidClientID      = errors.New("invalid client id")
	ErrClientNotFound       = errors.New("client not found")
	ErrNoItems              = errors.New("budget has no items")
	ErrDuplicateEquipment   = errors.New("duplicate equipment in budget")
	ErrInvalidQuantity      = errors.New("invalid item quantity")
	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrInsufficientStock    = errors.New("insufficient stock for requested dates")
)

// BudgetItemInput is one requested line of a new budget. PricePerDay below or
// at zero means "snapshot the catalog rate at creation time".
type BudgetItemInput struct {
	EquipmentID string
	Quantity    int
	PricePerDay float64
}

// CreateBudgetInput carries everything needed to build a budget. Status must
// be draft or sent; a budget is never born approved.
type CreateBudgetInput struct {
	ClientID   string
	Status     entities.BudgetStatus
	PickupDate time.Time
	EventDate  time.Time
	ReturnDate time.Time
	Items      []BudgetItemInput
	Discount   float64
}

// IBudgetUseCase manages the budget lifecycle: creation with a priced,
// immutable total and unrestricted status transitions afterwards.

type IBudgetUseCase interface {
	Create(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	SetStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	store        interfaces.IEntityStore
	availability IAvailabilityUseCase
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(store interfaces.IEntityStore, availability IAvailabilityUseCase) *BudgetUseCase {
	return &BudgetUseCase{store: store, availability: availability}
}

// Create validates the request, snapshots per-item prices, computes the total
// once and appends the budget.
//
// The stock check here is advisory: availability is read before the append
// and nothing serializes the two, so two creations racing over the same
// window can both pass and together overbook. Capacity only becomes real
// when a budget is approved, which is where a hardened deployment would put
// its serialization point.
func (u *BudgetUseCase) Create(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Budget{}, ErrInvalidClientID
	}
	if in.Status != entities.BudgetStatusDraft && in.Status != entities.BudgetStatusSent {
		return entities.Budget{}, ErrInvalidInitialStatus
	}
	if len(in.Items) == 0 {
		return entities.Budget{}, ErrNoItems
	}

	client, err := u.store.GetClient(ctx, clientID)
	if err != nil {
		return entities.Budget{}, err
	}
	if client.ID == "" {
		return entities.Budget{}, ErrClientNotFound
	}

	seen := make(map[string]bool, len(in.Items))
	items := make([]entities.BudgetItem, 0, len(in.Items))
	for _, it := range in.Items {
		equipmentID := strings.TrimSpace(it.EquipmentID)
		if equipmentID == "" {
			return entities.Budget{}, ErrInvalidEquipmentID
		}
		if seen[equipmentID] {
			return entities.Budget{}, ErrDuplicateEquipment
		}
		seen[equipmentID] = true
		if it.Quantity < 1 {
			return entities.Budget{}, ErrInvalidQuantity
		}

		eq, err := u.store.GetEquipment(ctx, equipmentID)
		if err != nil {
			return entities.Budget{}, err
		}
		if eq.ID == "" {
			return entities.Budget{}, ErrEquipmentNotFound
		}

		available, err := u.availability.AvailableStock(ctx, equipmentID, in.PickupDate, in.ReturnDate)
		if err != nil {
			return entities.Budget{}, err
		}
		if it.Quantity > available {
			return entities.Budget{}, ErrInsufficientStock
		}

		pricePerDay := it.PricePerDay
		if pricePerDay <= 0 {
			pricePerDay = eq.DailyRate
		}
		items = append(items, entities.BudgetItem{
			EquipmentID: equipmentID,
			Quantity:    it.Quantity,
			PricePerDay: pricePerDay,
		})
	}

	b := entities.Budget{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		Status:     in.Status,
		PickupDate: in.PickupDate,
		EventDate:  in.EventDate,
		ReturnDate: in.ReturnDate,
		Items:      items,
		Discount:   in.Discount,
		Total:      ComputeTotal(items, in.PickupDate, in.ReturnDate, in.Discount),
		CreatedAt:  time.Now().UTC(),
	}
	return u.store.AppendBudget(ctx, b)
}

// SetStatus replaces the budget's status unconditionally. Any transition is
// accepted, including same-to-same; the total is never touched.
func (u *BudgetUseCase) SetStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	if !status.Valid() {
		return entities.Budget{}, ErrInvalidStatus
	}

	updated, err := u.store.SetBudgetStatus(ctx, id, status)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.store.GetBudget(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	return u.store.ListBudgets(ctx)
}
