package interfaces

import (
	"context"

	"avflow/internal/domain/entities"
)

//go:generate mockgen -source=entity_store_interface.go -destination=mocks/entity_store_mock.go -package=mocks

// IEntityStore owns the three in-memory collections (equipments, clients,
// budgets) and mirrors every mutation to the key-value persistence layer.
//
// Lookup methods return the zero entity (empty ID) on a miss; use cases map
// that to their own not-found errors. Removals report whether the id was
// present, and SetBudgetStatus returns the zero budget for an unknown id.
type IEntityStore interface {
	ListEquipments(ctx context.Context) ([]entities.Equipment, error)
	GetEquipment(ctx context.Context, id string) (entities.Equipment, error)
	AddEquipment(ctx context.Context, eq entities.Equipment) (entities.Equipment, error)
	RemoveEquipment(ctx context.Context, id string) (bool, error)

	ListClients(ctx context.Context) ([]entities.Client, error)
	GetClient(ctx context.Context, id string) (entities.Client, error)
	AddClient(ctx context.Context, cl entities.Client) (entities.Client, error)
	RemoveClient(ctx context.Context, id string) (bool, error)

	ListBudgets(ctx context.Context) ([]entities.Budget, error)
	GetBudget(ctx context.Context, id string) (entities.Budget, error)
	AppendBudget(ctx context.Context, b entities.Budget) (entities.Budget, error)
	SetBudgetStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
}
