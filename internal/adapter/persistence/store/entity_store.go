package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"avflow/internal/domain/entities"
	"avflow/internal/usecase/interfaces"
)

// Storage keys, one per collection. Each key holds the whole collection as a
// JSON array and is rewritten on every mutation.
const (
	EquipmentsKey = "avflow_equipments"
	ClientsKey    = "avflow_clients"
	BudgetsKey    = "avflow_budgets"
)

// EntityStore owns the three entity collections in memory and mirrors them
// to an injected key-value storage.
//
// The mutex serializes operations so each one runs to completion against a
// consistent snapshot; there is one logical writer. Persistence is
// fire-and-forget: a mutation is visible to subsequent reads before the save
// is confirmed, and a failed save is logged, not rolled back. A crash inside
// that window loses the latest mutation, which is the accepted trade-off for
// a single-operator tool.
type EntityStore struct {
	mu      sync.Mutex
	storage interfaces.ICollectionStorage

	equipments []entities.Equipment
	clients    []entities.Client
	budgets    []entities.Budget
}

var _ interfaces.IEntityStore = (*EntityStore)(nil)

// Open loads the three collections from storage. A key that has never been
// written seeds its documented initial dataset (five equipments, two
// clients, no budgets); stored data replaces the seed verbatim.
func Open(ctx context.Context, storage interfaces.ICollectionStorage) (*EntityStore, error) {
	s := &EntityStore{storage: storage}

	if err := loadOrSeed(ctx, storage, EquipmentsKey, &s.equipments, seedEquipments()); err != nil {
		return nil, err
	}
	if err := loadOrSeed(ctx, storage, ClientsKey, &s.clients, seedClients()); err != nil {
		return nil, err
	}
	if err := loadOrSeed(ctx, storage, BudgetsKey, &s.budgets, []entities.Budget{}); err != nil {
		return nil, err
	}
	return s, nil
}

func loadOrSeed[T any](ctx context.Context, storage interfaces.ICollectionStorage, key string, dst *[]T, seed []T) error {
	data, err := storage.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if data == nil {
		*dst = seed
		persist(ctx, storage, key, seed)
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// persist rewrites one collection under its key. Errors are logged and
// swallowed; in-memory state stays authoritative.
func persist[T any](ctx context.Context, storage interfaces.ICollectionStorage, key string, records []T) {
	data, err := json.Marshal(records)
	if err != nil {
		log.Printf("[store] encode %s failed: %v", key, err)
		return
	}
	if err := storage.Save(ctx, key, data); err != nil {
		log.Printf("[store] save %s failed: %v", key, err)
	}
}

func (s *EntityStore) ListEquipments(ctx context.Context) ([]entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Equipment(nil), s.equipments...), nil
}

func (s *EntityStore) GetEquipment(ctx context.Context, id string) (entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, eq := range s.equipments {
		if eq.ID == id {
			return eq, nil
		}
	}
	return entities.Equipment{}, nil
}

func (s *EntityStore) AddEquipment(ctx context.Context, eq entities.Equipment) (entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipments = append(s.equipments, eq)
	persist(ctx, s.storage, EquipmentsKey, s.equipments)
	return eq, nil
}

func (s *EntityStore) RemoveEquipment(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, eq := range s.equipments {
		if eq.ID == id {
			s.equipments = append(s.equipments[:i], s.equipments[i+1:]...)
			persist(ctx, s.storage, EquipmentsKey, s.equipments)
			return true, nil
		}
	}
	return false, nil
}

func (s *EntityStore) ListClients(ctx context.Context) ([]entities.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Client(nil), s.clients...), nil
}

func (s *EntityStore) GetClient(ctx context.Context, id string) (entities.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cl := range s.clients {
		if cl.ID == id {
			return cl, nil
		}
	}
	return entities.Client{}, nil
}

func (s *EntityStore) AddClient(ctx context.Context, cl entities.Client) (entities.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, cl)
	persist(ctx, s.storage, ClientsKey, s.clients)
	return cl, nil
}

func (s *EntityStore) RemoveClient(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cl := range s.clients {
		if cl.ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			persist(ctx, s.storage, ClientsKey, s.clients)
			return true, nil
		}
	}
	return false, nil
}

func (s *EntityStore) ListBudgets(ctx context.Context) ([]entities.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Budget(nil), s.budgets...), nil
}

func (s *EntityStore) GetBudget(ctx context.Context, id string) (entities.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.budgets {
		if b.ID == id {
			return b, nil
		}
	}
	return entities.Budget{}, nil
}

func (s *EntityStore) AppendBudget(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets = append(s.budgets, b)
	persist(ctx, s.storage, BudgetsKey, s.budgets)
	return b, nil
}

// SetBudgetStatus replaces the status of the budget with the given id and
// returns the updated budget, or the zero budget when the id is unknown.
func (s *EntityStore) SetBudgetStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			s.budgets[i].Status = status
			persist(ctx, s.storage, BudgetsKey, s.budgets)
			return s.budgets[i], nil
		}
	}
	return entities.Budget{}, nil
}
