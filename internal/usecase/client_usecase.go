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
	ErrInvalidClientName     = errors.New("invalid client name")
	ErrInvalidClientWhatsapp = errors.New("invalid client whatsapp")
)

// IClientUseCase manages the client roster. Name and whatsapp are the only
// required fields.

type IClientUseCase interface {
	List(ctx context.Context) ([]entities.Client, error)
	Add(ctx context.Context, name, company, whatsapp, email string) (entities.Client, error)
	Remove(ctx context.Context, id string) error
}

type ClientUseCase struct {
	store interfaces.IEntityStore
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(store interfaces.IEntityStore) *ClientUseCase {
	return &ClientUseCase{store: store}
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.store.ListClients(ctx)
}

func (u *ClientUseCase) Add(ctx context.Context, name, company, whatsapp, email string) (entities.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	whatsapp = strings.TrimSpace(whatsapp)
	if whatsapp == "" {
		return entities.Client{}, ErrInvalidClientWhatsapp
	}

	cl := entities.Client{
		ID:       uuid.NewString(),
		Name:     name,
		Company:  strings.TrimSpace(company),
		Whatsapp: whatsapp,
		Email:    strings.TrimSpace(email),
	}
	return u.store.AddClient(ctx, cl)
}

func (u *ClientUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}

	removed, err := u.store.RemoveClient(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrClientNotFound
	}
	return nil
}
