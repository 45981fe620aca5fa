package interfaces

import "context"

//go:generate mockgen -source=collection_storage_interface.go -destination=mocks/collection_storage_mock.go -package=mocks

// ICollectionStorage abstracts the external key-value persistence layer.
//
// Each collection is round-tripped whole under a distinct logical key: Save
// replaces the stored blob, Load returns nil bytes (and no error) when the
// key has never been written, which tells the store to seed its defaults.
type ICollectionStorage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
