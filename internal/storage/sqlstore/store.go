// Package sqlstore implements the storage gateway on a relational
// database through gorm. The same code serves the embedded sqlite file
// and a hosted postgres instance; the dialector is chosen by config.
package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db"
)

type Store struct {
	client   *db.Client
	products *productStore
	orders   *orderStore
	settings *settingStore
}

var _ storage.Store = (*Store)(nil)

func New(client *db.Client) *Store {
	gdb := client.DB()
	return &Store{
		client:   client,
		products: &productStore{db: gdb},
		orders:   &orderStore{db: gdb},
		settings: &settingStore{db: gdb},
	}
}

func (s *Store) Products() storage.ProductStore { return s.products }
func (s *Store) Orders() storage.OrderStore     { return s.orders }
func (s *Store) Settings() storage.SettingStore { return s.settings }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *Store) Close() error {
	return s.client.Close()
}

// scoped returns a session bound to the request context.
func scoped(ctx context.Context, gdb *gorm.DB) *gorm.DB {
	return gdb.WithContext(ctx)
}
