// Package kvstore implements the storage gateway on redis. Entities are
// stored as JSON documents under namespaced keys, with set-based indexes
// for listing. It serves the same contract as sqlstore, so a deployment
// can point at a redis instance instead of a relational database.
package kvstore

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/redis"
)

const (
	productsIndex = "products"
	ordersIndex   = "orders"
	settingsIndex = "settings"
)

type Store struct {
	client   *redis.Client
	products *productStore
	orders   *orderStore
	settings *settingStore
}

var _ storage.Store = (*Store)(nil)

func New(client *redis.Client) *Store {
	return &Store{
		client:   client,
		products: &productStore{client: client},
		orders:   &orderStore{client: client},
		settings: &settingStore{client: client},
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

// loadIndexed fetches every JSON document referenced by the given index
// set and unmarshals each into T. Dangling index members are skipped.
func loadIndexed[T any](ctx context.Context, client *redis.Client, index, docPrefix string) ([]T, error) {
	ids, err := client.SMembers(ctx, client.Key(index))
	if err != nil {
		return nil, errors.Persistence(err, "list", index)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, client.Key(docPrefix, id))
	}
	raw, err := client.MGet(ctx, keys...)
	if err != nil {
		return nil, errors.Persistence(err, "list", index)
	}

	out := make([]T, 0, len(raw))
	for _, item := range raw {
		doc, ok := item.(string)
		if !ok {
			continue
		}
		var entity T
		if err := json.Unmarshal([]byte(doc), &entity); err != nil {
			return nil, errors.Persistence(err, "decode", index)
		}
		out = append(out, entity)
	}
	return out, nil
}

func getDoc[T any](ctx context.Context, client *redis.Client, docPrefix, id, entity string) (*T, error) {
	doc, err := client.Get(ctx, client.Key(docPrefix, id))
	if err != nil {
		if err == redis.Nil {
			return nil, errors.New(errors.CodeNotFound, entity+" not found")
		}
		return nil, errors.Persistence(err, "get", entity)
	}
	var out T
	if err := json.Unmarshal([]byte(doc), &out); err != nil {
		return nil, errors.Persistence(err, "decode", entity)
	}
	return &out, nil
}

func marshalDoc(entity any, op, name string) (string, error) {
	doc, err := json.Marshal(entity)
	if err != nil {
		return "", errors.Persistence(err, op, name)
	}
	return string(doc), nil
}

func putDoc(ctx context.Context, client *redis.Client, docPrefix, id string, entity any, op, name string) error {
	doc, err := marshalDoc(entity, op, name)
	if err != nil {
		return err
	}
	if err := client.Set(ctx, client.Key(docPrefix, id), doc, 0); err != nil {
		return errors.Persistence(err, op, name)
	}
	return nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// sortNewestFirst orders entities by their timestamp descending, breaking
// ties on id so listings stay stable across calls.
func sortNewestFirst[T any](items []T, when func(T) time.Time, id func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := when(items[i]), when(items[j])
		if ti.Equal(tj) {
			return id(items[i]) > id(items[j])
		}
		return ti.After(tj)
	})
}
