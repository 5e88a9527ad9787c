package kvstore

import (
	"context"
	"sort"
	"time"

	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/redis"
)

const settingDoc = "setting"

type settingStore struct {
	client *redis.Client
}

func (s *settingStore) GetAll(ctx context.Context) ([]models.Setting, error) {
	settings, err := loadIndexed[models.Setting](ctx, s.client, settingsIndex, settingDoc)
	if err != nil {
		return nil, err
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })
	return settings, nil
}

func (s *settingStore) GetByKey(ctx context.Context, key string) (*models.Setting, error) {
	return getDoc[models.Setting](ctx, s.client, settingDoc, key, "setting")
}

func (s *settingStore) Update(ctx context.Context, key, value string) (int64, error) {
	setting, err := getDoc[models.Setting](ctx, s.client, settingDoc, key, "setting")
	if err != nil {
		if errors.IsCode(err, errors.CodeNotFound) {
			return 0, nil
		}
		return 0, err
	}

	setting.Value = value
	setting.UpdatedAt = time.Now().UTC()
	if err := putDoc(ctx, s.client, settingDoc, key, setting, "update", "setting"); err != nil {
		return 0, err
	}
	return 1, nil
}

func (s *settingStore) Seed(ctx context.Context, defaults []models.Setting) error {
	now := time.Now().UTC()
	for _, setting := range defaults {
		if setting.CreatedAt.IsZero() {
			setting.CreatedAt = now
		}
		if setting.UpdatedAt.IsZero() {
			setting.UpdatedAt = now
		}

		doc, err := marshalDoc(setting, "seed", "setting")
		if err != nil {
			return err
		}
		if _, err := s.client.SetNX(ctx, s.client.Key(settingDoc, setting.Key), doc, 0); err != nil {
			return errors.Persistence(err, "seed", "setting")
		}
		if _, err := s.client.SAdd(ctx, s.client.Key(settingsIndex), setting.Key); err != nil {
			return errors.Persistence(err, "index", "setting")
		}
	}
	return nil
}
