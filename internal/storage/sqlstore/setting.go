package sqlstore

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
)

type settingStore struct {
	db *gorm.DB
}

func (s *settingStore) GetAll(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	if err := scoped(ctx, s.db).Order("key ASC").Find(&settings).Error; err != nil {
		return nil, errors.Persistence(err, "list", "settings")
	}
	return settings, nil
}

func (s *settingStore) GetByKey(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	if err := scoped(ctx, s.db).First(&setting, "key = ?", key).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeNotFound, "setting not found")
		}
		return nil, errors.Persistence(err, "get", "setting")
	}
	return &setting, nil
}

func (s *settingStore) Update(ctx context.Context, key, value string) (int64, error) {
	res := scoped(ctx, s.db).
		Model(&models.Setting{}).
		Where("key = ?", key).
		Update("value", value)
	if res.Error != nil {
		return 0, errors.Persistence(res.Error, "update", "setting")
	}
	return res.RowsAffected, nil
}

// Seed inserts the defaults that are not present yet. Existing rows are
// never overwritten, so operators keep their edits across restarts.
func (s *settingStore) Seed(ctx context.Context, defaults []models.Setting) error {
	if len(defaults) == 0 {
		return nil
	}
	err := scoped(ctx, s.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaults).Error
	if err != nil {
		return errors.Persistence(err, "seed", "settings")
	}
	return nil
}
