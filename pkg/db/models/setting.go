package models

import "time"

// Setting is one key/value row of store configuration. Defaults are seeded
// once at first initialization; afterwards rows are only ever updated.
type Setting struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
