package setting

import (
	"time"

	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
)

// SettingDTO is the raw key/value payload returned to clients.
type SettingDTO struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroupedDTO is the admin panel view: business and notification settings
// keyed without their prefixes.
type GroupedDTO struct {
	Business      map[string]string `json:"business"`
	Notifications map[string]string `json:"notifications"`
}

func toDTO(m *models.Setting) *SettingDTO {
	return &SettingDTO{
		Key:       m.Key,
		Value:     m.Value,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDTOs(items []models.Setting) []SettingDTO {
	out := make([]SettingDTO, 0, len(items))
	for i := range items {
		out = append(out, *toDTO(&items[i]))
	}
	return out
}
