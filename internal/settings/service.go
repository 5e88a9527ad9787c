// Package setting manages the key/value configuration behind the
// storefront: business identity, owner notification targets and the SMTP
// account used for order emails.
package setting

import (
	"context"
	"strings"

	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
)

// Well-known setting keys.
const (
	KeyBusinessName  = "business_name"
	KeyBusinessEmail = "business_email"
	KeyBusinessPhone = "business_phone"
	KeyOwnerEmail    = "owner_email"
	KeyOwnerPhone    = "owner_phone"
	KeySMTPHost      = "smtp_host"
	KeySMTPPort      = "smtp_port"
	KeySMTPUser      = "smtp_user"
	KeySMTPPass      = "smtp_pass"
)

// Defaults returns the rows seeded on first boot. Existing rows are
// never overwritten by the seed.
func Defaults() []models.Setting {
	return []models.Setting{
		{Key: KeyBusinessName, Value: "Jain Saree Center"},
		{Key: KeyBusinessEmail, Value: "info@jainsareecenter.com"},
		{Key: KeyBusinessPhone, Value: ""},
		{Key: KeyOwnerEmail, Value: "owner@jainsareecenter.com"},
		{Key: KeyOwnerPhone, Value: ""},
		{Key: KeySMTPHost, Value: "smtp.gmail.com"},
		{Key: KeySMTPPort, Value: "587"},
		{Key: KeySMTPUser, Value: ""},
		{Key: KeySMTPPass, Value: ""},
	}
}

// Service exposes configuration reads and admin updates.
type Service interface {
	List(ctx context.Context) ([]SettingDTO, error)
	Get(ctx context.Context, key string) (string, error)
	Update(ctx context.Context, key, value string) error
	Grouped(ctx context.Context) (*GroupedDTO, error)
	UpdateBusiness(ctx context.Context, phone, email string) error
	UpdateNotifications(ctx context.Context, ownerEmail, ownerPhone string) error
	Seed(ctx context.Context) error
}

type service struct {
	store storage.SettingStore
	logg  *logger.Logger
}

func NewService(store storage.SettingStore, logg *logger.Logger) Service {
	return &service{store: store, logg: logg}
}

func (s *service) List(ctx context.Context) ([]SettingDTO, error) {
	settings, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(settings), nil
}

func (s *service) Get(ctx context.Context, key string) (string, error) {
	setting, err := s.store.GetByKey(ctx, key)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *service) Update(ctx context.Context, key, value string) error {
	changed, err := s.store.Update(ctx, key, value)
	if err != nil {
		return err
	}
	if changed == 0 {
		return errors.New(errors.CodeNotFound, "setting not found")
	}

	s.logg.Info(s.logg.WithField(ctx, "key", key), "setting updated")
	return nil
}

// Grouped splits settings into the admin panel's business and
// notification sections. The shapes are asymmetric on purpose: the
// panel's business form binds to bare field names (name, email, phone)
// while its notification form binds to the full owner_email and
// owner_phone keys.
func (s *service) Grouped(ctx context.Context) (*GroupedDTO, error) {
	settings, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	grouped := &GroupedDTO{
		Business:      make(map[string]string),
		Notifications: make(map[string]string),
	}
	for _, setting := range settings {
		switch {
		case strings.HasPrefix(setting.Key, "business_"):
			grouped.Business[strings.TrimPrefix(setting.Key, "business_")] = setting.Value
		case strings.HasPrefix(setting.Key, "owner_"):
			grouped.Notifications[setting.Key] = setting.Value
		}
	}
	return grouped, nil
}

func (s *service) UpdateBusiness(ctx context.Context, phone, email string) error {
	if err := s.Update(ctx, KeyBusinessPhone, phone); err != nil {
		return err
	}
	return s.Update(ctx, KeyBusinessEmail, email)
}

func (s *service) UpdateNotifications(ctx context.Context, ownerEmail, ownerPhone string) error {
	if err := s.Update(ctx, KeyOwnerEmail, ownerEmail); err != nil {
		return err
	}
	return s.Update(ctx, KeyOwnerPhone, ownerPhone)
}

func (s *service) Seed(ctx context.Context) error {
	if err := s.store.Seed(ctx, Defaults()); err != nil {
		return err
	}
	s.logg.Info(ctx, "default settings seeded")
	return nil
}
