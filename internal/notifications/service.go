// Package notification sends order emails to the customer and the shop
// owner. The SMTP account lives in the settings table, so operators can
// change it from the admin panel without a redeploy; the connection
// details are re-read on every send. Delivery is best effort: checkout
// never fails because an email could not go out.
package notification

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	setting "github.com/rahuljain-dev/sareecenter-backend/internal/settings"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
)

// Sender delivers a rendered message. The default implementation wraps
// net/smtp; tests substitute a recorder.
type Sender interface {
	Send(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

func (f SenderFunc) Send(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	return f(addr, auth, from, to, msg)
}

type settingsReader interface {
	Get(ctx context.Context, key string) (string, error)
}

// Service renders and sends order notification emails.
type Service struct {
	settings settingsReader
	sender   Sender
	logg     *logger.Logger
}

func NewService(settings settingsReader, logg *logger.Logger) *Service {
	return &Service{
		settings: settings,
		sender:   SenderFunc(smtp.SendMail),
		logg:     logg,
	}
}

// NewServiceWithSender injects a custom sender.
func NewServiceWithSender(settings settingsReader, sender Sender, logg *logger.Logger) *Service {
	return &Service{settings: settings, sender: sender, logg: logg}
}

type smtpAccount struct {
	host string
	port string
	user string
	pass string
}

func (a smtpAccount) addr() string { return a.host + ":" + a.port }

func (a smtpAccount) configured() bool { return a.user != "" }

type templateData struct {
	Order         *models.Order
	BusinessName  string
	BusinessEmail string
	TotalAmount   string
	OrderDate     string
	Items         []itemRow
}

type itemRow struct {
	Name         string
	Category     string
	Quantity     int
	PiecesPerSet int
	PricePerSet  string
	LineTotal    string
}

// SendOrderEmails delivers the confirmation to the customer and the
// alert to the owner. When no SMTP user is configured the send is
// skipped silently, matching a freshly seeded install.
func (s *Service) SendOrderEmails(ctx context.Context, order *models.Order) error {
	account, err := s.account(ctx)
	if err != nil {
		return err
	}
	if !account.configured() {
		s.logg.Info(ctx, "smtp account not configured, skipping order emails")
		return nil
	}

	businessName, err := s.settings.Get(ctx, setting.KeyBusinessName)
	if err != nil {
		return err
	}
	businessEmail, err := s.settings.Get(ctx, setting.KeyBusinessEmail)
	if err != nil {
		return err
	}
	ownerEmail, err := s.settings.Get(ctx, setting.KeyOwnerEmail)
	if err != nil {
		return err
	}

	data := buildTemplateData(order, businessName, businessEmail)
	auth := smtp.PlainAuth("", account.user, account.pass, account.host)

	var errs []error
	if err := s.sendCustomerEmail(account, auth, order, data); err != nil {
		errs = append(errs, fmt.Errorf("customer email: %w", err))
	}
	if err := s.sendOwnerEmail(account, auth, ownerEmail, order, data); err != nil {
		errs = append(errs, fmt.Errorf("owner email: %w", err))
	}
	if len(errs) > 0 {
		return multierr.Combine(errs...)
	}

	s.logg.Info(s.logg.WithField(ctx, "order_id", order.OrderID), "order emails sent")
	return nil
}

func (s *Service) account(ctx context.Context) (smtpAccount, error) {
	var account smtpAccount
	var err error
	if account.host, err = s.settings.Get(ctx, setting.KeySMTPHost); err != nil {
		return account, err
	}
	if account.port, err = s.settings.Get(ctx, setting.KeySMTPPort); err != nil {
		return account, err
	}
	if account.user, err = s.settings.Get(ctx, setting.KeySMTPUser); err != nil {
		return account, err
	}
	if account.pass, err = s.settings.Get(ctx, setting.KeySMTPPass); err != nil {
		return account, err
	}
	return account, nil
}

func (s *Service) sendCustomerEmail(account smtpAccount, auth smtp.Auth, order *models.Order, data templateData) error {
	var body bytes.Buffer
	if err := customerTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering customer email: %w", err)
	}

	subject := fmt.Sprintf("Order Confirmation - %s - %s", order.OrderID, data.BusinessName)
	msg := buildMessage(data.BusinessEmail, order.CustomerEmail, subject, body.Bytes())
	return s.sender.Send(account.addr(), auth, data.BusinessEmail, []string{order.CustomerEmail}, msg)
}

func (s *Service) sendOwnerEmail(account smtpAccount, auth smtp.Auth, ownerEmail string, order *models.Order, data templateData) error {
	var body bytes.Buffer
	if err := ownerTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering owner email: %w", err)
	}

	subject := fmt.Sprintf("New Order - %s - Rs.%s", order.OrderID, data.TotalAmount)
	msg := buildMessage(ownerEmail, ownerEmail, subject, body.Bytes())
	return s.sender.Send(account.addr(), auth, ownerEmail, []string{ownerEmail}, msg)
}

func buildTemplateData(order *models.Order, businessName, businessEmail string) templateData {
	items := make([]itemRow, 0, len(order.Items))
	for _, item := range order.Items {
		lineTotal := item.PricePerSet.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, itemRow{
			Name:         item.Name,
			Category:     item.Category,
			Quantity:     item.Quantity,
			PiecesPerSet: item.PiecesPerSet,
			PricePerSet:  item.PricePerSet.StringFixed(2),
			LineTotal:    lineTotal.StringFixed(2),
		})
	}

	return templateData{
		Order:         order,
		BusinessName:  businessName,
		BusinessEmail: businessEmail,
		TotalAmount:   order.TotalAmount.StringFixed(2),
		OrderDate:     order.OrderDate.Format("02 Jan 2006 15:04"),
		Items:         items,
	}
}

func buildMessage(from, to, subject string, body []byte) []byte {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body)
	return msg.Bytes()
}
