// Package checkout turns a cart into a persisted order. A Checkout walks
// a small state machine so a double submit cannot place the same order
// twice, and the cart is only cleared once the order is safely stored.
package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rahuljain-dev/sareecenter-backend/internal/cart"
	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/metrics"
)

// State tracks where a checkout attempt is in its lifecycle.
type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// CustomerInfo is the delivery form a shopper submits.
type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	Pincode string
	Message string
}

// Result reports a successful submission.
type Result struct {
	ID      string
	OrderID string
}

// Notifier delivers order emails after a successful submission.
type Notifier interface {
	SendOrderEmails(ctx context.Context, order *models.Order) error
}

// Options tune checkout behavior.
type Options struct {
	// RevalidatePrices refreshes each cart line against the current
	// catalog before submitting, rejecting lines whose product has been
	// removed or marked out of stock.
	RevalidatePrices bool
}

// Service builds checkout attempts over the order store.
type Service struct {
	orders   storage.OrderStore
	products storage.ProductStore
	notifier Notifier
	metrics  *metrics.CheckoutMetrics
	logg     *logger.Logger
	opts     Options
}

func NewService(
	orders storage.OrderStore,
	products storage.ProductStore,
	notifier Notifier,
	checkoutMetrics *metrics.CheckoutMetrics,
	logg *logger.Logger,
	opts Options,
) *Service {
	return &Service{
		orders:   orders,
		products: products,
		notifier: notifier,
		metrics:  checkoutMetrics,
		logg:     logg,
		opts:     opts,
	}
}

// Checkout is one submission attempt over a cart.
type Checkout struct {
	svc   *Service
	cart  *cart.Store
	mu    sync.Mutex
	state State
}

// NewCheckout starts an attempt in the editing state.
func (s *Service) NewCheckout(cartStore *cart.Store) *Checkout {
	return &Checkout{svc: s, cart: cartStore, state: StateEditing}
}

// State returns the current lifecycle state.
func (c *Checkout) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit validates the form and the cart, persists the order, fires the
// notification emails and clears the cart. Validation or persistence
// failures return the attempt to the editing state so the shopper can
// retry; the cart is left intact in every failure path.
func (c *Checkout) Submit(ctx context.Context, info CustomerInfo) (*Result, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return nil, errors.New(errors.CodeConflict, "checkout already in progress")
	}
	if c.state == StateSucceeded {
		c.mu.Unlock()
		return nil, errors.New(errors.CodeConflict, "checkout already completed")
	}
	c.state = StateValidating
	c.mu.Unlock()

	if err := ValidateCustomerInfo(info); err != nil {
		c.setState(StateEditing)
		return nil, err
	}
	if c.cart.IsEmpty() {
		c.setState(StateEditing)
		return nil, errors.New(errors.CodeValidation, "cart is empty")
	}

	c.setState(StateSubmitting)

	order, err := c.svc.buildOrder(ctx, c.cart, info)
	if err != nil {
		c.fail(ctx, err)
		return nil, err
	}

	if err := c.svc.orders.Create(ctx, order); err != nil {
		c.fail(ctx, err)
		return nil, err
	}

	// Emails are best effort; the order is already placed.
	if c.svc.notifier != nil {
		if err := c.svc.notifier.SendOrderEmails(ctx, order); err != nil {
			c.svc.metrics.IncEmailFailure()
			c.svc.logg.Error(c.svc.logg.WithField(ctx, "order_id", order.OrderID),
				"sending order emails", err)
		}
	}

	if err := c.cart.Clear(); err != nil {
		c.svc.logg.Error(ctx, "clearing cart after checkout", err)
	}

	c.setState(StateSucceeded)
	c.svc.metrics.IncOrderCreated()
	ctx = c.svc.logg.WithFields(ctx, map[string]any{
		"order_id": order.OrderID,
		"amount":   order.TotalAmount.StringFixed(2),
	})
	c.svc.logg.Info(ctx, "order placed")

	return &Result{ID: order.ID, OrderID: order.OrderID}, nil
}

func (c *Checkout) setState(state State) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

// fail marks the attempt failed and immediately returns it to editing:
// submission failures are retryable.
func (c *Checkout) fail(ctx context.Context, err error) {
	c.setState(StateFailed)
	c.svc.metrics.IncFailure()
	c.svc.logg.Warn(ctx, fmt.Sprintf("checkout failed: %v", err))
	c.setState(StateEditing)
}

func (s *Service) buildOrder(ctx context.Context, cartStore *cart.Store, info CustomerInfo) (*models.Order, error) {
	lines := cartStore.Lines()

	if s.opts.RevalidatePrices {
		refreshed, err := s.revalidate(ctx, lines)
		if err != nil {
			return nil, err
		}
		lines = refreshed
	}

	items := make([]models.OrderLineSnapshot, 0, len(lines))
	totalSets := 0
	totalAmount := decimal.Zero
	for _, line := range lines {
		items = append(items, models.OrderLineSnapshot{
			ProductID:    line.ProductID,
			Name:         line.Name,
			Category:     line.Category,
			PiecesPerSet: line.PiecesPerSet,
			PricePerSet:  line.PricePerSet,
			ImageURL:     line.ImageURL,
			Quantity:     line.Quantity,
		})
		totalSets += line.Quantity
		totalAmount = totalAmount.Add(line.PricePerSet.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return &models.Order{
		ID:              uuid.NewString(),
		OrderID:         GenerateOrderID(),
		CustomerName:    strings.TrimSpace(info.Name),
		CustomerEmail:   strings.TrimSpace(info.Email),
		CustomerPhone:   digitsPattern.ReplaceAllString(info.Phone, ""),
		CustomerAddress: strings.TrimSpace(info.Address),
		CustomerCity:    strings.TrimSpace(info.City),
		CustomerState:   strings.TrimSpace(info.State),
		CustomerPincode: strings.TrimSpace(info.Pincode),
		CustomerMessage: strings.TrimSpace(info.Message),
		Items:           items,
		TotalSets:       totalSets,
		TotalAmount:     totalAmount,
	}, nil
}

// revalidate refreshes cart lines against the live catalog.
func (s *Service) revalidate(ctx context.Context, lines []cart.Line) ([]cart.Line, error) {
	out := make([]cart.Line, 0, len(lines))
	for _, line := range lines {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.IsCode(err, errors.CodeNotFound) {
				return nil, errors.New(errors.CodeValidation,
					fmt.Sprintf("%s is no longer available", line.Name))
			}
			return nil, err
		}
		if !product.InStock {
			return nil, errors.New(errors.CodeValidation,
				fmt.Sprintf("%s is out of stock", product.Name))
		}

		line.Name = product.Name
		line.Category = product.Category
		line.PiecesPerSet = product.PiecesPerSet
		line.PricePerSet = product.PricePerSet
		line.ImageURL = product.ImageURL
		out = append(out, line)
	}
	return out, nil
}

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern  = regexp.MustCompile(`\D`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// ValidateCustomerInfo checks the delivery form. Phone numbers are
// stripped of separators before the ten digit check, so "98765 43210"
// passes.
func ValidateCustomerInfo(info CustomerInfo) error {
	details := make(map[string]string)

	if strings.TrimSpace(info.Name) == "" {
		details["name"] = "name is required"
	}
	if !emailPattern.MatchString(strings.TrimSpace(info.Email)) {
		details["email"] = "a valid email address is required"
	}
	if phone := digitsPattern.ReplaceAllString(info.Phone, ""); len(phone) != 10 {
		details["phone"] = "a valid 10-digit phone number is required"
	}
	if strings.TrimSpace(info.Address) == "" {
		details["address"] = "address is required"
	}
	if strings.TrimSpace(info.City) == "" {
		details["city"] = "city is required"
	}
	if strings.TrimSpace(info.State) == "" {
		details["state"] = "state is required"
	}
	if !pincodePattern.MatchString(strings.TrimSpace(info.Pincode)) {
		details["pincode"] = "a valid 6-digit pincode is required"
	}

	if len(details) > 0 {
		return errors.New(errors.CodeValidation, "invalid customer details").WithDetails(details)
	}
	return nil
}

// GenerateOrderID builds the human-facing identifier customers quote on
// the phone: a JSC prefix, the millisecond timestamp and a random tail.
func GenerateOrderID() string {
	return fmt.Sprintf("JSC%d%d", time.Now().UnixMilli(), rand.Intn(10000))
}
