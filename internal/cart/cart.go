// Package cart holds a shopper's in-progress selection. Lines carry a
// snapshot of the product at the moment it was added, so later catalog
// edits do not silently reprice a cart. A Persister can be attached to
// survive restarts.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
)

// ProductSnapshot captures the product fields a cart line records.
type ProductSnapshot struct {
	ID           string
	Name         string
	Category     string
	PiecesPerSet int
	PricePerSet  decimal.Decimal
	ImageURL     string
}

// Line is one cart entry: a product snapshot plus the number of sets.
type Line struct {
	ProductID    string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	PiecesPerSet int             `json:"piecesPerSet"`
	PricePerSet  decimal.Decimal `json:"pricePerSet"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	Quantity     int             `json:"quantity"`
}

// Persister stores cart lines between runs.
type Persister interface {
	Save(lines []Line) error
	Load() ([]Line, error)
}

// Store is a mutable cart. It is safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	lines     []Line
	persister Persister
}

// NewStore builds a cart, restoring any lines the persister holds.
// A nil persister keeps the cart purely in memory.
func NewStore(persister Persister) (*Store, error) {
	s := &Store{persister: persister}
	if persister != nil {
		lines, err := persister.Load()
		if err != nil {
			return nil, err
		}
		s.lines = lines
	}
	return s, nil
}

// AddLine puts quantity sets of the product in the cart, merging with an
// existing line for the same product.
func (s *Store) AddLine(product ProductSnapshot, quantity int) error {
	if quantity < 1 {
		return errors.New(errors.CodeValidation, "quantity must be at least 1")
	}
	if product.ID == "" {
		return errors.New(errors.CodeValidation, "product id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == product.ID {
			s.lines[i].Quantity += quantity
			return s.persist()
		}
	}

	s.lines = append(s.lines, Line{
		ProductID:    product.ID,
		Name:         product.Name,
		Category:     product.Category,
		PiecesPerSet: product.PiecesPerSet,
		PricePerSet:  product.PricePerSet,
		ImageURL:     product.ImageURL,
		Quantity:     quantity,
	})
	return s.persist()
}

// SetQuantity replaces the quantity of an existing line. A quantity of
// zero or less removes the line.
func (s *Store) SetQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveLine(productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			return s.persist()
		}
	}
	return errors.New(errors.CodeNotFound, "product not in cart")
}

// RemoveLine drops the line for the given product. Removing a product
// that is not in the cart is a no-op.
func (s *Store) RemoveLine(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// Clear empties the cart.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.persist()
}

// Lines returns a copy of the cart contents in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// IsEmpty reports whether the cart holds no lines.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// TotalSets is the summed quantity across lines.
func (s *Store) TotalSets() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPieces is the summed piece count: quantity times pieces per set.
func (s *Store) TotalPieces() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity * line.PiecesPerSet
	}
	return total
}

// TotalAmount is the summed line price: quantity times price per set.
func (s *Store) TotalAmount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.PricePerSet.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// persist flushes the current lines; callers hold the lock.
func (s *Store) persist() error {
	if s.persister == nil {
		return nil
	}
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	if err := s.persister.Save(lines); err != nil {
		return errors.Persistence(err, "save", "cart")
	}
	return nil
}
