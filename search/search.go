// Package search implements the cashier order search: match children and
// orders against a free-text query, union the two order-ID sets, then
// hydrate the full records in one batched query.
package search

import (
	"context"
	"strings"

	"school-catering-api/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	// MinQueryLength gates the whole search: anything shorter returns an
	// empty result without touching the database.
	MinQueryLength = 2

	// PageSize caps hydrated results.
	PageSize = 20
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Search returns orders whose owning child OR whose denormalized name/class
// fields match the query as a case-insensitive substring, newest delivery
// date first, capped at PageSize. Results include line items with menu-item
// names.
func (s *Service) Search(ctx context.Context, query string) ([]models.Order, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinQueryLength {
		return []models.Order{}, nil
	}
	pattern := "%" + strings.ToLower(query) + "%"

	// The two source queries are read-only and independent, so they run
	// concurrently.
	var byChild, byOrderFields []uint
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byChild, err = s.orderIDsByChild(gctx, pattern)
		return err
	})
	g.Go(func() error {
		var err error
		byOrderFields, err = s.orderIDsByOrderFields(gctx, pattern)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := unionIDs(byChild, byOrderFields)
	if len(ids) == 0 {
		return []models.Order{}, nil
	}

	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Preload("Child").
		Where("id IN ?", ids).
		Order("delivery_date DESC").
		Limit(PageSize).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// orderIDsByChild matches children on name, class, NIK or NIS, then collects
// the IDs of their orders that have a delivery date set.
func (s *Service) orderIDsByChild(ctx context.Context, pattern string) ([]uint, error) {
	var childIDs []uint
	err := s.db.WithContext(ctx).Model(&models.Child{}).
		Where("LOWER(name) LIKE ? OR LOWER(class_name) LIKE ? OR LOWER(nik) LIKE ? OR LOWER(nis) LIKE ?",
			pattern, pattern, pattern, pattern).
		Pluck("id", &childIDs).Error
	if err != nil {
		return nil, err
	}
	if len(childIDs) == 0 {
		return nil, nil
	}

	var orderIDs []uint
	err = s.db.WithContext(ctx).Model(&models.Order{}).
		Where("child_id IN ? AND delivery_date IS NOT NULL", childIDs).
		Pluck("id", &orderIDs).Error
	if err != nil {
		return nil, err
	}
	return orderIDs, nil
}

// orderIDsByOrderFields matches the denormalized child name/class stored on
// the order itself, which may diverge from the Child record.
func (s *Service) orderIDsByOrderFields(ctx context.Context, pattern string) ([]uint, error) {
	var orderIDs []uint
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("(LOWER(child_name) LIKE ? OR LOWER(child_class) LIKE ?) AND child_name <> '' AND delivery_date IS NOT NULL",
			pattern, pattern).
		Pluck("id", &orderIDs).Error
	if err != nil {
		return nil, err
	}
	return orderIDs, nil
}

func unionIDs(sets ...[]uint) []uint {
	seen := make(map[uint]bool)
	var out []uint
	for _, set := range sets {
		for _, id := range set {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
