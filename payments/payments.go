// Package payments records cashier cash payments against pending orders.
package payments

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"school-catering-api/models"
	"school-catering-api/statemachine"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotPayable        = errors.New("order is not payable")
	ErrInsufficientCash  = errors.New("amount received is less than the order total")
	ErrInvalidTransition = errors.New("payment state transition not allowed")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// RecordCash verifies the order is still payable, stores the transaction and
// flips the order to paid, all in one DB transaction. Callers re-run their
// search afterwards to pick up the new status.
func (s *Service) RecordCash(orderID, cashierID uint, role models.UserRole, amountReceived int64, now time.Time) (*models.PaymentTransaction, error) {
	var tx *models.PaymentTransaction

	err := s.db.Transaction(func(dbtx *gorm.DB) error {
		var order models.Order
		if err := dbtx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if !order.IsPayable(now) {
			return ErrNotPayable
		}
		if amountReceived < order.TotalAmount {
			return ErrInsufficientCash
		}
		if err := statemachine.CanTransition(order.PaymentStatus, models.PaymentPaid, string(role)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		tx = &models.PaymentTransaction{
			OrderID:       order.ID,
			ReceiptNumber: newReceiptNumber(),
			Method:        "cash",
			AmountPaid:    amountReceived,
			ChangeAmount:  amountReceived - order.TotalAmount,
			ReceivedBy:    cashierID,
		}
		if err := dbtx.Create(tx).Error; err != nil {
			return err
		}
		return dbtx.Model(&order).Update("payment_status", models.PaymentPaid).Error
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func newReceiptNumber() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
	return "KTR-" + short
}
