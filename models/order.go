package models

import "time"

// PaymentStatus represents all possible payment states of a catering order
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Order struct {
	ID       uint  `json:"id" gorm:"primaryKey"`
	ParentID uint  `json:"parent_id" gorm:"not null;index"`
	ChildID  uint  `json:"child_id" gorm:"not null;index"`
	Child    Child `json:"child,omitempty" gorm:"foreignKey:ChildID"`

	// Denormalized at order time; may diverge from the Child record later
	ChildName  string `json:"child_name"`
	ChildClass string `json:"child_class"`

	TotalAmount   int64         `json:"total_amount"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'pending'"`
	DeliveryDate  *time.Time    `json:"delivery_date"`
	Notes         string        `json:"notes"`
	Items         []OrderItem   `json:"order_items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	Price      int64    `json:"price" gorm:"not null"` // snapshot price at time of order
}

// ItemsTotal sums quantity × unit price over the line items. The stored
// TotalAmount must equal this sum.
func (o *Order) ItemsTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += int64(item.Quantity) * item.Price
	}
	return total
}

// IsPayable reports whether a cashier may still take cash for this order:
// payment is pending and the delivery date has not passed. The comparison is
// at day granularity in now's location — an order due today is still payable.
func (o *Order) IsPayable(now time.Time) bool {
	if o.PaymentStatus != PaymentPending || o.DeliveryDate == nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	dy, dm, dd := o.DeliveryDate.Date()
	due := time.Date(dy, dm, dd, 0, 0, 0, 0, now.Location())
	return !due.Before(today)
}

// PaymentTransaction records a completed cashier payment against an order.
type PaymentTransaction struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OrderID       uint      `json:"order_id" gorm:"not null;index"`
	ReceiptNumber string    `json:"receipt_number" gorm:"uniqueIndex;not null"`
	Method        string    `json:"method" gorm:"not null"` // only "cash" today
	AmountPaid    int64     `json:"amount_paid" gorm:"not null"`
	ChangeAmount  int64     `json:"change_amount"`
	ReceivedBy    uint      `json:"received_by"` // cashier user ID
	CreatedAt     time.Time `json:"created_at"`
}
