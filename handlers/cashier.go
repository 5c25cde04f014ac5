package handlers

import (
	"errors"
	"net/http"
	"time"

	"school-catering-api/config"
	"school-catering-api/format"
	"school-catering-api/middleware"
	"school-catering-api/models"
	"school-catering-api/payments"
	"school-catering-api/search"

	"github.com/gin-gonic/gin"
)

// orderView decorates an order with the display fields the cashier screen
// renders: payability, formatted total and delivery date.
func orderView(o models.Order, now time.Time) gin.H {
	return gin.H{
		"order":                 o,
		"payable":               o.IsPayable(now),
		"total_display":         format.Price(o.TotalAmount),
		"delivery_date_display": format.DateSafe(o.DeliveryDate),
	}
}

func orderViews(orders []models.Order, now time.Time) []gin.H {
	views := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView(o, now))
	}
	return views
}

// GetPendingOrders returns every order awaiting payment, newest first
func GetPendingOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Items.MenuItem").Preload("Child").
		Where("payment_status = ?", models.PaymentPending).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{
		"count":  len(orders),
		"orders": orderViews(orders, time.Now()),
	})
}

// SearchOrders matches orders by student name, class, NIK or NIS. Queries
// shorter than the activation threshold return an empty set without touching
// the database.
func SearchOrders(c *gin.Context) {
	query := c.Query("q")

	svc := search.NewService(config.DB)
	orders, err := svc.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":  query,
		"count":  len(orders),
		"orders": orderViews(orders, time.Now()),
	})
}

type PayOrderRequest struct {
	AmountReceived int64 `json:"amount_received" binding:"required,min=1"`
}

// PayOrder records a cash payment against a pending order and flips it to
// paid. The client re-runs its search afterwards to reflect the new status.
func PayOrder(c *gin.Context) {
	var req PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	svc := payments.NewService(config.DB)
	tx, err := svc.RecordCash(order.ID, middleware.GetUserID(c), middleware.GetRole(c), req.AmountReceived, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, payments.ErrNotPayable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Order is not payable (already settled or delivery date has passed)"})
		case errors.Is(err, payments.ErrInsufficientCash):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Amount received is less than the order total"})
		case errors.Is(err, payments.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Payment recorded",
		"receipt_number": tx.ReceiptNumber,
		"amount_paid":    tx.AmountPaid,
		"change":         tx.ChangeAmount,
		"change_display": format.Price(tx.ChangeAmount),
		"order_id":       tx.OrderID,
	})
}
