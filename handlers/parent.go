package handlers

import (
	"net/http"
	"time"

	"school-catering-api/config"
	"school-catering-api/middleware"
	"school-catering-api/models"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	ChildID      uint   `json:"child_id" binding:"required"`
	DeliveryDate string `json:"delivery_date" binding:"required"` // YYYY-MM-DD
	Notes        string `json:"notes"`
	Items        []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// GetMyChildren returns the logged-in parent's children
func GetMyChildren(c *gin.Context) {
	parentID := middleware.GetUserID(c)
	var children []models.Child
	config.DB.Where("parent_id = ?", parentID).Order("name asc").Find(&children)
	c.JSON(http.StatusOK, gin.H{"count": len(children), "children": children})
}

// GetMyOrders returns all orders for the logged-in parent
func GetMyOrders(c *gin.Context) {
	parentID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items.MenuItem").Preload("Child").
		Where("parent_id = ?", parentID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// PlaceOrder creates a new catering order for one of the parent's children.
// Child name and class are snapshotted onto the order at this point.
func PlaceOrder(c *gin.Context) {
	parentID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deliveryDate, err := time.ParseInLocation("2006-01-02", req.DeliveryDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_date must be YYYY-MM-DD"})
		return
	}

	// Validate the child belongs to this parent
	var child models.Child
	if err := config.DB.First(&child, req.ChildID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
		return
	}
	if child.ParentID != parentID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This child is not registered to you"})
		return
	}

	// Build order items and calculate total
	var orderItems []models.OrderItem
	var total int64

	for _, reqItem := range req.Items {
		var menuItem models.MenuItem
		if err := config.DB.First(&menuItem, reqItem.MenuItemID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item not found"})
			return
		}
		if !menuItem.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item '" + menuItem.Name + "' is not available"})
			return
		}
		total += menuItem.Price * int64(reqItem.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   reqItem.Quantity,
			Price:      menuItem.Price,
		})
	}

	order := models.Order{
		ParentID:      parentID,
		ChildID:       child.ID,
		ChildName:     child.Name,
		ChildClass:    child.ClassName,
		TotalAmount:   total,
		PaymentStatus: models.PaymentPending,
		DeliveryDate:  &deliveryDate,
		Notes:         req.Notes,
		Items:         orderItems,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	config.DB.Preload("Items.MenuItem").Preload("Child").First(&order, order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}
