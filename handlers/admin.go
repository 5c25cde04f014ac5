package handlers

import (
	"net/http"

	"school-catering-api/config"
	"school-catering-api/models"

	"github.com/gin-gonic/gin"
)

// AdminGetAllOrders returns all orders with full detail — admin only
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items.MenuItem").Preload("Child")

	if status := c.Query("status"); status != "" {
		query = query.Where("payment_status = ?", status)
	}
	if parentID := c.Query("parent_id"); parentID != "" {
		query = query.Where("parent_id = ?", parentID)
	}
	if childID := c.Query("child_id"); childID != "" {
		query = query.Where("child_id = ?", childID)
	}

	query.Order("created_at desc").Find(&orders)

	// Admin dashboard: aggregate by payment status
	summary := map[string]int{}
	var totalCollected int64
	for _, o := range orders {
		summary[string(o.PaymentStatus)]++
		if o.PaymentStatus == models.PaymentPaid {
			totalCollected += o.TotalAmount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary":   summary,
		"total_collected": totalCollected,
		"count":           len(orders),
		"orders":          orders,
	})
}

// AdminGetAllUsers returns all users with their resolved role records
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if email := c.Query("email"); email != "" {
		query = query.Where("email LIKE ?", "%"+email+"%")
	}
	query.Find(&users)

	var roleRecords []models.UserRoleRecord
	config.DB.Find(&roleRecords)
	rolesByUser := map[uint]models.UserRole{}
	for _, r := range roleRecords {
		rolesByUser[r.UserID] = r.Role
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		role, ok := rolesByUser[u.ID]
		if !ok {
			role = models.RoleParent
		}
		out = append(out, gin.H{"user": u, "role": role})
	}

	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": out})
}

type SetRoleRequest struct {
	Role models.UserRole `json:"role" binding:"required"`
}

// AdminSetUserRole writes a user's role to both role stores. user_roles is
// the source of truth; the profile mirror is updated for external readers.
func AdminSetUserRole(c *gin.Context) {
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: parent, cashier, or admin"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var record models.UserRoleRecord
	if err := config.DB.Where("user_id = ?", user.ID).First(&record).Error; err == nil {
		config.DB.Model(&record).Update("role", req.Role)
	} else {
		config.DB.Create(&models.UserRoleRecord{UserID: user.ID, Role: req.Role})
	}
	config.DB.Model(&models.Profile{}).Where("user_id = ?", user.ID).Update("role", req.Role)

	c.JSON(http.StatusOK, gin.H{
		"message": "Role updated. Takes effect on the user's next session refresh.",
		"user_id": user.ID,
		"role":    req.Role,
	})
}
