package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"school-catering-api/config"
	"school-catering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrderForClass(t *testing.T, name, class string, delivery time.Time, total int64) models.Order {
	t.Helper()
	child := models.Child{ParentID: 1, Name: name, ClassName: class}
	require.NoError(t, config.DB.Create(&child).Error)

	order := models.Order{
		ParentID: 1, ChildID: child.ID,
		ChildName: name, ChildClass: class,
		TotalAmount:   total,
		PaymentStatus: models.PaymentPending,
		DeliveryDate:  &delivery,
		Items:         []models.OrderItem{{MenuItemID: 1, Quantity: 1, Price: total}},
	}
	require.NoError(t, config.DB.Create(&order).Error)
	return order
}

func TestCashierSearchEndToEnd(t *testing.T) {
	r := setupRouter(t)
	token, _ := register(t, r, "kasir@kasir.com")

	base := time.Now().AddDate(0, 0, 7)
	seedOrderForClass(t, "Ahmad Fauzi", "1A", base, 15000)
	seedOrderForClass(t, "Budi Santoso", "1A", base.AddDate(0, 0, 2), 20000)
	seedOrderForClass(t, "Citra Dewi", "2B", base.AddDate(0, 0, 1), 18000)

	w, out := doJSON(t, r, http.MethodGet, "/api/cashier/orders/search?q=1A", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.EqualValues(t, 2, out["count"])

	views := out["orders"].([]any)
	require.Len(t, views, 2)
	var lastDate string
	for i, v := range views {
		order := v.(map[string]any)["order"].(map[string]any)
		assert.Equal(t, "1A", order["child_class"], "result %d leaked another class", i)
		d := order["delivery_date"].(string)
		if i > 0 {
			assert.GreaterOrEqual(t, lastDate, d, "results must be newest delivery first")
		}
		lastDate = d
	}
}

func TestCashierSearchShortQueryReturnsEmpty(t *testing.T) {
	r := setupRouter(t)
	token, _ := register(t, r, "kasir@kasir.com")
	seedOrderForClass(t, "Ahmad Fauzi", "1A", time.Now().AddDate(0, 0, 7), 15000)

	w, out := doJSON(t, r, http.MethodGet, "/api/cashier/orders/search?q=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, out["count"])
}

func TestPendingOrdersMarkExpiredAsNotPayable(t *testing.T) {
	r := setupRouter(t)
	token, _ := register(t, r, "kasir@kasir.com")

	seedOrderForClass(t, "Ahmad Fauzi", "1A", time.Now().AddDate(0, 0, -1), 15000)
	seedOrderForClass(t, "Budi Santoso", "1A", time.Now().AddDate(0, 0, 1), 20000)

	w, out := doJSON(t, r, http.MethodGet, "/api/cashier/orders/pending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	payableByName := map[string]bool{}
	for _, v := range out["orders"].([]any) {
		view := v.(map[string]any)
		order := view["order"].(map[string]any)
		payableByName[order["child_name"].(string)] = view["payable"].(bool)
	}
	assert.False(t, payableByName["Ahmad Fauzi"], "yesterday's order must be expired")
	assert.True(t, payableByName["Budi Santoso"])
}

func TestCashierPayFlow(t *testing.T) {
	r := setupRouter(t)
	token, _ := register(t, r, "kasir@kasir.com")

	order := seedOrderForClass(t, "Ahmad Fauzi", "1A", time.Now().AddDate(0, 0, 1), 25000)
	payPath := fmt.Sprintf("/api/cashier/orders/%d/pay", order.ID)

	w, out := doJSON(t, r, http.MethodPost, payPath, token, gin.H{"amount_received": 30000})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 5000, out["change"])
	assert.Equal(t, "Rp5.000", out["change_display"])
	assert.NotEmpty(t, out["receipt_number"])

	// The pending list no longer shows the order
	w, out = doJSON(t, r, http.MethodGet, "/api/cashier/orders/pending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, out["count"])

	// Paying twice is rejected
	w, _ = doJSON(t, r, http.MethodPost, payPath, token, gin.H{"amount_received": 30000})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCashierPayRejectsExpiredOrder(t *testing.T) {
	r := setupRouter(t)
	token, _ := register(t, r, "kasir@kasir.com")

	order := seedOrderForClass(t, "Ahmad Fauzi", "1A", time.Now().AddDate(0, 0, -1), 25000)

	w, _ := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/cashier/orders/%d/pay", order.ID), token, gin.H{"amount_received": 25000})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAdminActsAsCashier(t *testing.T) {
	r := setupRouter(t)
	token, _ := register(t, r, "admin@admin.com")

	order := seedOrderForClass(t, "Ahmad Fauzi", "1A", time.Now().AddDate(0, 0, 1), 25000)

	w, _ := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/cashier/orders/%d/pay", order.ID), token, gin.H{"amount_received": 25000})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
