package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"school-catering-api/config"
	"school-catering-api/models"
	"school-catering-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Profile{}, &models.UserRoleRecord{},
		&models.Child{}, &models.MenuItem{}, &models.Order{}, &models.OrderItem{},
		&models.PaymentTransaction{},
	))

	config.DB = db
	config.JWTSecret = []byte("test_secret")
	config.AdminEmail = "admin@admin.com"
	config.CashierEmail = "kasir@kasir.com"

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func register(t *testing.T, r *gin.Engine, email string) (token, role string) {
	t.Helper()
	w, out := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"full_name": "Test User",
		"email":     email,
		"password":  "rahasia123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := out["user"].(map[string]any)
	return out["token"].(string), user["role"].(string)
}

func TestRegisterDefaultsToParent(t *testing.T) {
	r := setupRouter(t)
	_, role := register(t, r, "ibu.ratna@example.com")
	assert.Equal(t, "parent", role)

	// Role resolution wrote back to both stores
	var record models.UserRoleRecord
	require.NoError(t, config.DB.First(&record).Error)
	assert.Equal(t, models.RoleParent, record.Role)

	var profile models.Profile
	require.NoError(t, config.DB.First(&profile).Error)
	assert.Equal(t, models.RoleParent, profile.Role)
}

func TestCashierEmailOverride(t *testing.T) {
	r := setupRouter(t)
	_, role := register(t, r, "kasir@kasir.com")
	assert.Equal(t, "cashier", role)

	w, out := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "kasir@kasir.com", "password": "rahasia123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cashier", out["user"].(map[string]any)["role"])
}

func TestAdminEmailOverride(t *testing.T) {
	r := setupRouter(t)
	_, role := register(t, r, "admin@admin.com")
	assert.Equal(t, "admin", role)
}

func TestRefreshPicksUpRoleChange(t *testing.T) {
	r := setupRouter(t)
	token, role := register(t, r, "pak.dedi@example.com")
	require.Equal(t, "parent", role)

	// Promote behind the session's back
	require.NoError(t, config.DB.Model(&models.UserRoleRecord{}).
		Where("role = ?", models.RoleParent).
		Update("role", models.RoleCashier).Error)

	w, out := doJSON(t, r, http.MethodPost, "/api/auth/refresh", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cashier", out["role"])

	// The refreshed token now passes the cashier gate
	newToken := out["token"].(string)
	w, _ = doJSON(t, r, http.MethodGet, "/api/cashier/orders/pending", newToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	r := setupRouter(t)
	w, _ := doJSON(t, r, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestParentCannotReachCashierRoutes(t *testing.T) {
	r := setupRouter(t)
	token, _ := register(t, r, "ibu.sari@example.com")

	w, _ := doJSON(t, r, http.MethodGet, "/api/cashier/orders/pending", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r := setupRouter(t)
	register(t, r, "ibu.ratna@example.com")

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ibu.ratna@example.com", "password": "salah",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLandingIsPublic(t *testing.T) {
	r := setupRouter(t)
	w, out := doJSON(t, r, http.MethodGet, "/api/landing", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, out, "hero")
	assert.Contains(t, out, "features")
	assert.Contains(t, out, "pricing")
	assert.Contains(t, out, "testimonials")
	assert.Contains(t, out, "footer")
}
