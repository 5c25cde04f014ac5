package config

import (
	"log"
	"os"

	"school-catering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — populated by Load()
var JWTSecret []byte

// AdminEmail and CashierEmail are the two override addresses that always win
// role resolution regardless of table contents.
var (
	AdminEmail   string
	CashierEmail string
)

// Load reads .env (if present) and populates the config vars.
// Must run before InitDB and before any token is generated.
func Load() {
	// A missing .env is fine — vars may come from the shell
	_ = godotenv.Load()

	JWTSecret = []byte(getEnv("JWT_SECRET", "catering_super_secret_2024"))
	AdminEmail = getEnv("ADMIN_EMAIL", "admin@admin.com")
	CashierEmail = getEnv("CASHIER_EMAIL", "kasir@kasir.com")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "catering.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.UserRoleRecord{},
		&models.Child{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentTransaction{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
