package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"claimscore/internal/config"
	"claimscore/internal/httpserver"
	"claimscore/internal/logger"
	"claimscore/internal/models"
	"claimscore/internal/store"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()
	cfg, err := config.Load()
	if err != nil {
		lg.Fatalw("config load failed", "error", err)
	}
	if cfg.DatabaseURL == "" {
		lg.Fatalw("DATABASE_URL is empty")
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := db.AutoMigrate(
		&models.Credential{},
		&models.TechnicianType{}, &models.Technician{},
		&models.ProductType{}, &models.Segment{}, &models.Product{},
		&models.Province{},
		&models.Category{}, &models.Problem{},
		&models.Label{},
		&models.Complaint{}, &models.ComplaintItem{},
	); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}
	seedDemoCredential(db, lg)
	router := httpserver.NewRouter(store.New(db), cfg, lg)
	lg.Infow("listening", "port", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		lg.Fatalw("server stopped", "error", err)
	}
}

// seedDemoCredential inserts a throwaway login for local development. It only
// runs when explicitly asked for and the logins table is empty; credentials
// are otherwise owned by the external system of record.
func seedDemoCredential(db *gorm.DB, lg *zap.SugaredLogger) {
	if os.Getenv("SEED_DEMO_LOGIN") != "1" {
		return
	}
	var count int64
	db.Model(&models.Credential{}).Count(&count)
	if count > 0 {
		return
	}
	cred := models.Credential{
		ID:       "00000000-0000-0000-0000-000000000001",
		User:     "demo",
		Password: "demo",
		Name:     "Demo",
		LastName: "User",
		Mail:     "demo@localhost",
		Role:     "1 - Administrador",
	}
	if err := db.Create(&cred).Error; err != nil {
		lg.Errorw("demo credential seed failed", "error", err)
		return
	}
	lg.Infow("seeded demo credential", "user", cred.User)
}
