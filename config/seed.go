package config

import (
	"os"

	"github.com/FuadJemal86/aquaErp-sub001/models"

	zlog "github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// SeedDefaults makes sure the system can be used on first boot: one
// admin account and the singleton cash drawer ledger.
func SeedDefaults() {
	var cnt int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&cnt)
	if cnt == 0 {
		username := os.Getenv("ADMIN_USERNAME")
		if username == "" {
			username = "admin"
		}
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
			zlog.Warn().Msg("ADMIN_PASSWORD not set, using default credentials")
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		DB.Create(&models.User{
			Username:     username,
			FullName:     "Administrator",
			Role:         models.RoleAdmin,
			PasswordHash: string(hash),
			IsActive:     true,
		})
		zlog.Info().Str("username", username).Msg("seeded admin user")
	}

	DB.Model(&models.Ledger{}).Where("type = ?", models.LedgerCash).Count(&cnt)
	if cnt == 0 {
		DB.Create(&models.Ledger{
			Type:     models.LedgerCash,
			Name:     "Cash Drawer",
			Balance:  0,
			IsActive: true,
		})
		zlog.Info().Msg("seeded cash ledger")
	}
}
