package main

import (
	"os"

	"github.com/FuadJemal86/aquaErp-sub001/config"
	"github.com/FuadJemal86/aquaErp-sub001/controllers"
	"github.com/FuadJemal86/aquaErp-sub001/models"
	"github.com/FuadJemal86/aquaErp-sub001/routes"
	"github.com/FuadJemal86/aquaErp-sub001/service"
	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	utils.SetupLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Supplier{},
		&models.ProductCategory{},
		&models.ProductType{},
		&models.ProductStock{},
		&models.ProductTransaction{},
		&models.SalesTransaction{},
		&models.SalesItem{},
		&models.BuyTransaction{},
		&models.BuyItem{},
		&models.SalesCredit{},
		&models.BuyCredit{},
		&models.SalesCreditTransaction{},
		&models.BuyCreditTransaction{},
		&models.Ledger{},
		&models.LedgerTransaction{},
	)

	config.SeedDefaults()

	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.Secret = []byte(s)
	}
	if d := os.Getenv("UPLOAD_DIR"); d != "" {
		utils.UploadDir = d
	}

	controllers.SetEngine(service.NewService(config.DB, zlog.Logger))

	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "AquaERP API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		zlog.Fatal().Err(err).Msg("server stopped")
	}
}
