package routes

import (
	"github.com/FuadJemal86/aquaErp-sub001/controllers"
	"github.com/FuadJemal86/aquaErp-sub001/middlewares"
	"github.com/FuadJemal86/aquaErp-sub001/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		// session
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/logout", controllers.Logout)
		}

		// stored attachments (receipts, ID cards)
		api.GET("/public-download", controllers.PublicDownload)

		// ================= ADMIN =================
		admin := api.Group("/admin", middlewares.Auth(), middlewares.RequireRole(string(models.RoleAdmin)))
		{
			admin.GET("/profile", controllers.Profile)
			admin.PUT("/profile", controllers.UpdateProfile)
			admin.PUT("/profile/password", controllers.ChangePassword)

			// staff management
			admin.GET("/users", controllers.GetAllUsers)
			admin.POST("/users", controllers.CreateUser)
			admin.PUT("/users/:id", controllers.UpdateUser)
			admin.DELETE("/users/:id", controllers.DeleteUser)

			customer := admin.Group("/customer")
			{
				customer.GET("/", controllers.GetAllCustomer)
				customer.GET("/:id", controllers.GetCustomerByID)
				customer.POST("/", controllers.CreateCustomer)
				customer.PUT("/:id", controllers.UpdateCustomer)
				customer.DELETE("/:id", controllers.DeleteCustomer)
			}

			supplier := admin.Group("/supplier")
			{
				supplier.GET("/", controllers.GetAllSupplier)
				supplier.GET("/:id", controllers.GetSupplierByID)
				supplier.POST("/", controllers.CreateSupplier)
				supplier.PUT("/:id", controllers.UpdateSupplier)
				supplier.DELETE("/:id", controllers.DeleteSupplier)
			}

			product := admin.Group("/product")
			{
				product.GET("/category", controllers.GetAllProductCategory)
				product.POST("/category", controllers.CreateProductCategory)
				product.GET("/type", controllers.GetAllProductType)
				product.POST("/type", controllers.CreateProductType)
				product.PUT("/type/:id", controllers.UpdateProductType)
				product.GET("/stock", controllers.GetProductStock)
				product.POST("/stock/adjust", controllers.AdjustProductStock)
			}

			// transactions
			admin.POST("/add-sales", controllers.AddSales)
			admin.POST("/add-buy", controllers.AddBuy)
			admin.GET("/get-sales-transaction", controllers.GetSalesTransaction)
			admin.GET("/get-buy-transaction", controllers.GetBuyTransaction)
			admin.GET("/sales/:id", controllers.SalesDetail)
			admin.GET("/buy/:id", controllers.BuyDetail)
			admin.GET("/get-product-transaction", controllers.GetProductTransaction)

			// credits
			admin.GET("/sales-credit", controllers.GetSalesCredit)
			admin.GET("/buy-credit", controllers.GetBuyCredit)
			admin.GET("/sales-credit/:id/history", controllers.SalesCreditHistory)
			admin.GET("/buy-credit/:id/history", controllers.BuyCreditHistory)
			admin.POST("/sales-credit-repay", controllers.SalesCreditRepay)
			admin.POST("/buy-credit-repay", controllers.BuyCreditRepay)

			// ledgers
			admin.GET("/get-cash-balance", controllers.GetCashBalance)
			admin.GET("/get-cash-transaction", controllers.GetCashTransaction)
			admin.POST("/add-cash-deposit", controllers.AddCashDeposit)
			admin.POST("/add-cash-withdrawal", controllers.AddCashWithdrawal)
			admin.POST("/add-bank", controllers.AddBankAccount)
			admin.GET("/get-bank-balance", controllers.GetBankBalance)
			admin.GET("/get-bank-transaction", controllers.GetBankTransaction)
			admin.POST("/add-bank-deposit", controllers.AddBankDeposit)
			admin.POST("/add-bank-withdrawal", controllers.AddBankWithdrawal)

			admin.GET("/notifications", controllers.GetNotifications)
		}

		// ================= CASHIER =================
		cashier := api.Group("/cashier", middlewares.Auth(),
			middlewares.RequireRole(string(models.RoleAdmin), string(models.RoleCashier)))
		{
			cashier.GET("/profile", controllers.Profile)
			cashier.PUT("/profile", controllers.UpdateProfile)
			cashier.PUT("/profile/password", controllers.ChangePassword)

			cashier.GET("/customer", controllers.GetAllCustomer)
			cashier.POST("/customer", controllers.CreateCustomer)
			cashier.GET("/product/type", controllers.GetAllProductType)
			cashier.GET("/product/stock", controllers.GetProductStock)

			cashier.POST("/add-sales", controllers.AddSales)
			cashier.GET("/get-sales-transaction", controllers.GetSalesTransaction)
			cashier.GET("/sales/:id", controllers.SalesDetail)

			cashier.GET("/sales-credit", controllers.GetSalesCredit)
			cashier.GET("/sales-credit/:id/history", controllers.SalesCreditHistory)
			cashier.POST("/sales-credit-repay", controllers.SalesCreditRepay)
		}
	}
}
