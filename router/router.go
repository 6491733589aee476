package router

import (
	"apptransaction/config"
	"apptransaction/controllers"
	dbpkg "apptransaction/db"
	"apptransaction/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// Initialize wires all routes and middlewares. Resources hang off
// cfg.ApiPrefix (empty by default, so /customers, /plans, /transactions).
func Initialize(r *gin.Engine, cfg config.Configuration, database *gorm.DB, ctl *controllers.Controller, log logrus.FieldLogger) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Metrics())
	r.Use(dbpkg.SetDBtoContext(database))
	r.NoRoute(controllers.NotFound)

	r.GET("/health", controllers.Health)
	r.GET("/metrics", middleware.MetricsHandler())
	r.GET("/", Authorizer(cfg), controllers.Root)

	api := r.Group(cfg.ApiPrefix)
	api.Use(Logger(log))

	// Customers
	api.POST("/customers", ctl.CreateCustomer)
	api.GET("/customers", ctl.GetCustomers)
	api.GET("/customers/:id", ctl.GetCustomerByID)
	api.PATCH("/customers/:id", ctl.UpdateCustomer)
	api.PUT("/customers/:id", ctl.UpdateCustomer)
	api.DELETE("/customers/:id", ctl.DeleteCustomer)

	// Customer <-> plan
	api.POST("/customers/:id/plans", ctl.AddCustomerPlan)
	api.GET("/customers/:id/plans", ctl.GetCustomerPlans)

	// Customer <-> transaction
	api.POST("/customers/:id/transactions", ctl.AddCustomerTransaction)
	api.GET("/customers/:id/transactions", ctl.GetCustomerTransactions)

	// Plans
	api.POST("/plans", ctl.CreatePlan)
	api.GET("/plans", ctl.GetPlans)
	api.GET("/plans/:id", ctl.GetPlanByID)
	api.PATCH("/plans/:id", ctl.UpdatePlan)
	api.PUT("/plans/:id", ctl.UpdatePlan)
	api.DELETE("/plans/:id", ctl.DeletePlan)

	// Transactions
	api.POST("/transactions", ctl.CreateTransaction)
	api.GET("/transactions", ctl.GetTransactions)
	api.GET("/transactions/:id", ctl.GetTransactionByID)
	api.PATCH("/transactions/:id", ctl.UpdateTransaction)
	api.PUT("/transactions/:id", ctl.UpdateTransaction)
	api.DELETE("/transactions/:id", ctl.DeleteTransaction)

	log.Info("Routes initialized")
}
