// Package server merangkai semua handler ke satu gin.Engine.
package server

import (
	"net/http"

	"storefront/internal/logging"
	orderhandler "storefront/internal/order/handler"
	producthandler "storefront/internal/product/handler"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Orders   *orderhandler.OrderHandler
	Admin    *orderhandler.AdminHandler
	Products *producthandler.ProductHandler
}

func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(logging.RequestLogger(logger), gin.Recovery())
	_ = router.SetTrustedProxies(nil)

	// Rute Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Target tracking link yang dibagikan ke pelanggan
	router.GET("/track", h.Orders.TrackOrder)

	api := router.Group("/api/v1")
	{
		api.GET("/track", h.Orders.TrackOrder)

		api.GET("/products", h.Products.ListProducts)
		api.GET("/products/:id", h.Products.GetProduct)

		api.POST("/orders/draft", h.Orders.PrepareDraft)
		api.POST("/orders", h.Orders.SubmitOrder)
		api.POST("/orders/payment-proof/check", h.Orders.CheckPaymentProof)
		api.GET("/orders/confirmation/:token", h.Orders.GetConfirmation)

		api.POST("/admin/login", h.Admin.Login)
	}

	admin := api.Group("/admin", h.Admin.RequireAdmin())
	{
		admin.POST("/logout", h.Admin.Logout)
		admin.GET("/orders", h.Admin.ListOrders)
		admin.GET("/orders/:id", h.Admin.GetOrder)
		admin.PUT("/orders/:id/status", h.Admin.UpdateOrderStatus)

		admin.POST("/products", h.Products.CreateProduct)
		admin.PUT("/products/:id", h.Products.UpdateProduct)
		admin.DELETE("/products/:id", h.Products.DeleteProduct)
	}

	return router
}
