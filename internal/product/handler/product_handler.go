package handler

import (
	"net/http"

	"storefront/internal/httpx"
	"storefront/internal/product"
	"storefront/internal/product/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Service service.ProductService
	logger  *zap.Logger
}

func NewProductHandler(svc service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{Service: svc, logger: logger}
}

// ListProducts menangani GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.Service.ListProducts(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct menangani GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.Service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p, "in_stock": p.InStock()})
}

// CreateProduct menangani POST /admin/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req product.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err)
		return
	}
	if err := h.Service.CreateProduct(c.Request.Context(), req); err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Produk berhasil ditambahkan"})
}

// UpdateProduct menangani PUT /admin/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req product.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err)
		return
	}
	if err := h.Service.UpdateProduct(c.Request.Context(), c.Param("id"), req); err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Produk berhasil diperbarui"})
}

// DeleteProduct menangani DELETE /admin/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.Service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Produk berhasil dihapus"})
}
