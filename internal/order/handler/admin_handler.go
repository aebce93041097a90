package handler

import (
	"net/http"
	"strings"

	"storefront/internal/backend"
	"storefront/internal/httpx"
	"storefront/internal/order"
	"storefront/internal/order/service"
	"storefront/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const adminSessionKey = "admin_session"

type AdminHandler struct {
	Service service.AdminService
	logger  *zap.Logger
}

func NewAdminHandler(svc service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Service: svc, logger: logger}
}

// RequireAdmin memeriksa header Authorization: Bearer <token> terhadap sesi di Redis.
func (h *AdminHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Silakan login terlebih dahulu."})
			return
		}
		sess, err := h.Service.Authorize(c.Request.Context(), token)
		if err != nil {
			httpx.RespondError(c, h.logger, err)
			return
		}
		c.Set(adminSessionKey, sess)
		c.Next()
	}
}

// Login menangani POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var creds backend.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		httpx.RespondError(c, h.logger, service.ErrCredentialsRequired)
		return
	}
	res, err := h.Service.Login(c.Request.Context(), creds)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Logout menangani POST /admin/logout
func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.Service.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListOrders menangani GET /admin/orders?q=&status=
func (h *AdminHandler) ListOrders(c *gin.Context) {
	var f order.OrderFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		httpx.BadRequest(c, err)
		return
	}
	list, err := h.Service.ListOrders(c.Request.Context(), f)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetOrder menangani GET /admin/orders/:id
func (h *AdminHandler) GetOrder(c *gin.Context) {
	detail, err := h.Service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateOrderStatus menangani PUT /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req order.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err)
		return
	}
	res, err := h.Service.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	if sess, ok := c.Get(adminSessionKey); ok {
		h.logger.Info("order status changed by admin",
			zap.String("order_id", c.Param("id")),
			zap.String("admin", sess.(*session.AdminSession).Name))
	}
	c.JSON(http.StatusOK, res)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
