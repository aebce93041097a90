package handler

import (
	"errors"
	"io"
	"net/http"

	"storefront/internal/httpx"
	"storefront/internal/order"
	"storefront/internal/order/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler melayani halaman pelanggan: draft, submit, konfirmasi, dan tracking.
type OrderHandler struct {
	Service       service.OrderService
	maxProofBytes int64
	logger        *zap.Logger
}

func NewOrderHandler(svc service.OrderService, maxProofBytes int64, logger *zap.Logger) *OrderHandler {
	if maxProofBytes <= 0 {
		maxProofBytes = order.DefaultMaxProofBytes
	}
	return &OrderHandler{
		Service:       svc,
		maxProofBytes: maxProofBytes,
		logger:        logger,
	}
}

// PrepareDraft menangani endpoint POST /orders/draft
func (h *OrderHandler) PrepareDraft(c *gin.Context) {
	var req order.DraftRequest

	// 1. Binding dan Validasi Input
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err)
		return
	}

	// 2. Panggil Service Layer
	res, err := h.Service.PrepareDraft(c.Request.Context(), req)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// SubmitOrder menangani endpoint POST /orders (multipart/form-data)
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	proof, err := h.readProof(c)
	if err != nil {
		httpx.BadRequest(c, err)
		return
	}

	req := order.SubmitOrderRequest{
		DraftToken: c.PostForm("draft_token"),
		SubmissionInput: order.SubmissionInput{
			CustomerName:  c.PostForm("name"),
			CustomerPhone: c.PostForm("phone"),
			CustomerNote:  c.PostForm("note"),
			PaymentMethod: order.PaymentMethod(c.PostForm("payment_method")),
			PaymentProof:  proof,
		},
	}

	res, err := h.Service.SubmitOrder(c.Request.Context(), req)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// CheckPaymentProof menangani endpoint POST /orders/payment-proof/check
func (h *OrderHandler) CheckPaymentProof(c *gin.Context) {
	proof, err := h.readProof(c)
	if err != nil {
		httpx.BadRequest(c, err)
		return
	}
	if err := h.Service.CheckPaymentProof(proof); err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "content_type": proof.ContentType()})
}

// GetConfirmation menangani endpoint GET /orders/confirmation/:token
func (h *OrderHandler) GetConfirmation(c *gin.Context) {
	conf, err := h.Service.GetConfirmation(c.Request.Context(), c.Param("token"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, conf)
}

// TrackOrder menangani GET /track?id= dan GET /api/v1/track?id=
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	view, err := h.Service.TrackOrder(c.Request.Context(), c.Query("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// readProof membaca file payment_proof paling banyak max+1 byte, cukup untuk
// mendeteksi file yang terlalu besar tanpa membaca semuanya. File kosong berarti nil.
func (h *OrderHandler) readProof(c *gin.Context) (*order.PaymentProof, error) {
	fh, err := c.FormFile("payment_proof")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxProofBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &order.PaymentProof{Filename: fh.Filename, Data: data}, nil
}
