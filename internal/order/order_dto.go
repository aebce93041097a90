// internal/order/order_dto.go
package order

import (
	"time"
)

// Payload JSON untuk POST /orders/draft
type DraftRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// Response JSON setelah draft disimpan
type DraftResponse struct {
	DraftToken string `json:"draft_token"`
	Draft      Draft  `json:"draft"`
	TotalLabel string `json:"total_label"`
}

// SubmitOrderRequest adalah input service untuk POST /orders (dibangun handler dari multipart form).
type SubmitOrderRequest struct {
	DraftToken string
	SubmissionInput
}

// Response JSON untuk order yang berhasil dibuat
type SubmitOrderResponse struct {
	OrderID           string `json:"order_id"`
	TrackingLink      string `json:"tracking_link"`
	ConfirmationToken string `json:"confirmation_token"`
}

// OrderDetails adalah bagian read-only dari order yang ditampilkan ke pelanggan dan admin.
type OrderDetails struct {
	OrderID            string        `json:"order_id"`
	Date               time.Time     `json:"date"`
	CustomerName       string        `json:"name"`
	CustomerPhone      string        `json:"phone"`
	CustomerNote       string        `json:"note"`
	ProductID          string        `json:"product_id"`
	ProductName        string        `json:"product_name"`
	Quantity           int           `json:"qty"`
	TotalPrice         int64         `json:"total_price"`
	TotalPriceLabel    string        `json:"total_price_label"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
	PaymentMethodLabel string        `json:"payment_method_label"`
	TrackingLink       string        `json:"tracking_link"`
}

// Confirmation adalah snapshot order untuk halaman sukses. Bukti pembayaran tidak ikut.
type Confirmation struct {
	OrderDetails
	PaymentStatus StatusView `json:"payment_status"`
}

// TrackingView adalah hasil tracking yang dirender untuk pelanggan.
type TrackingView struct {
	Order         OrderDetails   `json:"order"`
	PaymentStatus StatusView     `json:"payment_status"`
	OrderStatus   StatusView     `json:"order_status"`
	Progress      []ProgressStep `json:"progress"`
	Terminal      bool           `json:"terminal"`
	PaymentProof  string         `json:"payment_proof,omitempty"`
}

// AdminOrderDetail menambahkan pilihan status lengkap untuk form update admin.
type AdminOrderDetail struct {
	TrackingView
	PaymentStatusOptions []StatusView `json:"payment_status_options"`
	OrderStatusOptions   []StatusView `json:"order_status_options"`
}

// Baris tabel pesanan di konsol admin
type AdminOrderRow struct {
	OrderDetails
	PaymentStatus StatusView `json:"payment_status"`
	OrderStatus   StatusView `json:"order_status"`
}

type OrderStats struct {
	Total          int `json:"total"`
	PendingPayment int `json:"pending_payment"`
	Processing     int `json:"processing"`
	Completed      int `json:"completed"`
}

// Query string untuk GET /admin/orders
type OrderFilter struct {
	Search string `form:"q"`
	Status string `form:"status"`
}

type AdminOrderList struct {
	Orders []AdminOrderRow `json:"orders"`
	Stats  OrderStats      `json:"stats"`
}

// Payload JSON untuk PUT /admin/orders/:id/status
type UpdateStatusRequest struct {
	PaymentStatus PaymentStatus `json:"payment_status" binding:"required"`
	OrderStatus   OrderStatus   `json:"order_status" binding:"required"`
}

// AdminUpdateResult berisi detail dan statistik yang diambil ulang dari backend setelah update.
type AdminUpdateResult struct {
	Order AdminOrderDetail `json:"order"`
	Stats OrderStats       `json:"stats"`
}
