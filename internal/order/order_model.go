package order

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Order adalah model domain dan GORM untuk tabel 'orders'.
// JSON tag mengikuti format kolom yang dipakai backend.
type Order struct {
	OrderID       string        `gorm:"primaryKey;type:varchar(16)" json:"order_id"`
	CreatedAt     time.Time     `json:"date"`
	CustomerName  string        `gorm:"type:varchar(255);not null" json:"name"`
	CustomerPhone string        `gorm:"type:varchar(32);not null" json:"phone"`
	CustomerNote  string        `gorm:"type:text" json:"note"`
	ProductID     string        `gorm:"type:varchar(64);not null;index" json:"product_id"`
	ProductName   string        `gorm:"type:varchar(255)" json:"product_name"`
	Quantity      int           `gorm:"not null" json:"qty"`
	UnitPrice     int64         `gorm:"not null" json:"unit_price"`
	TotalPrice    int64         `gorm:"not null" json:"total_price"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(16);not null" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(32);not null;index" json:"payment_status"`
	OrderStatus   OrderStatus   `gorm:"type:varchar(32);not null;index" json:"order_status"`
	PaymentProof  string        `gorm:"type:text" json:"payment_proof"`
	TrackingLink  string        `gorm:"type:varchar(255)" json:"tracking_link"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Hook GORM untuk mengisi nilai default sebelum create
func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.OrderID == "" {
		o.OrderID = GenerateOrderID()
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentPending
	}
	if o.OrderStatus == "" {
		o.OrderStatus = StatusPending
	}
	return
}

// Statuses mengembalikan kedua sumbu status sebagai satu pasangan.
func (o *Order) Statuses() StatusPair {
	return StatusPair{Payment: o.PaymentStatus, Order: o.OrderStatus}
}

// Draft adalah pilihan produk dan jumlah yang dibawa dari halaman produk ke form pemesanan.
// Stok disimpan sebagai snapshot saat produk dilihat.
type Draft struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   int64  `json:"unit_price"`
	Stock       int    `json:"stock"`
	Quantity    int    `json:"quantity"`
	TotalPrice  int64  `json:"total_price"`
}

func NewDraft(productID, productName string, unitPrice int64, stock, quantity int) (Draft, error) {
	if err := ValidateQuantity(quantity, stock); err != nil {
		return Draft{}, err
	}
	return Draft{
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Stock:       stock,
		Quantity:    quantity,
		TotalPrice:  unitPrice * int64(quantity),
	}, nil
}

// NewOrder menyusun order baru dari draft dan form yang sudah tervalidasi.
// Kedua status selalu dimulai dari Pending.
func NewOrder(id string, now time.Time, siteOrigin string, d Draft, in SubmissionInput) *Order {
	o := &Order{
		OrderID:       id,
		CreatedAt:     now.UTC(),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		CustomerNote:  strings.TrimSpace(in.CustomerNote),
		ProductID:     d.ProductID,
		ProductName:   d.ProductName,
		Quantity:      d.Quantity,
		UnitPrice:     d.UnitPrice,
		TotalPrice:    d.UnitPrice * int64(d.Quantity),
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: PaymentPending,
		OrderStatus:   StatusPending,
		TrackingLink:  TrackingLink(siteOrigin, id),
	}
	if in.PaymentMethod.RequiresProof() && in.PaymentProof != nil {
		o.PaymentProof = in.PaymentProof.DataURL()
	}
	return o
}
