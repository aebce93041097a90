package order

// Status Pembayaran (Enum)
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Dibayar"
	PaymentFailed   PaymentStatus = "Gagal"
	PaymentRefunded PaymentStatus = "Dikembalikan"
)

// Status Pesanan / fulfillment (Enum)
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Diproses"
	StatusShipped    OrderStatus = "Dikirim"
	StatusCompleted  OrderStatus = "Selesai"
	StatusCancelled  OrderStatus = "Dibatalkan"
)

// Severity dipakai oleh tampilan tracking dan admin supaya arti warna selalu sama.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
	SeverityNeutral Severity = "neutral"
)

// StatusView adalah metadata tampilan untuk satu nilai status.
type StatusView struct {
	Value       string   `json:"value"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

var paymentStatusViews = map[PaymentStatus]StatusView{
	PaymentPending:  {Value: string(PaymentPending), Label: "Menunggu Pembayaran", Description: "Pembayaran belum diterima", Severity: SeverityInfo},
	PaymentPaid:     {Value: string(PaymentPaid), Label: "Pembayaran Diterima", Description: "Pembayaran telah dikonfirmasi", Severity: SeveritySuccess},
	PaymentFailed:   {Value: string(PaymentFailed), Label: "Pembayaran Gagal", Description: "Pembayaran tidak dapat diproses", Severity: SeverityDanger},
	PaymentRefunded: {Value: string(PaymentRefunded), Label: "Dana Dikembalikan", Description: "Pembayaran telah dikembalikan ke pembeli", Severity: SeverityNeutral},
}

var orderStatusViews = map[OrderStatus]StatusView{
	StatusPending:    {Value: string(StatusPending), Label: "Pesanan Diterima", Description: "Pesanan menunggu konfirmasi penjual", Severity: SeverityInfo},
	StatusProcessing: {Value: string(StatusProcessing), Label: "Sedang Diproses", Description: "Pesanan sedang disiapkan", Severity: SeverityInfo},
	StatusShipped:    {Value: string(StatusShipped), Label: "Dalam Pengiriman", Description: "Pesanan sedang dikirim ke alamat tujuan", Severity: SeverityInfo},
	StatusCompleted:  {Value: string(StatusCompleted), Label: "Pesanan Selesai", Description: "Pesanan telah diterima pembeli", Severity: SeveritySuccess},
	StatusCancelled:  {Value: string(StatusCancelled), Label: "Pesanan Dibatalkan", Description: "Pesanan tidak dilanjutkan", Severity: SeverityDanger},
}

// PaymentStatuses mengembalikan seluruh enumerasi sesuai urutan pilihan di konsol admin.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded}
}

// OrderStatuses mengembalikan seluruh enumerasi sesuai urutan pilihan di konsol admin.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled}
}

func IsValidPaymentStatus(s string) bool {
	_, ok := paymentStatusViews[PaymentStatus(s)]
	return ok
}

func IsValidOrderStatus(s string) bool {
	_, ok := orderStatusViews[OrderStatus(s)]
	return ok
}

// ParsePaymentStatus tidak pernah gagal: nilai asing diperlakukan sebagai Pending.
func ParsePaymentStatus(s string) PaymentStatus {
	if IsValidPaymentStatus(s) {
		return PaymentStatus(s)
	}
	return PaymentPending
}

// ParseOrderStatus tidak pernah gagal: nilai asing diperlakukan sebagai Pending.
func ParseOrderStatus(s string) OrderStatus {
	if IsValidOrderStatus(s) {
		return OrderStatus(s)
	}
	return StatusPending
}

func DescribePaymentStatus(s PaymentStatus) StatusView {
	if v, ok := paymentStatusViews[s]; ok {
		return v
	}
	return paymentStatusViews[PaymentPending]
}

func DescribeOrderStatus(s OrderStatus) StatusView {
	if v, ok := orderStatusViews[s]; ok {
		return v
	}
	return orderStatusViews[StatusPending]
}

// Metode pembayaran yang tersedia di form pemesanan
type PaymentMethod string

const (
	MethodQRIS     PaymentMethod = "qris"
	MethodTransfer PaymentMethod = "transfer"
	MethodCOD      PaymentMethod = "cod"
)

var paymentMethodLabels = map[PaymentMethod]string{
	MethodQRIS:     "QRIS",
	MethodTransfer: "Transfer Bank",
	MethodCOD:      "COD",
}

func (m PaymentMethod) IsValid() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

func (m PaymentMethod) Label() string {
	if l, ok := paymentMethodLabels[m]; ok {
		return l
	}
	return string(m)
}

// RequiresProof: semua metode selain COD wajib melampirkan bukti pembayaran.
func (m PaymentMethod) RequiresProof() bool {
	return m != MethodCOD
}
