package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeStatus(t *testing.T) {
	tests := []struct {
		name     string
		view     StatusView
		label    string
		severity Severity
	}{
		{"payment pending", DescribePaymentStatus(PaymentPending), "Menunggu Pembayaran", SeverityInfo},
		{"payment paid", DescribePaymentStatus(PaymentPaid), "Pembayaran Diterima", SeveritySuccess},
		{"payment failed", DescribePaymentStatus(PaymentFailed), "Pembayaran Gagal", SeverityDanger},
		{"payment refunded", DescribePaymentStatus(PaymentRefunded), "Dana Dikembalikan", SeverityNeutral},
		{"payment unknown falls back", DescribePaymentStatus("Lunas"), "Menunggu Pembayaran", SeverityInfo},
		{"order shipped", DescribeOrderStatus(StatusShipped), "Dalam Pengiriman", SeverityInfo},
		{"order completed", DescribeOrderStatus(StatusCompleted), "Pesanan Selesai", SeveritySuccess},
		{"order cancelled", DescribeOrderStatus(StatusCancelled), "Pesanan Dibatalkan", SeverityDanger},
		{"order unknown falls back", DescribeOrderStatus("Hilang"), "Pesanan Diterima", SeverityInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.view.Label)
			assert.Equal(t, tt.severity, tt.view.Severity)
			assert.NotEmpty(t, tt.view.Description)
		})
	}
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, PaymentPaid, ParsePaymentStatus("Dibayar"))
	assert.Equal(t, PaymentPending, ParsePaymentStatus("dibayar"))
	assert.Equal(t, StatusShipped, ParseOrderStatus("Dikirim"))
	assert.Equal(t, StatusPending, ParseOrderStatus(""))
}

func TestStatusEnumerations(t *testing.T) {
	assert.Len(t, PaymentStatuses(), 4)
	assert.Equal(t, []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled}, OrderStatuses())
	for _, s := range PaymentStatuses() {
		assert.True(t, IsValidPaymentStatus(string(s)))
	}
	for _, s := range OrderStatuses() {
		assert.True(t, IsValidOrderStatus(string(s)))
	}
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, MethodQRIS.RequiresProof())
	assert.True(t, MethodTransfer.RequiresProof())
	assert.False(t, MethodCOD.RequiresProof())

	assert.Equal(t, "Transfer Bank", MethodTransfer.Label())
	assert.Equal(t, "paypal", PaymentMethod("paypal").Label())
	assert.False(t, PaymentMethod("paypal").IsValid())
}
