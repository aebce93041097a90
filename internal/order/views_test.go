package order

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "Rp 500", FormatRupiah(500))
	assert.Equal(t, "Rp 100.000", FormatRupiah(100000))
	assert.Equal(t, "Rp 1.250.000", FormatRupiah(1250000))
	assert.Equal(t, "-Rp 15.000", FormatRupiah(-15000))
}

func TestGenerateOrderID(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`)
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := GenerateOrderID()
		require.Regexp(t, pattern, id)
		seen[id] = struct{}{}
	}
	// 36^6 kombinasi, tabrakan di 10rb sampel seharusnya sangat jarang
	assert.GreaterOrEqual(t, len(seen), 9990)

	assert.False(t, IsValidOrderID("ORD-abc123"))
	assert.False(t, IsValidOrderID("ORD-ABC12"))
	assert.False(t, IsValidOrderID("INV-ABC123"))
}

func TestTrackingLink_RoundTrip(t *testing.T) {
	for _, origin := range []string{"https://toko.example.com", "https://toko.example.com/", "http://localhost:8080"} {
		id := GenerateOrderID()
		link := TrackingLink(origin, id)
		got, err := OrderIDFromTrackingLink(link)
		require.NoError(t, err, link)
		assert.Equal(t, id, got)
	}

	assert.Equal(t, "https://toko.example.com/track?id=ORD-ABC123", TrackingLink("https://toko.example.com/", "ORD-ABC123"))

	for _, bad := range []string{"https://toko.example.com/track", "https://toko.example.com/orders?id=ORD-ABC123", "://"} {
		_, err := OrderIDFromTrackingLink(bad)
		assert.ErrorIs(t, err, ErrInvalidTrackingLink, bad)
	}
}

func sampleOrders() []Order {
	return []Order{
		{OrderID: "ORD-AAAAA1", CustomerName: "Budi", PaymentStatus: PaymentPending, OrderStatus: StatusPending},
		{OrderID: "ORD-AAAAA2", CustomerName: "Sari Dewi", PaymentStatus: PaymentPaid, OrderStatus: StatusProcessing},
		{OrderID: "ORD-AAAAA3", CustomerName: "Andi", PaymentStatus: PaymentPaid, OrderStatus: StatusCompleted},
		{OrderID: "ORD-BBBBB4", CustomerName: "Rina", PaymentStatus: PaymentPending, OrderStatus: StatusProcessing},
		{OrderID: "ORD-BBBBB5", CustomerName: "Dewi", PaymentStatus: PaymentRefunded, OrderStatus: StatusCancelled},
	}
}

func TestComputeStats(t *testing.T) {
	assert.Equal(t, OrderStats{Total: 5, PendingPayment: 2, Processing: 2, Completed: 1}, ComputeStats(sampleOrders()))
	assert.Equal(t, OrderStats{}, ComputeStats(nil))
}

func TestFilterOrders(t *testing.T) {
	ids := func(orders []Order) []string {
		out := []string{}
		for _, o := range orders {
			out = append(out, o.OrderID)
		}
		return out
	}

	assert.Len(t, FilterOrders(sampleOrders(), OrderFilter{}), 5)
	assert.Equal(t, []string{"ORD-AAAAA2", "ORD-BBBBB5"}, ids(FilterOrders(sampleOrders(), OrderFilter{Search: "DEWI"})))
	assert.Equal(t, []string{"ORD-BBBBB4", "ORD-BBBBB5"}, ids(FilterOrders(sampleOrders(), OrderFilter{Search: "bbbbb"})))
	assert.Equal(t, []string{"ORD-AAAAA2", "ORD-BBBBB4"}, ids(FilterOrders(sampleOrders(), OrderFilter{Status: "Diproses"})))
	assert.Equal(t, []string{"ORD-BBBBB4"}, ids(FilterOrders(sampleOrders(), OrderFilter{Search: "rina", Status: "Diproses"})))
}

func TestStatsAndFilter_UnknownStatusesCountAsPending(t *testing.T) {
	orders := []Order{
		{OrderID: "ORD-CCCCC1", PaymentStatus: "Lunas", OrderStatus: "Hilang"},
		{OrderID: "ORD-CCCCC2", PaymentStatus: PaymentPaid, OrderStatus: StatusShipped},
	}

	assert.Equal(t, OrderStats{Total: 2, PendingPayment: 1}, ComputeStats(orders))

	filtered := FilterOrders(orders, OrderFilter{Status: string(StatusPending)})
	require.Len(t, filtered, 1)
	assert.Equal(t, "ORD-CCCCC1", filtered[0].OrderID)
}

func TestNewAdminOrderList_StatsIgnoreFilter(t *testing.T) {
	list := NewAdminOrderList(sampleOrders(), OrderFilter{Status: "Selesai"})

	require.Len(t, list.Orders, 1)
	assert.Equal(t, SeveritySuccess, list.Orders[0].OrderStatus.Severity)
	assert.Equal(t, 5, list.Stats.Total)
}

func TestNewTrackingView(t *testing.T) {
	o := &Order{OrderID: "ORD-AAAAA1", TotalPrice: 100000, PaymentMethod: MethodCOD, PaymentStatus: PaymentPaid, OrderStatus: StatusCancelled}

	v := NewTrackingView(o)

	assert.Equal(t, "Rp 100.000", v.Order.TotalPriceLabel)
	assert.Equal(t, "COD", v.Order.PaymentMethodLabel)
	assert.Equal(t, SeverityDanger, v.OrderStatus.Severity)
	assert.True(t, v.Terminal)
	assert.True(t, v.Progress[0].Reached)
	assert.False(t, v.Progress[1].Reached)

	detail := NewAdminOrderDetail(o)
	assert.Len(t, detail.PaymentStatusOptions, 4)
	assert.Len(t, detail.OrderStatusOptions, 5)
}
