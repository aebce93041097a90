package order

import (
	"strings"
)

func NewOrderDetails(o *Order) OrderDetails {
	return OrderDetails{
		OrderID:            o.OrderID,
		Date:               o.CreatedAt,
		CustomerName:       o.CustomerName,
		CustomerPhone:      o.CustomerPhone,
		CustomerNote:       o.CustomerNote,
		ProductID:          o.ProductID,
		ProductName:        o.ProductName,
		Quantity:           o.Quantity,
		TotalPrice:         o.TotalPrice,
		TotalPriceLabel:    FormatRupiah(o.TotalPrice),
		PaymentMethod:      o.PaymentMethod,
		PaymentMethodLabel: o.PaymentMethod.Label(),
		TrackingLink:       o.TrackingLink,
	}
}

func NewConfirmation(o *Order) Confirmation {
	return Confirmation{
		OrderDetails:  NewOrderDetails(o),
		PaymentStatus: DescribePaymentStatus(o.PaymentStatus),
	}
}

// NewTrackingView merender order lewat aturan status dan lifecycle.
// Status asing tetap dirender (fallback ke Pending untuk label, tanpa langkah tercapai).
func NewTrackingView(o *Order) TrackingView {
	return TrackingView{
		Order:         NewOrderDetails(o),
		PaymentStatus: DescribePaymentStatus(o.PaymentStatus),
		OrderStatus:   DescribeOrderStatus(o.OrderStatus),
		Progress:      ProgressTracker(o.OrderStatus),
		Terminal:      IsTerminal(o.OrderStatus),
		PaymentProof:  o.PaymentProof,
	}
}

func NewAdminOrderDetail(o *Order) AdminOrderDetail {
	d := AdminOrderDetail{TrackingView: NewTrackingView(o)}
	for _, s := range PaymentStatuses() {
		d.PaymentStatusOptions = append(d.PaymentStatusOptions, DescribePaymentStatus(s))
	}
	for _, s := range OrderStatuses() {
		d.OrderStatusOptions = append(d.OrderStatusOptions, DescribeOrderStatus(s))
	}
	return d
}

func ComputeStats(orders []Order) OrderStats {
	stats := OrderStats{Total: len(orders)}
	// Nilai asing dihitung sesuai tampilannya (Pending)
	for _, o := range orders {
		if ParsePaymentStatus(string(o.PaymentStatus)) == PaymentPending {
			stats.PendingPayment++
		}
		switch ParseOrderStatus(string(o.OrderStatus)) {
		case StatusProcessing:
			stats.Processing++
		case StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}

// FilterOrders mencari di order_id atau nama pelanggan (case-insensitive) dan status pesanan.
// Status asing ikut filter Pending, sama seperti labelnya.
func FilterOrders(orders []Order, f OrderFilter) []Order {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if term != "" &&
			!strings.Contains(strings.ToLower(o.OrderID), term) &&
			!strings.Contains(strings.ToLower(o.CustomerName), term) {
			continue
		}
		if f.Status != "" && string(ParseOrderStatus(string(o.OrderStatus))) != f.Status {
			continue
		}
		out = append(out, o)
	}
	return out
}

func NewAdminOrderList(all []Order, f OrderFilter) AdminOrderList {
	filtered := FilterOrders(all, f)
	list := AdminOrderList{
		Orders: make([]AdminOrderRow, 0, len(filtered)),
		Stats:  ComputeStats(all),
	}
	for i := range filtered {
		o := &filtered[i]
		list.Orders = append(list.Orders, AdminOrderRow{
			OrderDetails:  NewOrderDetails(o),
			PaymentStatus: DescribePaymentStatus(o.PaymentStatus),
			OrderStatus:   DescribeOrderStatus(o.OrderStatus),
		})
	}
	return list
}
