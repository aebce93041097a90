package session

import "time"

const (
	// Draft dari halaman produk ke form order: handoff:draft:{token} -> order.Draft (JSON)
	KeyDraft = "handoff:draft:%s"

	// Snapshot order untuk halaman sukses, dibaca sekali: handoff:confirmation:{token} -> order.Confirmation
	KeyConfirmation = "handoff:confirmation:%s"

	// Sesi admin: admin_session:{token} -> AdminSession (JSON)
	KeyAdminSession = "admin_session:%s"

	// Cache hasil tracking: track:{order_id} -> order.Order (JSON)
	KeyTrackCache = "track:%s"

	// Cache katalog: products:all dan products:{id}
	KeyProductList = "products:all"
	KeyProduct     = "products:%s"
)

var (
	TTLDraft        = 30 * time.Minute
	TTLConfirmation = 30 * time.Minute
	TTLAdminSession = 12 * time.Hour
	TTLTrackCache   = 30 * time.Second
	TTLProductCache = 5 * time.Minute
)
