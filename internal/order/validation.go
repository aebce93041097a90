package order

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ValidationError adalah kesalahan input yang dilaporkan sebelum ada panggilan ke backend.
// Message ditampilkan apa adanya ke pengguna.
type ValidationError struct {
	Field   string
	Message string
	// kind diisi jika pesannya dibangun dinamis, supaya errors.Is tetap cocok dengan sentinel.
	kind error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.kind
}

var (
	ErrNameRequired          = &ValidationError{Field: "name", Message: "Nama lengkap harus diisi"}
	ErrPhoneRequired         = &ValidationError{Field: "phone", Message: "Nomor WhatsApp harus diisi"}
	ErrPhoneInvalid          = &ValidationError{Field: "phone", Message: "Nomor WhatsApp tidak valid"}
	ErrPaymentMethodRequired = &ValidationError{Field: "payment_method", Message: "Pilih metode pembayaran"}
	ErrPaymentMethodInvalid  = &ValidationError{Field: "payment_method", Message: "Metode pembayaran tidak dikenal"}
	ErrPaymentProofRequired  = &ValidationError{Field: "payment_proof", Message: "Upload bukti pembayaran"}
	ErrProofTypeUnsupported  = &ValidationError{Field: "payment_proof", Message: "Format file tidak didukung. Gunakan JPG, PNG, GIF, atau WebP."}
	ErrProofTooLarge         = &ValidationError{Field: "payment_proof", Message: "Ukuran file terlalu besar. Maksimal 5MB."}
	ErrQuantityInvalid       = &ValidationError{Field: "qty", Message: "Jumlah pesanan tidak valid"}
	ErrOutOfStock            = &ValidationError{Field: "qty", Message: "Produk tidak tersedia"}
	ErrOrderIDRequired       = &ValidationError{Field: "id", Message: "Masukkan Order ID"}
)

var phonePattern = regexp.MustCompile(`^(?:\+62|62|0)[0-9]{9,13}$`)

// ValidatePhone menerima format Indonesia (+62 / 62 / 0). Spasi dan tanda hubung diabaikan.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return phonePattern.MatchString(cleaned)
}

// PaymentProof adalah gambar bukti pembayaran yang diunggah pelanggan.
type PaymentProof struct {
	Filename string
	Data     []byte
}

// ContentType ditentukan dari isi file, bukan dari nama atau header upload.
func (p *PaymentProof) ContentType() string {
	return mimetype.Detect(p.Data).String()
}

// DataURL adalah encoding yang dipakai backend untuk menyimpan bukti pembayaran.
func (p *PaymentProof) DataURL() string {
	return "data:" + p.ContentType() + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

type ProofRules struct {
	MaxBytes     int64
	AllowedTypes []string
}

const DefaultMaxProofBytes = 5 * 1024 * 1024

func DefaultProofRules() ProofRules {
	return ProofRules{
		MaxBytes:     DefaultMaxProofBytes,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	}
}

// ValidatePaymentProof: cek tipe dulu, baru ukuran.
func ValidatePaymentProof(p *PaymentProof, rules ProofRules) error {
	if p == nil || len(p.Data) == 0 {
		return ErrPaymentProofRequired
	}

	detected := mimetype.Detect(p.Data)
	allowed := false
	for _, t := range rules.AllowedTypes {
		if detected.Is(t) {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrProofTypeUnsupported
	}

	if rules.MaxBytes > 0 && int64(len(p.Data)) > rules.MaxBytes {
		return proofTooLarge(rules.MaxBytes)
	}
	return nil
}

func proofTooLarge(limit int64) error {
	return &ValidationError{
		Field:   ErrProofTooLarge.Field,
		Message: fmt.Sprintf("Ukuran file terlalu besar. Maksimal %s.", formatSize(limit)),
		kind:    ErrProofTooLarge,
	}
}

// formatSize: 5242880 -> "5MB", 1536 -> "2KB" (dibulatkan ke atas).
func formatSize(n int64) string {
	const kb, mb = 1024, 1024 * 1024
	switch {
	case n >= mb && n%mb == 0:
		return fmt.Sprintf("%dMB", n/mb)
	case n >= kb:
		return fmt.Sprintf("%dKB", (n+kb-1)/kb)
	default:
		return fmt.Sprintf("%d byte", n)
	}
}

// SubmissionInput adalah isi form pemesanan dari pelanggan.
type SubmissionInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerNote  string
	PaymentMethod PaymentMethod
	PaymentProof  *PaymentProof
}

// ValidateSubmission menjalankan pengecekan berurutan; kesalahan pertama yang menang.
func ValidateSubmission(in SubmissionInput, rules ProofRules) error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return ErrNameRequired
	}

	phone := strings.TrimSpace(in.CustomerPhone)
	if phone == "" {
		return ErrPhoneRequired
	}
	if !ValidatePhone(phone) {
		return ErrPhoneInvalid
	}

	if in.PaymentMethod == "" {
		return ErrPaymentMethodRequired
	}
	if !in.PaymentMethod.IsValid() {
		return ErrPaymentMethodInvalid
	}

	if in.PaymentMethod.RequiresProof() {
		if err := ValidatePaymentProof(in.PaymentProof, rules); err != nil {
			return err
		}
	}
	return nil
}

// ValidateQuantity: 1 <= qty <= stok saat produk dilihat.
func ValidateQuantity(qty, stock int) error {
	if stock <= 0 {
		return ErrOutOfStock
	}
	if qty < 1 || qty > stock {
		return ErrQuantityInvalid
	}
	return nil
}
