package order

import (
	"fmt"
)

// ProgressStepCount adalah jumlah langkah pada tracker pengiriman.
const ProgressStepCount = 4

// progression adalah urutan kanonik status pesanan. Dibatalkan sengaja tidak ada di sini.
var progression = [ProgressStepCount]OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusCompleted}

// position mengembalikan indeks (0-based) status di progression, atau -1.
func position(s OrderStatus) int {
	for i, p := range progression {
		if p == s {
			return i
		}
	}
	return -1
}

// ProgressSteps menentukan langkah mana yang sudah tercapai.
// Dibatalkan hanya mencapai langkah 1, status asing tidak mencapai langkah apa pun.
func ProgressSteps(s OrderStatus) [ProgressStepCount]bool {
	var steps [ProgressStepCount]bool

	pos := position(s)
	if s == StatusCancelled {
		pos = 0
	}
	for i := 0; i <= pos; i++ {
		steps[i] = true
	}
	return steps
}

// ProgressStep adalah satu langkah tracker yang siap dirender.
type ProgressStep struct {
	Step    int         `json:"step"`
	Status  OrderStatus `json:"status"`
	Label   string      `json:"label"`
	Reached bool        `json:"reached"`
}

func ProgressTracker(s OrderStatus) []ProgressStep {
	reached := ProgressSteps(s)
	out := make([]ProgressStep, 0, ProgressStepCount)
	for i, st := range progression {
		out = append(out, ProgressStep{
			Step:    i + 1,
			Status:  st,
			Label:   DescribeOrderStatus(st).Label,
			Reached: reached[i],
		})
	}
	return out
}

// IsTerminal: Selesai dan Dibatalkan tidak punya kelanjutan.
func IsTerminal(s OrderStatus) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// StatusPair adalah pasangan dua sumbu status yang disimpan bersama di satu order.
type StatusPair struct {
	Payment PaymentStatus `json:"payment_status"`
	Order   OrderStatus   `json:"order_status"`
}

// TransitionError dikembalikan saat permintaan perubahan status ditolak.
type TransitionError struct {
	Reason string
}

func (e *TransitionError) Error() string {
	return "perubahan status ditolak: " + e.Reason
}

// TransitionPolicy memutuskan apakah perubahan status dari admin boleh dikirim ke backend.
type TransitionPolicy interface {
	Validate(current, requested StatusPair) error
}

// PermissivePolicy membolehkan admin memilih nilai apa pun dari enumerasi,
// tanpa memandang nilai sekarang. Hanya nilai di luar enumerasi yang ditolak.
type PermissivePolicy struct{}

func (PermissivePolicy) Validate(_, requested StatusPair) error {
	return validateMembers(requested)
}

// ForwardOnlyPolicy adalah alternatif yang lebih ketat: status pesanan tidak boleh mundur
// di progression dan tidak boleh keluar dari status terminal.
type ForwardOnlyPolicy struct{}

func (ForwardOnlyPolicy) Validate(current, requested StatusPair) error {
	if err := validateMembers(requested); err != nil {
		return err
	}
	if current.Order == requested.Order {
		return nil
	}
	if IsTerminal(current.Order) {
		return &TransitionError{Reason: fmt.Sprintf("status %s sudah final", current.Order)}
	}
	if requested.Order == StatusCancelled {
		return nil
	}
	if position(requested.Order) < position(current.Order) {
		return &TransitionError{Reason: fmt.Sprintf("status tidak boleh mundur dari %s ke %s", current.Order, requested.Order)}
	}
	return nil
}

func validateMembers(p StatusPair) error {
	if !IsValidPaymentStatus(string(p.Payment)) {
		return &TransitionError{Reason: fmt.Sprintf("status pembayaran %q tidak dikenal", p.Payment)}
	}
	if !IsValidOrderStatus(string(p.Order)) {
		return &TransitionError{Reason: fmt.Sprintf("status pesanan %q tidak dikenal", p.Order)}
	}
	return nil
}

// PolicyByName memetakan nilai konfigurasi ke policy. Nama kosong berarti permissive.
func PolicyByName(name string) (TransitionPolicy, error) {
	switch name {
	case "", "permissive":
		return PermissivePolicy{}, nil
	case "forward-only":
		return ForwardOnlyPolicy{}, nil
	default:
		return nil, fmt.Errorf("transition policy %q tidak dikenal", name)
	}
}

// ValidateTransition adalah satu-satunya pintu validasi perubahan status dari admin.
// Policy nil berarti permissive.
func ValidateTransition(policy TransitionPolicy, current, requested StatusPair) error {
	if policy == nil {
		policy = PermissivePolicy{}
	}
	return policy.Validate(current, requested)
}
