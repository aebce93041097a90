package order

import (
	"crypto/rand"
	"regexp"
)

const (
	OrderIDPrefix   = "ORD"
	orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderIDLength   = 6
)

var orderIDPattern = regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`)

// IDGenerator memungkinkan service diuji dengan ID yang deterministik.
type IDGenerator func() string

// GenerateOrderID menghasilkan kode pesanan seperti ORD-7GQ2KX.
// Keunikan tidak dicek di sini; backend yang menolak duplikat.
func GenerateOrderID() string {
	// 252 = 36*7, byte di atasnya dibuang agar distribusi tetap rata
	const limit = byte(len(orderIDAlphabet) * (256 / len(orderIDAlphabet)))

	out := make([]byte, 0, orderIDLength)
	buf := make([]byte, orderIDLength*2)
	for len(out) < orderIDLength {
		if _, err := rand.Read(buf); err != nil {
			panic(err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, orderIDAlphabet[int(b)%len(orderIDAlphabet)])
			if len(out) == orderIDLength {
				break
			}
		}
	}
	return OrderIDPrefix + "-" + string(out)
}

func IsValidOrderID(s string) bool {
	return orderIDPattern.MatchString(s)
}
