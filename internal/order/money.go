package order

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah memformat nominal utuh, contoh 100000 -> "Rp 100.000".
func FormatRupiah(amount int64) string {
	if amount < 0 {
		return "-Rp " + idPrinter.Sprintf("%d", -amount)
	}
	return "Rp " + idPrinter.Sprintf("%d", amount)
}
