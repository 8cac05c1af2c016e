// Package currency formats stored VND amounts for display. Conversion
// to USD happens at a fixed static rate and only ever at display time;
// stored amounts are never mutated.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/nmtri/soquy/internal/model"
)

// USDToVNDRate is the fixed display conversion rate: 1 USD = 24,000 VND.
const USDToVNDRate = 24000.0

var (
	viPrinter = message.NewPrinter(language.Vietnamese)
	enPrinter = message.NewPrinter(language.AmericanEnglish)
)

// Convert returns the display value of a stored VND amount in the
// target currency.
func Convert(amountVND int64, code string) float64 {
	if code == model.CurrencyUSD {
		return float64(amountVND) / USDToVNDRate
	}
	return float64(amountVND)
}

// Format renders a stored VND amount with the symbol of the target
// currency, using that currency's locale grouping.
func Format(amountVND int64, code string) string {
	if code == model.CurrencyUSD {
		return enPrinter.Sprintf("$%v", number.Decimal(
			Convert(amountVND, code),
			number.MinFractionDigits(2),
			number.MaxFractionDigits(2),
		))
	}
	return viPrinter.Sprintf("%v ₫", number.Decimal(amountVND))
}

// FormatPlain renders the amount without a currency symbol.
func FormatPlain(amountVND int64, code string) string {
	if code == model.CurrencyUSD {
		return enPrinter.Sprintf("%v", number.Decimal(
			Convert(amountVND, code),
			number.MinFractionDigits(2),
			number.MaxFractionDigits(2),
		))
	}
	return viPrinter.Sprintf("%v", number.Decimal(amountVND))
}

// Symbol returns the display symbol for a currency code.
func Symbol(code string) string {
	if code == model.CurrencyUSD {
		return "$"
	}
	return "₫"
}
