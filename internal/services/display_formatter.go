package services

import (
	"fintrack/internal/config"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DisplayFormatter renders amounts as locale-aware currency strings for
// dashboard display. Computation stays on raw decimals; only the
// *Display response fields pass through here.
type DisplayFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewDisplayFormatter creates a formatter for the configured locale and
// currency. Unknown values fall back to en-US dollars.
func NewDisplayFormatter(cfg *config.DisplayConfig) *DisplayFormatter {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		unit = currency.USD
	}

	return &DisplayFormatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

// FormatAmount renders an amount rounded to whole currency units, the
// dashboard's display convention.
func (f *DisplayFormatter) FormatAmount(amount decimal.Decimal) string {
	whole := amount.Round(0).IntPart()
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(whole)))
}
