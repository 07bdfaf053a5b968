package domain

// Currency is an ISO 4217 code as sent by the flight search service.
// Codes are case-sensitive.
type Currency string

// Currencies with a dedicated display format.
const (
	CurrencyUSD Currency = "USD"
	CurrencyBRL Currency = "BRL"
	CurrencyEUR Currency = "EUR"
)

// IsKnown reports whether the currency has a dedicated display format.
// Unknown currencies are displayed like USD.
func (c Currency) IsKnown() bool {
	switch c {
	case CurrencyUSD, CurrencyBRL, CurrencyEUR:
		return true
	default:
		return false
	}
}
