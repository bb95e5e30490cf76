package currency

import "github.com/shopspring/decimal"

// Converter derives the settlement-currency amount the provider requires
// from an amount in the merchant's local currency. The derived value is
// never persisted.
type Converter interface {
	ToSettlement(amount decimal.Decimal) decimal.Decimal
	LocalCurrency() string
	SettlementCurrency() string
}

// FixedRate converts with a single configured exchange rate, rounded to
// two decimal places. A rate API belongs behind this same interface.
type FixedRate struct {
	rate       decimal.Decimal
	local      string
	settlement string
}

func NewFixedRate(rate decimal.Decimal, local, settlement string) *FixedRate {
	return &FixedRate{
		rate:       rate,
		local:      local,
		settlement: settlement,
	}
}

func (c *FixedRate) ToSettlement(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.rate).Round(2)
}

func (c *FixedRate) LocalCurrency() string {
	return c.local
}

func (c *FixedRate) SettlementCurrency() string {
	return c.settlement
}
