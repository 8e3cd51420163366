package domain

import "github.com/shopspring/decimal"

// BalanceSums is a debit/credit pair summed over some row set. A missing
// aggregate contributes zeros, never an error.
type BalanceSums struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// Balance is debit minus credit.
func (b BalanceSums) Balance() decimal.Decimal {
	return b.Debit.Sub(b.Credit)
}

// Add combines two sums component-wise.
func (b BalanceSums) Add(other BalanceSums) BalanceSums {
	return BalanceSums{
		Debit:  b.Debit.Add(other.Debit),
		Credit: b.Credit.Add(other.Credit),
	}
}

// AccountBalance is an account's running balance as of a date: closed prior
// periods plus in-period ledger lines.
type AccountBalance struct {
	AccountID int64           `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}
