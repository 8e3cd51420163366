package dto

import "github.com/finbooks/fiscal_ledger_app/internal/core/domain"

// OpeningBalanceResponse reports the balance figures with exactly four
// decimal places, as fixed-point strings.
type OpeningBalanceResponse struct {
	AccountID int64  `json:"accountID"`
	Balance   string `json:"balance"`
	Debit     string `json:"debit"`
	Credit    string `json:"credit"`
}

// ToOpeningBalanceResponse converts a domain.AccountBalance to its DTO.
func ToOpeningBalanceResponse(b *domain.AccountBalance) OpeningBalanceResponse {
	return OpeningBalanceResponse{
		AccountID: b.AccountID,
		Balance:   b.Balance.StringFixed(4),
		Debit:     b.Debit.StringFixed(4),
		Credit:    b.Credit.StringFixed(4),
	}
}
