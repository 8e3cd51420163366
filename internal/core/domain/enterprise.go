package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Enterprise is the owning organisation; its currency is the base every
// equivalent amount is expressed in.
type Enterprise struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CurrencyID int64  `json:"currencyID"`
}

// Project groups transactions under an enterprise.
type Project struct {
	ID           int64  `json:"id"`
	EnterpriseID int64  `json:"enterpriseID"`
	Name         string `json:"name"`
}

// ExchangeRate is the historical rate from the enterprise currency to a
// foreign currency, effective on and after DateEffective.
type ExchangeRate struct {
	ID            int64           `json:"id"`
	EnterpriseID  int64           `json:"enterpriseID"`
	CurrencyID    int64           `json:"currencyID"`
	Rate          decimal.Decimal `json:"rate"`
	DateEffective time.Time       `json:"dateEffective"`
}
