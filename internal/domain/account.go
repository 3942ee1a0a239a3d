package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a bank account. The stored balance is the source of truth;
// it is only ever adjusted incrementally by the account service.
type Account struct {
	ID        int64           `json:"cuentaId"`
	HolderID  int64           `json:"titularId"`
	Balance   decimal.Decimal `json:"saldo"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}

// AccountHolder is the natural person owning one or more accounts.
// Read-only from this service's perspective.
type AccountHolder struct {
	ID        int64
	FirstName string
	LastName  string
	City      string
}

func (h AccountHolder) FullName() string {
	return h.FirstName + " " + h.LastName
}

type AccountRepository interface {
	GetAccount(id int64) (*Account, error)
	UpdateBalance(id int64, newBalance decimal.Decimal) error
}

type HolderRepository interface {
	GetHolder(id int64) (*AccountHolder, error)
}
