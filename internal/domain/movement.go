package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind is the type of a bank movement. The values are the wire
// vocabulary used by clients and stored in the database.
type MovementKind string

const (
	KindDeposit    MovementKind = "deposito"
	KindWithdrawal MovementKind = "retiro"
)

func (k MovementKind) Valid() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// Movement is a single deposit or withdrawal against an account.
// Movements are insert-only; they are never updated or deleted.
type Movement struct {
	ID         int64           `json:"id"`
	AccountID  int64           `json:"cuentaId"`
	Kind       MovementKind    `json:"tipo"`
	Amount     decimal.Decimal `json:"valor"`
	OccurredAt time.Time       `json:"fecha"`
}

type MovementRepository interface {
	CreateMovement(m *Movement) error
	ListByAccount(accountID int64) ([]Movement, error)
	ListByAccountMonth(accountID int64, month, year int) ([]Movement, error)
}
