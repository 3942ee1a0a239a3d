package service

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"bluesoft-bank/internal/domain"
	"bluesoft-bank/internal/errors"
	"bluesoft-bank/internal/repository"
)

type AccountService struct {
	store  *repository.Store
	logger *slog.Logger
}

func NewAccountService(store *repository.Store, logger *slog.Logger) *AccountService {
	return &AccountService{
		store:  store,
		logger: logger,
	}
}

func (s *AccountService) GetBalance(accountID int64) (decimal.Decimal, error) {
	account, err := s.store.Account().GetAccount(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// GetMovements returns every movement of the account in storage order.
func (s *AccountService) GetMovements(accountID int64) ([]domain.Movement, error) {
	if _, err := s.store.Account().GetAccount(accountID); err != nil {
		return nil, err
	}
	return s.store.Movement().ListByAccount(accountID)
}

// ExecuteTransaction applies a deposit or withdrawal to the account: read
// the balance, reject overdrawing withdrawals, persist the new balance, then
// record the movement.
//
// The balance update and the movement insert are two separate writes with no
// transaction boundary between them; concurrent calls against the same
// account can lose updates. That matches the service's published behavior.
func (s *AccountService) ExecuteTransaction(accountID int64, kind domain.MovementKind, amount decimal.Decimal) error {
	s.logger.Info("processing transaction", "account_id", accountID, "kind", kind, "amount", amount)

	account, err := s.store.Account().GetAccount(accountID)
	if err != nil {
		return err
	}

	if kind == domain.KindWithdrawal && amount.GreaterThan(account.Balance) {
		s.logger.Warn("insufficient funds",
			"account_id", accountID,
			"balance", account.Balance,
			"amount", amount)
		return errors.ErrInsufficientFunds
	}

	var newBalance decimal.Decimal
	if kind == domain.KindDeposit {
		newBalance = account.Balance.Add(amount)
	} else {
		newBalance = account.Balance.Sub(amount)
	}

	if err := s.store.Account().UpdateBalance(accountID, newBalance); err != nil {
		return err
	}

	movement := &domain.Movement{
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
	}
	if err := s.store.Movement().CreateMovement(movement); err != nil {
		return err
	}

	s.logger.Info("transaction completed", "account_id", accountID, "new_balance", newBalance)
	return nil
}

// MonthlyStatement renders the account's statement for the given month.
func (s *AccountService) MonthlyStatement(accountID int64, month, year int) (string, error) {
	if _, err := s.store.Account().GetAccount(accountID); err != nil {
		return "", err
	}

	movements, err := s.store.Movement().ListByAccountMonth(accountID, month, year)
	if err != nil {
		return "", err
	}

	return RenderStatement(movements), nil
}
