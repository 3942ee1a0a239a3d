package repository

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"bluesoft-bank/internal/domain"
	"bluesoft-bank/internal/errors"
)

type accountRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewAccountRepository(db SQLExecutor, logger *slog.Logger) domain.AccountRepository {
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accountRepository) GetAccount(id int64) (*domain.Account, error) {
	query := `
		SELECT id, holder_id, balance, created_at, updated_at
		FROM accounts WHERE id = $1
	`

	var account domain.Account
	var balanceStr string

	err := r.db.QueryRow(query, id).Scan(
		&account.ID,
		&account.HolderID,
		&balanceStr,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("account not found", "account_id", id)
			return nil, errors.ErrAccountNotFound
		}
		r.logger.Error("failed to get account", "account_id", id, "error", err)
		return nil, errors.NewAppError(errors.StoreError, "Error al consultar la cuenta").WithDetails(err.Error())
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		r.logger.Error("failed to parse balance", "account_id", id, "balance_str", balanceStr, "error", err)
		return nil, errors.NewAppError(errors.StoreError, "Error al leer el saldo").WithDetails(err.Error())
	}

	account.Balance = balance
	return &account, nil
}

func (r *accountRepository) UpdateBalance(id int64, newBalance decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.Exec(query, newBalance.String(), time.Now(), id)
	if err != nil {
		r.logger.Error("failed to update balance", "account_id", id, "error", err)
		return errors.NewAppError(errors.StoreError, "Error al actualizar el saldo").WithDetails(err.Error())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewAppError(errors.StoreError, "Error al actualizar el saldo").WithDetails(err.Error())
	}

	if rowsAffected == 0 {
		r.logger.Warn("no account to update", "account_id", id)
		return errors.ErrAccountNotFound
	}

	r.logger.Info("balance updated", "account_id", id, "new_balance", newBalance)
	return nil
}
