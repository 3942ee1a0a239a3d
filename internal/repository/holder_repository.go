package repository

import (
	"database/sql"
	"log/slog"

	"bluesoft-bank/internal/domain"
	"bluesoft-bank/internal/errors"
)

type holderRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewHolderRepository(db SQLExecutor, logger *slog.Logger) domain.HolderRepository {
	return &holderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *holderRepository) GetHolder(id int64) (*domain.AccountHolder, error) {
	query := `
		SELECT id, first_name, last_name, city
		FROM account_holders WHERE id = $1
	`

	var holder domain.AccountHolder
	err := r.db.QueryRow(query, id).Scan(
		&holder.ID,
		&holder.FirstName,
		&holder.LastName,
		&holder.City,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("holder not found", "holder_id", id)
			return nil, errors.ErrHolderNotFound
		}
		r.logger.Error("failed to get holder", "holder_id", id, "error", err)
		return nil, errors.NewAppError(errors.StoreError, "Error al consultar el titular").WithDetails(err.Error())
	}

	return &holder, nil
}
