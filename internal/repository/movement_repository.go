package repository

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"bluesoft-bank/internal/domain"
	"bluesoft-bank/internal/errors"
)

type movementRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewMovementRepository(db SQLExecutor, logger *slog.Logger) domain.MovementRepository {
	return &movementRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMovement validates the movement before touching the database: the
// amount must not be negative and the kind must be one of the two literals.
func (r *movementRepository) CreateMovement(m *domain.Movement) error {
	if m.Amount.IsNegative() {
		return errors.ErrInvalidAmount
	}
	if !m.Kind.Valid() {
		return errors.ErrInvalidMovementKind
	}

	query := `
		INSERT INTO movements (account_id, kind, amount, occurred_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, occurred_at
	`

	err := r.db.QueryRow(query, m.AccountID, string(m.Kind), m.Amount.String()).
		Scan(&m.ID, &m.OccurredAt)
	if err != nil {
		r.logger.Error("failed to create movement",
			"account_id", m.AccountID,
			"kind", m.Kind,
			"amount", m.Amount,
			"error", err)
		return errors.NewAppError(errors.StoreError, "Error al registrar el movimiento").WithDetails(err.Error())
	}

	r.logger.Info("movement recorded", "movement_id", m.ID, "account_id", m.AccountID, "kind", m.Kind)
	return nil
}

func (r *movementRepository) ListByAccount(accountID int64) ([]domain.Movement, error) {
	query := `
		SELECT id, account_id, kind, amount, occurred_at
		FROM movements WHERE account_id = $1
		ORDER BY id
	`

	return r.queryMovements(query, accountID)
}

func (r *movementRepository) ListByAccountMonth(accountID int64, month, year int) ([]domain.Movement, error) {
	query := `
		SELECT id, account_id, kind, amount, occurred_at
		FROM movements
		WHERE account_id = $1
		  AND EXTRACT(MONTH FROM occurred_at) = $2
		  AND EXTRACT(YEAR FROM occurred_at) = $3
		ORDER BY id
	`

	return r.queryMovements(query, accountID, month, year)
}

func (r *movementRepository) queryMovements(query string, args ...interface{}) ([]domain.Movement, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("failed to list movements", "error", err)
		return nil, errors.NewAppError(errors.StoreError, "Error al consultar movimientos").WithDetails(err.Error())
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		var m domain.Movement
		var kind string
		var amountStr string

		if err := rows.Scan(&m.ID, &m.AccountID, &kind, &amountStr, &m.OccurredAt); err != nil {
			r.logger.Error("failed to scan movement", "error", err)
			return nil, errors.NewAppError(errors.StoreError, "Error al consultar movimientos").WithDetails(err.Error())
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, errors.NewAppError(errors.StoreError, "Error al leer el valor del movimiento").WithDetails(err.Error())
		}

		m.Kind = domain.MovementKind(kind)
		m.Amount = amount
		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.StoreError, "Error al consultar movimientos").WithDetails(err.Error())
	}

	return movements, nil
}
