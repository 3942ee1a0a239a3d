package repository

import (
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluesoft-bank/internal/domain"
	"bluesoft-bank/internal/errors"
)

func newMovementRepo(t *testing.T) (domain.MovementRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMovementRepository(db, logger), mock
}

func TestCreateMovement_NegativeAmount(t *testing.T) {
	repo, mock := newMovementRepo(t)

	err := repo.CreateMovement(&domain.Movement{
		AccountID: 1,
		Kind:      domain.KindDeposit,
		Amount:    decimal.RequireFromString("-5"),
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidAmount, err)
	// The database must not be touched.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMovement_InvalidKind(t *testing.T) {
	repo, mock := newMovementRepo(t)

	err := repo.CreateMovement(&domain.Movement{
		AccountID: 1,
		Kind:      domain.MovementKind("transferencia"),
		Amount:    decimal.RequireFromString("5"),
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidMovementKind, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMovement_Persists(t *testing.T) {
	repo, mock := newMovementRepo(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO movements")).
		WithArgs(int64(1), "retiro", "300").
		WillReturnRows(sqlmock.NewRows([]string{"id", "occurred_at"}).AddRow(5, now))

	m := &domain.Movement{
		AccountID: 1,
		Kind:      domain.KindWithdrawal,
		Amount:    decimal.RequireFromString("300"),
	}
	err := repo.CreateMovement(m)

	require.NoError(t, err)
	assert.Equal(t, int64(5), m.ID)
	assert.Equal(t, now, m.OccurredAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByAccount_StorageOrder(t *testing.T) {
	repo, mock := newMovementRepo(t)

	at := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "account_id", "kind", "amount", "occurred_at"}).
		AddRow(1, 7, "deposito", "100.00", at).
		AddRow(2, 7, "retiro", "40.00", at.Add(time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM movements WHERE account_id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	movements, err := repo.ListByAccount(7)
	require.NoError(t, err)

	require.Len(t, movements, 2)
	assert.Equal(t, int64(1), movements[0].ID)
	assert.Equal(t, domain.KindDeposit, movements[0].Kind)
	assert.Equal(t, "100.00", movements[0].Amount.String())
	assert.Equal(t, int64(2), movements[1].ID)
	assert.Equal(t, domain.KindWithdrawal, movements[1].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}
