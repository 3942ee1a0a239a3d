package service

import (
	"database/sql"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluesoft-bank/internal/repository"
)

func newTestReportService(t *testing.T) (*ReportService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repository.NewStore(db, logger)

	return NewReportService(store, logger), mock
}

func expectGetHolder(mock sqlmock.Sqlmock, id int64, first, last, city string) {
	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "city"}).
		AddRow(id, first, last, city)
	mock.ExpectQuery(regexp.QuoteMeta("FROM account_holders WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(rows)
}

func TestMonthlyTransactions_OrderedByCount(t *testing.T) {
	svc, mock := newTestReportService(t)

	counts := sqlmock.NewRows([]string{"holder_id", "transaction_count"}).
		AddRow(10, 3).
		AddRow(20, 1)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY c.holder_id")).
		WithArgs(5, 2024).
		WillReturnRows(counts)

	expectGetHolder(mock, 10, "Juan", "Pérez", "Bogotá")
	expectGetHolder(mock, 20, "María", "López", "Cali")

	reports, err := svc.MonthlyTransactions(5, 2024)
	require.NoError(t, err)

	require.Len(t, reports, 2)
	assert.Equal(t, "Juan Pérez", reports[0].Name)
	assert.Equal(t, int64(3), reports[0].TransactionCount)
	assert.Equal(t, "María López", reports[1].Name)
	assert.Equal(t, int64(1), reports[1].TransactionCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonthlyTransactions_SkipsMissingHolder(t *testing.T) {
	svc, mock := newTestReportService(t)

	counts := sqlmock.NewRows([]string{"holder_id", "transaction_count"}).
		AddRow(10, 4).
		AddRow(99, 2)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY c.holder_id")).
		WithArgs(6, 2024).
		WillReturnRows(counts)

	expectGetHolder(mock, 10, "Ana", "García", "Medellín")
	mock.ExpectQuery(regexp.QuoteMeta("FROM account_holders WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	reports, err := svc.MonthlyTransactions(6, 2024)
	require.NoError(t, err)

	require.Len(t, reports, 1)
	assert.Equal(t, "Ana García", reports[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonthlyTransactions_EmptyMonth(t *testing.T) {
	svc, mock := newTestReportService(t)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY c.holder_id")).
		WithArgs(12, 1999).
		WillReturnRows(sqlmock.NewRows([]string{"holder_id", "transaction_count"}))

	reports, err := svc.MonthlyTransactions(12, 1999)
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutOfCityWithdrawals(t *testing.T) {
	svc, mock := newTestReportService(t)

	totals := sqlmock.NewRows([]string{"holder_id", "total_amount"}).
		AddRow(10, "1200000")
	mock.ExpectQuery(regexp.QuoteMeta("HAVING SUM(m.amount) > $3")).
		WithArgs(5, 2024, "1000000").
		WillReturnRows(totals)

	expectGetHolder(mock, 10, "Juan", "Pérez", "Bogotá")

	reports, err := svc.OutOfCityWithdrawals(5, 2024)
	require.NoError(t, err)

	require.Len(t, reports, 1)
	assert.Equal(t, "Juan Pérez", reports[0].Name)
	assert.Equal(t, "1200000", reports[0].TotalAmount.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
