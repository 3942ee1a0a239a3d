package repository

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"bluesoft-bank/internal/domain"
	"bluesoft-bank/internal/errors"
)

type reportRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewReportRepository(db SQLExecutor, logger *slog.Logger) domain.ReportRepository {
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reportRepository) MonthlyTransactionCounts(month, year int) ([]domain.HolderCount, error) {
	query := `
		SELECT c.holder_id, COUNT(*) AS transaction_count
		FROM movements AS m
		INNER JOIN accounts AS c ON c.id = m.account_id
		WHERE EXTRACT(MONTH FROM m.occurred_at) = $1
		  AND EXTRACT(YEAR FROM m.occurred_at) = $2
		GROUP BY c.holder_id
		ORDER BY transaction_count DESC
	`

	rows, err := r.db.Query(query, month, year)
	if err != nil {
		r.logger.Error("monthly transaction count query failed", "month", month, "year", year, "error", err)
		return nil, errors.NewAppError(errors.StoreError, "Error al generar reporte de transacciones").WithDetails(err.Error())
	}
	defer rows.Close()

	var counts []domain.HolderCount
	for rows.Next() {
		var hc domain.HolderCount
		if err := rows.Scan(&hc.HolderID, &hc.Count); err != nil {
			return nil, errors.NewAppError(errors.StoreError, "Error al generar reporte de transacciones").WithDetails(err.Error())
		}
		counts = append(counts, hc)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.StoreError, "Error al generar reporte de transacciones").WithDetails(err.Error())
	}

	return counts, nil
}

// OutOfCityWithdrawalTotals sums withdrawal amounts per holder for the given
// month, keeping only totals above threshold.
//
// TODO: the city filter compares a holder's city against that same holder's
// row, so the predicate never matches and the report is always empty. The
// intended reference city (branch? movement origin?) is not recorded
// anywhere, so the condition is kept as published until that is settled.
func (r *reportRepository) OutOfCityWithdrawalTotals(month, year int, threshold decimal.Decimal) ([]domain.HolderTotal, error) {
	query := `
		SELECT c.holder_id, SUM(m.amount) AS total_amount
		FROM movements AS m
		INNER JOIN accounts AS c ON c.id = m.account_id
		INNER JOIN account_holders AS p ON p.id = c.holder_id
		WHERE EXTRACT(MONTH FROM m.occurred_at) = $1
		  AND EXTRACT(YEAR FROM m.occurred_at) = $2
		  AND m.kind = 'retiro'
		  AND p.city != (SELECT city FROM account_holders WHERE id = c.holder_id)
		GROUP BY c.holder_id
		HAVING SUM(m.amount) > $3
	`

	rows, err := r.db.Query(query, month, year, threshold.String())
	if err != nil {
		r.logger.Error("out-of-city withdrawal query failed", "month", month, "year", year, "error", err)
		return nil, errors.NewAppError(errors.StoreError, "Error al generar reporte de retiros fuera de ciudad").WithDetails(err.Error())
	}
	defer rows.Close()

	var totals []domain.HolderTotal
	for rows.Next() {
		var ht domain.HolderTotal
		var totalStr string
		if err := rows.Scan(&ht.HolderID, &totalStr); err != nil {
			return nil, errors.NewAppError(errors.StoreError, "Error al generar reporte de retiros fuera de ciudad").WithDetails(err.Error())
		}

		total, err := decimal.NewFromString(totalStr)
		if err != nil {
			return nil, errors.NewAppError(errors.StoreError, "Error al leer el total de retiros").WithDetails(err.Error())
		}
		ht.Total = total
		totals = append(totals, ht)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.StoreError, "Error al generar reporte de retiros fuera de ciudad").WithDetails(err.Error())
	}

	return totals, nil
}
