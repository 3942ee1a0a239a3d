package service

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"bluesoft-bank/internal/domain"
	"bluesoft-bank/internal/errors"
	"bluesoft-bank/internal/repository"
)

// outOfCityThreshold is the minimum monthly withdrawal total, in currency
// units, for a holder to appear on the out-of-city report.
var outOfCityThreshold = decimal.NewFromInt(1_000_000)

type ReportService struct {
	store  *repository.Store
	logger *slog.Logger
}

func NewReportService(store *repository.Store, logger *slog.Logger) *ReportService {
	return &ReportService{
		store:  store,
		logger: logger,
	}
}

// MonthlyTransactions lists holders by number of movements in the given
// month, busiest first. Holders whose record cannot be found are skipped.
func (s *ReportService) MonthlyTransactions(month, year int) ([]domain.TransactionReport, error) {
	counts, err := s.store.Report().MonthlyTransactionCounts(month, year)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.TransactionReport, 0, len(counts))
	for _, hc := range counts {
		holder, err := s.store.Holder().GetHolder(hc.HolderID)
		if err != nil {
			if isHolderNotFound(err) {
				s.logger.Warn("skipping report row, holder missing", "holder_id", hc.HolderID)
				continue
			}
			return nil, err
		}

		reports = append(reports, domain.TransactionReport{
			Name:             holder.FullName(),
			TransactionCount: hc.Count,
		})
	}

	return reports, nil
}

// OutOfCityWithdrawals lists holders whose out-of-city withdrawals in the
// given month exceed the threshold. See the repository query for the filter
// semantics.
func (s *ReportService) OutOfCityWithdrawals(month, year int) ([]domain.WithdrawalReport, error) {
	totals, err := s.store.Report().OutOfCityWithdrawalTotals(month, year, outOfCityThreshold)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.WithdrawalReport, 0, len(totals))
	for _, ht := range totals {
		holder, err := s.store.Holder().GetHolder(ht.HolderID)
		if err != nil {
			if isHolderNotFound(err) {
				s.logger.Warn("skipping report row, holder missing", "holder_id", ht.HolderID)
				continue
			}
			return nil, err
		}

		reports = append(reports, domain.WithdrawalReport{
			Name:        holder.FullName(),
			TotalAmount: ht.Total,
		})
	}

	return reports, nil
}

func isHolderNotFound(err error) bool {
	appErr, ok := err.(*errors.AppError)
	return ok && appErr.Code == errors.HolderNotFound
}
