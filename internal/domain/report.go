package domain

import "github.com/shopspring/decimal"

// TransactionReport is one row of the monthly transaction-count report.
type TransactionReport struct {
	Name             string
	TransactionCount int64
}

// WithdrawalReport is one row of the out-of-city withdrawal report.
type WithdrawalReport struct {
	Name        string
	TotalAmount decimal.Decimal
}

// HolderCount is an aggregated movement count for a holder, before name
// resolution.
type HolderCount struct {
	HolderID int64
	Count    int64
}

// HolderTotal is an aggregated withdrawal total for a holder, before name
// resolution.
type HolderTotal struct {
	HolderID int64
	Total    decimal.Decimal
}

type ReportRepository interface {
	MonthlyTransactionCounts(month, year int) ([]HolderCount, error)
	OutOfCityWithdrawalTotals(month, year int, threshold decimal.Decimal) ([]HolderTotal, error)
}
