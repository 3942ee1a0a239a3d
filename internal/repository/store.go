package repository

import (
	"log/slog"

	"bluesoft-bank/internal/domain"
)

// Store bundles the repositories behind a single injection point so services
// receive one dependency instead of four.
type Store struct {
	executor SQLExecutor
	logger   *slog.Logger
}

func NewStore(executor SQLExecutor, logger *slog.Logger) *Store {
	return &Store{
		executor: executor,
		logger:   logger,
	}
}

func (s *Store) Account() domain.AccountRepository {
	return NewAccountRepository(s.executor, s.logger)
}

func (s *Store) Movement() domain.MovementRepository {
	return NewMovementRepository(s.executor, s.logger)
}

func (s *Store) Holder() domain.HolderRepository {
	return NewHolderRepository(s.executor, s.logger)
}

func (s *Store) Report() domain.ReportRepository {
	return NewReportRepository(s.executor, s.logger)
}
