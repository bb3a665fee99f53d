package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repository implementations onto one
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(pool),
		CategoryRepo:    newPgxCategoryRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
		RateRepo:        newPgxRateRepository(pool),
		ReportingRepo:   newPgxReportingRepository(pool),
	}
}
