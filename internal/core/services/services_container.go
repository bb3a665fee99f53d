package services

import (
	"github.com/kakeibo-app/kakeibo-backend/internal/core/ports/providers"
	portsrepo "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/repositories"
	portssvc "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/metrics"
	"github.com/kakeibo-app/kakeibo-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, rateProvider providers.RateProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo)
	container.Rates = NewRateService(repos.RateRepo, rateProvider, m)
	container.Reporting = NewReportingService(repos.ReportingRepo, container.Rates)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
