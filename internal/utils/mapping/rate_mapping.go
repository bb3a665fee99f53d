package mapping

import (
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/kakeibo-app/kakeibo-backend/internal/models"
)

// ToDomainCachedRate converts a model exchange-rate row to its domain form.
func ToDomainCachedRate(m models.ExchangeRate) domain.CachedRate {
	return domain.CachedRate{
		BaseCurrency:   domain.Currency(m.BaseCurrency),
		TargetCurrency: domain.Currency(m.TargetCurrency),
		Rate:           m.Rate,
		Date:           m.Date,
		CreatedAt:      m.CreatedAt,
	}
}

// ToModelExchangeRate converts a domain cached rate to its model form.
func ToModelExchangeRate(d domain.CachedRate) models.ExchangeRate {
	return models.ExchangeRate{
		BaseCurrency:   string(d.BaseCurrency),
		TargetCurrency: string(d.TargetCurrency),
		Rate:           d.Rate,
		Date:           d.Date,
		CreatedAt:      d.CreatedAt,
	}
}
