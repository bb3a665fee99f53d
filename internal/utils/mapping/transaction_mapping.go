package mapping

import (
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/kakeibo-app/kakeibo-backend/internal/models"
)

// ToDomainTransaction converts a model transaction row to its domain form.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Currency:      domain.Currency(m.CurrencyCode),
		CategoryID:    m.CategoryID,
		Description:   m.Description,
		Date:          m.Date,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransaction converts a domain transaction to its model form.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		CurrencyCode:  string(d.Currency),
		CategoryID:    d.CategoryID,
		Description:   d.Description,
		Date:          d.Date,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}
