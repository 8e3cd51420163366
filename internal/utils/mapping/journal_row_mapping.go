package mapping

import (
	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	"github.com/finbooks/fiscal_ledger_app/internal/models"
)

// ToModelJournalRow converts a domain JournalRow to a model JournalRow.
func ToModelJournalRow(d domain.JournalRow) models.JournalRow {
	return models.JournalRow{
		UUID:          d.UUID,
		RecordUUID:    d.RecordUUID,
		ProjectID:     d.ProjectID,
		FiscalYearID:  d.FiscalYearID,
		PeriodID:      d.PeriodID,
		TransDate:     d.TransDate,
		AccountID:     d.AccountID,
		Debit:         d.Debit,
		Credit:        d.Credit,
		DebitEquiv:    d.DebitEquiv,
		CreditEquiv:   d.CreditEquiv,
		CurrencyID:    d.CurrencyID,
		EntityUUID:    d.EntityUUID,
		ReferenceUUID: d.ReferenceUUID,
		Comment:       d.Comment,
		UserID:        d.UserID,
		Posted:        d.Posted,
	}
}

// ToDomainJournalRow converts a model JournalRow to a domain JournalRow.
func ToDomainJournalRow(m models.JournalRow) domain.JournalRow {
	return domain.JournalRow{
		UUID:          m.UUID,
		RecordUUID:    m.RecordUUID,
		ProjectID:     m.ProjectID,
		FiscalYearID:  m.FiscalYearID,
		PeriodID:      m.PeriodID,
		TransDate:     m.TransDate,
		AccountID:     m.AccountID,
		Debit:         m.Debit,
		Credit:        m.Credit,
		DebitEquiv:    m.DebitEquiv,
		CreditEquiv:   m.CreditEquiv,
		CurrencyID:    m.CurrencyID,
		EntityUUID:    m.EntityUUID,
		ReferenceUUID: m.ReferenceUUID,
		Comment:       m.Comment,
		UserID:        m.UserID,
		Posted:        m.Posted,
	}
}

// ToDomainJournalRowSlice converts a slice of model rows to domain rows.
func ToDomainJournalRowSlice(ms []models.JournalRow) []domain.JournalRow {
	rows := make([]domain.JournalRow, len(ms))
	for i, m := range ms {
		rows[i] = ToDomainJournalRow(m)
	}
	return rows
}
