package dto

import (
	"fmt"
	"time"

	"github.com/finbooks/fiscal_ledger_app/internal/apperrors"
	"github.com/finbooks/fiscal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EditRowRequest carries one added or changed row of a transaction edit.
// Only the fields the caller actually sends are acted upon; display-only
// fields like accountLabel are accepted and discarded so that clients can
// echo back rows exactly as they received them.
type EditRowRequest struct {
	UUID          *string          `json:"uuid"`
	AccountNumber *string          `json:"accountNumber"`
	AccountLabel  *string          `json:"accountLabel"`
	EntityCode    *string          `json:"entityCode"`
	ReferenceCode *string          `json:"referenceCode"`
	DebitEquiv    *decimal.Decimal `json:"debitEquiv"`
	CreditEquiv   *decimal.Decimal `json:"creditEquiv"`
	TransDate     *string          `json:"transDate"`
	Comment       *string          `json:"comment"`
}

// RemovedRowRequest identifies a row to delete from the transaction.
type RemovedRowRequest struct {
	UUID string `json:"uuid" binding:"required"`
}

// TransactionEditRequest is the full payload of an edit call: rows to add,
// rows to change keyed by their UUID, and rows to remove.
type TransactionEditRequest struct {
	Added   []EditRowRequest          `json:"added"`
	Changed map[string]EditRowRequest `json:"changed"`
	Removed []RemovedRowRequest       `json:"removed"`
}

// parseTransDate accepts a bare date or a full RFC3339 timestamp.
func parseTransDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid transDate %q: %w", raw, apperrors.ErrValidation)
	}
	return t, nil
}

func toRowPatch(req EditRowRequest) (domain.RowPatch, error) {
	patch := domain.RowPatch{
		AccountNumber: req.AccountNumber,
		EntityCode:    req.EntityCode,
		ReferenceCode: req.ReferenceCode,
		DebitEquiv:    req.DebitEquiv,
		CreditEquiv:   req.CreditEquiv,
		Comment:       req.Comment,
	}
	if req.TransDate != nil {
		parsed, err := parseTransDate(*req.TransDate)
		if err != nil {
			return domain.RowPatch{}, err
		}
		patch.TransDate = &parsed
	}
	return patch, nil
}

// ToDomainEditRequest converts the wire payload into the domain edit request.
func ToDomainEditRequest(req TransactionEditRequest) (domain.EditRequest, error) {
	out := domain.EditRequest{}

	for _, added := range req.Added {
		patch, err := toRowPatch(added)
		if err != nil {
			return domain.EditRequest{}, err
		}
		row := domain.NewRow{RowPatch: patch}
		if added.UUID != nil {
			row.UUID = *added.UUID
		}
		out.Added = append(out.Added, row)
	}

	if len(req.Changed) > 0 {
		out.Changed = make(map[string]domain.ChangedRow, len(req.Changed))
		for uuid, changed := range req.Changed {
			patch, err := toRowPatch(changed)
			if err != nil {
				return domain.EditRequest{}, err
			}
			out.Changed[uuid] = domain.ChangedRow{RowPatch: patch}
		}
	}

	for _, removed := range req.Removed {
		out.RemovedUUIDs = append(out.RemovedUUIDs, removed.UUID)
	}

	return out, nil
}

// JournalRowResponse defines the data returned for a single ledger row.
type JournalRowResponse struct {
	UUID          string          `json:"uuid"`
	RecordUUID    string          `json:"recordUUID"`
	ProjectID     int64           `json:"projectID"`
	FiscalYearID  int64           `json:"fiscalYearID"`
	PeriodID      int64           `json:"periodID"`
	AccountID     int64           `json:"accountID"`
	CurrencyID    int64           `json:"currencyID"`
	TransDate     time.Time       `json:"transDate"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	DebitEquiv    decimal.Decimal `json:"debitEquiv"`
	CreditEquiv   decimal.Decimal `json:"creditEquiv"`
	EntityUUID    *string         `json:"entityUUID,omitempty"`
	ReferenceUUID *string         `json:"referenceUUID,omitempty"`
	Comment       string          `json:"comment"`
	Posted        bool            `json:"posted"`
}

// ToJournalRowResponse converts a domain.JournalRow to its response DTO.
func ToJournalRowResponse(row *domain.JournalRow) JournalRowResponse {
	return JournalRowResponse{
		UUID:          row.UUID,
		RecordUUID:    row.RecordUUID,
		ProjectID:     row.ProjectID,
		FiscalYearID:  row.FiscalYearID,
		PeriodID:      row.PeriodID,
		AccountID:     row.AccountID,
		CurrencyID:    row.CurrencyID,
		TransDate:     row.TransDate,
		Debit:         row.Debit,
		Credit:        row.Credit,
		DebitEquiv:    row.DebitEquiv,
		CreditEquiv:   row.CreditEquiv,
		EntityUUID:    row.EntityUUID,
		ReferenceUUID: row.ReferenceUUID,
		Comment:       row.Comment,
		Posted:        row.Posted,
	}
}

// ToJournalRowResponses converts a slice of domain rows to response DTOs.
func ToJournalRowResponses(rows []domain.JournalRow) []JournalRowResponse {
	responses := make([]JournalRowResponse, len(rows))
	for i := range rows {
		responses[i] = ToJournalRowResponse(&rows[i])
	}
	return responses
}

// RowCommentRequest updates the comment on a set of rows.
type RowCommentRequest struct {
	UUIDs   []string `json:"uuids" binding:"required,min=1"`
	Comment string   `json:"comment"`
}

// ReversalRequest carries the description stamped onto the reversing rows.
type ReversalRequest struct {
	Description string `json:"description" binding:"required"`
}

// ReversalResponse returns the record UUID of the reversing transaction.
type ReversalResponse struct {
	RecordUUID string `json:"recordUUID"`
}

// EditHistoryResponse is one entry of a transaction's edit trail.
type EditHistoryResponse struct {
	DisplayName string    `json:"displayName"`
	Timestamp   time.Time `json:"timestamp"`
}

// ToEditHistoryResponses converts domain history entries to response DTOs.
func ToEditHistoryResponses(entries []domain.EditHistoryEntry) []EditHistoryResponse {
	responses := make([]EditHistoryResponse, len(entries))
	for i, e := range entries {
		responses[i] = EditHistoryResponse{
			DisplayName: e.DisplayName,
			Timestamp:   e.Timestamp,
		}
	}
	return responses
}
