package mapping

import (
	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	"github.com/SscSPs/organic_store_accounting/internal/models"
)

// ToModelPostingAttempt converts a domain PostingAttempt to a model PostingAttempt
func ToModelPostingAttempt(d domain.PostingAttempt) models.PostingAttempt {
	return models.PostingAttempt{
		AttemptID:   d.AttemptID,
		ReferenceNo: d.ReferenceNo,
		AttemptNo:   int16(d.AttemptNo),
		State:       string(d.State),
		Outcome:     d.Outcome,
		Message:     d.Message,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

// ToDomainPostingAttempt converts a model PostingAttempt to a domain PostingAttempt
func ToDomainPostingAttempt(m models.PostingAttempt) domain.PostingAttempt {
	return domain.PostingAttempt{
		AttemptID:   m.AttemptID,
		ReferenceNo: m.ReferenceNo,
		AttemptNo:   int(m.AttemptNo),
		State:       domain.PostingState(m.State),
		Outcome:     m.Outcome,
		Message:     m.Message,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ToDomainPostingAttempts converts a slice of model PostingAttempts to domain PostingAttempts
func ToDomainPostingAttempts(ms []models.PostingAttempt) []domain.PostingAttempt {
	ds := make([]domain.PostingAttempt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPostingAttempt(m)
	}
	return ds
}
