package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/SscSPs/organic_store_accounting/internal/apperrors"
	"github.com/SscSPs/organic_store_accounting/internal/core/accounting"
	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/organic_store_accounting/internal/core/ports/services"
	"github.com/SscSPs/organic_store_accounting/internal/metrics"
)

const (
	defaultAttemptListLimit = 50
	maxAttemptListLimit     = 200
)

// Attempt outcomes stored in the audit log and used as metric labels.
const (
	outcomeAccepted  = "accepted"
	outcomeDuplicate = "duplicate_reference"
	outcomeRejected  = "rejected"
	outcomeError     = "error"
)

type postingEvent string

const (
	eventSubmit    postingEvent = "submit"
	eventAccepted  postingEvent = "accepted"
	eventDuplicate postingEvent = "duplicate"
	eventRejected  postingEvent = "rejected"
)

// postingTransitions is the complete transition table of the poster. Every state that leads to a
// submission (submitted, conflict_retried) is entered at most once, so at most two submissions happen.
var postingTransitions = map[domain.PostingState]map[postingEvent]domain.PostingState{
	domain.PostingIdle: {
		eventSubmit: domain.PostingSubmitted,
	},
	domain.PostingSubmitted: {
		eventAccepted:  domain.PostingSucceeded,
		eventDuplicate: domain.PostingConflictRetried,
		eventRejected:  domain.PostingFailed,
	},
	domain.PostingConflictRetried: {
		eventAccepted:  domain.PostingSucceeded,
		eventDuplicate: domain.PostingFailed,
		eventRejected:  domain.PostingFailed,
	},
}

type postingMachine struct {
	state domain.PostingState
}

func (m *postingMachine) fire(ev postingEvent) error {
	next, ok := postingTransitions[m.state][ev]
	if !ok {
		return fmt.Errorf("invalid posting transition %s --%s-->", m.state, ev)
	}
	m.state = next
	return nil
}

// postingService implements the PostingSvc interface
type postingService struct {
	BaseService
	writer       portsrepo.LedgerWriter
	audit        portsrepo.PostingAuditRepository
	validate     *validator.Validate
	newAttemptID func() string
}

// PostingServiceOption is a functional option for configuring the posting service
type PostingServiceOption func(*postingService)

// WithPostingAudit records every submission in the given repository.
func WithPostingAudit(repo portsrepo.PostingAuditRepository) PostingServiceOption {
	return func(s *postingService) {
		if repo != nil {
			s.audit = repo
		}
	}
}

// WithPostingClock overrides the wall clock used for attempt timestamps and regenerated references.
func WithPostingClock(clock func() time.Time) PostingServiceOption {
	return func(s *postingService) {
		s.clock = clock
	}
}

// WithAttemptIDGenerator overrides how audit attempt ids are generated.
func WithAttemptIDGenerator(gen func() string) PostingServiceOption {
	return func(s *postingService) {
		s.newAttemptID = gen
	}
}

// NewPostingService creates a new posting service with the provided options
func NewPostingService(writer portsrepo.LedgerWriter, options ...PostingServiceOption) portssvc.PostingSvc {
	svc := &postingService{
		writer:       writer,
		audit:        noopPostingAudit{},
		validate:     newValidator(),
		newAttemptID: uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PostingSvc = (*postingService)(nil)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// PostEntry validates the request, submits it, and on a duplicate reference resubmits exactly once
// with a regenerated reference. Nothing is sent when validation fails.
func (s *postingService) PostEntry(ctx context.Context, req domain.PostEntryRequest, userID string) (*domain.PostResult, error) {
	req = normalizeRequest(req)
	if err := s.validateRequest(req); err != nil {
		s.LogDebug(ctx, "Posting request rejected by validation", slog.String("error", err.Error()))
		return nil, err
	}

	payload := buildPayload(req)
	originalRef := payload.ReferenceNo
	machine := &postingMachine{state: domain.PostingIdle}
	if err := machine.fire(eventSubmit); err != nil {
		return nil, err
	}

	attemptNo := 0
	for {
		attemptNo++
		entry, err := s.writer.PostJournalEntry(ctx, payload)

		var rejection *domain.PostRejection
		event, outcome := classifyOutcome(err, &rejection)
		if terr := machine.fire(event); terr != nil {
			return nil, terr
		}
		s.recordAttempt(ctx, payload.ReferenceNo, attemptNo, machine.state, outcome, err, userID)

		switch machine.state {
		case domain.PostingSucceeded:
			result := &domain.PostResult{Entry: *entry, Attempts: attemptNo}
			if payload.ReferenceNo != originalRef {
				result.ReplacedReference = &domain.ReplacedReference{Original: originalRef, Replacement: payload.ReferenceNo}
			}
			s.LogInfo(ctx, "Journal entry posted",
				slog.String("entry_id", entry.ID),
				slog.String("reference_no", payload.ReferenceNo),
				slog.Int("attempts", attemptNo))
			return result, nil

		case domain.PostingConflictRetried:
			replacement := accounting.RegenerateReference(payload.ReferenceNo, payload.Date, s.Now())
			metrics.ReferenceRegenerationsTotal.Inc()
			s.LogWarn(ctx, "Reference number already used, retrying with a new one",
				slog.String("reference_no", payload.ReferenceNo),
				slog.String("replacement", replacement))
			payload.ReferenceNo = replacement

		case domain.PostingFailed:
			if rejection != nil && rejection.Code == domain.RejectDuplicateReference && attemptNo > 1 {
				return nil, fmt.Errorf("reference %q and its replacement %q are both in use: %w", originalRef, payload.ReferenceNo, rejection)
			}
			s.LogError(ctx, err, "Failed to post journal entry",
				slog.String("reference_no", payload.ReferenceNo),
				slog.Int("attempt", attemptNo))
			if rejection != nil {
				return nil, rejection
			}
			return nil, fmt.Errorf("failed to post journal entry: %w", err)

		default:
			return nil, fmt.Errorf("posting stopped in unexpected state %s", machine.state)
		}
	}
}

func classifyOutcome(err error, rejection **domain.PostRejection) (postingEvent, string) {
	if err == nil {
		return eventAccepted, outcomeAccepted
	}
	if errors.As(err, rejection) {
		if (*rejection).Code == domain.RejectDuplicateReference {
			return eventDuplicate, outcomeDuplicate
		}
		return eventRejected, outcomeRejected
	}
	return eventRejected, outcomeError
}

func (s *postingService) recordAttempt(ctx context.Context, referenceNo string, attemptNo int, state domain.PostingState, outcome string, cause error, userID string) {
	metrics.PostingAttemptsTotal.WithLabelValues(outcome).Inc()

	attempt := domain.PostingAttempt{
		AttemptID:   s.newAttemptID(),
		ReferenceNo: referenceNo,
		AttemptNo:   attemptNo,
		State:       state,
		Outcome:     outcome,
		CreatedAt:   s.Now().UTC(),
		CreatedBy:   userID,
	}
	if cause != nil {
		attempt.Message = cause.Error()
	}
	if err := s.audit.SavePostingAttempt(ctx, attempt); err != nil {
		s.LogError(ctx, err, "Failed to record posting attempt",
			slog.String("reference_no", referenceNo),
			slog.Int("attempt", attemptNo))
	}
}

// ListAttempts returns one page of recorded submissions, newest first.
func (s *postingService) ListAttempts(ctx context.Context, params portsrepo.ListAttemptsParams) ([]domain.PostingAttempt, *string, error) {
	if params.Limit <= 0 {
		params.Limit = defaultAttemptListLimit
	}
	if params.Limit > maxAttemptListLimit {
		params.Limit = maxAttemptListLimit
	}
	params.ReferenceNo = strings.TrimSpace(params.ReferenceNo)

	attempts, next, err := s.audit.ListPostingAttempts(ctx, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list posting attempts")
		return nil, nil, fmt.Errorf("failed to list posting attempts: %w", err)
	}
	if attempts == nil {
		attempts = []domain.PostingAttempt{}
	}
	return attempts, next, nil
}

func normalizeRequest(req domain.PostEntryRequest) domain.PostEntryRequest {
	req.ReferenceNo = strings.TrimSpace(req.ReferenceNo)
	req.Memo = strings.TrimSpace(req.Memo)
	req.PartnerName = strings.TrimSpace(req.PartnerName)
	req.PartnerPhone = strings.TrimSpace(req.PartnerPhone)
	req.PaymentStatus = domain.PaymentStatus(strings.ToLower(strings.TrimSpace(string(req.PaymentStatus))))

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, line := range req.Lines {
		line.AccountCode = strings.TrimSpace(line.AccountCode)
		line.Description = strings.TrimSpace(line.Description)
		lines[i] = line
	}
	req.Lines = lines
	return req
}

func (s *postingService) validateRequest(req domain.PostEntryRequest) error {
	var problems []string

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		for _, fe := range verrs {
			problems = append(problems, describeFieldError(fe))
		}
	}

	if req.PaymentStatus == domain.Unpaid && req.DueDate != nil && !req.DueDate.IsSet() {
		problems = append(problems, "dueDate is required when paymentStatus is unpaid")
	}
	for i, line := range req.Lines {
		switch {
		case line.Debit.IsNegative() || line.Credit.IsNegative():
			problems = append(problems, fmt.Sprintf("lines[%d]: amounts cannot be negative", i))
		case line.Debit.IsPositive() == line.Credit.IsPositive():
			problems = append(problems, fmt.Sprintf("lines[%d]: exactly one of debit or credit must be positive", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "PostEntryRequest.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		params := strings.Fields(fe.Param())
		if len(params) == 2 {
			return fmt.Sprintf("%s is required when %s is %s", field, lowerFirst(params[0]), params[1])
		}
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "numeric":
		return field + " must be numeric"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func buildPayload(req domain.PostEntryRequest) domain.PostEntryPayload {
	payload := domain.PostEntryPayload{
		Date:          req.Date,
		ReferenceNo:   req.ReferenceNo,
		Memo:          req.Memo,
		Kind:          req.Kind,
		PaymentStatus: req.PaymentStatus,
		Lines:         req.Lines,
	}
	if req.PaymentStatus == domain.Unpaid {
		payload.PartnerName = req.PartnerName
		payload.PartnerPhone = req.PartnerPhone
		payload.DueDate = req.DueDate
	}
	return payload
}

// noopPostingAudit is used when no database is configured.
type noopPostingAudit struct{}

func (noopPostingAudit) SavePostingAttempt(context.Context, domain.PostingAttempt) error {
	return nil
}

func (noopPostingAudit) ListPostingAttempts(context.Context, portsrepo.ListAttemptsParams) ([]domain.PostingAttempt, *string, error) {
	return []domain.PostingAttempt{}, nil, nil
}
