package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"globalhearts_backend/internals/features/donations/model"
)

// DispatchRequest is what a session hands to the payment side on submit.
type DispatchRequest struct {
	Draft       model.Draft
	SubmittedAt time.Time
	// zero when this is the session's first submission
	PreviousSubmission time.Time
}

// Dispatcher turns a validated draft into a transaction record. Implementations
// must return ctx.Err() when the context is cancelled before completion.
type Dispatcher interface {
	Dispatch(ctx context.Context, req DispatchRequest) (model.TransactionRecord, error)
}

/* ===================== Review policy ===================== */

const (
	ReviewReasonLargeAmount = "large_amount"
	ReviewReasonRapidRepeat = "rapid_resubmission"
)

// ReviewPolicy marks a transaction for manual follow-up. It never blocks.
type ReviewPolicy struct {
	AmountThreshold decimal.Decimal // zero disables
	RepeatWindow    time.Duration   // zero disables
}

func DefaultReviewPolicy() ReviewPolicy {
	return ReviewPolicy{
		AmountThreshold: decimal.NewFromInt(1000),
		RepeatWindow:    time.Minute,
	}
}

func (p ReviewPolicy) Reasons(final decimal.Decimal, submittedAt, previous time.Time) []string {
	var reasons []string
	if p.AmountThreshold.IsPositive() && final.GreaterThanOrEqual(p.AmountThreshold) {
		reasons = append(reasons, ReviewReasonLargeAmount)
	}
	if p.RepeatWindow > 0 && !previous.IsZero() && submittedAt.Sub(previous) < p.RepeatWindow {
		reasons = append(reasons, ReviewReasonRapidRepeat)
	}
	return reasons
}

/* ===================== Simulated ===================== */

// SimulatedDispatcher waits Delay and then always succeeds.
type SimulatedDispatcher struct {
	Delay  time.Duration
	IDs    TransactionIDGenerator
	Review ReviewPolicy
	Now    func() time.Time
}

func (s *SimulatedDispatcher) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SimulatedDispatcher) Dispatch(ctx context.Context, req DispatchRequest) (model.TransactionRecord, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return model.TransactionRecord{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return model.TransactionRecord{}, err
	}

	now := s.now()
	id, err := s.IDs.New(now)
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("%w: %v", ErrProcessorUnavailable, err)
	}

	d := req.Draft
	base := d.BaseAmount()
	tx := model.TransactionRecord{
		TransactionID:  id,
		BaseAmount:     base,
		FeeAmount:      model.FeeAmount(base, d.CoverFees),
		FinalAmount:    model.FinalAmount(base, d.CoverFees),
		CoverFees:      d.CoverFees,
		DonationType:   d.DonationType,
		PaymentMethod:  d.PaymentMethod(),
		Date:           now,
		DonorFirstName: strings.TrimSpace(d.FirstName),
		DonorLastName:  strings.TrimSpace(d.LastName),
		DonorEmail:     strings.TrimSpace(d.Email),
		Comment:        d.Comment,
	}

	if reasons := s.Review.Reasons(tx.FinalAmount, req.SubmittedAt, req.PreviousSubmission); len(reasons) > 0 {
		tx.RequiresReview = true
		tx.ReviewReasons = reasons
		log.Printf("[REVIEW] 🔎 tx=%s amount=%s reasons=%s", tx.TransactionID, tx.FinalAmount.StringFixed(2), strings.Join(reasons, ","))
	}
	return tx, nil
}
