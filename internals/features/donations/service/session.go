package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"globalhearts_backend/internals/features/donations/model"
	"globalhearts_backend/internals/helpers/toast"
)

type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseSelecting    Phase = "selecting"
	PhaseFormEntry    Phase = "form_entry"
	PhaseProcessing   Phase = "processing"
	PhaseConfirmation Phase = "confirmation"
)

// SessionConfig is shared by every session a store creates.
type SessionConfig struct {
	Rules      ValidationRules
	Dispatcher Dispatcher
	// Extra sinks next to the per-session toast buffer (e.g. toast.LogNotifier).
	Notifier   toast.Notifier
	Now        func() time.Time
	ToastLimit int
}

func (c SessionConfig) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Snapshot is a copy of a session's visible state.
type Snapshot struct {
	ID          uuid.UUID
	Phase       Phase
	Generation  uint64
	Draft       *model.Draft
	Transaction *model.TransactionRecord
}

// Session is one donation flow. All transitions are serialised by mu; the
// dispatch runs outside the lock and reports back through finish.
type Session struct {
	id     uuid.UUID
	cfg    SessionConfig
	toasts *toast.Buffer
	notify toast.Notifier

	mu              sync.Mutex
	phase           Phase
	draft           *model.Draft
	tx              *model.TransactionRecord
	generation      uint64
	cancel          context.CancelFunc
	settled         chan struct{}
	inFlight        bool
	lastSubmittedAt time.Time
	lastSeen        time.Time
}

func NewSession(id uuid.UUID, cfg SessionConfig) *Session {
	buf := toast.NewBuffer(cfg.ToastLimit)
	settled := make(chan struct{})
	close(settled)
	return &Session{
		id:       id,
		cfg:      cfg,
		toasts:   buf,
		notify:   toast.Multi{buf, cfg.Notifier},
		phase:    PhaseIdle,
		settled:  settled,
		lastSeen: cfg.now(),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

/* ===================== Transitions ===================== */

// Open starts a fresh draft, optionally seeded with an amount from the caller.
func (s *Session) Open(seed *decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseIdle {
		return fmt.Errorf("open from %s: %w", s.phase, ErrInvalidTransition)
	}
	d := model.NewDraft()
	if seed != nil {
		if err := d.Amount.SelectPreset(*seed); err != nil {
			return err
		}
	}
	s.draft = d
	s.tx = nil
	s.phase = PhaseSelecting
	return nil
}

// ChooseMethod installs the variant for m. Re-choosing the current method keeps its inputs.
func (s *Session) ChooseMethod(m model.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseSelecting {
		return fmt.Errorf("choose method from %s: %w", s.phase, ErrInvalidTransition)
	}
	if s.draft.PaymentMethod() != m {
		details, err := model.NewPaymentDetails(m)
		if err != nil {
			return err
		}
		s.draft.Payment = details
	}
	s.phase = PhaseFormEntry
	return nil
}

func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseFormEntry {
		return fmt.Errorf("back from %s: %w", s.phase, ErrInvalidTransition)
	}
	s.phase = PhaseSelecting
	return nil
}

// UpdateDraft applies fn to a copy of the draft and keeps it only when fn
// succeeds and the payment method is unchanged.
func (s *Session) UpdateDraft(fn func(d *model.Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseFormEntry {
		return fmt.Errorf("update draft in %s: %w", s.phase, ErrInvalidTransition)
	}
	cp := s.draft.Clone()
	if err := fn(cp); err != nil {
		return err
	}
	if cp.PaymentMethod() != s.draft.PaymentMethod() {
		return ErrPaymentMethodMismatch
	}
	s.draft = cp
	return nil
}

// Submit runs the validation gate and, when it passes, starts the dispatch in
// the background. A failed gate is notified and returned; the phase is unchanged.
func (s *Session) Submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseFormEntry {
		return fmt.Errorf("submit from %s: %w", s.phase, ErrInvalidTransition)
	}
	if err := Validate(s.draft, s.cfg.Rules); err != nil {
		if ve, ok := AsValidationError(err); ok {
			s.notify.Notify(ve.Title, ve.Message, toast.SeverityDestructive)
		}
		return err
	}
	if s.cfg.Dispatcher == nil {
		return ErrProcessorUnavailable
	}

	now := s.cfg.now()
	req := DispatchRequest{
		Draft:              *s.draft.Clone(),
		SubmittedAt:        now,
		PreviousSubmission: s.lastSubmittedAt,
	}
	s.lastSubmittedAt = now

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.settled = make(chan struct{})
	s.inFlight = true
	s.phase = PhaseProcessing
	gen := s.generation

	go func() {
		tx, err := s.cfg.Dispatcher.Dispatch(ctx, req)
		s.finish(gen, tx, err)
	}()
	return nil
}

// finish applies a dispatch result unless the session moved on since gen.
func (s *Session) finish(gen uint64, tx model.TransactionRecord, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation || s.phase != PhaseProcessing {
		log.Printf("[INFO] dropping stale donation result session=%s gen=%d current=%d", s.id, gen, s.generation)
		return
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	defer s.settleLocked()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.phase = PhaseFormEntry
			return
		}
		title, msg := processorFailureText(err)
		log.Printf("[WARN] donation dispatch failed session=%s: %v", s.id, err)
		s.notify.Notify(title, msg, toast.SeverityDestructive)
		s.phase = PhaseFormEntry
		return
	}

	rec := tx.Copy()
	s.tx = &rec
	s.phase = PhaseConfirmation
	s.notify.Notify(
		"Thank You for Your Donation!",
		fmt.Sprintf("Your %s donation of $%s has been processed.", rec.DonationType, rec.FinalAmount.StringFixed(2)),
		toast.SeverityDefault,
	)
}

// Close abandons the flow from any phase. A pending dispatch is cancelled and
// its result, should it still arrive, is ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation++
	s.settleLocked()
	s.draft = nil
	s.tx = nil
	s.phase = PhaseIdle
}

func (s *Session) settleLocked() {
	if s.inFlight {
		close(s.settled)
		s.inFlight = false
	}
}

/* ===================== Queries ===================== */

// Wait blocks until no dispatch is in flight or ctx is done.
func (s *Session) Wait(ctx context.Context) error {
	s.mu.Lock()
	ch := s.settled
	s.mu.Unlock()
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Transaction returns a copy of the confirmed record.
func (s *Session) Transaction() (model.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tx == nil {
		return model.TransactionRecord{}, ErrNoTransaction
	}
	return s.tx.Copy(), nil
}

// TransactionMatches reports whether txID is the record this session currently holds.
func (s *Session) TransactionMatches(txID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx != nil && s.tx.TransactionID == txID
}

func (s *Session) Receipt(org Organization) (filename, body string, err error) {
	tx, err := s.Transaction()
	if err != nil {
		return "", "", err
	}
	return ReceiptFilename(tx), RenderReceipt(tx, org), nil
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		ID:         s.id,
		Phase:      s.phase,
		Generation: s.generation,
		Draft:      s.draft.Clone(),
	}
	if s.tx != nil {
		rec := s.tx.Copy()
		snap.Transaction = &rec
	}
	return snap
}

func (s *Session) DrainToasts() []toast.Toast {
	return s.toasts.Drain()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
