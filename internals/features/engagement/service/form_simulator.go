package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrFormUnavailable is returned when the caller gives up before the simulated send finishes.
var ErrFormUnavailable = errors.New("form submission could not be completed")

// FormSimulator stands in for a mail/CRM backend: it waits Delay and hands
// back a reference id. Nothing is stored.
type FormSimulator struct {
	Delay time.Duration
	Now   func() time.Time

	mu      sync.Mutex
	entropy io.Reader
}

func NewFormSimulator(delay time.Duration) *FormSimulator {
	return &FormSimulator{Delay: delay, Now: time.Now, entropy: ulid.DefaultEntropy()}
}

// Process blocks for Delay (or until ctx ends) and returns a ULID reference.
func (s *FormSimulator) Process(ctx context.Context) (string, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return "", errors.Join(ErrFormUnavailable, ctx.Err())
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return "", errors.Join(ErrFormUnavailable, err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entropy == nil {
		s.entropy = ulid.DefaultEntropy()
	}
	id, err := ulid.New(ulid.Timestamp(now()), s.entropy)
	if err != nil {
		return "", errors.Join(ErrFormUnavailable, err)
	}
	return id.String(), nil
}
