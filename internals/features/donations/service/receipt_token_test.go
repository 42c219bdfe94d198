package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestReceiptTokenRoundTrip(t *testing.T) {
	tokens := NewReceiptTokens("test-secret", time.Minute)
	sid := uuid.New()
	tok, err := tokens.Issue(sid, "GHC-1-abcdefg")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	gotSID, gotTX, err := tokens.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if gotSID != sid || gotTX != "GHC-1-abcdefg" {
		t.Fatalf("unexpected claims %s %s", gotSID, gotTX)
	}
}

func TestReceiptTokenRejected(t *testing.T) {
	tokens := NewReceiptTokens("test-secret", time.Minute)
	other := NewReceiptTokens("other-secret", time.Minute)
	tok, _ := other.Issue(uuid.New(), "GHC-1-abcdefg")
	if _, _, err := tokens.Parse(tok); !errors.Is(err, ErrReceiptTokenInvalid) {
		t.Fatalf("expected invalid signature, got %v", err)
	}

	expired := NewReceiptTokens("test-secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	tok, _ = expired.Issue(uuid.New(), "GHC-1-abcdefg")
	if _, _, err := tokens.Parse(tok); !errors.Is(err, ErrReceiptTokenInvalid) {
		t.Fatalf("expected expired token rejected, got %v", err)
	}

	if _, _, err := tokens.Parse("garbage"); !errors.Is(err, ErrReceiptTokenInvalid) {
		t.Fatalf("expected garbage rejected, got %v", err)
	}
}

func TestReceiptTokenEphemeralKey(t *testing.T) {
	a := NewReceiptTokens("", 0)
	b := NewReceiptTokens("", 0)
	tok, _ := a.Issue(uuid.New(), "GHC-1-abcdefg")
	if _, _, err := b.Parse(tok); err == nil {
		t.Fatalf("expected separate ephemeral keys")
	}
}
