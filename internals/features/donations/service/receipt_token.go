package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const DefaultReceiptTokenTTL = 15 * time.Minute

// ReceiptClaims bind a download link to one session and one transaction.
type ReceiptClaims struct {
	SessionID     string `json:"sid"`
	TransactionID string `json:"tx"`
	jwt.RegisteredClaims
}

type ReceiptTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewReceiptTokens signs with secret; an empty secret gets a random per-process key,
// so links do not survive a restart.
func NewReceiptTokens(secret string, ttl time.Duration) *ReceiptTokens {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("receipt token key: %v", err))
		}
		log.Println("[WARN] RECEIPT_TOKEN_SECRET not set, using an ephemeral key")
	}
	if ttl <= 0 {
		ttl = DefaultReceiptTokenTTL
	}
	return &ReceiptTokens{secret: key, ttl: ttl, now: time.Now}
}

func (r *ReceiptTokens) Issue(sessionID uuid.UUID, txID string) (string, error) {
	now := r.now()
	claims := ReceiptClaims{
		SessionID:     sessionID.String(),
		TransactionID: txID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(r.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
}

// Parse verifies the signature and expiry and returns the bound ids.
func (r *ReceiptTokens) Parse(token string) (uuid.UUID, string, error) {
	var claims ReceiptClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("token not valid")
		}
		return uuid.Nil, "", fmt.Errorf("%w: %v", ErrReceiptTokenInvalid, err)
	}
	sid, err := uuid.Parse(claims.SessionID)
	if err != nil || claims.TransactionID == "" {
		return uuid.Nil, "", ErrReceiptTokenInvalid
	}
	return sid, claims.TransactionID, nil
}
