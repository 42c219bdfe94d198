package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"time"
)

const (
	DefaultTransactionPrefix = "GHC"
	txSuffixLen              = 7
	base36Alphabet           = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// TransactionIDPattern matches ids from TransactionIDGenerator with the default prefix.
var TransactionIDPattern = regexp.MustCompile(`^GHC-[0-9]+-[0-9a-z]{7}$`)

// TransactionIDGenerator builds "<PREFIX>-<unix millis>-<7 base36 chars>".
type TransactionIDGenerator struct {
	Prefix string
	Random io.Reader // crypto/rand when nil
}

func (g TransactionIDGenerator) New(now time.Time) (string, error) {
	prefix := g.Prefix
	if prefix == "" {
		prefix = DefaultTransactionPrefix
	}
	src := g.Random
	if src == nil {
		src = rand.Reader
	}

	max := big.NewInt(int64(len(base36Alphabet)))
	suffix := make([]byte, txSuffixLen)
	for i := range suffix {
		n, err := rand.Int(src, max)
		if err != nil {
			return "", fmt.Errorf("transaction id: %w", err)
		}
		suffix[i] = base36Alphabet[n.Int64()]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), suffix), nil
}
