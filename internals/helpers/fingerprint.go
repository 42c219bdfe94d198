package helper

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// EmailFingerprint is a short stable digest for log lines; the address itself never reaches the log.
func EmailFingerprint(email string) string {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return "-"
	}
	h, err := blake2b.New(8, nil)
	if err != nil {
		return "-"
	}
	h.Write([]byte(e))
	return hex.EncodeToString(h.Sum(nil))
}
