package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// BoardSeed returns a deterministic board seed for a date using HMAC(salt, YYYY-MM-DD).
// Every player rolls the same board for a given date and salt.
func BoardSeed(date time.Time, salt string) int64 {
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// first 8 bytes give a stable 64-bit seed
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
