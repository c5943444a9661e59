package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

const base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// randomBase36 returns n random characters from [0-9A-Z].
func randomBase36(n int) string {
	var sb strings.Builder
	max := big.NewInt(int64(len(base36Upper)))
	for i := 0; i < n; i++ {
		k, err := rand.Int(rand.Reader, max)
		if err != nil {
			sb.WriteByte('0')
			continue
		}
		sb.WriteByte(base36Upper[k.Int64()])
	}
	return sb.String()
}

func lastDigits(ms int64, n int) string {
	s := strconv.FormatInt(ms, 10)
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// OrderID builds the display id of an order: ORD-<last 6 ms digits>-<3 base36>.
// The suffix keeps two orders created in the same millisecond window apart.
func OrderID(now time.Time) string {
	return "ORD-" + lastDigits(now.UnixMilli(), 6) + "-" + randomBase36(3)
}

// InvoiceID builds the display id of a generated invoice: INV-<unix ms>-<5 base36>.
func InvoiceID(now time.Time) string {
	return fmt.Sprintf("INV-%d-%s", now.UnixMilli(), randomBase36(5))
}

// InvoiceNumber builds INV-YYYY-MM-NNNN with a random 4 digit sequence.
func InvoiceNumber(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	seq := int64(0)
	if err == nil {
		seq = n.Int64()
	}
	return fmt.Sprintf("INV-%04d-%02d-%04d", now.Year(), int(now.Month()), seq)
}
