package fees

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReceiptCounter is the per-(school, year) allocation primitive behind receipt
// numbering. It carries no business meaning beyond the next number; the
// repository increments it with a single atomic upsert inside the payment
// insert transaction, so concurrent creators never observe the same value and
// the sequence has no gaps.
type ReceiptCounter struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"school_id"`
	YearID    uuid.UUID `json:"year_id"`
	Counter   int64     `json:"counter"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// YearCode derives the compact year code used in receipt numbers from an
// academic year label. Hyphenated labels keep the last two digits of each
// side ("2025-2026" -> "2526"); anything else keeps its last four characters.
func YearCode(label string) string {
	label = strings.TrimSpace(label)
	if left, right, ok := strings.Cut(label, "-"); ok {
		return lastN(left, 2) + lastN(right, 2)
	}
	return lastN(label, 4)
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// FormatReceiptNumber renders the human-readable receipt number for a counter
// value, e.g. FormatReceiptNumber("2025-2026", 7) == "REC-2526-0007".
func FormatReceiptNumber(yearLabel string, counter int64) string {
	return fmt.Sprintf("REC-%s-%04d", YearCode(yearLabel), counter)
}
