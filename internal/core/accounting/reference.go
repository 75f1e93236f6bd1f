package accounting

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
)

const defaultReferencePrefix = "JE"

// RegenerateReference builds a replacement reference number after a collision:
// the alphabetic prefix of the old reference, the transaction date as YYYYMMDD, and
// the last four digits of the current Unix second.
//
//	RegenerateReference("HD001", 2024-06-15, now) -> "HD20240615-4821"
func RegenerateReference(previous string, date domain.Date, now time.Time) string {
	prefix := referencePrefix(previous)
	day := date.Time
	if !date.IsSet() {
		day = now
	}
	return fmt.Sprintf("%s%s-%04d", prefix, day.Format("20060102"), now.Unix()%10000)
}

func referencePrefix(reference string) string {
	end := strings.IndexFunc(reference, func(r rune) bool { return !unicode.IsLetter(r) })
	if end == -1 {
		end = len(reference)
	}
	prefix := strings.ToUpper(reference[:end])
	if prefix == "" {
		return defaultReferencePrefix
	}
	return prefix
}
