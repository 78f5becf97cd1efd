// utils/tr_code.go
package utils

import (
	"fmt"
	"time"
)

// GenTransCode builds a transaction code like SL-2026-000123.
func GenTransCode(prefix string, seq int64, t time.Time) string {
	return fmt.Sprintf("%s-%d-%06d", prefix, t.Year(), seq)
}
