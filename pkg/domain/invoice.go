package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewInvoiceID returns an id for a generated invoice, eg. INV-2024-1A2B3C4D
func NewInvoiceID(now time.Time) string {
	short := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("INV-%d-%s", now.Year(), short)
}
