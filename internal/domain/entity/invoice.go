package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// InvoicePrefix starts every invoice reference handed to the processor
const InvoicePrefix = "VOOZ-DONATION"

var invoicePattern = regexp.MustCompile(`^` + regexp.QuoteMeta(InvoicePrefix) + `-(\d+)-\d+$`)

// GenerateInvoiceID returns <prefix>-<donationID>-<unix seconds>.
// The timestamp keeps repeated payment attempts for one donation distinct.
func GenerateInvoiceID(donationID uint64, now time.Time) string {
	return fmt.Sprintf("%s-%d-%d", InvoicePrefix, donationID, now.Unix())
}

// ExtractDonationID recovers the donation id from an invoice reference.
// It returns false for anything that does not match the pattern, for zero
// and for ids that overflow uint64.
func ExtractDonationID(invoiceID string) (uint64, bool) {
	matches := invoicePattern.FindStringSubmatch(invoiceID)
	if matches == nil {
		return 0, false
	}

	id, err := strconv.ParseUint(matches[1], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
