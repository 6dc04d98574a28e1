package ledger

import (
	"github.com/voidshard/paydesk/pkg/domain"
)

// DefaultSeed is the demo data a fresh dashboard session opens with:
// two completed sends (8,740.00) and two completed receipts (21,720.00).
func DefaultSeed() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:         "1",
			Type:       domain.Sent,
			Business:   "Tech Solutions Inc.",
			Amount:     "5,240.00",
			Currency:   "USD",
			Status:     domain.Completed,
			Date:       "Today",
			Time:       "2:45 PM",
			Reference:  "TXN-2024-001",
			Gateway:    domain.Paystack,
			Refundable: true,
		},
		{
			ID:        "2",
			Type:      domain.Received,
			Business:  "Global Enterprises",
			Amount:    "12,800.00",
			Currency:  "USD",
			Status:    domain.Completed,
			Date:      "Today",
			Time:      "11:20 AM",
			Reference: "TXN-2024-002",
			Gateway:   domain.Stripe,
			InvoiceID: "INV-2024-002",
		},
		{
			ID:                 "3",
			Type:               domain.Sent,
			Business:           "Marketing Pro Ltd",
			Amount:             "3,500.00",
			Currency:           "EUR",
			Status:             domain.Completed,
			Date:               "Yesterday",
			Time:               "4:15 PM",
			Reference:          "TXN-2024-003",
			Gateway:            domain.Flutterwave,
			IsRecurring:        true,
			RecurringFrequency: domain.Monthly,
		},
		{
			ID:         "4",
			Type:       domain.Received,
			Business:   "Supply Chain Co.",
			Amount:     "8,920.00",
			Currency:   "GBP",
			Status:     domain.Completed,
			Date:       "Yesterday",
			Time:       "9:30 AM",
			Reference:  "TXN-2024-004",
			Gateway:    domain.PayPal,
			Refundable: true,
		},
	}
}
