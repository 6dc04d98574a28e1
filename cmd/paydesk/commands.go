package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/voidshard/paydesk/pkg/config"
	"github.com/voidshard/paydesk/pkg/crypto"
	"github.com/voidshard/paydesk/pkg/domain"
)

type listCmd struct {
	Refundable bool `help:"Only show transactions that can still be refunded."`
}

func (l *listCmd) Run(ctx *context) error {
	s, err := ctx.session()
	if err != nil {
		return err
	}
	if l.Refundable {
		s.print(s.ledger.Refundable())
	} else {
		s.print(s.ledger.Transactions())
	}
	return s.finish()
}

type analyticsCmd struct{}

func (a *analyticsCmd) Run(ctx *context) error {
	s, err := ctx.session()
	if err != nil {
		return err
	}
	s.print(s.ledger.Analytics())
	return s.finish()
}

type sendCmd struct {
	To         string `arg:"" help:"Recipient business."`
	Amount     string `arg:"" help:"Amount, eg. 1,250.00"`
	Currency   string `default:"USD" help:"Currency code."`
	Gateway    string `help:"Gateway tag [paystack stripe flutterwave paypal]."`
	Refundable bool   `help:"Allow this payment to be refunded later."`
}

func (c *sendCmd) Run(ctx *context) error {
	s, err := ctx.session()
	if err != nil {
		return err
	}

	_, err = s.add(domain.Draft{
		Type:       domain.Sent,
		Business:   c.To,
		Amount:     c.Amount,
		Currency:   c.Currency,
		Gateway:    domain.Gateway(c.Gateway),
		Refundable: c.Refundable,
	})
	if err != nil {
		return err
	}
	return s.settled()
}

type invoiceCmd struct {
	Client   string `arg:"" help:"Client business name."`
	Amount   string `arg:"" help:"Amount due."`
	Currency string `default:"USD" help:"Currency code."`
	Gateway  string `help:"Gateway tag [paystack stripe flutterwave paypal]."`
}

func (c *invoiceCmd) Run(ctx *context) error {
	s, err := ctx.session()
	if err != nil {
		return err
	}

	invoice := domain.NewInvoiceID(time.Now())
	_, err = s.add(domain.Draft{
		Type:      domain.Received,
		Business:  c.Client,
		Amount:    c.Amount,
		Currency:  c.Currency,
		Gateway:   domain.Gateway(c.Gateway),
		InvoiceID: invoice,
	})
	if err != nil {
		return err
	}
	return s.settled()
}

type linkCmd struct {
	Amount      string `arg:"" help:"Amount to collect."`
	Currency    string `default:"USD" help:"Currency code."`
	Description string `help:"What the payment is for."`
	Business    string `default:"Payment link" help:"Name to record the payment under."`
}

func (c *linkCmd) Run(ctx *context) error {
	s, err := ctx.session()
	if err != nil {
		return err
	}

	gen, err := s.links()
	if err != nil {
		return err
	}
	link, err := gen.New(c.Amount, c.Currency, c.Description)
	if err != nil {
		return err
	}
	fmt.Println(link.URL)

	_, err = s.add(domain.Draft{
		Type:        domain.Received,
		Business:    c.Business,
		Amount:      link.Amount,
		Currency:    link.Currency,
		PaymentLink: link.URL,
	})
	if err != nil {
		return err
	}
	return s.settled()
}

type verifyLinkCmd struct {
	URL string `arg:"" help:"Payment link to check."`
}

func (c *verifyLinkCmd) Run(ctx *context) error {
	s, err := ctx.session()
	if err != nil {
		return err
	}

	gen, err := s.links()
	if err != nil {
		return err
	}
	payload, err := gen.Verify(c.URL)
	if err != nil {
		return err
	}

	s.print(payload)
	return nil
}

type recurringCmd struct {
	To        string `arg:"" help:"Recipient business."`
	Amount    string `arg:"" help:"Amount per payment."`
	Currency  string `default:"USD" help:"Currency code."`
	Frequency string `default:"monthly" help:"How often [daily weekly monthly yearly]."`
	Gateway   string `help:"Gateway tag [paystack stripe flutterwave paypal]."`
}

func (c *recurringCmd) Run(ctx *context) error {
	s, err := ctx.session()
	if err != nil {
		return err
	}

	_, err = s.add(domain.Draft{
		Type:               domain.Sent,
		Business:           c.To,
		Amount:             c.Amount,
		Currency:           c.Currency,
		Gateway:            domain.Gateway(c.Gateway),
		IsRecurring:        true,
		RecurringFrequency: domain.Frequency(c.Frequency),
	})
	if err != nil {
		return err
	}
	return s.settled()
}

type refundCmd struct {
	ID     string `arg:"" help:"Transaction to refund (see: list --refundable)."`
	Amount string `arg:"" help:"Amount to refund, at most the original amount."`
}

func (c *refundCmd) Run(ctx *context) error {
	s, err := ctx.session()
	if err != nil {
		return err
	}

	if err := s.ledger.Refund(c.ID, c.Amount); err != nil {
		return err
	}

	txn, err := s.ledger.Get(c.ID)
	if err != nil {
		return err
	}
	s.print(txn)
	return s.finish()
}

type exportCmd struct{}

func (e *exportCmd) Run(ctx *context) error {
	s, err := ctx.session()
	if err != nil {
		return err
	}
	if s.cfg.Export.Out == "" {
		return fmt.Errorf("nowhere to export to, set --out")
	}
	return s.finish()
}

type keysCmd struct {
	Save bool `help:"Write the keys into --config rather than only printing them."`
}

func (k *keysCmd) Run(ctx *context) error {
	enc, err := crypto.NewRandomKey()
	if err != nil {
		return err
	}
	sig, err := crypto.NewRandomKey()
	if err != nil {
		return err
	}

	if k.Save {
		cfg, err := config.LoadFile(ctx.Config)
		if err != nil {
			return err
		}
		cfg.Links.EncryptionKey = enc
		cfg.Links.SigningKey = sig
		if err := config.Write(ctx.Config, cfg); err != nil {
			return err
		}
		fmt.Println("keys written to", ctx.Config)
		return nil
	}

	fmt.Println("links:")
	fmt.Printf("  encryption_key: %s\n", enc)
	fmt.Printf("  signing_key: %s\n", sig)
	return nil
}

// settled finishes the session and, if we waited, shows where things ended up.
func (s *session) settled() error {
	if err := s.finish(); err != nil {
		return err
	}
	if !s.ctx.Wait {
		return nil
	}
	a := s.ledger.Analytics()
	if s.ctx.JSON {
		s.print(a)
	} else {
		fmt.Println("settled:", a)
	}
	return nil
}

func describe(t *domain.Transaction) string {
	arrow := "->"
	if t.Type == domain.Received {
		arrow = "<-"
	}

	extra := []string{}
	if t.Gateway != "" {
		extra = append(extra, string(t.Gateway))
	}
	if t.InvoiceID != "" {
		extra = append(extra, "invoice "+t.InvoiceID)
	}
	if t.IsRecurring {
		extra = append(extra, string(t.RecurringFrequency))
	}
	if t.IsRefunded() {
		extra = append(extra, "refunded "+t.RefundedAmount)
	} else if t.IsRefundable() {
		extra = append(extra, "refundable")
	}

	line := fmt.Sprintf("%-40s %s %-22s %s %12s  %-9s %s %s",
		t.ID, arrow, t.Business, t.Currency, t.Amount, t.Status, t.Date, t.Time)
	if len(extra) > 0 {
		line += " [" + strings.Join(extra, ", ") + "]"
	}
	return line
}

func printAnalytics(a *domain.Analytics) {
	fmt.Printf("Total sent:     %s\n", domain.FormatAmount(a.TotalSent))
	fmt.Printf("Total received: %s\n", domain.FormatAmount(a.TotalReceived))
	fmt.Printf("Net balance:    %s\n", domain.FormatAmount(a.NetBalance))
	fmt.Printf("Transactions:   %d\n", a.TotalTransactions)

	for _, section := range []struct {
		name   string
		counts map[string]int
	}{
		{"By gateway", a.ByGateway},
		{"By currency", a.ByCurrency},
		{"By status", a.ByStatus},
	} {
		fmt.Printf("%s:\n", section.name)
		keys := make([]string, 0, len(section.counts))
		for k := range section.counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %-12s %d\n", k, section.counts[k])
		}
	}
}
