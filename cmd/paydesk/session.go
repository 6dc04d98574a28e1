package main

import (
	ctxpkg "context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/voidshard/paydesk/pkg/config"
	"github.com/voidshard/paydesk/pkg/crypto"
	"github.com/voidshard/paydesk/pkg/domain"
	"github.com/voidshard/paydesk/pkg/ledger"
	"github.com/voidshard/paydesk/pkg/paylink"
	"github.com/voidshard/paydesk/pkg/settle"
	"github.com/voidshard/paydesk/pkg/store"
)

// session is one dashboard session: a fresh ledger that lives as long as
// the command does.
type session struct {
	cfg    config.Config
	ctx    *context
	timer  *settle.Timer
	ledger *ledger.Ledger
}

func (c *context) session() (*session, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", c.Config, err)
	}
	if c.Delay > 0 {
		cfg.Ledger.SettlementDelay = c.Delay
	}
	if c.Out != "" {
		cfg.Export.Out = c.Out
	}

	timer := settle.NewTimer()
	opts := []ledger.Option{
		ledger.WithScheduler(timer),
		ledger.WithSettlementDelay(cfg.Ledger.SettlementDelay),
	}
	if cfg.Ledger.Seed {
		opts = append(opts, ledger.WithSeed(ledger.DefaultSeed()))
	}

	return &session{
		cfg:    cfg,
		ctx:    c,
		timer:  timer,
		ledger: ledger.New(opts...),
	}, nil
}

func (s *session) links() (*paylink.Generator, error) {
	var sealer *crypto.Sealer
	if s.cfg.Links.EncryptionKey == "" || s.cfg.Links.SigningKey == "" {
		fmt.Fprintln(os.Stderr, "no link keys configured, using throwaway keys (see: paydesk keys)")
		sealer = crypto.NewRandomSealer()
	} else {
		var err error
		sealer, err = crypto.NewSealer(s.cfg.Links.EncryptionKey, s.cfg.Links.SigningKey)
		if err != nil {
			return nil, err
		}
	}
	return paylink.NewGenerator(s.cfg.Links.BaseURL, sealer)
}

// add records a draft and reports the new transaction.
func (s *session) add(d domain.Draft) (domain.Transaction, error) {
	txn, err := s.ledger.Add(d)
	if err != nil {
		return txn, err
	}
	s.print(txn)
	return txn, nil
}

// finish waits for settlement if asked to & exports if a target is set.
func (s *session) finish() error {
	if s.ctx.Wait && s.timer.Pending() > 0 {
		fmt.Fprintf(os.Stderr, "waiting for %d transaction(s) to settle\n", s.timer.Pending())
		s.timer.Wait()
	}

	if s.cfg.Export.Out == "" {
		return nil
	}

	out, err := store.Open(s.cfg.Export.Out)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Writing to", s.cfg.Export.Out)
	return out.Write(ctxpkg.Background(), s.ledger.Transactions())
}

func (s *session) print(v interface{}) {
	if s.ctx.JSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Println(string(data))
		return
	}

	switch o := v.(type) {
	case domain.Transaction:
		fmt.Println(describe(&o))
	case []domain.Transaction:
		for i := range o {
			fmt.Println(describe(&o[i]))
		}
	case domain.Analytics:
		printAnalytics(&o)
	case *paylink.Payload:
		fmt.Printf("link %s: %s %s %q issued %s\n", o.ID, o.Currency, o.Amount, o.Description, o.Created.Format(time.RFC3339))
	default:
		fmt.Println(v)
	}
}
