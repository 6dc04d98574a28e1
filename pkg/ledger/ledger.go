// Package ledger holds the dashboard's transactions for one session.
package ledger

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/voidshard/paydesk/pkg/domain"
	"github.com/voidshard/paydesk/pkg/settle"
)

const (
	// DefaultSettlementDelay is how long a new transaction stays pending.
	DefaultSettlementDelay = 2 * time.Second

	timeLayout = "3:04 PM"
)

var (
	ErrNotFound            = errors.New("transaction not found")
	ErrInvalidStatus       = errors.New("invalid transaction status")
	ErrNotRefundable       = errors.New("transaction is not refundable")
	ErrRefundExceedsAmount = errors.New("refund exceeds transaction amount")
)

// Ledger is an ordered, newest first, set of transactions.
// All methods are safe for concurrent use.
type Ledger struct {
	lock sync.RWMutex
	txns []*domain.Transaction

	scheduler settle.Scheduler
	delay     time.Duration
	now       func() time.Time
	refSeq    uint64
}

type Option func(*Ledger)

// WithSeed starts the ledger with a copy of txns, in the given order.
func WithSeed(txns []domain.Transaction) Option {
	return func(l *Ledger) {
		l.txns = make([]*domain.Transaction, 0, len(txns))
		for i := range txns {
			t := txns[i]
			l.txns = append(l.txns, &t)
		}
	}
}

func WithScheduler(s settle.Scheduler) Option {
	return func(l *Ledger) { l.scheduler = s }
}

func WithSettlementDelay(d time.Duration) Option {
	return func(l *Ledger) { l.delay = d }
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New returns an empty ledger unless WithSeed is given. Settlement runs on
// a wall clock Timer by default.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		txns:  []*domain.Transaction{},
		delay: DefaultSettlementDelay,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.scheduler == nil {
		l.scheduler = settle.NewTimer()
	}
	return l
}

// Add records a new pending transaction at the head of the ledger and
// schedules its settlement. Only an invalid draft is refused.
func (l *Ledger) Add(d domain.Draft) (domain.Transaction, error) {
	txn, err := d.Build()
	if err != nil {
		return domain.Transaction{}, err
	}

	now := l.now()

	l.lock.Lock()
	l.refSeq++
	txn.ID = fmt.Sprintf("TXN-%s", strings.ToUpper(uuid.New().String()))
	txn.Reference = fmt.Sprintf("REF-%d-%04d", now.UnixNano()/int64(time.Millisecond), l.refSeq)
	txn.Date = "Today"
	txn.Time = now.Format(timeLayout)
	txn.Status = domain.Pending

	l.txns = append([]*domain.Transaction{txn}, l.txns...)
	added := *txn
	l.lock.Unlock()

	id := txn.ID
	l.scheduler.Schedule(id, l.delay, func() { l.settle(id) })

	return added, nil
}

// settle marks id completed. It runs unattended so it never fails; the
// transaction may have been cleared since it was scheduled.
func (l *Ledger) settle(id string) {
	err := l.UpdateStatus(id, domain.Completed)
	if errors.Is(err, ErrNotFound) {
		log.Printf("settlement skipped, %s no longer exists\n", id)
	} else if err != nil {
		log.Printf("settlement of %s failed: %v\n", id, err)
	}
}

// UpdateStatus sets the status of id, touching nothing else.
// An unknown id leaves the ledger as it was & returns ErrNotFound.
func (l *Ledger) UpdateStatus(id string, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	txn := l.find(id)
	if txn == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	txn.Status = status
	return nil
}

// Refund records a refund of amount against id. The transaction must be
// refundable (see Transaction.IsRefundable) and amount may not exceed the
// original. Status stays completed.
func (l *Ledger) Refund(id, amount string) error {
	refund, err := domain.ParseAmount(amount)
	if err != nil {
		return err
	}
	refund = refund.Round(2)
	if !refund.IsPositive() {
		return fmt.Errorf("%w: refund must be more than zero", domain.ErrInvalidAmount)
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	txn := l.find(id)
	if txn == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if !txn.IsRefundable() {
		return fmt.Errorf("%w: %s", ErrNotRefundable, id)
	}

	original, err := domain.ParseAmount(txn.Amount)
	if err != nil {
		return err
	}
	if refund.GreaterThan(original) {
		return fmt.Errorf("%w: %s > %s", ErrRefundExceedsAmount, domain.FormatAmount(refund), txn.Amount)
	}

	txn.RefundedAmount = domain.FormatAmount(refund)
	txn.Status = domain.Completed
	return nil
}

// Clear drops every transaction.
func (l *Ledger) Clear() {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.txns = []*domain.Transaction{}
}

// Get returns a copy of the transaction with the given id.
func (l *Ledger) Get(id string) (domain.Transaction, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	txn := l.find(id)
	if txn == nil {
		return domain.Transaction{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return *txn, nil
}

// Transactions returns a copy of every transaction, newest first.
func (l *Ledger) Transactions() []domain.Transaction {
	l.lock.RLock()
	defer l.lock.RUnlock()

	out := make([]domain.Transaction, len(l.txns))
	for i, t := range l.txns {
		out[i] = *t
	}
	return out
}

// Refundable returns the transactions a refund may still be issued against.
func (l *Ledger) Refundable() []domain.Transaction {
	l.lock.RLock()
	defer l.lock.RUnlock()

	out := []domain.Transaction{}
	for _, t := range l.txns {
		if t.IsRefundable() {
			out = append(out, *t)
		}
	}
	return out
}

// Len returns the number of transactions held.
func (l *Ledger) Len() int {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return len(l.txns)
}

// Analytics summarises the ledger as it is right now. Only completed
// transactions count towards the totals. An amount that will not parse
// counts as zero.
func (l *Ledger) Analytics() domain.Analytics {
	l.lock.RLock()
	defer l.lock.RUnlock()

	a := domain.Analytics{
		TotalSent:         decimal.Zero,
		TotalReceived:     decimal.Zero,
		TotalTransactions: len(l.txns),
		ByGateway:         map[string]int{},
		ByCurrency:        map[string]int{},
		ByStatus:          map[string]int{},
	}

	for _, t := range l.txns {
		if t.Gateway != "" {
			a.ByGateway[string(t.Gateway)]++
		}
		a.ByCurrency[t.Currency]++
		a.ByStatus[string(t.Status)]++

		if t.Status != domain.Completed {
			continue
		}

		amount, err := domain.ParseAmount(t.Amount)
		if err != nil {
			log.Printf("analytics: counting %s as zero: %v\n", t.ID, err)
			continue
		}

		switch t.Type {
		case domain.Sent:
			a.TotalSent = a.TotalSent.Add(amount)
		case domain.Received:
			a.TotalReceived = a.TotalReceived.Add(amount)
		}
	}

	a.NetBalance = a.TotalReceived.Sub(a.TotalSent)
	return a
}

// find must be called with the lock held.
func (l *Ledger) find(id string) *domain.Transaction {
	for _, t := range l.txns {
		if t.ID == id {
			return t
		}
	}
	return nil
}
