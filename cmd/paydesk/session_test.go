package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidshard/paydesk/pkg/config"
	"github.com/voidshard/paydesk/pkg/domain"
)

func testContext(t *testing.T) *context {
	dir := t.TempDir()
	return &context{
		Config: filepath.Join(dir, "missing.yaml"),
		Delay:  time.Millisecond,
		Wait:   true,
		Out:    "jsonfile:" + filepath.Join(dir, "out.json"),
	}
}

func TestSessionSendAndExport(t *testing.T) {
	ctx := testContext(t)

	s, err := ctx.session()
	require.NoError(t, err)
	assert.Equal(t, 4, s.ledger.Len())

	txn, err := s.add(domain.Draft{Type: domain.Sent, Business: "Acme", Amount: "100", Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, domain.Pending, txn.Status)

	require.NoError(t, s.finish())

	data, err := os.ReadFile(strings.TrimPrefix(ctx.Out, "jsonfile:"))
	require.NoError(t, err)

	exported := struct {
		Transactions []domain.Transaction `json:"transactions"`
	}{}
	require.NoError(t, json.Unmarshal(data, &exported))
	require.Len(t, exported.Transactions, 5)
	assert.Equal(t, txn.ID, exported.Transactions[0].ID)
	assert.Equal(t, domain.Completed, exported.Transactions[0].Status)
}

func TestSessionLinks(t *testing.T) {
	s, err := testContext(t).session()
	require.NoError(t, err)

	gen, err := s.links()
	require.NoError(t, err)

	link, err := gen.New("25", "GBP", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link.URL, "http://localhost:5173/pay/"), link.URL)
}

func TestRunCommandsRejectBadInput(t *testing.T) {
	ctx := testContext(t)

	assert.ErrorIs(t, (&sendCmd{To: "Acme", Amount: "lots", Currency: "USD"}).Run(ctx), domain.ErrInvalidDraft)
	assert.ErrorIs(t, (&recurringCmd{To: "Acme", Amount: "5", Currency: "USD", Frequency: "hourly"}).Run(ctx), domain.ErrInvalidDraft)
	assert.Error(t, (&refundCmd{ID: "2", Amount: "1"}).Run(ctx))
	assert.Nil(t, (&refundCmd{ID: "1", Amount: "40"}).Run(ctx))
}

func TestDescribe(t *testing.T) {
	txn := &domain.Transaction{
		ID:                 "3",
		Type:               domain.Received,
		Business:           "Global Enterprises",
		Amount:             "12,800.00",
		Currency:           "USD",
		Status:             domain.Completed,
		Gateway:            domain.Stripe,
		InvoiceID:          "INV-2024-002",
		IsRecurring:        true,
		RecurringFrequency: domain.Monthly,
		Refundable:         true,
	}

	line := describe(txn)
	assert.Contains(t, line, "<-")
	assert.Contains(t, line, "12,800.00")
	assert.Contains(t, line, "[stripe, invoice INV-2024-002, monthly, refundable]")
}

func TestKeysSave(t *testing.T) {
	ctx := testContext(t)

	require.NoError(t, (&keysCmd{Save: true}).Run(ctx))

	cfg, err := config.LoadFile(ctx.Config)
	require.NoError(t, err)
	assert.Len(t, cfg.Links.EncryptionKey, 44)
	assert.Len(t, cfg.Links.SigningKey, 44)
	assert.NotEqual(t, cfg.Links.EncryptionKey, cfg.Links.SigningKey)

	// saved keys make links verifiable across sessions
	s, err := ctx.session()
	require.NoError(t, err)
	gen, err := s.links()
	require.NoError(t, err)
	link, err := gen.New("10", "USD", "")
	require.NoError(t, err)

	s, err = ctx.session()
	require.NoError(t, err)
	gen, err = s.links()
	require.NoError(t, err)
	_, err = gen.Verify(link.URL)
	assert.Nil(t, err)
}

func TestSendWaitPrintsSummary(t *testing.T) {
	ctx := testContext(t)
	assert.Nil(t, (&sendCmd{To: "Acme", Amount: "100", Currency: "USD"}).Run(ctx))
}
