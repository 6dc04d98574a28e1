package store

import (
	"context"
	"fmt"
	"time"

	"github.com/voidshard/paydesk/pkg/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// transactionRow is the exported form of a domain.Transaction.
type transactionRow struct {
	ID                 string `gorm:"primaryKey"`
	Type               string `gorm:"index"`
	Business           string
	Amount             string
	Currency           string `gorm:"index"`
	Status             string `gorm:"index"`
	Date               string
	Time               string
	Reference          string `gorm:"uniqueIndex"`
	Gateway            string
	InvoiceID          string
	PaymentLink        string
	IsRecurring        bool
	RecurringFrequency string
	Refundable         bool
	RefundedAmount     string
	ExportedAt         time.Time
}

func (transactionRow) TableName() string {
	return "transactions"
}

func toRow(t domain.Transaction, at time.Time) transactionRow {
	return transactionRow{
		ID:                 t.ID,
		Type:               string(t.Type),
		Business:           t.Business,
		Amount:             t.Amount,
		Currency:           t.Currency,
		Status:             string(t.Status),
		Date:               t.Date,
		Time:               t.Time,
		Reference:          t.Reference,
		Gateway:            string(t.Gateway),
		InvoiceID:          t.InvoiceID,
		PaymentLink:        t.PaymentLink,
		IsRecurring:        t.IsRecurring,
		RecurringFrequency: string(t.RecurringFrequency),
		Refundable:         t.Refundable,
		RefundedAmount:     t.RefundedAmount,
		ExportedAt:         at,
	}
}

type SQLite struct {
	dbPath string
}

func NewSQLite(dbPath string) Store {
	return &SQLite{dbPath: dbPath}
}

func (s *SQLite) open() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(s.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&transactionRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}

// Write upserts every transaction by ID. Rows are never deleted, so an
// empty snapshot leaves the database untouched; unlike JSONFile the sink
// accumulates across exports.
func (s *SQLite) Write(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	now := time.Now().UTC()
	rows := make([]transactionRow, len(txns))
	for i, t := range txns {
		rows[i] = toRow(t, now)
	}

	err = db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}
