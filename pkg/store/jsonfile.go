package store

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/voidshard/paydesk/pkg/domain"
)

type JSONFile struct {
	filename string
}

type snapshot struct {
	Exported     time.Time            `json:"exported"`
	Transactions []domain.Transaction `json:"transactions"`
}

func NewJSONFile(filename string) Store {
	return &JSONFile{filename: filename}
}

func (f *JSONFile) Write(ctx context.Context, txns []domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	data, err := json.MarshalIndent(&snapshot{Exported: time.Now().UTC(), Transactions: txns}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.filename, data, 0644)
}
