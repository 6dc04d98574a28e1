package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidshard/paydesk/pkg/domain"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	jf := NewJSONFile(path)

	err := jf.Write(context.Background(), []domain.Transaction{
		{ID: "1", Amount: "5,240.00", Status: domain.Completed},
		{ID: "2", Amount: "12,800.00", Status: domain.Pending, Gateway: domain.Stripe},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	got := &snapshot{}
	require.NoError(t, json.Unmarshal(data, got))
	assert.Len(t, got.Transactions, 2)
	assert.Equal(t, domain.Stripe, got.Transactions[1].Gateway)
	assert.False(t, got.Exported.IsZero())
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")

	err := NewJSONFile(path).Write(context.Background(), nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"transactions": []`)
}

func TestOpen(t *testing.T) {
	s, err := Open("jsonfile:/tmp/out.json")
	assert.Nil(t, err)
	assert.IsType(t, &JSONFile{}, s)

	s, err = Open("es8:http://localhost:9200")
	assert.Nil(t, err)
	assert.IsType(t, &ElasticsearchV8{}, s)

	s, err = Open("sqlite:/tmp/out.db")
	assert.Nil(t, err)
	assert.IsType(t, &SQLite{}, s)

	for _, bad := range []string{"", "jsonfile", "jsonfile:", "ftp:/x"} {
		_, err = Open(bad)
		assert.Error(t, err, bad)
	}
}
