package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/voidshard/paydesk/pkg/domain"
)

// Store is somewhere a snapshot of the ledger can be exported to.
// Nothing is ever read back. JSONFile replaces its file each time, the
// es8 & sqlite sinks upsert by transaction ID and never delete.
type Store interface {
	Write(context.Context, []domain.Transaction) error
}

// Open parses an export target of the form kind:location, one of:
//
//	jsonfile:/path/to/file.json
//	es8:http://elasticsearch:9200
//	sqlite:/path/to/file.db
func Open(target string) (Store, error) {
	bits := strings.SplitN(target, ":", 2)
	if len(bits) != 2 || bits[1] == "" {
		return nil, fmt.Errorf("invalid out path %q, expected [jsonfile:/path/to/file.json] [es8:http://elasticsearch:9200] or [sqlite:/path/to/file.db]", target)
	}

	switch bits[0] {
	case "jsonfile":
		return NewJSONFile(bits[1]), nil
	case "es8":
		return NewElasticsearchV8(bits[1]), nil
	case "sqlite":
		return NewSQLite(bits[1]), nil
	}

	return nil, fmt.Errorf("unknown store kind %q", bits[0])
}
