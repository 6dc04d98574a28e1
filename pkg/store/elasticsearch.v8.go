package store

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/voidshard/paydesk/pkg/domain"

	"github.com/cenkalti/backoff/v4"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

const (
	esIndex = "paydesk-transactions"
	esFlush = 2048

	envEsAddr = "ELASTICSEARCH_SERVICE_HOST"
	envEsPort = "ELASTICSEARCH_SERVICE_PORT"
)

type ElasticsearchV8 struct {
	addresses []string
}

// NewElasticsearchV8 writes to the given nodes, or to the node named by
// the ELASTICSEARCH_SERVICE_* env vars if none are given.
func NewElasticsearchV8(urls ...string) Store {
	if len(urls) == 0 {
		address := os.Getenv(envEsAddr)
		port := os.Getenv(envEsPort)
		if port == "" {
			port = "9200" // default port
		}
		if address == "" {
			address = "localhost" // default address
		}
		urls = []string{fmt.Sprintf("http://%s:%s", address, port)}
	}

	return &ElasticsearchV8{addresses: urls}
}

func (e *ElasticsearchV8) client() (*elasticsearch.Client, error) {
	retryBackoff := backoff.NewExponentialBackOff()

	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses: e.addresses,

		// Retry on 429 TooManyRequests statuses
		RetryOnStatus: []int{502, 503, 504, 429},

		RetryBackoff: func(i int) time.Duration {
			if i == 1 {
				retryBackoff.Reset()
			}
			return retryBackoff.NextBackOff()
		},

		MaxRetries: 5,
	})
}

// Write indexes each transaction under its ID, so re-exporting a session
// overwrites rather than duplicates.
func (e *ElasticsearchV8) Write(ctx context.Context, txns []domain.Transaction) error {
	es, err := e.client()
	if err != nil {
		return err
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         esIndex,
		FlushBytes:    esFlush,
		Client:        es,
		NumWorkers:    4,
		FlushInterval: 10 * time.Second,
	})
	if err != nil {
		return err
	}

	res, err := es.Indices.Create(esIndex)
	if err != nil {
		log.Println("attempted to make index", esIndex, err)
	} else {
		res.Body.Close()
	}

	for i := range txns {
		t := txns[i]
		data, err := t.JSON()
		if err != nil {
			return err
		}

		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: t.ID,
				Body:       bytes.NewReader(data),
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					if err != nil {
						log.Printf("failed to index transaction %s: %s\n", item.DocumentID, err)
					} else {
						log.Printf("failed to index transaction %s: %s %s\n", item.DocumentID, res.Error.Type, res.Error.Reason)
					}
				},
			},
		)
		if err != nil {
			return err
		}
	}

	if err := bi.Close(ctx); err != nil {
		return err
	}

	biStats := bi.Stats()
	if biStats.NumFailed > 0 {
		log.Printf("Indexed [%d] transactions with [%d] errors\n", int64(biStats.NumFlushed), int64(biStats.NumFailed))
		return fmt.Errorf("failed indexing %d transactions", int64(biStats.NumFailed))
	}

	log.Printf("Indexed [%d] transactions\n", int64(biStats.NumFlushed))
	return nil
}
