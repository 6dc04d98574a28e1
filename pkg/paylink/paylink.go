// Package paylink makes shareable payment links. The link carries its own
// sealed payload so it can be checked without a lookup.
package paylink

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/voidshard/paydesk/pkg/crypto"
	"github.com/voidshard/paydesk/pkg/domain"
)

const tokenParam = "t"

var ErrInvalidLink = errors.New("invalid payment link")

// Payload is what a link promises to collect.
type Payload struct {
	ID          string    `json:"id"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Description string    `json:"description,omitempty"`
	Created     time.Time `json:"created"`
}

type Link struct {
	Payload
	URL string `json:"url"`
}

type Generator struct {
	base   url.URL
	sealer *crypto.Sealer
	now    func() time.Time
}

// NewGenerator returns a Generator issuing links under base, eg.
// https://pay.example.com -> https://pay.example.com/pay/<id>?t=<token>
func NewGenerator(base string, sealer *crypto.Sealer) (*Generator, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url needs a scheme & host, got %q", base)
	}
	u.RawQuery = ""
	u.Fragment = ""

	return &Generator{base: *u, sealer: sealer, now: time.Now}, nil
}

func (g *Generator) New(amount, currency, description string) (*Link, error) {
	normal, err := domain.NormalizeAmount(amount)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(currency) == "" {
		return nil, fmt.Errorf("currency is required")
	}

	p := Payload{
		ID:          strings.ReplaceAll(uuid.New().String(), "-", "")[:9],
		Amount:      normal,
		Currency:    currency,
		Description: description,
		Created:     g.now().UTC(),
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	token, err := g.sealer.Seal(data)
	if err != nil {
		return nil, err
	}

	u := g.base
	u.Path = path.Join("/", u.Path, "pay", p.ID)
	u.RawQuery = url.Values{tokenParam: []string{token}}.Encode()

	return &Link{Payload: p, URL: u.String()}, nil
}

// Verify checks a link was issued by this Generator (or one sharing its
// keys) and returns what it carries.
func (g *Generator) Verify(link string) (*Payload, error) {
	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	dir, id := path.Split(u.Path)
	if path.Base(dir) != "pay" || id == "" {
		return nil, fmt.Errorf("%w: unexpected path %q", ErrInvalidLink, u.Path)
	}

	token := u.Query().Get(tokenParam)
	if token == "" {
		return nil, fmt.Errorf("%w: no token", ErrInvalidLink)
	}

	data, err := g.sealer.Open(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	p := &Payload{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}
	if p.ID != id {
		return nil, fmt.Errorf("%w: id mismatch", ErrInvalidLink)
	}

	return p, nil
}
