package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Analytics is a point in time summary over a set of transactions.
type Analytics struct {
	// sums over completed transactions only
	TotalSent     decimal.Decimal `json:"totalSent"`
	TotalReceived decimal.Decimal `json:"totalReceived"`
	NetBalance    decimal.Decimal `json:"netBalance"`

	TotalTransactions int `json:"totalTransactions"`

	ByGateway  map[string]int `json:"byGateway"`
	ByCurrency map[string]int `json:"byCurrency"`
	ByStatus   map[string]int `json:"byStatus"`
}

func (a Analytics) String() string {
	return fmt.Sprintf(
		"sent=%s received=%s net=%s transactions=%d",
		FormatAmount(a.TotalSent),
		FormatAmount(a.TotalReceived),
		FormatAmount(a.NetBalance),
		a.TotalTransactions,
	)
}
