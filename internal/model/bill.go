// Package model holds the records exchanged with the Bill Calendar API. The
// client caches these lists per invocation; the server owns the real state.
package model

import "github.com/shopspring/decimal"

func init() {
	// The API exchanges amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Bill is a recurring or one-time payment obligation.
type Bill struct {
	ID        string          `json:"_id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   Date            `json:"dueDate"`
	Recurring bool            `json:"recurring"`
	Paid      bool            `json:"paid"`
}
