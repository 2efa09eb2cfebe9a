package model

import "github.com/shopspring/decimal"

// PayType classifies how a paycheck amount is earned.
type PayType string

const (
	PayTypeHourly PayType = "hourly"
	PayTypeSalary PayType = "salary"
)

// Pay periods the client offers on creation. The API stores the field as free
// text, so other values returned by the server are rendered verbatim.
const (
	PayPeriodWeekly   = "weekly"
	PayPeriodBiweekly = "biweekly"
	PayPeriodMonthly  = "monthly"
)

// Paycheck is an income event with an amount and recurrence period.
type Paycheck struct {
	ID        string          `json:"_id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Type      PayType         `json:"type"`
	PayPeriod string          `json:"payPeriod"`
	Payday    Date            `json:"payday"`
}
