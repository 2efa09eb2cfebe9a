package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOutstandingTotal(t *testing.T) {
	bills := []Bill{
		{ID: "1", Name: "Rent", Amount: amt("1200"), Paid: false},
		{ID: "2", Name: "Internet", Amount: amt("80"), Paid: true},
		{ID: "3", Name: "Power", Amount: amt("55.25"), Paid: false},
	}

	total := OutstandingTotal(bills)
	assert.True(t, total.Equal(amt("1255.25")), "got %s", total)
}

func TestOutstandingTotalEmpty(t *testing.T) {
	assert.True(t, OutstandingTotal(nil).IsZero())
}

func TestNetPay(t *testing.T) {
	bills := []Bill{
		{ID: "1", Name: "Rent", Amount: amt("1200"), Paid: false},
	}
	paychecks := []Paycheck{
		{ID: "a", Amount: amt("2000")},
	}

	assert.Equal(t, "$1200.00", FormatUSD(OutstandingTotal(bills)))
	assert.Equal(t, "$800.00", FormatUSD(NetPay(paychecks, bills)))

	// Marking the bill paid removes it from the outstanding total.
	bills[0].Paid = true
	assert.Equal(t, "$0.00", FormatUSD(OutstandingTotal(bills)))
	assert.Equal(t, "$2000.00", FormatUSD(NetPay(paychecks, bills)))
}

func TestNetPayCanGoNegative(t *testing.T) {
	bills := []Bill{{ID: "1", Amount: amt("300")}}
	paychecks := []Paycheck{{ID: "a", Amount: amt("100")}}

	assert.Equal(t, "-$200.00", FormatUSD(NetPay(paychecks, bills)))
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1200", "$1200.00"},
		{"55.2", "$55.20"},
		{"0", "$0.00"},
		{"-50.5", "-$50.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSD(amt(tt.in)), "FormatUSD(%s)", tt.in)
	}
}
