package model

import "github.com/shopspring/decimal"

// OutstandingTotal sums the amounts of unpaid bills. Paid bills contribute
// nothing.
func OutstandingTotal(bills []Bill) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bills {
		if !b.Paid {
			total = total.Add(b.Amount)
		}
	}
	return total
}

// NetPay is total paycheck income minus the outstanding bill total.
func NetPay(paychecks []Paycheck, bills []Bill) decimal.Decimal {
	income := decimal.Zero
	for _, p := range paychecks {
		income = income.Add(p.Amount)
	}
	return income.Sub(OutstandingTotal(bills))
}

// FormatUSD renders an amount with a dollar sign and two decimal places.
func FormatUSD(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
