package calendar

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/billcal-dev/billcal/internal/model"
)

// Render writes the month grid, the monthly summary, and both tables.
func (v *View) Render(w io.Writer, year int, month time.Month) {
	v.writeMonthGrid(w, year, month)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Monthly summary")
	fmt.Fprintf(w, "  Total bills:     %s\n", model.FormatUSD(v.OutstandingTotal()))
	fmt.Fprintf(w, "  Bring-home pay:  %s\n", model.FormatUSD(v.NetPay()))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bills")
	WriteBillTable(w, v.Bills)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Paychecks")
	WritePaycheckTable(w, v.Paychecks)
}

// writeMonthGrid prints a Su..Sa calendar marking bill due dates and paydays.
func (v *View) writeMonthGrid(w io.Writer, year int, month time.Month) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	due := make(map[int]bool)
	for _, b := range v.Bills {
		if b.DueDate.Year() == year && b.DueDate.Month() == month {
			due[b.DueDate.Day()] = true
		}
	}
	pay := make(map[int]bool)
	for _, p := range v.Paychecks {
		if p.Payday.Year() == year && p.Payday.Month() == month {
			pay[p.Payday.Day()] = true
		}
	}

	fmt.Fprintf(w, "%s %d\n", month, year)
	fmt.Fprintln(w, " Su  Mo  Tu  We  Th  Fr  Sa")

	weekday := int(first.Weekday())
	for i := 0; i < weekday; i++ {
		fmt.Fprint(w, "    ")
	}
	for day := 1; day <= daysInMonth; day++ {
		mark := byte(' ')
		switch {
		case due[day] && pay[day]:
			mark = '*'
		case due[day]:
			mark = '!'
		case pay[day]:
			mark = '$'
		}
		fmt.Fprintf(w, "%3d%c", day, mark)
		weekday++
		if weekday == 7 {
			fmt.Fprintln(w)
			weekday = 0
		}
	}
	if weekday != 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "  ! bill due   $ payday   * both")
}

// WriteBillTable prints bills in server order.
func WriteBillTable(w io.Writer, bills []model.Bill) {
	if len(bills) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tAMOUNT\tDUE\tRECURRING\tSTATUS")
	for _, b := range bills {
		recurring := "-"
		if b.Recurring {
			recurring = "monthly"
		}
		status := "unpaid"
		if b.Paid {
			status = "paid"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.Name, model.FormatUSD(b.Amount), b.DueDate, recurring, status)
	}
	tw.Flush()
}

// WritePaycheckTable prints paychecks in server order.
func WritePaycheckTable(w io.Writer, paychecks []model.Paycheck) {
	if len(paychecks) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tAMOUNT\tTYPE\tPERIOD\tPAYDAY")
	for _, p := range paychecks {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, model.FormatUSD(p.Amount), p.Type, p.PayPeriod, p.Payday)
	}
	tw.Flush()
}
