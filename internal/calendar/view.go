// Package calendar holds the client-side view of bills and paychecks: the
// cached lists, their mutations, and the monthly summary.
package calendar

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/billcal-dev/billcal/internal/model"
)

// Service is the slice of the API client the view needs.
type Service interface {
	ListBills(ctx context.Context) ([]model.Bill, error)
	ListPaychecks(ctx context.Context) ([]model.Paycheck, error)
	MarkBillPaid(ctx context.Context, id string) error
	DeleteBill(ctx context.Context, id string) error
	DeletePaycheck(ctx context.Context, id string) error
}

// View caches the server's bill and paycheck lists for one invocation.
// Mutations are applied locally only after the server confirms them.
type View struct {
	svc Service

	Bills     []model.Bill
	Paychecks []model.Paycheck

	// LoadErr records a failed initial fetch. Whatever data did arrive is
	// kept and rendered.
	LoadErr error
}

// NewView creates a View backed by the given service.
func NewView(svc Service) *View {
	return &View{svc: svc}
}

// Load fetches bills and paychecks concurrently and waits for both.
func (v *View) Load(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bills, err := v.svc.ListBills(gctx)
		if err != nil {
			return fmt.Errorf("fetching bills: %w", err)
		}
		v.Bills = bills
		return nil
	})
	g.Go(func() error {
		paychecks, err := v.svc.ListPaychecks(gctx)
		if err != nil {
			return fmt.Errorf("fetching paychecks: %w", err)
		}
		v.Paychecks = paychecks
		return nil
	})
	v.LoadErr = g.Wait()
}

// AddBill appends a server-created bill to the local list.
func (v *View) AddBill(b model.Bill) {
	v.Bills = append(v.Bills, b)
}

// AddPaycheck appends a server-created paycheck to the local list.
func (v *View) AddPaycheck(p model.Paycheck) {
	v.Paychecks = append(v.Paychecks, p)
}

// MarkBillPaid asks the server to flag the bill paid, then flips the local
// copy. The flip is one-way; local state is untouched when the request fails.
func (v *View) MarkBillPaid(ctx context.Context, id string) error {
	if err := v.svc.MarkBillPaid(ctx, id); err != nil {
		return err
	}
	for i := range v.Bills {
		if v.Bills[i].ID == id {
			v.Bills[i].Paid = true
		}
	}
	return nil
}

// DeleteBill asks the server to remove the bill, then drops the matching
// local entry. An identifier the local list never held is a local no-op.
func (v *View) DeleteBill(ctx context.Context, id string) error {
	if err := v.svc.DeleteBill(ctx, id); err != nil {
		return err
	}
	for i, b := range v.Bills {
		if b.ID == id {
			v.Bills = append(v.Bills[:i], v.Bills[i+1:]...)
			break
		}
	}
	return nil
}

// DeletePaycheck asks the server to remove the paycheck, then drops the
// matching local entry.
func (v *View) DeletePaycheck(ctx context.Context, id string) error {
	if err := v.svc.DeletePaycheck(ctx, id); err != nil {
		return err
	}
	for i, p := range v.Paychecks {
		if p.ID == id {
			v.Paychecks = append(v.Paychecks[:i], v.Paychecks[i+1:]...)
			break
		}
	}
	return nil
}

// OutstandingTotal is the sum of unpaid bill amounts, recomputed from the
// current list.
func (v *View) OutstandingTotal() decimal.Decimal {
	return model.OutstandingTotal(v.Bills)
}

// NetPay is total paycheck income minus the outstanding bill total.
func (v *View) NetPay() decimal.Decimal {
	return model.NetPay(v.Paychecks, v.Bills)
}
