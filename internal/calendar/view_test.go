package calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billcal-dev/billcal/internal/model"
)

type fakeService struct {
	bills        []model.Bill
	paychecks    []model.Paycheck
	billsErr     error
	paychecksErr error
	mutationErr  error

	markedPaid       []string
	deletedBills     []string
	deletedPaychecks []string
}

func (f *fakeService) ListBills(ctx context.Context) ([]model.Bill, error) {
	return f.bills, f.billsErr
}

func (f *fakeService) ListPaychecks(ctx context.Context) ([]model.Paycheck, error) {
	return f.paychecks, f.paychecksErr
}

func (f *fakeService) MarkBillPaid(ctx context.Context, id string) error {
	if f.mutationErr != nil {
		return f.mutationErr
	}
	f.markedPaid = append(f.markedPaid, id)
	return nil
}

func (f *fakeService) DeleteBill(ctx context.Context, id string) error {
	if f.mutationErr != nil {
		return f.mutationErr
	}
	f.deletedBills = append(f.deletedBills, id)
	return nil
}

func (f *fakeService) DeletePaycheck(ctx context.Context, id string) error {
	if f.mutationErr != nil {
		return f.mutationErr
	}
	f.deletedPaychecks = append(f.deletedPaychecks, id)
	return nil
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seededService() *fakeService {
	return &fakeService{
		bills: []model.Bill{
			{ID: "1", Name: "Rent", Amount: amt("1200"), Paid: false},
		},
		paychecks: []model.Paycheck{
			{ID: "a", Name: "Job", Amount: amt("2000")},
		},
	}
}

func TestLoad(t *testing.T) {
	v := NewView(seededService())
	v.Load(context.Background())

	require.NoError(t, v.LoadErr)
	require.Len(t, v.Bills, 1)
	require.Len(t, v.Paychecks, 1)
	assert.Equal(t, "$1200.00", model.FormatUSD(v.OutstandingTotal()))
	assert.Equal(t, "$800.00", model.FormatUSD(v.NetPay()))
}

func TestLoadBillsFailureKeepsPaychecks(t *testing.T) {
	svc := seededService()
	svc.billsErr = errors.New("boom")

	v := NewView(svc)
	v.Load(context.Background())

	require.Error(t, v.LoadErr)
	assert.Contains(t, v.LoadErr.Error(), "fetching bills")
	assert.Empty(t, v.Bills)
	assert.Len(t, v.Paychecks, 1, "the side that succeeded is kept")
}

func TestAddBillAppends(t *testing.T) {
	v := NewView(seededService())
	v.Load(context.Background())

	v.AddBill(model.Bill{ID: "2", Name: "Internet", Amount: amt("80")})

	require.Len(t, v.Bills, 2)
	assert.Equal(t, "2", v.Bills[1].ID, "new bill goes at the end")
	assert.False(t, v.Bills[1].Paid)
	assert.Equal(t, "$1280.00", model.FormatUSD(v.OutstandingTotal()))
}

func TestMarkBillPaid(t *testing.T) {
	svc := seededService()
	svc.bills = append(svc.bills, model.Bill{ID: "2", Name: "Internet", Amount: amt("80")})

	v := NewView(svc)
	v.Load(context.Background())

	require.NoError(t, v.MarkBillPaid(context.Background(), "1"))

	assert.Equal(t, []string{"1"}, svc.markedPaid)
	assert.True(t, v.Bills[0].Paid)
	assert.False(t, v.Bills[1].Paid, "other bills unaffected")
	assert.Equal(t, "$80.00", model.FormatUSD(v.OutstandingTotal()))
	assert.Equal(t, "$1920.00", model.FormatUSD(v.NetPay()))
}

func TestMarkBillPaidFailureLeavesState(t *testing.T) {
	svc := seededService()
	svc.mutationErr = errors.New("server unavailable")

	v := NewView(svc)
	v.Load(context.Background())

	require.Error(t, v.MarkBillPaid(context.Background(), "1"))
	assert.False(t, v.Bills[0].Paid)
}

func TestDeleteBill(t *testing.T) {
	svc := seededService()
	svc.bills = append(svc.bills, model.Bill{ID: "2", Name: "Internet", Amount: amt("80")})

	v := NewView(svc)
	v.Load(context.Background())

	require.NoError(t, v.DeleteBill(context.Background(), "1"))

	assert.Equal(t, []string{"1"}, svc.deletedBills)
	require.Len(t, v.Bills, 1)
	assert.Equal(t, "2", v.Bills[0].ID)
}

func TestDeleteBillUnknownID(t *testing.T) {
	svc := seededService()
	v := NewView(svc)
	v.Load(context.Background())

	// The request still goes out; the local list is untouched.
	require.NoError(t, v.DeleteBill(context.Background(), "nope"))
	assert.Equal(t, []string{"nope"}, svc.deletedBills)
	assert.Len(t, v.Bills, 1)
}

func TestDeletePaycheck(t *testing.T) {
	svc := seededService()
	v := NewView(svc)
	v.Load(context.Background())

	require.NoError(t, v.DeletePaycheck(context.Background(), "a"))

	assert.Equal(t, []string{"a"}, svc.deletedPaychecks)
	assert.Empty(t, v.Paychecks)
	assert.Equal(t, "-$1200.00", model.FormatUSD(v.NetPay()))
}
