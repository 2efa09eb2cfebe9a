package calendar

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billcal-dev/billcal/internal/model"
)

func TestRender(t *testing.T) {
	svc := seededService()
	svc.bills[0].DueDate = model.NewDate(2026, time.September, 1)
	svc.bills[0].Recurring = true
	svc.paychecks[0].Payday = model.NewDate(2026, time.September, 15)
	svc.paychecks[0].Type = model.PayTypeSalary
	svc.paychecks[0].PayPeriod = model.PayPeriodMonthly

	v := NewView(svc)
	v.Load(context.Background())
	require.NoError(t, v.LoadErr)

	var buf bytes.Buffer
	v.Render(&buf, 2026, time.September)
	out := buf.String()

	assert.Contains(t, out, "September 2026")
	assert.Contains(t, out, "Total bills:     $1200.00")
	assert.Contains(t, out, "Bring-home pay:  $800.00")
	assert.Contains(t, out, "Rent")
	assert.Contains(t, out, "unpaid")
	assert.Contains(t, out, "monthly")
	assert.Contains(t, out, "Job")
	assert.Contains(t, out, "  1!", "due date marked on the grid")
	assert.Contains(t, out, " 15$", "payday marked on the grid")
}

func TestRenderEmptyLists(t *testing.T) {
	v := NewView(&fakeService{})
	v.Load(context.Background())

	var buf bytes.Buffer
	v.Render(&buf, 2026, time.September)
	out := buf.String()

	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "Total bills:     $0.00")
	assert.Contains(t, out, "Bring-home pay:  $0.00")
}

func TestMonthGridShape(t *testing.T) {
	v := NewView(&fakeService{})

	var buf bytes.Buffer
	v.writeMonthGrid(&buf, 2026, time.September)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	// September 2026 starts on a Tuesday and has 30 days.
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, " Su  Mo  Tu  We  Th  Fr  Sa", lines[1])
	assert.Contains(t, lines[2], "  1")
	assert.NotContains(t, lines[2], "30")
	assert.Contains(t, buf.String(), " 30")
}
