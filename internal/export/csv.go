// Package export writes CSV snapshots of the fetched bill and paycheck lists.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/billcal-dev/billcal/internal/model"
)

// BillHeader is the CSV header for bills.csv.
const BillHeader = "id,name,amount,due_date,recurring,paid"

// PaycheckHeader is the CSV header for paychecks.csv.
const PaycheckHeader = "id,name,amount,type,pay_period,payday"

const (
	// BillsFile and PaychecksFile are the snapshot file names.
	BillsFile     = "bills.csv"
	PaychecksFile = "paychecks.csv"

	billNumFields = 6
	billColID     = 0
	billColName   = 1
	billColAmount = 2
	billColDue    = 3
	billColRec    = 4
	billColPaid   = 5

	payNumFields  = 6
	payColID      = 0
	payColName    = 1
	payColAmount  = 2
	payColType    = 3
	payColPeriod  = 4
	payColPayday  = 5
)

// MarshalBill converts a Bill to a CSV row.
func MarshalBill(b model.Bill) []string {
	row := make([]string, billNumFields)
	row[billColID] = b.ID
	row[billColName] = b.Name
	row[billColAmount] = b.Amount.StringFixed(2)
	row[billColDue] = b.DueDate.String()
	row[billColRec] = strconv.FormatBool(b.Recurring)
	row[billColPaid] = strconv.FormatBool(b.Paid)
	return row
}

// MarshalPaycheck converts a Paycheck to a CSV row.
func MarshalPaycheck(p model.Paycheck) []string {
	row := make([]string, payNumFields)
	row[payColID] = p.ID
	row[payColName] = p.Name
	row[payColAmount] = p.Amount.StringFixed(2)
	row[payColType] = string(p.Type)
	row[payColPeriod] = p.PayPeriod
	row[payColPayday] = p.Payday.String()
	return row
}

// WriteBills writes the header and one row per bill.
func WriteBills(w io.Writer, bills []model.Bill) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(BillHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, b := range bills {
		if err := cw.Write(MarshalBill(b)); err != nil {
			return fmt.Errorf("writing bill %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePaychecks writes the header and one row per paycheck.
func WritePaychecks(w io.Writer, paychecks []model.Paycheck) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(PaycheckHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, p := range paychecks {
		if err := cw.Write(MarshalPaycheck(p)); err != nil {
			return fmt.Errorf("writing paycheck %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSnapshot writes bills.csv and paychecks.csv into dir, creating it as
// needed.
func WriteSnapshot(dir string, bills []model.Bill, paychecks []model.Paycheck) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	bf, err := os.Create(filepath.Join(dir, BillsFile))
	if err != nil {
		return fmt.Errorf("creating %s: %w", BillsFile, err)
	}
	defer bf.Close()
	if err := WriteBills(bf, bills); err != nil {
		return fmt.Errorf("writing %s: %w", BillsFile, err)
	}

	pf, err := os.Create(filepath.Join(dir, PaychecksFile))
	if err != nil {
		return fmt.Errorf("creating %s: %w", PaychecksFile, err)
	}
	defer pf.Close()
	if err := WritePaychecks(pf, paychecks); err != nil {
		return fmt.Errorf("writing %s: %w", PaychecksFile, err)
	}

	return nil
}
