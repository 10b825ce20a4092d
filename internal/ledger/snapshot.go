// Package ledger owns the spreadsheet-backed ledger: the in-memory snapshot
// of its three record collections, the workbook codec, the cloud object
// store behind it, and the writer that appends records. Records are only
// ever created here, never updated or deleted.
package ledger

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/domain"
)

// Snapshot is the whole ledger loaded into memory. Every store operation is
// a full-document round trip: load the snapshot, mutate it, save it back.
type Snapshot struct {
	Operations []domain.Operation
	Revenue    []domain.Revenue
	Expenses   []domain.Expense
}

const customerIDPrefix = "CW"

// NextCustomerID scans existing operations for the highest numeric suffix of
// "CW"-prefixed customer IDs and returns the successor, zero-padded to three
// digits. IDs with unparseable suffixes are skipped. An empty ledger starts
// at CW001.
//
// The sequence is derived from current rows, not a persisted counter, so
// concurrent writers can mint the same ID; the store's save precondition is
// what catches the race.
func NextCustomerID(ops []domain.Operation) string {
	maxNum := 0
	for _, op := range ops {
		if !strings.HasPrefix(op.CustomerID, customerIDPrefix) {
			continue
		}
		n, err := strconv.Atoi(op.CustomerID[len(customerIDPrefix):])
		if err != nil {
			continue
		}
		if n > maxNum {
			maxNum = n
		}
	}
	return fmt.Sprintf("%s%03d", customerIDPrefix, maxNum+1)
}

// RandomCustomerID is the best-effort fallback when the ledger cannot be
// scanned: a random three-digit suffix. Not guaranteed unique.
func RandomCustomerID() string {
	return fmt.Sprintf("%s%03d", customerIDPrefix, 100+rand.IntN(900))
}

// revenueTransactionID numbers a revenue row by its position in the sheet.
func revenueTransactionID(position int) string {
	return fmt.Sprintf("REV%03d", position)
}

// expenseTransactionID numbers an expense row by its position in the sheet.
func expenseTransactionID(position int) string {
	return fmt.Sprintf("EXP%03d", position)
}
