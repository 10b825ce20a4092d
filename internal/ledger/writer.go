package ledger

import (
	"context"
	"fmt"

	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/domain"
	"github.com/rs/zerolog"
)

// Writer appends records to the ledger. Every save is a full load-mutate-save
// cycle against the store. The completion gate must have passed before a save
// is attempted; the writer assumes that contract and only re-checks the one
// field it cannot write without.
type Writer struct {
	store Store
	clock domain.Clock
	log   zerolog.Logger
}

// NewWriter creates a ledger writer.
func NewWriter(store Store, clock domain.Clock, log zerolog.Logger) *Writer {
	return &Writer{store: store, clock: clock, log: log}
}

// ServiceReceipt reports the IDs minted by a completed service save.
type ServiceReceipt struct {
	CustomerID    string
	TransactionID string
}

// SaveCompleteService appends one Operation row and one Revenue row sharing a
// freshly minted customer ID, then persists the whole snapshot. The two
// appends are not transactional: if the save fails they are lost together.
func (w *Writer) SaveCompleteService(ctx context.Context, info domain.ServiceInfo) (*ServiceReceipt, error) {
	if info.Amount == nil {
		return nil, fmt.Errorf("SaveCompleteService: amount is required")
	}

	snap, err := w.store.LoadSnapshot(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("Failed to load ledger for service save")
		return nil, err
	}

	customerID := NextCustomerID(snap.Operations)
	today := w.clock.Today()
	week := domain.WeekOfMonth(today)
	month := domain.MonthName(today)

	customerName := info.CustomerName
	if customerName == "" {
		customerName = domain.DefaultCustomerName
	}
	serviceType := info.ServiceType
	if serviceType == "" {
		serviceType = domain.DefaultServiceType
	}

	statusLabel := "Not yet Washed"
	if info.PaymentStatus == domain.PaymentStatusPaid {
		statusLabel = "Washed"
	}

	snap.Operations = append(snap.Operations, domain.Operation{
		CustomerID:       customerID,
		CustomerName:     customerName,
		ServiceDate:      today,
		WeekNumber:       week,
		Month:            month,
		ServiceCompleted: domain.ServiceCompletedYes,
		ServiceType:      serviceType,
		Notes:            "Logged via WhatsApp",
		Status:           "Completed",
	})

	transactionID := revenueTransactionID(len(snap.Revenue) + 1)
	snap.Revenue = append(snap.Revenue, domain.Revenue{
		TransactionID: transactionID,
		CustomerID:    customerID,
		ServiceDate:   today,
		Month:         month,
		ServiceType:   serviceType,
		Amount:        info.Amount.Abs(),
		PaymentStatus: info.PaymentStatus,
		PaymentMethod: info.PaymentMethod,
		Status:        statusLabel,
		WeekNumber:    week,
	})

	if err := w.store.SaveSnapshot(ctx, snap); err != nil {
		w.log.Error().Err(err).Str("customer_id", customerID).Msg("Failed to save ledger after service append")
		return nil, err
	}

	w.log.Info().
		Str("customer_id", customerID).
		Str("transaction_id", transactionID).
		Str("service_type", serviceType).
		Msg("Service logged")

	return &ServiceReceipt{CustomerID: customerID, TransactionID: transactionID}, nil
}

// SaveExpense appends one Expense row and persists the snapshot. The amount
// is stored as a negative magnitude regardless of the sign extracted.
func (w *Writer) SaveExpense(ctx context.Context, info domain.ExpenseInfo) (string, error) {
	if info.Amount == nil {
		return "", fmt.Errorf("SaveExpense: amount is required")
	}

	snap, err := w.store.LoadSnapshot(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("Failed to load ledger for expense save")
		return "", err
	}

	today := w.clock.Today()

	supplier := info.Supplier
	if supplier == "" {
		supplier = domain.DefaultSupplier
	}

	transactionID := expenseTransactionID(len(snap.Expenses) + 1)
	snap.Expenses = append(snap.Expenses, domain.Expense{
		TransactionID: transactionID,
		Date:          today,
		Month:         domain.MonthName(today),
		Category:      info.Category,
		Description:   info.Description,
		Amount:        info.Amount.Abs().Neg(),
		Supplier:      supplier,
		Status:        "Recorded",
		Notes:         "Added via WhatsApp",
	})

	if err := w.store.SaveSnapshot(ctx, snap); err != nil {
		w.log.Error().Err(err).Str("transaction_id", transactionID).Msg("Failed to save ledger after expense append")
		return "", err
	}

	w.log.Info().
		Str("transaction_id", transactionID).
		Str("category", info.Category).
		Msg("Expense logged")

	return transactionID, nil
}

// GenerateCustomerID mints the next customer ID from the current ledger.
// When the ledger cannot be loaded it degrades to a random ID rather than
// failing; uniqueness is best-effort in that case.
func (w *Writer) GenerateCustomerID(ctx context.Context) string {
	snap, err := w.store.LoadSnapshot(ctx)
	if err != nil {
		w.log.Warn().Err(err).Msg("Ledger unavailable, using random customer ID")
		return RandomCustomerID()
	}
	return NextCustomerID(snap.Operations)
}
