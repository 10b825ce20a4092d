// Package analytics derives aggregate business metrics and textual reports
// from a full ledger snapshot. Everything here is read-only over the store.
package analytics

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/domain"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/ledger"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Engine computes business metrics over ledger snapshots.
type Engine struct {
	store ledger.Store
	owner string
	log   zerolog.Logger
}

// NewEngine creates an analytics engine. ownerName is used in report wording.
func NewEngine(store ledger.Store, ownerName string, log zerolog.Logger) *Engine {
	return &Engine{store: store, owner: ownerName, log: log}
}

// ServicePerformance aggregates revenue rows per service type.
type ServicePerformance struct {
	Revenue         decimal.Decimal
	Count           int
	UniqueCustomers int
}

// CustomerJourney aggregates one customer's history across both sheets.
type CustomerJourney struct {
	Name              string
	ServicesCompleted int
	TotalSpent        decimal.Decimal
	LastServiceDate   civil.Date
	ServiceTypes      []string
	PaymentMethods    []string
	Notes             []string
}

// BusinessData is the full analytics snapshot over one ledger load.
type BusinessData struct {
	Operations []domain.Operation
	Revenue    []domain.Revenue
	Expenses   []domain.Expense

	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal // absolute value of expense outflows
	NetProfit     decimal.Decimal
	PaidRevenue   decimal.Decimal

	ProfitMargin   float64 // percent; 0 when revenue is 0
	CompletionRate float64 // percent of operations marked completed
	PaymentRate    float64 // percent of revenue already paid

	ServicePerformance map[string]*ServicePerformance
	CustomerJourney    map[string]*CustomerJourney
	ExpenseByCategory  map[string]decimal.Decimal

	TotalCustomers  int
	RepeatCustomers int
}

// LoadBusinessData loads the full ledger snapshot and computes every derived
// metric. Returns an error when the store is unreachable; report helpers
// convert that into an apology reply.
func (e *Engine) LoadBusinessData(ctx context.Context) (*BusinessData, error) {
	snap, err := e.store.LoadSnapshot(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("Failed to load business data")
		return nil, err
	}

	data := &BusinessData{
		Operations:         snap.Operations,
		Revenue:            snap.Revenue,
		Expenses:           snap.Expenses,
		ServicePerformance: make(map[string]*ServicePerformance),
		CustomerJourney:    make(map[string]*CustomerJourney),
		ExpenseByCategory:  make(map[string]decimal.Decimal),
	}

	for _, rev := range snap.Revenue {
		data.TotalRevenue = data.TotalRevenue.Add(rev.Amount)
		if rev.PaymentStatus == domain.PaymentStatusPaid {
			data.PaidRevenue = data.PaidRevenue.Add(rev.Amount)
		}
	}
	// Expense amounts are stored negative; totals use the magnitude.
	for _, exp := range snap.Expenses {
		amount := exp.Amount.Abs()
		data.TotalExpenses = data.TotalExpenses.Add(amount)
		data.ExpenseByCategory[exp.Category] = data.ExpenseByCategory[exp.Category].Add(amount)
	}
	data.NetProfit = data.TotalRevenue.Sub(data.TotalExpenses)

	if data.TotalRevenue.IsPositive() {
		data.ProfitMargin, _ = data.NetProfit.Div(data.TotalRevenue).Mul(decimal.NewFromInt(100)).Float64()
		data.PaymentRate, _ = data.PaidRevenue.Div(data.TotalRevenue).Mul(decimal.NewFromInt(100)).Float64()
	}

	customersPerService := make(map[string]map[string]struct{})
	for _, rev := range snap.Revenue {
		perf := data.ServicePerformance[rev.ServiceType]
		if perf == nil {
			perf = &ServicePerformance{}
			data.ServicePerformance[rev.ServiceType] = perf
			customersPerService[rev.ServiceType] = make(map[string]struct{})
		}
		perf.Revenue = perf.Revenue.Add(rev.Amount)
		perf.Count++
		customersPerService[rev.ServiceType][rev.CustomerID] = struct{}{}
	}
	for serviceType, customers := range customersPerService {
		data.ServicePerformance[serviceType].UniqueCustomers = len(customers)
	}

	completed := 0
	for _, op := range snap.Operations {
		if op.ServiceCompleted == domain.ServiceCompletedYes {
			completed++
		}

		journey := data.CustomerJourney[op.CustomerID]
		if journey == nil {
			journey = &CustomerJourney{Name: op.CustomerName}
			data.CustomerJourney[op.CustomerID] = journey
		}
		journey.ServicesCompleted++
		journey.ServiceTypes = append(journey.ServiceTypes, op.ServiceType)
		journey.Notes = append(journey.Notes, op.Notes)
		journey.LastServiceDate = op.ServiceDate

		// Join against Revenue by customer ID. Quadratic over the two
		// sheets, which is fine at this ledger's scale.
		for _, rev := range snap.Revenue {
			if rev.CustomerID == op.CustomerID {
				journey.TotalSpent = journey.TotalSpent.Add(rev.Amount)
				journey.PaymentMethods = append(journey.PaymentMethods, rev.PaymentMethod)
			}
		}
	}
	if len(snap.Operations) > 0 {
		data.CompletionRate = float64(completed) / float64(len(snap.Operations)) * 100
	}

	data.TotalCustomers = len(data.CustomerJourney)
	for _, journey := range data.CustomerJourney {
		if journey.ServicesCompleted > 1 {
			data.RepeatCustomers++
		}
	}

	return data, nil
}
