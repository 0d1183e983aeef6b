package services

import (
	"log/slog"
	"sort"

	"wisewallet/internal/models"
	"wisewallet/internal/store"

	"github.com/google/uuid"
)

type recurringProcessor struct {
	store   *store.Store
	metrics *Metrics
}

// NewRecurringProcessor creates the materializer that turns active
// recurring templates into concrete ledger transactions on their due day.
func NewRecurringProcessor(st *store.Store, metrics *Metrics) RecurringProcessorInterface {
	return &recurringProcessor{store: st, metrics: metrics}
}

// Process materializes every active template whose day of month matches
// today, at most once per calendar day. A transaction with the same
// date, the same description, and the recurring flag set is the
// idempotence guard, so running Process twice on the same day never
// duplicates a bill. Templates are processed independently: one
// malformed template is skipped without aborting the batch.
func (p *recurringProcessor) Process(today models.Date) int {
	materialized := 0
	checked := 0

	p.store.Mutate(func(state *models.DomainState) {
		for i := range state.RecurringTransactions {
			template := &state.RecurringTransactions[i]
			if !template.IsDueOn(today) {
				continue
			}
			checked++

			if err := template.Validate(); err != nil {
				slog.Warn("skipping malformed recurring template",
					"template_id", template.ID,
					"description", template.Description,
					"error", err)
				continue
			}

			if hasMaterialization(state.Transactions, template.Description, today) {
				continue
			}

			state.Transactions = append(state.Transactions, models.Transaction{
				ID:           uuid.New(),
				Type:         template.Type,
				Amount:       template.Amount,
				Category:     template.Category,
				Description:  template.Description,
				Date:         today,
				IsRecurring:  true,
				RecurringDay: template.DayOfMonth,
			})
			materialized++

			slog.Info("materialized recurring transaction",
				"template_id", template.ID,
				"description", template.Description,
				"type", template.Type,
				"date", today.String())
		}
	})

	for i := 0; i < materialized; i++ {
		p.metrics.RecordMaterialized()
	}

	slog.Info("recurring processing complete",
		"date", today.String(),
		"due", checked,
		"materialized", materialized)

	return materialized
}

// hasMaterialization reports whether a recurring transaction with this
// description already landed in the ledger on the given day.
func hasMaterialization(transactions []models.Transaction, description string, day models.Date) bool {
	for i := range transactions {
		txn := &transactions[i]
		if txn.IsRecurring && txn.Description == description && txn.Date.SameDay(day) {
			return true
		}
	}
	return false
}

// Upcoming lists active templates annotated with their next due date on
// or after today, soonest first. Inactive templates are never due.
func (p *recurringProcessor) Upcoming(today models.Date) []models.UpcomingBill {
	var bills []models.UpcomingBill

	p.store.View(func(state *models.DomainState) {
		bills = make([]models.UpcomingBill, 0, len(state.RecurringTransactions))
		for _, template := range state.RecurringTransactions {
			if !template.IsActive {
				continue
			}
			bills = append(bills, models.UpcomingBill{
				RecurringTransaction: template,
				NextDue:              template.NextDueDate(today),
			})
		}
	})

	sort.Slice(bills, func(i, j int) bool {
		return bills[i].NextDue.Before(bills[j].NextDue.Time)
	})

	return bills
}
