// Package store owns the process-wide domain state. All reads and
// mutations go through an explicitly injected *Store rather than ambient
// globals, and every successful mutation fires the change listeners so
// the caller can persist a snapshot.
package store

import (
	"sync"
	"time"

	"wisewallet/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Listener is notified with the full state after every mutation. The
// notification is fire-and-forget: listener failures are the listener's
// problem and never surface to the mutating caller.
type Listener func(state *models.DomainState)

// Store is the single owner of the domain state. Operations are plain
// synchronous functions over the in-memory collections; the mutex exists
// only because HTTP serving is concurrent, there is no internal
// scheduling or background work.
type Store struct {
	mu        sync.RWMutex
	state     *models.DomainState
	listeners []Listener
}

// New wraps an initial state, typically loaded from a snapshot or seeded
// with defaults.
func New(state *models.DomainState) *Store {
	if state == nil {
		state = models.NewDomainState()
	}
	return &Store{state: state}
}

// Subscribe registers a change listener. Not safe to call concurrently
// with mutations; wire subscriptions during startup.
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Mutate runs fn under the write lock and notifies listeners afterwards.
// Compound operations (contribute-and-celebrate, check-then-materialize)
// use this so no other mutation interleaves with their read-then-write.
func (s *Store) Mutate(fn func(state *models.DomainState)) {
	s.mu.Lock()
	fn(s.state)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	for _, l := range s.listeners {
		l(snapshot)
	}
}

// View runs fn under the read lock.
func (s *Store) View(fn func(state *models.DomainState)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// snapshotLocked deep-copies the state so listeners and callers never
// alias the live collections.
func (s *Store) snapshotLocked() *models.DomainState {
	copied := *s.state
	copied.Transactions = append([]models.Transaction(nil), s.state.Transactions...)
	copied.Budgets = append([]models.Budget(nil), s.state.Budgets...)
	copied.RecurringTransactions = append([]models.RecurringTransaction(nil), s.state.RecurringTransactions...)
	copied.Goals = make([]models.Goal, len(s.state.Goals))
	for i, g := range s.state.Goals {
		g.MilestonesReached = append([]int(nil), g.MilestonesReached...)
		copied.Goals[i] = g
	}
	copied.Notes = append([]models.Note(nil), s.state.Notes...)
	return &copied
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() *models.DomainState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// --- Ledger ---

// AddTransaction assigns a fresh id, appends the record preserving
// insertion order, and returns the stored transaction. No validation is
// enforced here; amount positivity is checked at the API boundary.
func (s *Store) AddTransaction(txn models.Transaction) models.Transaction {
	txn.ID = uuid.New()
	s.Mutate(func(state *models.DomainState) {
		state.Transactions = append(state.Transactions, txn)
	})
	return txn
}

// UpdateTransaction applies a partial update. An unknown id is a
// swallowed not-found as far as the ledger is concerned; the returned
// flag lets the HTTP layer report it without changing engine semantics.
func (s *Store) UpdateTransaction(id uuid.UUID, patch models.TransactionPatch) bool {
	found := false
	s.Mutate(func(state *models.DomainState) {
		for i := range state.Transactions {
			if state.Transactions[i].ID == id {
				state.Transactions[i].Apply(patch)
				found = true
				return
			}
		}
	})
	return found
}

// DeleteTransaction removes a transaction by id; unknown ids are a no-op.
func (s *Store) DeleteTransaction(id uuid.UUID) bool {
	found := false
	s.Mutate(func(state *models.DomainState) {
		for i := range state.Transactions {
			if state.Transactions[i].ID == id {
				state.Transactions = append(state.Transactions[:i], state.Transactions[i+1:]...)
				found = true
				return
			}
		}
	})
	return found
}

// Transactions lists the ledger in insertion order, not date order;
// consumers sort explicitly when they need date order.
func (s *Store) Transactions() []models.Transaction {
	var out []models.Transaction
	s.View(func(state *models.DomainState) {
		out = append([]models.Transaction(nil), state.Transactions...)
	})
	return out
}

// --- Budgets ---

// AddBudget appends a budget. Category is the unique key.
func (s *Store) AddBudget(budget models.Budget) error {
	var err error
	s.Mutate(func(state *models.DomainState) {
		for i := range state.Budgets {
			if state.Budgets[i].Category == budget.Category {
				err = models.ErrDuplicateBudget
				return
			}
		}
		state.Budgets = append(state.Budgets, budget)
	})
	return err
}

// UpdateBudget replaces the limit for a category; unknown categories are
// a no-op.
func (s *Store) UpdateBudget(category string, limit decimal.Decimal) bool {
	found := false
	s.Mutate(func(state *models.DomainState) {
		for i := range state.Budgets {
			if state.Budgets[i].Category == category {
				state.Budgets[i].Limit = limit
				found = true
				return
			}
		}
	})
	return found
}

// DeleteBudget removes a budget by category; unknown categories are a
// no-op. Transactions in that category stay in the ledger as untracked
// spend.
func (s *Store) DeleteBudget(category string) bool {
	found := false
	s.Mutate(func(state *models.DomainState) {
		for i := range state.Budgets {
			if state.Budgets[i].Category == category {
				state.Budgets = append(state.Budgets[:i], state.Budgets[i+1:]...)
				found = true
				return
			}
		}
	})
	return found
}

// Budgets lists the budget definitions.
func (s *Store) Budgets() []models.Budget {
	var out []models.Budget
	s.View(func(state *models.DomainState) {
		out = append([]models.Budget(nil), state.Budgets...)
	})
	return out
}

// --- Recurring templates ---

// AddRecurring assigns a fresh id and appends the template.
func (s *Store) AddRecurring(template models.RecurringTransaction) models.RecurringTransaction {
	template.ID = uuid.New()
	s.Mutate(func(state *models.DomainState) {
		state.RecurringTransactions = append(state.RecurringTransactions, template)
	})
	return template
}

// UpdateRecurring applies a partial update; unknown ids are a no-op.
func (s *Store) UpdateRecurring(id uuid.UUID, patch models.RecurringPatch) bool {
	found := false
	s.Mutate(func(state *models.DomainState) {
		for i := range state.RecurringTransactions {
			if state.RecurringTransactions[i].ID == id {
				state.RecurringTransactions[i].Apply(patch)
				found = true
				return
			}
		}
	})
	return found
}

// DeleteRecurring removes a template by id; unknown ids are a no-op.
func (s *Store) DeleteRecurring(id uuid.UUID) bool {
	found := false
	s.Mutate(func(state *models.DomainState) {
		for i := range state.RecurringTransactions {
			if state.RecurringTransactions[i].ID == id {
				state.RecurringTransactions = append(state.RecurringTransactions[:i], state.RecurringTransactions[i+1:]...)
				found = true
				return
			}
		}
	})
	return found
}

// RecurringTransactions lists the templates, active and inactive.
func (s *Store) RecurringTransactions() []models.RecurringTransaction {
	var out []models.RecurringTransaction
	s.View(func(state *models.DomainState) {
		out = append([]models.RecurringTransaction(nil), state.RecurringTransactions...)
	})
	return out
}

// --- Goals ---

// AddGoal assigns a fresh id, starts with no milestones reached, and
// appends the goal.
func (s *Store) AddGoal(goal models.Goal) models.Goal {
	goal.ID = uuid.New()
	goal.MilestonesReached = []int{}
	s.Mutate(func(state *models.DomainState) {
		state.Goals = append(state.Goals, goal)
	})
	return goal
}

// UpdateGoal applies a partial update; unknown ids are a no-op. The patch
// may overwrite CurrentAmount and MilestonesReached directly, so callers
// must take care not to silently regress milestones.
func (s *Store) UpdateGoal(id uuid.UUID, patch models.GoalPatch) bool {
	found := false
	s.Mutate(func(state *models.DomainState) {
		for i := range state.Goals {
			if state.Goals[i].ID == id {
				state.Goals[i].Apply(patch)
				found = true
				return
			}
		}
	})
	return found
}

// DeleteGoal removes a goal by id; unknown ids are a no-op.
func (s *Store) DeleteGoal(id uuid.UUID) bool {
	found := false
	s.Mutate(func(state *models.DomainState) {
		for i := range state.Goals {
			if state.Goals[i].ID == id {
				state.Goals = append(state.Goals[:i], state.Goals[i+1:]...)
				found = true
				return
			}
		}
	})
	return found
}

// Goals lists the goals.
func (s *Store) Goals() []models.Goal {
	var out []models.Goal
	s.View(func(state *models.DomainState) {
		out = make([]models.Goal, len(state.Goals))
		for i, g := range state.Goals {
			g.MilestonesReached = append([]int(nil), g.MilestonesReached...)
			out[i] = g
		}
	})
	return out
}

// Goal looks up a single goal by id.
func (s *Store) Goal(id uuid.UUID) (models.Goal, bool) {
	var goal models.Goal
	found := false
	s.View(func(state *models.DomainState) {
		for _, g := range state.Goals {
			if g.ID == id {
				g.MilestonesReached = append([]int(nil), g.MilestonesReached...)
				goal = g
				found = true
				return
			}
		}
	})
	return goal, found
}

// --- Notes ---

// AddNote creates a note with a fresh id and creation timestamp.
func (s *Store) AddNote(content string) models.Note {
	note := models.Note{
		ID:        uuid.New(),
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.Mutate(func(state *models.DomainState) {
		state.Notes = append(state.Notes, note)
	})
	return note
}

// UpdateNote replaces a note's content; unknown ids are a no-op.
func (s *Store) UpdateNote(id uuid.UUID, content string) bool {
	found := false
	s.Mutate(func(state *models.DomainState) {
		for i := range state.Notes {
			if state.Notes[i].ID == id {
				state.Notes[i].Content = content
				found = true
				return
			}
		}
	})
	return found
}

// DeleteNote removes a note by id; unknown ids are a no-op.
func (s *Store) DeleteNote(id uuid.UUID) bool {
	found := false
	s.Mutate(func(state *models.DomainState) {
		for i := range state.Notes {
			if state.Notes[i].ID == id {
				state.Notes = append(state.Notes[:i], state.Notes[i+1:]...)
				found = true
				return
			}
		}
	})
	return found
}

// Notes lists the notes.
func (s *Store) Notes() []models.Note {
	var out []models.Note
	s.View(func(state *models.DomainState) {
		out = append([]models.Note(nil), state.Notes...)
	})
	return out
}

// --- Profile & theme ---

// Profile returns the user profile.
func (s *Store) Profile() models.Profile {
	var p models.Profile
	s.View(func(state *models.DomainState) {
		p = state.Profile
	})
	return p
}

// UpdateProfile applies a partial profile update.
func (s *Store) UpdateProfile(patch models.ProfilePatch) models.Profile {
	var p models.Profile
	s.Mutate(func(state *models.DomainState) {
		state.Profile.Apply(patch)
		p = state.Profile
	})
	return p
}

// Theme returns the current theme flag.
func (s *Store) Theme() string {
	var theme string
	s.View(func(state *models.DomainState) {
		theme = state.Theme
	})
	return theme
}

// ToggleTheme flips between light and dark and returns the new value.
func (s *Store) ToggleTheme() string {
	var theme string
	s.Mutate(func(state *models.DomainState) {
		if state.Theme == models.ThemeDark {
			state.Theme = models.ThemeLight
		} else {
			state.Theme = models.ThemeDark
		}
		theme = state.Theme
	})
	return theme
}
