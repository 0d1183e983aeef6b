package models

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DomainState is the whole persisted application state: the five entity
// collections plus the theme flag. It is serialized wholesale to a single
// named snapshot after every mutation and reloaded wholesale at startup.
type DomainState struct {
	Transactions          []Transaction          `json:"transactions"`
	Budgets               []Budget               `json:"budgets"`
	RecurringTransactions []RecurringTransaction `json:"recurring_transactions"`
	Goals                 []Goal                 `json:"goals"`
	Notes                 []Note                 `json:"notes"`
	Profile               Profile                `json:"profile"`
	Theme                 string                 `json:"theme"`
}

// NewDomainState returns an empty state with the default theme.
func NewDomainState() *DomainState {
	return &DomainState{
		Transactions:          []Transaction{},
		Budgets:               []Budget{},
		RecurringTransactions: []RecurringTransaction{},
		Goals:                 []Goal{},
		Notes:                 []Note{},
		Theme:                 ThemeLight,
	}
}
