package services

import (
	"wisewallet/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ColorPalette assigns chart colors to new budgets and goals. The store
// holds colors as opaque strings, so the palette is the only place that
// knows the theme tokens.
type ColorPalette struct {
	colors []string
	next   int
}

func NewColorPalette() *ColorPalette {
	return &ColorPalette{
		colors: []string{
			"hsl(var(--chart-1))",
			"hsl(var(--chart-2))",
			"hsl(var(--chart-3))",
			"hsl(var(--chart-4))",
			"hsl(var(--chart-5))",
			"hsl(var(--chart-6))",
		},
	}
}

// Next cycles through the palette so consecutive budgets never share a
// color until the palette is exhausted.
func (p *ColorPalette) Next() string {
	c := p.colors[p.next%len(p.colors)]
	p.next++
	return c
}

var sampleExpenseCategories = []string{
	"Food & Dining", "Transportation", "Entertainment", "Shopping", "Utilities", "Healthcare",
}

// DefaultState builds the demo dataset seeded on first run: six budgets,
// three goals in progress, seven recurring templates, the current
// month's transactions, and faker-generated history for the trailing
// months so the analytics charts are populated from day one.
func DefaultState(today models.Date, seed uint64) *models.DomainState {
	faker := gofakeit.New(seed)
	palette := NewColorPalette()

	state := models.NewDomainState()

	for _, budget := range []struct {
		category string
		limit    int64
	}{
		{"Food & Dining", 5000},
		{"Transportation", 3000},
		{"Entertainment", 2000},
		{"Shopping", 4000},
		{"Utilities", 2500},
		{"Healthcare", 1500},
	} {
		state.Budgets = append(state.Budgets, models.Budget{
			Category: budget.category,
			Limit:    decimal.NewFromInt(budget.limit),
			Color:    palette.Next(),
		})
	}

	state.Goals = []models.Goal{
		{
			ID:                uuid.New(),
			Name:              "Emergency Fund",
			TargetAmount:      decimal.NewFromInt(50000),
			CurrentAmount:     decimal.NewFromInt(32500),
			Deadline:          models.NewDate(today.Year()+1, 6, 30),
			Icon:              "shield",
			Color:             "hsl(var(--chart-1))",
			MilestonesReached: []int{25, 50},
		},
		{
			ID:                uuid.New(),
			Name:              "New Car",
			TargetAmount:      decimal.NewFromInt(150000),
			CurrentAmount:     decimal.NewFromInt(45000),
			Deadline:          models.NewDate(today.Year()+2, 1, 15),
			Icon:              "car",
			Color:             "hsl(var(--chart-2))",
			MilestonesReached: []int{25},
		},
		{
			ID:                uuid.New(),
			Name:              "Vacation",
			TargetAmount:      decimal.NewFromInt(25000),
			CurrentAmount:     decimal.NewFromInt(18750),
			Deadline:          models.NewDate(today.Year()+1, 4, 1),
			Icon:              "plane",
			Color:             "hsl(var(--chart-3))",
			MilestonesReached: []int{25, 50, 75},
		},
	}

	state.RecurringTransactions = []models.RecurringTransaction{
		{ID: uuid.New(), Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(8500), Category: "Housing", Description: "Rent", DayOfMonth: 1, IsActive: true},
		{ID: uuid.New(), Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(1200), Category: "Utilities", Description: "Electricity Bill", DayOfMonth: 15, IsActive: true},
		{ID: uuid.New(), Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(450), Category: "Utilities", Description: "Internet", DayOfMonth: 5, IsActive: true},
		{ID: uuid.New(), Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(199), Category: "Entertainment", Description: "Netflix", DayOfMonth: 8, IsActive: true},
		{ID: uuid.New(), Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(149), Category: "Entertainment", Description: "Spotify", DayOfMonth: 12, IsActive: true},
		{ID: uuid.New(), Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(350), Category: "Transportation", Description: "Car Insurance", DayOfMonth: 20, IsActive: true},
		{ID: uuid.New(), Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(25000), Category: "Salary", Description: "Monthly Salary", DayOfMonth: 25, IsActive: true},
	}

	state.Transactions = currentMonthSamples(today)
	state.Transactions = append(state.Transactions, historySamples(today, faker)...)

	state.Profile = models.Profile{
		Name:  "John Doe",
		Email: "john.doe@example.com",
	}

	return state
}

func currentMonthSamples(today models.Date) []models.Transaction {
	month := today.StartOfMonth()
	txn := func(txnType string, amount int64, category, description string, day int) models.Transaction {
		return models.Transaction{
			ID:          uuid.New(),
			Type:        txnType,
			Amount:      decimal.NewFromInt(amount),
			Category:    category,
			Description: description,
			Date:        models.NewDate(month.Year(), month.Month(), day),
		}
	}

	return []models.Transaction{
		txn(models.TransactionTypeExpense, 450, "Food & Dining", "Grocery shopping", 8),
		txn(models.TransactionTypeExpense, 1200, "Transportation", "Fuel", 7),
		txn(models.TransactionTypeIncome, 25000, "Salary", "Monthly salary", 1),
		txn(models.TransactionTypeExpense, 350, "Entertainment", "Movie tickets", 6),
		txn(models.TransactionTypeExpense, 2500, "Shopping", "New clothes", 5),
		txn(models.TransactionTypeExpense, 1800, "Utilities", "Electricity bill", 4),
		txn(models.TransactionTypeIncome, 5000, "Freelance", "Side project", 3),
		txn(models.TransactionTypeExpense, 650, "Healthcare", "Medicine", 2),
	}
}

// historySamples fills the five months before today so MonthlySeries has
// something to chart. Amounts are random but each month stays below its
// income, keeping the demo savings rate positive.
func historySamples(today models.Date, faker *gofakeit.Faker) []models.Transaction {
	var history []models.Transaction

	for back := 1; back <= 5; back++ {
		month := today.StartOfMonth().AddMonths(-back)

		history = append(history, models.Transaction{
			ID:          uuid.New(),
			Type:        models.TransactionTypeIncome,
			Amount:      decimal.NewFromInt(25000),
			Category:    "Salary",
			Description: "Monthly salary",
			Date:        models.NewDate(month.Year(), month.Month(), 1),
		})

		spent := 4 + faker.IntRange(0, 3)
		for i := 0; i < spent; i++ {
			category := sampleExpenseCategories[faker.IntRange(0, len(sampleExpenseCategories)-1)]
			history = append(history, models.Transaction{
				ID:          uuid.New(),
				Type:        models.TransactionTypeExpense,
				Amount:      decimal.NewFromFloat(faker.Price(150, 2800)).Round(2),
				Category:    category,
				Description: faker.ProductName(),
				Date:        models.NewDate(month.Year(), month.Month(), faker.IntRange(1, 28)),
			})
		}
	}

	return history
}
