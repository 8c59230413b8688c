package domain

// FinishLevel is the user-selected quality tier.
type FinishLevel string

const (
	FinishEconomico FinishLevel = "economico"
	FinishStandard  FinishLevel = "standard"
	FinishPremium   FinishLevel = "premium"
)

// UserPreferences are immutable per calculation call.
type UserPreferences struct {
	DIY           bool
	FinishLevel   FinishLevel
	BudgetCeiling *float64
	Purpose       string // e.g. "own_use", "rental", "resale"
}
