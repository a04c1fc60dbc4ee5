package domain

import "time"

// ResultRow is one year of the results table.
type ResultRow struct {
	Year            int     `json:"year" yaml:"year"`
	InvestmentValue float64 `json:"investmentValue" yaml:"investmentValue"`
	InterestYear    float64 `json:"interestYear" yaml:"interestYear"`
	TotalInterest   float64 `json:"totalInterest" yaml:"totalInterest"`
	InvestedCapital float64 `json:"investedCapital" yaml:"investedCapital"`
}

// ResultsView is what the user sees: the table, or a message when Valid is false.
type ResultsView struct {
	Valid             bool        `json:"valid" yaml:"valid"`
	Message           string      `json:"message,omitempty" yaml:"message,omitempty"`
	InitialInvestment float64     `json:"initialInvestment" yaml:"initialInvestment"`
	Rows              []ResultRow `json:"rows" yaml:"rows"`
	Summary           string      `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// CalculationRecord is a history entry for one non-empty calculation.
type CalculationRecord struct {
	ID            string          `json:"id" yaml:"id"`
	Input         InvestmentInput `json:"input" yaml:"input"`
	Years         int             `json:"years" yaml:"years"`
	FinalValue    float64         `json:"finalValue" yaml:"finalValue"`
	TotalInterest float64         `json:"totalInterest" yaml:"totalInterest"`
	CreatedAt     time.Time       `json:"createdAt" yaml:"createdAt"`
}
