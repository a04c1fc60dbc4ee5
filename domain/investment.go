package domain

// InvestmentInput holds the numeric parameters of a projection.
// ExpectedReturn is a yearly percentage (6 means 6%).
type InvestmentInput struct {
	InitialInvestment float64 `json:"initialInvestment" yaml:"initialInvestment"`
	AnnualInvestment  float64 `json:"annualInvestment" yaml:"annualInvestment"`
	ExpectedReturn    float64 `json:"expectedReturn" yaml:"expectedReturn"`
	Duration          int     `json:"duration" yaml:"duration"`
}

// InvestmentForm holds the raw text a user typed into the form fields.
type InvestmentForm struct {
	InitialInvestment string `json:"initialInvestment"`
	AnnualInvestment  string `json:"annualInvestment"`
	ExpectedReturn    string `json:"expectedReturn"`
	Duration          string `json:"duration"`
}

// YearlySnapshot is the state of the investment at the end of one year.
type YearlySnapshot struct {
	Year             int     `json:"year"`
	ValueEndOfYear   float64 `json:"valueEndOfYear"`
	Interest         float64 `json:"interest"`
	AnnualInvestment float64 `json:"annualInvestment"`
}
