package service

const (
	MaxInvestmentAmount = 1_000_000_000.0 // 1 billion
	MinExpectedReturn   = -100.0          // a full loss each year
	MaxExpectedReturn   = 1000.0          // 1000% per year
	MaxDurationYears    = 100

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 500

	cacheKeyPrefix = "investment:"

	// maxDecimalExponent bounds the exponent accepted in form text.
	maxDecimalExponent = 30
)
