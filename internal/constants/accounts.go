package constants

const (
	// MinimumSavingsBalance is the floor a savings account may not cross while active.
	MinimumSavingsBalance = "100.00"

	DefaultInterestRate   = "0.025"
	DefaultOverdraftLimit = "0.00"

	MoneyScale = 2
	// RateScale is the most fractional digits an interest rate may carry.
	RateScale       = 8
	MaxInterestRate = "1"
)

const (
	MaxNameLen    = 50
	MaxEmailLen   = 100
	CentsPerUnit  = 100
	// MaxSafeAmount bounds every amount, balance and overdraft limit. It leaves headroom
	// below the int64 cent range and fits the decimal(20,2) MySQL columns.
	MaxSafeAmount = "92233720368547.75"
)
