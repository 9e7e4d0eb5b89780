package models

// Transaction types
const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Currencies recognised in transcripts
const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// DefaultCurrency is used when a transcript carries no currency cue.
const DefaultCurrency = CurrencyINR

// Categories
const (
	CategoryGroceries = "groceries"
	CategoryTransport = "transport"
	CategoryDining    = "dining"
	CategoryRent      = "rent"
	CategorySalary    = "salary"
	CategoryShopping  = "shopping"
	CategoryUtilities = "utilities"
	CategoryOther     = "other"
)

// DescriptionPlaceholder replaces a description that is empty after cleanup.
const DescriptionPlaceholder = "Voice entry"

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
