package dto

// Development-only DTOs for the demo data seeding endpoint

// SeedDemoDataRequest controls a demo data seeding run. Unlike report
// queries, an unknown period here is rejected outright.
type SeedDemoDataRequest struct {
	TransactionCount int    `json:"transactionCount" validate:"omitempty,min=1,max=1000"`
	Period           string `json:"period" validate:"omitempty,period_type"`
}

// DemoDataResult reports what a seeding run created
type DemoDataResult struct {
	TransactionsCreated int `json:"transactionsCreated"`
	CategoriesCreated   int `json:"categoriesCreated"`
	GoalsCreated        int `json:"goalsCreated"`
}
