package domain

import "math"

// Budget level is a coarse pricing tier scaling unit costs.
type BudgetLevel string

const (
	BudgetLevelBudget   BudgetLevel = "budget"
	BudgetLevelModerate BudgetLevel = "moderate"
	BudgetLevelLuxury   BudgetLevel = "luxury"
)

// CostBreakdown holds trip cost totals per category. All values are
// non-negative and accumulated at full precision; rounding happens only at
// presentation time.
type CostBreakdown struct {
	Transportation float64
	Accommodations float64
	Activities     float64
	Meals          float64
	Miscellaneous  float64
}

// Total is always recomputed from the five components. There is no stored
// total that could drift out of sync.
func (c CostBreakdown) Total() float64 {
	return c.Transportation + c.Accommodations + c.Activities + c.Meals + c.Miscellaneous
}

// Add returns the category-wise sum of two breakdowns.
func (c CostBreakdown) Add(o CostBreakdown) CostBreakdown {
	return CostBreakdown{
		Transportation: c.Transportation + o.Transportation,
		Accommodations: c.Accommodations + o.Accommodations,
		Activities:     c.Activities + o.Activities,
		Meals:          c.Meals + o.Meals,
		Miscellaneous:  c.Miscellaneous + o.Miscellaneous,
	}
}

// Round2 rounds a monetary value to two decimal places for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
