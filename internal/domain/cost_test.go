package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostBreakdownTotalIsComponentSum(t *testing.T) {
	b := CostBreakdown{
		Transportation: 120.50,
		Accommodations: 300,
		Activities:     75.25,
		Meals:          160,
		Miscellaneous:  65.58,
	}
	assert.InDelta(t, 721.33, b.Total(), 1e-9)
}

func TestCostBreakdownTotalZero(t *testing.T) {
	assert.Equal(t, 0.0, CostBreakdown{}.Total())
}

func TestCostBreakdownAdd(t *testing.T) {
	a := CostBreakdown{Transportation: 10, Meals: 20}
	b := CostBreakdown{Transportation: 5, Accommodations: 40, Miscellaneous: 1}

	sum := a.Add(b)

	assert.Equal(t, 15.0, sum.Transportation)
	assert.Equal(t, 40.0, sum.Accommodations)
	assert.Equal(t, 20.0, sum.Meals)
	assert.Equal(t, 1.0, sum.Miscellaneous)
	assert.InDelta(t, a.Total()+b.Total(), sum.Total(), 1e-9)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.2351))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -2.50, Round2(-2.499))
}
