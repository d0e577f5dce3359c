package calculation

import (
	"github.com/lifesim/scenario-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Bounds shared by the iterative solvers: forward searches walk at most 600
// months (50 years); the savings-rate bisection stops once the bracket is
// narrower than rateTolerance.
const (
	maxSearchMonths     = 600
	maxSearchIterations = 100
)

var (
	rateTolerance   = decimal.NewFromFloat(0.0001)
	savingsRateCeil = decimal.NewFromFloat(0.80) // never ask for more than 80% of income
)

// yearsToRetirement walks the projection forward (up to 50 years) until net
// worth reaches 25x annual effective expenses. Returns nil when the target
// is not reached within the cap.
func yearsToRetirement(profile domain.UserFinancialProfile, params domain.ScenarioParameters) *decimal.Decimal {
	in := resolveInputs(profile, params)
	st := initialState(profile, params)
	target := in.expenses.Mul(decimalTwelve).Mul(domain.RetirementExpenseMultiple)

	if st.netWorth().GreaterThanOrEqual(target) {
		zero := decimal.Zero
		return &zero
	}

	for m := 1; m <= maxSearchMonths; m++ {
		stepMonth(&st, in, m)
		if st.netWorth().GreaterThanOrEqual(target) {
			years := decimal.NewFromInt(int64(m)).Div(decimalTwelve)
			return &years
		}
	}
	return nil
}

// finalNetWorthAtRate simulates the profile with the given savings rate for
// the given number of months and returns the ending net worth.
func finalNetWorthAtRate(profile domain.UserFinancialProfile, rate decimal.Decimal, months int) decimal.Decimal {
	params := domain.ScenarioParameters{NewSavingsRate: &rate}
	in := resolveInputs(profile, params)
	st := initialState(profile, params)
	for m := 1; m <= months; m++ {
		stepMonth(&st, in, m)
	}
	return st.netWorth()
}

// requiredSavingsRate bisects for the smallest savings rate that reaches the
// target net worth within the given number of months. The result is clamped
// to the 80% ceiling; reached reports whether the target is attainable at
// the returned rate.
func requiredSavingsRate(profile domain.UserFinancialProfile, target decimal.Decimal, months int) (rate decimal.Decimal, reached bool) {
	if months > maxSearchMonths {
		months = maxSearchMonths
	}

	lo := decimal.Zero
	hi := savingsRateCeil

	if finalNetWorthAtRate(profile, hi, months).LessThan(target) {
		// Even the ceiling rate falls short; return it clamped.
		return hi, false
	}
	if finalNetWorthAtRate(profile, lo, months).GreaterThanOrEqual(target) {
		return lo, true
	}

	for i := 0; i < maxSearchIterations; i++ {
		mid := lo.Add(hi).Div(decimal.NewFromInt(2))
		if finalNetWorthAtRate(profile, mid, months).GreaterThanOrEqual(target) {
			hi = mid
		} else {
			lo = mid
		}
		if hi.Sub(lo).LessThan(rateTolerance) {
			break
		}
	}
	return hi, true
}
