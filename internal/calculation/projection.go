package calculation

import (
	"fmt"

	"github.com/lifesim/scenario-engine/internal/domain"
	"github.com/lifesim/scenario-engine/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var (
	decimalZero   = decimal.Zero
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)
)

// Minimum debt service assumption: the larger of 2% of the outstanding
// balance or $25, never more than the balance itself.
var (
	minimumPaymentRate  = decimal.NewFromFloat(0.02)
	minimumPaymentFloor = decimal.NewFromInt(25)
)

// monthInputs holds the effective per-month values after scenario deltas
// have been resolved against the profile. Resolving once up front keeps the
// monthly loop allocation-free and bit-for-bit reproducible.
type monthInputs struct {
	income            decimal.Decimal // salary (or override) before any delay window
	additionalIncome  decimal.Decimal
	expenses          decimal.Decimal // after additional/reduced and cost-of-living scaling
	savingsRate       decimal.Decimal
	monthlyReturnRate decimal.Decimal
	monthlyDebtRate   decimal.Decimal
	extraDebtPayment  decimal.Decimal
	oneTimeCost       decimal.Decimal
	oneTimeMonths     int // months the one-time cost is spread across (>= 1)
	incomeDelayMonths int
}

// monthState is the mutable balance state carried month to month.
type monthState struct {
	cash   decimal.Decimal
	invest decimal.Decimal
	debt   decimal.Decimal
}

func resolveInputs(profile domain.UserFinancialProfile, params domain.ScenarioParameters) monthInputs {
	in := monthInputs{
		income:            profile.MonthlyIncome,
		additionalIncome:  decimalZero,
		expenses:          profile.MonthlyExpenses,
		savingsRate:       profile.SavingsRate,
		monthlyReturnRate: profile.InvestmentReturnRate.Div(decimalTwelve),
		monthlyDebtRate:   profile.DebtInterestRate.Div(decimalTwelve),
		extraDebtPayment:  decimalZero,
		oneTimeCost:       decimalZero,
		oneTimeMonths:     1,
	}

	if params.SalaryOverride != nil {
		in.income = *params.SalaryOverride
	}
	if params.AdditionalIncome != nil {
		in.additionalIncome = *params.AdditionalIncome
	}
	if params.AdditionalExpenses != nil {
		in.expenses = in.expenses.Add(*params.AdditionalExpenses)
	}
	if params.ReducedExpenses != nil {
		in.expenses = in.expenses.Sub(*params.ReducedExpenses)
	}
	if params.CostOfLivingFactor != nil {
		in.expenses = in.expenses.Mul(*params.CostOfLivingFactor)
	}
	if in.expenses.IsNegative() {
		in.expenses = decimalZero
	}
	if params.NewSavingsRate != nil {
		in.savingsRate = *params.NewSavingsRate
	}
	if params.ExtraDebtPayment != nil {
		in.extraDebtPayment = *params.ExtraDebtPayment
	}
	if params.OneTimeCost != nil {
		in.oneTimeCost = *params.OneTimeCost
	}
	if params.OneTimeCostMonths != nil && *params.OneTimeCostMonths > 1 {
		in.oneTimeMonths = *params.OneTimeCostMonths
	}
	if params.IncomeStartDelay != nil && *params.IncomeStartDelay > 0 {
		in.incomeDelayMonths = *params.IncomeStartDelay
	}

	return in
}

func initialState(profile domain.UserFinancialProfile, params domain.ScenarioParameters) monthState {
	st := monthState{
		cash:   profile.CurrentSavings,
		invest: profile.CurrentInvestments,
		debt:   profile.CurrentDebt,
	}
	if params.DebtOverride != nil {
		st.debt = *params.DebtOverride
	}
	return st
}

// stepMonth advances the balance state by one month (1-based index m) and
// returns the income, expenses, and clamped savings recorded for that month.
func stepMonth(st *monthState, in monthInputs, m int) (income, expenses, savings decimal.Decimal) {
	income = in.income
	if m <= in.incomeDelayMonths {
		income = decimalZero
	}
	income = income.Add(in.additionalIncome)
	expenses = in.expenses

	// Negative cash flow is clamped to zero surplus rather than modeled as
	// borrowing.
	savings = income.Sub(expenses)
	if savings.IsNegative() {
		savings = decimalZero
	}

	st.invest = st.invest.Mul(decimalOne.Add(in.monthlyReturnRate)).Add(savings.Mul(in.savingsRate))
	st.cash = st.cash.Add(savings.Mul(decimalOne.Sub(in.savingsRate)))
	if m <= in.oneTimeMonths && in.oneTimeCost.IsPositive() {
		st.cash = st.cash.Sub(in.oneTimeCost.Div(decimal.NewFromInt(int64(in.oneTimeMonths))))
	}

	if st.debt.IsPositive() {
		// Interest accrues before the payment so the final payment can
		// clear the balance to exactly zero.
		accrued := st.debt.Mul(decimalOne.Add(in.monthlyDebtRate))
		minPayment := decimal.Max(accrued.Mul(minimumPaymentRate), minimumPaymentFloor)
		st.debt = accrued.Sub(decimal.Min(minPayment.Add(in.extraDebtPayment), accrued))
	}

	return income, expenses, savings
}

func (st monthState) netWorth() decimal.Decimal {
	return st.invest.Add(st.cash).Sub(st.debt)
}

// Project simulates a monthly cash-flow trajectory for the profile with the
// given scenario deltas. It is a pure function of its inputs and the
// engine's clock: no I/O, no shared mutable state.
func (e *SimulationEngine) Project(profile domain.UserFinancialProfile, params domain.ScenarioParameters, horizonMonths int) (domain.FinancialProjection, error) {
	if horizonMonths <= 0 {
		return domain.FinancialProjection{}, fmt.Errorf("%w: horizon must be positive, got %d", ErrInvalidInput, horizonMonths)
	}
	if err := profile.Validate(); err != nil {
		return domain.FinancialProjection{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	in := resolveInputs(profile, params)
	st := initialState(profile, params)
	trackDebt := st.debt.IsPositive()
	start := dateutil.StartOfMonth(e.Clock.Now())

	points := make([]domain.MonthlyProjectionPoint, 0, horizonMonths)
	summary := domain.ProjectionSummary{
		TotalIncome:   decimalZero,
		TotalExpenses: decimalZero,
		TotalSaved:    decimalZero,
	}

	for m := 1; m <= horizonMonths; m++ {
		income, expenses, savings := stepMonth(&st, in, m)
		date := dateutil.AddMonths(start, m)

		// The debt-free date is the first transition to zero and is never
		// revised afterwards.
		if trackDebt && st.debt.IsZero() && summary.DebtFreeDate == nil {
			d := date
			summary.DebtFreeDate = &d
		}

		points = append(points, domain.MonthlyProjectionPoint{
			Month:             m,
			Date:              date,
			Income:            income,
			Expenses:          expenses,
			Savings:           savings,
			NetWorth:          st.netWorth(),
			DebtRemaining:     st.debt,
			InvestmentBalance: st.invest,
		})

		summary.TotalIncome = summary.TotalIncome.Add(income)
		summary.TotalExpenses = summary.TotalExpenses.Add(expenses)
		summary.TotalSaved = summary.TotalSaved.Add(savings)
	}

	summary.FinalNetWorth = points[len(points)-1].NetWorth
	summary.AverageMonthlySavings = summary.TotalSaved.Div(decimal.NewFromInt(int64(horizonMonths)))
	summary.YearsToRetirement = yearsToRetirement(profile, params)

	return domain.FinancialProjection{Points: points, Summary: summary}, nil
}
