package calculation

import (
	"fmt"

	"github.com/lifesim/scenario-engine/internal/domain"
	"github.com/lifesim/scenario-engine/pkg/money"
	"github.com/shopspring/decimal"
)

var highSavingsRateBar = decimal.NewFromFloat(0.50)

// Compare diffs a scenario projection against its baseline into a structured
// comparison with break-even detection and generated recommendation text.
func (e *SimulationEngine) Compare(baseline, scenario domain.FinancialProjection, scenarioType domain.ScenarioType, params domain.ScenarioParameters) domain.ScenarioComparison {
	cmp := domain.ScenarioComparison{
		NetWorthDifference:       scenario.Summary.FinalNetWorth.Sub(baseline.Summary.FinalNetWorth),
		TotalSavingsDifference:   scenario.Summary.TotalSaved.Sub(baseline.Summary.TotalSaved),
		MonthlyExpenseDifference: scenario.AverageMonthlyExpenses().Sub(baseline.AverageMonthlyExpenses()),
	}

	cmp.OpportunityCost = decimalZero
	if cmp.NetWorthDifference.IsNegative() {
		cmp.OpportunityCost = cmp.NetWorthDifference.Neg()
	}

	cmp.BreakEvenMonths = breakEvenMonth(baseline, scenario)
	cmp.Pros, cmp.Cons = prosAndCons(scenarioType, params, cmp, scenario)
	cmp.Recommendation = e.Policy.Recommend(cmp.NetWorthDifference)

	return cmp
}

// breakEvenMonth returns the first month (1-based) within the overlapping
// prefix of both trajectories where the scenario's net worth meets or
// exceeds the baseline's. Two trajectories that never diverge have no
// meaningful crossover, so full parity returns nil.
func breakEvenMonth(baseline, scenario domain.FinancialProjection) *int {
	n := len(baseline.Points)
	if len(scenario.Points) < n {
		n = len(scenario.Points)
	}
	if n == 0 {
		return nil
	}

	parity := true
	var crossover *int
	for i := 0; i < n; i++ {
		diff := scenario.Points[i].NetWorth.Sub(baseline.Points[i].NetWorth)
		if !diff.IsZero() {
			parity = false
		}
		if crossover == nil && !diff.IsNegative() && !parity {
			m := i + 1
			crossover = &m
		}
	}
	if parity {
		return nil
	}
	return crossover
}

// prosAndCons derives rule-based pros/cons lists keyed by scenario type and
// the sign of the computed deltas.
func prosAndCons(scenarioType domain.ScenarioType, params domain.ScenarioParameters, cmp domain.ScenarioComparison, scenario domain.FinancialProjection) (pros, cons []string) {
	pros = []string{}
	cons = []string{}

	if cmp.NetWorthDifference.IsPositive() {
		pros = append(pros, fmt.Sprintf("Projected net worth gain of %s over the horizon", money.FromDecimal(cmp.NetWorthDifference).Format()))
	} else if cmp.NetWorthDifference.IsNegative() {
		cons = append(cons, fmt.Sprintf("Projected net worth reduction of %s over the horizon", money.FromDecimal(cmp.OpportunityCost).Format()))
	}

	if cmp.TotalSavingsDifference.IsPositive() {
		pros = append(pros, fmt.Sprintf("%s more saved in total than the baseline", money.FromDecimal(cmp.TotalSavingsDifference).Format()))
	} else if cmp.TotalSavingsDifference.IsNegative() {
		cons = append(cons, fmt.Sprintf("%s less saved in total than the baseline", money.FromDecimal(cmp.TotalSavingsDifference.Neg()).Format()))
	}

	if cmp.MonthlyExpenseDifference.IsNegative() {
		pros = append(pros, fmt.Sprintf("Monthly expenses drop by %s on average", money.FromDecimal(cmp.MonthlyExpenseDifference.Neg()).Format()))
	} else if cmp.MonthlyExpenseDifference.IsPositive() {
		cons = append(cons, fmt.Sprintf("Monthly expenses rise by %s on average", money.FromDecimal(cmp.MonthlyExpenseDifference).Format()))
	}

	// A one-time cost is always worth calling out.
	if params.OneTimeCost != nil && params.OneTimeCost.IsPositive() {
		cons = append(cons, fmt.Sprintf("Up-front cost of %s", money.FromDecimal(*params.OneTimeCost).Format()))
	}

	if cmp.BreakEvenMonths != nil {
		pros = append(pros, fmt.Sprintf("Breaks even with the baseline after %d months", *cmp.BreakEvenMonths))
	}

	switch scenarioType {
	case domain.ScenarioBuyHome:
		pros = append(pros, "Builds home equity instead of paying rent")
	case domain.ScenarioPayOffDebt:
		if d := scenario.Summary.DebtFreeDate; d != nil {
			pros = append(pros, fmt.Sprintf("Debt-free by %s", d.Format("January 2006")))
		}
	case domain.ScenarioCareerChange:
		if params.IncomeStartDelay != nil && *params.IncomeStartDelay > 0 {
			cons = append(cons, fmt.Sprintf("No income during the %d-month transition", *params.IncomeStartDelay))
		}
	case domain.ScenarioEarlyRetirement:
		if params.NewSavingsRate != nil && params.NewSavingsRate.GreaterThan(highSavingsRateBar) {
			cons = append(cons, fmt.Sprintf("Requires a sustained savings rate of %s%% of surplus",
				params.NewSavingsRate.Mul(decimalHundred).Round(1).String()))
		}
	}

	return pros, cons
}
