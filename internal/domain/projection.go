package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScenarioParameters is the sparse delta set a composed scenario applies on
// top of the baseline profile. Absent (nil) means "no change from baseline",
// not zero.
type ScenarioParameters struct {
	SalaryOverride     *decimal.Decimal `json:"salary_override,omitempty"`
	AdditionalIncome   *decimal.Decimal `json:"additional_income,omitempty"`
	AdditionalExpenses *decimal.Decimal `json:"additional_expenses,omitempty"`
	ReducedExpenses    *decimal.Decimal `json:"reduced_expenses,omitempty"`
	OneTimeCost        *decimal.Decimal `json:"one_time_cost,omitempty"`
	OneTimeCostMonths  *int             `json:"one_time_cost_months,omitempty"` // months the one-time cost is spread across, default 1
	CostOfLivingFactor *decimal.Decimal `json:"cost_of_living_factor,omitempty"`
	NewSavingsRate     *decimal.Decimal `json:"new_savings_rate,omitempty"`
	ExtraDebtPayment   *decimal.Decimal `json:"extra_debt_payment,omitempty"`
	DebtOverride       *decimal.Decimal `json:"debt_override,omitempty"`
	IncomeStartDelay   *int             `json:"income_start_delay,omitempty"` // months of zero income at the start
	HorizonMonths      *int             `json:"horizon_months,omitempty"`
}

// IsEmpty reports whether no delta is set, i.e. the parameters describe the
// baseline itself.
func (sp ScenarioParameters) IsEmpty() bool {
	return sp.SalaryOverride == nil && sp.AdditionalIncome == nil &&
		sp.AdditionalExpenses == nil && sp.ReducedExpenses == nil &&
		sp.OneTimeCost == nil && sp.CostOfLivingFactor == nil &&
		sp.NewSavingsRate == nil && sp.ExtraDebtPayment == nil &&
		sp.DebtOverride == nil && sp.IncomeStartDelay == nil &&
		sp.HorizonMonths == nil
}

// MonthlyProjectionPoint is one simulated month of cash flow.
type MonthlyProjectionPoint struct {
	Month             int             `json:"month"`
	Date              time.Time       `json:"date"`
	Income            decimal.Decimal `json:"income"`
	Expenses          decimal.Decimal `json:"expenses"`
	Savings           decimal.Decimal `json:"savings"`
	NetWorth          decimal.Decimal `json:"net_worth"`
	DebtRemaining     decimal.Decimal `json:"debt_remaining"`
	InvestmentBalance decimal.Decimal `json:"investment_balance"`
}

// ProjectionSummary aggregates a full projection.
type ProjectionSummary struct {
	TotalIncome           decimal.Decimal  `json:"total_income"`
	TotalExpenses         decimal.Decimal  `json:"total_expenses"`
	TotalSaved            decimal.Decimal  `json:"total_saved"`
	FinalNetWorth         decimal.Decimal  `json:"final_net_worth"`
	AverageMonthlySavings decimal.Decimal  `json:"average_monthly_savings"`
	YearsToRetirement     *decimal.Decimal `json:"years_to_retirement,omitempty"`
	DebtFreeDate          *time.Time       `json:"debt_free_date,omitempty"`
}

// FinancialProjection is an ordered month-by-month trajectory plus its
// summary. Immutable once produced.
type FinancialProjection struct {
	Points  []MonthlyProjectionPoint `json:"points"`
	Summary ProjectionSummary        `json:"summary"`
}

// Horizon returns the number of simulated months.
func (fp FinancialProjection) Horizon() int {
	return len(fp.Points)
}

// NetWorthAt returns the net worth of the 1-based month index, or zero if
// the index is out of range.
func (fp FinancialProjection) NetWorthAt(month int) decimal.Decimal {
	if month < 1 || month > len(fp.Points) {
		return decimal.Zero
	}
	return fp.Points[month-1].NetWorth
}

// AverageMonthlyExpenses returns total expenses divided by point count,
// so projections of different horizons stay comparable.
func (fp FinancialProjection) AverageMonthlyExpenses() decimal.Decimal {
	if len(fp.Points) == 0 {
		return decimal.Zero
	}
	return fp.Summary.TotalExpenses.Div(decimal.NewFromInt(int64(len(fp.Points))))
}

// ScenarioComparison is the structured diff of a scenario projection against
// its baseline. Derived, never hand-edited.
type ScenarioComparison struct {
	NetWorthDifference       decimal.Decimal `json:"net_worth_difference"`
	TotalSavingsDifference   decimal.Decimal `json:"total_savings_difference"`
	MonthlyExpenseDifference decimal.Decimal `json:"monthly_expense_difference"`
	OpportunityCost          decimal.Decimal `json:"opportunity_cost"`
	BreakEvenMonths          *int            `json:"break_even_months,omitempty"`
	Recommendation           string          `json:"recommendation"`
	Pros                     []string        `json:"pros"`
	Cons                     []string        `json:"cons"`
}
