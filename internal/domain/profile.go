package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RetirementExpenseMultiple is the net worth target expressed as a multiple
// of annual expenses (the 4%-rule: 25x annual spending).
var RetirementExpenseMultiple = decimal.NewFromInt(25)

// UserFinancialProfile is an immutable snapshot of a user's finances.
// It is passed by value into every simulation and never mutated by the engine.
type UserFinancialProfile struct {
	MonthlyIncome        decimal.Decimal `json:"monthly_income" yaml:"monthly_income"`
	MonthlyExpenses      decimal.Decimal `json:"monthly_expenses" yaml:"monthly_expenses"`
	CurrentSavings       decimal.Decimal `json:"current_savings" yaml:"current_savings"`
	CurrentInvestments   decimal.Decimal `json:"current_investments" yaml:"current_investments"`
	CurrentDebt          decimal.Decimal `json:"current_debt" yaml:"current_debt"`
	DebtInterestRate     decimal.Decimal `json:"debt_interest_rate" yaml:"debt_interest_rate"`         // annual
	InvestmentReturnRate decimal.Decimal `json:"investment_return_rate" yaml:"investment_return_rate"` // annual
	SavingsRate          decimal.Decimal `json:"savings_rate" yaml:"savings_rate"`                     // fraction of monthly surplus routed to investments
	CurrentAge           int             `json:"current_age" yaml:"current_age"`
	TargetRetirementAge  int             `json:"target_retirement_age" yaml:"target_retirement_age"`
}

// MonthlySurplus returns income minus expenses before any scenario deltas.
func (p UserFinancialProfile) MonthlySurplus() decimal.Decimal {
	return p.MonthlyIncome.Sub(p.MonthlyExpenses)
}

// AnnualExpenses returns the annualized monthly expenses.
func (p UserFinancialProfile) AnnualExpenses() decimal.Decimal {
	return p.MonthlyExpenses.Mul(decimal.NewFromInt(12))
}

// RetirementTarget returns the net worth at which expenses are considered
// indefinitely sustainable (25x annual expenses).
func (p UserFinancialProfile) RetirementTarget() decimal.Decimal {
	return p.AnnualExpenses().Mul(RetirementExpenseMultiple)
}

// NetWorth returns the snapshot net worth: investments + savings - debt.
func (p UserFinancialProfile) NetWorth() decimal.Decimal {
	return p.CurrentInvestments.Add(p.CurrentSavings).Sub(p.CurrentDebt)
}

// Validate checks the core profile fields. Rates may be any real number
// (deflation and negative-return scenarios are legal); balances and cash
// flows must be non-negative.
func (p UserFinancialProfile) Validate() error {
	if p.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income cannot be negative")
	}
	if p.MonthlyExpenses.IsNegative() {
		return fmt.Errorf("monthly expenses cannot be negative")
	}
	if p.CurrentSavings.IsNegative() {
		return fmt.Errorf("current savings cannot be negative")
	}
	if p.CurrentInvestments.IsNegative() {
		return fmt.Errorf("current investments cannot be negative")
	}
	if p.CurrentDebt.IsNegative() {
		return fmt.Errorf("current debt cannot be negative")
	}
	if p.SavingsRate.IsNegative() || p.SavingsRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("savings rate must be between 0 and 1")
	}
	if p.CurrentAge < 0 {
		return fmt.Errorf("current age cannot be negative")
	}
	return nil
}
