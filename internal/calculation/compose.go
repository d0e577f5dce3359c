package calculation

import (
	"fmt"

	"github.com/lifesim/scenario-engine/internal/domain"
	"github.com/lifesim/scenario-engine/pkg/dateutil"
	"github.com/lifesim/scenario-engine/pkg/money"
	"github.com/shopspring/decimal"
)

// Home carrying-cost assumptions, annual fractions of the purchase price.
var (
	propertyTaxRate     = decimal.NewFromFloat(0.011)
	homeInsuranceRate   = decimal.NewFromFloat(0.005)
	homeMaintenanceRate = decimal.NewFromFloat(0.010)
	closingCostRate     = decimal.NewFromFloat(0.030)
)

var decimalHundred = decimal.NewFromInt(100)

// ComposedScenario is the output of scenario composition: the concrete delta
// set plus the human-readable title and description for the record.
type ComposedScenario struct {
	Parameters  domain.ScenarioParameters
	Title       string
	Description string
}

// Compose translates a tagged scenario request into concrete parameters,
// performing the scenario-specific derived math. All derivations are
// deterministic: identical inputs produce identical parameters.
func (e *SimulationEngine) Compose(profile domain.UserFinancialProfile, req domain.ScenarioRequest) (ComposedScenario, error) {
	switch r := req.(type) {
	case domain.RelocateRequest:
		return composeRelocate(profile, r)
	case domain.CareerChangeRequest:
		return composeCareerChange(r)
	case domain.HaveChildRequest:
		return composeHaveChild(r)
	case domain.BuyHomeRequest:
		return composeBuyHome(r)
	case domain.EarlyRetirementRequest:
		return composeEarlyRetirement(profile, r)
	case domain.PayOffDebtRequest:
		return composePayOffDebt(r)
	case domain.CustomRequest:
		return composeCustom(r)
	default:
		return ComposedScenario{}, fmt.Errorf("%w: unsupported scenario request %T", ErrInvalidInput, req)
	}
}

func composeRelocate(profile domain.UserFinancialProfile, r domain.RelocateRequest) (ComposedScenario, error) {
	if r.City == "" {
		return ComposedScenario{}, fmt.Errorf("%w: relocate requires a city", ErrInvalidInput)
	}
	if !r.IncomeFactor.IsPositive() || !r.CostOfLivingFactor.IsPositive() {
		return ComposedScenario{}, fmt.Errorf("%w: income and cost-of-living factors must be positive", ErrInvalidInput)
	}
	if r.MovingCost.IsNegative() {
		return ComposedScenario{}, fmt.Errorf("%w: moving cost cannot be negative", ErrInvalidInput)
	}

	salary := profile.MonthlyIncome.Mul(r.IncomeFactor)
	col := r.CostOfLivingFactor
	moving := r.MovingCost

	return ComposedScenario{
		Parameters: domain.ScenarioParameters{
			SalaryOverride:     &salary,
			CostOfLivingFactor: &col,
			OneTimeCost:        &moving,
		},
		Title: fmt.Sprintf("Relocate to %s", r.City),
		Description: fmt.Sprintf("Moving to %s: income scaled by %s, cost of living scaled by %s, one-time moving cost of %s.",
			r.City, r.IncomeFactor.String(), col.String(), money.FromDecimal(moving).Format()),
	}, nil
}

func composeCareerChange(r domain.CareerChangeRequest) (ComposedScenario, error) {
	if r.NewMonthlySalary.IsNegative() {
		return ComposedScenario{}, fmt.Errorf("%w: new salary cannot be negative", ErrInvalidInput)
	}
	if r.TransitionCost.IsNegative() || r.TransitionMonths < 0 {
		return ComposedScenario{}, fmt.Errorf("%w: transition cost and months cannot be negative", ErrInvalidInput)
	}

	salary := r.NewMonthlySalary
	params := domain.ScenarioParameters{SalaryOverride: &salary}
	if r.TransitionCost.IsPositive() {
		cost := r.TransitionCost
		params.OneTimeCost = &cost
	}
	if r.TransitionMonths > 0 {
		months := r.TransitionMonths
		params.OneTimeCostMonths = &months
		delay := r.TransitionMonths
		params.IncomeStartDelay = &delay
	}

	field := r.Field
	if field == "" {
		field = "a new field"
	}
	return ComposedScenario{
		Parameters: params,
		Title:      fmt.Sprintf("Career change to %s", field),
		Description: fmt.Sprintf("Switching to %s at %s/month after a %d-month transition costing %s.",
			field, money.FromDecimal(salary).Format(), r.TransitionMonths, money.FromDecimal(r.TransitionCost).Format()),
	}, nil
}

func composeHaveChild(r domain.HaveChildRequest) (ComposedScenario, error) {
	if r.MonthlyCost.IsNegative() || r.InitialCost.IsNegative() {
		return ComposedScenario{}, fmt.Errorf("%w: child costs cannot be negative", ErrInvalidInput)
	}

	monthly := r.MonthlyCost
	initial := r.InitialCost
	return ComposedScenario{
		Parameters: domain.ScenarioParameters{
			AdditionalExpenses: &monthly,
			OneTimeCost:        &initial,
		},
		Title: "Have a child",
		Description: fmt.Sprintf("Adding %s/month of recurring costs plus a one-time initial cost of %s.",
			money.FromDecimal(monthly).Format(), money.FromDecimal(initial).Format()),
	}, nil
}

// MonthlyMortgagePayment returns the fixed monthly payment amortizing the
// principal over termYears at the given annual rate:
// P*r*(1+r)^n / ((1+r)^n - 1). A zero rate degenerates to the linear
// principal/n path rather than dividing by zero.
func MonthlyMortgagePayment(principal, annualRate decimal.Decimal, termYears int) decimal.Decimal {
	n := int64(termYears) * 12
	if n <= 0 || !principal.IsPositive() {
		return decimal.Zero
	}
	if annualRate.IsZero() {
		return principal.Div(decimal.NewFromInt(n))
	}

	r := annualRate.Div(decimalTwelve)
	pow := decimalOne.Add(r).Pow(decimal.NewFromInt(n))
	return principal.Mul(r).Mul(pow).Div(pow.Sub(decimalOne))
}

func composeBuyHome(r domain.BuyHomeRequest) (ComposedScenario, error) {
	if !r.HomePrice.IsPositive() {
		return ComposedScenario{}, fmt.Errorf("%w: home price must be positive", ErrInvalidInput)
	}
	if r.DownPaymentPercent.IsNegative() || r.DownPaymentPercent.GreaterThan(decimalHundred) {
		return ComposedScenario{}, fmt.Errorf("%w: down payment percent must be between 0 and 100", ErrInvalidInput)
	}
	if r.TermYears <= 0 {
		return ComposedScenario{}, fmt.Errorf("%w: mortgage term must be positive", ErrInvalidInput)
	}
	if r.MortgageRate.IsNegative() {
		return ComposedScenario{}, fmt.Errorf("%w: mortgage rate cannot be negative", ErrInvalidInput)
	}

	downPayment := r.HomePrice.Mul(r.DownPaymentPercent).Div(decimalHundred)
	principal := r.HomePrice.Sub(downPayment)
	payment := MonthlyMortgagePayment(principal, r.MortgageRate, r.TermYears)

	carryingCosts := r.HomePrice.Mul(propertyTaxRate.Add(homeInsuranceRate).Add(homeMaintenanceRate)).Div(decimalTwelve)
	monthlyCost := payment.Add(carryingCosts)
	oneTime := downPayment.Add(r.HomePrice.Mul(closingCostRate))

	return ComposedScenario{
		Parameters: domain.ScenarioParameters{
			AdditionalExpenses: &monthlyCost,
			OneTimeCost:        &oneTime,
		},
		Title: fmt.Sprintf("Buy a %s home", money.FromDecimal(r.HomePrice).Format()),
		Description: fmt.Sprintf("Purchasing with %s%% down: mortgage payment %s/month over %d years, %s/month in taxes, insurance and upkeep, %s due at closing.",
			r.DownPaymentPercent.String(), money.FromDecimal(payment).Format(), r.TermYears,
			money.FromDecimal(carryingCosts).Format(), money.FromDecimal(oneTime).Format()),
	}, nil
}

func composeEarlyRetirement(profile domain.UserFinancialProfile, r domain.EarlyRetirementRequest) (ComposedScenario, error) {
	months := dateutil.MonthsUntilAge(profile.CurrentAge, r.TargetAge)
	if months <= 0 {
		return ComposedScenario{}, fmt.Errorf("%w: target retirement age %d is not after current age %d", ErrInvalidInput, r.TargetAge, profile.CurrentAge)
	}
	if months > maxSearchMonths {
		months = maxSearchMonths
	}

	target := profile.RetirementTarget()
	rate, reached := requiredSavingsRate(profile, target, months)

	params := domain.ScenarioParameters{
		NewSavingsRate: &rate,
		HorizonMonths:  &months,
	}

	ratePct := rate.Mul(decimalHundred).Round(1)
	desc := fmt.Sprintf("Retiring at %d requires saving %s%% of monthly surplus to reach a net worth of %s.",
		r.TargetAge, ratePct.String(), money.FromDecimal(target).Format())
	if !reached {
		desc = fmt.Sprintf("Retiring at %d is out of reach even at the %s%% savings ceiling; target net worth is %s.",
			r.TargetAge, ratePct.String(), money.FromDecimal(target).Format())
	}

	return ComposedScenario{
		Parameters:  params,
		Title:       fmt.Sprintf("Retire at %d", r.TargetAge),
		Description: desc,
	}, nil
}

func composePayOffDebt(r domain.PayOffDebtRequest) (ComposedScenario, error) {
	if r.DebtAmount.IsNegative() || r.ExtraPayment.IsNegative() {
		return ComposedScenario{}, fmt.Errorf("%w: debt amount and extra payment cannot be negative", ErrInvalidInput)
	}

	extra := r.ExtraPayment
	debt := r.DebtAmount
	return ComposedScenario{
		Parameters: domain.ScenarioParameters{
			ExtraDebtPayment: &extra,
			DebtOverride:     &debt,
		},
		Title: fmt.Sprintf("Pay off %s of debt", money.FromDecimal(debt).Format()),
		Description: fmt.Sprintf("Putting an extra %s/month toward a %s balance.",
			money.FromDecimal(extra).Format(), money.FromDecimal(debt).Format()),
	}, nil
}

func composeCustom(r domain.CustomRequest) (ComposedScenario, error) {
	title := r.Title
	if title == "" {
		title = "Custom scenario"
	}
	desc := r.Description
	if desc == "" {
		desc = "User-supplied parameter deltas applied directly."
	}
	return ComposedScenario{Parameters: r.Parameters, Title: title, Description: desc}, nil
}
