package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScenarioType identifies the kind of life change a scenario models.
type ScenarioType string

const (
	ScenarioRelocate        ScenarioType = "relocate"
	ScenarioCareerChange    ScenarioType = "career_change"
	ScenarioHaveChild       ScenarioType = "have_child"
	ScenarioBuyHome         ScenarioType = "buy_home"
	ScenarioEarlyRetirement ScenarioType = "early_retirement"
	ScenarioPayOffDebt      ScenarioType = "pay_off_debt"
	ScenarioCustom          ScenarioType = "custom"
)

// ScenarioRequest is a tagged scenario variant. Each variant carries only
// the fields relevant to its scenario type; the composer turns a request
// into concrete ScenarioParameters.
type ScenarioRequest interface {
	Type() ScenarioType
}

// RelocateRequest models moving to another city.
type RelocateRequest struct {
	City               string          `json:"city"`
	IncomeFactor       decimal.Decimal `json:"income_factor"`         // multiplier on current salary
	CostOfLivingFactor decimal.Decimal `json:"cost_of_living_factor"` // multiplier on monthly expenses
	MovingCost         decimal.Decimal `json:"moving_cost"`
}

func (RelocateRequest) Type() ScenarioType { return ScenarioRelocate }

// CareerChangeRequest models switching to a new field or role.
type CareerChangeRequest struct {
	Field            string          `json:"field"`
	NewMonthlySalary decimal.Decimal `json:"new_monthly_salary"`
	TransitionCost   decimal.Decimal `json:"transition_cost"`
	TransitionMonths int             `json:"transition_months"` // months without income while the cost is spread
}

func (CareerChangeRequest) Type() ScenarioType { return ScenarioCareerChange }

// HaveChildRequest models the recurring and initial costs of a child.
type HaveChildRequest struct {
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
	InitialCost decimal.Decimal `json:"initial_cost"`
}

func (HaveChildRequest) Type() ScenarioType { return ScenarioHaveChild }

// BuyHomeRequest models a home purchase financed with a fixed-rate mortgage.
type BuyHomeRequest struct {
	HomePrice          decimal.Decimal `json:"home_price"`
	DownPaymentPercent decimal.Decimal `json:"down_payment_percent"` // e.g. 20 for 20%
	MortgageRate       decimal.Decimal `json:"mortgage_rate"`        // annual
	TermYears          int             `json:"term_years"`
}

func (BuyHomeRequest) Type() ScenarioType { return ScenarioBuyHome }

// EarlyRetirementRequest models retiring at a target age earlier than planned.
type EarlyRetirementRequest struct {
	TargetAge int `json:"target_age"`
}

func (EarlyRetirementRequest) Type() ScenarioType { return ScenarioEarlyRetirement }

// PayOffDebtRequest models an accelerated payoff of a tracked debt.
type PayOffDebtRequest struct {
	DebtAmount   decimal.Decimal `json:"debt_amount"`
	ExtraPayment decimal.Decimal `json:"extra_payment"` // additional monthly payment
}

func (PayOffDebtRequest) Type() ScenarioType { return ScenarioPayOffDebt }

// CustomRequest applies explicitly supplied parameter deltas with no
// scenario-specific derivation.
type CustomRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Parameters  ScenarioParameters `json:"parameters"`
}

func (CustomRequest) Type() ScenarioType { return ScenarioCustom }

// LifeScenario is the persisted unit: a composed parameter set, the baseline
// and scenario projections, and their comparison. Created once by the engine
// pipeline and immutable thereafter; only store membership changes.
type LifeScenario struct {
	ID          string              `json:"id"`
	Type        ScenarioType        `json:"type"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Parameters  ScenarioParameters  `json:"parameters"`
	Baseline    FinancialProjection `json:"baseline"`
	Projected   FinancialProjection `json:"projected"`
	Comparison  ScenarioComparison  `json:"comparison"`
	CreatedAt   time.Time           `json:"created_at"`
	Fallback    bool                `json:"fallback,omitempty"` // set when simulation failed and this is a placeholder record
}
