package calculation

import (
	"testing"
	"time"

	"github.com/lifesim/scenario-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *SimulationEngine {
	e := NewSimulationEngine()
	e.Clock = FixedClock{Time: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)}
	return e
}

func testProfile() domain.UserFinancialProfile {
	return domain.UserFinancialProfile{
		MonthlyIncome:        decimal.NewFromInt(6000),
		MonthlyExpenses:      decimal.NewFromInt(4000),
		CurrentSavings:       decimal.NewFromInt(20000),
		CurrentInvestments:   decimal.NewFromInt(50000),
		CurrentDebt:          decimal.NewFromInt(10000),
		DebtInterestRate:     decimal.NewFromFloat(0.07),
		InvestmentReturnRate: decimal.NewFromFloat(0.07),
		SavingsRate:          decimal.NewFromFloat(0.15),
		CurrentAge:           35,
		TargetRetirementAge:  65,
	}
}

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func intPtr(i int) *int { return &i }

func TestProject_PointCountAndDates(t *testing.T) {
	e := newTestEngine()
	proj, err := e.Project(testProfile(), domain.ScenarioParameters{}, 24)
	require.NoError(t, err)
	require.Len(t, proj.Points, 24)

	// Dates start one month after the start of the current month and
	// advance by exactly one calendar month.
	want := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for i, pt := range proj.Points {
		assert.Equal(t, i+1, pt.Month)
		if !pt.Date.Equal(want) {
			t.Fatalf("month %d: date %s, want %s", pt.Month, pt.Date, want)
		}
		want = want.AddDate(0, 1, 0)
	}
}

func TestProject_NetWorthIdentity(t *testing.T) {
	e := newTestEngine()
	profile := testProfile()
	proj, err := e.Project(profile, domain.ScenarioParameters{}, 36)
	require.NoError(t, err)

	// Reconstruct the cash balance from the recorded savings flows and
	// check netWorth == investments + cash - debt every month.
	tolerance := decimal.NewFromFloat(1e-6)
	cash := profile.CurrentSavings
	keepRate := decimal.NewFromInt(1).Sub(profile.SavingsRate)
	for _, pt := range proj.Points {
		cash = cash.Add(pt.Savings.Mul(keepRate))
		identity := pt.InvestmentBalance.Add(cash).Sub(pt.DebtRemaining)
		if pt.NetWorth.Sub(identity).Abs().GreaterThan(tolerance) {
			t.Fatalf("month %d: net worth %s, identity %s", pt.Month, pt.NetWorth, identity)
		}
	}
}

func TestProject_Deterministic(t *testing.T) {
	// Identical inputs must reproduce an identical trajectory to the cent.
	e := newTestEngine()
	profile := testProfile()

	first, err := e.Project(profile, domain.ScenarioParameters{}, 12)
	require.NoError(t, err)
	second, err := e.Project(profile, domain.ScenarioParameters{}, 12)
	require.NoError(t, err)

	require.Equal(t, first.Summary.FinalNetWorth.StringFixed(2), second.Summary.FinalNetWorth.StringFixed(2))
	for i := range first.Points {
		if !first.Points[i].NetWorth.Equal(second.Points[i].NetWorth) {
			t.Fatalf("month %d: %s != %s", i+1, first.Points[i].NetWorth, second.Points[i].NetWorth)
		}
	}
}

func TestProject_DebtMonotonicAndStickyZero(t *testing.T) {
	e := newTestEngine()
	profile := testProfile()
	params := domain.ScenarioParameters{ExtraDebtPayment: decPtr(500)}

	proj, err := e.Project(profile, params, 60)
	require.NoError(t, err)

	prev := profile.CurrentDebt
	sawZero := false
	for _, pt := range proj.Points {
		if pt.DebtRemaining.IsNegative() {
			t.Fatalf("month %d: negative debt %s", pt.Month, pt.DebtRemaining)
		}
		if pt.DebtRemaining.GreaterThan(prev) {
			t.Fatalf("month %d: debt grew from %s to %s", pt.Month, prev, pt.DebtRemaining)
		}
		if sawZero && !pt.DebtRemaining.IsZero() {
			t.Fatalf("month %d: debt came back after reaching zero", pt.Month)
		}
		if pt.DebtRemaining.IsZero() {
			sawZero = true
		}
		prev = pt.DebtRemaining
	}
	require.True(t, sawZero, "debt never reached zero")
	require.NotNil(t, proj.Summary.DebtFreeDate)
}

func TestProject_DebtClearsToExactZero(t *testing.T) {
	// The final payment must clear the balance to exactly zero, not a
	// vanishing residual, so the debt-free date is recorded.
	e := newTestEngine()
	params := domain.ScenarioParameters{
		DebtOverride:     decPtr(10000),
		ExtraDebtPayment: decPtr(200),
	}

	proj, err := e.Project(testProfile(), params, 60)
	require.NoError(t, err)

	require.NotNil(t, proj.Summary.DebtFreeDate, "no debt-free date recorded")
	last := proj.Points[len(proj.Points)-1]
	if !last.DebtRemaining.IsZero() {
		t.Fatalf("debt at horizon end is %s, want exactly zero", last.DebtRemaining)
	}
	assert.True(t, proj.Summary.DebtFreeDate.Before(last.Date), "debt-free %s not before horizon end %s",
		proj.Summary.DebtFreeDate, last.Date)
}

func TestProject_NegativeCashFlowClamped(t *testing.T) {
	e := newTestEngine()
	profile := testProfile()
	profile.MonthlyExpenses = decimal.NewFromInt(7000) // more than income

	proj, err := e.Project(profile, domain.ScenarioParameters{}, 12)
	require.NoError(t, err)
	for _, pt := range proj.Points {
		assert.True(t, pt.Savings.IsZero(), "month %d: expected zero savings, got %s", pt.Month, pt.Savings)
	}
	assert.True(t, proj.Summary.TotalSaved.IsZero())
}

func TestProject_IncomeStartDelay(t *testing.T) {
	e := newTestEngine()
	params := domain.ScenarioParameters{IncomeStartDelay: intPtr(3)}

	proj, err := e.Project(testProfile(), params, 6)
	require.NoError(t, err)
	for _, pt := range proj.Points[:3] {
		assert.True(t, pt.Income.IsZero(), "month %d should have no income", pt.Month)
	}
	for _, pt := range proj.Points[3:] {
		assert.True(t, pt.Income.Equal(decimal.NewFromInt(6000)), "month %d income %s", pt.Month, pt.Income)
	}
}

func TestProject_CostOfLivingFactor(t *testing.T) {
	e := newTestEngine()
	params := domain.ScenarioParameters{CostOfLivingFactor: decPtr(1.25)}

	proj, err := e.Project(testProfile(), params, 1)
	require.NoError(t, err)
	assert.True(t, proj.Points[0].Expenses.Equal(decimal.NewFromInt(5000)),
		"expenses %s, want 5000", proj.Points[0].Expenses)
}

func TestProject_InvalidInput(t *testing.T) {
	e := newTestEngine()

	_, err := e.Project(testProfile(), domain.ScenarioParameters{}, 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	bad := testProfile()
	bad.MonthlyIncome = decimal.NewFromInt(-1)
	_, err = e.Project(bad, domain.ScenarioParameters{}, 12)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestProject_SummaryAggregates(t *testing.T) {
	e := newTestEngine()
	proj, err := e.Project(testProfile(), domain.ScenarioParameters{}, 12)
	require.NoError(t, err)

	s := proj.Summary
	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(72000)), "total income %s", s.TotalIncome)
	assert.True(t, s.TotalExpenses.Equal(decimal.NewFromInt(48000)), "total expenses %s", s.TotalExpenses)
	assert.True(t, s.TotalSaved.Equal(decimal.NewFromInt(24000)), "total saved %s", s.TotalSaved)
	assert.True(t, s.AverageMonthlySavings.Equal(decimal.NewFromInt(2000)), "avg savings %s", s.AverageMonthlySavings)
	assert.True(t, s.FinalNetWorth.Equal(proj.Points[11].NetWorth))
}

func TestYearsToRetirement(t *testing.T) {
	profile := testProfile()
	profile.MonthlyExpenses = decimal.NewFromInt(1000)
	profile.CurrentInvestments = decimal.NewFromInt(400000) // above the 300k target
	profile.CurrentDebt = decimal.Zero

	years := yearsToRetirement(profile, domain.ScenarioParameters{})
	require.NotNil(t, years)
	assert.True(t, years.IsZero(), "already past target, got %s years", years)

	// A profile that can never reach 25x expenses within 50 years.
	poor := testProfile()
	poor.MonthlyIncome = decimal.NewFromInt(4000)
	poor.MonthlyExpenses = decimal.NewFromInt(4000)
	poor.CurrentSavings = decimal.Zero
	poor.CurrentInvestments = decimal.Zero
	poor.InvestmentReturnRate = decimal.Zero
	assert.Nil(t, yearsToRetirement(poor, domain.ScenarioParameters{}))
}

func TestRequiredSavingsRate(t *testing.T) {
	profile := testProfile()
	profile.CurrentDebt = decimal.Zero

	target := decimal.NewFromInt(120000)
	rate, reached := requiredSavingsRate(profile, target, 120)
	require.True(t, reached)
	assert.True(t, rate.LessThanOrEqual(savingsRateCeil))

	// The returned rate must actually reach the target.
	final := finalNetWorthAtRate(profile, rate, 120)
	assert.True(t, final.GreaterThanOrEqual(target), "final %s below target %s", final, target)

	// An absurd target clamps to the ceiling.
	rate, reached = requiredSavingsRate(profile, decimal.NewFromInt(100000000), 12)
	assert.False(t, reached)
	assert.True(t, rate.Equal(savingsRateCeil))
}
