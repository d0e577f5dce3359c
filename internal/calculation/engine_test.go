package calculation

import (
	"testing"

	"github.com/lifesim/scenario-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FullRecord(t *testing.T) {
	e := newTestEngine()
	record, err := e.Run(testProfile(), domain.HaveChildRequest{
		MonthlyCost: decimal.NewFromInt(1200),
		InitialCost: decimal.NewFromInt(5000),
	}, 36)
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, domain.ScenarioHaveChild, record.Type)
	assert.Equal(t, "Have a child", record.Title)
	assert.False(t, record.Fallback)
	assert.Len(t, record.Baseline.Points, 36)
	assert.Len(t, record.Projected.Points, 36)
	assert.NotEmpty(t, record.Comparison.Recommendation)
	assert.Equal(t, e.Clock.Now(), record.CreatedAt)

	// The extra spending must cost net worth relative to the baseline.
	assert.True(t, record.Comparison.NetWorthDifference.IsNegative())
}

func TestRun_PayOffDebtReachesDebtFree(t *testing.T) {
	// $200/month extra against $10,000 amortizes well within 60 months.
	e := newTestEngine()
	record, err := e.Run(testProfile(), domain.PayOffDebtRequest{
		DebtAmount:   decimal.NewFromInt(10000),
		ExtraPayment: decimal.NewFromInt(200),
	}, 60)
	require.NoError(t, err)

	debtFree := record.Projected.Summary.DebtFreeDate
	require.NotNil(t, debtFree, "expected a debt-free date")
	last := record.Projected.Points[len(record.Projected.Points)-1].Date
	assert.True(t, debtFree.Before(last), "debt-free %s not before horizon end %s", debtFree, last)
}

func TestRun_EarlyRetirementDerivedHorizon(t *testing.T) {
	// The scenario-derived horizon applies to both trajectories.
	e := newTestEngine()
	record, err := e.Run(testProfile(), domain.EarlyRetirementRequest{TargetAge: 45}, 12)
	require.NoError(t, err)

	wantMonths := (45 - 35) * 12
	assert.Len(t, record.Baseline.Points, wantMonths)
	assert.Len(t, record.Projected.Points, wantMonths)
}

func TestRun_InvalidInput(t *testing.T) {
	e := newTestEngine()

	_, err := e.Run(testProfile(), domain.CustomRequest{}, 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.Run(testProfile(), nil, 12)
	require.ErrorIs(t, err, ErrInvalidInput)

	bad := testProfile()
	bad.CurrentDebt = decimal.NewFromInt(-5)
	_, err = e.Run(bad, domain.CustomRequest{}, 12)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestFallbackScenario(t *testing.T) {
	e := newTestEngine()
	record := e.FallbackScenario(domain.ScenarioEarlyRetirement, ErrInvalidInput)

	assert.True(t, record.Fallback)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, domain.ScenarioEarlyRetirement, record.Type)
	assert.Equal(t, FallbackRecommendation, record.Comparison.Recommendation)
	assert.Empty(t, record.Baseline.Points)
	assert.Empty(t, record.Projected.Points)
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	e := newTestEngine()
	e.SetLogger(nil)
	_, ok := e.Logger.(NopLogger)
	assert.True(t, ok)
}
