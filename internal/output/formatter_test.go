package output

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lifesim/scenario-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScenario() *domain.LifeScenario {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	points := make([]domain.MonthlyProjectionPoint, 3)
	for i := range points {
		points[i] = domain.MonthlyProjectionPoint{
			Month:    i + 1,
			Date:     start.AddDate(0, i, 0),
			NetWorth: decimal.NewFromInt(int64(70000 + i*1000)),
		}
	}
	breakEven := 14
	return &domain.LifeScenario{
		ID:          "abc-123",
		Type:        domain.ScenarioRelocate,
		Title:       "Relocate to Austin",
		Description: "Move with a 10% raise.",
		Baseline: domain.FinancialProjection{
			Points:  points,
			Summary: domain.ProjectionSummary{FinalNetWorth: decimal.NewFromInt(72000)},
		},
		Projected: domain.FinancialProjection{
			Points:  points,
			Summary: domain.ProjectionSummary{FinalNetWorth: decimal.NewFromInt(80000)},
		},
		Comparison: domain.ScenarioComparison{
			NetWorthDifference: decimal.NewFromInt(8000),
			BreakEvenMonths:    &breakEven,
			Pros:               []string{"Higher income"},
			Cons:               []string{"Moving cost of $8000.00"},
			Recommendation:     "Financially favorable.",
		},
		CreatedAt: start,
	}
}

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter("console")
	require.NoError(t, err)
	assert.Equal(t, "console", f.Name())

	f, err = NewFormatter("")
	require.NoError(t, err)
	assert.Equal(t, "console", f.Name())

	f, err = NewFormatter("json")
	require.NoError(t, err)
	assert.Equal(t, "json", f.Name())

	_, err = NewFormatter("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleScenario())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "Relocate to Austin")
	assert.Contains(t, text, "Horizon:               3 months")
	assert.Contains(t, text, "Net worth difference:  $8000.00")
	assert.Contains(t, text, "Break-even:            month 14")
	assert.Contains(t, text, "+ Higher income")
	assert.Contains(t, text, "- Moving cost of $8000.00")
	assert.Contains(t, text, "Recommendation: Financially favorable.")
}

func TestConsoleFormatter_Fallback(t *testing.T) {
	scenario := &domain.LifeScenario{
		Title:       "Unable to simulate",
		Description: "Simulation could not be completed.",
		Comparison:  domain.ScenarioComparison{Recommendation: "Unable to simulate — please provide more details"},
		Fallback:    true,
	}

	out, err := ConsoleFormatter{}.Format(scenario)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "please provide more details")
	assert.NotContains(t, text, "Horizon:")
	assert.NotContains(t, text, "Recommendation:")
}

func TestJSONFormatter_RoundTrip(t *testing.T) {
	want := sampleScenario()
	out, err := JSONFormatter{}.Format(want)
	require.NoError(t, err)

	var got domain.LifeScenario
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Type, got.Type)
	assert.True(t, got.Comparison.NetWorthDifference.Equal(want.Comparison.NetWorthDifference))
	require.NotNil(t, got.Comparison.BreakEvenMonths)
	assert.Equal(t, 14, *got.Comparison.BreakEvenMonths)
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "No scenarios stored.\n", FormatList(nil))

	ok := *sampleScenario()
	failed := domain.LifeScenario{ID: "def-456", Type: domain.ScenarioCustom, Title: "Unable to simulate", Fallback: true}
	text := FormatList([]domain.LifeScenario{ok, failed})

	assert.Contains(t, text, "abc-123")
	assert.Contains(t, text, "net worth $8000.00")
	assert.Contains(t, text, "! def-456")
}
