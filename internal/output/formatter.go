// Package output renders completed life scenarios for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lifesim/scenario-engine/internal/domain"
	"github.com/lifesim/scenario-engine/pkg/money"
)

// Formatter defines a pluggable scenario renderer. Implementations should be
// pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(scenario *domain.LifeScenario) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// NewFormatter returns the formatter for a format identifier.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "console", "":
		return ConsoleFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// JSONFormatter emits the full record as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(scenario *domain.LifeScenario) ([]byte, error) {
	return json.MarshalIndent(scenario, "", "  ")
}

// ConsoleFormatter emits a human-readable summary.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(scenario *domain.LifeScenario) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", scenario.Title)
	fmt.Fprintf(&b, "%s\n\n", scenario.Description)

	if scenario.Fallback {
		fmt.Fprintf(&b, "%s\n", scenario.Comparison.Recommendation)
		return []byte(b.String()), nil
	}

	cmp := scenario.Comparison
	fmt.Fprintf(&b, "Horizon:               %d months\n", scenario.Projected.Horizon())
	fmt.Fprintf(&b, "Baseline net worth:    %s\n", money.FromDecimal(scenario.Baseline.Summary.FinalNetWorth).Format())
	fmt.Fprintf(&b, "Scenario net worth:    %s\n", money.FromDecimal(scenario.Projected.Summary.FinalNetWorth).Format())
	fmt.Fprintf(&b, "Net worth difference:  %s\n", money.FromDecimal(cmp.NetWorthDifference).Format())
	fmt.Fprintf(&b, "Savings difference:    %s\n", money.FromDecimal(cmp.TotalSavingsDifference).Format())
	fmt.Fprintf(&b, "Expense difference:    %s/month\n", money.FromDecimal(cmp.MonthlyExpenseDifference).Format())
	if cmp.OpportunityCost.IsPositive() {
		fmt.Fprintf(&b, "Opportunity cost:      %s\n", money.FromDecimal(cmp.OpportunityCost).Format())
	}
	if cmp.BreakEvenMonths != nil {
		fmt.Fprintf(&b, "Break-even:            month %d\n", *cmp.BreakEvenMonths)
	}
	if d := scenario.Projected.Summary.DebtFreeDate; d != nil {
		fmt.Fprintf(&b, "Debt-free:             %s\n", d.Format("January 2006"))
	}
	if y := scenario.Projected.Summary.YearsToRetirement; y != nil {
		fmt.Fprintf(&b, "Years to retirement:   %s\n", y.StringFixed(1))
	}

	if len(cmp.Pros) > 0 {
		fmt.Fprintf(&b, "\nPros:\n")
		for _, p := range cmp.Pros {
			fmt.Fprintf(&b, "  + %s\n", p)
		}
	}
	if len(cmp.Cons) > 0 {
		fmt.Fprintf(&b, "\nCons:\n")
		for _, c := range cmp.Cons {
			fmt.Fprintf(&b, "  - %s\n", c)
		}
	}

	fmt.Fprintf(&b, "\nRecommendation: %s\n", cmp.Recommendation)
	return []byte(b.String()), nil
}

// FormatList renders a one-line-per-scenario listing, newest first.
func FormatList(scenarios []domain.LifeScenario) string {
	if len(scenarios) == 0 {
		return "No scenarios stored.\n"
	}
	var b strings.Builder
	for _, s := range scenarios {
		marker := " "
		if s.Fallback {
			marker = "!"
		}
		fmt.Fprintf(&b, "%s %s  %-16s %-32s net worth %s\n",
			marker, s.ID, s.Type, s.Title,
			money.FromDecimal(s.Comparison.NetWorthDifference).Format())
	}
	return b.String()
}
