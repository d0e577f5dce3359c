package calculation

import (
	"fmt"

	"github.com/lifesim/scenario-engine/pkg/money"
	"github.com/shopspring/decimal"
)

// FallbackRecommendation is the explanatory text carried by a fallback
// scenario when simulation could not run.
const FallbackRecommendation = "Unable to simulate — please provide more details"

// RecommendationPolicy holds the net-worth-difference bands the analyzer
// uses to select recommendation text. The defaults are product policy
// constants, not derived financial guidance; callers may override them.
type RecommendationPolicy struct {
	StrongPositive decimal.Decimal `json:"strong_positive" yaml:"strong_positive"`
	Positive       decimal.Decimal `json:"positive" yaml:"positive"`
	MildNegative   decimal.Decimal `json:"mild_negative" yaml:"mild_negative"` // negative number
}

// DefaultRecommendationPolicy returns the stock bands: $100k strongly
// favorable, $25k favorable, anything above -$50k mildly negative.
func DefaultRecommendationPolicy() RecommendationPolicy {
	return RecommendationPolicy{
		StrongPositive: decimal.NewFromInt(100000),
		Positive:       decimal.NewFromInt(25000),
		MildNegative:   decimal.NewFromInt(-50000),
	}
}

// Recommend selects the recommendation tier for a final net-worth difference.
func (p RecommendationPolicy) Recommend(netWorthDiff decimal.Decimal) string {
	amount := money.FromDecimal(netWorthDiff.Abs()).Format()
	switch {
	case netWorthDiff.GreaterThanOrEqual(p.StrongPositive):
		return fmt.Sprintf("Strongly favorable: this change is projected to add %s to your net worth.", amount)
	case netWorthDiff.GreaterThanOrEqual(p.Positive):
		return fmt.Sprintf("Financially favorable: a projected net worth gain of %s.", amount)
	case !netWorthDiff.IsNegative():
		return "Roughly neutral financially; decide on lifestyle fit rather than the numbers."
	case netWorthDiff.GreaterThanOrEqual(p.MildNegative):
		return fmt.Sprintf("A modest projected cost of %s; consider the non-financial benefits before deciding.", amount)
	default:
		return fmt.Sprintf("A significant projected cost of %s; explore alternatives before committing.", amount)
	}
}
