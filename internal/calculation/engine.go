package calculation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lifesim/scenario-engine/internal/domain"
)

// ErrInvalidInput marks synchronous validation failures that are fatal to
// the call (non-positive horizon, negative core profile fields).
var ErrInvalidInput = errors.New("invalid input")

// SimulationEngine orchestrates scenario composition, projection, and
// comparison. It holds no mutable state of its own: concurrent Run calls
// are safe without locking. Dependencies are injected at construction.
type SimulationEngine struct {
	Clock  Clock
	Logger Logger
	Policy RecommendationPolicy
}

// NewSimulationEngine creates an engine with the system clock, a no-op
// logger, and the default recommendation policy.
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{
		Clock:  SystemClock{},
		Logger: NopLogger{},
		Policy: DefaultRecommendationPolicy(),
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Run executes the full pipeline for one scenario request: compose the
// parameter deltas, project the baseline and the scenario over the same
// horizon, diff the two, and assemble the immutable record.
func (e *SimulationEngine) Run(profile domain.UserFinancialProfile, req domain.ScenarioRequest, horizonMonths int) (*domain.LifeScenario, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: scenario request is required", ErrInvalidInput)
	}
	if horizonMonths <= 0 {
		return nil, fmt.Errorf("%w: horizon must be positive, got %d", ErrInvalidInput, horizonMonths)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	composed, err := e.Compose(profile, req)
	if err != nil {
		return nil, fmt.Errorf("composing %s scenario: %w", req.Type(), err)
	}

	// Scenario-derived horizons (e.g. months until a target retirement age)
	// apply to both trajectories so the comparison stays apples-to-apples.
	horizon := horizonMonths
	if composed.Parameters.HorizonMonths != nil {
		horizon = *composed.Parameters.HorizonMonths
	}

	baseline, err := e.Project(profile, domain.ScenarioParameters{}, horizon)
	if err != nil {
		return nil, fmt.Errorf("projecting baseline: %w", err)
	}
	projected, err := e.Project(profile, composed.Parameters, horizon)
	if err != nil {
		return nil, fmt.Errorf("projecting scenario: %w", err)
	}

	comparison := e.Compare(baseline, projected, req.Type(), composed.Parameters)
	e.Logger.Debugf("scenario %q: net worth delta %s over %d months",
		composed.Title, comparison.NetWorthDifference.StringFixed(2), horizon)

	return &domain.LifeScenario{
		ID:          uuid.NewString(),
		Type:        req.Type(),
		Title:       composed.Title,
		Description: composed.Description,
		Parameters:  composed.Parameters,
		Baseline:    baseline,
		Projected:   projected,
		Comparison:  comparison,
		CreatedAt:   e.Clock.Now(),
	}, nil
}

// FallbackScenario builds the clearly tagged placeholder record returned
// when simulation cannot run: empty projections and an explanatory
// recommendation, never a partial or inconsistent record.
func (e *SimulationEngine) FallbackScenario(scenarioType domain.ScenarioType, cause error) *domain.LifeScenario {
	desc := "Simulation could not be completed."
	if cause != nil {
		desc = fmt.Sprintf("Simulation could not be completed: %v.", cause)
	}
	return &domain.LifeScenario{
		ID:          uuid.NewString(),
		Type:        scenarioType,
		Title:       "Unable to simulate",
		Description: desc,
		Comparison: domain.ScenarioComparison{
			Recommendation: FallbackRecommendation,
			Pros:           []string{},
			Cons:           []string{},
		},
		CreatedAt: e.Clock.Now(),
		Fallback:  true,
	}
}
