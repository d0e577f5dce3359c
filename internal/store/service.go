package store

import (
	"sync"

	"github.com/lifesim/scenario-engine/internal/calculation"
	"github.com/lifesim/scenario-engine/internal/domain"
)

// Service wires the simulation engine to a Repository and serializes all
// list mutations behind a mutex so concurrent simulations cannot interleave
// into a corrupted list. The list is ordered newest first.
type Service struct {
	mu        sync.Mutex
	repo      Repository
	engine    *calculation.SimulationEngine
	logger    calculation.Logger
	scenarios []domain.LifeScenario
}

// NewService loads the repository into memory. Decode failures are absorbed
// as an empty store and logged; they are never surfaced to the caller.
func NewService(repo Repository, engine *calculation.SimulationEngine, logger calculation.Logger) *Service {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	scenarios, err := repo.Load()
	if err != nil {
		logger.Warnf("scenario store unreadable, starting empty: %v", err)
		scenarios = []domain.LifeScenario{}
	}
	return &Service{
		repo:      repo,
		engine:    engine,
		logger:    logger,
		scenarios: scenarios,
	}
}

// Simulate runs the pipeline for a scenario request and persists the
// resulting record at the head of the list. It always returns either a
// fully valid record or a tagged fallback record; it never returns a
// partial result.
func (s *Service) Simulate(profile domain.UserFinancialProfile, req domain.ScenarioRequest, horizonMonths int) domain.LifeScenario {
	record, err := s.engine.Run(profile, req, horizonMonths)
	if err != nil {
		scenarioType := domain.ScenarioCustom
		if req != nil {
			scenarioType = req.Type()
		}
		s.logger.Warnf("simulation failed, returning fallback: %v", err)
		record = s.engine.FallbackScenario(scenarioType, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios = append([]domain.LifeScenario{*record}, s.scenarios...)
	s.persistLocked()
	return *record
}

// List returns a copy of the stored scenarios, newest first.
func (s *Service) List() []domain.LifeScenario {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LifeScenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out
}

// Get looks up a scenario by id. The returned record is a copy; the stored
// one never mutates.
func (s *Service) Get(id string) (domain.LifeScenario, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sc := range s.scenarios {
		if sc.ID == id {
			return sc, true
		}
	}
	return domain.LifeScenario{}, false
}

// Delete removes a scenario by id. An unknown id is a no-op, reported via
// the return value, never fatal.
func (s *Service) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sc := range s.scenarios {
		if sc.ID == id {
			s.scenarios = append(s.scenarios[:i], s.scenarios[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	s.logger.Debugf("delete of unknown scenario %s ignored", id)
	return false
}

// persistLocked saves the current list; persistence failures are logged and
// absorbed, never propagated to the simulation caller.
func (s *Service) persistLocked() {
	if err := s.repo.Save(s.scenarios); err != nil {
		s.logger.Errorf("saving scenario store: %v", err)
	}
}
