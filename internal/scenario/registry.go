package scenario

import (
	"fmt"
	"sort"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/mechanics"
)

// Solver turns a problem configuration into a report.
type Solver interface {
	Name() string
	Description() string
	Solve(cfg *config.Config) (*Report, error)
}

type Registry struct {
	solvers map[string]func() Solver
}

func NewRegistry() *Registry {
	r := &Registry{
		solvers: make(map[string]func() Solver),
	}

	r.solvers["forces"] = func() Solver { return &ForcesSolver{} }
	r.solvers["incline"] = func() Solver { return &InclineSolver{} }
	r.solvers["friction"] = func() Solver { return &FrictionSolver{} }

	return r
}

func (r *Registry) Get(name string) (Solver, error) {
	fn, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", mechanics.ErrUnknownProblem, name)
	}
	return fn(), nil
}

// List returns problem names in menu order.
func (r *Registry) List() []string {
	order := map[string]int{"forces": 0, "incline": 1, "friction": 2}
	names := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		oi, iok := order[names[i]]
		oj, jok := order[names[j]]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return names[i] < names[j]
	})
	return names
}

// Solve validates cfg and runs the solver registered for cfg.Problem.
func (r *Registry) Solve(cfg *config.Config) (*Report, error) {
	s, err := r.Get(cfg.Problem)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s problem: %w", cfg.Problem, err)
	}
	return s.Solve(cfg)
}
