package health

import (
	"context"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped so optional
// stores can be passed unconditionally.
func NewService(checkers ...Checker) ReadinessUseCase {
	out := make([]Checker, 0, len(checkers))
	for _, ch := range checkers {
		if ch != nil {
			out = append(out, ch)
		}
	}
	return &service{checkers: out}
}

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}
