package utils

import (
	"fmt"

	"go.uber.org/zap"
)

// Step is one named stage of a command.
type Step struct {
	Name string
	Run  func() error
}

// Run executes steps in order and stops at the first failure. The error is
// prefixed with the failing step's name.
func Run(log *zap.Logger, steps ...Step) error {
	for _, s := range steps {
		log.Debug("Running step", zap.String("step", s.Name))
		if err := s.Run(); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	return nil
}
