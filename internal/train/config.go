package train

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/drakos74/free-perceptron/internal/points"
)

// ErrInvalidConfig is returned for a session configuration that cannot be run.
var ErrInvalidConfig = errors.New("invalid config")

const (
	// Dim is the dimensionality of the points fed into the perceptron.
	Dim = 2
	// DefaultHistory is the number of iterations kept for the report statistics.
	DefaultHistory = 100
)

// Config defines the training session parameters.
type Config struct {
	Points            int     `json:"points"`
	Range             float64 `json:"range"`
	Convention        string  `json:"convention"`
	LearningRate      float64 `json:"learning_rate"`
	Iterations        int     `json:"iterations"`
	Seed              int64   `json:"seed"`
	History           int     `json:"history"`
	StopOnConvergence bool    `json:"stop_on_convergence"`
	Interval          string  `json:"interval"`
}

// DefaultConfig returns the configuration of the classic demo.
func DefaultConfig() Config {
	return Config{
		Points:       100,
		Range:        200,
		Convention:   string(points.Centered),
		LearningRate: 0.1,
		Iterations:   1000,
		History:      DefaultHistory,
	}
}

// Validate checks the configuration for values the session cannot work with.
func (c Config) Validate() error {
	if c.Points < 0 {
		return fmt.Errorf("negative number of points %d: %w", c.Points, ErrInvalidConfig)
	}
	if !(c.Range > 0) || math.IsInf(c.Range, 0) {
		return fmt.Errorf("range must be positive but was %v: %w", c.Range, ErrInvalidConfig)
	}
	if _, err := points.ParseConvention(c.Convention); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), ErrInvalidConfig)
	}
	if math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) || c.LearningRate < 0 {
		return fmt.Errorf("learning rate must be a non-negative number but was %v: %w", c.LearningRate, ErrInvalidConfig)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("negative number of iterations %d: %w", c.Iterations, ErrInvalidConfig)
	}
	if c.History < 0 {
		return fmt.Errorf("negative history size %d: %w", c.History, ErrInvalidConfig)
	}
	if _, err := c.Pace(); err != nil {
		return err
	}
	return nil
}

// HistorySize returns the number of iterations kept for the report statistics.
// A zero history falls back to DefaultHistory.
func (c Config) HistorySize() int {
	if c.History == 0 {
		return DefaultHistory
	}
	return c.History
}

// Pace returns the pause between iterations, zero meaning no pause.
func (c Config) Pace() (time.Duration, error) {
	if c.Interval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("could not parse interval '%s': %w", c.Interval, ErrInvalidConfig)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative interval '%s': %w", c.Interval, ErrInvalidConfig)
	}
	return d, nil
}
