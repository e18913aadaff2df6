package train

import (
	coinmath "github.com/drakos74/free-perceptron/internal/math"
	"gonum.org/v1/gonum/stat"
)

// Report summarises the progress of a session.
type Report struct {
	ID           string    `json:"id"`
	Points       int       `json:"points"`
	LearningRate float64   `json:"learning_rate"`
	Iterations   int       `json:"iterations"`
	Accuracy     float64   `json:"accuracy"`
	MeanAccuracy float64   `json:"mean_accuracy"`
	Trend        float64   `json:"trend"`
	History      []float64 `json:"history"`
	Converged    bool      `json:"converged"`
	ConvergedAt  int       `json:"converged_at"`
	Weights      []float64 `json:"weights"`
}

// Report creates a report for the current state of the session.
func (s *Session) Report() Report {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	history := s.history.Get()
	report := Report{
		ID:           s.id,
		Points:       len(s.points),
		LearningRate: s.cfg.LearningRate,
		Iterations:   s.iteration,
		History:      history,
		Converged:    s.convergedAt > 0,
		ConvergedAt:  s.convergedAt,
		Weights:      s.perceptron.Weights(),
	}
	if last, ok := s.history.Last(); ok {
		report.Accuracy = last
	}
	if len(history) > 0 {
		report.MeanAccuracy = stat.Mean(history, nil)
	}
	if trend, err := coinmath.Trend(history); err == nil {
		report.Trend = trend
	}
	return report
}
