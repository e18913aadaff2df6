package perceptron

import (
	"errors"
	"fmt"
	"math"

	"github.com/drakos74/free-perceptron/internal/model"
	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/rs/zerolog/log"
)

var (
	// ErrDimensionMismatch is returned when the input size differs from the number of weights.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInvalidConfig is returned for an unusable dimensionality or learning rate.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidLabel is returned when training towards an unknown label.
	ErrInvalidLabel = errors.New("invalid label")
)

// Source is a uniform random source in [0,1).
type Source interface {
	Float64() float64
}

// Perceptron is a single layer linear classifier.
// It is not safe for concurrent use, callers must serialize Train calls.
type Perceptron struct {
	weights xmath.Vector
	rate    float64
}

// New creates a perceptron for inputs of the given dimensionality,
// with weights drawn uniformly from [-1,1).
func New(dim int, rate float64, source Source) (*Perceptron, error) {
	if dim < 1 {
		return nil, fmt.Errorf("dimensionality must be positive but was %d: %w", dim, ErrInvalidConfig)
	}
	weights := xmath.Vec(dim)
	for i := range weights {
		weights[i] = source.Float64()*2 - 1
	}
	return newPerceptron(weights, rate)
}

// WithWeights creates a perceptron with the given initial weights.
func WithWeights(weights []float64, rate float64) (*Perceptron, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("no weights given: %w", ErrInvalidConfig)
	}
	w := xmath.Vec(len(weights)).With(weights...)
	return newPerceptron(w, rate)
}

func newPerceptron(weights xmath.Vector, rate float64) (*Perceptron, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return nil, fmt.Errorf("learning rate must be a non-negative number but was %v: %w", rate, ErrInvalidConfig)
	}
	if rate == 0 {
		log.Warn().
			Int("dim", len(weights)).
			Msg("zero learning rate, training will not update the weights")
	}
	return &Perceptron{
		weights: weights,
		rate:    rate,
	}, nil
}

// Dim returns the expected size of the input vectors.
func (p *Perceptron) Dim() int {
	return len(p.weights)
}

// Rate returns the learning rate.
func (p *Perceptron) Rate() float64 {
	return p.rate
}

// Weights returns a copy of the current weights.
func (p *Perceptron) Weights() []float64 {
	return p.weights.Copy()
}

// Predict returns the sign of the dot product of the inputs with the weights.
// A zero sum is classified as Negative.
func (p *Perceptron) Predict(inputs []float64) (model.Label, error) {
	if err := p.check(inputs); err != nil {
		return model.NoLabel, err
	}
	return model.SignedLabel(p.weights.Dot(inputs)), nil
}

// Train adjusts the weights towards the target with the perceptron learning rule.
// Weights are left untouched if the current guess matches the target.
func (p *Perceptron) Train(inputs []float64, target model.Label) error {
	_, err := p.train(inputs, target)
	return err
}

// train returns the error term of the update e.g. one of -2, 0, 2.
func (p *Perceptron) train(inputs []float64, target model.Label) (float64, error) {
	if !target.Valid() {
		return 0, fmt.Errorf("cannot train towards '%s': %w", target, ErrInvalidLabel)
	}
	guess, err := p.Predict(inputs)
	if err != nil {
		return 0, err
	}
	e := target.Sign() - guess.Sign()
	if e == 0 {
		return 0, nil
	}
	delta := xmath.Vector(inputs).Mult(e * p.rate)
	copy(p.weights, p.weights.Add(delta))
	return e, nil
}

// Boundary returns the slope of the decision line w0*x + w1*y = 0 as y = slope * x.
// It is only defined for two dimensional inputs with a non-zero second weight.
func (p *Perceptron) Boundary() (float64, bool) {
	if len(p.weights) != 2 || p.weights[1] == 0 {
		return 0, false
	}
	return -p.weights[0] / p.weights[1], true
}

func (p *Perceptron) check(inputs []float64) error {
	if len(inputs) != len(p.weights) {
		return fmt.Errorf("expected %d inputs but got %d: %w", len(p.weights), len(inputs), ErrDimensionMismatch)
	}
	return nil
}
