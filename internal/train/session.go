package train

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/drakos74/free-perceptron/internal/buffer"
	coinmath "github.com/drakos74/free-perceptron/internal/math"
	"github.com/drakos74/free-perceptron/internal/metrics"
	"github.com/drakos74/free-perceptron/internal/model"
	"github.com/drakos74/free-perceptron/internal/perceptron"
	"github.com/drakos74/free-perceptron/internal/points"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Recorder tracks the progress of the iterations.
type Recorder interface {
	Iteration(session string, updates int, accuracy float64)
}

// Listener receives every frame produced by a running session.
type Listener func(frame Frame)

// Frame is the state of the classification at a given iteration.
type Frame struct {
	ID        string             `json:"id"`
	Iteration int                `json:"iteration"`
	Points    []model.Classified `json:"points"`
	Accuracy  float64            `json:"accuracy"`
	Updates   int                `json:"updates"`
	Weights   []float64          `json:"weights"`
	Boundary  *float64           `json:"boundary,omitempty"`
}

// Converged checks if every point of the frame is classified correctly.
func (f Frame) Converged() bool {
	return len(f.Points) > 0 && f.Accuracy == 1.0
}

// Session drives a perceptron over a fixed set of points.
// All calls are serialized, so a session can be shared across goroutines.
type Session struct {
	id          string
	cfg         Config
	pace        time.Duration
	points      []model.Point
	perceptron  *perceptron.Perceptron
	recorder    Recorder
	history     *buffer.Buffer
	iteration   int
	convergedAt int
	mutex       *sync.Mutex
}

// NewSession generates the point set and initialises the perceptron for the given config.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pace, _ := cfg.Pace()
	convention, _ := points.ParseConvention(cfg.Convention)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.New(rand.NewSource(seed))

	pp, err := points.New(source, convention).Generate(cfg.Points, cfg.Range)
	if err != nil {
		return nil, fmt.Errorf("could not generate points: %w", err)
	}

	p, err := perceptron.New(Dim, cfg.LearningRate, source)
	if err != nil {
		return nil, fmt.Errorf("could not create perceptron: %w", err)
	}

	s := &Session{
		id:         uuid.New().String(),
		cfg:        cfg,
		pace:       pace,
		points:     pp,
		perceptron: p,
		recorder:   metrics.Observer,
		history:    buffer.NewBuffer(cfg.HistorySize()),
		mutex:      new(sync.Mutex),
	}

	log.Info().
		Str("session", s.id).
		Int("points", len(pp)).
		Float64("range", cfg.Range).
		Str("convention", string(convention)).
		Float64("rate", cfg.LearningRate).
		Floats64("weights", p.Weights()).
		Msg("created session")

	return s, nil
}

// WithRecorder replaces the metrics recorder of the session.
func (s *Session) WithRecorder(recorder Recorder) *Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.recorder = recorder
	return s
}

// ID returns the unique identifier of the session.
func (s *Session) ID() string {
	return s.id
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Points returns a copy of the session points.
func (s *Session) Points() []model.Point {
	pp := make([]model.Point, len(s.points))
	copy(pp, s.points)
	return pp
}

// Step runs one iteration, feeding every point through predict and train.
// The returned frame reflects the guesses made before each update.
func (s *Session) Step() (Frame, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.step()
}

// Frame returns the current classification of the points without training.
func (s *Session) Frame() (Frame, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cc := make([]model.Classified, len(s.points))
	var correct int
	for i, p := range s.points {
		guess, err := s.perceptron.Predict(p.Inputs())
		if err != nil {
			return Frame{}, fmt.Errorf("could not predict point %d: %w", i, err)
		}
		cc[i] = model.NewClassified(p, guess)
		if cc[i].Correct {
			correct++
		}
	}
	return s.frame(cc, correct, 0), nil
}

func (s *Session) step() (Frame, error) {
	cc := make([]model.Classified, len(s.points))
	var correct int
	var updates int
	for i, p := range s.points {
		inputs := p.Inputs()
		guess, err := s.perceptron.Predict(inputs)
		if err != nil {
			return Frame{}, fmt.Errorf("could not predict point %d: %w", i, err)
		}
		cc[i] = model.NewClassified(p, guess)
		if cc[i].Correct {
			correct++
			continue
		}
		err = s.perceptron.Train(inputs, p.Label)
		if err != nil {
			return Frame{}, fmt.Errorf("could not train on point %d: %w", i, err)
		}
		updates++
	}
	s.iteration++

	frame := s.frame(cc, correct, updates)
	s.history.Push(frame.Accuracy)
	s.recorder.Iteration(s.id, updates, frame.Accuracy)

	if frame.Converged() && s.convergedAt == 0 {
		s.convergedAt = s.iteration
		log.Info().
			Str("session", s.id).
			Int("iteration", s.iteration).
			Floats64("weights", frame.Weights).
			Msg("all points classified correctly")
	}

	log.Debug().
		Str("session", s.id).
		Int("iteration", s.iteration).
		Int("updates", updates).
		Float64("accuracy", frame.Accuracy).
		Msg("step")

	return frame, nil
}

func (s *Session) frame(cc []model.Classified, correct, updates int) Frame {
	frame := Frame{
		ID:        s.id,
		Iteration: s.iteration,
		Points:    cc,
		Accuracy:  coinmath.Ratio(correct, len(cc)),
		Updates:   updates,
		Weights:   s.perceptron.Weights(),
	}
	if slope, ok := s.perceptron.Boundary(); ok {
		frame.Boundary = &slope
	}
	return frame
}

// Run steps through the iterations until the configured limit is reached,
// or the context is done. A zero iteration limit runs until the context is done.
// Each frame is passed to the listener, if one is given.
func (s *Session) Run(ctx context.Context, listener Listener) (Report, error) {
	var ticker *time.Ticker
	if s.pace > 0 {
		ticker = time.NewTicker(s.pace)
		defer ticker.Stop()
	}

	for i := 0; s.cfg.Iterations == 0 || i < s.cfg.Iterations; i++ {
		select {
		case <-ctx.Done():
			log.Info().Str("session", s.id).Int("iteration", s.iteration).Msg("session stopped")
			return s.Report(), ctx.Err()
		default:
		}

		frame, err := s.Step()
		if err != nil {
			return s.Report(), err
		}
		if listener != nil {
			listener(frame)
		}
		if s.cfg.StopOnConvergence && frame.Converged() {
			break
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				log.Info().Str("session", s.id).Int("iteration", s.iteration).Msg("session stopped")
				return s.Report(), ctx.Err()
			case <-ticker.C:
			}
		}
	}

	report := s.Report()
	log.Info().
		Str("session", s.id).
		Int("iterations", report.Iterations).
		Float64("accuracy", report.Accuracy).
		Bool("converged", report.Converged).
		Msg("session finished")
	return report, nil
}
