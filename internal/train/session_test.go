package train

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRecorder struct {
	mutex      sync.Mutex
	iterations int
	updates    int
	accuracy   []float64
}

func (m *mockRecorder) Iteration(session string, updates int, accuracy float64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.iterations++
	m.updates += updates
	m.accuracy = append(m.accuracy, accuracy)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Points = 30
	cfg.Range = 100
	cfg.Seed = 42
	cfg.Iterations = 5000
	return cfg
}

func TestConfig_Validate(t *testing.T) {

	type test struct {
		mutate func(cfg *Config)
		err    bool
	}

	tests := map[string]test{
		"default": {
			mutate: func(cfg *Config) {},
		},
		"no-points": {
			mutate: func(cfg *Config) { cfg.Points = 0 },
		},
		"origin": {
			mutate: func(cfg *Config) { cfg.Convention = "origin" },
		},
		"zero-rate": {
			mutate: func(cfg *Config) { cfg.LearningRate = 0 },
		},
		"interval": {
			mutate: func(cfg *Config) { cfg.Interval = "10ms" },
		},
		"negative-points": {
			mutate: func(cfg *Config) { cfg.Points = -1 },
			err:    true,
		},
		"zero-range": {
			mutate: func(cfg *Config) { cfg.Range = 0 },
			err:    true,
		},
		"unknown-convention": {
			mutate: func(cfg *Config) { cfg.Convention = "polar" },
			err:    true,
		},
		"negative-rate": {
			mutate: func(cfg *Config) { cfg.LearningRate = -0.1 },
			err:    true,
		},
		"negative-iterations": {
			mutate: func(cfg *Config) { cfg.Iterations = -1 },
			err:    true,
		},
		"negative-history": {
			mutate: func(cfg *Config) { cfg.History = -1 },
			err:    true,
		},
		"bad-interval": {
			mutate: func(cfg *Config) { cfg.Interval = "often" },
			err:    true,
		},
		"negative-interval": {
			mutate: func(cfg *Config) { cfg.Interval = "-1s" },
			err:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.err {
				assert.True(t, errors.Is(err, ErrInvalidConfig))
				_, err := NewSession(cfg)
				assert.True(t, errors.Is(err, ErrInvalidConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewSession_Deterministic(t *testing.T) {
	s1, err := NewSession(testConfig())
	require.NoError(t, err)
	s2, err := NewSession(testConfig())
	require.NoError(t, err)

	assert.NotEqual(t, s1.ID(), s2.ID())
	assert.Equal(t, s1.Points(), s2.Points())
	assert.Equal(t, s1.Report().Weights, s2.Report().Weights)
	assert.Equal(t, 30, len(s1.Points()))
}

func TestSession_Step(t *testing.T) {
	recorder := new(mockRecorder)
	s, err := NewSession(testConfig())
	require.NoError(t, err)
	s.WithRecorder(recorder)

	before, err := s.Frame()
	require.NoError(t, err)
	assert.Equal(t, 0, before.Iteration)

	frame, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, frame.Iteration)
	assert.Equal(t, s.ID(), frame.ID)
	require.Equal(t, 30, len(frame.Points))

	// the first point is guessed with the initial weights
	assert.Equal(t, before.Points[0], frame.Points[0])
	var correct int
	for _, c := range frame.Points {
		if c.Correct {
			correct++
		}
	}
	assert.Equal(t, len(frame.Points)-correct, frame.Updates)
	assert.InDelta(t, float64(correct)/30, frame.Accuracy, 1e-9)

	assert.Equal(t, 1, recorder.iterations)
	assert.Equal(t, frame.Updates, recorder.updates)
}

func TestSession_FrameDoesNotTrain(t *testing.T) {
	s, err := NewSession(testConfig())
	require.NoError(t, err)
	weights := s.Report().Weights
	for i := 0; i < 5; i++ {
		_, err := s.Frame()
		require.NoError(t, err)
	}
	assert.Equal(t, weights, s.Report().Weights)
	assert.Equal(t, 0, s.Report().Iterations)
}

func TestSession_RunConverges(t *testing.T) {
	cfg := testConfig()
	cfg.StopOnConvergence = true
	recorder := new(mockRecorder)
	s, err := NewSession(cfg)
	require.NoError(t, err)
	s.WithRecorder(recorder)

	frames := 0
	var last Frame
	report, err := s.Run(context.Background(), func(frame Frame) {
		frames++
		last = frame
	})
	require.NoError(t, err)

	assert.True(t, report.Converged)
	assert.True(t, last.Converged())
	assert.Equal(t, 0, last.Updates)
	assert.Equal(t, 1.0, report.Accuracy)
	assert.Equal(t, frames, report.Iterations)
	assert.Equal(t, report.Iterations, report.ConvergedAt)
	assert.True(t, report.Iterations < cfg.Iterations)
	assert.Equal(t, frames, recorder.iterations)

	// converged weights classify every point
	frame, err := s.Frame()
	require.NoError(t, err)
	assert.Equal(t, 1.0, frame.Accuracy)
}

func TestSession_RunKeepsTraining(t *testing.T) {
	cfg := testConfig()
	cfg.Iterations = 2000
	cfg.History = 10
	s, err := NewSession(cfg)
	require.NoError(t, err)
	s.WithRecorder(new(mockRecorder))

	report, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2000, report.Iterations)
	assert.True(t, report.Converged)
	assert.True(t, report.ConvergedAt <= 2000)
	assert.Equal(t, 10, len(report.History))
	assert.Equal(t, 1.0, report.MeanAccuracy)
	assert.InDelta(t, 0.0, report.Trend, 1e-9)
}

func TestSession_DefaultHistory(t *testing.T) {
	cfg := testConfig()
	cfg.Iterations = DefaultHistory + 50
	cfg.History = 0
	assert.Equal(t, DefaultHistory, cfg.HistorySize())

	s, err := NewSession(cfg)
	require.NoError(t, err)
	s.WithRecorder(new(mockRecorder))

	report, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultHistory+50, report.Iterations)
	assert.Equal(t, DefaultHistory, len(report.History))
}

func TestSession_RunCancel(t *testing.T) {
	cfg := testConfig()
	cfg.Iterations = 0
	cfg.Interval = "1ms"
	s, err := NewSession(cfg)
	require.NoError(t, err)
	s.WithRecorder(new(mockRecorder))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	report, err := s.Run(ctx, nil)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, report.Iterations > 0)
}

func TestSession_EmptyPoints(t *testing.T) {
	cfg := testConfig()
	cfg.Points = 0
	cfg.Iterations = 3
	s, err := NewSession(cfg)
	require.NoError(t, err)
	s.WithRecorder(new(mockRecorder))

	report, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Iterations)
	assert.False(t, report.Converged)
	assert.Equal(t, 0.0, report.Accuracy)
}

func TestSession_ZeroRate(t *testing.T) {
	cfg := testConfig()
	cfg.LearningRate = 0
	cfg.Iterations = 20
	s, err := NewSession(cfg)
	require.NoError(t, err)
	s.WithRecorder(new(mockRecorder))

	weights := s.Report().Weights
	report, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, weights, report.Weights)
	// nothing changes so the accuracy stays flat
	for _, a := range report.History {
		assert.Equal(t, report.History[0], a)
	}
}

func TestSession_ConcurrentSteps(t *testing.T) {
	s, err := NewSession(testConfig())
	require.NoError(t, err)
	recorder := new(mockRecorder)
	s.WithRecorder(recorder)

	workers := 8
	steps := 25
	wg := new(sync.WaitGroup)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < steps; i++ {
				_, err := s.Step()
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*steps, s.Report().Iterations)
	assert.Equal(t, workers*steps, recorder.iterations)
}
