package points

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/drakos74/free-perceptron/internal/model"
)

// ErrInvalidConfig is returned for generator arguments outside the allowed range.
var ErrInvalidConfig = errors.New("invalid config")

// Source is a uniform random source in [0,1).
type Source interface {
	Float64() float64
}

// Convention defines the coordinate span of the generated points.
type Convention string

const (
	// Centered spans [-range/2, range/2) on both axes.
	Centered Convention = "centered"
	// Origin spans [0, range) on both axes.
	Origin Convention = "origin"
)

// ParseConvention parses the given string into a known convention.
func ParseConvention(s string) (Convention, error) {
	switch c := Convention(strings.ToLower(strings.TrimSpace(s))); c {
	case Centered, Origin:
		return c, nil
	}
	return "", fmt.Errorf("unknown convention '%s': %w", s, ErrInvalidConfig)
}

// Bounds returns the [min, max) interval for the given range.
func (c Convention) Bounds(r float64) (float64, float64) {
	if c == Origin {
		return 0, r
	}
	return -r / 2, r / 2
}

// Generator produces labeled points.
type Generator struct {
	source     Source
	convention Convention
}

// New creates a new generator drawing from the given source.
func New(source Source, convention Convention) *Generator {
	return &Generator{
		source:     source,
		convention: convention,
	}
}

// Default creates a generator backed by a time seeded source.
func Default(convention Convention) *Generator {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())), convention)
}

// Convention returns the coordinate convention of the generator.
func (g *Generator) Convention() Convention {
	return g.convention
}

// Generate creates count points with coordinates drawn within the given range.
func (g *Generator) Generate(count int, r float64) ([]model.Point, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative count %d: %w", count, ErrInvalidConfig)
	}
	if !(r > 0) || math.IsInf(r, 0) {
		return nil, fmt.Errorf("range must be positive but was %v: %w", r, ErrInvalidConfig)
	}
	if g.convention != Centered && g.convention != Origin {
		return nil, fmt.Errorf("unknown convention '%s': %w", g.convention, ErrInvalidConfig)
	}

	min, max := g.convention.Bounds(r)
	pp := make([]model.Point, count)
	for i := 0; i < count; i++ {
		x := g.uniform(min, max)
		y := g.uniform(min, max)
		pp[i] = model.NewPoint(x, y)
	}
	return pp, nil
}

func (g *Generator) uniform(min, max float64) float64 {
	return g.source.Float64()*(max-min) + min
}
