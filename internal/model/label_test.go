package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {

	type test struct {
		x     float64
		y     float64
		label Label
	}

	tests := map[string]test{
		"below": {
			x:     3.0,
			y:     1.0,
			label: Positive,
		},
		"above": {
			x:     1.0,
			y:     3.0,
			label: Negative,
		},
		"on-diagonal": {
			x:     2.0,
			y:     2.0,
			label: Negative,
		},
		"negative-coordinates": {
			x:     -1.0,
			y:     -3.0,
			label: Positive,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.label, Classify(tt.x, tt.y))
			p := NewPoint(tt.x, tt.y)
			assert.Equal(t, tt.label, p.Label)
			assert.Equal(t, []float64{tt.x, tt.y}, p.Inputs())
		})
	}
}

func TestSignedLabel(t *testing.T) {
	assert.Equal(t, Positive, SignedLabel(1.0))
	assert.Equal(t, Positive, SignedLabel(0.0001))
	assert.Equal(t, Negative, SignedLabel(-1.0))
	assert.Equal(t, Negative, SignedLabel(0))
}

func TestLabel_Ops(t *testing.T) {
	assert.Equal(t, 1.0, Positive.Sign())
	assert.Equal(t, -1.0, Negative.Sign())
	assert.Equal(t, 0.0, NoLabel.Sign())

	assert.True(t, Positive.Valid())
	assert.True(t, Negative.Valid())
	assert.False(t, NoLabel.Valid())
	assert.False(t, Label(2).Valid())
}

func TestNewClassified(t *testing.T) {
	p := NewPoint(3, 1)
	c := NewClassified(p, Positive)
	assert.True(t, c.Correct)
	c = NewClassified(p, Negative)
	assert.False(t, c.Correct)
	assert.Equal(t, Positive, c.Label)
	assert.Equal(t, Negative, c.Guess)
}
