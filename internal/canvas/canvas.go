package canvas

import (
	"fmt"
	"math"
	"strings"

	"github.com/drakos74/free-perceptron/internal/emoji"
	coinmath "github.com/drakos74/free-perceptron/internal/math"
	"github.com/drakos74/free-perceptron/internal/model"
	"github.com/drakos74/free-perceptron/internal/points"
	"github.com/drakos74/free-perceptron/internal/train"
	"github.com/guptarohit/asciigraph"
)

const (
	Empty    = ' '
	Diagonal = '.'
	Boundary = '*'
	Positive = '+'
	Negative = 'o'
	Wrong    = 'x'
)

// Canvas renders frames as a character grid.
type Canvas struct {
	width  int
	height int
	min    float64
	max    float64
}

// New creates a canvas of the given size, spanning [min,max) on both axes.
func New(width, height int, min, max float64) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Canvas{
		width:  width,
		height: height,
		min:    min,
		max:    max,
	}
}

// ForConvention creates a canvas covering the area of the generated points.
func ForConvention(width, height int, convention points.Convention, r float64) *Canvas {
	min, max := convention.Bounds(r)
	return New(width, height, min, max)
}

// col maps x to a column, returning false if outside the canvas.
func (c *Canvas) col(x float64) (int, bool) {
	i := int(math.Floor((x - c.min) / (c.max - c.min) * float64(c.width)))
	return i, i >= 0 && i < c.width
}

// row maps y to a row, with the largest y at the top.
func (c *Canvas) row(y float64) (int, bool) {
	i := int(math.Floor((y - c.min) / (c.max - c.min) * float64(c.height)))
	return c.height - 1 - i, i >= 0 && i < c.height
}

// x returns the x coordinate at the center of the given column.
func (c *Canvas) x(col int) float64 {
	return c.min + (float64(col)+0.5)*(c.max-c.min)/float64(c.width)
}

// Draw renders the points of the frame with the diagonal and the current decision boundary.
func (c *Canvas) Draw(frame train.Frame) string {
	grid := make([][]rune, c.height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(string(Empty), c.width))
	}

	for col := 0; col < c.width; col++ {
		x := c.x(col)
		if row, ok := c.row(x); ok {
			grid[row][col] = Diagonal
		}
		if frame.Boundary != nil {
			if row, ok := c.row(*frame.Boundary * x); ok {
				grid[row][col] = Boundary
			}
		}
	}

	for _, p := range frame.Points {
		col, okc := c.col(p.X)
		row, okr := c.row(p.Y)
		if !okc || !okr {
			continue
		}
		grid[row][col] = Glyph(p)
	}

	b := new(strings.Builder)
	border := "+" + strings.Repeat("-", c.width) + "+\n"
	b.WriteString(border)
	for _, line := range grid {
		b.WriteString("|")
		b.WriteString(string(line))
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}

// Glyph returns the grid character for the classified point.
func Glyph(p model.Classified) rune {
	if !p.Correct {
		return Wrong
	}
	if p.Label == model.Positive {
		return Positive
	}
	return Negative
}

// Status returns a one line summary of the frame.
func Status(frame train.Frame) string {
	guesses := make(map[model.Label]int)
	for _, p := range frame.Points {
		guesses[p.Guess]++
	}
	return fmt.Sprintf("%s iteration %d accuracy %s updates %d weights %v guesses %s %d %s %d %s",
		emoji.MapAccuracy(frame.Accuracy),
		frame.Iteration,
		coinmath.Format(frame.Accuracy),
		frame.Updates,
		formatAll(frame.Weights),
		emoji.MapLabel(model.Positive), guesses[model.Positive],
		emoji.MapLabel(model.Negative), guesses[model.Negative],
		emoji.MapBool(frame.Converged()))
}

// Summary returns a one line summary of the report.
func Summary(report train.Report) string {
	return fmt.Sprintf("%s session %s iterations %d accuracy %s mean %s trend %s converged %v at %d",
		emoji.MapToSentiment(report.Trend),
		report.ID,
		report.Iterations,
		coinmath.Format(report.Accuracy),
		coinmath.Format(report.MeanAccuracy),
		coinmath.Format(report.Trend),
		report.Converged,
		report.ConvergedAt)
}

// Chart plots the accuracy history.
func Chart(history []float64, width, height int) string {
	if len(history) == 0 {
		return ""
	}
	return asciigraph.Plot(history,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption("accuracy"))
}

func formatAll(ff []float64) []string {
	ss := make([]string, len(ff))
	for i, f := range ff {
		ss[i] = coinmath.Format(f)
	}
	return ss
}
