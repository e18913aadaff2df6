package model

import "fmt"

// Point is a labeled sample in the 2D plane.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label Label   `json:"label"`
}

// NewPoint creates a new point, deriving its label from the coordinates.
func NewPoint(x, y float64) Point {
	return Point{
		X:     x,
		Y:     y,
		Label: Classify(x, y),
	}
}

// Inputs returns the point coordinates as an input vector.
func (p Point) Inputs() []float64 {
	return []float64{p.X, p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f,%.2f)[%s]", p.X, p.Y, p.Label)
}

// Classified is the outcome of a prediction for a point.
type Classified struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Label   Label   `json:"label"`
	Guess   Label   `json:"guess"`
	Correct bool    `json:"correct"`
}

// NewClassified creates a classification record for the given point and guess.
func NewClassified(p Point, guess Label) Classified {
	return Classified{
		X:       p.X,
		Y:       p.Y,
		Label:   p.Label,
		Guess:   guess,
		Correct: p.Label == guess,
	}
}
