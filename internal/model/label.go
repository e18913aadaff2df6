package model

// Label defines the class of a point with respect to the diagonal.
type Label int

const (
	// NoLabel defines a missing label.
	NoLabel Label = 0
	// Positive defines a point below the diagonal e.g. x > y.
	Positive Label = 1
	// Negative defines a point on or above the diagonal.
	Negative Label = -1
)

// SignedLabel returns the label based on the given sign.
// NOTE : zero is mapped to Negative, as the decision is 'greater than zero'
func SignedLabel(v float64) Label {
	if v > 0 {
		return Positive
	}
	return Negative
}

// Classify returns the ground truth label for the given coordinates.
func Classify(x, y float64) Label {
	if x > y {
		return Positive
	}
	return Negative
}

// Sign returns the appropriate sign for the given label for mathematical operations.
func (l Label) Sign() float64 {
	switch l {
	case Positive:
		return 1.0
	case Negative:
		return -1.0
	}
	return 0.0
}

// Valid checks if the label is one of the known classes.
func (l Label) Valid() bool {
	return l == Positive || l == Negative
}

func (l Label) String() string {
	switch l {
	case Positive:
		return "+1"
	case Negative:
		return "-1"
	}
	return "0"
}
