package quality

import (
	"errors"
	"math"
)

// DefaultA balances subgroup size against the deviation of its mean
const DefaultA = 0.5

var ErrInvalidA = errors.New("invalid exponent a, must be between 0 and 1 inclusive")

// Function scores a candidate subgroup from its size, its mean target value and the
// mean target value of the whole dataset
type Function interface {
	Evaluate(size int, meanSG, meanDataset float64) float64
}

// Bidirectional rewards large subgroups whose mean deviates from the dataset mean in
// either direction: size^A * |meanSG - meanDataset|. A of 0 ignores size entirely and
// A of 1 weighs size and deviation equally.
type Bidirectional struct {
	A float64
}

func NewBidirectional(a float64) (*Bidirectional, error) {
	if a < 0 || a > 1 || math.IsNaN(a) {
		return nil, ErrInvalidA
	}
	return &Bidirectional{A: a}, nil
}

// Evaluate returns 0 for an empty subgroup
func (b *Bidirectional) Evaluate(size int, meanSG, meanDataset float64) float64 {
	if size <= 0 {
		return 0
	}
	return math.Pow(float64(size), b.A) * math.Abs(meanSG-meanDataset)
}
