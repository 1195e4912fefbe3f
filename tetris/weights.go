package tetris

import "github.com/pkg/errors"

// WeightCount is the number of heuristic features a Weights value tunes.
const WeightCount = 5

// Weights are the exponents applied to each board feature by Board.Grade.
// They are configuration: mutate them freely between searches.
type Weights struct {
	LineClear        float32 `yaml:"line_clear"`
	HeightDifference float32 `yaml:"height_difference"`
	Height           float32 `yaml:"height"`
	Holes            float32 `yaml:"holes"`
	HorizontalHoles  float32 `yaml:"horizontal_holes"`
}

// DefaultWeights returns the stock heuristic weights.
func DefaultWeights() Weights {
	return Weights{
		LineClear:        1.0,
		HeightDifference: 0.5,
		Height:           0.5,
		Holes:            1.0,
		HorizontalHoles:  0.5,
	}
}

// Vector returns the weights in declaration order.
func (w Weights) Vector() [WeightCount]float32 {
	return [WeightCount]float32{w.LineClear, w.HeightDifference, w.Height, w.Holes, w.HorizontalHoles}
}

// WeightsFromVector is the inverse of Weights.Vector.
func WeightsFromVector(v [WeightCount]float32) Weights {
	return Weights{
		LineClear:        v[0],
		HeightDifference: v[1],
		Height:           v[2],
		Holes:            v[3],
		HorizontalHoles:  v[4],
	}
}

// Nudge adds amount to the i-th weight in Vector order.
func (w *Weights) Nudge(i int, amount float32) error {
	if i < 0 || i >= WeightCount {
		return errors.Errorf("weight index %d out of range", i)
	}
	v := w.Vector()
	v[i] += amount
	*w = WeightsFromVector(v)
	return nil
}
