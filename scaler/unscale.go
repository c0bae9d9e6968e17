package scaler

import (
	"github.com/uyouii/timeseries-standardization/model"
	"gonum.org/v1/gonum/floats"
)

// Unscale multiplies every value by factor,
// it reverts ScaleByAverage, ScaleByMax and ScaleBySum.
func Unscale(seq model.Sequence, factor float64) (model.Sequence, error) {
	values, err := model.CheckSequence(seq)
	if err != nil {
		return nil, err
	}
	if err := checkFactor("factor", factor); err != nil {
		return nil, err
	}

	floats.Scale(factor, values)
	return seq.WithValues(values), nil
}

// UnscaleZScore maps every value z to z * std + avg.
func UnscaleZScore(seq model.Sequence, avg, std float64) (model.Sequence, error) {
	values, err := model.CheckSequence(seq)
	if err != nil {
		return nil, err
	}
	if err := checkFactor(model.ParamKeyAvg, avg); err != nil {
		return nil, err
	}
	if err := checkFactor(model.ParamKeyStd, std); err != nil {
		return nil, err
	}

	floats.Scale(std, values)
	floats.AddConst(avg, values)
	return seq.WithValues(values), nil
}
