package scaler

import (
	"github.com/uyouii/timeseries-standardization/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ScaleByAverage divides every value by the mean of seq.
func ScaleByAverage(seq model.Sequence) (model.Sequence, model.AverageParams, error) {
	values, err := model.CheckSequence(seq)
	if err != nil {
		return nil, model.AverageParams{}, err
	}

	avg := stat.Mean(values, nil)
	if err := checkDivisor(model.ModeAverage, model.ParamKeyAvg, avg); err != nil {
		return nil, model.AverageParams{}, err
	}

	floats.Scale(1/avg, values)
	return seq.WithValues(values), model.AverageParams{Avg: avg}, nil
}

// ScaleByMax divides every value by the maximum of seq.
func ScaleByMax(seq model.Sequence) (model.Sequence, model.MaxParams, error) {
	values, err := model.CheckSequence(seq)
	if err != nil {
		return nil, model.MaxParams{}, err
	}

	mx := floats.Max(values)
	if err := checkDivisor(model.ModeMax, model.ParamKeyMax, mx); err != nil {
		return nil, model.MaxParams{}, err
	}

	floats.Scale(1/mx, values)
	return seq.WithValues(values), model.MaxParams{Max: mx}, nil
}

// ScaleBySum divides every value by the sum of seq.
func ScaleBySum(seq model.Sequence) (model.Sequence, model.SumParams, error) {
	values, err := model.CheckSequence(seq)
	if err != nil {
		return nil, model.SumParams{}, err
	}

	sum := floats.Sum(values)
	if err := checkDivisor(model.ModeSum, model.ParamKeySum, sum); err != nil {
		return nil, model.SumParams{}, err
	}

	floats.Scale(1/sum, values)
	return seq.WithValues(values), model.SumParams{Sum: sum}, nil
}

// ScaleByZScore maps every value x to (x - mean) / std,
// std is the population standard deviation (divide by N).
func ScaleByZScore(seq model.Sequence) (model.Sequence, model.ZScoreParams, error) {
	values, err := model.CheckSequence(seq)
	if err != nil {
		return nil, model.ZScoreParams{}, err
	}

	avg, std := stat.PopMeanStdDev(values, nil)
	if err := checkDivisor(model.ModeZScore, model.ParamKeyStd, std); err != nil {
		return nil, model.ZScoreParams{}, err
	}

	floats.AddConst(-avg, values)
	floats.Scale(1/std, values)
	return seq.WithValues(values), model.ZScoreParams{Avg: avg, Std: std}, nil
}
