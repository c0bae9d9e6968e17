package scaler

import (
	"fmt"

	"github.com/uyouii/timeseries-standardization/common"
	"github.com/uyouii/timeseries-standardization/model"
)

// Standardize scales seq with the transform mode selects.
// The returned params must be passed unchanged to Unstandardize.
func Standardize(seq model.Sequence, mode model.Mode) (model.Sequence, model.Params, error) {
	var (
		res    model.Sequence
		params model.Params
		err    error
	)

	switch mode {
	case model.ModeAverage:
		res, params, err = ScaleByAverage(seq)
	case model.ModeMax:
		res, params, err = ScaleByMax(seq)
	case model.ModeSum:
		res, params, err = ScaleBySum(seq)
	case model.ModeZScore:
		res, params, err = ScaleByZScore(seq)
	default:
		return nil, nil, fmt.Errorf("mode %d: %w", byte(mode), common.ErrorInvalidMode)
	}

	if err != nil {
		return nil, nil, err
	}
	return res, params, nil
}

// Unstandardize reverts Standardize, params must come from the same mode.
func Unstandardize(seq model.Sequence, mode model.Mode, params model.Params) (model.Sequence, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("mode %d: %w", byte(mode), common.ErrorInvalidMode)
	}
	params = derefParams(params)
	if params == nil {
		return nil, fmt.Errorf("%v unstandardize without params: %w", mode.Name(), common.ErrorMissingParameter)
	}
	if params.Mode() != mode {
		return nil, fmt.Errorf("%v unstandardize got %v params: %w",
			mode.Name(), params.Mode().Name(), common.ErrorMissingParameter)
	}

	switch p := params.(type) {
	case model.AverageParams:
		return Unscale(seq, p.Avg)
	case model.MaxParams:
		return Unscale(seq, p.Max)
	case model.SumParams:
		return Unscale(seq, p.Sum)
	case model.ZScoreParams:
		return UnscaleZScore(seq, p.Avg, p.Std)
	}

	// a Params implementation outside this module, use its map form
	return UnstandardizeMap(seq, mode, params.ToMap())
}

// derefParams returns the value form of pointer params, a nil pointer means no params.
func derefParams(params model.Params) model.Params {
	switch p := params.(type) {
	case *model.AverageParams:
		if p == nil {
			return nil
		}
		return *p
	case *model.MaxParams:
		if p == nil {
			return nil
		}
		return *p
	case *model.SumParams:
		if p == nil {
			return nil
		}
		return *p
	case *model.ZScoreParams:
		if p == nil {
			return nil
		}
		return *p
	}
	return params
}

// UnstandardizeMap reverts Standardize with parameters keyed by "avg", "max", "sum" and "std".
func UnstandardizeMap(seq model.Sequence, mode model.Mode, params map[string]float64) (model.Sequence, error) {
	p, err := model.ParamsFromMap(mode, params)
	if err != nil {
		return nil, err
	}
	return Unstandardize(seq, mode, p)
}

// StandardizeAny accepts untyped data and a one letter mode tag.
func StandardizeAny(data any, tag string) (model.Sequence, model.Params, error) {
	mode, err := model.ParseMode(tag)
	if err != nil {
		return nil, nil, err
	}
	seq, err := model.AsSequence(data)
	if err != nil {
		return nil, nil, err
	}
	return Standardize(seq, mode)
}

func UnstandardizeAny(data any, tag string, params map[string]float64) (model.Sequence, error) {
	mode, err := model.ParseMode(tag)
	if err != nil {
		return nil, err
	}
	seq, err := model.AsSequence(data)
	if err != nil {
		return nil, err
	}
	return UnstandardizeMap(seq, mode, params)
}
