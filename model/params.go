package model

import (
	"fmt"

	"github.com/uyouii/timeseries-standardization/common"
)

const (
	ParamKeyAvg = "avg"
	ParamKeyMax = "max"
	ParamKeySum = "sum"
	ParamKeyStd = "std"
)

// Params are the scalars a forward transform derived from its input,
// they must be handed unchanged to the matching inverse transform.
type Params interface {
	Mode() Mode
	ToMap() map[string]float64
}

type AverageParams struct {
	Avg float64 `json:"avg"`
}

type MaxParams struct {
	Max float64 `json:"max"`
}

type SumParams struct {
	Sum float64 `json:"sum"`
}

type ZScoreParams struct {
	Avg float64 `json:"avg"`
	Std float64 `json:"std"`
}

func (p AverageParams) Mode() Mode { return ModeAverage }

func (p MaxParams) Mode() Mode { return ModeMax }

func (p SumParams) Mode() Mode { return ModeSum }

func (p ZScoreParams) Mode() Mode { return ModeZScore }

func (p AverageParams) ToMap() map[string]float64 {
	return map[string]float64{ParamKeyAvg: p.Avg}
}

func (p MaxParams) ToMap() map[string]float64 {
	return map[string]float64{ParamKeyMax: p.Max}
}

func (p SumParams) ToMap() map[string]float64 {
	return map[string]float64{ParamKeySum: p.Sum}
}

func (p ZScoreParams) ToMap() map[string]float64 {
	return map[string]float64{ParamKeyAvg: p.Avg, ParamKeyStd: p.Std}
}

// ParamsFromMap reads the parameters mode needs out of a {"avg", "max", "sum", "std"} map.
// Keys the mode does not use are ignored.
func ParamsFromMap(mode Mode, params map[string]float64) (Params, error) {
	lookup := func(key string) (float64, error) {
		v, ok := params[key]
		if !ok {
			return 0, fmt.Errorf("mode %v expects key %q: %w", mode, key, common.ErrorMissingParameter)
		}
		return v, nil
	}

	switch mode {
	case ModeAverage:
		avg, err := lookup(ParamKeyAvg)
		if err != nil {
			return nil, err
		}
		return AverageParams{Avg: avg}, nil
	case ModeMax:
		mx, err := lookup(ParamKeyMax)
		if err != nil {
			return nil, err
		}
		return MaxParams{Max: mx}, nil
	case ModeSum:
		sum, err := lookup(ParamKeySum)
		if err != nil {
			return nil, err
		}
		return SumParams{Sum: sum}, nil
	case ModeZScore:
		avg, err := lookup(ParamKeyAvg)
		if err != nil {
			return nil, err
		}
		std, err := lookup(ParamKeyStd)
		if err != nil {
			return nil, err
		}
		return ZScoreParams{Avg: avg, Std: std}, nil
	}
	return nil, fmt.Errorf("mode %d: %w", byte(mode), common.ErrorInvalidMode)
}
