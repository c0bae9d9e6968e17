package model

import (
	"encoding/json"
	"fmt"

	"github.com/uyouii/timeseries-standardization/common"
	"github.com/uyouii/timeseries-standardization/utils"
	"golang.org/x/exp/constraints"
)

// Sequence is an ordered, read only list of numbers.
type Sequence interface {
	Len() int
	// Floats returns a copy of the values in order.
	Floats() []float64
	// WithValues builds a new sequence of the same kind holding values.
	WithValues(values []float64) Sequence
}

type Number interface {
	constraints.Integer | constraints.Float
}

// Vector is a plain ordered sequence.
type Vector []float64

func NewVector[N Number](data []N) Vector {
	res := make(Vector, len(data))
	for i, v := range data {
		res[i] = float64(v)
	}
	return res
}

func (v Vector) Len() int {
	return len(v)
}

func (v Vector) Floats() []float64 {
	res := make([]float64, len(v))
	copy(res, v)
	return res
}

func (v Vector) WithValues(values []float64) Sequence {
	res := make(Vector, len(values))
	copy(res, values)
	return res
}

// CheckSequence returns the values of seq,
// it fails when seq is nil, empty or holds NaN / Inf.
func CheckSequence(seq Sequence) ([]float64, error) {
	if seq == nil {
		return nil, fmt.Errorf("nil sequence: %w", common.ErrorInvalidInput)
	}
	if seq.Len() == 0 {
		return nil, fmt.Errorf("empty sequence: %w", common.ErrorInvalidInput)
	}
	values := seq.Floats()
	for i, v := range values {
		if !utils.IsFinite(v) {
			return nil, fmt.Errorf("element %d is %v: %w", i, v, common.ErrorInvalidInput)
		}
	}
	return values, nil
}

// AsSequence converts untyped data into a Sequence.
func AsSequence(data any) (Sequence, error) {
	switch v := data.(type) {
	case nil:
		return nil, fmt.Errorf("nil data: %w", common.ErrorInvalidInput)
	case Sequence:
		return v, nil
	case []float64:
		return NewVector(v), nil
	case []float32:
		return NewVector(v), nil
	case []int:
		return NewVector(v), nil
	case []int8:
		return NewVector(v), nil
	case []int16:
		return NewVector(v), nil
	case []int32:
		return NewVector(v), nil
	case []int64:
		return NewVector(v), nil
	case []uint:
		return NewVector(v), nil
	case []uint8:
		return NewVector(v), nil
	case []uint16:
		return NewVector(v), nil
	case []uint32:
		return NewVector(v), nil
	case []uint64:
		return NewVector(v), nil
	case []any:
		res := make(Vector, len(v))
		for i, elem := range v {
			f, ok := toFloat(elem)
			if !ok {
				return nil, fmt.Errorf("element %d has type %T: %w", i, elem, common.ErrorInvalidInput)
			}
			res[i] = f
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported type %T: %w", data, common.ErrorInvalidInput)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
