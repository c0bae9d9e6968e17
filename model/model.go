package model

import (
	"fmt"
	"time"

	"github.com/uyouii/timeseries-standardization/common"
)

type TimeValue struct {
	Time  time.Time
	Value float64
}

// TimeSeries is a labeled numeric column, the values keep their order.
type TimeSeries struct {
	// Labels contains label key -> label value, like "instance": "localhost:9091"
	Labels map[string]string
	Values []TimeValue
}

func (s *TimeSeries) DebugString() string {
	res := fmt.Sprintf("labels: %+v, valueCount: %+v", s.Labels, s.Len())
	return res
}

func (s *TimeSeries) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Values) == 0
}

func (s *TimeSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Values)
}

func (s *TimeSeries) Floats() []float64 {
	if s == nil {
		return nil
	}
	res := make([]float64, len(s.Values))
	for i, timeValue := range s.Values {
		res[i] = timeValue.Value
	}
	return res
}

// WithValues keeps labels and timestamps, values[i] replaces the i-th value.
// values beyond the series length are dropped.
func (s *TimeSeries) WithValues(values []float64) Sequence {
	res := &TimeSeries{
		Labels: make(map[string]string, len(s.Labels)),
		Values: make([]TimeValue, len(values)),
	}
	for k, v := range s.Labels {
		res.Labels[k] = v
	}
	for i, value := range values {
		if i >= s.Len() {
			res.Values = res.Values[:i]
			break
		}
		res.Values[i] = TimeValue{Time: s.Values[i].Time, Value: value}
	}
	return res
}

func NewTimeSeries(labels map[string]string, times []time.Time, values []float64) (*TimeSeries, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("times length %d, values length %d: %w", len(times), len(values), common.ErrorInvalidInput)
	}
	res := &TimeSeries{
		Labels: labels,
		Values: make([]TimeValue, len(values)),
	}
	for i := range values {
		res.Values[i] = TimeValue{Time: times[i], Value: values[i]}
	}
	return res, nil
}
